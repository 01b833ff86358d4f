package repository

import (
    "context"
    "testing"

    "github.com/stretchr/testify/require"
    "gorm.io/driver/sqlite"
    "gorm.io/gorm"

    "github.com/d60-Lab/inquiry-service/config"
    "github.com/d60-Lab/inquiry-service/internal/model"
)

func setupSettings(t *testing.T) SettingsRepository {
    db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
    if err != nil {
        t.Fatalf("open db: %v", err)
    }
    if err := db.AutoMigrate(&model.Option{}); err != nil {
        t.Fatalf("migrate: %v", err)
    }
    cfg := &config.Config{Mail: config.MailConfig{
        AdminEmail: "fallback@x.com",
        SiteName:   "Demo Store",
    }}
    return NewSettingsRepository(db, cfg)
}

func TestSettingsDefaults(t *testing.T) {
    repo := setupSettings(t)

    set, err := repo.Load(context.Background())
    require.NoError(t, err)
    require.Equal(t, "fallback@x.com", set.AdminEmail)
    require.True(t, set.AutoReplyEnabled)
    require.Contains(t, set.AutoReplySubject, "{product_name}")
    require.Contains(t, set.AutoReplyBody, "{customer_name}")
}

func TestSettingsOverrideAndUpsert(t *testing.T) {
    repo := setupSettings(t)
    ctx := context.Background()

    require.NoError(t, repo.Set(ctx, model.OptionAdminEmail, "store@x.com"))
    require.NoError(t, repo.Set(ctx, model.OptionAutoReplyEnabled, "no"))
    // 同 key 重复写走 upsert，后写覆盖
    require.NoError(t, repo.Set(ctx, model.OptionAdminEmail, "owner@x.com"))

    set, err := repo.Load(ctx)
    require.NoError(t, err)
    require.Equal(t, "owner@x.com", set.AdminEmail)
    require.False(t, set.AutoReplyEnabled)

    // 空值不覆盖默认
    require.NoError(t, repo.Set(ctx, model.OptionSuccessMessage, ""))
    set, err = repo.Load(ctx)
    require.NoError(t, err)
    require.Contains(t, set.SuccessMessage, "submitted successfully")
}
