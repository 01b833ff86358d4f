package service

import (
    "context"
    "testing"
    "time"

    "github.com/stretchr/testify/require"
    "golang.org/x/crypto/bcrypt"
    "gorm.io/driver/sqlite"
    "gorm.io/gorm"

    "github.com/d60-Lab/inquiry-service/config"
    "github.com/d60-Lab/inquiry-service/internal/model"
    "github.com/d60-Lab/inquiry-service/internal/repository"
)

func setupAuth(t *testing.T) AuthService {
    db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
    if err != nil {
        t.Fatalf("open db: %v", err)
    }
    if err := db.AutoMigrate(&model.User{}); err != nil {
        t.Fatalf("migrate: %v", err)
    }
    users := repository.NewUserRepository(db)

    hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
    require.NoError(t, err)
    require.NoError(t, users.Create(context.Background(), &model.User{
        Username:    "alice",
        DisplayName: "Alice",
        Email:       "alice@x.com",
        Password:    string(hash),
    }))

    return NewAuthService(users, &config.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour})
}

func TestLoginAndParseToken(t *testing.T) {
    auth := setupAuth(t)
    ctx := context.Background()

    token, err := auth.Login(ctx, "alice", "s3cret")
    require.NoError(t, err)
    require.NotEmpty(t, token)

    actor, err := auth.ParseToken(token)
    require.NoError(t, err)
    require.Equal(t, "Alice", actor.Name)
    require.Equal(t, "alice@x.com", actor.Email)
    require.NotEmpty(t, actor.ID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
    auth := setupAuth(t)
    ctx := context.Background()

    _, err := auth.Login(ctx, "alice", "wrong")
    require.ErrorIs(t, err, ErrInvalidCredentials)

    _, err = auth.Login(ctx, "nobody", "s3cret")
    require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
    auth := setupAuth(t)
    _, err := auth.ParseToken("not-a-token")
    require.ErrorIs(t, err, ErrInvalidCredentials)
}
