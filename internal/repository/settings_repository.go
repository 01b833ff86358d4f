package repository

import (
    "context"

    "gorm.io/gorm"
    "gorm.io/gorm/clause"

    "github.com/d60-Lab/inquiry-service/config"
    "github.com/d60-Lab/inquiry-service/internal/model"
)

// Settings 站点级邮件/回复配置快照，每个请求解析一次后只读传递
type Settings struct {
    AdminEmail       string
    SuccessMessage   string
    AutoReplyEnabled bool
    AutoReplySubject string
    AutoReplyBody    string
    SiteName         string
    SiteURL          string
    AdminURL         string
    FromName         string
}

const (
    defaultSuccessMessage   = "Thank you! Your inquiry has been submitted successfully. We will get back to you soon."
    defaultAutoReplySubject = "Thank you for your inquiry about {product_name}"
    defaultAutoReplyBody    = "Hello {customer_name},\n\n" +
        "Thank you for your inquiry about {product_name}.\n\n" +
        "We have received your message and will respond as soon as possible. " +
        "If you have any urgent questions, please feel free to contact us at {admin_email}.\n\n" +
        "Best regards,\n{site_name}\n{site_url}"
)

type SettingsRepository interface {
    // Load 合并 options 表与配置默认值，返回完整快照
    Load(ctx context.Context) (*Settings, error)
    Set(ctx context.Context, key, value string) error
}

type settingsRepository struct {
    db  *gorm.DB
    cfg *config.Config
}

func NewSettingsRepository(db *gorm.DB, cfg *config.Config) SettingsRepository {
    return &settingsRepository{db: db, cfg: cfg}
}

func (r *settingsRepository) Load(ctx context.Context) (*Settings, error) {
    var opts []model.Option
    if err := r.db.WithContext(ctx).Find(&opts).Error; err != nil {
        return nil, err
    }
    kv := make(map[string]string, len(opts))
    for _, o := range opts {
        kv[o.Key] = o.Value
    }

    s := &Settings{
        AdminEmail:       r.cfg.Mail.AdminEmail,
        SuccessMessage:   defaultSuccessMessage,
        AutoReplyEnabled: true,
        AutoReplySubject: defaultAutoReplySubject,
        AutoReplyBody:    defaultAutoReplyBody,
        SiteName:         r.cfg.Mail.SiteName,
        SiteURL:          r.cfg.Mail.SiteURL,
        AdminURL:         r.cfg.Mail.AdminURL,
        FromName:         r.cfg.Mail.FromName,
    }
    if v, ok := kv[model.OptionAdminEmail]; ok && v != "" {
        s.AdminEmail = v
    }
    if v, ok := kv[model.OptionSuccessMessage]; ok && v != "" {
        s.SuccessMessage = v
    }
    if v, ok := kv[model.OptionAutoReplyEnabled]; ok {
        s.AutoReplyEnabled = v == "yes"
    }
    if v, ok := kv[model.OptionAutoReplySubject]; ok && v != "" {
        s.AutoReplySubject = v
    }
    if v, ok := kv[model.OptionAutoReplyBody]; ok && v != "" {
        s.AutoReplyBody = v
    }
    return s, nil
}

func (r *settingsRepository) Set(ctx context.Context, key, value string) error {
    return r.db.WithContext(ctx).Clauses(clause.OnConflict{
        Columns:   []clause.Column{{Name: "key"}},
        DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
    }).Create(&model.Option{Key: key, Value: value}).Error
}
