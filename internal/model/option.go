package model

import "time"

// Option 站点级可变配置项（管理员邮箱、自动回复模板等），key-value 存储
type Option struct {
    Key       string    `json:"key" gorm:"primaryKey;type:varchar(64)"`
    Value     string    `json:"value" gorm:"type:text"`
    UpdatedAt time.Time `json:"updated_at"`
}

func (Option) TableName() string { return "options" }

// 配置项 key
const (
    OptionAdminEmail       = "admin_email"
    OptionSuccessMessage   = "success_message"
    OptionAutoReplyEnabled = "auto_reply_enabled"
    OptionAutoReplySubject = "auto_reply_subject"
    OptionAutoReplyBody    = "auto_reply_body"
)
