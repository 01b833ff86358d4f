package model

import "time"

// User 后台管理员（回复记录的署名来源）
type User struct {
    ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
    Username    string    `json:"username" gorm:"type:varchar(64);uniqueIndex;not null"`
    DisplayName string    `json:"display_name" gorm:"type:varchar(128)"`
    Email       string    `json:"email" gorm:"type:varchar(255);not null"`
    Password    string    `json:"-" gorm:"type:varchar(128);not null"` // bcrypt hash
    CreatedAt   time.Time `json:"created_at"`
    UpdatedAt   time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
