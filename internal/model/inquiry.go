package model

import "time"

// Inquiry 商品咨询（顾客在商品页提交的留言）
type Inquiry struct {
    ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
    ProductRef  string    `json:"product_ref" gorm:"type:varchar(64);index:idx_inquiry_product;not null"`
    SenderName  string    `json:"sender_name" gorm:"type:varchar(128);not null"`
    SenderEmail string    `json:"sender_email" gorm:"type:varchar(255);not null"`
    SenderPhone string    `json:"sender_phone" gorm:"type:varchar(64)"`
    Message     string    `json:"message" gorm:"type:text;not null"`
    Status      Status    `json:"status" gorm:"type:varchar(16);index:idx_inquiry_status;not null;default:unread"`
    CreatedAt   time.Time `json:"created_at" gorm:"index;not null"`
    UpdatedAt   time.Time `json:"updated_at"`

    Replies []InquiryReply `json:"replies,omitempty" gorm:"foreignKey:InquiryID"`
}

func (Inquiry) TableName() string { return "inquiries" }

// InquiryReply 管理员回复记录，只追加不修改
type InquiryReply struct {
    ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
    InquiryID string    `json:"inquiry_id" gorm:"type:varchar(36);index:idx_reply_inquiry;not null"`
    UserID    string    `json:"user_id" gorm:"type:varchar(36)"`
    UserName  string    `json:"user_name" gorm:"type:varchar(128)"`
    UserEmail string    `json:"user_email" gorm:"type:varchar(255)"`
    Body      string    `json:"body" gorm:"type:text;not null"`
    CreatedAt time.Time `json:"created_at" gorm:"index;not null"`
}

func (InquiryReply) TableName() string { return "inquiry_replies" }
