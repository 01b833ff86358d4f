package model

import "time"

// Product 商品快照（仅咨询场景所需字段；商品可能被删，引用需容忍悬空）
type Product struct {
    ID        string    `json:"id" gorm:"primaryKey;type:varchar(64)"`
    Title     string    `json:"title" gorm:"type:varchar(255);not null"`
    Permalink string    `json:"permalink" gorm:"type:varchar(512)"`
    CreatedAt time.Time `json:"created_at"`
    UpdatedAt time.Time `json:"updated_at"`
}

func (Product) TableName() string { return "products" }
