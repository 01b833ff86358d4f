package repository

import (
    "context"
    "errors"

    "gorm.io/gorm"

    "github.com/d60-Lab/inquiry-service/internal/model"
)

var ErrProductNotFound = errors.New("product not found")

// ProductLookup 商品查询协作方；商品可能随时被删除，调用方需容忍未命中
type ProductLookup interface {
    Resolve(ctx context.Context, ref string) (*model.Product, error)
}

type productRepository struct {
    db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductLookup { return &productRepository{db: db} }

func (r *productRepository) Resolve(ctx context.Context, ref string) (*model.Product, error) {
    var p model.Product
    err := r.db.WithContext(ctx).Where("id = ?", ref).First(&p).Error
    if errors.Is(err, gorm.ErrRecordNotFound) {
        return nil, ErrProductNotFound
    }
    if err != nil {
        return nil, err
    }
    return &p, nil
}
