package repository

import (
    "context"
    "errors"
    "time"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/d60-Lab/inquiry-service/internal/model"
)

var (
    ErrNotFound = errors.New("inquiry not found")
    // replied 为终态，不允许再标记为 unread / processed
    ErrRepliedFinal      = errors.New("inquiry already replied")
    ErrInvalidTransition = errors.New("invalid status transition")
)

type InquiryRepository interface {
    Create(ctx context.Context, inq *model.Inquiry) error
    GetByID(ctx context.Context, id string) (*model.Inquiry, error)
    // SetStatus 幂等标记 processed / unread；记录不存在或已 replied 时报错
    SetStatus(ctx context.Context, id string, status model.Status) error
    // AppendReply 在同一事务内追加回复并置状态为 replied，保证两者同时可见
    AppendReply(ctx context.Context, id string, reply *model.InquiryReply) error
    ListByStatus(ctx context.Context, status *model.Status) ([]*model.Inquiry, error)
    CountUnprocessed(ctx context.Context) (int64, error)
    // ListAllIDs 按提交时间倒序返回至多 limit 条 ID（导出全部用）
    ListAllIDs(ctx context.Context, limit int) ([]string, error)
    GetBatch(ctx context.Context, ids []string) ([]*model.Inquiry, error)
    // DeleteAll 卸载清库，连同回复记录一并删除
    DeleteAll(ctx context.Context) error
}

type inquiryRepository struct {
    db *gorm.DB
}

func NewInquiryRepository(db *gorm.DB) InquiryRepository { return &inquiryRepository{db: db} }

func (r *inquiryRepository) Create(ctx context.Context, inq *model.Inquiry) error {
    if inq.ID == "" {
        inq.ID = uuid.New().String()
    }
    if inq.CreatedAt.IsZero() {
        inq.CreatedAt = time.Now()
    }
    inq.Status = model.StatusUnread
    return r.db.WithContext(ctx).Create(inq).Error
}

func (r *inquiryRepository) GetByID(ctx context.Context, id string) (*model.Inquiry, error) {
    var inq model.Inquiry
    err := r.db.WithContext(ctx).
        Preload("Replies", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
        Where("id = ?", id).
        First(&inq).Error
    if errors.Is(err, gorm.ErrRecordNotFound) {
        return nil, ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    return &inq, nil
}

func (r *inquiryRepository) SetStatus(ctx context.Context, id string, status model.Status) error {
    if status != model.StatusUnread && status != model.StatusProcessed {
        return ErrInvalidTransition
    }
    // 带状态条件的更新，replied 行不会被改写
    res := r.db.WithContext(ctx).
        Model(&model.Inquiry{}).
        Where("id = ? AND status <> ?", id, model.StatusReplied).
        Update("status", status)
    if res.Error != nil {
        return res.Error
    }
    if res.RowsAffected == 0 {
        var cur model.Inquiry
        err := r.db.WithContext(ctx).Select("status").Where("id = ?", id).First(&cur).Error
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return ErrNotFound
        }
        if err != nil {
            return err
        }
        if !model.CanTransition(cur.Status, status) {
            return ErrRepliedFinal
        }
    }
    return nil
}

func (r *inquiryRepository) AppendReply(ctx context.Context, id string, reply *model.InquiryReply) error {
    if reply.ID == "" {
        reply.ID = uuid.New().String()
    }
    if reply.CreatedAt.IsZero() {
        reply.CreatedAt = time.Now()
    }
    reply.InquiryID = id
    return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        var inq model.Inquiry
        if err := tx.Where("id = ?", id).First(&inq).Error; err != nil {
            if errors.Is(err, gorm.ErrRecordNotFound) {
                return ErrNotFound
            }
            return err
        }
        if err := tx.Create(reply).Error; err != nil {
            return err
        }
        return tx.Model(&model.Inquiry{}).Where("id = ?", id).Update("status", model.StatusReplied).Error
    })
}

func (r *inquiryRepository) ListByStatus(ctx context.Context, status *model.Status) ([]*model.Inquiry, error) {
    q := r.db.WithContext(ctx).Order("created_at DESC")
    if status != nil {
        q = q.Where("status = ?", *status)
    }
    var res []*model.Inquiry
    err := q.Find(&res).Error
    return res, err
}

func (r *inquiryRepository) CountUnprocessed(ctx context.Context) (int64, error) {
    var cnt int64
    err := r.db.WithContext(ctx).
        Model(&model.Inquiry{}).
        Where("status = ?", model.StatusUnread).
        Count(&cnt).Error
    return cnt, err
}

func (r *inquiryRepository) ListAllIDs(ctx context.Context, limit int) ([]string, error) {
    var ids []string
    q := r.db.WithContext(ctx).Model(&model.Inquiry{}).Order("created_at DESC")
    if limit > 0 {
        q = q.Limit(limit)
    }
    err := q.Pluck("id", &ids).Error
    return ids, err
}

func (r *inquiryRepository) GetBatch(ctx context.Context, ids []string) ([]*model.Inquiry, error) {
    var res []*model.Inquiry
    err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
    return res, err
}

func (r *inquiryRepository) DeleteAll(ctx context.Context) error {
    return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        if err := tx.Where("1 = 1").Delete(&model.InquiryReply{}).Error; err != nil {
            return err
        }
        return tx.Where("1 = 1").Delete(&model.Inquiry{}).Error
    })
}
