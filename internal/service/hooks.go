package service

import "context"

// 扩展点：按注册顺序串行执行的纯转换回调，装配期显式注册

// DraftTransform 落库前修改咨询草稿
type DraftTransform func(ctx context.Context, d *Draft) error

// MailTransform 发送前修改邮件
type MailTransform func(ctx context.Context, m *MailMessage) error

// Hooks 全部扩展点集合，零值可用
type Hooks struct {
    PreCreate []DraftTransform
    PreSend   []MailTransform
}

func (h *Hooks) applyPreCreate(ctx context.Context, d *Draft) error {
    for _, fn := range h.PreCreate {
        if err := fn(ctx, d); err != nil {
            return err
        }
    }
    return nil
}

func (h *Hooks) applyPreSend(ctx context.Context, m *MailMessage) error {
    for _, fn := range h.PreSend {
        if err := fn(ctx, m); err != nil {
            return err
        }
    }
    return nil
}
