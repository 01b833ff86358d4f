package service

import (
    "context"
    "errors"
    "fmt"

    "go.uber.org/zap"

    "github.com/d60-Lab/inquiry-service/internal/cache"
    "github.com/d60-Lab/inquiry-service/internal/model"
    "github.com/d60-Lab/inquiry-service/internal/repository"
    "github.com/d60-Lab/inquiry-service/pkg/logger"
)

// Actor 当前操作的管理员身份（来自 JWT），用于回复署名
type Actor struct {
    ID    string
    Name  string
    Email string
}

// ReplyResult 回复操作的返回摘要
type ReplyResult struct {
    RepliesCount     int    `json:"replies_count"`
    LastReplySummary string `json:"last_reply_summary"`
}

// InquiryService 咨询生命周期编排：提交、标记、回复、列表、清库
type InquiryService interface {
    // Submit 校验并创建咨询，触发管理员告警与可选自动回复
    // 返回 (inquiryID, 校验错误列表, 基础设施错误)
    Submit(ctx context.Context, in *SubmissionInput) (string, []string, error)
    Get(ctx context.Context, id string) (*model.Inquiry, error)
    List(ctx context.Context, status *model.Status) ([]*model.Inquiry, error)
    CountUnprocessed(ctx context.Context) (int64, error)
    // MarkStatus action 取值 processed / unread，幂等
    MarkStatus(ctx context.Context, actor *Actor, id string, action string) error
    // BulkMarkStatus 逐条尽力处理，返回成功条数
    BulkMarkStatus(ctx context.Context, actor *Actor, ids []string, action string) (int, error)
    // Reply 同步发信成功后落库（追加回复 + 置 replied，同一事务）
    Reply(ctx context.Context, actor *Actor, id, body string) (*ReplyResult, error)
    // PurgeAll 卸载清库
    PurgeAll(ctx context.Context) error
    // SuccessMessage 提交成功后展示给顾客的可配置文案
    SuccessMessage(ctx context.Context) (string, error)
}

type inquiryService struct {
    repo     repository.InquiryRepository
    products repository.ProductLookup
    settings repository.SettingsRepository
    notifier *Notifier
    counter  *cache.UnreadCounter
    authz    Authorizer
    hooks    *Hooks
}

func NewInquiryService(
    repo repository.InquiryRepository,
    products repository.ProductLookup,
    settings repository.SettingsRepository,
    notifier *Notifier,
    counter *cache.UnreadCounter,
    authz Authorizer,
    hooks *Hooks,
) InquiryService {
    if authz == nil {
        authz = AllowAll{}
    }
    if hooks == nil {
        hooks = &Hooks{}
    }
    return &inquiryService{
        repo:     repo,
        products: products,
        settings: settings,
        notifier: notifier,
        counter:  counter,
        authz:    authz,
        hooks:    hooks,
    }
}

func (s *inquiryService) Submit(ctx context.Context, in *SubmissionInput) (string, []string, error) {
    set, err := s.settings.Load(ctx)
    if err != nil {
        return "", nil, err
    }

    draft, verrs, err := validateSubmission(ctx, s.products, in)
    if err != nil {
        return "", nil, err
    }
    if len(verrs) > 0 {
        return "", verrs, nil
    }

    if err := s.hooks.applyPreCreate(ctx, draft); err != nil {
        return "", nil, err
    }

    inq := &model.Inquiry{
        ProductRef:  draft.ProductRef,
        SenderName:  draft.SenderName,
        SenderEmail: draft.SenderEmail,
        SenderPhone: draft.SenderPhone,
        Message:     draft.Message,
    }
    if err := s.repo.Create(ctx, inq); err != nil {
        logger.Error("create inquiry failed", zap.String("product_ref", inq.ProductRef), zap.Error(err))
        return "", nil, err
    }
    s.counter.Invalidate(ctx)

    // 通知失败不回滚已落库的咨询，对提交者静默
    s.notifier.AdminAlert(ctx, set, inq, draft)
    if set.AutoReplyEnabled {
        s.notifier.AutoReply(ctx, set, inq, draft)
    }

    logger.Info("inquiry submitted",
        zap.String("inquiry_id", inq.ID), zap.String("product_ref", inq.ProductRef))
    return inq.ID, nil, nil
}

func (s *inquiryService) Get(ctx context.Context, id string) (*model.Inquiry, error) {
    return s.repo.GetByID(ctx, id)
}

func (s *inquiryService) List(ctx context.Context, status *model.Status) ([]*model.Inquiry, error) {
    return s.repo.ListByStatus(ctx, status)
}

func (s *inquiryService) CountUnprocessed(ctx context.Context) (int64, error) {
    return s.counter.Count(ctx)
}

func actionToStatus(action string) (model.Status, error) {
    switch action {
    case "processed":
        return model.StatusProcessed, nil
    case "unread":
        return model.StatusUnread, nil
    default:
        return "", fmt.Errorf("unknown status action: %s", action)
    }
}

func (s *inquiryService) MarkStatus(ctx context.Context, actor *Actor, id string, action string) error {
    if !s.authz.CanEdit(ctx, actor, id) {
        return ErrForbidden
    }
    status, err := actionToStatus(action)
    if err != nil {
        return err
    }
    if err := s.repo.SetStatus(ctx, id, status); err != nil {
        return err
    }
    s.counter.Invalidate(ctx)
    return nil
}

func (s *inquiryService) BulkMarkStatus(ctx context.Context, actor *Actor, ids []string, action string) (int, error) {
    status, err := actionToStatus(action)
    if err != nil {
        return 0, err
    }
    updated := 0
    for _, id := range ids {
        if !s.authz.CanEdit(ctx, actor, id) {
            continue
        }
        if err := s.repo.SetStatus(ctx, id, status); err != nil {
            // 单条失败不中断批量，已 replied / 不存在的记录跳过
            if !errors.Is(err, repository.ErrNotFound) && !errors.Is(err, repository.ErrRepliedFinal) {
                return updated, err
            }
            continue
        }
        updated++
    }
    if updated > 0 {
        s.counter.Invalidate(ctx)
    }
    return updated, nil
}

func (s *inquiryService) Reply(ctx context.Context, actor *Actor, id, body string) (*ReplyResult, error) {
    if !s.authz.CanEdit(ctx, actor, id) {
        return nil, ErrForbidden
    }
    if len(body) < 10 {
        return nil, ErrReplyTooShort
    }

    set, err := s.settings.Load(ctx)
    if err != nil {
        return nil, err
    }
    inq, err := s.repo.GetByID(ctx, id)
    if err != nil {
        return nil, err
    }

    // 商品被删不阻断回复，标题降级展示
    productTitle := productDeletedLabel
    productURL := ""
    if p, perr := s.products.Resolve(ctx, inq.ProductRef); perr == nil {
        productTitle = p.Title
        productURL = p.Permalink
    }

    // 先发信后落库：发送失败则不产生 replied 迁移，也不记录回复
    if err := s.notifier.SendReply(ctx, set, inq, productTitle, productURL, body, actor.Name); err != nil {
        logger.Error("reply mail delivery failed",
            zap.String("inquiry_id", id), zap.String("to", inq.SenderEmail), zap.Error(err))
        return nil, ErrMailDelivery
    }

    reply := &model.InquiryReply{
        UserID:    actor.ID,
        UserName:  actor.Name,
        UserEmail: actor.Email,
        Body:      body,
    }
    if err := s.repo.AppendReply(ctx, id, reply); err != nil {
        logger.Error("append reply failed", zap.String("inquiry_id", id), zap.Error(err))
        return nil, err
    }
    s.counter.Invalidate(ctx)

    updated, err := s.repo.GetByID(ctx, id)
    if err != nil {
        return nil, err
    }
    res := &ReplyResult{RepliesCount: len(updated.Replies)}
    if n := len(updated.Replies); n > 0 {
        last := updated.Replies[n-1]
        res.LastReplySummary = fmt.Sprintf("Last reply by %s on %s",
            last.UserName, last.CreatedAt.Format("2006-01-02 15:04"))
    }
    return res, nil
}

func (s *inquiryService) SuccessMessage(ctx context.Context) (string, error) {
    set, err := s.settings.Load(ctx)
    if err != nil {
        return "", err
    }
    return set.SuccessMessage, nil
}

func (s *inquiryService) PurgeAll(ctx context.Context) error {
    if err := s.repo.DeleteAll(ctx); err != nil {
        return err
    }
    s.counter.Invalidate(ctx)
    logger.Warn("all inquiries purged")
    return nil
}
