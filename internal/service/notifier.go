package service

import (
    "context"
    "fmt"
    "strings"

    "go.uber.org/zap"

    "github.com/d60-Lab/inquiry-service/internal/model"
    "github.com/d60-Lab/inquiry-service/internal/repository"
    "github.com/d60-Lab/inquiry-service/pkg/logger"
)

const productDeletedLabel = "(Product Deleted)"

// renderTemplate 模板占位符字面替换，不做转义
func renderTemplate(tpl string, set *repository.Settings, customerName, productName string) string {
    return strings.NewReplacer(
        "{customer_name}", customerName,
        "{product_name}", productName,
        "{admin_email}", set.AdminEmail,
        "{site_name}", set.SiteName,
        "{site_url}", set.SiteURL,
    ).Replace(tpl)
}

// Notifier 渲染并发送两类通知：管理员告警、顾客自动回复/人工回复
// 提交路径走异步队列，回复路径同步发送（管理员依赖结果）
type Notifier struct {
    mailer     Mailer
    dispatcher *MailDispatcher
    hooks      *Hooks
}

func NewNotifier(mailer Mailer, dispatcher *MailDispatcher, hooks *Hooks) *Notifier {
    if hooks == nil {
        hooks = &Hooks{}
    }
    return &Notifier{mailer: mailer, dispatcher: dispatcher, hooks: hooks}
}

// AdminAlert 新咨询的管理员告警，异步投递
func (n *Notifier) AdminAlert(ctx context.Context, set *repository.Settings, inq *model.Inquiry, draft *Draft) {
    if set.AdminEmail == "" {
        logger.Warn("admin email not configured, alert skipped", zap.String("inquiry_id", inq.ID))
        return
    }

    var b strings.Builder
    b.WriteString("You have received a new product inquiry.\n\n")
    fmt.Fprintf(&b, "Product: %s\n", draft.ProductTitle)
    if draft.ProductPermalink != "" {
        fmt.Fprintf(&b, "Product URL: %s\n", draft.ProductPermalink)
    }
    b.WriteString("\n--- Inquiry Details ---\n\n")
    fmt.Fprintf(&b, "Name: %s\n", inq.SenderName)
    fmt.Fprintf(&b, "Email: %s\n", inq.SenderEmail)
    if inq.SenderPhone != "" {
        fmt.Fprintf(&b, "Phone: %s\n", inq.SenderPhone)
    }
    fmt.Fprintf(&b, "\nMessage:\n%s\n", inq.Message)
    b.WriteString("\n--- Admin Actions ---\n\n")
    fmt.Fprintf(&b, "View/Reply: %s/%s\n", strings.TrimRight(set.AdminURL, "/"), inq.ID)
    b.WriteString("\nThis is an automated notification from your product inquiry service.")

    m := &MailMessage{
        To:        set.AdminEmail,
        Subject:   fmt.Sprintf("New Product Inquiry: %s", draft.ProductTitle),
        Body:      b.String(),
        FromName:  set.SiteName,
        FromEmail: set.AdminEmail,
        ReplyTo:   fmt.Sprintf("%s <%s>", inq.SenderName, inq.SenderEmail),
    }
    n.enqueue(ctx, m)
}

// AutoReply 提交成功后的顾客自动回复，异步投递
func (n *Notifier) AutoReply(ctx context.Context, set *repository.Settings, inq *model.Inquiry, draft *Draft) {
    m := &MailMessage{
        To:        inq.SenderEmail,
        Subject:   renderTemplate(set.AutoReplySubject, set, inq.SenderName, draft.ProductTitle),
        Body:      renderTemplate(set.AutoReplyBody, set, inq.SenderName, draft.ProductTitle),
        FromName:  set.SiteName,
        FromEmail: set.AdminEmail,
        ReplyTo:   set.AdminEmail,
    }
    n.enqueue(ctx, m)
}

// SendReply 管理员人工回复，同步发送，失败上抛
func (n *Notifier) SendReply(ctx context.Context, set *repository.Settings, inq *model.Inquiry,
    productTitle, productURL, replyBody, adminName string) error {

    m := &MailMessage{
        To:        inq.SenderEmail,
        Subject:   fmt.Sprintf("Response to your inquiry about: %s", productTitle),
        Body:      buildReplyBody(set, inq, productTitle, productURL, replyBody, adminName),
        FromName:  set.SiteName,
        FromEmail: set.AdminEmail,
        ReplyTo:   set.AdminEmail,
    }
    if err := n.hooks.applyPreSend(ctx, m); err != nil {
        return err
    }
    return n.mailer.Send(ctx, m)
}

func (n *Notifier) enqueue(ctx context.Context, m *MailMessage) {
    if err := n.hooks.applyPreSend(ctx, m); err != nil {
        logger.Warn("pre-send hook rejected mail", zap.String("to", m.To), zap.Error(err))
        return
    }
    n.dispatcher.Enqueue(m)
}

func buildReplyBody(set *repository.Settings, inq *model.Inquiry,
    productTitle, productURL, replyBody, adminName string) string {

    if adminName == "" {
        adminName = "Store Admin"
    }
    parts := []string{
        fmt.Sprintf("Hello %s,", inq.SenderName),
        "",
        "Thank you for your inquiry. Here is our response:",
        "",
        "--- Our Response ---",
        "",
        replyBody,
        "",
        "--- Your Original Message ---",
        "",
        fmt.Sprintf("Product: %s", productTitle),
    }
    if productURL != "" {
        parts = append(parts, fmt.Sprintf("Product Link: %s", productURL))
    }
    parts = append(parts,
        "",
        fmt.Sprintf("Date: %s", inq.CreatedAt.Format("2006-01-02 15:04:05")),
        "",
        "Your Message:",
        inq.Message,
        "",
        "--- Contact Information ---",
        "",
        fmt.Sprintf("Best regards,\n%s", adminName),
        set.SiteName,
        set.AdminEmail,
    )
    return strings.Join(parts, "\n")
}
