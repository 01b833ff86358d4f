package service

import (
    "context"
    "fmt"
    "net/smtp"
    "strings"
    "time"

    "go.uber.org/zap"

    "github.com/d60-Lab/inquiry-service/config"
    "github.com/d60-Lab/inquiry-service/pkg/logger"
)

// MailMessage 一封待发的纯文本邮件
type MailMessage struct {
    To        string
    Subject   string
    Body      string
    FromName  string
    FromEmail string
    ReplyTo   string
}

// Mailer 邮件传输协作方
type Mailer interface {
    Send(ctx context.Context, m *MailMessage) error
}

// smtpMailer net/smtp 实现；未启用时只记日志（开发环境）
type smtpMailer struct {
    cfg *config.SMTPConfig
}

func NewSMTPMailer(cfg *config.SMTPConfig) Mailer { return &smtpMailer{cfg: cfg} }

func (s *smtpMailer) Send(ctx context.Context, m *MailMessage) error {
    if !s.cfg.Enabled {
        logger.Info("smtp disabled, mail not sent",
            zap.String("to", m.To), zap.String("subject", m.Subject))
        return nil
    }
    if s.cfg.Host == "" || s.cfg.Username == "" {
        return fmt.Errorf("smtp not configured")
    }

    from := s.cfg.Username
    if m.FromEmail != "" {
        from = m.FromEmail
    }
    fromHeader := from
    if m.FromName != "" {
        fromHeader = fmt.Sprintf("%s <%s>", m.FromName, from)
    }

    var b strings.Builder
    fmt.Fprintf(&b, "From: %s\r\n", fromHeader)
    fmt.Fprintf(&b, "To: %s\r\n", m.To)
    fmt.Fprintf(&b, "Subject: %s\r\n", m.Subject)
    if m.ReplyTo != "" {
        fmt.Fprintf(&b, "Reply-To: %s\r\n", m.ReplyTo)
    }
    b.WriteString("MIME-Version: 1.0\r\n")
    b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
    b.WriteString("\r\n")
    b.WriteString(m.Body)
    b.WriteString("\r\n")

    auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
    addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

    // net/smtp 不接受 context，单独 goroutine 套超时
    done := make(chan error, 1)
    go func() {
        done <- smtp.SendMail(addr, auth, from, []string{m.To}, []byte(b.String()))
    }()
    select {
    case err := <-done:
        if err != nil {
            return fmt.Errorf("send mail: %w", err)
        }
        return nil
    case <-ctx.Done():
        return ctx.Err()
    }
}

// MailDispatcher 提交路径的异步发信队列：投递失败只记日志，绝不影响请求结果
// 队列满时丢弃并告警
type MailDispatcher struct {
    mailer Mailer
    ch     chan *MailMessage
}

func NewMailDispatcher(mailer Mailer, queueSize int) *MailDispatcher {
    if queueSize <= 0 {
        queueSize = 1024
    }
    return &MailDispatcher{mailer: mailer, ch: make(chan *MailMessage, queueSize)}
}

func (d *MailDispatcher) Start(workers int) func(context.Context) error {
    if workers <= 0 {
        workers = 2
    }
    stopCh := make(chan struct{})
    for i := 0; i < workers; i++ {
        go func() {
            for {
                select {
                case m := <-d.ch:
                    ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
                    if err := d.mailer.Send(ctx, m); err != nil {
                        logger.Error("async mail delivery failed",
                            zap.String("to", m.To), zap.String("subject", m.Subject), zap.Error(err))
                    }
                    cancel()
                case <-stopCh:
                    return
                }
            }
        }()
    }
    return func(ctx context.Context) error {
        close(stopCh)
        // 等待队列自然排空一小段时间
        timeout := time.After(2 * time.Second)
        for {
            select {
            case <-timeout:
                return nil
            default:
                if len(d.ch) == 0 {
                    return nil
                }
                time.Sleep(50 * time.Millisecond)
            }
        }
    }
}

func (d *MailDispatcher) Enqueue(m *MailMessage) {
    select {
    case d.ch <- m:
    default:
        logger.Warn("mail queue full, drop message",
            zap.String("to", m.To), zap.String("subject", m.Subject))
    }
}

// QueueLen 当前队列长度（采样值）
func (d *MailDispatcher) QueueLen() int { return len(d.ch) }
