package service

import (
    "errors"
    "fmt"
)

var (
    // ErrMailDelivery 管理员回复路径的邮件发送失败（提交路径静默，仅记日志）
    ErrMailDelivery = errors.New("failed to send reply email")
    ErrForbidden    = errors.New("permission denied")
    // ErrReplyTooShort 回复正文最少 10 个字符
    ErrReplyTooShort      = errors.New("reply message must be at least 10 characters")
    ErrInvalidCredentials = errors.New("invalid username or password")
)

// ExportTooLargeError 导出条数超过上限，携带请求量与上限供调用方调整范围
type ExportTooLargeError struct {
    Requested int
    Limit     int
}

func (e *ExportTooLargeError) Error() string {
    return fmt.Sprintf("cannot export %d inquiries, the export limit is %d", e.Requested, e.Limit)
}
