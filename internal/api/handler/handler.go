package handler

import (
    "errors"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/inquiry-service/config"
    "github.com/d60-Lab/inquiry-service/internal/repository"
    "github.com/d60-Lab/inquiry-service/internal/service"
    "github.com/d60-Lab/inquiry-service/pkg/response"
)

// Handler 聚合全部 HTTP 处理器依赖
type Handler struct {
    inqService  service.InquiryService
    exporter    *service.Exporter
    authService service.AuthService
    settings    repository.SettingsRepository
    cfg         *config.Config
}

func NewHandler(inqService service.InquiryService, exporter *service.Exporter,
    authService service.AuthService, settings repository.SettingsRepository, cfg *config.Config) *Handler {
    return &Handler{
        inqService:  inqService,
        exporter:    exporter,
        authService: authService,
        settings:    settings,
        cfg:         cfg,
    }
}

// renderServiceError 服务层错误到 HTTP 响应的统一映射
// 存储细节不外漏，只回用户可读文案
func renderServiceError(c *gin.Context, err error) {
    switch {
    case errors.Is(err, repository.ErrNotFound):
        response.NotFound(c, "Inquiry not found.")
    case errors.Is(err, repository.ErrRepliedFinal):
        response.BadRequest(c, "This inquiry has already been replied to and its status is final.")
    case errors.Is(err, repository.ErrInvalidTransition):
        response.BadRequest(c, "Invalid status action.")
    case errors.Is(err, service.ErrForbidden):
        response.Forbidden(c, "You do not have permission to perform this action.")
    case errors.Is(err, service.ErrReplyTooShort):
        response.BadRequest(c, "Please enter a reply message with at least 10 characters.")
    case errors.Is(err, service.ErrMailDelivery):
        response.BadRequest(c, "Failed to send reply email. Please check your email configuration.")
    default:
        response.InternalError(c, err)
    }
}
