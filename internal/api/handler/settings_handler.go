package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/inquiry-service/internal/model"
    "github.com/d60-Lab/inquiry-service/pkg/response"
)

type settingsUpdateRequest struct {
    AdminEmail       *string `json:"admin_email"`
    SuccessMessage   *string `json:"success_message"`
    AutoReplyEnabled *bool   `json:"auto_reply_enabled"`
    AutoReplySubject *string `json:"auto_reply_subject"`
    AutoReplyBody    *string `json:"auto_reply_body"`
}

// GetSettings 当前生效的站点配置（options 表与默认值合并后的快照）
// @Summary 查询站点配置
// @Tags 配置
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/settings [get]
func (h *Handler) GetSettings(c *gin.Context) {
    set, err := h.settings.Load(c.Request.Context())
    if err != nil {
        response.InternalError(c, err)
        return
    }
    response.Success(c, gin.H{
        "admin_email":        set.AdminEmail,
        "success_message":    set.SuccessMessage,
        "auto_reply_enabled": set.AutoReplyEnabled,
        "auto_reply_subject": set.AutoReplySubject,
        "auto_reply_body":    set.AutoReplyBody,
    })
}

// UpdateSettings 局部更新站点配置，未出现的字段保持不变
// @Summary 更新站点配置
// @Tags 配置
// @Accept json
// @Param request body settingsUpdateRequest true "待更新字段"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/settings [put]
func (h *Handler) UpdateSettings(c *gin.Context) {
    var req settingsUpdateRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    ctx := c.Request.Context()

    updates := map[string]*string{
        model.OptionAdminEmail:       req.AdminEmail,
        model.OptionSuccessMessage:   req.SuccessMessage,
        model.OptionAutoReplySubject: req.AutoReplySubject,
        model.OptionAutoReplyBody:    req.AutoReplyBody,
    }
    for key, v := range updates {
        if v == nil {
            continue
        }
        if err := h.settings.Set(ctx, key, *v); err != nil {
            response.InternalError(c, err)
            return
        }
    }
    if req.AutoReplyEnabled != nil {
        v := "no"
        if *req.AutoReplyEnabled {
            v = "yes"
        }
        if err := h.settings.Set(ctx, model.OptionAutoReplyEnabled, v); err != nil {
            response.InternalError(c, err)
            return
        }
    }
    response.Success(c, nil)
}
