package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/inquiry-service/internal/api/middleware"
    "github.com/d60-Lab/inquiry-service/internal/model"
    "github.com/d60-Lab/inquiry-service/internal/service"
    "github.com/d60-Lab/inquiry-service/pkg/response"
)

type submitRequest struct {
    ProductRef  string `json:"product_ref"`
    SenderName  string `json:"sender_name"`
    SenderEmail string `json:"sender_email"`
    SenderPhone string `json:"sender_phone"`
    Message     string `json:"message"`
}

// Submit 顾客提交商品咨询
// @Summary 提交商品咨询
// @Tags 咨询
// @Accept json
// @Produce json
// @Param request body submitRequest true "咨询内容"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /api/v1/inquiries [post]
func (h *Handler) Submit(c *gin.Context) {
    var req submitRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    id, verrs, err := h.inqService.Submit(c.Request.Context(), &service.SubmissionInput{
        ProductRef:  req.ProductRef,
        SenderName:  req.SenderName,
        SenderEmail: req.SenderEmail,
        SenderPhone: req.SenderPhone,
        Message:     req.Message,
    })
    if err != nil {
        // 存储失败对提交者只给泛化重试文案
        response.InternalError(c, err)
        return
    }
    if len(verrs) > 0 {
        response.ValidationFailed(c, verrs)
        return
    }
    msg, err := h.inqService.SuccessMessage(c.Request.Context())
    if err != nil {
        msg = ""
    }
    response.Success(c, gin.H{"inquiry_id": id, "message": msg})
}

// List 按状态筛选咨询列表
// @Summary 咨询列表
// @Tags 咨询
// @Param status query string false "状态过滤 unread/processed/replied"
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Security BearerAuth
// @Router /api/v1/inquiries [get]
func (h *Handler) List(c *gin.Context) {
    var filter *model.Status
    if s := c.Query("status"); s != "" {
        st := model.Status(s)
        if !st.Valid() {
            response.BadRequest(c, "unknown status filter")
            return
        }
        filter = &st
    }
    list, err := h.inqService.List(c.Request.Context(), filter)
    if err != nil {
        renderServiceError(c, err)
        return
    }
    response.Success(c, gin.H{"total": len(list), "list": list})
}

// CountUnprocessed 未处理数（后台角标）
// @Summary 未处理咨询数
// @Tags 咨询
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Security BearerAuth
// @Router /api/v1/inquiries/count [get]
func (h *Handler) CountUnprocessed(c *gin.Context) {
    n, err := h.inqService.CountUnprocessed(c.Request.Context())
    if err != nil {
        renderServiceError(c, err)
        return
    }
    response.Success(c, gin.H{"unprocessed": n})
}

// Get 咨询详情（含回复记录）
// @Summary 咨询详情
// @Tags 咨询
// @Param id path string true "咨询ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/inquiries/{id} [get]
func (h *Handler) Get(c *gin.Context) {
    inq, err := h.inqService.Get(c.Request.Context(), c.Param("id"))
    if err != nil {
        renderServiceError(c, err)
        return
    }
    response.Success(c, inq)
}

type markStatusRequest struct {
    Action string `json:"action" binding:"required"` // processed / unread
}

// MarkStatus 标记已处理 / 未读（幂等；replied 为终态不可改）
// @Summary 标记咨询状态
// @Tags 咨询
// @Accept json
// @Param id path string true "咨询ID"
// @Param request body markStatusRequest true "动作"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/inquiries/{id}/status [post]
func (h *Handler) MarkStatus(c *gin.Context) {
    var req markStatusRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    actor := middleware.CurrentActor(c)
    if err := h.inqService.MarkStatus(c.Request.Context(), actor, c.Param("id"), req.Action); err != nil {
        renderServiceError(c, err)
        return
    }
    response.Success(c, nil)
}

type bulkMarkRequest struct {
    IDs    []string `json:"ids" binding:"required"`
    Action string   `json:"action" binding:"required"`
}

// BulkMarkStatus 批量标记，逐条尽力执行
// @Summary 批量标记咨询状态
// @Tags 咨询
// @Accept json
// @Param request body bulkMarkRequest true "ID 列表与动作"
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Security BearerAuth
// @Router /api/v1/inquiries/status [post]
func (h *Handler) BulkMarkStatus(c *gin.Context) {
    var req bulkMarkRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    actor := middleware.CurrentActor(c)
    updated, err := h.inqService.BulkMarkStatus(c.Request.Context(), actor, req.IDs, req.Action)
    if err != nil {
        renderServiceError(c, err)
        return
    }
    response.Success(c, gin.H{"requested": len(req.IDs), "updated": updated})
}

type replyRequest struct {
    Body string `json:"body" binding:"required"`
}

// Reply 管理员回复：同步发信成功后追加记录并置 replied
// @Summary 回复咨询
// @Tags 咨询
// @Accept json
// @Param id path string true "咨询ID"
// @Param request body replyRequest true "回复正文（最少10字符）"
// @Success 200 {object} response.Response{data=service.ReplyResult}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/inquiries/{id}/replies [post]
func (h *Handler) Reply(c *gin.Context) {
    var req replyRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    actor := middleware.CurrentActor(c)
    res, err := h.inqService.Reply(c.Request.Context(), actor, c.Param("id"), req.Body)
    if err != nil {
        renderServiceError(c, err)
        return
    }
    response.Success(c, res)
}

// Purge 清空全部咨询（卸载流程）
// @Summary 清空全部咨询
// @Tags 咨询
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/inquiries [delete]
func (h *Handler) Purge(c *gin.Context) {
    if err := h.inqService.PurgeAll(c.Request.Context()); err != nil {
        renderServiceError(c, err)
        return
    }
    response.Success(c, nil)
}
