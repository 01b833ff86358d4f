package handler

import (
    "errors"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/inquiry-service/internal/service"
    "github.com/d60-Lab/inquiry-service/pkg/response"
)

type loginRequest struct {
    Username string `json:"username" binding:"required"`
    Password string `json:"password" binding:"required"`
}

// Login 管理员登录，签发 JWT
// @Summary 管理员登录
// @Tags 认证
// @Accept json
// @Param request body loginRequest true "凭据"
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Failure 401 {object} response.Response
// @Router /api/v1/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
    var req loginRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
    if err != nil {
        if errors.Is(err, service.ErrInvalidCredentials) {
            response.Unauthorized(c, "invalid username or password")
            return
        }
        response.InternalError(c, err)
        return
    }
    response.Success(c, gin.H{"token": token})
}
