package handler

import (
    "errors"
    "fmt"
    "strings"

    "github.com/gin-gonic/gin"
    "go.uber.org/zap"

    "github.com/d60-Lab/inquiry-service/internal/service"
    "github.com/d60-Lab/inquiry-service/pkg/logger"
    "github.com/d60-Lab/inquiry-service/pkg/response"
)

// Export 流式导出 CSV；ids 为空则导出全部
// @Summary 导出咨询 CSV
// @Tags 咨询
// @Param ids query string false "逗号分隔的咨询 ID；缺省导出全部"
// @Produce text/csv
// @Success 200 {string} string "CSV 内容"
// @Failure 413 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/inquiries/export [get]
func (h *Handler) Export(c *gin.Context) {
    ctx := c.Request.Context()

    var (
        ids []string
        err error
    )
    if raw := c.Query("ids"); raw != "" {
        for _, id := range strings.Split(raw, ",") {
            if id = strings.TrimSpace(id); id != "" {
                ids = append(ids, id)
            }
        }
    } else {
        ids, err = h.exporter.AllIDs(ctx)
    }

    var tooLarge *service.ExportTooLargeError
    if errors.As(err, &tooLarge) {
        response.TooLarge(c, tooLarge.Error(), gin.H{
            "requested": tooLarge.Requested, "limit": tooLarge.Limit,
        })
        return
    }
    if err != nil {
        response.InternalError(c, err)
        return
    }
    // 超限校验在写任何字节之前完成，避免半截下载
    if len(ids) > h.exporter.MaxRecords() {
        response.TooLarge(c, "export limit exceeded", gin.H{
            "requested": len(ids), "limit": h.exporter.MaxRecords(),
        })
        return
    }

    filename := service.ExportFilename(h.cfg.Mail.SiteName, len(ids))
    c.Header("Content-Type", "text/csv; charset=utf-8")
    c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
    c.Header("Cache-Control", "no-cache")

    if _, err := h.exporter.ExportCSV(ctx, ids, c.Writer); err != nil {
        var tl *service.ExportTooLargeError
        if errors.As(err, &tl) {
            response.TooLarge(c, tl.Error(), gin.H{"requested": tl.Requested, "limit": tl.Limit})
            return
        }
        // 响应头已出，只能断开并记日志
        logger.Error("csv export aborted", zap.Error(err))
        c.Abort()
    }
}
