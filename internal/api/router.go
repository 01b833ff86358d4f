package api

import (
    sentrygin "github.com/getsentry/sentry-go/gin"
    "github.com/gin-contrib/gzip"
    "github.com/gin-gonic/gin"
    swaggerFiles "github.com/swaggo/files"
    ginSwagger "github.com/swaggo/gin-swagger"
    "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

    "github.com/d60-Lab/inquiry-service/config"
    _ "github.com/d60-Lab/inquiry-service/docs"
    "github.com/d60-Lab/inquiry-service/internal/api/handler"
    "github.com/d60-Lab/inquiry-service/internal/api/middleware"
    "github.com/d60-Lab/inquiry-service/internal/service"
)

// NewRouter 装配全部路由与中间件
func NewRouter(cfg *config.Config, h *handler.Handler, auth service.AuthService) *gin.Engine {
    gin.SetMode(cfg.Server.Mode)
    r := gin.New()

    r.Use(gin.Recovery())
    r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
    r.Use(middleware.RequestLogger())
    r.Use(otelgin.Middleware("inquiry-service"))
    r.Use(gzip.Gzip(gzip.DefaultCompression))

    r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
    r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

    v1 := r.Group("/api/v1")
    {
        v1.POST("/auth/login", h.Login)

        // 公网提交入口，限流防刷
        v1.POST("/inquiries",
            middleware.RateLimit(cfg.Server.SubmitRate, cfg.Server.SubmitBurst),
            h.Submit)

        admin := v1.Group("", middleware.JWTAuth(auth))
        {
            admin.GET("/inquiries", h.List)
            admin.GET("/inquiries/count", h.CountUnprocessed)
            admin.GET("/inquiries/export", h.Export)
            admin.GET("/inquiries/:id", h.Get)
            admin.POST("/inquiries/:id/status", h.MarkStatus)
            admin.POST("/inquiries/status", h.BulkMarkStatus)
            admin.POST("/inquiries/:id/replies", h.Reply)
            admin.DELETE("/inquiries", h.Purge)
            admin.GET("/settings", h.GetSettings)
            admin.PUT("/settings", h.UpdateSettings)
        }
    }
    return r
}
