package main

import (
    "context"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/getsentry/sentry-go"
    "github.com/redis/go-redis/v9"
    "go.uber.org/zap"
    "golang.org/x/crypto/bcrypt"

    "github.com/d60-Lab/inquiry-service/config"
    "github.com/d60-Lab/inquiry-service/internal/api"
    "github.com/d60-Lab/inquiry-service/internal/api/handler"
    "github.com/d60-Lab/inquiry-service/internal/cache"
    "github.com/d60-Lab/inquiry-service/internal/model"
    "github.com/d60-Lab/inquiry-service/internal/repository"
    "github.com/d60-Lab/inquiry-service/internal/service"
    "github.com/d60-Lab/inquiry-service/pkg/database"
    "github.com/d60-Lab/inquiry-service/pkg/logger"
    "github.com/d60-Lab/inquiry-service/pkg/tracing"
)

func must[T any](v T, err error) T { if err != nil { panic(err) }; return v }

// @title Product Inquiry Service API
// @version 1.0
// @description 商品咨询服务：提交、处理、回复与导出
// @BasePath /api/v1
func main() {
    cfg := must(config.Load())
    if err := logger.Init(cfg.Log.Level); err != nil {
        panic(err)
    }
    defer logger.Sync()

    if cfg.Sentry.DSN != "" {
        if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
            logger.Warn("sentry init failed", zap.Error(err))
        }
        defer sentry.Flush(2 * time.Second)
    }

    shutdownTrace := must(tracing.Init(cfg, "inquiry-service"))
    defer func() {
        ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
        defer cancel()
        _ = shutdownTrace(ctx)
    }()

    db := must(database.InitDB(cfg))
    if err := database.Migrate(db); err != nil {
        logger.Error("migrate failed", zap.Error(err))
        os.Exit(1)
    }

    var rdb *redis.Client
    if cfg.Redis.Addr != "" {
        rdb = redis.NewClient(&redis.Options{
            Addr:     cfg.Redis.Addr,
            Password: cfg.Redis.Password,
            DB:       cfg.Redis.DB,
        })
        if err := rdb.Ping(context.Background()).Err(); err != nil {
            // 缓存不可用只降级，不阻塞启动
            logger.Warn("redis unavailable, unread counter falls back to db", zap.Error(err))
            rdb = nil
        }
    }

    // repositories
    inqRepo := repository.NewInquiryRepository(db)
    productRepo := repository.NewProductRepository(db)
    userRepo := repository.NewUserRepository(db)
    settingsRepo := repository.NewSettingsRepository(db, cfg)

    seedAdmin(userRepo)

    // services
    mailer := service.NewSMTPMailer(&cfg.SMTP)
    dispatcher := service.NewMailDispatcher(mailer, 1024)
    stopDispatcher := dispatcher.Start(2)
    hooks := &service.Hooks{}
    notifier := service.NewNotifier(mailer, dispatcher, hooks)
    counter := cache.NewUnreadCounter(inqRepo, rdb, 30*time.Second)
    inqService := service.NewInquiryService(inqRepo, productRepo, settingsRepo, notifier, counter, service.AllowAll{}, hooks)
    exporter := service.NewExporter(inqRepo, productRepo, cfg.Export.MaxRecords, cfg.Export.BatchSize)
    authService := service.NewAuthService(userRepo, &cfg.Auth)

    h := handler.NewHandler(inqService, exporter, authService, settingsRepo, cfg)
    r := api.NewRouter(cfg, h, authService)

    srv := &http.Server{Addr: cfg.Server.Addr, Handler: r}
    go func() {
        logger.Info("server listening", zap.String("addr", cfg.Server.Addr))
        if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
            logger.Error("server error", zap.Error(err))
            os.Exit(1)
        }
    }()

    quit := make(chan os.Signal, 1)
    signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
    <-quit
    logger.Info("shutting down")

    ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancel()
    _ = srv.Shutdown(ctx)
    _ = stopDispatcher(ctx)
}

// seedAdmin 从环境变量种一个初始管理员（已存在则忽略）
func seedAdmin(users repository.UserRepository) {
    username := os.Getenv("ADMIN_USERNAME")
    password := os.Getenv("ADMIN_PASSWORD")
    if username == "" || password == "" {
        return
    }
    hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
    if err != nil {
        logger.Warn("seed admin: hash password failed", zap.Error(err))
        return
    }
    email := os.Getenv("ADMIN_EMAIL")
    if email == "" {
        email = username + "@localhost"
    }
    u := &model.User{
        Username:    username,
        DisplayName: username,
        Email:       email,
        Password:    string(hash),
    }
    if err := users.Create(context.Background(), u); err != nil {
        logger.Warn("seed admin failed", zap.Error(err))
    }
}
