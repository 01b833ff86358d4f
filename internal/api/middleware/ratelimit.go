package middleware

import (
    "net/http"
    "sync"
    "time"

    "github.com/gin-gonic/gin"
    "golang.org/x/time/rate"

    "github.com/d60-Lab/inquiry-service/pkg/response"
)

type ipLimiter struct {
    limiter  *rate.Limiter
    lastSeen time.Time
}

// RateLimit 按客户端 IP 限流（公网提交接口防刷）
func RateLimit(r float64, burst int) gin.HandlerFunc {
    var (
        mu       sync.Mutex
        limiters = make(map[string]*ipLimiter)
    )

    // 闲置 IP 定期清理
    go func() {
        for range time.Tick(5 * time.Minute) {
            mu.Lock()
            for ip, l := range limiters {
                if time.Since(l.lastSeen) > 10*time.Minute {
                    delete(limiters, ip)
                }
            }
            mu.Unlock()
        }
    }()

    return func(c *gin.Context) {
        ip := c.ClientIP()
        mu.Lock()
        l, ok := limiters[ip]
        if !ok {
            l = &ipLimiter{limiter: rate.NewLimiter(rate.Limit(r), burst)}
            limiters[ip] = l
        }
        l.lastSeen = time.Now()
        mu.Unlock()

        if !l.limiter.Allow() {
            c.JSON(http.StatusTooManyRequests, response.Response{
                Code:    http.StatusTooManyRequests,
                Message: "too many requests, please try again later",
            })
            c.Abort()
            return
        }
        c.Next()
    }
}
