package middleware

import (
    "strings"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/inquiry-service/internal/service"
    "github.com/d60-Lab/inquiry-service/pkg/response"
)

const actorKey = "actor"

// JWTAuth 管理端接口认证，解析出的 Actor 放入请求上下文
func JWTAuth(auth service.AuthService) gin.HandlerFunc {
    return func(c *gin.Context) {
        h := c.GetHeader("Authorization")
        if !strings.HasPrefix(h, "Bearer ") {
            response.Unauthorized(c, "missing or malformed authorization header")
            c.Abort()
            return
        }
        actor, err := auth.ParseToken(strings.TrimPrefix(h, "Bearer "))
        if err != nil {
            response.Unauthorized(c, "invalid or expired token")
            c.Abort()
            return
        }
        c.Set(actorKey, actor)
        c.Next()
    }
}

// CurrentActor 从上下文取当前管理员，未认证返回 nil
func CurrentActor(c *gin.Context) *service.Actor {
    v, ok := c.Get(actorKey)
    if !ok {
        return nil
    }
    actor, _ := v.(*service.Actor)
    return actor
}
