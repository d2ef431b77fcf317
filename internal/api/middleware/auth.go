package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/leonardojap/cursosbackend/internal/service"
	"github.com/leonardojap/cursosbackend/pkg/response"
)

// 上下文键
const (
	ContextUserID = "user_id"
	ContextToken  = "access_token"
)

// BearerAuth 令牌查表认证中间件
// 从 Authorization: Bearer <token> 提取令牌并解析为教师 id；
// 缺失、未知或已过期的令牌一律 401。通过后把 user_id 与原始令牌
// 写入上下文，下游 Handler 显式读取后传参，不做任何隐式注入
func BearerAuth(authSvc service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		userID, err := authSvc.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			if errors.Is(err, service.ErrUnauthorized) {
				response.Unauthorized(c)
			} else {
				response.InternalError(c)
			}
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextToken, parts[1])

		c.Next()
	}
}
