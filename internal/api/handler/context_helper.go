package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/leonardojap/cursosbackend/internal/api/middleware"
	"github.com/leonardojap/cursosbackend/pkg/response"
)

// MustGetUserID 从 Gin 上下文中安全提取已认证教师 id。
// 如果认证中间件未正确注入 user_id，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.ContextUserID)
	if !exists {
		response.Unauthorized(c)
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c)
		return "", false
	}
	return s, true
}

// MustGetToken 从 Gin 上下文中安全提取本次请求携带的明文令牌（注销用）。
func MustGetToken(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.ContextToken)
	if !exists {
		response.Unauthorized(c)
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c)
		return "", false
	}
	return s, true
}
