package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/glennfor/presence/pkg/response"
)

// MustGetUserID 从 Gin 上下文中安全提取 user_id。
// 如果认证中间件未正确注入 user_id，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return s, true
}

// GetTokenJTI 提取当前会话 Token 的 jti（登出用）
func GetTokenJTI(c *gin.Context) string {
	return c.GetString("token_jti")
}

// GetTokenExpiresAt 提取当前会话 Token 的过期时间
func GetTokenExpiresAt(c *gin.Context) time.Time {
	v, exists := c.Get("token_expires_at")
	if !exists {
		return time.Time{}
	}
	t, ok := v.(time.Time)
	if !ok {
		return time.Time{}
	}
	return t
}
