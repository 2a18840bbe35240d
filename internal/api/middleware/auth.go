package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/glennfor/presence/pkg/jwt"
	"github.com/glennfor/presence/pkg/redis"
)

// AccessTokenCookie 浏览器会话使用的 Cookie 名
const AccessTokenCookie = "presence_access_token"

// 守卫按声明顺序组成管道：SessionAuth → ManagerOnly → Handler，
// 任一环节未通过即终止并跳转

// SessionAuth 会话认证中间件
// 依次尝试 Authorization: Bearer <token> 与会话 Cookie；
// 未认证或 Token 失效时 303 跳转到登录入口
func SessionAuth(jwtMgr *jwt.Manager, rdb *redis.Client, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			token, _ = c.Cookie(AccessTokenCookie)
		}
		if token == "" {
			redirectTo(c, loginPath)
			return
		}

		claims, err := jwtMgr.ParseToken(token)
		if err != nil || claims.TokenType != "access" {
			redirectTo(c, loginPath)
			return
		}

		// 已登出的 Token 在黑名单中；Redis 不可用时降级放行
		if rdb != nil {
			blacklisted, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && blacklisted {
				redirectTo(c, loginPath)
				return
			}
		}

		// 将调用者身份注入上下文，Handler 逐层显式传递，不再依赖全局状态
		c.Set("user_id", claims.UserID)
		c.Set("is_manager", claims.IsManager)
		c.Set("token_jti", claims.ID)
		if claims.ExpiresAt != nil {
			c.Set("token_expires_at", claims.ExpiresAt.Time)
		}

		c.Next()
	}
}

// ManagerOnly 管理员守卫
// 已认证但非管理员的请求 303 跳转到员工首页
func ManagerOnly(employeeDashboardPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		isManager, exists := c.Get("is_manager")
		if !exists {
			redirectTo(c, employeeDashboardPath)
			return
		}
		if m, ok := isManager.(bool); !ok || !m {
			redirectTo(c, employeeDashboardPath)
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

func redirectTo(c *gin.Context, path string) {
	c.Redirect(http.StatusSeeOther, path)
	c.Abort()
}
