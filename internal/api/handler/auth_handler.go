package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glennfor/presence/config"
	"github.com/glennfor/presence/internal/api/middleware"
	"github.com/glennfor/presence/internal/dto"
	"github.com/glennfor/presence/internal/service"
	"github.com/glennfor/presence/pkg/response"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	cfg     *config.Config
	authSvc service.AuthService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(cfg *config.Config, authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{cfg: cfg, authSvc: authSvc}
}

// LoginEntry 登录入口
// GET /login
// 未认证请求被守卫重定向至此；浏览器端由前端渲染登录页
func (h *AuthHandler) LoginEntry(c *gin.Context) {
	response.OK(c, gin.H{
		"login_url": "/auth/login",
		"method":    http.MethodPost,
	})
}

// Login 登录
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, fieldErrors(err))
		return
	}

	tokens, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, 11001, "邮箱或密码错误")
			return
		}
		response.InternalError(c)
		return
	}

	h.setSessionCookie(c, tokens.AccessToken)
	response.OK(c, tokens)
}

// RefreshToken 刷新 Token 对
// POST /auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, fieldErrors(err))
		return
	}

	tokens, err := h.authSvc.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRefresh) {
			response.Unauthorized(c, 11002, "刷新凭证无效")
			return
		}
		response.InternalError(c)
		return
	}

	h.setSessionCookie(c, tokens.AccessToken)
	response.OK(c, tokens)
}

// Logout 登出
// POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	jti := GetTokenJTI(c)
	if jti != "" {
		if err := h.authSvc.Logout(c.Request.Context(), jti, GetTokenExpiresAt(c)); err != nil {
			response.InternalError(c)
			return
		}
	}

	// 清除会话 Cookie
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/",
		h.cfg.Auth.Cookie.Domain, h.cfg.Auth.Cookie.Secure, true)

	response.OK(c, nil)
}

// ── 内部辅助 ──

func (h *AuthHandler) setSessionCookie(c *gin.Context, accessToken string) {
	c.SetSameSite(sameSiteOf(h.cfg.Auth.Cookie.SameSite))
	c.SetCookie(
		middleware.AccessTokenCookie,
		accessToken,
		int(h.cfg.Auth.AccessTokenTTL.Seconds()),
		"/",
		h.cfg.Auth.Cookie.Domain,
		h.cfg.Auth.Cookie.Secure,
		true,
	)
}

func sameSiteOf(s string) http.SameSite {
	switch s {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
