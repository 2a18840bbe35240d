package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/glennfor/presence/config"
	"github.com/glennfor/presence/internal/dto"
	"github.com/glennfor/presence/internal/model"
	"github.com/glennfor/presence/pkg/jwt"
)

// ── 测试辅助 ──

func testAuthConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret-key-for-auth-service",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
	}
}

func setupTestAuthService() (AuthService, *mockRepos, *jwt.Manager) {
	cfg := testAuthConfig()
	repo, mocks := newMockRepository()
	jwtMgr := jwt.NewManager(&cfg.Auth)
	// Redis 为空，黑名单与轮换降级为无操作
	svc := NewAuthService(cfg, repo, jwtMgr, nil, zap.NewNop())
	return svc, mocks, jwtMgr
}

func seedUser(mocks *mockRepos, password string, isManager bool) *model.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	user := &model.User{
		UserID:       "user-001",
		Email:        "zhangsan@example.com",
		PasswordHash: string(hash),
		Name:         "张三",
		IsManager:    isManager,
	}
	mocks.user.users[user.UserID] = user
	return user
}

// ── Login 测试 ──

func TestAuthService_Login_Success(t *testing.T) {
	svc, mocks, jwtMgr := setupTestAuthService()
	seedUser(mocks, "secret123", false)

	result, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "zhangsan@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Fatal("应同时签发 Access 与 Refresh Token")
	}
	if result.ExpiresIn != int((15 * time.Minute).Seconds()) {
		t.Errorf("期望ExpiresIn=900，实际=%d", result.ExpiresIn)
	}
	if result.User.Email != "zhangsan@example.com" {
		t.Errorf("期望用户信息随 Token 返回，实际=%+v", result.User)
	}

	claims, err := jwtMgr.ParseToken(result.AccessToken)
	if err != nil {
		t.Fatalf("签发的 AccessToken 应可解析: %v", err)
	}
	if claims.UserID != "user-001" || claims.TokenType != "access" {
		t.Errorf("AccessToken 声明不正确: %+v", claims)
	}
	if claims.IsManager {
		t.Error("普通员工的 is_manager 声明应为 false")
	}
}

func TestAuthService_Login_ManagerClaim(t *testing.T) {
	svc, mocks, jwtMgr := setupTestAuthService()
	seedUser(mocks, "secret123", true)

	result, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "zhangsan@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}
	claims, _ := jwtMgr.ParseToken(result.AccessToken)
	if !claims.IsManager {
		t.Error("管理员的 is_manager 声明应为 true")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, mocks, _ := setupTestAuthService()
	seedUser(mocks, "secret123", false)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "zhangsan@example.com",
		Password: "wrong-password",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	// 用户不存在与密码错误返回同一错误，不泄露账号是否存在
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

// ── RefreshToken 测试 ──

func TestAuthService_RefreshToken_Success(t *testing.T) {
	svc, mocks, _ := setupTestAuthService()
	seedUser(mocks, "secret123", false)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "zhangsan@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}

	refreshed, err := svc.RefreshToken(context.Background(), login.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken 应成功: %v", err)
	}
	if refreshed.AccessToken == "" || refreshed.RefreshToken == "" {
		t.Error("刷新后应签发新的 Token 对")
	}
}

func TestAuthService_RefreshToken_RejectsAccessToken(t *testing.T) {
	svc, mocks, _ := setupTestAuthService()
	seedUser(mocks, "secret123", false)

	login, _ := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "zhangsan@example.com",
		Password: "secret123",
	})

	// Access Token 不能用于刷新
	_, err := svc.RefreshToken(context.Background(), login.AccessToken)
	if !errors.Is(err, ErrInvalidRefresh) {
		t.Errorf("期望 ErrInvalidRefresh，实际: %v", err)
	}
}

func TestAuthService_RefreshToken_Garbage(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	_, err := svc.RefreshToken(context.Background(), "not-a-jwt")
	if !errors.Is(err, ErrInvalidRefresh) {
		t.Errorf("期望 ErrInvalidRefresh，实际: %v", err)
	}
}

func TestAuthService_RefreshToken_DeletedUser(t *testing.T) {
	svc, mocks, _ := setupTestAuthService()
	seedUser(mocks, "secret123", false)

	login, _ := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "zhangsan@example.com",
		Password: "secret123",
	})

	// 账号被删除后，仍在有效期内的 RefreshToken 也应失效
	delete(mocks.user.users, "user-001")
	_, err := svc.RefreshToken(context.Background(), login.RefreshToken)
	if !errors.Is(err, ErrInvalidRefresh) {
		t.Errorf("期望 ErrInvalidRefresh，实际: %v", err)
	}
}

// ── Logout 测试 ──

func TestAuthService_Logout_NilRedisDegrades(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	// Redis 不可用时登出降级为空操作
	if err := svc.Logout(context.Background(), "some-jti", time.Now().Add(time.Hour)); err != nil {
		t.Errorf("Redis 缺席时 Logout 应静默成功: %v", err)
	}
}
