package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/glennfor/presence/config"
	"github.com/glennfor/presence/internal/api/handler"
	"github.com/glennfor/presence/internal/api/middleware"
	"github.com/glennfor/presence/pkg/jwt"
	"github.com/glennfor/presence/pkg/redis"
	"github.com/glennfor/presence/pkg/response"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20)) // 1MB

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── 落地页与登录入口（无需认证）──
	r.GET("/", func(c *gin.Context) {
		response.OK(c, gin.H{
			"name":     "presence",
			"manager":  "/manager/dashboard",
			"employee": "/employee/dashboard",
		})
	})
	r.GET(cfg.Auth.LoginPath, h.Auth.LoginEntry)

	// ── 认证模块 ──
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}

	// 守卫管道: SessionAuth（未认证 → 登录入口）按需叠加 ManagerOnly（非管理员 → 员工首页）
	sessionAuth := middleware.SessionAuth(jwtMgr, rdb, cfg.Auth.LoginPath)
	managerOnly := middleware.ManagerOnly("/employee/dashboard")

	authorized := r.Group("")
	authorized.Use(sessionAuth)
	{
		authorized.POST("/auth/logout", h.Auth.Logout)
		authorized.GET("/auth/me", h.User.Me)

		// 员工侧
		employee := authorized.Group("/employee")
		{
			employee.GET("/dashboard", h.Dashboard.EmployeeDashboard)
			employee.POST("/clock-action", middleware.RateLimit(rdb, 20, time.Minute), h.Attendance.ClockAction)
			employee.POST("/leave-requests", h.Leave.CreateLeaveRequest)
		}

		// 管理员侧
		manager := authorized.Group("/manager/dashboard")
		manager.Use(managerOnly)
		{
			manager.GET("", h.Dashboard.ManagerDashboard)

			manager.POST("/leave-requests/:id/delete", h.Leave.DeleteLeaveRequest)
			manager.GET("/leave-requests/export.ics", h.Export.ExportLeaveCalendar)

			manager.GET("/attendances", h.Attendance.ListAttendances)
			manager.GET("/attendances/export", h.Export.ExportAttendances)

			manager.GET("/locations", h.Location.ListLocations)
			manager.POST("/locations", h.Location.CreateLocation)
			manager.POST("/locations/:id/delete", h.Location.DeleteLocation)

			manager.GET("/employees", h.User.ListEmployees)
			manager.POST("/employees", h.User.CreateEmployee)
			manager.POST("/employees/:id/delete", h.User.DeleteEmployee)
		}
	}

	// ── 地点二维码静态资源 ──
	r.Static("/static/qr", cfg.QR.Dir)

	return r
}
