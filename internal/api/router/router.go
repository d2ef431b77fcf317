package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/leonardojap/cursosbackend/config"
	"github.com/leonardojap/cursosbackend/internal/api/handler"
	"github.com/leonardojap/cursosbackend/internal/api/middleware"
	"github.com/leonardojap/cursosbackend/internal/service"
	"github.com/leonardojap/cursosbackend/pkg/redis"
)

// 登录接口限流参数：每 IP 每分钟 10 次
const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

// Setup 装配全部路由与中间件
func Setup(cfg *config.Config, h *handler.Handler, svc *service.Service, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(1 << 20))

	// ── 公开路由 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/register", h.Auth.Register)
	r.POST("/login", middleware.RateLimit(rdb, loginRateLimit, loginRateWindow), h.Auth.Login)

	// ── 认证路由 ──
	auth := r.Group("/", middleware.BearerAuth(svc.Auth))
	{
		auth.GET("/logout", h.Auth.Logout)

		auth.GET("/students", h.Student.List)
		auth.POST("/students", h.Student.Create)
		auth.GET("/students/:id", h.Student.Get)
		auth.PUT("/students/:id", h.Student.Update)
		auth.DELETE("/students/:id", h.Student.Delete)

		auth.GET("/courses", h.Course.List)
		auth.POST("/courses", h.Course.Create)
		auth.GET("/courses/:id", h.Course.Get)
		auth.PUT("/courses/:id", h.Course.Update)
		auth.DELETE("/courses/:id", h.Course.Delete)

		auth.POST("/schedules", h.Schedule.Create)
		auth.PUT("/schedules/:id", h.Schedule.Update)
		auth.DELETE("/schedules/:id", h.Schedule.Delete)

		auth.POST("/bind-student-course", h.Enrollment.Bind)
		auth.DELETE("/student-courses/:student_id/:course_id", h.Enrollment.Unbind)

		auth.GET("/dashboard", h.Dashboard.Get)
	}

	return r
}
