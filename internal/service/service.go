package service

import (
	"go.uber.org/zap"

	"github.com/leonardojap/cursosbackend/config"
	"github.com/leonardojap/cursosbackend/internal/repository"
	"github.com/leonardojap/cursosbackend/pkg/redis"
	"github.com/leonardojap/cursosbackend/pkg/token"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth       AuthService
	Student    StudentService
	Course     CourseService
	Schedule   ScheduleService
	Enrollment EnrollmentService
	Dashboard  DashboardService
}

// NewService 创建 Service 聚合
// rdb 可为 nil：Token 缓存与限流降级，不影响功能正确性
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	tokenMgr *token.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:       NewAuthService(repo, tokenMgr, rdb, logger),
		Student:    NewStudentService(repo, logger),
		Course:     NewCourseService(repo, logger),
		Schedule:   NewScheduleService(repo, logger),
		Enrollment: NewEnrollmentService(repo, logger),
		Dashboard:  NewDashboardService(repo, logger),
	}
}
