package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/leonardojap/cursosbackend/internal/dto"
	"github.com/leonardojap/cursosbackend/internal/model"
	"github.com/leonardojap/cursosbackend/internal/repository"
)

// ── 选课模块业务错误 ──

var (
	ErrAlreadyEnrolled = errors.New("student is already enrolled in this course")
	ErrNotEnrolled     = errors.New("student is not enrolled in this course")
)

// EnrollmentService 学生选课业务接口
//
// Bind 与 Unbind 的校验顺序刻意不对称（沿用既有对外行为）：
//   - Bind:   学生归属 → 课程归属 → 重复选课
//   - Unbind: 选课存在 → 学生归属 → 课程归属
type EnrollmentService interface {
	Bind(ctx context.Context, ownerID string, req *dto.BindRequest) (*dto.EnrollmentResponse, error)
	Unbind(ctx context.Context, ownerID, studentID, courseID string) error
}

type enrollmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEnrollmentService 创建 EnrollmentService 实例
func NewEnrollmentService(repo *repository.Repository, logger *zap.Logger) EnrollmentService {
	return &enrollmentService{repo: repo, logger: logger}
}

// ────────────────────── Bind ──────────────────────

func (s *enrollmentService) Bind(ctx context.Context, ownerID string, req *dto.BindRequest) (*dto.EnrollmentResponse, error) {
	// 1. 学生必须归属请求教师
	if _, err := s.repo.Student.GetByID(ctx, ownerID, req.StudentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("查询学生失败", zap.String("student_id", req.StudentID), zap.Error(err))
		return nil, err
	}

	// 2. 课程必须归属请求教师
	if _, err := s.repo.Course.GetByID(ctx, ownerID, req.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.String("course_id", req.CourseID), zap.Error(err))
		return nil, err
	}

	// 3. 同一 (student, course) 组合只允许一条
	if _, err := s.repo.Enrollment.Get(ctx, req.StudentID, req.CourseID); err == nil {
		return nil, ErrAlreadyEnrolled
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询选课记录失败", zap.Error(err))
		return nil, err
	}

	enrollment := &model.Enrollment{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
	}
	if err := s.repo.Enrollment.Create(ctx, enrollment); err != nil {
		s.logger.Error("创建选课记录失败", zap.Error(err))
		return nil, err
	}

	return &dto.EnrollmentResponse{
		StudentID: enrollment.StudentID,
		CourseID:  enrollment.CourseID,
		CreatedAt: enrollment.CreatedAt.Format(time.RFC3339),
	}, nil
}

// ────────────────────── Unbind ──────────────────────

func (s *enrollmentService) Unbind(ctx context.Context, ownerID, studentID, courseID string) error {
	// 1. 选课记录必须存在（先于归属校验）
	if _, err := s.repo.Enrollment.Get(ctx, studentID, courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotEnrolled
		}
		s.logger.Error("查询选课记录失败", zap.Error(err))
		return err
	}

	// 2. 学生必须归属请求教师
	if _, err := s.repo.Student.GetByID(ctx, ownerID, studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		s.logger.Error("查询学生失败", zap.String("student_id", studentID), zap.Error(err))
		return err
	}

	// 3. 课程必须归属请求教师
	if _, err := s.repo.Course.GetByID(ctx, ownerID, courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.String("course_id", courseID), zap.Error(err))
		return err
	}

	if err := s.repo.Enrollment.Delete(ctx, studentID, courseID); err != nil {
		s.logger.Error("删除选课记录失败", zap.Error(err))
		return err
	}

	return nil
}
