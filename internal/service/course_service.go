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

// ── 课程模块业务错误 ──

var (
	ErrCourseNotFound    = errors.New("course not found")
	ErrCourseHasStudents = errors.New("course has students")
)

// 日期字段的对外格式
const dateLayout = "2006-01-02"

// CourseService 课程业务接口
type CourseService interface {
	List(ctx context.Context, ownerID string, req *dto.ListRequest) ([]dto.CourseResponse, int64, error)
	Create(ctx context.Context, ownerID string, req *dto.CourseRequest) (*dto.CourseResponse, error)
	GetByID(ctx context.Context, ownerID, id string) (*dto.CourseResponse, error)
	Update(ctx context.Context, ownerID, id string, req *dto.CourseRequest) (*dto.CourseResponse, error)
	Delete(ctx context.Context, ownerID, id string) (*dto.CourseResponse, error)
}

type courseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCourseService 创建 CourseService 实例
func NewCourseService(repo *repository.Repository, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *courseService) List(ctx context.Context, ownerID string, req *dto.ListRequest) ([]dto.CourseResponse, int64, error) {
	courses, total, err := s.repo.Course.List(ctx, ownerID, req.Search, req.GetOffset(), req.Limit)
	if err != nil {
		s.logger.Error("查询课程列表失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		result = append(result, *courseToResponse(&courses[i]))
	}
	return result, total, nil
}

// ────────────────────── Create ──────────────────────

func (s *courseService) Create(ctx context.Context, ownerID string, req *dto.CourseRequest) (*dto.CourseResponse, error) {
	// 日期格式已由绑定层校验，此处仅解析
	startDate, _ := time.Parse(dateLayout, req.StartDate)
	endDate, _ := time.Parse(dateLayout, req.EndDate)

	course := &model.Course{
		Name:      req.Name,
		StartDate: startDate,
		EndDate:   endDate,
		Type:      req.Type,
		UserID:    ownerID,
	}

	if err := s.repo.Course.Create(ctx, course); err != nil {
		s.logger.Error("创建课程失败", zap.Error(err))
		return nil, err
	}

	return courseToResponse(course), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *courseService) GetByID(ctx context.Context, ownerID, id string) (*dto.CourseResponse, error) {
	course, err := s.repo.Course.GetWithSchedules(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	resp := courseToResponse(course)
	resp.Schedules = schedulesToResponse(course.Schedules)
	return resp, nil
}

// ────────────────────── Update ──────────────────────

func (s *courseService) Update(ctx context.Context, ownerID, id string, req *dto.CourseRequest) (*dto.CourseResponse, error) {
	course, err := s.repo.Course.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	startDate, _ := time.Parse(dateLayout, req.StartDate)
	endDate, _ := time.Parse(dateLayout, req.EndDate)

	course.Name = req.Name
	course.StartDate = startDate
	course.EndDate = endDate
	course.Type = req.Type

	if err := s.repo.Course.Update(ctx, course); err != nil {
		s.logger.Error("更新课程失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return courseToResponse(course), nil
}

// ────────────────────── Delete ──────────────────────

func (s *courseService) Delete(ctx context.Context, ownerID, id string) (*dto.CourseResponse, error) {
	course, err := s.repo.Course.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	// 仍有学生选课的课程不允许删除
	enrolled, err := s.repo.Enrollment.CountByCourse(ctx, id)
	if err != nil {
		s.logger.Error("统计课程选课数失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if enrolled > 0 {
		return nil, ErrCourseHasStudents
	}

	// 时间表随课程在同一事务中级联删除
	if err := s.repo.Course.DeleteWithSchedules(ctx, ownerID, id); err != nil {
		s.logger.Error("删除课程失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return courseToResponse(course), nil
}

// ── 内部辅助方法 ──

func courseToResponse(c *model.Course) *dto.CourseResponse {
	return &dto.CourseResponse{
		ID:        c.ID,
		Name:      c.Name,
		StartDate: c.StartDate.Format(dateLayout),
		EndDate:   c.EndDate.Format(dateLayout),
		Type:      c.Type,
		UserID:    c.UserID,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}
