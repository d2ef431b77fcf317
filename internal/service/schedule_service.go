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

// ── 时间表模块业务错误 ──

var (
	ErrScheduleNotFound = errors.New("schedule not found")
)

// ScheduleService 课程时间表业务接口
// 时间表没有自己的 user_id，所有权始终经由所属课程校验
type ScheduleService interface {
	Create(ctx context.Context, ownerID string, req *dto.ScheduleRequest) (*dto.ScheduleResponse, error)
	Update(ctx context.Context, ownerID, id string, req *dto.ScheduleRequest) (*dto.ScheduleResponse, error)
	Delete(ctx context.Context, ownerID, id string) error
}

type scheduleService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewScheduleService 创建 ScheduleService 实例
func NewScheduleService(repo *repository.Repository, logger *zap.Logger) ScheduleService {
	return &scheduleService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *scheduleService) Create(ctx context.Context, ownerID string, req *dto.ScheduleRequest) (*dto.ScheduleResponse, error) {
	// course_id 必须指向请求教师自己的课程
	if _, err := s.repo.Course.GetByID(ctx, ownerID, req.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.String("course_id", req.CourseID), zap.Error(err))
		return nil, err
	}

	schedule := &model.Schedule{
		Day:       req.Day,
		StartHour: *req.StartHour,
		EndHour:   *req.EndHour,
		CourseID:  req.CourseID,
	}

	if err := s.repo.Schedule.Create(ctx, schedule); err != nil {
		s.logger.Error("创建时间表失败", zap.Error(err))
		return nil, err
	}

	return scheduleToResponse(schedule), nil
}

// ────────────────────── Update ──────────────────────

func (s *scheduleService) Update(ctx context.Context, ownerID, id string, req *dto.ScheduleRequest) (*dto.ScheduleResponse, error) {
	schedule, err := s.repo.Schedule.GetOwned(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("查询时间表失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	// 允许改挂到另一门课程，但目标课程同样必须归属请求教师
	if req.CourseID != schedule.CourseID {
		if _, err := s.repo.Course.GetByID(ctx, ownerID, req.CourseID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCourseNotFound
			}
			s.logger.Error("查询课程失败", zap.String("course_id", req.CourseID), zap.Error(err))
			return nil, err
		}
	}

	schedule.Day = req.Day
	schedule.StartHour = *req.StartHour
	schedule.EndHour = *req.EndHour
	schedule.CourseID = req.CourseID

	if err := s.repo.Schedule.Update(ctx, schedule); err != nil {
		s.logger.Error("更新时间表失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return scheduleToResponse(schedule), nil
}

// ────────────────────── Delete ──────────────────────

func (s *scheduleService) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := s.repo.Schedule.GetOwned(ctx, ownerID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrScheduleNotFound
		}
		s.logger.Error("查询时间表失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Schedule.Delete(ctx, id); err != nil {
		s.logger.Error("删除时间表失败", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── 内部辅助方法 ──

func scheduleToResponse(sc *model.Schedule) *dto.ScheduleResponse {
	return &dto.ScheduleResponse{
		ID:        sc.ID,
		Day:       sc.Day,
		StartHour: sc.StartHour,
		EndHour:   sc.EndHour,
		CourseID:  sc.CourseID,
		CreatedAt: sc.CreatedAt.Format(time.RFC3339),
		UpdatedAt: sc.UpdatedAt.Format(time.RFC3339),
	}
}

func schedulesToResponse(schedules []model.Schedule) []dto.ScheduleResponse {
	result := make([]dto.ScheduleResponse, 0, len(schedules))
	for i := range schedules {
		result = append(result, *scheduleToResponse(&schedules[i]))
	}
	return result
}
