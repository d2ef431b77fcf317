package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/leonardojap/cursosbackend/internal/dto"
	"github.com/leonardojap/cursosbackend/internal/repository"
)

// 看板榜单条数
const dashboardTopN = 3

// DashboardService 教师看板只读聚合
type DashboardService interface {
	Get(ctx context.Context, ownerID string) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDashboardService 创建 DashboardService 实例
func NewDashboardService(repo *repository.Repository, logger *zap.Logger) DashboardService {
	return &dashboardService{repo: repo, logger: logger}
}

func (s *dashboardService) Get(ctx context.Context, ownerID string) (*dto.DashboardResponse, error) {
	// 近 6 个月创建、选课人数最多的前 3 门课程
	since := time.Now().AddDate(0, -6, 0)
	topCourses, err := s.repo.Course.TopByEnrollmentCount(ctx, ownerID, since, dashboardTopN)
	if err != nil {
		s.logger.Error("查询课程榜单失败", zap.Error(err))
		return nil, err
	}

	// 选课最多的前 3 名学生
	topStudents, err := s.repo.Student.TopByCourseCount(ctx, ownerID, dashboardTopN)
	if err != nil {
		s.logger.Error("查询学生榜单失败", zap.Error(err))
		return nil, err
	}

	totalStudents, err := s.repo.Student.CountByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("统计学生总数失败", zap.Error(err))
		return nil, err
	}

	totalCourses, err := s.repo.Course.CountByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("统计课程总数失败", zap.Error(err))
		return nil, err
	}

	resp := &dto.DashboardResponse{
		TopSixMonths:  make([]dto.CourseStatsResponse, 0, len(topCourses)),
		TopStudents:   make([]dto.StudentStatsResponse, 0, len(topStudents)),
		TotalStudents: totalStudents,
		TotalCourses:  totalCourses,
	}

	for i := range topCourses {
		resp.TopSixMonths = append(resp.TopSixMonths, dto.CourseStatsResponse{
			CourseResponse: *courseToResponse(&topCourses[i].Course),
			StudentsCount:  topCourses[i].StudentsCount,
		})
	}
	for i := range topStudents {
		resp.TopStudents = append(resp.TopStudents, dto.StudentStatsResponse{
			StudentResponse: *studentToResponse(&topStudents[i].Student),
			CoursesCount:    topStudents[i].CoursesCount,
		})
	}

	return resp, nil
}
