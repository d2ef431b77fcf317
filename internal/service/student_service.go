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

// ── 学生模块业务错误 ──

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrStudentExists   = errors.New("student already exists")
	ErrStudentEnrolled = errors.New("student is enrolled in a course")
)

// StudentService 学生业务接口
// 所有操作都以显式传入的 ownerID（已认证教师）为作用域
type StudentService interface {
	List(ctx context.Context, ownerID string, req *dto.ListRequest) ([]dto.StudentResponse, int64, error)
	Create(ctx context.Context, ownerID string, req *dto.StudentRequest) (*dto.StudentResponse, error)
	GetByID(ctx context.Context, ownerID, id string) (*dto.StudentResponse, error)
	Update(ctx context.Context, ownerID, id string, req *dto.StudentRequest) (*dto.StudentResponse, error)
	Delete(ctx context.Context, ownerID, id string) (*dto.StudentResponse, error)
}

type studentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudentService 创建 StudentService 实例
func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *studentService) List(ctx context.Context, ownerID string, req *dto.ListRequest) ([]dto.StudentResponse, int64, error) {
	students, total, err := s.repo.Student.List(ctx, ownerID, req.Search, req.GetOffset(), req.Limit)
	if err != nil {
		s.logger.Error("查询学生列表失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		result = append(result, *studentToResponse(&students[i]))
	}
	return result, total, nil
}

// ────────────────────── Create ──────────────────────

func (s *studentService) Create(ctx context.Context, ownerID string, req *dto.StudentRequest) (*dto.StudentResponse, error) {
	// 同一教师名下 email 或 identification 不允许重复；跨教师可重复
	_, err := s.repo.Student.FindDuplicate(ctx, ownerID, req.Email, req.Identification)
	if err == nil {
		return nil, ErrStudentExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("学生查重失败", zap.Error(err))
		return nil, err
	}

	student := &model.Student{
		Name:           req.Name,
		Lastname:       req.Lastname,
		Email:          req.Email,
		Age:            *req.Age,
		Identification: req.Identification,
		UserID:         ownerID,
	}

	if err := s.repo.Student.Create(ctx, student); err != nil {
		s.logger.Error("创建学生失败", zap.Error(err))
		return nil, err
	}

	return studentToResponse(student), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *studentService) GetByID(ctx context.Context, ownerID, id string) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetWithCourses(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("查询学生失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	resp := studentToResponse(student)
	resp.Courses = make([]dto.CourseResponse, 0, len(student.Courses))
	for i := range student.Courses {
		c := courseToResponse(&student.Courses[i])
		c.Schedules = schedulesToResponse(student.Courses[i].Schedules)
		resp.Courses = append(resp.Courses, *c)
	}
	return resp, nil
}

// ────────────────────── Update ──────────────────────

func (s *studentService) Update(ctx context.Context, ownerID, id string, req *dto.StudentRequest) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("查询学生失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	// 全量覆盖，无部分更新
	student.Name = req.Name
	student.Lastname = req.Lastname
	student.Email = req.Email
	student.Age = *req.Age
	student.Identification = req.Identification

	if err := s.repo.Student.Update(ctx, student); err != nil {
		s.logger.Error("更新学生失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return studentToResponse(student), nil
}

// ────────────────────── Delete ──────────────────────

func (s *studentService) Delete(ctx context.Context, ownerID, id string) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("查询学生失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	// 仍有选课记录的学生不允许删除
	enrolled, err := s.repo.Enrollment.CountByStudent(ctx, id)
	if err != nil {
		s.logger.Error("统计学生选课数失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if enrolled > 0 {
		return nil, ErrStudentEnrolled
	}

	if err := s.repo.Student.Delete(ctx, ownerID, id); err != nil {
		s.logger.Error("删除学生失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return studentToResponse(student), nil
}

// ── 内部辅助方法 ──

func studentToResponse(st *model.Student) *dto.StudentResponse {
	return &dto.StudentResponse{
		ID:             st.ID,
		Name:           st.Name,
		Lastname:       st.Lastname,
		Email:          st.Email,
		Age:            st.Age,
		Identification: st.Identification,
		UserID:         st.UserID,
		CreatedAt:      st.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      st.UpdatedAt.Format(time.RFC3339),
	}
}
