package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/leonardojap/cursosbackend/internal/model"
)

// EnrollmentRepository 学生选课关联数据访问接口
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *model.Enrollment) error
	Get(ctx context.Context, studentID, courseID string) (*model.Enrollment, error)
	Delete(ctx context.Context, studentID, courseID string) error
	CountByStudent(ctx context.Context, studentID string) (int64, error)
	CountByCourse(ctx context.Context, courseID string) (int64, error)
}

type enrollmentRepo struct {
	db *gorm.DB
}

// NewEnrollmentRepo 创建 EnrollmentRepository 实例
func NewEnrollmentRepo(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepo{db: db}
}

func (r *enrollmentRepo) Create(ctx context.Context, enrollment *model.Enrollment) error {
	return r.db.WithContext(ctx).Create(enrollment).Error
}

func (r *enrollmentRepo) Get(ctx context.Context, studentID, courseID string) (*model.Enrollment, error) {
	var e model.Enrollment
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *enrollmentRepo) Delete(ctx context.Context, studentID, courseID string) error {
	return r.db.WithContext(ctx).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		Delete(&model.Enrollment{}).Error
}

func (r *enrollmentRepo) CountByStudent(ctx context.Context, studentID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Enrollment{}).
		Where("student_id = ?", studentID).
		Count(&total).Error
	return total, err
}

func (r *enrollmentRepo) CountByCourse(ctx context.Context, courseID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Enrollment{}).
		Where("course_id = ?", courseID).
		Count(&total).Error
	return total, err
}
