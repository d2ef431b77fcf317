package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/leonardojap/cursosbackend/internal/model"
)

// CourseWithStudentCount 看板查询结果：课程 + 选课人数
type CourseWithStudentCount struct {
	model.Course
	StudentsCount int64 `json:"students_count"`
}

// CourseRepository 课程数据访问接口（全部按所有者过滤）
type CourseRepository interface {
	List(ctx context.Context, ownerID, search string, offset, limit int) ([]model.Course, int64, error)
	Create(ctx context.Context, course *model.Course) error
	GetByID(ctx context.Context, ownerID, id string) (*model.Course, error)
	GetWithSchedules(ctx context.Context, ownerID, id string) (*model.Course, error)
	Update(ctx context.Context, course *model.Course) error
	// DeleteWithSchedules 在同一事务中删除课程及其全部时间表，
	// 避免中途失败留下孤儿 schedule 记录
	DeleteWithSchedules(ctx context.Context, ownerID, id string) error
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
	TopByEnrollmentCount(ctx context.Context, ownerID string, createdAfter time.Time, limit int) ([]CourseWithStudentCount, error)
}

type courseRepo struct {
	db *gorm.DB
}

// NewCourseRepo 创建 CourseRepository 实例
func NewCourseRepo(db *gorm.DB) CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) List(ctx context.Context, ownerID, search string, offset, limit int) ([]model.Course, int64, error) {
	var courses []model.Course
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Course{}).Scopes(OwnedBy(ownerID))

	if search != "" {
		like := "%" + search + "%"
		db = db.Where(
			r.db.Where("name ILIKE ?", like).
				Or("CAST(start_date AS TEXT) ILIKE ?", like).
				Or("CAST(end_date AS TEXT) ILIKE ?", like).
				Or("type ILIKE ?", like),
		)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Offset(offset).Limit(limit).
		Order("created_at DESC, id ASC").
		Find(&courses).Error; err != nil {
		return nil, 0, err
	}

	return courses, total, nil
}

func (r *courseRepo) Create(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *courseRepo) GetByID(ctx context.Context, ownerID, id string) (*model.Course, error) {
	var course model.Course
	err := r.db.WithContext(ctx).
		Scopes(OwnedBy(ownerID)).
		Where("id = ?", id).
		First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepo) GetWithSchedules(ctx context.Context, ownerID, id string) (*model.Course, error) {
	var course model.Course
	err := r.db.WithContext(ctx).
		Scopes(OwnedBy(ownerID)).
		Where("id = ?", id).
		Preload("Schedules").
		First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepo) Update(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Save(course).Error
}

func (r *courseRepo) DeleteWithSchedules(ctx context.Context, ownerID, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", id).
			Delete(&model.Schedule{}).Error; err != nil {
			return err
		}
		return tx.Scopes(OwnedBy(ownerID)).
			Where("id = ?", id).
			Delete(&model.Course{}).Error
	})
}

func (r *courseRepo) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Course{}).
		Scopes(OwnedBy(ownerID)).
		Count(&total).Error
	return total, err
}

// TopByEnrollmentCount 按选课人数降序返回 createdAfter 之后创建的前 limit 门课程
func (r *courseRepo) TopByEnrollmentCount(ctx context.Context, ownerID string, createdAfter time.Time, limit int) ([]CourseWithStudentCount, error) {
	var rows []CourseWithStudentCount
	err := r.db.WithContext(ctx).
		Model(&model.Course{}).
		Select("courses.*, COUNT(course_students.student_id) AS students_count").
		Joins("LEFT JOIN course_students ON course_students.course_id = courses.id").
		Where("courses.user_id = ?", ownerID).
		Where("courses.created_at >= ?", createdAfter).
		Group("courses.id").
		Order("students_count DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
