package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/leonardojap/cursosbackend/internal/model"
)

// StudentWithCourseCount 看板查询结果：学生 + 选课数
type StudentWithCourseCount struct {
	model.Student
	CoursesCount int64 `json:"courses_count"`
}

// StudentRepository 学生数据访问接口（全部按所有者过滤）
type StudentRepository interface {
	List(ctx context.Context, ownerID, search string, offset, limit int) ([]model.Student, int64, error)
	Create(ctx context.Context, student *model.Student) error
	GetByID(ctx context.Context, ownerID, id string) (*model.Student, error)
	GetWithCourses(ctx context.Context, ownerID, id string) (*model.Student, error)
	FindDuplicate(ctx context.Context, ownerID, email, identification string) (*model.Student, error)
	Update(ctx context.Context, student *model.Student) error
	Delete(ctx context.Context, ownerID, id string) error
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
	TopByCourseCount(ctx context.Context, ownerID string, limit int) ([]StudentWithCourseCount, error)
}

type studentRepo struct {
	db *gorm.DB
}

// NewStudentRepo 创建 StudentRepository 实例
func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) List(ctx context.Context, ownerID, search string, offset, limit int) ([]model.Student, int64, error) {
	var students []model.Student
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Student{}).Scopes(OwnedBy(ownerID))

	if search != "" {
		like := "%" + search + "%"
		db = db.Where(
			r.db.Where("name ILIKE ?", like).
				Or("lastname ILIKE ?", like).
				Or("email ILIKE ?", like).
				Or("CAST(age AS TEXT) ILIKE ?", like).
				Or("identification ILIKE ?", like),
		)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Offset(offset).Limit(limit).
		Order("created_at DESC, id ASC").
		Find(&students).Error; err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

func (r *studentRepo) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepo) GetByID(ctx context.Context, ownerID, id string) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Scopes(OwnedBy(ownerID)).
		Where("id = ?", id).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// GetWithCourses 查询学生并嵌套其（同一教师名下的）课程及课程时间表
func (r *studentRepo) GetWithCourses(ctx context.Context, ownerID, id string) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Scopes(OwnedBy(ownerID)).
		Where("id = ?", id).
		Preload("Courses", "user_id = ?", ownerID).
		Preload("Courses.Schedules").
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// FindDuplicate 同一教师名下按 email 或 identification 查重
func (r *studentRepo) FindDuplicate(ctx context.Context, ownerID, email, identification string) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Scopes(OwnedBy(ownerID)).
		Where(r.db.Where("email = ?", email).Or("identification = ?", identification)).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) Update(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Save(student).Error
}

func (r *studentRepo) Delete(ctx context.Context, ownerID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(OwnedBy(ownerID)).
		Where("id = ?", id).
		Delete(&model.Student{}).Error
}

func (r *studentRepo) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Student{}).
		Scopes(OwnedBy(ownerID)).
		Count(&total).Error
	return total, err
}

// TopByCourseCount 按选课数降序返回前 limit 名学生
func (r *studentRepo) TopByCourseCount(ctx context.Context, ownerID string, limit int) ([]StudentWithCourseCount, error) {
	var rows []StudentWithCourseCount
	err := r.db.WithContext(ctx).
		Model(&model.Student{}).
		Select("students.*, COUNT(course_students.course_id) AS courses_count").
		Joins("LEFT JOIN course_students ON course_students.student_id = students.id").
		Where("students.user_id = ?", ownerID).
		Group("students.id").
		Order("courses_count DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
