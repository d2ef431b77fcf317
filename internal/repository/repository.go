package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User       UserRepository
	Token      TokenRepository
	Student    StudentRepository
	Course     CourseRepository
	Schedule   ScheduleRepository
	Enrollment EnrollmentRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:       NewUserRepo(db),
		Token:      NewTokenRepo(db),
		Student:    NewStudentRepo(db),
		Course:     NewCourseRepo(db),
		Schedule:   NewScheduleRepo(db),
		Enrollment: NewEnrollmentRepo(db),
	}
}
