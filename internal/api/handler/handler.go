package handler

import "github.com/leonardojap/cursosbackend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth       *AuthHandler
	Student    *StudentHandler
	Course     *CourseHandler
	Schedule   *ScheduleHandler
	Enrollment *EnrollmentHandler
	Dashboard  *DashboardHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		Student:    NewStudentHandler(svc.Student),
		Course:     NewCourseHandler(svc.Course),
		Schedule:   NewScheduleHandler(svc.Schedule),
		Enrollment: NewEnrollmentHandler(svc.Enrollment),
		Dashboard:  NewDashboardHandler(svc.Dashboard),
	}
}
