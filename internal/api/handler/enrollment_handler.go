package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/leonardojap/cursosbackend/internal/dto"
	"github.com/leonardojap/cursosbackend/internal/service"
	"github.com/leonardojap/cursosbackend/pkg/response"
)

// EnrollmentHandler 选课关系模块 HTTP 处理器
type EnrollmentHandler struct {
	enrollmentSvc service.EnrollmentService
}

// NewEnrollmentHandler 创建 EnrollmentHandler
func NewEnrollmentHandler(enrollmentSvc service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentSvc: enrollmentSvc}
}

// Bind 将学生绑定到课程
// 校验顺序：学生归属 → 课程归属 → 重复绑定
// POST /bind-student-course
func (h *EnrollmentHandler) Bind(c *gin.Context) {
	ownerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.BindRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	enrollment, err := h.enrollmentSvc.Bind(c.Request.Context(), ownerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			response.NotFound(c, "Student not found")
		case errors.Is(err, service.ErrCourseNotFound):
			response.NotFound(c, "Course not found")
		case errors.Is(err, service.ErrAlreadyEnrolled):
			response.BadRequest(c, "Student is already enrolled in this course")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, enrollment, "Student enrolled in course successfully")
}

// Unbind 解除学生与课程的绑定
// 校验顺序：绑定关系存在 → 学生归属 → 课程归属
// DELETE /student-courses/:student_id/:course_id
func (h *EnrollmentHandler) Unbind(c *gin.Context) {
	ownerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	studentID := c.Param("student_id")
	courseID := c.Param("course_id")

	if err := h.enrollmentSvc.Unbind(c.Request.Context(), ownerID, studentID, courseID); err != nil {
		switch {
		case errors.Is(err, service.ErrNotEnrolled):
			response.BadRequest(c, "Student is not enrolled in this course")
		case errors.Is(err, service.ErrStudentNotFound):
			response.NotFound(c, "Student not found")
		case errors.Is(err, service.ErrCourseNotFound):
			response.NotFound(c, "Course not found")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Message(c, "Student unenrolled from course successfully")
}
