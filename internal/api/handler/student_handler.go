package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/leonardojap/cursosbackend/internal/dto"
	"github.com/leonardojap/cursosbackend/internal/service"
	"github.com/leonardojap/cursosbackend/pkg/response"
)

// StudentHandler 学生模块 HTTP 处理器
type StudentHandler struct {
	studentSvc service.StudentService
}

// NewStudentHandler 创建 StudentHandler
func NewStudentHandler(studentSvc service.StudentService) *StudentHandler {
	return &StudentHandler{studentSvc: studentSvc}
}

// List 分页查询当前教师的学生，支持跨列模糊搜索
// GET /students?page=1&limit=10&search=
func (h *StudentHandler) List(c *gin.Context) {
	ownerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	list, total, err := h.studentSvc.List(c.Request.Context(), ownerID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	page := response.NewPage(list, total, req.Page, req.Limit)
	response.OK(c, page, "Students retrieved successfully")
}

// Create 创建学生
// POST /students
func (h *StudentHandler) Create(c *gin.Context) {
	ownerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	student, err := h.studentSvc.Create(c.Request.Context(), ownerID, &req)
	if err != nil {
		if errors.Is(err, service.ErrStudentExists) {
			response.BadRequest(c, "Student already exists")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, student, "Student created successfully")
}

// Get 查询单个学生，附带已选课程及其时段
// GET /students/:id
func (h *StudentHandler) Get(c *gin.Context) {
	ownerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	student, err := h.studentSvc.GetByID(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.NotFound(c, "Student not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, student, "Student retrieved successfully")
}

// Update 全量更新学生
// PUT /students/:id
func (h *StudentHandler) Update(c *gin.Context) {
	ownerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	student, err := h.studentSvc.Update(c.Request.Context(), ownerID, c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.NotFound(c, "Student not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, student, "Student updated successfully")
}

// Delete 删除学生，存在选课关系时拒绝
// DELETE /students/:id
func (h *StudentHandler) Delete(c *gin.Context) {
	ownerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	student, err := h.studentSvc.Delete(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			response.NotFound(c, "Student not found")
		case errors.Is(err, service.ErrStudentEnrolled):
			response.BadRequest(c, "Student is enrolled in a course")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, student, "Student deleted successfully")
}
