package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/leonardojap/cursosbackend/internal/dto"
	"github.com/leonardojap/cursosbackend/internal/service"
	"github.com/leonardojap/cursosbackend/pkg/response"
)

// CourseHandler 课程模块 HTTP 处理器
type CourseHandler struct {
	courseSvc service.CourseService
}

// NewCourseHandler 创建 CourseHandler
func NewCourseHandler(courseSvc service.CourseService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc}
}

// List 分页查询当前教师的课程
// GET /courses?page=1&limit=10&search=
func (h *CourseHandler) List(c *gin.Context) {
	ownerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	list, total, err := h.courseSvc.List(c.Request.Context(), ownerID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	page := response.NewPage(list, total, req.Page, req.Limit)
	response.OK(c, page, "Courses retrieved successfully")
}

// Create 创建课程
// POST /courses
func (h *CourseHandler) Create(c *gin.Context) {
	ownerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	course, err := h.courseSvc.Create(c.Request.Context(), ownerID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, course, "Course created successfully")
}

// Get 查询单个课程，附带授课时段
// GET /courses/:id
func (h *CourseHandler) Get(c *gin.Context) {
	ownerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	course, err := h.courseSvc.GetByID(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			response.NotFound(c, "Course not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, course, "Course retrieved successfully")
}

// Update 全量更新课程
// PUT /courses/:id
func (h *CourseHandler) Update(c *gin.Context) {
	ownerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	course, err := h.courseSvc.Update(c.Request.Context(), ownerID, c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			response.NotFound(c, "Course not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, course, "Course updated successfully")
}

// Delete 删除课程：有学生选课时拒绝，否则连同授课时段一并删除
// DELETE /courses/:id
func (h *CourseHandler) Delete(c *gin.Context) {
	ownerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	course, err := h.courseSvc.Delete(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCourseNotFound):
			response.NotFound(c, "Course not found")
		case errors.Is(err, service.ErrCourseHasStudents):
			response.BadRequest(c, "Course has students, cannot be deleted")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, course, "Course deleted successfully")
}
