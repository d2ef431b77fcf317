package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/leonardojap/cursosbackend/internal/dto"
	"github.com/leonardojap/cursosbackend/internal/service"
	"github.com/leonardojap/cursosbackend/pkg/response"
)

// ScheduleHandler 授课时段模块 HTTP 处理器
type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
}

// NewScheduleHandler 创建 ScheduleHandler
func NewScheduleHandler(scheduleSvc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

// Create 为课程创建授课时段，课程必须属于当前教师
// POST /schedules
func (h *ScheduleHandler) Create(c *gin.Context) {
	ownerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	schedule, err := h.scheduleSvc.Create(c.Request.Context(), ownerID, &req)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			response.NotFound(c, "Course not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, schedule, "Schedule created successfully")
}

// Update 全量更新授课时段，改绑课程时校验新课程归属
// PUT /schedules/:id
func (h *ScheduleHandler) Update(c *gin.Context) {
	ownerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	schedule, err := h.scheduleSvc.Update(c.Request.Context(), ownerID, c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrScheduleNotFound):
			response.NotFound(c, "Schedule not found")
		case errors.Is(err, service.ErrCourseNotFound):
			response.NotFound(c, "Course not found")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, schedule, "Schedule updated successfully")
}

// Delete 删除授课时段
// DELETE /schedules/:id
func (h *ScheduleHandler) Delete(c *gin.Context) {
	ownerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.scheduleSvc.Delete(c.Request.Context(), ownerID, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrScheduleNotFound) {
			response.NotFound(c, "Schedule not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.Message(c, "Schedule deleted successfully")
}
