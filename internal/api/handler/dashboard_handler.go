package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/leonardojap/cursosbackend/internal/service"
	"github.com/leonardojap/cursosbackend/pkg/response"
)

// DashboardHandler 统计看板 HTTP 处理器
type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

// NewDashboardHandler 创建 DashboardHandler
func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

// Get 返回当前教师的统计看板
// GET /dashboard
func (h *DashboardHandler) Get(c *gin.Context) {
	ownerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	stats, err := h.dashboardSvc.Get(c.Request.Context(), ownerID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, stats, "Stadistics retrieved successfully")
}
