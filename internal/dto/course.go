package dto

// ── 课程模块 DTO ──

// CourseRequest 创建/更新课程请求
type CourseRequest struct {
	Name      string `json:"name"       binding:"required,max=50"`
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   binding:"required,datetime=2006-01-02"`
	Type      string `json:"type"       binding:"required,oneof=OFFLINE ONLINE"`
}

// CourseResponse 课程信息响应
// Schedules 仅在详情/嵌套场景填充
type CourseResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	StartDate string             `json:"start_date"`
	EndDate   string             `json:"end_date"`
	Type      string             `json:"type"`
	UserID    string             `json:"user_id"`
	CreatedAt string             `json:"created_at"`
	UpdatedAt string             `json:"updated_at"`
	Schedules []ScheduleResponse `json:"schedules,omitempty"`
}
