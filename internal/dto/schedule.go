package dto

// ── 时间表模块 DTO ──

// ScheduleRequest 创建/更新课程时间表请求
// start_hour/end_hour 用指针以允许 0 点
type ScheduleRequest struct {
	Day       string `json:"day"        binding:"required,oneof=LUNES MARTES MIERCOLES JUEVES VIERNES SABADO DOMINGO"`
	StartHour *int   `json:"start_hour" binding:"required,min=0,max=23"`
	EndHour   *int   `json:"end_hour"   binding:"required,min=0,max=23"`
	CourseID  string `json:"course_id"  binding:"required"`
}

// ScheduleResponse 时间表信息响应
type ScheduleResponse struct {
	ID        string `json:"id"`
	Day       string `json:"day"`
	StartHour int    `json:"start_hour"`
	EndHour   int    `json:"end_hour"`
	CourseID  string `json:"course_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
