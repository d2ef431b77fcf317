package dto

// ── 选课模块 DTO ──

// BindRequest 学生绑定课程请求
type BindRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	CourseID  string `json:"course_id"  binding:"required"`
}

// EnrollmentResponse 选课关联响应
type EnrollmentResponse struct {
	StudentID string `json:"student_id"`
	CourseID  string `json:"course_id"`
	CreatedAt string `json:"created_at"`
}
