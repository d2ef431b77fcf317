package dto

// ── 学生模块 DTO ──

// StudentRequest 创建/更新学生请求（全量覆盖，无部分更新）
type StudentRequest struct {
	Name           string `json:"name"           binding:"required,min=3,max=100"`
	Lastname       string `json:"lastname"       binding:"required,min=3,max=100"`
	Email          string `json:"email"          binding:"required,email"`
	Age            *int   `json:"age"            binding:"required,min=18"`
	Identification string `json:"identification" binding:"required,max=11"`
}

// StudentResponse 学生信息响应
// Courses 仅在详情接口填充（嵌套该教师名下的课程及其时间表）
type StudentResponse struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Lastname       string           `json:"lastname"`
	Email          string           `json:"email"`
	Age            int              `json:"age"`
	Identification string           `json:"identification"`
	UserID         string           `json:"user_id"`
	CreatedAt      string           `json:"created_at"`
	UpdatedAt      string           `json:"updated_at"`
	Courses        []CourseResponse `json:"courses,omitempty"`
}
