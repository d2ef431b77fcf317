package dto

// ── 认证模块 DTO ──

// RegisterRequest 教师注册请求
// 密码强度（大小写/数字/特殊字符）在 Service 层单独校验
type RegisterRequest struct {
	Name     string `json:"name"     binding:"required,max=100"`
	Lastname string `json:"lastname" binding:"required,max=100"`
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// UserResponse 教师信息响应（不含密码）
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// LoginResponse 登录成功响应
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
