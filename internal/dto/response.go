package dto

// ListRequest 通用分页查询参数
// page 与 limit 为必填（与对外 API 约定一致），search 可选
type ListRequest struct {
	Page   int    `form:"page"   binding:"required,min=1"`
	Limit  int    `form:"limit"  binding:"required,min=1,max=100"`
	Search string `form:"search" binding:"omitempty,max=100"`
}

// GetOffset 计算偏移量
func (r *ListRequest) GetOffset() int {
	return (r.Page - 1) * r.Limit
}
