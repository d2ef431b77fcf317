package response

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Envelope 统一成功响应结构
// 约定：成功为 {data, message}，失败为 {error}（error 为字符串或字段错误映射）
type Envelope struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message"`
}

// ErrorBody 统一错误响应结构
type ErrorBody struct {
	Error interface{} `json:"error"`
}

// Page 分页响应数据（放入 Envelope.Data）
type Page struct {
	Data        interface{} `json:"data"`
	Total       int64       `json:"total"`
	CurrentPage int         `json:"current_page"`
	PerPage     int         `json:"per_page"`
	LastPage    int         `json:"last_page"`
}

// NewPage 构造分页数据
func NewPage(list interface{}, total int64, page, limit int) Page {
	lastPage := int(total) / limit
	if int(total)%limit > 0 {
		lastPage++
	}
	if lastPage == 0 {
		lastPage = 1
	}
	return Page{
		Data:        list,
		Total:       total,
		CurrentPage: page,
		PerPage:     limit,
		LastPage:    lastPage,
	}
}

// ── 成功响应 ──

// OK 200 成功响应
func OK(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Envelope{Data: data, Message: message})
}

// Message 200 仅消息响应（如 logout）
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// ── 错误响应 ──

// Fail 通用错误响应，err 为字符串或字段错误映射
func Fail(c *gin.Context, httpStatus int, err interface{}) {
	c.JSON(httpStatus, ErrorBody{Error: err})
}

// BadRequest 400 业务冲突 / 校验失败
func BadRequest(c *gin.Context, err interface{}) {
	Fail(c, http.StatusBadRequest, err)
}

// Unauthorized 401
func Unauthorized(c *gin.Context) {
	Fail(c, http.StatusUnauthorized, "Unauthorized")
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, message)
}

// InternalError 500
func InternalError(c *gin.Context) {
	Fail(c, http.StatusInternalServerError, "Internal server error")
}

// ── 校验错误转换 ──

// ValidationError 将 gin 绑定错误转换为 字段名→错误描述 的映射并写入 400
func ValidationError(c *gin.Context, err error) {
	BadRequest(c, FieldErrors(err))
}

// FieldErrors 提取 validator.ValidationErrors 为字段错误映射
// 非校验类绑定错误（如 JSON 语法错误）返回统一的 body 错误
func FieldErrors(err error) map[string]string {
	fields := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["body"] = "invalid request body"
		return fields
	}

	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		fields[name] = fieldMessage(fe)
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "The " + strings.ToLower(fe.Field()) + " field is required"
	case "email":
		return "The " + strings.ToLower(fe.Field()) + " must be a valid email address"
	case "min":
		return "The " + strings.ToLower(fe.Field()) + " must be at least " + fe.Param()
	case "max":
		return "The " + strings.ToLower(fe.Field()) + " may not be greater than " + fe.Param()
	case "oneof":
		return "The " + strings.ToLower(fe.Field()) + " must be one of: " + fe.Param()
	case "datetime":
		return "The " + strings.ToLower(fe.Field()) + " must match the format " + fe.Param()
	default:
		return "The " + strings.ToLower(fe.Field()) + " field is invalid"
	}
}
