package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leonardojap/cursosbackend/internal/dto"
	"github.com/leonardojap/cursosbackend/internal/service"
	"github.com/leonardojap/cursosbackend/pkg/response"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Register 教师注册
// POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWeakPassword):
			response.BadRequest(c, gin.H{
				"password": "The password must contain at least one lowercase letter, one uppercase letter, one digit and one special character",
			})
		case errors.Is(err, service.ErrEmailTaken):
			response.BadRequest(c, gin.H{
				"email": "The email has already been taken",
			})
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, user, "User created successfully")
}

// Login 教师登录，签发 1 天有效期的 Bearer Token
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWeakPassword):
			response.BadRequest(c, gin.H{
				"password": "The password must contain at least one lowercase letter, one uppercase letter, one digit and one special character",
			})
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Fail(c, http.StatusUnauthorized, "Invalid credentials")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result, "User logged in successfully")
}

// Logout 撤销本次请求携带的令牌
// GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	plain, ok := MustGetToken(c)
	if !ok {
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), plain); err != nil {
		response.InternalError(c)
		return
	}

	response.Message(c, "User logged out successfully")
}
