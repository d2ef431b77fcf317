package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/leonardojap/cursosbackend/internal/dto"
	"github.com/leonardojap/cursosbackend/internal/model"
	"github.com/leonardojap/cursosbackend/internal/repository"
	"github.com/leonardojap/cursosbackend/pkg/redis"
	"github.com/leonardojap/cursosbackend/pkg/token"
)

// ── 认证模块业务错误 ──

var (
	ErrEmailTaken         = errors.New("email already taken")
	ErrWeakPassword       = errors.New("password does not meet the policy")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
)

// AuthService 认证业务接口
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	// Authenticate 将明文 Bearer Token 解析为所属教师 id
	// 缺失、未知或已过期一律返回 ErrUnauthorized
	Authenticate(ctx context.Context, plain string) (string, error)
	Logout(ctx context.Context, plain string) error
}

type authService struct {
	repo     *repository.Repository
	tokenMgr *token.Manager
	rdb      *redis.Client
	logger   *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(repo *repository.Repository, tokenMgr *token.Manager, rdb *redis.Client, logger *zap.Logger) AuthService {
	return &authService{
		repo:     repo,
		tokenMgr: tokenMgr,
		rdb:      rdb,
		logger:   logger,
	}
}

// ────────────────────── Register ──────────────────────

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if !passwordMeetsPolicy(req.Password) {
		return nil, ErrWeakPassword
	}

	// email 全局唯一
	if _, err := s.repo.User.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("密码哈希失败", zap.Error(err))
		return nil, err
	}

	user := &model.User{
		Name:     req.Name,
		Lastname: req.Lastname,
		Email:    req.Email,
		Password: string(hash),
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.logger.Error("创建用户失败", zap.Error(err))
		return nil, err
	}

	return userToResponse(user), nil
}

// ────────────────────── Login ──────────────────────

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	// 与注册一致，登录前同样校验密码形态（沿用原有对外行为）
	if !passwordMeetsPolicy(req.Password) {
		return nil, ErrWeakPassword
	}

	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	plain, hash, expiresAt, err := s.tokenMgr.Generate()
	if err != nil {
		s.logger.Error("生成令牌失败", zap.Error(err))
		return nil, err
	}

	record := &model.AccessToken{
		UserID:    user.ID,
		TokenHash: hash,
		ExpiresAt: expiresAt,
	}
	if err := s.repo.Token.Create(ctx, record); err != nil {
		s.logger.Error("保存令牌失败", zap.Error(err))
		return nil, err
	}

	// 缓存失败不影响登录结果
	if s.rdb != nil {
		if err := s.rdb.CacheToken(ctx, hash, user.ID, s.tokenMgr.TTL()); err != nil {
			s.logger.Warn("缓存令牌失败", zap.Error(err))
		}
	}

	return &dto.LoginResponse{
		Token: plain,
		User:  *userToResponse(user),
	}, nil
}

// ────────────────────── Authenticate ──────────────────────

func (s *authService) Authenticate(ctx context.Context, plain string) (string, error) {
	if plain == "" {
		return "", ErrUnauthorized
	}

	hash := token.Hash(plain)

	// 先查缓存；缓存条目的 TTL 不超过令牌剩余有效期，命中即有效
	if s.rdb != nil {
		userID, err := s.rdb.LookupToken(ctx, hash)
		if err != nil {
			s.logger.Warn("令牌缓存查询失败", zap.Error(err))
		} else if userID != "" {
			return userID, nil
		}
	}

	record, err := s.repo.Token.GetByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUnauthorized
		}
		s.logger.Error("查询令牌失败", zap.Error(err))
		return "", err
	}

	now := time.Now()
	if record.Expired(now) {
		return "", ErrUnauthorized
	}

	if s.rdb != nil {
		if err := s.rdb.CacheToken(ctx, hash, record.UserID, record.ExpiresAt.Sub(now)); err != nil {
			s.logger.Warn("缓存令牌失败", zap.Error(err))
		}
	}

	return record.UserID, nil
}

// ────────────────────── Logout ──────────────────────

func (s *authService) Logout(ctx context.Context, plain string) error {
	hash := token.Hash(plain)

	if err := s.repo.Token.DeleteByHash(ctx, hash); err != nil {
		s.logger.Error("撤销令牌失败", zap.Error(err))
		return err
	}

	// 缓存必须同步失效，否则已撤销令牌仍会被放行
	if s.rdb != nil {
		if err := s.rdb.InvalidateToken(ctx, hash); err != nil {
			s.logger.Error("令牌缓存失效失败", zap.Error(err))
			return err
		}
	}

	return nil
}

// ── 内部辅助方法 ──

// passwordMeetsPolicy 至少 8 位，且包含大写、小写、数字和特殊字符各一
func passwordMeetsPolicy(pw string) bool {
	if len(pw) < 8 {
		return false
	}
	var lower, upper, digit, special bool
	for _, r := range pw {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune("@$!%*#?&-", r):
			special = true
		}
	}
	return lower && upper && digit && special
}

func userToResponse(u *model.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Lastname:  u.Lastname,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}
