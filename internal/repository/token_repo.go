package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/leonardojap/cursosbackend/internal/model"
)

// TokenRepository 访问令牌数据访问接口
// 令牌按摘要检索；撤销即删除记录
type TokenRepository interface {
	Create(ctx context.Context, token *model.AccessToken) error
	GetByHash(ctx context.Context, hash string) (*model.AccessToken, error)
	DeleteByHash(ctx context.Context, hash string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type tokenRepo struct {
	db *gorm.DB
}

// NewTokenRepo 创建 TokenRepository 实例
func NewTokenRepo(db *gorm.DB) TokenRepository {
	return &tokenRepo{db: db}
}

func (r *tokenRepo) Create(ctx context.Context, token *model.AccessToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *tokenRepo) GetByHash(ctx context.Context, hash string) (*model.AccessToken, error) {
	var t model.AccessToken
	err := r.db.WithContext(ctx).
		Where("token_hash = ?", hash).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tokenRepo) DeleteByHash(ctx context.Context, hash string) error {
	return r.db.WithContext(ctx).
		Where("token_hash = ?", hash).
		Delete(&model.AccessToken{}).Error
}

// DeleteExpired 清理已过期令牌，返回删除条数（供运维任务调用）
func (r *tokenRepo) DeleteExpired(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at < CURRENT_TIMESTAMP").
		Delete(&model.AccessToken{})
	return res.RowsAffected, res.Error
}
