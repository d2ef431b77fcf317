package model

import "time"

// AccessToken 访问令牌表 — 对应 access_tokens
// 只保存明文令牌的 SHA-256 摘要；删除记录即撤销令牌
type AccessToken struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index"                       json:"user_id"`
	TokenHash string    `gorm:"type:char(64);not null;uniqueIndex"             json:"-"`
	ExpiresAt time.Time `gorm:"not null"                                       json:"expires_at"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName 指定表名
func (AccessToken) TableName() string { return "access_tokens" }

// Expired 判断令牌在 now 时刻是否已过期（过期即硬性失效，无刷新机制）
func (t *AccessToken) Expired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
