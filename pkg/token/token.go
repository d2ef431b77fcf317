package token

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/leonardojap/cursosbackend/config"
)

// Manager 不透明 Bearer Token 管理器
// 令牌为随机明文，数据库只保存 SHA-256 摘要；撤销即删除对应记录
type Manager struct {
	ttl time.Duration
}

// NewManager 创建 Token 管理器
func NewManager(cfg *config.AuthConfig) *Manager {
	return &Manager{ttl: cfg.TokenTTL}
}

// secretBytes 明文令牌的随机字节数（hex 编码后 64 字符）
const secretBytes = 32

// Generate 生成一对 (明文令牌, 存储摘要) 及过期时间
func (m *Manager) Generate() (plain string, hash string, expiresAt time.Time, err error) {
	buf := make([]byte, secretBytes)
	if _, err = rand.Read(buf); err != nil {
		return "", "", time.Time{}, fmt.Errorf("生成令牌随机数失败: %w", err)
	}

	plain = hex.EncodeToString(buf)
	return plain, Hash(plain), time.Now().Add(m.ttl), nil
}

// TTL 返回配置的令牌有效期
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Hash 计算明文令牌的 SHA-256 十六进制摘要
func Hash(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}

// Equal 常数时间比较两个摘要
func Equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
