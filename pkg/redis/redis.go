package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/leonardojap/cursosbackend/config"
)

// Client Redis 客户端封装
// 当前用于 Token 查询缓存与登录限流；Redis 不可用时调用方降级直查数据库
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient 创建 Redis 连接并执行 Ping 健康检查
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis 连接失败: %w", err)
	}

	logger.Info("Redis 连接成功", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── Token 查询缓存 ──
// key 为令牌摘要，value 为所属用户 id；TTL 不超过令牌剩余有效期
// 注销时必须调用 InvalidateToken，否则缓存会继续放行已撤销的令牌

const tokenCachePrefix = "token:cache:"

// CacheToken 缓存令牌摘要到用户 id 的映射
func (c *Client) CacheToken(ctx context.Context, hash, userID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // 令牌已过期，无需缓存
	}
	return c.rdb.Set(ctx, tokenCachePrefix+hash, userID, ttl).Err()
}

// LookupToken 按令牌摘要查缓存，未命中返回空串
func (c *Client) LookupToken(ctx context.Context, hash string) (string, error) {
	userID, err := c.rdb.Get(ctx, tokenCachePrefix+hash).Result()
	if err == goredis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

// InvalidateToken 注销时移除缓存条目
func (c *Client) InvalidateToken(ctx context.Context, hash string) error {
	return c.rdb.Del(ctx, tokenCachePrefix+hash).Err()
}

// ── 固定窗口限流 ──

// CheckRateLimit 检查 key 在 window 内的请求数是否超过 limit
// 返回 true 表示放行
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	n, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		if err := c.rdb.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}
	return n <= int64(limit), nil
}

// Close 关闭 Redis 连接
func (c *Client) Close() error {
	return c.rdb.Close()
}
