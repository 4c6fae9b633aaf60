package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"heektime/backend/config"
)

// Client Redis 클라이언트 래퍼. 현재 토큰 블랙리스트에 쓴다.
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient Redis 연결을 만들고 ping 으로 확인한다
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis 연결 실패: %w", err)
	}

	logger.Info("Redis 연결 성공", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── 토큰 블랙리스트 ──

const blacklistPrefix = "token:blacklist:"

// BlacklistToken JWT ID 를 블랙리스트에 넣는다. TTL 은 토큰의 남은 유효기간.
func (c *Client) BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // 이미 만료된 토큰
	}
	return c.rdb.Set(ctx, blacklistPrefix+jti, "1", ttl).Err()
}

// IsBlacklisted JWT ID 가 블랙리스트에 있는지 확인한다
func (c *Client) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := c.rdb.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Close Redis 연결을 닫는다
func (c *Client) Close() error {
	return c.rdb.Close()
}
