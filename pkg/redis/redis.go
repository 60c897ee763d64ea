package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/bangkihwa/seukot-management-web/config"
)

// Client Redis 클라이언트 래퍼
// 학생 세션 토큰 저장소와 로그인 속도 제한에 사용한다.
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient Redis 연결 생성 및 Ping 헬스체크
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

// ── 학생 세션 토큰 저장소 ──

const studentSessionPrefix = "student_session:"

// SaveStudentSession 세션 토큰 → 학생 ID 매핑 저장 (TTL 포함)
func (c *Client) SaveStudentSession(ctx context.Context, token, studentID string, ttl time.Duration) error {
	return c.rdb.Set(ctx, studentSessionPrefix+token, studentID, ttl).Err()
}

// GetStudentSession 세션 토큰으로 학생 ID 조회
// 토큰이 없거나 만료되었으면 빈 문자열 반환 (오류 아님)
func (c *Client) GetStudentSession(ctx context.Context, token string) (string, error) {
	studentID, err := c.rdb.Get(ctx, studentSessionPrefix+token).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", nil
		}
		return "", err
	}
	return studentID, nil
}

// DeleteStudentSession 세션 토큰 삭제 (로그아웃)
func (c *Client) DeleteStudentSession(ctx context.Context, token string) error {
	return c.rdb.Del(ctx, studentSessionPrefix+token).Err()
}

// ── 속도 제한 ──

// CheckRateLimit 고정 윈도우 카운터 기반 속도 제한
// 윈도우 내 호출 횟수가 limit 이하이면 true 반환
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	rateKey := "rate_limit:" + key

	count, err := c.rdb.Incr(ctx, rateKey).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := c.rdb.Expire(ctx, rateKey, window).Err(); err != nil {
			return false, err
		}
	}

	return count <= int64(limit), nil
}

// Close Redis 연결 종료
func (c *Client) Close() error {
	return c.rdb.Close()
}
