package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTL 상수 정의
const (
	TTLCatalog = 1 * time.Hour   // 공개 카탈로그 (앱 목록, 개념, 강의)
	TTLDefault = 5 * time.Minute // 기본값
)

// 캐시 키 접두사
const (
	PrefixApps     = "apps:"
	PrefixConcepts = "concepts:"
	PrefixLectures = "lectures:"
)

// Service Redis 캐시 서비스 인터페이스
type Service interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error

	// 공개 카탈로그 캐시
	GetPublishedApps(ctx context.Context, dest interface{}) error
	SetPublishedApps(ctx context.Context, data interface{}) error
	InvalidateApps(ctx context.Context) error

	GetAppConcepts(ctx context.Context, appID string, dest interface{}) error
	SetAppConcepts(ctx context.Context, appID string, data interface{}) error
	InvalidateAppConcepts(ctx context.Context, appID string) error

	GetAppLectures(ctx context.Context, appID string, dest interface{}) error
	SetAppLectures(ctx context.Context, appID string, data interface{}) error
	InvalidateAppLectures(ctx context.Context, appID string) error

	IsAvailable() bool
	Ping(ctx context.Context) error
}

// redisCache Redis 기반 캐시 구현
type redisCache struct {
	client *redis.Client
}

// NewService 새로운 캐시 서비스 생성
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

// IsAvailable Redis 연결 가능 여부
func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

// Ping Redis 연결 테스트
func (c *redisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	return c.client.Ping(ctx).Err()
}

// Get 캐시에서 값 조회
func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return fmt.Errorf("redis not available")
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

// Set 캐시에 값 저장
func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil // Redis 없으면 무시
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, ttl).Err()
}

// Delete 캐시에서 키 삭제
func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil || len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *redisCache) GetPublishedApps(ctx context.Context, dest interface{}) error {
	return c.Get(ctx, PrefixApps+"published", dest)
}

func (c *redisCache) SetPublishedApps(ctx context.Context, data interface{}) error {
	return c.Set(ctx, PrefixApps+"published", data, TTLCatalog)
}

func (c *redisCache) InvalidateApps(ctx context.Context) error {
	return c.Delete(ctx, PrefixApps+"published")
}

func (c *redisCache) GetAppConcepts(ctx context.Context, appID string, dest interface{}) error {
	return c.Get(ctx, PrefixConcepts+appID, dest)
}

func (c *redisCache) SetAppConcepts(ctx context.Context, appID string, data interface{}) error {
	return c.Set(ctx, PrefixConcepts+appID, data, TTLCatalog)
}

func (c *redisCache) InvalidateAppConcepts(ctx context.Context, appID string) error {
	return c.Delete(ctx, PrefixConcepts+appID)
}

func (c *redisCache) GetAppLectures(ctx context.Context, appID string, dest interface{}) error {
	return c.Get(ctx, PrefixLectures+appID, dest)
}

func (c *redisCache) SetAppLectures(ctx context.Context, appID string, data interface{}) error {
	return c.Set(ctx, PrefixLectures+appID, data, TTLCatalog)
}

func (c *redisCache) InvalidateAppLectures(ctx context.Context, appID string) error {
	return c.Delete(ctx, PrefixLectures+appID)
}
