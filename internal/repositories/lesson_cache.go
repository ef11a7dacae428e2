package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bionicotaku/lingo-services-progress/internal/models/po"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultLessonCacheTTL = 10 * time.Minute

// LessonCacheConfig 控制课时缓存。Addr 为空时缓存关闭。
type LessonCacheConfig struct {
	Addr      string
	Password  string
	DB        int
	TTL       time.Duration
	KeyPrefix string
}

// NewRedisClient 根据配置创建 Redis 客户端，未配置地址时返回 nil。
func NewRedisClient(cfg LessonCacheConfig, logger log.Logger) (*redis.Client, func(), error) {
	if cfg.Addr == "" {
		log.NewHelper(logger).Info("redis lesson cache disabled")
		return nil, func() {}, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	cleanup := func() {
		if err := client.Close(); err != nil {
			log.NewHelper(logger).Warnf("close redis client: %v", err)
		}
	}
	return client, cleanup, nil
}

// LessonCache 是课时投影的读穿缓存，client 为 nil 时所有操作均为空操作。
type LessonCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
	log    *log.Helper
}

// NewLessonCache 构造缓存实例。
func NewLessonCache(client *redis.Client, cfg LessonCacheConfig, logger log.Logger) *LessonCache {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultLessonCacheTTL
	}
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "progress:lesson:"
	}
	return &LessonCache{
		client: client,
		ttl:    ttl,
		prefix: prefix,
		log:    log.NewHelper(logger),
	}
}

// Enabled 返回缓存是否可用。
func (c *LessonCache) Enabled() bool {
	return c != nil && c.client != nil
}

func (c *LessonCache) key(lessonID uuid.UUID) string {
	return c.prefix + lessonID.String()
}

// Get 读取缓存，未命中或缓存不可用时返回 (nil, false)。
func (c *LessonCache) Get(ctx context.Context, lessonID uuid.UUID) (*po.Lesson, bool) {
	if !c.Enabled() {
		return nil, false
	}
	val, err := c.client.Get(ctx, c.key(lessonID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.WithContext(ctx).Warnf("lesson cache get failed: lesson=%s err=%v", lessonID, err)
		}
		return nil, false
	}
	var lesson po.Lesson
	if err := json.Unmarshal(val, &lesson); err != nil {
		c.log.WithContext(ctx).Warnf("lesson cache decode failed: lesson=%s err=%v", lessonID, err)
		return nil, false
	}
	return &lesson, true
}

// Set 写入缓存，失败只记录日志。
func (c *LessonCache) Set(ctx context.Context, lesson *po.Lesson) {
	if !c.Enabled() || lesson == nil {
		return
	}
	data, err := json.Marshal(lesson)
	if err != nil {
		c.log.WithContext(ctx).Warnf("lesson cache encode failed: lesson=%s err=%v", lesson.LessonID, err)
		return
	}
	if err := c.client.Set(ctx, c.key(lesson.LessonID), data, c.ttl).Err(); err != nil {
		c.log.WithContext(ctx).Warnf("lesson cache set failed: lesson=%s err=%v", lesson.LessonID, err)
	}
}

// Invalidate 删除缓存条目。
func (c *LessonCache) Invalidate(ctx context.Context, lessonID uuid.UUID) error {
	if !c.Enabled() {
		return nil
	}
	if err := c.client.Del(ctx, c.key(lessonID)).Err(); err != nil {
		return fmt.Errorf("invalidate lesson cache: %w", err)
	}
	return nil
}
