package cache

import (
    "context"
    "strconv"
    "time"

    "github.com/redis/go-redis/v9"

    "github.com/d60-Lab/inquiry-service/internal/repository"
)

const unreadCountKey = "inquiry:unread_count"

// UnreadCounter 后台角标的未处理数，redis 短 TTL 缓存，写路径失效
// cache 为 nil 时退化为直查 DB
type UnreadCounter struct {
    repo  repository.InquiryRepository
    cache *redis.Client
    ttl   time.Duration
}

func NewUnreadCounter(repo repository.InquiryRepository, cache *redis.Client, ttl time.Duration) *UnreadCounter {
    if ttl <= 0 {
        ttl = 30 * time.Second
    }
    return &UnreadCounter{repo: repo, cache: cache, ttl: ttl}
}

func (c *UnreadCounter) Count(ctx context.Context) (int64, error) {
    if c.cache != nil {
        if v, err := c.cache.Get(ctx, unreadCountKey).Result(); err == nil {
            if n, perr := strconv.ParseInt(v, 10, 64); perr == nil {
                return n, nil
            }
        }
    }
    n, err := c.repo.CountUnprocessed(ctx)
    if err != nil {
        return 0, err
    }
    if c.cache != nil {
        // 缓存写失败不影响读结果
        _ = c.cache.Set(ctx, unreadCountKey, strconv.FormatInt(n, 10), c.ttl).Err()
    }
    return n, nil
}

// Invalidate 任意改变状态/新增咨询的写路径调用
func (c *UnreadCounter) Invalidate(ctx context.Context) {
    if c.cache == nil {
        return
    }
    _ = c.cache.Del(ctx, unreadCountKey).Err()
}
