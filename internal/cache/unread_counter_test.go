package cache

import (
    "context"
    "testing"
    "time"

    "github.com/alicebob/miniredis/v2"
    "github.com/redis/go-redis/v9"
    "github.com/stretchr/testify/require"
    "gorm.io/driver/sqlite"
    "gorm.io/gorm"

    "github.com/d60-Lab/inquiry-service/internal/model"
    "github.com/d60-Lab/inquiry-service/internal/repository"
)

func setupCounter(t *testing.T) (*UnreadCounter, repository.InquiryRepository, *miniredis.Miniredis) {
    db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
    if err != nil {
        t.Fatalf("open db: %v", err)
    }
    if err := db.AutoMigrate(&model.Inquiry{}, &model.InquiryReply{}); err != nil {
        t.Fatalf("migrate: %v", err)
    }
    repo := repository.NewInquiryRepository(db)

    mr := miniredis.RunT(t)
    rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
    return NewUnreadCounter(repo, rdb, time.Minute), repo, mr
}

func seed(t *testing.T, repo repository.InquiryRepository, n int) {
    for i := 0; i < n; i++ {
        require.NoError(t, repo.Create(context.Background(), &model.Inquiry{
            ProductRef: "42", SenderName: "Jo", SenderEmail: "jo@x.com", Message: "Is this in stock?",
        }))
    }
}

func TestCountCachesValue(t *testing.T) {
    c, repo, mr := setupCounter(t)
    ctx := context.Background()
    seed(t, repo, 3)

    n, err := c.Count(ctx)
    require.NoError(t, err)
    require.EqualValues(t, 3, n)
    require.True(t, mr.Exists(unreadCountKey))

    // 缓存命中：DB 变化在 TTL 内不可见
    seed(t, repo, 1)
    n, err = c.Count(ctx)
    require.NoError(t, err)
    require.EqualValues(t, 3, n)
}

func TestInvalidateForcesRefresh(t *testing.T) {
    c, repo, mr := setupCounter(t)
    ctx := context.Background()
    seed(t, repo, 2)

    _, err := c.Count(ctx)
    require.NoError(t, err)

    seed(t, repo, 2)
    c.Invalidate(ctx)
    require.False(t, mr.Exists(unreadCountKey))

    n, err := c.Count(ctx)
    require.NoError(t, err)
    require.EqualValues(t, 4, n)
}

func TestNilCacheFallsBackToDB(t *testing.T) {
    _, repo, _ := setupCounter(t)
    seed(t, repo, 2)

    c := NewUnreadCounter(repo, nil, time.Minute)
    n, err := c.Count(context.Background())
    require.NoError(t, err)
    require.EqualValues(t, 2, n)
}
