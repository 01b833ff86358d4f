package repository

import (
    "context"
    "testing"

    "github.com/stretchr/testify/require"
    "gorm.io/driver/sqlite"
    "gorm.io/gorm"

    "github.com/d60-Lab/inquiry-service/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
    db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
    if err != nil {
        t.Fatalf("open db: %v", err)
    }
    if err := db.AutoMigrate(&model.Inquiry{}, &model.InquiryReply{}, &model.Product{}, &model.User{}, &model.Option{}); err != nil {
        t.Fatalf("migrate: %v", err)
    }
    return db
}

func newInquiry(productRef string) *model.Inquiry {
    return &model.Inquiry{
        ProductRef:  productRef,
        SenderName:  "Jo",
        SenderEmail: "jo@x.com",
        Message:     "Is this in stock?",
    }
}

func TestCreateDefaults(t *testing.T) {
    repo := NewInquiryRepository(setupTestDB(t))
    ctx := context.Background()

    inq := newInquiry("42")
    require.NoError(t, repo.Create(ctx, inq))
    require.NotEmpty(t, inq.ID)
    require.False(t, inq.CreatedAt.IsZero())

    got, err := repo.GetByID(ctx, inq.ID)
    require.NoError(t, err)
    require.Equal(t, model.StatusUnread, got.Status)
    require.Empty(t, got.Replies)
}

func TestGetByIDNotFound(t *testing.T) {
    repo := NewInquiryRepository(setupTestDB(t))
    _, err := repo.GetByID(context.Background(), "missing")
    require.ErrorIs(t, err, ErrNotFound)
}

func TestSetStatusToggle(t *testing.T) {
    repo := NewInquiryRepository(setupTestDB(t))
    ctx := context.Background()

    inq := newInquiry("42")
    require.NoError(t, repo.Create(ctx, inq))

    require.NoError(t, repo.SetStatus(ctx, inq.ID, model.StatusProcessed))
    got, err := repo.GetByID(ctx, inq.ID)
    require.NoError(t, err)
    require.Equal(t, model.StatusProcessed, got.Status)

    // 幂等重复标记
    require.NoError(t, repo.SetStatus(ctx, inq.ID, model.StatusProcessed))

    // 可逆，回复记录不受影响
    require.NoError(t, repo.SetStatus(ctx, inq.ID, model.StatusUnread))
    got, err = repo.GetByID(ctx, inq.ID)
    require.NoError(t, err)
    require.Equal(t, model.StatusUnread, got.Status)
    require.Empty(t, got.Replies)
}

func TestSetStatusMissingAndReplied(t *testing.T) {
    repo := NewInquiryRepository(setupTestDB(t))
    ctx := context.Background()

    require.ErrorIs(t, repo.SetStatus(ctx, "missing", model.StatusProcessed), ErrNotFound)

    inq := newInquiry("42")
    require.NoError(t, repo.Create(ctx, inq))
    require.NoError(t, repo.AppendReply(ctx, inq.ID, &model.InquiryReply{Body: "Yes, in stock now!"}))

    // replied 为终态，标记被拒绝
    require.ErrorIs(t, repo.SetStatus(ctx, inq.ID, model.StatusUnread), ErrRepliedFinal)
    require.ErrorIs(t, repo.SetStatus(ctx, inq.ID, model.StatusProcessed), ErrRepliedFinal)

    require.ErrorIs(t, repo.SetStatus(ctx, inq.ID, model.StatusReplied), ErrInvalidTransition)
}

func TestAppendReplyAtomic(t *testing.T) {
    repo := NewInquiryRepository(setupTestDB(t))
    ctx := context.Background()

    inq := newInquiry("42")
    require.NoError(t, repo.Create(ctx, inq))

    require.NoError(t, repo.AppendReply(ctx, inq.ID, &model.InquiryReply{
        UserName: "Admin", UserEmail: "admin@x.com", Body: "Yes, in stock now!",
    }))

    // 回复与状态同时可见
    got, err := repo.GetByID(ctx, inq.ID)
    require.NoError(t, err)
    require.Equal(t, model.StatusReplied, got.Status)
    require.Len(t, got.Replies, 1)
    require.Equal(t, "Yes, in stock now!", got.Replies[0].Body)

    // 追加只增不减
    require.NoError(t, repo.AppendReply(ctx, inq.ID, &model.InquiryReply{Body: "Following up again."}))
    got, err = repo.GetByID(ctx, inq.ID)
    require.NoError(t, err)
    require.Len(t, got.Replies, 2)

    require.ErrorIs(t, repo.AppendReply(ctx, "missing", &model.InquiryReply{Body: "x"}), ErrNotFound)
}

func TestListCountAndPurge(t *testing.T) {
    repo := NewInquiryRepository(setupTestDB(t))
    ctx := context.Background()

    a, b, c := newInquiry("1"), newInquiry("2"), newInquiry("3")
    for _, inq := range []*model.Inquiry{a, b, c} {
        require.NoError(t, repo.Create(ctx, inq))
    }
    require.NoError(t, repo.SetStatus(ctx, b.ID, model.StatusProcessed))

    n, err := repo.CountUnprocessed(ctx)
    require.NoError(t, err)
    require.EqualValues(t, 2, n)

    processed := model.StatusProcessed
    list, err := repo.ListByStatus(ctx, &processed)
    require.NoError(t, err)
    require.Len(t, list, 1)
    require.Equal(t, b.ID, list[0].ID)

    all, err := repo.ListByStatus(ctx, nil)
    require.NoError(t, err)
    require.Len(t, all, 3)

    ids, err := repo.ListAllIDs(ctx, 0)
    require.NoError(t, err)
    require.Len(t, ids, 3)

    require.NoError(t, repo.DeleteAll(ctx))
    n, err = repo.CountUnprocessed(ctx)
    require.NoError(t, err)
    require.Zero(t, n)
}

func TestGetBatch(t *testing.T) {
    repo := NewInquiryRepository(setupTestDB(t))
    ctx := context.Background()

    a, b := newInquiry("1"), newInquiry("2")
    require.NoError(t, repo.Create(ctx, a))
    require.NoError(t, repo.Create(ctx, b))

    batch, err := repo.GetBatch(ctx, []string{a.ID, "missing", b.ID})
    require.NoError(t, err)
    require.Len(t, batch, 2)
}
