package service

import (
    "bytes"
    "context"
    "encoding/csv"
    "strings"
    "testing"

    "github.com/stretchr/testify/require"
    "gorm.io/driver/sqlite"
    "gorm.io/gorm"

    "github.com/d60-Lab/inquiry-service/internal/model"
    "github.com/d60-Lab/inquiry-service/internal/repository"
)

func setupExporter(t *testing.T, maxRecords, batchSize int) (*Exporter, repository.InquiryRepository, *gorm.DB) {
    db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
    if err != nil {
        t.Fatalf("open db: %v", err)
    }
    if err := db.AutoMigrate(&model.Inquiry{}, &model.InquiryReply{}, &model.Product{}); err != nil {
        t.Fatalf("migrate: %v", err)
    }
    repo := repository.NewInquiryRepository(db)
    products := repository.NewProductRepository(db)
    return NewExporter(repo, products, maxRecords, batchSize), repo, db
}

func seedInquiry(t *testing.T, repo repository.InquiryRepository, productRef, msg string) *model.Inquiry {
    inq := &model.Inquiry{
        ProductRef:  productRef,
        SenderName:  "Jo",
        SenderEmail: "jo@x.com",
        SenderPhone: "555-0101",
        Message:     msg,
    }
    require.NoError(t, repo.Create(context.Background(), inq))
    return inq
}

func TestExportSkipsMissingKeepsOrder(t *testing.T) {
    e, repo, db := setupExporter(t, 5000, 100)
    ctx := context.Background()

    require.NoError(t, db.Create(&model.Product{ID: "42", Title: "Blue Mug"}).Error)
    a := seedInquiry(t, repo, "42", "Is this in stock?")
    b := seedInquiry(t, repo, "42", "Does it ship abroad?")

    var buf bytes.Buffer
    rows, err := e.ExportCSV(ctx, []string{a.ID, "missing", b.ID}, &buf)
    require.NoError(t, err)
    require.Equal(t, 2, rows)

    out := buf.Bytes()
    // BOM 开头
    require.True(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}))

    records, err := csv.NewReader(bytes.NewReader(out[3:])).ReadAll()
    require.NoError(t, err)
    require.Len(t, records, 3) // 表头 + 2 行数据
    require.Equal(t, csvHeader, records[0])
    // 输入顺序保持
    require.Equal(t, a.ID, records[1][0])
    require.Equal(t, b.ID, records[2][0])
    require.Equal(t, "Blue Mug", records[1][4])
    require.Equal(t, "Unread", records[1][2])
    require.Equal(t, "555-0101", records[1][7])
}

func TestExportDeletedProductMarker(t *testing.T) {
    e, repo, _ := setupExporter(t, 5000, 100)

    inq := seedInquiry(t, repo, "gone", "Is this in stock?")
    var buf bytes.Buffer
    rows, err := e.ExportCSV(context.Background(), []string{inq.ID}, &buf)
    require.NoError(t, err)
    require.Equal(t, 1, rows)
    require.Contains(t, buf.String(), "(Product Deleted)")
}

func TestExportTooLargeWritesNothing(t *testing.T) {
    e, _, _ := setupExporter(t, 2, 100)

    var buf bytes.Buffer
    rows, err := e.ExportCSV(context.Background(), []string{"a", "b", "c"}, &buf)
    require.Equal(t, 0, rows)
    require.Zero(t, buf.Len())

    var tooLarge *ExportTooLargeError
    require.ErrorAs(t, err, &tooLarge)
    require.Equal(t, 3, tooLarge.Requested)
    require.Equal(t, 2, tooLarge.Limit)
}

func TestExportChunked(t *testing.T) {
    e, repo, _ := setupExporter(t, 5000, 2)
    ctx := context.Background()

    ids := make([]string, 0, 5)
    for i := 0; i < 5; i++ {
        inq := seedInquiry(t, repo, "42", "Is this in stock?")
        ids = append(ids, inq.ID)
    }

    var buf bytes.Buffer
    rows, err := e.ExportCSV(ctx, ids, &buf)
    require.NoError(t, err)
    require.Equal(t, 5, rows)
}

func TestExportStopsOnCancel(t *testing.T) {
    e, repo, _ := setupExporter(t, 5000, 1)
    inq := seedInquiry(t, repo, "42", "Is this in stock?")

    ctx, cancel := context.WithCancel(context.Background())
    cancel()
    var buf bytes.Buffer
    _, err := e.ExportCSV(ctx, []string{inq.ID}, &buf)
    require.ErrorIs(t, err, context.Canceled)
}

func TestSanitizeCSVField(t *testing.T) {
    require.Equal(t, "a\nb", sanitizeCSVField("  a\r\n\r\nb \n"))
    require.Equal(t, "plain", sanitizeCSVField("plain"))
}

func TestExportFilename(t *testing.T) {
    name := ExportFilename("Demo Store", 3)
    require.True(t, strings.HasPrefix(name, "product-inquiries-demo-store-bulk-"))
    require.True(t, strings.HasSuffix(name, ".csv"))

    single := ExportFilename("Demo Store", 1)
    require.Contains(t, single, "-single-")
}
