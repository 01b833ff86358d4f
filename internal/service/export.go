package service

import (
    "context"
    "encoding/csv"
    "fmt"
    "io"
    "regexp"
    "strings"
    "time"

    "github.com/d60-Lab/inquiry-service/internal/model"
    "github.com/d60-Lab/inquiry-service/internal/repository"
)

// 列顺序固定，表格软件兼容依赖 BOM
var csvHeader = []string{
    "Inquiry ID", "Date", "Status", "Product ID", "Product Title",
    "Sender Name", "Sender Email", "Sender Phone", "Message",
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var lineBreakRuns = regexp.MustCompile(`[\r\n]+`)

type flusher interface{ Flush() }

// Exporter 分批流式导出 CSV，块间刷出，内存占用有界
type Exporter struct {
    repo       repository.InquiryRepository
    products   repository.ProductLookup
    maxRecords int
    batchSize  int
}

func NewExporter(repo repository.InquiryRepository, products repository.ProductLookup, maxRecords, batchSize int) *Exporter {
    if maxRecords <= 0 {
        maxRecords = 5000
    }
    if batchSize <= 0 {
        batchSize = 100
    }
    return &Exporter{repo: repo, products: products, maxRecords: maxRecords, batchSize: batchSize}
}

// MaxRecords 导出上限（只读）
func (e *Exporter) MaxRecords() int { return e.maxRecords }

// AllIDs 导出全部时的 ID 集合，按提交时间倒序
func (e *Exporter) AllIDs(ctx context.Context) ([]string, error) {
    total, err := e.repo.ListAllIDs(ctx, 0)
    if err != nil {
        return nil, err
    }
    if len(total) > e.maxRecords {
        return nil, &ExportTooLargeError{Requested: len(total), Limit: e.maxRecords}
    }
    return total, nil
}

// ExportCSV 按输入顺序写出记录，缺失 ID 静默跳过，返回数据行数
// 超限时不写任何字节；caller 断开（ctx 取消）时停止后续块
func (e *Exporter) ExportCSV(ctx context.Context, ids []string, w io.Writer) (int, error) {
    if len(ids) > e.maxRecords {
        return 0, &ExportTooLargeError{Requested: len(ids), Limit: e.maxRecords}
    }

    if _, err := w.Write(utf8BOM); err != nil {
        return 0, err
    }
    cw := csv.NewWriter(w)
    if err := cw.Write(csvHeader); err != nil {
        return 0, err
    }

    rows := 0
    titles := map[string]string{} // productRef -> title，导出期内存副本

    for start := 0; start < len(ids); start += e.batchSize {
        if err := ctx.Err(); err != nil {
            return rows, err
        }
        end := start + e.batchSize
        if end > len(ids) {
            end = len(ids)
        }
        chunk := ids[start:end]

        batch, err := e.repo.GetBatch(ctx, chunk)
        if err != nil {
            return rows, err
        }
        byID := make(map[string]*model.Inquiry, len(batch))
        for _, inq := range batch {
            byID[inq.ID] = inq
        }

        for _, id := range chunk {
            inq, ok := byID[id]
            if !ok {
                continue
            }
            if err := cw.Write(e.row(ctx, inq, titles)); err != nil {
                return rows, err
            }
            rows++
        }

        // 块级刷出，消费端可以边下边收
        cw.Flush()
        if err := cw.Error(); err != nil {
            return rows, err
        }
        if f, ok := w.(flusher); ok {
            f.Flush()
        }
    }
    return rows, nil
}

func (e *Exporter) row(ctx context.Context, inq *model.Inquiry, titles map[string]string) []string {
    title, ok := titles[inq.ProductRef]
    if !ok {
        title = productDeletedLabel
        if p, err := e.products.Resolve(ctx, inq.ProductRef); err == nil {
            title = p.Title
        }
        titles[inq.ProductRef] = title
    }
    return []string{
        inq.ID,
        inq.CreatedAt.Format("2006-01-02 15:04:05"),
        inq.Status.Label(),
        inq.ProductRef,
        title,
        inq.SenderName,
        inq.SenderEmail,
        inq.SenderPhone,
        sanitizeCSVField(inq.Message),
    }
}

// sanitizeCSVField 连续换行折叠为单个 \n，首尾空白去除
func sanitizeCSVField(v string) string {
    return strings.TrimSpace(lineBreakRuns.ReplaceAllString(v, "\n"))
}

// ExportFilename 下载文件名：product-inquiries-<site>-<single|bulk>-<时间戳>.csv
func ExportFilename(siteName string, count int) string {
    slug := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(siteName), " ", "-"))
    suffix := "single"
    if count > 1 {
        suffix = "bulk"
    }
    return fmt.Sprintf("product-inquiries-%s-%s-%s.csv", slug, suffix, time.Now().UTC().Format("2006-01-02-150405"))
}
