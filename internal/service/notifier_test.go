package service

import (
    "testing"

    "github.com/stretchr/testify/assert"

    "github.com/d60-Lab/inquiry-service/internal/model"
    "github.com/d60-Lab/inquiry-service/internal/repository"
)

func testSettings() *repository.Settings {
    return &repository.Settings{
        AdminEmail: "store@x.com",
        SiteName:   "Demo Store",
        SiteURL:    "http://demo.store",
        AdminURL:   "http://demo.store/admin/inquiries",
    }
}

func TestRenderTemplate(t *testing.T) {
    set := testSettings()
    tpl := "Hello {customer_name}, about {product_name}. Contact {admin_email}. — {site_name} {site_url}"
    got := renderTemplate(tpl, set, "Jo", "Blue Mug")
    assert.Equal(t, "Hello Jo, about Blue Mug. Contact store@x.com. — Demo Store http://demo.store", got)

    // 未知占位符原样保留，字面替换不转义
    assert.Equal(t, "{unknown} <b>Jo</b>", renderTemplate("{unknown} <b>{customer_name}</b>", set, "<b>Jo</b>", ""))
}

func TestBuildReplyBody(t *testing.T) {
    inq := &model.Inquiry{
        SenderName:  "Jo",
        SenderEmail: "jo@x.com",
        Message:     "Is this in stock?",
    }
    body := buildReplyBody(testSettings(), inq, "Blue Mug", "http://demo.store/products/42", "Yes, in stock now!", "Alice")

    assert.Contains(t, body, "Hello Jo,")
    assert.Contains(t, body, "--- Our Response ---")
    assert.Contains(t, body, "Yes, in stock now!")
    assert.Contains(t, body, "Product: Blue Mug")
    assert.Contains(t, body, "Product Link: http://demo.store/products/42")
    assert.Contains(t, body, "Is this in stock?")
    assert.Contains(t, body, "Best regards,\nAlice")

    // 管理员名缺省时的兜底署名；商品被删时不输出链接行
    fallback := buildReplyBody(testSettings(), inq, "(Product Deleted)", "", "Yes, in stock now!", "")
    assert.Contains(t, fallback, "Store Admin")
    assert.NotContains(t, fallback, "Product Link:")
}
