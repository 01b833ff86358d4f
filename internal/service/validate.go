package service

import (
    "context"
    "errors"

    "github.com/go-playground/validator/v10"

    "github.com/d60-Lab/inquiry-service/internal/repository"
)

var validate = validator.New()

// SubmissionInput 商品页提交的原始字段
type SubmissionInput struct {
    ProductRef  string `json:"product_ref"`
    SenderName  string `json:"sender_name"`
    SenderEmail string `json:"sender_email"`
    SenderPhone string `json:"sender_phone"`
    Message     string `json:"message"`
}

// Draft 通过校验后的规范化草稿；商品信息在校验期一并解析
type Draft struct {
    ProductRef       string
    ProductTitle     string
    ProductPermalink string
    SenderName       string
    SenderEmail      string
    SenderPhone      string
    Message          string
}

// validateSubmission 逐项校验并收集全部错误，不短路；无副作用
// 返回的 error 仅表示商品查询的基础设施故障
func validateSubmission(ctx context.Context, products repository.ProductLookup, in *SubmissionInput) (*Draft, []string, error) {
    var errs []string
    draft := &Draft{
        ProductRef:  in.ProductRef,
        SenderName:  in.SenderName,
        SenderEmail: in.SenderEmail,
        SenderPhone: in.SenderPhone,
        Message:     in.Message,
    }

    if in.ProductRef == "" {
        errs = append(errs, "Invalid product.")
    } else {
        p, err := products.Resolve(ctx, in.ProductRef)
        switch {
        case err == nil:
            draft.ProductTitle = p.Title
            draft.ProductPermalink = p.Permalink
        case errors.Is(err, repository.ErrProductNotFound):
            errs = append(errs, "Invalid product.")
        default:
            return nil, nil, err
        }
    }

    if len(in.SenderName) < 2 {
        errs = append(errs, "Please enter a valid name.")
    }
    if in.SenderEmail == "" || validate.Var(in.SenderEmail, "email") != nil {
        errs = append(errs, "Please enter a valid email address.")
    }
    if len(in.Message) < 10 {
        errs = append(errs, "Please enter a message with at least 10 characters.")
    }

    if len(errs) > 0 {
        return nil, errs, nil
    }
    return draft, nil, nil
}
