package controllers

import (
	"context"
	"strings"
	"time"

	"github.com/bionicotaku/lingo-services-progress/internal/metadata"
	"github.com/go-kratos/kratos/v2/transport"
)

// HandlerType 区分写入与查询，决定套用哪一档超时。
type HandlerType int

const (
	// HandlerTypeDefault 未归类的 Handler。
	HandlerTypeDefault HandlerType = iota
	// HandlerTypeCommand 进度上报等写操作，会持有行锁。
	HandlerTypeCommand
	// HandlerTypeQuery 进度、详情与课程汇总读取。
	HandlerTypeQuery
)

// HandlerTimeouts 是三档超时，零值表示沿用上一档。
type HandlerTimeouts struct {
	Default time.Duration
	Command time.Duration
	Query   time.Duration
}

const (
	fallbackDefaultTimeout = 5 * time.Second
	headerUserInfo         = "x-apigateway-api-userinfo"
	headerIdempotencyKey   = "x-md-idempotency-key"
	headerRequestID        = "x-request-id"
)

// BaseHandler 被各 Handler 内嵌，提供超时与请求头解析。
type BaseHandler struct {
	timeouts HandlerTimeouts
}

// NewBaseHandler 补齐未配置的超时：Default 依次取 Command、Query、5s；Command 与 Query 缺省时取 Default。
func NewBaseHandler(timeouts HandlerTimeouts) *BaseHandler {
	timeouts.Default = firstPositive(timeouts.Default, timeouts.Command, timeouts.Query, fallbackDefaultTimeout)
	timeouts.Command = firstPositive(timeouts.Command, timeouts.Default)
	timeouts.Query = firstPositive(timeouts.Query, timeouts.Default)
	return &BaseHandler{timeouts: timeouts}
}

func firstPositive(values ...time.Duration) time.Duration {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

func (h *BaseHandler) timeoutFor(kind HandlerType) time.Duration {
	switch kind {
	case HandlerTypeCommand:
		return h.timeouts.Command
	case HandlerTypeQuery:
		return h.timeouts.Query
	default:
		return h.timeouts.Default
	}
}

// WithTimeout 按 Handler 类型派生带超时的 Context。
func (h *BaseHandler) WithTimeout(ctx context.Context, kind HandlerType) (context.Context, context.CancelFunc) {
	if h == nil {
		return context.WithTimeout(ctx, fallbackDefaultTimeout)
	}
	timeout := h.timeoutFor(kind)
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// ExtractMetadata 从 Kratos transport 请求头中解析学员身份与请求标识。
func (h *BaseHandler) ExtractMetadata(ctx context.Context) metadata.HandlerMetadata {
	tr, ok := transport.FromServerContext(ctx)
	if !ok {
		return metadata.HandlerMetadata{}
	}
	header := tr.RequestHeader()
	meta := metadata.HandlerMetadata{
		IdempotencyKey: firstHeader(header, headerIdempotencyKey),
		RequestID:      firstHeader(header, headerRequestID),
	}
	meta.RawUserInfo = firstHeader(header, headerUserInfo)
	if meta.RawUserInfo == "" {
		return meta
	}
	learnerID, err := metadata.ExtractLearnerIDFromUserInfo(meta.RawUserInfo)
	if err != nil || learnerID == "" {
		// 头存在但解析失败时，未携带 learner_id 的请求返回 401。
		meta.InvalidUserInfo = true
		return meta
	}
	meta.LearnerID = learnerID
	return meta
}

// InjectHandlerMetadata 将解析结果注入到 Context，供后续层访问。
func InjectHandlerMetadata(ctx context.Context, meta metadata.HandlerMetadata) context.Context {
	return metadata.Inject(ctx, meta)
}

// HandlerMetadataFromContext 读取上游注入的 HandlerMetadata。
func HandlerMetadataFromContext(ctx context.Context) (metadata.HandlerMetadata, bool) {
	return metadata.FromContext(ctx)
}

func firstHeader(header transport.Header, key string) string {
	if header == nil {
		return ""
	}
	return strings.TrimSpace(header.Get(key))
}
