// Package metadata 提供请求元信息在 Context 中的存取工具，供控制器与服务层共享。
package metadata

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrUserInfoUndecodable 表示网关注入的 userinfo 头无法解码。
var ErrUserInfoUndecodable = errors.New("metadata: decode userinfo header failed")

// HandlerMetadata 描述从网关请求头解析出的学员身份与请求标识。
type HandlerMetadata struct {
	IdempotencyKey  string
	RequestID       string
	LearnerID       string
	RawUserInfo     string
	InvalidUserInfo bool
}

// IsZero 判断 Metadata 是否为空。
func (m HandlerMetadata) IsZero() bool {
	return m == HandlerMetadata{}
}

// LearnerUUID 将学员标识解析为 UUID。
func (m HandlerMetadata) LearnerUUID() (uuid.UUID, bool) {
	raw := strings.TrimSpace(m.LearnerID)
	if raw == "" {
		return uuid.Nil, false
	}
	value, err := uuid.Parse(raw)
	if err != nil || value == uuid.Nil {
		return uuid.Nil, false
	}
	return value, true
}

type ctxKey struct{}

// Inject 将 HandlerMetadata 注入 Context。
func Inject(ctx context.Context, meta HandlerMetadata) context.Context {
	if meta.IsZero() {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, meta)
}

// FromContext 读取上游注入的 HandlerMetadata。
func FromContext(ctx context.Context) (HandlerMetadata, bool) {
	if ctx == nil {
		return HandlerMetadata{}, false
	}
	meta, ok := ctx.Value(ctxKey{}).(HandlerMetadata)
	return meta, ok
}

// LearnerFromContext 直接返回 Context 中的学员 ID。
func LearnerFromContext(ctx context.Context) (uuid.UUID, bool) {
	meta, ok := FromContext(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return meta.LearnerUUID()
}

// ExtractLearnerIDFromUserInfo 从 X-Apigateway-Api-Userinfo 头中解析学员标识。
// 依次读取 sub、learner_id、user_id、uid 声明。
func ExtractLearnerIDFromUserInfo(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	payload, err := decodeUserInfo(raw)
	if err != nil {
		return "", err
	}
	var claims map[string]any
	if err := json.Unmarshal(payload, &claims); err != nil {
		return "", err
	}
	for _, key := range []string{"sub", "learner_id", "user_id", "uid"} {
		if v, ok := claims[key].(string); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v), nil
		}
	}
	return "", nil
}

func decodeUserInfo(raw string) ([]byte, error) {
	decoders := []func(string) ([]byte, error){
		base64.RawURLEncoding.DecodeString,
		base64.URLEncoding.DecodeString,
		base64.StdEncoding.DecodeString,
		base64.RawStdEncoding.DecodeString,
	}
	for _, decode := range decoders {
		if payload, err := decode(raw); err == nil {
			return payload, nil
		}
	}
	return nil, ErrUserInfoUndecodable
}
