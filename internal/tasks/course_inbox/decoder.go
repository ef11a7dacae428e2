// Package courseinbox 消费课程目录事件，维护课时投影、题目、评论与 AI 报告。
package courseinbox

import (
	"fmt"

	outboxevents "github.com/bionicotaku/lingo-services-progress/internal/models/outbox_events"
)

// decoder 实现 inbox.Decoder 接口，将 Pub/Sub payload 解析为 JSON Envelope。
type decoder struct{}

func newDecoder() *decoder {
	return &decoder{}
}

// Decode 解析事件外壳，载荷在 Handler 中按事件类型解码。
func (d *decoder) Decode(data []byte) (*outboxevents.Envelope, error) {
	env, err := outboxevents.DecodeEnvelope(data)
	if err != nil {
		return nil, fmt.Errorf("course inbox: %w", err)
	}
	return env, nil
}
