package httpserver

import (
	"fmt"

	"github.com/go-kratos/kratos/v2/middleware"
	"github.com/go-kratos/kratos/v2/middleware/metrics"
	"go.opentelemetry.io/otel"
)

const meterName = "lingo-services-progress.http"

// serverMetrics 构造 Kratos 指标中间件，按 kind、operation、code、reason 记录请求数与耗时。
func serverMetrics() (middleware.Middleware, error) {
	meter := otel.GetMeterProvider().Meter(meterName)
	requests, err := metrics.DefaultRequestsCounter(meter, metrics.DefaultServerRequestsCounterName)
	if err != nil {
		return nil, fmt.Errorf("create requests counter: %w", err)
	}
	seconds, err := metrics.DefaultSecondsHistogram(meter, metrics.DefaultServerSecondsHistogramName)
	if err != nil {
		return nil, fmt.Errorf("create seconds histogram: %w", err)
	}
	return metrics.Server(metrics.WithRequests(requests), metrics.WithSeconds(seconds)), nil
}
