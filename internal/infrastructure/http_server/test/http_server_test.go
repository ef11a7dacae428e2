package httpserver_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bionicotaku/lingo-services-progress/internal/controllers"
	configloader "github.com/bionicotaku/lingo-services-progress/internal/infrastructure/configloader"
	httpserver "github.com/bionicotaku/lingo-services-progress/internal/infrastructure/http_server"
	"github.com/bionicotaku/lingo-services-progress/internal/models/po"
	"github.com/bionicotaku/lingo-services-progress/internal/services"
	"github.com/bionicotaku/lingo-services-progress/internal/services/mocks"
	"github.com/bionicotaku/lingo-utils/observability"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/metrics"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

type serverFixture struct {
	progress *mocks.MockLessonProgressServiceInterface
	details  *mocks.MockLessonDetailServiceInterface
	courses  *mocks.MockCourseProgressServiceInterface
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	return &serverFixture{
		progress: mocks.NewMockLessonProgressServiceInterface(ctrl),
		details:  mocks.NewMockLessonDetailServiceInterface(ctrl),
		courses:  mocks.NewMockCourseProgressServiceInterface(ctrl),
	}
}

func (f *serverFixture) build(metricsCfg *observability.MetricsConfig) *khttp.Server {
	base := controllers.NewBaseHandler(controllers.HandlerTimeouts{Command: time.Second, Query: time.Second})
	return httpserver.NewHTTPServer(
		configloader.ServerConfig{Address: "127.0.0.1:0", Timeout: 5 * time.Second},
		metricsCfg,
		nil,
		controllers.NewProgressHandler(f.progress, base),
		controllers.NewLessonHandler(f.details, base),
		controllers.NewCourseHandler(f.courses, base),
		log.NewStdLogger(io.Discard),
	)
}

func serve(srv http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHTTPServer_ServesHealth(t *testing.T) {
	srv := newServerFixture(t).build(&observability.MetricsConfig{Enabled: false})

	rec := serve(srv, http.MethodGet, httpserver.HealthPath, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHTTPServer_RoutesProgressQueries(t *testing.T) {
	f := newServerFixture(t)
	srv := f.build(&observability.MetricsConfig{Enabled: false})

	learnerID := uuid.New()
	lessonID := uuid.New()
	f.progress.EXPECT().
		GetProgress(gomock.Any(), learnerID, lessonID).
		Return(&po.LessonProgress{
			LearnerID:              learnerID,
			LessonID:               lessonID,
			VideoWatchedSeconds:    30,
			VideoTotalSeconds:      60,
			VideoProgressPercent:   50,
			TheoryCompleted:        true,
			OverallProgressPercent: 40,
			Version:                3,
		}, nil)

	rec := serve(srv, http.MethodGet, "/v1/lessons/"+lessonID.String()+"/progress?learner_id="+learnerID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	progress, ok := body["progress"].(map[string]any)
	require.True(t, ok, rec.Body.String())
	require.EqualValues(t, 40, progress["overall_progress_percent"])
}

func TestHTTPServer_MapsNotFound(t *testing.T) {
	f := newServerFixture(t)
	srv := f.build(&observability.MetricsConfig{Enabled: false})

	learnerID := uuid.New()
	courseID := uuid.New()
	f.courses.EXPECT().
		GetCourseProgress(gomock.Any(), learnerID, courseID).
		Return(nil, services.ErrCourseProgressNotFound)

	rec := serve(srv, http.MethodGet, "/v1/courses/"+courseID.String()+"/progress?learner_id="+learnerID.String(), nil)
	require.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
}

func TestHTTPServer_RecordsRequestMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	previous := otel.GetMeterProvider()
	otel.SetMeterProvider(provider)
	t.Cleanup(func() {
		otel.SetMeterProvider(previous)
		_ = provider.Shutdown(context.Background())
	})

	f := newServerFixture(t)
	srv := f.build(nil)

	learnerID := uuid.New()
	lessonID := uuid.New()
	f.progress.EXPECT().GetProgress(gomock.Any(), learnerID, lessonID).Return(nil, nil)

	rec := serve(srv, http.MethodGet, "/v1/lessons/"+lessonID.String()+"/progress?learner_id="+learnerID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var requests int64
	var latencySamples uint64
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			switch m.Name {
			case metrics.DefaultServerRequestsCounterName:
				sum, ok := m.Data.(metricdata.Sum[int64])
				require.True(t, ok)
				for _, dp := range sum.DataPoints {
					op, _ := dp.Attributes.Value("operation")
					require.Equal(t, controllers.OperationGetProgress, op.AsString())
					kind, _ := dp.Attributes.Value("kind")
					require.Equal(t, "http", kind.AsString())
					requests += dp.Value
				}
			case metrics.DefaultServerSecondsHistogramName:
				hist, ok := m.Data.(metricdata.Histogram[float64])
				require.True(t, ok)
				for _, dp := range hist.DataPoints {
					latencySamples += dp.Count
				}
			}
		}
	}
	require.Equal(t, int64(1), requests)
	require.Equal(t, uint64(1), latencySamples)
}
