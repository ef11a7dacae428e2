package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bionicotaku/lingo-services-progress/internal/controllers"
	"github.com/bionicotaku/lingo-services-progress/internal/controllers/dto"
	outboxevents "github.com/bionicotaku/lingo-services-progress/internal/models/outbox_events"
	"github.com/bionicotaku/lingo-services-progress/internal/models/po"
	"github.com/bionicotaku/lingo-services-progress/internal/models/vo"
	"github.com/bionicotaku/lingo-services-progress/internal/services"
	"github.com/bionicotaku/lingo-services-progress/internal/services/mocks"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type httpFixture struct {
	progress *mocks.MockLessonProgressServiceInterface
	details  *mocks.MockLessonDetailServiceInterface
	courses  *mocks.MockCourseProgressServiceInterface
	server   *khttp.Server
}

func newHTTPFixture(t *testing.T) *httpFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &httpFixture{
		progress: mocks.NewMockLessonProgressServiceInterface(ctrl),
		details:  mocks.NewMockLessonDetailServiceInterface(ctrl),
		courses:  mocks.NewMockCourseProgressServiceInterface(ctrl),
		server:   khttp.NewServer(),
	}
	base := controllers.NewBaseHandler(controllers.HandlerTimeouts{Command: time.Second, Query: time.Second})
	controllers.RegisterHTTPRoutes(f.server,
		controllers.NewProgressHandler(f.progress, base),
		controllers.NewLessonHandler(f.details, base),
		controllers.NewCourseHandler(f.courses, base),
	)
	return f
}

func (f *httpFixture) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)
	return rec
}

type errorBody struct {
	Code   int    `json:"code"`
	Reason string `json:"reason"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestUpdateProgressHTTP_MergesAndReturnsProgress(t *testing.T) {
	f := newHTTPFixture(t)
	learnerID := uuid.New()
	lessonID := uuid.New()
	courseID := uuid.New()
	completedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	f.progress.EXPECT().
		UpdateProgress(gomock.Any(), learnerID, lessonID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _, _ uuid.UUID, update services.ProgressUpdate) (*po.LessonProgress, error) {
			require.NotNil(t, update.VideoWatchedSeconds)
			require.Equal(t, 120.0, *update.VideoWatchedSeconds)
			require.NotNil(t, update.MCQCompleted)
			require.True(t, *update.MCQCompleted)
			require.Nil(t, update.TheoryCompleted)

			meta, ok := controllers.HandlerMetadataFromContext(ctx)
			require.True(t, ok)
			require.Equal(t, "tick-1", meta.IdempotencyKey)
			return &po.LessonProgress{
				LearnerID:              learnerID,
				LessonID:               lessonID,
				CourseID:               courseID,
				VideoWatchedSeconds:    120,
				VideoTotalSeconds:      120,
				VideoProgressPercent:   100,
				VideoCompleted:         true,
				TheoryCompleted:        true,
				PracticalCompleted:     true,
				MCQCompleted:           true,
				OverallProgressPercent: 100,
				CompletedAt:            &completedAt,
			}, nil
		})

	rec := f.do(t, http.MethodPost, fmt.Sprintf("/v1/lessons/%s/progress", lessonID), map[string]any{
		"learner_id":            learnerID.String(),
		"video_watched_seconds": 120,
		"mcq_completed":         true,
	}, map[string]string{"x-md-idempotency-key": "tick-1"})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp dto.LessonProgressResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Progress)
	require.Equal(t, 100, resp.Progress.OverallProgressPercent)
	require.True(t, resp.Progress.Completed)
	require.NotNil(t, resp.Progress.CompletedAt)
	require.Equal(t, courseID.String(), resp.Progress.CourseID)
}

func TestUpdateProgressHTTP_LearnerFromUserInfo(t *testing.T) {
	f := newHTTPFixture(t)
	learnerID := uuid.New()
	lessonID := uuid.New()
	userInfo := encodeUserInfo(t, map[string]any{"sub": learnerID.String()})

	f.progress.EXPECT().
		UpdateProgress(gomock.Any(), learnerID, lessonID, gomock.Any()).
		Return(po.NewLessonProgress(learnerID, lessonID, uuid.New()), nil)

	rec := f.do(t, http.MethodPost, fmt.Sprintf("/v1/lessons/%s/progress", lessonID),
		map[string]any{"theory_completed": true},
		map[string]string{"x-apigateway-api-userinfo": userInfo})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestUpdateProgressHTTP_RequiresLearner(t *testing.T) {
	f := newHTTPFixture(t)

	rec := f.do(t, http.MethodPost, fmt.Sprintf("/v1/lessons/%s/progress", uuid.New()),
		map[string]any{"theory_completed": true}, nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, controllers.ReasonLearnerUnauthenticated, decodeError(t, rec).Reason)
}

func TestUpdateProgressHTTP_RejectsMalformedLessonID(t *testing.T) {
	f := newHTTPFixture(t)

	rec := f.do(t, http.MethodPost, "/v1/lessons/not-a-uuid/progress",
		map[string]any{"learner_id": uuid.NewString()}, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, controllers.ReasonInvalidArgument, decodeError(t, rec).Reason)
}

func TestUpdateProgressHTTP_ErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		reason string
	}{
		{"lesson missing", services.ErrLessonNotFound, http.StatusNotFound, controllers.ReasonLessonNotFound},
		{"write failed", fmt.Errorf("%w: %w", services.ErrProgressWriteFailed, errors.New("db down")), http.StatusServiceUnavailable, controllers.ReasonProgressWriteFailed},
		{"invalid input", services.ErrInvalidProgressInput, http.StatusBadRequest, controllers.ReasonInvalidArgument},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout, controllers.ReasonDeadlineExceeded},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, controllers.ReasonInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newHTTPFixture(t)
			f.progress.EXPECT().UpdateProgress(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := f.do(t, http.MethodPost, fmt.Sprintf("/v1/lessons/%s/progress", uuid.New()),
				map[string]any{"learner_id": uuid.NewString(), "video_watched_seconds": 5}, nil)

			require.Equal(t, tc.status, rec.Code)
			require.Equal(t, tc.reason, decodeError(t, rec).Reason)
		})
	}
}

func TestGetProgressHTTP_NotStartedReturnsNull(t *testing.T) {
	f := newHTTPFixture(t)
	learnerID := uuid.New()
	lessonID := uuid.New()
	f.progress.EXPECT().GetProgress(gomock.Any(), learnerID, lessonID).Return(nil, nil)

	rec := f.do(t, http.MethodGet, fmt.Sprintf("/v1/lessons/%s/progress?learner_id=%s", lessonID, learnerID), nil, nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.JSONEq(t, `{"progress":null}`, rec.Body.String())
}

func TestGetLessonHTTP_AssemblesDetail(t *testing.T) {
	f := newHTTPFixture(t)
	learnerID := uuid.New()
	lessonID := uuid.New()
	courseID := uuid.New()

	f.details.EXPECT().
		GetLessonDetails(gomock.Any(), services.LessonDetailInput{
			LearnerID:     learnerID,
			LessonID:      lessonID,
			CommentLimit:  5,
			CommentOffset: 10,
		}).
		Return(&vo.LessonDetail{
			Lesson: &po.Lesson{LessonID: lessonID, CourseID: courseID, Title: "Greetings", Position: 1, Status: po.LessonStatusPublished},
			Questions: []*po.LessonQuestion{
				{QuestionID: uuid.New(), LessonID: lessonID, Section: outboxevents.SectionTheory, Prompt: "Hello?", Position: 1},
				{QuestionID: uuid.New(), LessonID: lessonID, Section: outboxevents.SectionMCQ, Prompt: "Pick one", Options: []string{"a", "b"}, Position: 1},
			},
			Comments: []*po.LessonComment{{CommentID: uuid.New(), LessonID: lessonID, LearnerID: uuid.New(), Body: "nice", CreatedAt: time.Now()}},
		}, nil)

	rec := f.do(t, http.MethodGet,
		fmt.Sprintf("/v1/lessons/%s?learner_id=%s&comment_limit=5&comment_offset=10", lessonID, learnerID), nil, nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp dto.LessonDetailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Greetings", resp.Lesson.Title)
	require.Len(t, resp.Questions[outboxevents.SectionTheory], 1)
	require.Len(t, resp.Questions[outboxevents.SectionMCQ], 1)
	require.Equal(t, []string{"a", "b"}, resp.Questions[outboxevents.SectionMCQ][0].Options)
	require.Len(t, resp.Comments, 1)
	require.Nil(t, resp.Report)
	require.Nil(t, resp.Progress)
}

func TestGetLessonHTTP_RejectsOversizedLimit(t *testing.T) {
	f := newHTTPFixture(t)

	rec := f.do(t, http.MethodGet,
		fmt.Sprintf("/v1/lessons/%s?learner_id=%s&comment_limit=500", uuid.New(), uuid.New()), nil, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCourseProgressHTTP(t *testing.T) {
	f := newHTTPFixture(t)
	learnerID := uuid.New()
	courseID := uuid.New()
	lessonID := uuid.New()

	f.courses.EXPECT().GetCourseProgress(gomock.Any(), learnerID, courseID).Return(&vo.CourseProgressView{
		Course: &po.CourseProgress{LearnerID: learnerID, CourseID: courseID, TotalLessons: 4, CompletedLessons: 1, ProgressPercent: 40},
		Lessons: []*po.LessonProgress{
			{LearnerID: learnerID, LessonID: lessonID, CourseID: courseID, OverallProgressPercent: 100},
		},
	}, nil)

	rec := f.do(t, http.MethodGet, fmt.Sprintf("/v1/courses/%s/progress?learner_id=%s", courseID, learnerID), nil, nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp dto.CourseProgressResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, int32(4), resp.TotalLessons)
	require.Equal(t, int32(40), resp.ProgressPercent)
	require.False(t, resp.Completed)
	require.Len(t, resp.Lessons, 1)
	require.True(t, resp.Lessons[0].Completed)
}

func TestGetCourseProgressHTTP_NotFound(t *testing.T) {
	f := newHTTPFixture(t)
	f.courses.EXPECT().GetCourseProgress(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, services.ErrCourseProgressNotFound)

	rec := f.do(t, http.MethodGet, fmt.Sprintf("/v1/courses/%s/progress?learner_id=%s", uuid.New(), uuid.New()), nil, nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, controllers.ReasonCourseProgressNotFound, decodeError(t, rec).Reason)
}

func TestGetCourseProgressHTTP_CompletedFollowsCurrentCounts(t *testing.T) {
	f := newHTTPFixture(t)
	learnerID := uuid.New()
	courseID := uuid.New()
	firstCompleted := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	// 课程曾全部完成，随后新增了一节课。
	f.courses.EXPECT().GetCourseProgress(gomock.Any(), learnerID, courseID).Return(&vo.CourseProgressView{
		Course: &po.CourseProgress{
			LearnerID:        learnerID,
			CourseID:         courseID,
			TotalLessons:     3,
			CompletedLessons: 2,
			ProgressPercent:  67,
			CompletedAt:      &firstCompleted,
		},
	}, nil)

	rec := f.do(t, http.MethodGet, fmt.Sprintf("/v1/courses/%s/progress?learner_id=%s", courseID, learnerID), nil, nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp dto.CourseProgressResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp.Completed)
	require.NotNil(t, resp.CompletedAt)
	require.Equal(t, firstCompleted.Format(time.RFC3339Nano), *resp.CompletedAt)
	require.NotNil(t, resp.Lessons)
	require.Empty(t, resp.Lessons)
}

func TestListCourseLessonProgressHTTP(t *testing.T) {
	f := newHTTPFixture(t)
	learnerID := uuid.New()
	courseID := uuid.New()
	first, second := uuid.New(), uuid.New()

	f.progress.EXPECT().ListCourseLessonProgress(gomock.Any(), learnerID, courseID).Return([]*po.LessonProgress{
		{LearnerID: learnerID, CourseID: courseID, LessonID: first, OverallProgressPercent: 100},
		{LearnerID: learnerID, CourseID: courseID, LessonID: second, OverallProgressPercent: 40},
	}, nil)

	rec := f.do(t, http.MethodGet, fmt.Sprintf("/v1/courses/%s/lessons/progress?learner_id=%s", courseID, learnerID), nil, nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp dto.LessonProgressListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Lessons, 2)
	require.Equal(t, first.String(), resp.Lessons[0].LessonID)
	require.True(t, resp.Lessons[0].Completed)
	require.Equal(t, 40, resp.Lessons[1].OverallProgressPercent)
}

func TestListCourseLessonProgressHTTP_EmptyAndErrors(t *testing.T) {
	f := newHTTPFixture(t)
	learnerID := uuid.New()
	courseID := uuid.New()

	f.progress.EXPECT().ListCourseLessonProgress(gomock.Any(), learnerID, courseID).Return(nil, nil)
	rec := f.do(t, http.MethodGet, fmt.Sprintf("/v1/courses/%s/lessons/progress?learner_id=%s", courseID, learnerID), nil, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.JSONEq(t, `{"lessons":[]}`, rec.Body.String())

	rec = f.do(t, http.MethodGet, fmt.Sprintf("/v1/courses/not-a-uuid/lessons/progress?learner_id=%s", learnerID), nil, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	f.progress.EXPECT().ListCourseLessonProgress(gomock.Any(), learnerID, courseID).Return(nil, errors.New("db down"))
	rec = f.do(t, http.MethodGet, fmt.Sprintf("/v1/courses/%s/lessons/progress?learner_id=%s", courseID, learnerID), nil, nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, controllers.ReasonInternal, decodeError(t, rec).Reason)
}
