// Package dto 定义 HTTP 接口的请求与响应结构，以及与领域对象之间的转换。
package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/bionicotaku/lingo-services-progress/internal/models/po"
	"github.com/bionicotaku/lingo-services-progress/internal/models/vo"
	"github.com/bionicotaku/lingo-services-progress/internal/services"
	"github.com/google/uuid"
)

// UpdateProgressRequest 对应 POST /v1/lessons/{lesson_id}/progress。
// 未提供的字段保持原值；数值字段中的负数按 0 处理。
type UpdateProgressRequest struct {
	LessonID            string   `json:"lesson_id" validate:"required,uuid"`
	LearnerID           string   `json:"learner_id,omitempty" validate:"omitempty,uuid"`
	VideoWatchedSeconds *float64 `json:"video_watched_seconds,omitempty"`
	VideoTotalSeconds   *float64 `json:"video_total_seconds,omitempty"`
	VideoCompleted      *bool    `json:"video_completed,omitempty"`
	TheoryCompleted     *bool    `json:"theory_completed,omitempty"`
	PracticalCompleted  *bool    `json:"practical_completed,omitempty"`
	MCQCompleted        *bool    `json:"mcq_completed,omitempty"`
}

// ToProgressUpdate 转换为服务层的进度增量。
func (r *UpdateProgressRequest) ToProgressUpdate() services.ProgressUpdate {
	return services.ProgressUpdate{
		VideoWatchedSeconds: r.VideoWatchedSeconds,
		VideoTotalSeconds:   r.VideoTotalSeconds,
		VideoCompleted:      r.VideoCompleted,
		TheoryCompleted:     r.TheoryCompleted,
		PracticalCompleted:  r.PracticalCompleted,
		MCQCompleted:        r.MCQCompleted,
	}
}

// GetProgressRequest 对应 GET /v1/lessons/{lesson_id}/progress。
type GetProgressRequest struct {
	LessonID  string `json:"lesson_id" validate:"required,uuid"`
	LearnerID string `json:"learner_id,omitempty" validate:"omitempty,uuid"`
}

// LessonProgress 是课时进度的对外表示。
type LessonProgress struct {
	LearnerID              string  `json:"learner_id"`
	LessonID               string  `json:"lesson_id"`
	CourseID               string  `json:"course_id"`
	VideoWatchedSeconds    float64 `json:"video_watched_seconds"`
	VideoTotalSeconds      float64 `json:"video_total_seconds"`
	VideoProgressPercent   float64 `json:"video_progress_percent"`
	VideoCompleted         bool    `json:"video_completed"`
	TheoryCompleted        bool    `json:"theory_completed"`
	PracticalCompleted     bool    `json:"practical_completed"`
	MCQCompleted           bool    `json:"mcq_completed"`
	OverallProgressPercent int     `json:"overall_progress_percent"`
	Completed              bool    `json:"completed"`
	CompletedAt            *string `json:"completed_at,omitempty"`
	UpdatedAt              string  `json:"updated_at,omitempty"`
}

// LessonProgressResponse 包装单条课时进度；Progress 为 nil 表示尚未开始。
type LessonProgressResponse struct {
	Progress *LessonProgress `json:"progress"`
}

// NewLessonProgress 将持久化对象转换为对外表示。
func NewLessonProgress(record *po.LessonProgress) *LessonProgress {
	if record == nil {
		return nil
	}
	return &LessonProgress{
		LearnerID:              record.LearnerID.String(),
		LessonID:               record.LessonID.String(),
		CourseID:               record.CourseID.String(),
		VideoWatchedSeconds:    record.VideoWatchedSeconds,
		VideoTotalSeconds:      record.VideoTotalSeconds,
		VideoProgressPercent:   record.VideoProgressPercent,
		VideoCompleted:         record.VideoCompleted,
		TheoryCompleted:        record.TheoryCompleted,
		PracticalCompleted:     record.PracticalCompleted,
		MCQCompleted:           record.MCQCompleted,
		OverallProgressPercent: record.OverallProgressPercent,
		Completed:              record.IsCompleted(),
		CompletedAt:            formatTimePtr(record.CompletedAt),
		UpdatedAt:              formatTime(record.UpdatedAt),
	}
}

// GetCourseProgressRequest 对应 GET /v1/courses/{course_id}/progress。
type GetCourseProgressRequest struct {
	CourseID  string `json:"course_id" validate:"required,uuid"`
	LearnerID string `json:"learner_id,omitempty" validate:"omitempty,uuid"`
}

// ListCourseLessonProgressRequest 对应 GET /v1/courses/{course_id}/lessons/progress。
type ListCourseLessonProgressRequest struct {
	CourseID  string `json:"course_id" validate:"required,uuid"`
	LearnerID string `json:"learner_id,omitempty" validate:"omitempty,uuid"`
}

// LessonProgressListResponse 列出学员在课程下已开始的课时进度。
type LessonProgressListResponse struct {
	Lessons []*LessonProgress `json:"lessons"`
}

// NewLessonProgressList 转换课时进度列表，空列表输出 []。
func NewLessonProgressList(records []*po.LessonProgress) []*LessonProgress {
	out := make([]*LessonProgress, 0, len(records))
	for _, record := range records {
		if item := NewLessonProgress(record); item != nil {
			out = append(out, item)
		}
	}
	return out
}

// CourseProgressResponse 描述课程汇总与各课时明细。
type CourseProgressResponse struct {
	LearnerID        string            `json:"learner_id"`
	CourseID         string            `json:"course_id"`
	TotalLessons     int32             `json:"total_lessons"`
	CompletedLessons int32             `json:"completed_lessons"`
	ProgressPercent  int32             `json:"progress_percent"`
	Completed        bool              `json:"completed"`
	CompletedAt      *string           `json:"completed_at,omitempty"`
	Lessons          []*LessonProgress `json:"lessons"`
}

// NewCourseProgressResponse 转换课程进度视图。
func NewCourseProgressResponse(view *vo.CourseProgressView) *CourseProgressResponse {
	if view == nil || view.Course == nil {
		return nil
	}
	course := view.Course
	return &CourseProgressResponse{
		LearnerID:        course.LearnerID.String(),
		CourseID:         course.CourseID.String(),
		TotalLessons:     course.TotalLessons,
		CompletedLessons: course.CompletedLessons,
		ProgressPercent:  course.ProgressPercent,
		Completed:        course.IsCompleted(),
		CompletedAt:      formatTimePtr(course.CompletedAt),
		Lessons:          NewLessonProgressList(view.Lessons),
	}
}

// ParseID 解析路径中的 UUID 参数。
func ParseID(field, raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, fmt.Errorf("%s required", field)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %w", field, err)
	}
	if id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("invalid %s: nil uuid", field)
	}
	return id, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	value := formatTime(*t)
	return &value
}
