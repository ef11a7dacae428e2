package dto

import (
	"github.com/bionicotaku/lingo-services-progress/internal/models/po"
	"github.com/bionicotaku/lingo-services-progress/internal/models/vo"
)

// GetLessonRequest 对应 GET /v1/lessons/{lesson_id}。
type GetLessonRequest struct {
	LessonID      string `json:"lesson_id" validate:"required,uuid"`
	LearnerID     string `json:"learner_id,omitempty" validate:"omitempty,uuid"`
	CommentLimit  int32  `json:"comment_limit" validate:"gte=0,lte=100"`
	CommentOffset int32  `json:"comment_offset" validate:"gte=0"`
}

// Lesson 是课时基础信息。
type Lesson struct {
	LessonID             string   `json:"lesson_id"`
	CourseID             string   `json:"course_id"`
	Title                string   `json:"title"`
	Description          *string  `json:"description,omitempty"`
	VideoURL             *string  `json:"video_url,omitempty"`
	VideoDurationSeconds *float64 `json:"video_duration_seconds,omitempty"`
	Position             int32    `json:"position"`
}

// Question 是课时题目。
type Question struct {
	QuestionID string   `json:"question_id"`
	Prompt     string   `json:"prompt"`
	Options    []string `json:"options,omitempty"`
	Position   int32    `json:"position"`
}

// Comment 是课时评论。
type Comment struct {
	CommentID string `json:"comment_id"`
	LearnerID string `json:"learner_id"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}

// Report 是学员在课时上的 AI 报告。
type Report struct {
	Content     string `json:"content"`
	GeneratedAt string `json:"generated_at"`
}

// LessonDetailResponse 聚合课时详情页。
type LessonDetailResponse struct {
	Lesson    *Lesson                `json:"lesson"`
	Questions map[string][]*Question `json:"questions"`
	Comments  []*Comment             `json:"comments"`
	Report    *Report                `json:"report,omitempty"`
	Progress  *LessonProgress        `json:"progress"`
}

// NewLessonDetailResponse 转换课时详情视图。
func NewLessonDetailResponse(detail *vo.LessonDetail) *LessonDetailResponse {
	if detail == nil || detail.Lesson == nil {
		return nil
	}
	resp := &LessonDetailResponse{
		Lesson:    newLesson(detail.Lesson),
		Questions: make(map[string][]*Question),
		Comments:  make([]*Comment, 0, len(detail.Comments)),
		Progress:  NewLessonProgress(detail.Progress),
	}
	for section, questions := range detail.QuestionsBySection() {
		items := make([]*Question, 0, len(questions))
		for _, q := range questions {
			items = append(items, &Question{
				QuestionID: q.QuestionID.String(),
				Prompt:     q.Prompt,
				Options:    q.Options,
				Position:   q.Position,
			})
		}
		resp.Questions[section] = items
	}
	for _, c := range detail.Comments {
		if c == nil {
			continue
		}
		resp.Comments = append(resp.Comments, &Comment{
			CommentID: c.CommentID.String(),
			LearnerID: c.LearnerID.String(),
			Body:      c.Body,
			CreatedAt: formatTime(c.CreatedAt),
		})
	}
	if r := detail.Report; r != nil {
		resp.Report = &Report{Content: r.Content, GeneratedAt: formatTime(r.GeneratedAt)}
	}
	return resp
}

func newLesson(l *po.Lesson) *Lesson {
	return &Lesson{
		LessonID:             l.LessonID.String(),
		CourseID:             l.CourseID.String(),
		Title:                l.Title,
		Description:          l.Description,
		VideoURL:             l.VideoURL,
		VideoDurationSeconds: l.VideoDurationSeconds,
		Position:             l.Position,
	}
}
