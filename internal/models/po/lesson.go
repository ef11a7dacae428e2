package po

import (
	"time"

	"github.com/google/uuid"
)

// 课时状态。
const (
	LessonStatusPublished = "published"
	LessonStatusDeleted   = "deleted"
)

// Lesson 表示 progress.lessons 课时投影。
type Lesson struct {
	LessonID             uuid.UUID
	CourseID             uuid.UUID
	Title                string
	Description          *string
	VideoURL             *string
	VideoDurationSeconds *float64
	Position             int32
	Status               string
	Version              int64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// IsDeleted 判断课时是否已删除。
func (l *Lesson) IsDeleted() bool {
	return l != nil && l.Status == LessonStatusDeleted
}

// LessonQuestion 表示课时下的题目（theory / practical / mcq）。
type LessonQuestion struct {
	QuestionID uuid.UUID
	LessonID   uuid.UUID
	Section    string
	Prompt     string
	Options    []string
	Position   int32
	CreatedAt  time.Time
}

// LessonComment 表示课时评论。
type LessonComment struct {
	CommentID uuid.UUID
	LessonID  uuid.UUID
	LearnerID uuid.UUID
	Body      string
	CreatedAt time.Time
}

// LessonReport 表示学员在课时上的 AI 报告。
type LessonReport struct {
	LearnerID   uuid.UUID
	LessonID    uuid.UUID
	Content     string
	GeneratedAt time.Time
	Version     int64
}
