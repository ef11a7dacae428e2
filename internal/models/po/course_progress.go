package po

import (
	"time"

	"github.com/google/uuid"
)

// CourseProgress 表示 progress.course_progress 课程级汇总。
type CourseProgress struct {
	LearnerID        uuid.UUID
	CourseID         uuid.UUID
	TotalLessons     int32
	CompletedLessons int32
	ProgressPercent  int32
	CompletedAt      *time.Time
	Version          int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsCompleted 判断课程是否全部完成。
func (c *CourseProgress) IsCompleted() bool {
	return c != nil && c.TotalLessons > 0 && c.CompletedLessons >= c.TotalLessons
}
