// Package po 定义与数据库表一一对应的持久化对象。
package po

import (
	"time"

	"github.com/google/uuid"
)

// LessonProgress 表示 progress.lesson_progress 中的单条学习进度。
type LessonProgress struct {
	LearnerID              uuid.UUID
	LessonID               uuid.UUID
	CourseID               uuid.UUID
	VideoWatchedSeconds    float64
	VideoTotalSeconds      float64
	VideoProgressPercent   float64
	VideoCompleted         bool
	TheoryCompleted        bool
	PracticalCompleted     bool
	MCQCompleted           bool
	OverallProgressPercent int
	Version                int64
	CompletedAt            *time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// NewLessonProgress 返回全零默认值的进度记录。
func NewLessonProgress(learnerID, lessonID, courseID uuid.UUID) *LessonProgress {
	return &LessonProgress{
		LearnerID: learnerID,
		LessonID:  lessonID,
		CourseID:  courseID,
	}
}

// IsCompleted 判断课时整体进度是否已满。
func (p *LessonProgress) IsCompleted() bool {
	return p != nil && p.OverallProgressPercent >= 100
}

// Clone 返回深拷贝。
func (p *LessonProgress) Clone() *LessonProgress {
	if p == nil {
		return nil
	}
	cp := *p
	if p.CompletedAt != nil {
		t := *p.CompletedAt
		cp.CompletedAt = &t
	}
	return &cp
}
