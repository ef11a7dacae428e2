package outboxevents

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind 标识领域事件类型。
type Kind int

// 领域事件类型常量。
const (
	// KindUnknown 表示未识别的事件类型。
	KindUnknown Kind = iota
	// KindLessonSectionCompleted 表示某个 section 的完成标记首次被置位。
	KindLessonSectionCompleted
	// KindLessonCompleted 表示课时整体进度首次达到 100。
	KindLessonCompleted
	// KindCourseCompleted 表示课程内全部课时完成。
	KindCourseCompleted
)

func (k Kind) String() string {
	switch k {
	case KindLessonSectionCompleted:
		return "learning.lesson.section_completed"
	case KindLessonCompleted:
		return "learning.lesson.completed"
	case KindCourseCompleted:
		return "learning.course.completed"
	default:
		return "learning.event.unknown"
	}
}

// DomainEvent 表示领域层生成的标准事件。
type DomainEvent struct {
	EventID       uuid.UUID
	Kind          Kind
	AggregateID   uuid.UUID
	AggregateType string
	Version       int64
	OccurredAt    time.Time
	Payload       any
}

// Section 名称。
const (
	SectionVideo     = "video"
	SectionTheory    = "theory"
	SectionPractical = "practical"
	SectionMCQ       = "mcq"
)

// LessonSectionCompleted 描述 section 完成事件载荷。
type LessonSectionCompleted struct {
	LearnerID              uuid.UUID `json:"learner_id"`
	LessonID               uuid.UUID `json:"lesson_id"`
	CourseID               uuid.UUID `json:"course_id"`
	Section                string    `json:"section"`
	OverallProgressPercent int       `json:"overall_progress_percent"`
}

// LessonCompleted 描述课时完成事件载荷。
type LessonCompleted struct {
	LearnerID   uuid.UUID `json:"learner_id"`
	LessonID    uuid.UUID `json:"lesson_id"`
	CourseID    uuid.UUID `json:"course_id"`
	CompletedAt time.Time `json:"completed_at"`
}

// CourseCompleted 描述课程完成事件载荷，下游据此判定证书资格。
type CourseCompleted struct {
	LearnerID        uuid.UUID `json:"learner_id"`
	CourseID         uuid.UUID `json:"course_id"`
	TotalLessons     int32     `json:"total_lessons"`
	CompletedLessons int32     `json:"completed_lessons"`
	CompletedAt      time.Time `json:"completed_at"`
}

const (
	// AggregateTypeLessonProgress 标识课时进度聚合类型，聚合 ID 为学员 ID。
	AggregateTypeLessonProgress = "learning.lesson_progress"
	// AggregateTypeCourseProgress 标识课程进度聚合类型。
	AggregateTypeCourseProgress = "learning.course_progress"
	// SchemaVersionV1 描述事件载荷的当前 schema 版本。
	SchemaVersionV1 = "v1"
)

var (
	// ErrInvalidEventID 表示未提供合法的事件 ID。
	ErrInvalidEventID = fmt.Errorf("event builder: event id is required")
	// ErrUnknownEventKind 表示未识别的事件类型。
	ErrUnknownEventKind = fmt.Errorf("event builder: unknown event kind")
)
