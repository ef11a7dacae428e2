package outboxevents

import (
	"fmt"
	"time"

	"github.com/bionicotaku/lingo-services-progress/internal/models/po"
	"github.com/google/uuid"
)

// NewLessonSectionCompletedEvent 构造 section 完成事件。
func NewLessonSectionCompletedEvent(record *po.LessonProgress, section string, occurredAt time.Time) (*DomainEvent, error) {
	if record == nil {
		return nil, fmt.Errorf("section event: nil progress")
	}
	switch section {
	case SectionVideo, SectionTheory, SectionPractical, SectionMCQ:
	default:
		return nil, fmt.Errorf("section event: unknown section %q", section)
	}
	occurredAt = occurredAt.UTC()
	return &DomainEvent{
		EventID:       uuid.New(),
		Kind:          KindLessonSectionCompleted,
		AggregateID:   record.LearnerID,
		AggregateType: AggregateTypeLessonProgress,
		Version:       record.Version,
		OccurredAt:    occurredAt,
		Payload: &LessonSectionCompleted{
			LearnerID:              record.LearnerID,
			LessonID:               record.LessonID,
			CourseID:               record.CourseID,
			Section:                section,
			OverallProgressPercent: record.OverallProgressPercent,
		},
	}, nil
}

// NewLessonCompletedEvent 构造课时完成事件。
func NewLessonCompletedEvent(record *po.LessonProgress, occurredAt time.Time) (*DomainEvent, error) {
	if record == nil {
		return nil, fmt.Errorf("lesson completed event: nil progress")
	}
	if !record.IsCompleted() {
		return nil, fmt.Errorf("lesson completed event: lesson %s not completed", record.LessonID)
	}
	completedAt := occurredAt.UTC()
	if record.CompletedAt != nil {
		completedAt = record.CompletedAt.UTC()
	}
	return &DomainEvent{
		EventID:       uuid.New(),
		Kind:          KindLessonCompleted,
		AggregateID:   record.LearnerID,
		AggregateType: AggregateTypeLessonProgress,
		Version:       record.Version,
		OccurredAt:    occurredAt.UTC(),
		Payload: &LessonCompleted{
			LearnerID:   record.LearnerID,
			LessonID:    record.LessonID,
			CourseID:    record.CourseID,
			CompletedAt: completedAt,
		},
	}, nil
}

// NewCourseCompletedEvent 构造课程完成事件。
func NewCourseCompletedEvent(course *po.CourseProgress, occurredAt time.Time) (*DomainEvent, error) {
	if course == nil {
		return nil, fmt.Errorf("course completed event: nil course progress")
	}
	if !course.IsCompleted() {
		return nil, fmt.Errorf("course completed event: course %s not completed", course.CourseID)
	}
	completedAt := occurredAt.UTC()
	if course.CompletedAt != nil {
		completedAt = course.CompletedAt.UTC()
	}
	return &DomainEvent{
		EventID:       uuid.New(),
		Kind:          KindCourseCompleted,
		AggregateID:   course.LearnerID,
		AggregateType: AggregateTypeCourseProgress,
		Version:       course.Version,
		OccurredAt:    occurredAt.UTC(),
		Payload: &CourseCompleted{
			LearnerID:        course.LearnerID,
			CourseID:         course.CourseID,
			TotalLessons:     course.TotalLessons,
			CompletedLessons: course.CompletedLessons,
			CompletedAt:      completedAt,
		},
	}, nil
}
