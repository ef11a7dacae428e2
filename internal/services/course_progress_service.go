package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	outboxevents "github.com/bionicotaku/lingo-services-progress/internal/models/outbox_events"
	"github.com/bionicotaku/lingo-services-progress/internal/models/po"
	"github.com/bionicotaku/lingo-services-progress/internal/models/vo"
	"github.com/bionicotaku/lingo-services-progress/internal/repositories"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// CourseProgressRepository 抽象课程汇总仓储。
type CourseProgressRepository interface {
	EnsureExists(ctx context.Context, sess txmanager.Session, learnerID, courseID uuid.UUID) error
	Get(ctx context.Context, sess txmanager.Session, learnerID, courseID uuid.UUID) (*po.CourseProgress, error)
	GetForUpdate(ctx context.Context, sess txmanager.Session, learnerID, courseID uuid.UUID) (*po.CourseProgress, error)
	Update(ctx context.Context, sess txmanager.Session, input repositories.UpdateCourseProgressInput) (*po.CourseProgress, error)
}

// CourseProgressService 将课时进度汇总为课程进度。
type CourseProgressService struct {
	courses   CourseProgressRepository
	lessons   LessonProjectionRepository
	progress  LessonProgressStore
	events    *eventEmitter
	txManager txmanager.Manager
	log       *log.Helper
	clock     func() time.Time
}

// NewCourseProgressService 构造 CourseProgressService。
func NewCourseProgressService(
	courses CourseProgressRepository,
	lessons LessonProjectionRepository,
	progress LessonProgressStore,
	outbox OutboxEnqueuer,
	tx txmanager.Manager,
	logger log.Logger,
) *CourseProgressService {
	return &CourseProgressService{
		courses:   courses,
		lessons:   lessons,
		progress:  progress,
		events:    newEventEmitter(outbox, "course_progress"),
		txManager: tx,
		log:       log.NewHelper(logger),
		clock:     time.Now,
	}
}

// WithClock 替换时间源，主要用于测试。
func (s *CourseProgressService) WithClock(clock func() time.Time) *CourseProgressService {
	if clock != nil {
		s.clock = clock
	}
	return s
}

// UpdateCourseProgress 重算学习者在课程下的完成情况。
// 只统计未删除的课时；课程首次全部完成时写入 completed_at 并发布课程完成事件。
func (s *CourseProgressService) UpdateCourseProgress(ctx context.Context, learnerID, courseID, lessonID uuid.UUID) error {
	if learnerID == uuid.Nil || courseID == uuid.Nil {
		return fmt.Errorf("%w: learner_id and course_id required", ErrInvalidProgressInput)
	}

	return s.txManager.WithinTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
		if err := s.courses.EnsureExists(txCtx, sess, learnerID, courseID); err != nil {
			return err
		}
		previous, err := s.courses.GetForUpdate(txCtx, sess, learnerID, courseID)
		if err != nil {
			return err
		}

		lessons, err := s.lessons.ListByCourse(txCtx, sess, courseID)
		if err != nil {
			return err
		}
		records, err := s.progress.ListByCourse(txCtx, sess, learnerID, courseID)
		if err != nil {
			return err
		}

		rollup := summarizeCourse(lessons, records)
		input := repositories.UpdateCourseProgressInput{
			LearnerID:        learnerID,
			CourseID:         courseID,
			TotalLessons:     rollup.total,
			CompletedLessons: rollup.completed,
			ProgressPercent:  rollup.percent,
		}
		now := s.clock().UTC()
		if rollup.total > 0 && rollup.completed >= rollup.total {
			input.CompletedAt = &now
		}

		updated, err := s.courses.Update(txCtx, sess, input)
		if err != nil {
			return err
		}
		s.log.WithContext(txCtx).Debugf("course rollup: learner=%s course=%s lesson=%s completed=%d/%d percent=%d",
			learnerID, courseID, lessonID, updated.CompletedLessons, updated.TotalLessons, updated.ProgressPercent)

		if previous.CompletedAt == nil && updated.CompletedAt != nil && updated.IsCompleted() {
			evt, err := outboxevents.NewCourseCompletedEvent(updated, now)
			if err != nil {
				return err
			}
			if err := s.events.enqueueEvent(txCtx, sess, evt); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetCourseProgress 返回课程汇总以及各课时进度。
func (s *CourseProgressService) GetCourseProgress(ctx context.Context, learnerID, courseID uuid.UUID) (*vo.CourseProgressView, error) {
	if learnerID == uuid.Nil || courseID == uuid.Nil {
		return nil, fmt.Errorf("%w: learner_id and course_id required", ErrInvalidProgressInput)
	}
	course, err := s.courses.Get(ctx, nil, learnerID, courseID)
	if err != nil {
		if errors.Is(err, repositories.ErrCourseProgressNotFound) {
			return nil, ErrCourseProgressNotFound
		}
		return nil, fmt.Errorf("get course progress: %w", err)
	}
	records, err := s.progress.ListByCourse(ctx, nil, learnerID, courseID)
	if err != nil {
		return nil, fmt.Errorf("get course progress: %w", err)
	}
	return &vo.CourseProgressView{Course: course, Lessons: records}, nil
}

type courseRollup struct {
	total     int32
	completed int32
	percent   int32
}

// summarizeCourse 以课程现有课时为分母计算完成数与平均进度。
func summarizeCourse(lessons []*po.Lesson, records []*po.LessonProgress) courseRollup {
	active := make(map[uuid.UUID]struct{}, len(lessons))
	for _, lesson := range lessons {
		if lesson == nil || lesson.IsDeleted() {
			continue
		}
		active[lesson.LessonID] = struct{}{}
	}
	rollup := courseRollup{total: int32(len(active))}
	if rollup.total == 0 {
		return rollup
	}

	sum := 0
	for _, record := range records {
		if record == nil {
			continue
		}
		if _, ok := active[record.LessonID]; !ok {
			continue
		}
		sum += record.OverallProgressPercent
		if record.IsCompleted() {
			rollup.completed++
		}
	}
	rollup.percent = int32(roundHalfUpPercent(float64(sum) / float64(rollup.total)))
	return rollup
}
