package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	outboxevents "github.com/bionicotaku/lingo-services-progress/internal/models/outbox_events"
	"github.com/bionicotaku/lingo-services-progress/internal/models/po"
	"github.com/bionicotaku/lingo-services-progress/internal/repositories"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// LessonProgressStore 抽象 (learner, lesson) 进度记录的存取。
type LessonProgressStore interface {
	Get(ctx context.Context, sess txmanager.Session, learnerID, lessonID uuid.UUID) (*po.LessonProgress, error)
	GetForUpdate(ctx context.Context, sess txmanager.Session, learnerID, lessonID uuid.UUID) (*po.LessonProgress, error)
	CreateIfAbsent(ctx context.Context, sess txmanager.Session, learnerID, lessonID, courseID uuid.UUID) (bool, error)
	Persist(ctx context.Context, sess txmanager.Session, record *po.LessonProgress, expectedVersion int64) (*po.LessonProgress, error)
	ListByCourse(ctx context.Context, sess txmanager.Session, learnerID, courseID uuid.UUID) ([]*po.LessonProgress, error)
}

// LessonLookup 解析课时及其所属课程。
type LessonLookup interface {
	FindLesson(ctx context.Context, lessonID uuid.UUID) (*po.Lesson, error)
}

// CourseProgressUpdater 在课时进度落库后重算课程汇总。
type CourseProgressUpdater interface {
	UpdateCourseProgress(ctx context.Context, learnerID, courseID, lessonID uuid.UUID) error
}

// LessonProgressService 负责课时进度的合并与落库。
type LessonProgressService struct {
	store     LessonProgressStore
	lessons   LessonLookup
	courses   CourseProgressUpdater
	events    *eventEmitter
	txManager txmanager.Manager
	log       *log.Helper
	metrics   *progressMetrics
	clock     func() time.Time
}

// NewLessonProgressService 构造 LessonProgressService。
func NewLessonProgressService(
	store LessonProgressStore,
	lessons LessonLookup,
	courses CourseProgressUpdater,
	outbox OutboxEnqueuer,
	tx txmanager.Manager,
	logger log.Logger,
) *LessonProgressService {
	return &LessonProgressService{
		store:     store,
		lessons:   lessons,
		courses:   courses,
		events:    newEventEmitter(outbox, "lesson_progress"),
		txManager: tx,
		log:       log.NewHelper(logger),
		metrics:   newProgressMetrics("lesson_progress"),
		clock:     time.Now,
	}
}

// WithClock 替换时间源，主要用于测试。
func (s *LessonProgressService) WithClock(clock func() time.Time) *LessonProgressService {
	if clock != nil {
		s.clock = clock
	}
	return s
}

// UpdateProgress 合并一次进度上报并返回落库后的记录。
//
// 记录不存在时先插入默认行，然后在同一事务内加行锁读取、合并、按版本条件写回，
// 并把 section 完成与课时完成事件写入 outbox。提交后触发课程汇总，汇总失败只记录日志。
func (s *LessonProgressService) UpdateProgress(ctx context.Context, learnerID, lessonID uuid.UUID, update ProgressUpdate) (*po.LessonProgress, error) {
	if learnerID == uuid.Nil || lessonID == uuid.Nil {
		return nil, fmt.Errorf("%w: learner_id and lesson_id required", ErrInvalidProgressInput)
	}

	lesson, err := s.lessons.FindLesson(ctx, lessonID)
	if err != nil {
		return nil, err
	}

	var result *po.LessonProgress
	err = s.txManager.WithinTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
		if _, err := s.store.CreateIfAbsent(txCtx, sess, learnerID, lessonID, lesson.CourseID); err != nil {
			return err
		}
		current, err := s.store.GetForUpdate(txCtx, sess, learnerID, lessonID)
		if err != nil {
			return err
		}

		merged := ApplyProgressUpdate(current, update)
		if merged.Degraded {
			s.log.WithContext(txCtx).Warnf("progress degraded: video total unknown, learner=%s lesson=%s watched=%.2f",
				learnerID, lessonID, merged.Record.VideoWatchedSeconds)
			s.metrics.recordDegraded(txCtx)
		}

		now := s.clock().UTC()
		next := merged.Record
		if next.IsCompleted() && next.CompletedAt == nil {
			next.CompletedAt = &now
		}

		persisted, err := s.store.Persist(txCtx, sess, next, current.Version)
		if err != nil {
			return err
		}

		for _, section := range merged.Latched {
			evt, err := outboxevents.NewLessonSectionCompletedEvent(persisted, section, now)
			if err != nil {
				return err
			}
			if err := s.events.enqueueEvent(txCtx, sess, evt); err != nil {
				return err
			}
		}
		if !current.IsCompleted() && persisted.IsCompleted() {
			evt, err := outboxevents.NewLessonCompletedEvent(persisted, now)
			if err != nil {
				return err
			}
			if err := s.events.enqueueEvent(txCtx, sess, evt); err != nil {
				return err
			}
		}

		result = persisted
		return nil
	})
	s.metrics.recordWrite(ctx, err)
	if err != nil {
		s.log.WithContext(ctx).Errorf("update progress failed: learner=%s lesson=%s err=%v", learnerID, lessonID, err)
		return nil, fmt.Errorf("%w: %w", ErrProgressWriteFailed, err)
	}

	s.rollupCourse(ctx, learnerID, lesson.CourseID, lessonID)
	return result, nil
}

func (s *LessonProgressService) rollupCourse(ctx context.Context, learnerID, courseID, lessonID uuid.UUID) {
	if s.courses == nil {
		return
	}
	if err := s.courses.UpdateCourseProgress(ctx, learnerID, courseID, lessonID); err != nil {
		s.log.WithContext(ctx).Warnf("course rollup failed: learner=%s course=%s lesson=%s err=%v", learnerID, courseID, lessonID, err)
		s.metrics.recordRollupFailure(ctx, err)
	}
}

// GetProgress 返回学习者在课时下的进度，未开始时返回 (nil, nil)。
func (s *LessonProgressService) GetProgress(ctx context.Context, learnerID, lessonID uuid.UUID) (*po.LessonProgress, error) {
	if learnerID == uuid.Nil || lessonID == uuid.Nil {
		return nil, fmt.Errorf("%w: learner_id and lesson_id required", ErrInvalidProgressInput)
	}
	record, err := s.store.Get(ctx, nil, learnerID, lessonID)
	if err != nil {
		if errors.Is(err, repositories.ErrLessonProgressNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get progress: %w", err)
	}
	return record, nil
}

// ListCourseLessonProgress 返回学习者在课程下已有的全部课时进度。
func (s *LessonProgressService) ListCourseLessonProgress(ctx context.Context, learnerID, courseID uuid.UUID) ([]*po.LessonProgress, error) {
	if learnerID == uuid.Nil || courseID == uuid.Nil {
		return nil, fmt.Errorf("%w: learner_id and course_id required", ErrInvalidProgressInput)
	}
	records, err := s.store.ListByCourse(ctx, nil, learnerID, courseID)
	if err != nil {
		return nil, fmt.Errorf("list course lesson progress: %w", err)
	}
	return records, nil
}
