package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/bionicotaku/lingo-services-progress/internal/models/po"
	"github.com/bionicotaku/lingo-services-progress/internal/models/vo"
	"github.com/bionicotaku/lingo-services-progress/internal/repositories"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const defaultCommentPageSize int32 = 20

// LessonContentRepository 抽象课时题目、评论与报告的读取。
type LessonContentRepository interface {
	ListQuestions(ctx context.Context, sess txmanager.Session, lessonID uuid.UUID) ([]*po.LessonQuestion, error)
	ListComments(ctx context.Context, sess txmanager.Session, lessonID uuid.UUID, limit, offset int32) ([]*po.LessonComment, error)
	GetReport(ctx context.Context, sess txmanager.Session, learnerID, lessonID uuid.UUID) (*po.LessonReport, error)
}

// LessonDetailService 组装课时详情页。
type LessonDetailService struct {
	lessons  LessonLookup
	content  LessonContentRepository
	progress LessonProgressStore
	log      *log.Helper
}

// NewLessonDetailService 构造 LessonDetailService。
func NewLessonDetailService(lessons LessonLookup, content LessonContentRepository, progress LessonProgressStore, logger log.Logger) *LessonDetailService {
	return &LessonDetailService{
		lessons:  lessons,
		content:  content,
		progress: progress,
		log:      log.NewHelper(logger),
	}
}

// LessonDetailInput 描述详情查询参数。
type LessonDetailInput struct {
	LearnerID     uuid.UUID
	LessonID      uuid.UUID
	CommentLimit  int32
	CommentOffset int32
}

// GetLessonDetails 并发读取课时内容、题目、评论、报告与学习进度。
// 报告与进度缺失不是错误；课时缺失返回 ErrLessonNotFound。
func (s *LessonDetailService) GetLessonDetails(ctx context.Context, input LessonDetailInput) (*vo.LessonDetail, error) {
	if input.LearnerID == uuid.Nil || input.LessonID == uuid.Nil {
		return nil, fmt.Errorf("%w: learner_id and lesson_id required", ErrInvalidProgressInput)
	}
	limit := input.CommentLimit
	if limit <= 0 {
		limit = defaultCommentPageSize
	}
	offset := input.CommentOffset
	if offset < 0 {
		offset = 0
	}

	detail := &vo.LessonDetail{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		lesson, err := s.lessons.FindLesson(gctx, input.LessonID)
		if err != nil {
			return err
		}
		detail.Lesson = lesson
		return nil
	})
	g.Go(func() error {
		questions, err := s.content.ListQuestions(gctx, nil, input.LessonID)
		if err != nil {
			return fmt.Errorf("list questions: %w", err)
		}
		detail.Questions = questions
		return nil
	})
	g.Go(func() error {
		comments, err := s.content.ListComments(gctx, nil, input.LessonID, limit, offset)
		if err != nil {
			return fmt.Errorf("list comments: %w", err)
		}
		detail.Comments = comments
		return nil
	})
	g.Go(func() error {
		report, err := s.content.GetReport(gctx, nil, input.LearnerID, input.LessonID)
		if err != nil {
			if errors.Is(err, repositories.ErrLessonReportNotFound) {
				return nil
			}
			return fmt.Errorf("get report: %w", err)
		}
		detail.Report = report
		return nil
	})
	g.Go(func() error {
		record, err := s.progress.Get(gctx, nil, input.LearnerID, input.LessonID)
		if err != nil {
			if errors.Is(err, repositories.ErrLessonProgressNotFound) {
				return nil
			}
			return fmt.Errorf("get progress: %w", err)
		}
		detail.Progress = record
		return nil
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, ErrLessonNotFound) {
			return nil, ErrLessonNotFound
		}
		s.log.WithContext(ctx).Errorf("get lesson details failed: learner=%s lesson=%s err=%v", input.LearnerID, input.LessonID, err)
		return nil, fmt.Errorf("get lesson details: %w", err)
	}
	return detail, nil
}
