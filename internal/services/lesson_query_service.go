package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/bionicotaku/lingo-services-progress/internal/models/po"
	"github.com/bionicotaku/lingo-services-progress/internal/repositories"
	"github.com/bionicotaku/lingo-utils/txmanager"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// LessonProjectionRepository 定义课时投影的读取接口，便于测试替换。
type LessonProjectionRepository interface {
	Get(ctx context.Context, sess txmanager.Session, lessonID uuid.UUID) (*po.Lesson, error)
	ListByCourse(ctx context.Context, sess txmanager.Session, courseID uuid.UUID) ([]*po.Lesson, error)
}

// LessonCache 抽象课时读穿缓存。
type LessonCache interface {
	Get(ctx context.Context, lessonID uuid.UUID) (*po.Lesson, bool)
	Set(ctx context.Context, lesson *po.Lesson)
}

// LessonQueryService 解析课时归属，优先读取缓存。
type LessonQueryService struct {
	repo  LessonProjectionRepository
	cache LessonCache
	log   *log.Helper
}

// NewLessonQueryService 构造 LessonQueryService，cache 可为 nil。
func NewLessonQueryService(repo LessonProjectionRepository, cache LessonCache, logger log.Logger) *LessonQueryService {
	return &LessonQueryService{
		repo:  repo,
		cache: cache,
		log:   log.NewHelper(logger),
	}
}

// FindLesson 返回课时，不存在或已删除时返回 ErrLessonNotFound。
func (s *LessonQueryService) FindLesson(ctx context.Context, lessonID uuid.UUID) (*po.Lesson, error) {
	if lessonID == uuid.Nil {
		return nil, fmt.Errorf("%w: lesson_id required", ErrInvalidProgressInput)
	}
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, lessonID); ok {
			if cached.IsDeleted() {
				return nil, ErrLessonNotFound
			}
			return cached, nil
		}
	}

	lesson, err := s.repo.Get(ctx, nil, lessonID)
	if err != nil {
		if errors.Is(err, repositories.ErrLessonNotFound) {
			return nil, ErrLessonNotFound
		}
		return nil, fmt.Errorf("find lesson: %w", err)
	}
	if s.cache != nil {
		s.cache.Set(ctx, lesson)
	}
	if lesson.IsDeleted() {
		return nil, ErrLessonNotFound
	}
	return lesson, nil
}
