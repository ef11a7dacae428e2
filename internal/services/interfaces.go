package services

import (
	"context"

	"github.com/bionicotaku/lingo-services-progress/internal/models/po"
	"github.com/bionicotaku/lingo-services-progress/internal/models/vo"
	"github.com/google/uuid"
)

// LessonProgressServiceInterface 抽象课时进度用例，便于控制器测试替换。
type LessonProgressServiceInterface interface {
	UpdateProgress(ctx context.Context, learnerID, lessonID uuid.UUID, update ProgressUpdate) (*po.LessonProgress, error)
	GetProgress(ctx context.Context, learnerID, lessonID uuid.UUID) (*po.LessonProgress, error)
	ListCourseLessonProgress(ctx context.Context, learnerID, courseID uuid.UUID) ([]*po.LessonProgress, error)
}

// LessonDetailServiceInterface 抽象课时详情读取。
type LessonDetailServiceInterface interface {
	GetLessonDetails(ctx context.Context, input LessonDetailInput) (*vo.LessonDetail, error)
}

// CourseProgressServiceInterface 抽象课程进度读取。
type CourseProgressServiceInterface interface {
	GetCourseProgress(ctx context.Context, learnerID, courseID uuid.UUID) (*vo.CourseProgressView, error)
}

var (
	_ LessonProgressServiceInterface = (*LessonProgressService)(nil)
	_ LessonDetailServiceInterface   = (*LessonDetailService)(nil)
	_ CourseProgressServiceInterface = (*CourseProgressService)(nil)
	_ CourseProgressUpdater          = (*CourseProgressService)(nil)
	_ LessonLookup                   = (*LessonQueryService)(nil)
)
