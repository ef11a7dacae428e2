package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bionicotaku/lingo-services-progress/internal/models/po"
	"github.com/bionicotaku/lingo-services-progress/internal/repositories/mappers"
	"github.com/bionicotaku/lingo-services-progress/internal/repositories/progressdb"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrCourseProgressNotFound 表示学习者在课程下尚无汇总记录。
var ErrCourseProgressNotFound = errors.New("course progress not found")

// CourseProgressRepository 访问 progress.course_progress。
type CourseProgressRepository struct {
	db      *pgxpool.Pool
	queries *progressdb.Queries
	log     *log.Helper
}

// NewCourseProgressRepository 构造仓储实例。
func NewCourseProgressRepository(db *pgxpool.Pool, logger log.Logger) *CourseProgressRepository {
	return &CourseProgressRepository{
		db:      db,
		queries: progressdb.New(db),
		log:     log.NewHelper(logger),
	}
}

// EnsureExists 插入空汇总行，已存在时忽略。
func (r *CourseProgressRepository) EnsureExists(ctx context.Context, sess txmanager.Session, learnerID, courseID uuid.UUID) error {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	if _, err := queries.InsertCourseProgressIfAbsent(ctx, progressdb.InsertCourseProgressIfAbsentParams{LearnerID: learnerID, CourseID: courseID}); err != nil {
		r.log.WithContext(ctx).Errorf("ensure course progress failed: learner=%s course=%s err=%v", learnerID, courseID, err)
		return fmt.Errorf("ensure course progress: %w", err)
	}
	return nil
}

// Get 返回课程汇总。
func (r *CourseProgressRepository) Get(ctx context.Context, sess txmanager.Session, learnerID, courseID uuid.UUID) (*po.CourseProgress, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.GetCourseProgress(ctx, progressdb.GetCourseProgressParams{LearnerID: learnerID, CourseID: courseID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseProgressNotFound
		}
		return nil, fmt.Errorf("get course progress: %w", err)
	}
	return mappers.CourseProgressFromRow(row), nil
}

// GetForUpdate 在事务内锁定课程汇总行。
func (r *CourseProgressRepository) GetForUpdate(ctx context.Context, sess txmanager.Session, learnerID, courseID uuid.UUID) (*po.CourseProgress, error) {
	if sess == nil {
		return nil, fmt.Errorf("get course progress for update: transaction session required")
	}
	row, err := r.queries.WithTx(sess.Tx()).GetCourseProgressForUpdate(ctx, progressdb.GetCourseProgressForUpdateParams{LearnerID: learnerID, CourseID: courseID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseProgressNotFound
		}
		return nil, fmt.Errorf("lock course progress: %w", err)
	}
	return mappers.CourseProgressFromRow(row), nil
}

// UpdateCourseProgressInput 描述汇总写入参数。
type UpdateCourseProgressInput struct {
	LearnerID        uuid.UUID
	CourseID         uuid.UUID
	TotalLessons     int32
	CompletedLessons int32
	ProgressPercent  int32
	CompletedAt      *time.Time
}

// Update 写入汇总，completed_at 一旦设置不再改变。
func (r *CourseProgressRepository) Update(ctx context.Context, sess txmanager.Session, input UpdateCourseProgressInput) (*po.CourseProgress, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.UpdateCourseProgress(ctx, progressdb.UpdateCourseProgressParams{
		LearnerID:        input.LearnerID,
		CourseID:         input.CourseID,
		TotalLessons:     input.TotalLessons,
		CompletedLessons: input.CompletedLessons,
		ProgressPercent:  input.ProgressPercent,
		Column6:          mappers.ToPgTimestamptzPtr(input.CompletedAt),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseProgressNotFound
		}
		r.log.WithContext(ctx).Errorf("update course progress failed: learner=%s course=%s err=%v", input.LearnerID, input.CourseID, err)
		return nil, fmt.Errorf("update course progress: %w", err)
	}
	return mappers.CourseProgressFromRow(row), nil
}
