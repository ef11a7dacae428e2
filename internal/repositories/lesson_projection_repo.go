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

// ErrLessonNotFound 表示课时投影不存在。
var ErrLessonNotFound = errors.New("lesson not found")

// LessonProjectionRepository 维护 progress.lessons 投影。
type LessonProjectionRepository struct {
	db      *pgxpool.Pool
	queries *progressdb.Queries
	log     *log.Helper
}

// NewLessonProjectionRepository 构造仓储实例。
func NewLessonProjectionRepository(db *pgxpool.Pool, logger log.Logger) *LessonProjectionRepository {
	return &LessonProjectionRepository{
		db:      db,
		queries: progressdb.New(db),
		log:     log.NewHelper(logger),
	}
}

// UpsertLessonInput 描述投影写入参数。
type UpsertLessonInput struct {
	LessonID             uuid.UUID
	CourseID             uuid.UUID
	Title                string
	Description          *string
	VideoURL             *string
	VideoDurationSeconds *float64
	Position             int32
	Status               string
	Version              int64
	UpdatedAt            *time.Time
}

// Upsert 写入投影记录，版本号不大于现有记录时忽略。
func (r *LessonProjectionRepository) Upsert(ctx context.Context, sess txmanager.Session, input UpsertLessonInput) error {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	status := input.Status
	if status == "" {
		status = po.LessonStatusPublished
	}
	params := progressdb.UpsertLessonParams{
		LessonID:             input.LessonID,
		CourseID:             input.CourseID,
		Title:                input.Title,
		Description:          mappers.ToPgText(input.Description),
		VideoUrl:             mappers.ToPgText(input.VideoURL),
		VideoDurationSeconds: mappers.ToPgNumericPtr(input.VideoDurationSeconds),
		Position:             input.Position,
		Status:               status,
		Version:              input.Version,
		Column10:             mappers.ToPgTimestamptzPtr(input.UpdatedAt),
	}
	if err := queries.UpsertLesson(ctx, params); err != nil {
		r.log.WithContext(ctx).Errorf("upsert lesson projection failed: lesson=%s err=%v", input.LessonID, err)
		return fmt.Errorf("upsert lesson projection: %w", err)
	}
	return nil
}

// Get 返回单个课时，包括已删除的记录。
func (r *LessonProjectionRepository) Get(ctx context.Context, sess txmanager.Session, lessonID uuid.UUID) (*po.Lesson, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.GetLesson(ctx, lessonID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLessonNotFound
		}
		return nil, fmt.Errorf("get lesson projection: %w", err)
	}
	return mappers.LessonFromRow(row), nil
}

// ListByCourse 返回课程下未删除的课时，按 position 排序。
func (r *LessonProjectionRepository) ListByCourse(ctx context.Context, sess txmanager.Session, courseID uuid.UUID) ([]*po.Lesson, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	rows, err := queries.ListLessonsByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("list lessons by course: %w", err)
	}
	result := make([]*po.Lesson, 0, len(rows))
	for _, row := range rows {
		result = append(result, mappers.LessonFromRow(row))
	}
	return result, nil
}

// CountActiveByCourse 统计课程下未删除的课时数。
func (r *LessonProjectionRepository) CountActiveByCourse(ctx context.Context, sess txmanager.Session, courseID uuid.UUID) (int64, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	count, err := queries.CountActiveLessonsByCourse(ctx, courseID)
	if err != nil {
		return 0, fmt.Errorf("count lessons by course: %w", err)
	}
	return count, nil
}
