package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/bionicotaku/lingo-services-progress/internal/models/po"
	"github.com/bionicotaku/lingo-services-progress/internal/repositories/mappers"
	"github.com/bionicotaku/lingo-services-progress/internal/repositories/progressdb"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrLessonProgressNotFound 表示学习者尚未开始该课时。
var ErrLessonProgressNotFound = errors.New("lesson progress not found")

// ErrLessonProgressVersionConflict 表示条件更新时版本号已被其他写入推进。
var ErrLessonProgressVersionConflict = errors.New("lesson progress version conflict")

// LessonProgressRepository 访问 progress.lesson_progress。
type LessonProgressRepository struct {
	db      *pgxpool.Pool
	queries *progressdb.Queries
	log     *log.Helper
}

// NewLessonProgressRepository 构造仓储实例。
func NewLessonProgressRepository(db *pgxpool.Pool, logger log.Logger) *LessonProgressRepository {
	return &LessonProgressRepository{
		db:      db,
		queries: progressdb.New(db),
		log:     log.NewHelper(logger),
	}
}

func (r *LessonProgressRepository) queriesFor(sess txmanager.Session) *progressdb.Queries {
	if sess != nil {
		return r.queries.WithTx(sess.Tx())
	}
	return r.queries
}

// Get 返回 (learner, lesson) 的进度记录。
func (r *LessonProgressRepository) Get(ctx context.Context, sess txmanager.Session, learnerID, lessonID uuid.UUID) (*po.LessonProgress, error) {
	row, err := r.queriesFor(sess).GetLessonProgress(ctx, progressdb.GetLessonProgressParams{LearnerID: learnerID, LessonID: lessonID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLessonProgressNotFound
		}
		r.log.WithContext(ctx).Errorf("get lesson progress failed: learner=%s lesson=%s err=%v", learnerID, lessonID, err)
		return nil, fmt.Errorf("get lesson progress: %w", err)
	}
	return mappers.LessonProgressFromRow(row), nil
}

// GetForUpdate 在事务内读取并锁定进度行，必须在事务会话内调用。
func (r *LessonProgressRepository) GetForUpdate(ctx context.Context, sess txmanager.Session, learnerID, lessonID uuid.UUID) (*po.LessonProgress, error) {
	if sess == nil {
		return nil, fmt.Errorf("get lesson progress for update: transaction session required")
	}
	row, err := r.queriesFor(sess).GetLessonProgressForUpdate(ctx, progressdb.GetLessonProgressForUpdateParams{LearnerID: learnerID, LessonID: lessonID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLessonProgressNotFound
		}
		r.log.WithContext(ctx).Errorf("lock lesson progress failed: learner=%s lesson=%s err=%v", learnerID, lessonID, err)
		return nil, fmt.Errorf("lock lesson progress: %w", err)
	}
	return mappers.LessonProgressFromRow(row), nil
}

// CreateIfAbsent 插入默认进度行，已存在时不做任何修改。返回是否新建。
func (r *LessonProgressRepository) CreateIfAbsent(ctx context.Context, sess txmanager.Session, learnerID, lessonID, courseID uuid.UUID) (bool, error) {
	affected, err := r.queriesFor(sess).InsertLessonProgressIfAbsent(ctx, progressdb.InsertLessonProgressIfAbsentParams{
		LearnerID: learnerID,
		LessonID:  lessonID,
		CourseID:  courseID,
	})
	if err != nil {
		r.log.WithContext(ctx).Errorf("create lesson progress failed: learner=%s lesson=%s err=%v", learnerID, lessonID, err)
		return false, fmt.Errorf("create lesson progress: %w", err)
	}
	return affected > 0, nil
}

// Persist 以 expectedVersion 为条件写入完整进度状态，成功后版本号加一。
func (r *LessonProgressRepository) Persist(ctx context.Context, sess txmanager.Session, record *po.LessonProgress, expectedVersion int64) (*po.LessonProgress, error) {
	if record == nil {
		return nil, fmt.Errorf("persist lesson progress: nil record")
	}
	row, err := r.queriesFor(sess).UpdateLessonProgress(ctx, mappers.BuildUpdateLessonProgressParams(record, expectedVersion))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.log.WithContext(ctx).Warnf("lesson progress version conflict: learner=%s lesson=%s expected=%d", record.LearnerID, record.LessonID, expectedVersion)
			return nil, ErrLessonProgressVersionConflict
		}
		r.log.WithContext(ctx).Errorf("persist lesson progress failed: learner=%s lesson=%s err=%v", record.LearnerID, record.LessonID, err)
		return nil, fmt.Errorf("persist lesson progress: %w", err)
	}
	return mappers.LessonProgressFromRow(row), nil
}

// ListByCourse 返回学习者在课程下的全部课时进度。
func (r *LessonProgressRepository) ListByCourse(ctx context.Context, sess txmanager.Session, learnerID, courseID uuid.UUID) ([]*po.LessonProgress, error) {
	rows, err := r.queriesFor(sess).ListLessonProgressByCourse(ctx, progressdb.ListLessonProgressByCourseParams{LearnerID: learnerID, CourseID: courseID})
	if err != nil {
		return nil, fmt.Errorf("list lesson progress: %w", err)
	}
	result := make([]*po.LessonProgress, 0, len(rows))
	for _, row := range rows {
		result = append(result, mappers.LessonProgressFromRow(row))
	}
	return result, nil
}
