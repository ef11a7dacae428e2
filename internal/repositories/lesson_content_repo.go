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

// ErrLessonReportNotFound 表示学习者在该课时下没有 AI 报告。
var ErrLessonReportNotFound = errors.New("lesson report not found")

// LessonContentRepository 访问课时的题目、评论与 AI 报告。
type LessonContentRepository struct {
	db      *pgxpool.Pool
	queries *progressdb.Queries
	log     *log.Helper
}

// NewLessonContentRepository 构造仓储实例。
func NewLessonContentRepository(db *pgxpool.Pool, logger log.Logger) *LessonContentRepository {
	return &LessonContentRepository{
		db:      db,
		queries: progressdb.New(db),
		log:     log.NewHelper(logger),
	}
}

// LessonQuestionInput 描述单个题目。
type LessonQuestionInput struct {
	QuestionID uuid.UUID
	Section    string
	Prompt     string
	Options    []string
	Position   int32
}

// ReplaceQuestions 覆盖课时下的全部题目，应在事务内调用。
func (r *LessonContentRepository) ReplaceQuestions(ctx context.Context, sess txmanager.Session, lessonID uuid.UUID, questions []LessonQuestionInput) error {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	if err := queries.DeleteLessonQuestions(ctx, lessonID); err != nil {
		r.log.WithContext(ctx).Errorf("delete lesson questions failed: lesson=%s err=%v", lessonID, err)
		return fmt.Errorf("delete lesson questions: %w", err)
	}
	for _, q := range questions {
		options, err := mappers.MarshalOptions(q.Options)
		if err != nil {
			return fmt.Errorf("marshal question options: %w", err)
		}
		params := progressdb.InsertLessonQuestionParams{
			QuestionID: q.QuestionID,
			LessonID:   lessonID,
			Section:    q.Section,
			Prompt:     q.Prompt,
			Options:    options,
			Position:   q.Position,
		}
		if err := queries.InsertLessonQuestion(ctx, params); err != nil {
			r.log.WithContext(ctx).Errorf("insert lesson question failed: lesson=%s question=%s err=%v", lessonID, q.QuestionID, err)
			return fmt.Errorf("insert lesson question: %w", err)
		}
	}
	return nil
}

// ListQuestions 返回课时题目，按 section 与 position 排序。
func (r *LessonContentRepository) ListQuestions(ctx context.Context, sess txmanager.Session, lessonID uuid.UUID) ([]*po.LessonQuestion, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	rows, err := queries.ListLessonQuestions(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("list lesson questions: %w", err)
	}
	result := make([]*po.LessonQuestion, 0, len(rows))
	for _, row := range rows {
		result = append(result, mappers.LessonQuestionFromRow(row))
	}
	return result, nil
}

// InsertCommentInput 描述评论写入参数。
type InsertCommentInput struct {
	CommentID uuid.UUID
	LessonID  uuid.UUID
	LearnerID uuid.UUID
	Body      string
	CreatedAt *time.Time
}

// InsertComment 写入评论，重复的 comment_id 被忽略。
func (r *LessonContentRepository) InsertComment(ctx context.Context, sess txmanager.Session, input InsertCommentInput) error {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	params := progressdb.InsertLessonCommentParams{
		CommentID: input.CommentID,
		LessonID:  input.LessonID,
		LearnerID: input.LearnerID,
		Body:      input.Body,
		Column5:   mappers.ToPgTimestamptzPtr(input.CreatedAt),
	}
	if err := queries.InsertLessonComment(ctx, params); err != nil {
		r.log.WithContext(ctx).Errorf("insert lesson comment failed: lesson=%s comment=%s err=%v", input.LessonID, input.CommentID, err)
		return fmt.Errorf("insert lesson comment: %w", err)
	}
	return nil
}

// ListComments 分页返回评论，最新的在前。
func (r *LessonContentRepository) ListComments(ctx context.Context, sess txmanager.Session, lessonID uuid.UUID, limit, offset int32) ([]*po.LessonComment, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	rows, err := queries.ListLessonComments(ctx, progressdb.ListLessonCommentsParams{LessonID: lessonID, Limit: limit, Offset: offset})
	if err != nil {
		return nil, fmt.Errorf("list lesson comments: %w", err)
	}
	result := make([]*po.LessonComment, 0, len(rows))
	for _, row := range rows {
		result = append(result, mappers.LessonCommentFromRow(row))
	}
	return result, nil
}

// UpsertReportInput 描述 AI 报告写入参数。
type UpsertReportInput struct {
	LearnerID   uuid.UUID
	LessonID    uuid.UUID
	Content     string
	GeneratedAt time.Time
	Version     int64
}

// UpsertReport 写入 AI 报告，仅当版本更新时覆盖。
func (r *LessonContentRepository) UpsertReport(ctx context.Context, sess txmanager.Session, input UpsertReportInput) error {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	generatedAt := input.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}
	params := progressdb.UpsertLessonReportParams{
		LearnerID:   input.LearnerID,
		LessonID:    input.LessonID,
		Content:     input.Content,
		GeneratedAt: mappers.ToPgTimestamptz(generatedAt),
		Version:     input.Version,
	}
	if err := queries.UpsertLessonReport(ctx, params); err != nil {
		r.log.WithContext(ctx).Errorf("upsert lesson report failed: learner=%s lesson=%s err=%v", input.LearnerID, input.LessonID, err)
		return fmt.Errorf("upsert lesson report: %w", err)
	}
	return nil
}

// GetReport 返回学习者在课时下的 AI 报告。
func (r *LessonContentRepository) GetReport(ctx context.Context, sess txmanager.Session, learnerID, lessonID uuid.UUID) (*po.LessonReport, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.GetLessonReport(ctx, progressdb.GetLessonReportParams{LearnerID: learnerID, LessonID: lessonID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLessonReportNotFound
		}
		return nil, fmt.Errorf("get lesson report: %w", err)
	}
	return mappers.LessonReportFromRow(row), nil
}
