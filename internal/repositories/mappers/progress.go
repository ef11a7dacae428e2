// Package mappers 提供仓储层的模型转换工具，将 sqlc 结果映射为领域实体。
package mappers

import (
	"encoding/json"
	"math"
	"strconv"
	"time"

	"github.com/bionicotaku/lingo-services-progress/internal/models/po"
	"github.com/bionicotaku/lingo-services-progress/internal/repositories/progressdb"

	"github.com/jackc/pgx/v5/pgtype"
)

// LessonProgressFromRow 转换课时进度。
func LessonProgressFromRow(row progressdb.ProgressLessonProgress) *po.LessonProgress {
	return &po.LessonProgress{
		LearnerID:              row.LearnerID,
		LessonID:               row.LessonID,
		CourseID:               row.CourseID,
		VideoWatchedSeconds:    numericToFloat64(row.VideoWatchedSeconds),
		VideoTotalSeconds:      numericToFloat64(row.VideoTotalSeconds),
		VideoProgressPercent:   numericToFloat64(row.VideoProgressPercent),
		VideoCompleted:         row.VideoCompleted,
		TheoryCompleted:        row.TheoryCompleted,
		PracticalCompleted:     row.PracticalCompleted,
		MCQCompleted:           row.McqCompleted,
		OverallProgressPercent: int(row.OverallProgressPercent),
		Version:                row.Version,
		CompletedAt:            timestampPtr(row.CompletedAt),
		CreatedAt:              mustTimestamp(row.CreatedAt),
		UpdatedAt:              mustTimestamp(row.UpdatedAt),
	}
}

// BuildUpdateLessonProgressParams 构造带版本校验的整行更新参数。
func BuildUpdateLessonProgressParams(record *po.LessonProgress, expectedVersion int64) progressdb.UpdateLessonProgressParams {
	return progressdb.UpdateLessonProgressParams{
		LearnerID:              record.LearnerID,
		LessonID:               record.LessonID,
		VideoWatchedSeconds:    ToPgNumeric(record.VideoWatchedSeconds),
		VideoTotalSeconds:      ToPgNumeric(record.VideoTotalSeconds),
		VideoProgressPercent:   ToPgNumeric(record.VideoProgressPercent),
		VideoCompleted:         record.VideoCompleted,
		TheoryCompleted:        record.TheoryCompleted,
		PracticalCompleted:     record.PracticalCompleted,
		McqCompleted:           record.MCQCompleted,
		OverallProgressPercent: int32(record.OverallProgressPercent),
		Column11:               ToPgTimestamptzPtr(record.CompletedAt),
		Version:                expectedVersion,
	}
}

// LessonFromRow 转换课时投影。
func LessonFromRow(row progressdb.ProgressLesson) *po.Lesson {
	return &po.Lesson{
		LessonID:             row.LessonID,
		CourseID:             row.CourseID,
		Title:                row.Title,
		Description:          textPtr(row.Description),
		VideoURL:             textPtr(row.VideoUrl),
		VideoDurationSeconds: numericPtr(row.VideoDurationSeconds),
		Position:             row.Position,
		Status:               row.Status,
		Version:              row.Version,
		CreatedAt:            mustTimestamp(row.CreatedAt),
		UpdatedAt:            mustTimestamp(row.UpdatedAt),
	}
}

// LessonQuestionFromRow 转换题目，options 解析失败时返回空列表。
func LessonQuestionFromRow(row progressdb.ProgressLessonQuestion) *po.LessonQuestion {
	var options []string
	if len(row.Options) > 0 {
		if err := json.Unmarshal(row.Options, &options); err != nil {
			options = nil
		}
	}
	return &po.LessonQuestion{
		QuestionID: row.QuestionID,
		LessonID:   row.LessonID,
		Section:    row.Section,
		Prompt:     row.Prompt,
		Options:    options,
		Position:   row.Position,
		CreatedAt:  mustTimestamp(row.CreatedAt),
	}
}

// MarshalOptions 将题目选项编码为 jsonb。
func MarshalOptions(options []string) ([]byte, error) {
	if options == nil {
		options = []string{}
	}
	return json.Marshal(options)
}

// LessonCommentFromRow 转换评论。
func LessonCommentFromRow(row progressdb.ProgressLessonComment) *po.LessonComment {
	return &po.LessonComment{
		CommentID: row.CommentID,
		LessonID:  row.LessonID,
		LearnerID: row.LearnerID,
		Body:      row.Body,
		CreatedAt: mustTimestamp(row.CreatedAt),
	}
}

// LessonReportFromRow 转换 AI 报告。
func LessonReportFromRow(row progressdb.ProgressLessonReport) *po.LessonReport {
	return &po.LessonReport{
		LearnerID:   row.LearnerID,
		LessonID:    row.LessonID,
		Content:     row.Content,
		GeneratedAt: mustTimestamp(row.GeneratedAt),
		Version:     row.Version,
	}
}

// CourseProgressFromRow 转换课程汇总。
func CourseProgressFromRow(row progressdb.ProgressCourseProgress) *po.CourseProgress {
	return &po.CourseProgress{
		LearnerID:        row.LearnerID,
		CourseID:         row.CourseID,
		TotalLessons:     row.TotalLessons,
		CompletedLessons: row.CompletedLessons,
		ProgressPercent:  row.ProgressPercent,
		CompletedAt:      timestampPtr(row.CompletedAt),
		Version:          row.Version,
		CreatedAt:        mustTimestamp(row.CreatedAt),
		UpdatedAt:        mustTimestamp(row.UpdatedAt),
	}
}

// ToPgNumeric 将 float64 转换为 pgtype.Numeric，NaN 与 Inf 视为 0。
func ToPgNumeric(value float64) pgtype.Numeric {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		value = 0
	}
	var num pgtype.Numeric
	if err := num.Scan(strconv.FormatFloat(value, 'f', -1, 64)); err != nil {
		return pgtype.Numeric{}
	}
	return num
}

// ToPgNumericPtr 将 *float64 转换为可空 pgtype.Numeric。
func ToPgNumericPtr(value *float64) pgtype.Numeric {
	if value == nil {
		return pgtype.Numeric{}
	}
	return ToPgNumeric(*value)
}

func numericToFloat64(num pgtype.Numeric) float64 {
	if !num.Valid {
		return 0
	}
	if val, err := num.Float64Value(); err == nil && val.Valid {
		return val.Float64
	}
	if val, err := num.Int64Value(); err == nil && val.Valid {
		return float64(val.Int64)
	}
	return 0
}

func numericPtr(num pgtype.Numeric) *float64 {
	if !num.Valid {
		return nil
	}
	v := numericToFloat64(num)
	return &v
}

// ToPgTimestamptzPtr 将 *time.Time 转换为 pgtype.Timestamptz。
func ToPgTimestamptzPtr(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t.UTC(), Valid: true}
}

// ToPgTimestamptz 将 time.Time 转换为 pgtype.Timestamptz，零值视为 NULL。
func ToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t.UTC(), Valid: true}
}

// ToPgText 将 *string 转换为 pgtype.Text。
func ToPgText(value *string) pgtype.Text {
	if value == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *value, Valid: true}
}

func textPtr(value pgtype.Text) *string {
	if !value.Valid {
		return nil
	}
	v := value.String
	return &v
}

func mustTimestamp(value pgtype.Timestamptz) time.Time {
	if !value.Valid {
		return time.Time{}
	}
	return value.Time.UTC()
}

func timestampPtr(value pgtype.Timestamptz) *time.Time {
	if !value.Valid {
		return nil
	}
	t := value.Time.UTC()
	return &t
}
