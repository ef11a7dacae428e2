package courseinbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	outboxevents "github.com/bionicotaku/lingo-services-progress/internal/models/outbox_events"
	"github.com/bionicotaku/lingo-services-progress/internal/models/po"
	"github.com/bionicotaku/lingo-services-progress/internal/repositories"
	"github.com/bionicotaku/lingo-utils/outbox/store"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

type lessonProjections interface {
	Get(ctx context.Context, sess txmanager.Session, lessonID uuid.UUID) (*po.Lesson, error)
	Upsert(ctx context.Context, sess txmanager.Session, input repositories.UpsertLessonInput) error
}

type lessonContent interface {
	ReplaceQuestions(ctx context.Context, sess txmanager.Session, lessonID uuid.UUID, questions []repositories.LessonQuestionInput) error
	InsertComment(ctx context.Context, sess txmanager.Session, input repositories.InsertCommentInput) error
	UpsertReport(ctx context.Context, sess txmanager.Session, input repositories.UpsertReportInput) error
}

type lessonInvalidator interface {
	Invalidate(ctx context.Context, lessonID uuid.UUID) error
}

type eventHandler struct {
	lessons lessonProjections
	content lessonContent
	cache   lessonInvalidator
	log     *log.Helper
	metrics *inboxMetrics
	clock   func() time.Time
}

func newEventHandler(lessons lessonProjections, content lessonContent, cache lessonInvalidator, logger log.Logger, metrics *inboxMetrics) *eventHandler {
	return &eventHandler{
		lessons: lessons,
		content: content,
		cache:   cache,
		log:     log.NewHelper(logger),
		metrics: metrics,
		clock:   time.Now,
	}
}

func (h *eventHandler) Handle(ctx context.Context, sess txmanager.Session, evt *outboxevents.Envelope, inboxEvt *store.InboxEvent) error {
	if evt == nil {
		return fmt.Errorf("course inbox: nil event")
	}

	aggregateID := evt.AggregateID
	if aggregateID == "" && inboxEvt != nil && inboxEvt.AggregateID != nil {
		aggregateID = *inboxEvt.AggregateID
	}
	lessonID, err := uuid.Parse(aggregateID)
	if err != nil {
		return fmt.Errorf("course inbox: parse aggregate_id: %w", err)
	}

	occurredAt, err := parseRFC3339(evt.OccurredAt)
	if err != nil {
		h.metrics.record(ctx, evt.EventType, outcomeFailed)
		return fmt.Errorf("course inbox: parse occurred_at: %w", err)
	}
	if occurredAt.IsZero() {
		occurredAt = h.clock().UTC()
	}

	var handleErr error
	switch evt.EventType {
	case EventLessonCreated:
		handleErr = h.handleCreated(ctx, sess, evt, lessonID, occurredAt)
	case EventLessonUpdated:
		handleErr = h.handleUpdated(ctx, sess, evt, lessonID, occurredAt)
	case EventLessonDeleted:
		handleErr = h.handleDeleted(ctx, sess, evt, lessonID, occurredAt)
	case EventLessonQuestionsReplaced:
		handleErr = h.handleQuestionsReplaced(ctx, sess, evt, lessonID)
	case EventLessonCommentPosted:
		handleErr = h.handleCommentPosted(ctx, sess, evt, lessonID, occurredAt)
	case EventLessonReportGenerated:
		handleErr = h.handleReportGenerated(ctx, sess, evt, lessonID, occurredAt)
	default:
		h.log.WithContext(ctx).Debugw("msg", "course inbox: skip unsupported event", "event_type", evt.EventType, "event_id", evt.EventID)
		h.metrics.record(ctx, evt.EventType, outcomeSkipped)
		return nil
	}

	if handleErr != nil {
		h.metrics.record(ctx, evt.EventType, outcomeFailed)
		return handleErr
	}
	h.metrics.record(ctx, evt.EventType, outcomeApplied)
	h.metrics.observeLag(ctx, evt.EventType, occurredAt, h.clock())
	return nil
}

func (h *eventHandler) handleCreated(ctx context.Context, sess txmanager.Session, evt *outboxevents.Envelope, lessonID uuid.UUID, occurredAt time.Time) error {
	var payload LessonCreated
	if err := decodePayload(evt, &payload); err != nil {
		return err
	}
	courseID, err := uuid.Parse(payload.CourseID)
	if err != nil {
		return fmt.Errorf("course inbox: parse course_id: %w", err)
	}

	input := repositories.UpsertLessonInput{
		LessonID:             lessonID,
		CourseID:             courseID,
		Title:                defaultTitle(payload.Title),
		Description:          cloneString(payload.Description),
		VideoURL:             cloneString(payload.VideoURL),
		VideoDurationSeconds: cloneFloat(payload.VideoDurationSeconds),
		Position:             payload.Position,
		Status:               normalizeStatus(payload.Status),
		Version:              eventVersion(evt.Version, payload.Version),
		UpdatedAt:            &occurredAt,
	}
	if err := h.lessons.Upsert(ctx, sess, input); err != nil {
		return fmt.Errorf("course inbox: upsert created: %w", err)
	}
	h.invalidate(ctx, lessonID)
	return nil
}

func (h *eventHandler) handleUpdated(ctx context.Context, sess txmanager.Session, evt *outboxevents.Envelope, lessonID uuid.UUID, occurredAt time.Time) error {
	var payload LessonUpdated
	if err := decodePayload(evt, &payload); err != nil {
		return err
	}

	current, err := h.loadCurrent(ctx, sess, lessonID)
	if err != nil {
		return err
	}
	if current == nil {
		h.log.WithContext(ctx).Debugw("msg", "course inbox: skip update without projection", "lesson_id", lessonID)
		return nil
	}

	version := eventVersion(evt.Version, payload.Version)
	if !shouldApply(version, current.Version) {
		h.log.WithContext(ctx).Debugw("msg", "course inbox: skip stale update", "lesson_id", lessonID, "event_version", version, "current_version", current.Version)
		return nil
	}

	courseID := current.CourseID
	if payload.CourseID != nil {
		parsed, err := uuid.Parse(*payload.CourseID)
		if err != nil {
			return fmt.Errorf("course inbox: parse course_id: %w", err)
		}
		courseID = parsed
	}
	title := current.Title
	if payload.Title != nil {
		title = *payload.Title
	}
	position := current.Position
	if payload.Position != nil {
		position = *payload.Position
	}
	status := current.Status
	if payload.Status != nil {
		status = normalizeStatus(*payload.Status)
	}

	input := repositories.UpsertLessonInput{
		LessonID:             lessonID,
		CourseID:             courseID,
		Title:                defaultTitle(title),
		Description:          coalesceString(payload.Description, current.Description),
		VideoURL:             coalesceString(payload.VideoURL, current.VideoURL),
		VideoDurationSeconds: coalesceFloat(payload.VideoDurationSeconds, current.VideoDurationSeconds),
		Position:             position,
		Status:               status,
		Version:              version,
		UpdatedAt:            &occurredAt,
	}
	if err := h.lessons.Upsert(ctx, sess, input); err != nil {
		return fmt.Errorf("course inbox: upsert updated: %w", err)
	}
	h.invalidate(ctx, lessonID)
	return nil
}

func (h *eventHandler) handleDeleted(ctx context.Context, sess txmanager.Session, evt *outboxevents.Envelope, lessonID uuid.UUID, occurredAt time.Time) error {
	var payload LessonDeleted
	if err := decodePayload(evt, &payload); err != nil {
		return err
	}

	current, err := h.loadCurrent(ctx, sess, lessonID)
	if err != nil {
		return err
	}
	if current == nil {
		return nil
	}

	version := eventVersion(evt.Version, payload.Version)
	if !shouldApply(version, current.Version) {
		h.log.WithContext(ctx).Debugw("msg", "course inbox: skip stale delete", "lesson_id", lessonID, "event_version", version, "current_version", current.Version)
		return nil
	}

	input := repositories.UpsertLessonInput{
		LessonID:             lessonID,
		CourseID:             current.CourseID,
		Title:                defaultTitle(current.Title),
		Description:          current.Description,
		VideoURL:             current.VideoURL,
		VideoDurationSeconds: current.VideoDurationSeconds,
		Position:             current.Position,
		Status:               po.LessonStatusDeleted,
		Version:              version,
		UpdatedAt:            &occurredAt,
	}
	if err := h.lessons.Upsert(ctx, sess, input); err != nil {
		return fmt.Errorf("course inbox: upsert deleted: %w", err)
	}
	h.invalidate(ctx, lessonID)
	return nil
}

func (h *eventHandler) handleQuestionsReplaced(ctx context.Context, sess txmanager.Session, evt *outboxevents.Envelope, lessonID uuid.UUID) error {
	var payload LessonQuestionsReplaced
	if err := decodePayload(evt, &payload); err != nil {
		return err
	}

	questions := make([]repositories.LessonQuestionInput, 0, len(payload.Questions))
	for _, q := range payload.Questions {
		questionID, err := uuid.Parse(q.QuestionID)
		if err != nil {
			return fmt.Errorf("course inbox: parse question_id: %w", err)
		}
		section := strings.ToLower(strings.TrimSpace(q.Section))
		if !validSection(section) {
			return fmt.Errorf("course inbox: unknown question section %q", q.Section)
		}
		questions = append(questions, repositories.LessonQuestionInput{
			QuestionID: questionID,
			Section:    section,
			Prompt:     q.Prompt,
			Options:    q.Options,
			Position:   q.Position,
		})
	}
	if err := h.content.ReplaceQuestions(ctx, sess, lessonID, questions); err != nil {
		return fmt.Errorf("course inbox: replace questions: %w", err)
	}
	return nil
}

func (h *eventHandler) handleCommentPosted(ctx context.Context, sess txmanager.Session, evt *outboxevents.Envelope, lessonID uuid.UUID, occurredAt time.Time) error {
	var payload LessonCommentPosted
	if err := decodePayload(evt, &payload); err != nil {
		return err
	}
	commentID, err := uuid.Parse(payload.CommentID)
	if err != nil {
		return fmt.Errorf("course inbox: parse comment_id: %w", err)
	}
	learnerID, err := uuid.Parse(payload.LearnerID)
	if err != nil {
		return fmt.Errorf("course inbox: parse learner_id: %w", err)
	}
	createdAt := optionalTime(payload.CreatedAt, occurredAt)

	input := repositories.InsertCommentInput{
		CommentID: commentID,
		LessonID:  lessonID,
		LearnerID: learnerID,
		Body:      payload.Body,
		CreatedAt: &createdAt,
	}
	if err := h.content.InsertComment(ctx, sess, input); err != nil {
		return fmt.Errorf("course inbox: insert comment: %w", err)
	}
	return nil
}

func (h *eventHandler) handleReportGenerated(ctx context.Context, sess txmanager.Session, evt *outboxevents.Envelope, lessonID uuid.UUID, occurredAt time.Time) error {
	var payload LessonReportGenerated
	if err := decodePayload(evt, &payload); err != nil {
		return err
	}
	learnerID, err := uuid.Parse(payload.LearnerID)
	if err != nil {
		return fmt.Errorf("course inbox: parse learner_id: %w", err)
	}

	input := repositories.UpsertReportInput{
		LearnerID:   learnerID,
		LessonID:    lessonID,
		Content:     payload.Content,
		GeneratedAt: optionalTime(payload.GeneratedAt, occurredAt),
		Version:     eventVersion(evt.Version, payload.Version),
	}
	if err := h.content.UpsertReport(ctx, sess, input); err != nil {
		return fmt.Errorf("course inbox: upsert report: %w", err)
	}
	return nil
}

func (h *eventHandler) loadCurrent(ctx context.Context, sess txmanager.Session, lessonID uuid.UUID) (*po.Lesson, error) {
	record, err := h.lessons.Get(ctx, sess, lessonID)
	if err != nil {
		if errors.Is(err, repositories.ErrLessonNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("course inbox: load lesson: %w", err)
	}
	return record, nil
}

// invalidate 失败只记录日志，缓存条目会在 TTL 后自然过期。
func (h *eventHandler) invalidate(ctx context.Context, lessonID uuid.UUID) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Invalidate(ctx, lessonID); err != nil {
		h.log.WithContext(ctx).Warnw("msg", "course inbox: invalidate lesson cache failed", "lesson_id", lessonID, "error", err)
	}
}

func decodePayload(evt *outboxevents.Envelope, target any) error {
	if len(evt.Payload) == 0 {
		return fmt.Errorf("course inbox: %s payload missing", evt.EventType)
	}
	if err := json.Unmarshal(evt.Payload, target); err != nil {
		return fmt.Errorf("course inbox: decode %s payload: %w", evt.EventType, err)
	}
	return nil
}

func parseRFC3339(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	ts, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, err
	}
	return ts.UTC(), nil
}

func optionalTime(value string, fallback time.Time) time.Time {
	parsed, err := parseRFC3339(value)
	if err != nil || parsed.IsZero() {
		return fallback
	}
	return parsed
}

func eventVersion(envelopeVersion, payloadVersion int64) int64 {
	if payloadVersion > 0 {
		return payloadVersion
	}
	return envelopeVersion
}

func shouldApply(newVersion, currentVersion int64) bool {
	if newVersion == 0 {
		return true
	}
	return newVersion > currentVersion
}

func normalizeStatus(status string) string {
	if strings.EqualFold(strings.TrimSpace(status), po.LessonStatusDeleted) {
		return po.LessonStatusDeleted
	}
	return po.LessonStatusPublished
}

func validSection(section string) bool {
	switch section {
	case outboxevents.SectionTheory, outboxevents.SectionPractical, outboxevents.SectionMCQ:
		return true
	default:
		return false
	}
}

func defaultTitle(title string) string {
	if title == "" {
		return "(untitled)"
	}
	return title
}

func coalesceString(newVal *string, current *string) *string {
	if newVal != nil {
		val := *newVal
		return &val
	}
	return current
}

func coalesceFloat(newVal *float64, current *float64) *float64 {
	if newVal != nil {
		val := *newVal
		return &val
	}
	return current
}

func cloneString(ptr *string) *string {
	if ptr == nil {
		return nil
	}
	val := *ptr
	return &val
}

func cloneFloat(ptr *float64) *float64 {
	if ptr == nil {
		return nil
	}
	val := *ptr
	return &val
}
