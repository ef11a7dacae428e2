package controllers

import (
	"context"

	"github.com/bionicotaku/lingo-services-progress/internal/controllers/dto"
	"github.com/bionicotaku/lingo-services-progress/internal/services"
)

// LessonHandler 返回课时详情页。
type LessonHandler struct {
	*BaseHandler
	details services.LessonDetailServiceInterface
}

// NewLessonHandler 构造 LessonHandler。
func NewLessonHandler(details services.LessonDetailServiceInterface, base *BaseHandler) *LessonHandler {
	if base == nil {
		base = NewBaseHandler(HandlerTimeouts{})
	}
	return &LessonHandler{BaseHandler: base, details: details}
}

// GetLesson 返回课时内容、题目、评论、报告与当前学员进度。
func (h *LessonHandler) GetLesson(ctx context.Context, req *dto.GetLessonRequest) (*dto.LessonDetailResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	meta := h.ExtractMetadata(ctx)
	learnerID, err := resolveLearnerID(ctx, req.LearnerID, meta)
	if err != nil {
		return nil, err
	}
	lessonID, err := dto.ParseID("lesson_id", req.LessonID)
	if err != nil {
		return nil, invalidArgument("%v", err)
	}

	timeoutCtx, cancel := h.WithTimeout(ctx, HandlerTypeQuery)
	defer cancel()
	timeoutCtx = InjectHandlerMetadata(timeoutCtx, meta)

	detail, err := h.details.GetLessonDetails(timeoutCtx, services.LessonDetailInput{
		LearnerID:     learnerID,
		LessonID:      lessonID,
		CommentLimit:  req.CommentLimit,
		CommentOffset: req.CommentOffset,
	})
	if err != nil {
		return nil, mapServiceError(err)
	}
	return dto.NewLessonDetailResponse(detail), nil
}
