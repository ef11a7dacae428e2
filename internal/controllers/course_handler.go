package controllers

import (
	"context"

	"github.com/bionicotaku/lingo-services-progress/internal/controllers/dto"
	"github.com/bionicotaku/lingo-services-progress/internal/services"
)

// CourseHandler 返回课程级进度。
type CourseHandler struct {
	*BaseHandler
	courses services.CourseProgressServiceInterface
}

// NewCourseHandler 构造 CourseHandler。
func NewCourseHandler(courses services.CourseProgressServiceInterface, base *BaseHandler) *CourseHandler {
	if base == nil {
		base = NewBaseHandler(HandlerTimeouts{})
	}
	return &CourseHandler{BaseHandler: base, courses: courses}
}

// GetCourseProgress 返回课程汇总及各课时进度。
func (h *CourseHandler) GetCourseProgress(ctx context.Context, req *dto.GetCourseProgressRequest) (*dto.CourseProgressResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	meta := h.ExtractMetadata(ctx)
	learnerID, err := resolveLearnerID(ctx, req.LearnerID, meta)
	if err != nil {
		return nil, err
	}
	courseID, err := dto.ParseID("course_id", req.CourseID)
	if err != nil {
		return nil, invalidArgument("%v", err)
	}

	timeoutCtx, cancel := h.WithTimeout(ctx, HandlerTypeQuery)
	defer cancel()
	timeoutCtx = InjectHandlerMetadata(timeoutCtx, meta)

	view, err := h.courses.GetCourseProgress(timeoutCtx, learnerID, courseID)
	if err != nil {
		return nil, mapServiceError(err)
	}
	return dto.NewCourseProgressResponse(view), nil
}
