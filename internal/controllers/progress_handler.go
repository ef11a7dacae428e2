package controllers

import (
	"context"
	"strings"

	"github.com/bionicotaku/lingo-services-progress/internal/controllers/dto"
	"github.com/bionicotaku/lingo-services-progress/internal/metadata"
	"github.com/bionicotaku/lingo-services-progress/internal/services"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/google/uuid"
)

// ProgressHandler 处理课时进度上报与查询。
type ProgressHandler struct {
	*BaseHandler
	progress services.LessonProgressServiceInterface
}

// NewProgressHandler 构造 ProgressHandler。
func NewProgressHandler(progress services.LessonProgressServiceInterface, base *BaseHandler) *ProgressHandler {
	if base == nil {
		base = NewBaseHandler(HandlerTimeouts{})
	}
	return &ProgressHandler{BaseHandler: base, progress: progress}
}

// UpdateProgress 合并一次播放心跳或 section 完成上报，返回合并后的进度。
func (h *ProgressHandler) UpdateProgress(ctx context.Context, req *dto.UpdateProgressRequest) (*dto.LessonProgressResponse, error) {
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

	timeoutCtx, cancel := h.WithTimeout(ctx, HandlerTypeCommand)
	defer cancel()
	timeoutCtx = InjectHandlerMetadata(timeoutCtx, meta)

	record, err := h.progress.UpdateProgress(timeoutCtx, learnerID, lessonID, req.ToProgressUpdate())
	if err != nil {
		return nil, mapServiceError(err)
	}
	return &dto.LessonProgressResponse{Progress: dto.NewLessonProgress(record)}, nil
}

// GetProgress 返回学员在课时下的进度，未开始时 progress 为 null。
func (h *ProgressHandler) GetProgress(ctx context.Context, req *dto.GetProgressRequest) (*dto.LessonProgressResponse, error) {
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

	record, err := h.progress.GetProgress(timeoutCtx, learnerID, lessonID)
	if err != nil {
		return nil, mapServiceError(err)
	}
	return &dto.LessonProgressResponse{Progress: dto.NewLessonProgress(record)}, nil
}

// ListCourseLessonProgress 返回学员在课程下全部已开始课时的进度，不依赖课程汇总是否已生成。
func (h *ProgressHandler) ListCourseLessonProgress(ctx context.Context, req *dto.ListCourseLessonProgressRequest) (*dto.LessonProgressListResponse, error) {
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

	records, err := h.progress.ListCourseLessonProgress(timeoutCtx, learnerID, courseID)
	if err != nil {
		return nil, mapServiceError(err)
	}
	return &dto.LessonProgressListResponse{Lessons: dto.NewLessonProgressList(records)}, nil
}

// resolveLearnerID 优先使用请求体中的 learner_id，其次是网关注入的 userinfo。
func resolveLearnerID(ctx context.Context, requested string, meta metadata.HandlerMetadata) (uuid.UUID, error) {
	if strings.TrimSpace(requested) != "" {
		id, err := dto.ParseID("learner_id", requested)
		if err != nil {
			return uuid.Nil, invalidArgument("%v", err)
		}
		return id, nil
	}
	if id, ok := meta.LearnerUUID(); ok {
		return id, nil
	}
	if meta.InvalidUserInfo {
		return uuid.Nil, errors.Unauthorized(ReasonLearnerUnauthenticated, "userinfo header is malformed")
	}
	if strings.TrimSpace(meta.LearnerID) != "" {
		return uuid.Nil, invalidArgument("learner id %q is not a uuid", meta.LearnerID)
	}
	if id, ok := metadata.LearnerFromContext(ctx); ok {
		return id, nil
	}
	return uuid.Nil, errors.Unauthorized(ReasonLearnerUnauthenticated, "learner identity required")
}
