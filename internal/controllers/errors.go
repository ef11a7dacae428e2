package controllers

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/bionicotaku/lingo-services-progress/internal/services"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-playground/validator/v10"
)

// 对外暴露的错误 reason。
const (
	ReasonInvalidArgument        = "INVALID_ARGUMENT"
	ReasonLearnerUnauthenticated = "LEARNER_UNAUTHENTICATED"
	ReasonLessonNotFound         = "LESSON_NOT_FOUND"
	ReasonCourseProgressNotFound = "COURSE_PROGRESS_NOT_FOUND"
	ReasonProgressWriteFailed    = "PROGRESS_WRITE_FAILED"
	ReasonDeadlineExceeded       = "DEADLINE_EXCEEDED"
	ReasonInternal               = "INTERNAL"
)

var requestValidator = validator.New(validator.WithRequiredStructEnabled())

func validateRequest(req any) error {
	if err := requestValidator.Struct(req); err != nil {
		return invalidArgument("%v", err)
	}
	return nil
}

func invalidArgument(format string, args ...any) error {
	return errors.BadRequest(ReasonInvalidArgument, fmt.Sprintf(format, args...))
}

// mapServiceError 将服务层错误映射为带稳定 reason 的 Kratos 错误。
func mapServiceError(err error) error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, services.ErrInvalidProgressInput):
		return errors.BadRequest(ReasonInvalidArgument, err.Error())
	case stderrors.Is(err, services.ErrLessonNotFound):
		return errors.NotFound(ReasonLessonNotFound, err.Error())
	case stderrors.Is(err, services.ErrCourseProgressNotFound):
		return errors.NotFound(ReasonCourseProgressNotFound, err.Error())
	case stderrors.Is(err, context.DeadlineExceeded):
		return errors.GatewayTimeout(ReasonDeadlineExceeded, err.Error())
	case stderrors.Is(err, services.ErrProgressWriteFailed):
		return errors.ServiceUnavailable(ReasonProgressWriteFailed, err.Error())
	default:
		return errors.InternalServer(ReasonInternal, err.Error())
	}
}
