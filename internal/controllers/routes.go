package controllers

import (
	"context"
	"net/http"

	"github.com/bionicotaku/lingo-services-progress/internal/controllers/dto"

	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

// HTTP operation 名称，供中间件按接口区分。
const (
	OperationUpdateProgress    = "/progress.v1.Progress/UpdateProgress"
	OperationGetProgress       = "/progress.v1.Progress/GetProgress"
	OperationGetLesson         = "/progress.v1.Progress/GetLesson"
	OperationGetCourseProgress = "/progress.v1.Progress/GetCourseProgress"
	OperationListCourseLessons = "/progress.v1.Progress/ListCourseLessonProgress"
)

// RegisterHTTPRoutes 将各 Handler 挂载到 Kratos HTTP Server。nil Handler 对应的路由不注册。
func RegisterHTTPRoutes(s *khttp.Server, progress *ProgressHandler, lessons *LessonHandler, courses *CourseHandler) {
	r := s.Route("/")
	if progress != nil {
		r.POST("/v1/lessons/{lesson_id}/progress", updateProgressHTTPHandler(progress))
		r.GET("/v1/lessons/{lesson_id}/progress", getProgressHTTPHandler(progress))
		r.GET("/v1/courses/{course_id}/lessons/progress", listCourseLessonProgressHTTPHandler(progress))
	}
	if lessons != nil {
		r.GET("/v1/lessons/{lesson_id}", getLessonHTTPHandler(lessons))
	}
	if courses != nil {
		r.GET("/v1/courses/{course_id}/progress", getCourseProgressHTTPHandler(courses))
	}
}

func updateProgressHTTPHandler(h *ProgressHandler) khttp.HandlerFunc {
	return func(ctx khttp.Context) error {
		var in dto.UpdateProgressRequest
		if err := ctx.Bind(&in); err != nil {
			return invalidArgument("decode body: %v", err)
		}
		if err := ctx.BindVars(&in); err != nil {
			return invalidArgument("decode path: %v", err)
		}
		khttp.SetOperation(ctx, OperationUpdateProgress)
		handler := ctx.Middleware(func(c context.Context, req any) (any, error) {
			return h.UpdateProgress(c, req.(*dto.UpdateProgressRequest))
		})
		out, err := handler(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(http.StatusOK, out)
	}
}

func getProgressHTTPHandler(h *ProgressHandler) khttp.HandlerFunc {
	return func(ctx khttp.Context) error {
		var in dto.GetProgressRequest
		if err := ctx.BindQuery(&in); err != nil {
			return invalidArgument("decode query: %v", err)
		}
		if err := ctx.BindVars(&in); err != nil {
			return invalidArgument("decode path: %v", err)
		}
		khttp.SetOperation(ctx, OperationGetProgress)
		handler := ctx.Middleware(func(c context.Context, req any) (any, error) {
			return h.GetProgress(c, req.(*dto.GetProgressRequest))
		})
		out, err := handler(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(http.StatusOK, out)
	}
}

func getLessonHTTPHandler(h *LessonHandler) khttp.HandlerFunc {
	return func(ctx khttp.Context) error {
		var in dto.GetLessonRequest
		if err := ctx.BindQuery(&in); err != nil {
			return invalidArgument("decode query: %v", err)
		}
		if err := ctx.BindVars(&in); err != nil {
			return invalidArgument("decode path: %v", err)
		}
		khttp.SetOperation(ctx, OperationGetLesson)
		handler := ctx.Middleware(func(c context.Context, req any) (any, error) {
			return h.GetLesson(c, req.(*dto.GetLessonRequest))
		})
		out, err := handler(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(http.StatusOK, out)
	}
}

func getCourseProgressHTTPHandler(h *CourseHandler) khttp.HandlerFunc {
	return func(ctx khttp.Context) error {
		var in dto.GetCourseProgressRequest
		if err := ctx.BindQuery(&in); err != nil {
			return invalidArgument("decode query: %v", err)
		}
		if err := ctx.BindVars(&in); err != nil {
			return invalidArgument("decode path: %v", err)
		}
		khttp.SetOperation(ctx, OperationGetCourseProgress)
		handler := ctx.Middleware(func(c context.Context, req any) (any, error) {
			return h.GetCourseProgress(c, req.(*dto.GetCourseProgressRequest))
		})
		out, err := handler(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(http.StatusOK, out)
	}
}

func listCourseLessonProgressHTTPHandler(h *ProgressHandler) khttp.HandlerFunc {
	return func(ctx khttp.Context) error {
		var in dto.ListCourseLessonProgressRequest
		if err := ctx.BindQuery(&in); err != nil {
			return invalidArgument("decode query: %v", err)
		}
		if err := ctx.BindVars(&in); err != nil {
			return invalidArgument("decode path: %v", err)
		}
		khttp.SetOperation(ctx, OperationListCourseLessons)
		handler := ctx.Middleware(func(c context.Context, req any) (any, error) {
			return h.ListCourseLessonProgress(c, req.(*dto.ListCourseLessonProgressRequest))
		})
		out, err := handler(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(http.StatusOK, out)
	}
}
