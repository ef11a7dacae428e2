// Package services 包含学习进度用例的编排逻辑。
// 该层协调 Repository 与 outbox，实现进度合并、课程汇总与详情组装，不直接依赖传输层或基础设施细节。
package services

import "github.com/google/wire"

// ProviderSet 暴露 Services 层的构造函数供 Wire 依赖注入使用。
var ProviderSet = wire.NewSet(
	NewLessonQueryService,
	NewCourseProgressService,
	NewLessonProgressService,
	NewLessonDetailService,
	wire.Bind(new(LessonLookup), new(*LessonQueryService)),
	wire.Bind(new(CourseProgressUpdater), new(*CourseProgressService)),
)
