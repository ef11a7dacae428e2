package services

import "errors"

// 学习进度用例对外暴露的错误。
var (
	// ErrLessonNotFound 表示课时不存在或已删除。
	ErrLessonNotFound = errors.New("lesson not found")
	// ErrProgressWriteFailed 表示合并后的进度未能落库，本次计算结果已丢弃。
	ErrProgressWriteFailed = errors.New("progress write failed")
	// ErrInvalidProgressInput 表示标识缺失或上报内容不合法。
	ErrInvalidProgressInput = errors.New("invalid progress input")
	// ErrCourseProgressNotFound 表示学习者在课程下尚无汇总。
	ErrCourseProgressNotFound = errors.New("course progress not found")
)
