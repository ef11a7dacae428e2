// Package vo 定义服务在控制器与外部交互使用的视图对象。
package vo

import (
	"github.com/bionicotaku/lingo-services-progress/internal/models/po"
)

// LessonDetail 聚合课时详情页所需的全部内容。
// Progress 为 nil 表示学员尚未开始该课时。
type LessonDetail struct {
	Lesson    *po.Lesson
	Questions []*po.LessonQuestion
	Comments  []*po.LessonComment
	Report    *po.LessonReport
	Progress  *po.LessonProgress
}

// QuestionsBySection 按 section 分组题目。
func (d *LessonDetail) QuestionsBySection() map[string][]*po.LessonQuestion {
	if d == nil || len(d.Questions) == 0 {
		return map[string][]*po.LessonQuestion{}
	}
	grouped := make(map[string][]*po.LessonQuestion, 3)
	for _, q := range d.Questions {
		if q == nil {
			continue
		}
		grouped[q.Section] = append(grouped[q.Section], q)
	}
	return grouped
}

// CourseProgressView 描述课程级进度及各课时明细。
type CourseProgressView struct {
	Course  *po.CourseProgress
	Lessons []*po.LessonProgress
}
