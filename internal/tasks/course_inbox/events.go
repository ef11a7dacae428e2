package courseinbox

// 课程目录服务发布的事件类型。
const (
	EventLessonCreated           = "course.lesson.created"
	EventLessonUpdated           = "course.lesson.updated"
	EventLessonDeleted           = "course.lesson.deleted"
	EventLessonQuestionsReplaced = "course.lesson.questions_replaced"
	EventLessonCommentPosted     = "course.lesson.comment_posted"
	EventLessonReportGenerated   = "course.lesson.report_generated"
)

// LessonCreated 是 course.lesson.created 的载荷。
type LessonCreated struct {
	CourseID             string   `json:"course_id"`
	Title                string   `json:"title"`
	Description          *string  `json:"description,omitempty"`
	VideoURL             *string  `json:"video_url,omitempty"`
	VideoDurationSeconds *float64 `json:"video_duration_seconds,omitempty"`
	Position             int32    `json:"position"`
	Status               string   `json:"status,omitempty"`
	Version              int64    `json:"version,omitempty"`
}

// LessonUpdated 是 course.lesson.updated 的载荷，未出现的字段保持原值。
type LessonUpdated struct {
	CourseID             *string  `json:"course_id,omitempty"`
	Title                *string  `json:"title,omitempty"`
	Description          *string  `json:"description,omitempty"`
	VideoURL             *string  `json:"video_url,omitempty"`
	VideoDurationSeconds *float64 `json:"video_duration_seconds,omitempty"`
	Position             *int32   `json:"position,omitempty"`
	Status               *string  `json:"status,omitempty"`
	Version              int64    `json:"version,omitempty"`
}

// LessonDeleted 是 course.lesson.deleted 的载荷。
type LessonDeleted struct {
	Version int64 `json:"version,omitempty"`
}

// Question 描述一道课时题目。
type Question struct {
	QuestionID string   `json:"question_id"`
	Section    string   `json:"section"`
	Prompt     string   `json:"prompt"`
	Options    []string `json:"options,omitempty"`
	Position   int32    `json:"position"`
}

// LessonQuestionsReplaced 是 course.lesson.questions_replaced 的载荷。
type LessonQuestionsReplaced struct {
	Questions []Question `json:"questions"`
}

// LessonCommentPosted 是 course.lesson.comment_posted 的载荷。
type LessonCommentPosted struct {
	CommentID string `json:"comment_id"`
	LearnerID string `json:"learner_id"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at,omitempty"`
}

// LessonReportGenerated 是 course.lesson.report_generated 的载荷。
type LessonReportGenerated struct {
	LearnerID   string `json:"learner_id"`
	Content     string `json:"content"`
	GeneratedAt string `json:"generated_at,omitempty"`
	Version     int64  `json:"version,omitempty"`
}
