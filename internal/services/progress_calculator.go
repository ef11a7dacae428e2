package services

import (
	"math"

	outboxevents "github.com/bionicotaku/lingo-services-progress/internal/models/outbox_events"
	"github.com/bionicotaku/lingo-services-progress/internal/models/po"
)

// 各 section 在整体进度中的权重，合计为 1。
const (
	videoWeight     = 0.40
	theoryWeight    = 0.20
	practicalWeight = 0.20
	mcqWeight       = 0.20
)

// ProgressUpdate 描述一次进度上报，所有字段可选；nil 表示该维度本次不变。
type ProgressUpdate struct {
	VideoWatchedSeconds *float64
	VideoTotalSeconds   *float64
	VideoCompleted      *bool
	TheoryCompleted     *bool
	PracticalCompleted  *bool
	MCQCompleted        *bool
}

// IsEmpty 判断上报是否不含任何字段。
func (u ProgressUpdate) IsEmpty() bool {
	return u.VideoWatchedSeconds == nil &&
		u.VideoTotalSeconds == nil &&
		u.VideoCompleted == nil &&
		u.TheoryCompleted == nil &&
		u.PracticalCompleted == nil &&
		u.MCQCompleted == nil
}

// MergeResult 是合并后的记录以及本次合并观察到的状态变化。
type MergeResult struct {
	Record *po.LessonProgress
	// Degraded 表示上报了观看时长但视频总时长仍未知，视频进度按 0 计。
	Degraded bool
	// Latched 列出本次由 false 变为 true 的 section。
	Latched []string
}

// MergeSectionProgress 将上报合并进当前记录，返回新记录，不修改入参。
// 观看时长与总时长都取最大值，观看时长再截断到总时长，完成标记只能置位。
func MergeSectionProgress(current *po.LessonProgress, update ProgressUpdate) MergeResult {
	next := current.Clone()
	if next == nil {
		next = &po.LessonProgress{}
	}

	watched := sanitizeSeconds(next.VideoWatchedSeconds)
	if update.VideoWatchedSeconds != nil {
		watched = math.Max(watched, sanitizeSeconds(*update.VideoWatchedSeconds))
	}

	total := sanitizeSeconds(next.VideoTotalSeconds)
	if update.VideoTotalSeconds != nil {
		total = math.Max(total, sanitizeSeconds(*update.VideoTotalSeconds))
	}

	result := MergeResult{}
	if total > 0 {
		watched = math.Min(watched, total)
		next.VideoProgressPercent = math.Min(100, watched/total*100)
	} else {
		next.VideoProgressPercent = 0
		result.Degraded = update.VideoWatchedSeconds != nil
	}
	next.VideoWatchedSeconds = watched
	next.VideoTotalSeconds = total

	next.VideoCompleted, result.Latched = latch(next.VideoCompleted, update.VideoCompleted, outboxevents.SectionVideo, result.Latched)
	next.TheoryCompleted, result.Latched = latch(next.TheoryCompleted, update.TheoryCompleted, outboxevents.SectionTheory, result.Latched)
	next.PracticalCompleted, result.Latched = latch(next.PracticalCompleted, update.PracticalCompleted, outboxevents.SectionPractical, result.Latched)
	next.MCQCompleted, result.Latched = latch(next.MCQCompleted, update.MCQCompleted, outboxevents.SectionMCQ, result.Latched)

	result.Record = next
	return result
}

// OverallProgressPercent 按固定权重计算整体进度，四舍五入到 [0,100] 的整数。
func OverallProgressPercent(record *po.LessonProgress) int {
	if record == nil {
		return 0
	}
	videoPercent := record.VideoProgressPercent
	if math.IsNaN(videoPercent) || videoPercent < 0 {
		videoPercent = 0
	}
	if videoPercent > 100 {
		videoPercent = 100
	}

	score := videoPercent * videoWeight
	if record.TheoryCompleted {
		score += theoryWeight * 100
	}
	if record.PracticalCompleted {
		score += practicalWeight * 100
	}
	if record.MCQCompleted {
		score += mcqWeight * 100
	}
	return roundHalfUpPercent(score)
}

// ApplyProgressUpdate 先合并 section 状态再重算整体进度。
func ApplyProgressUpdate(current *po.LessonProgress, update ProgressUpdate) MergeResult {
	result := MergeSectionProgress(current, update)
	result.Record.OverallProgressPercent = OverallProgressPercent(result.Record)
	return result
}

func latch(current bool, incoming *bool, section string, latched []string) (bool, []string) {
	if current || incoming == nil || !*incoming {
		return current, latched
	}
	return true, append(latched, section)
}

// sanitizeSeconds 将负数与非有限值视为 0。
func sanitizeSeconds(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// roundHalfUpPercent 以 1e-9 容差吸收浮点误差后四舍五入并截断到 [0,100]。
func roundHalfUpPercent(score float64) int {
	if math.IsNaN(score) || score <= 0 {
		return 0
	}
	if score >= 100 {
		return 100
	}
	return int(math.Floor(score + 0.5 + 1e-9))
}
