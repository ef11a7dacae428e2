package vo_test

import (
	"testing"

	"github.com/bionicotaku/lingo-services-progress/internal/models/po"
	"github.com/bionicotaku/lingo-services-progress/internal/models/vo"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestLessonDetail_QuestionsBySection(t *testing.T) {
	var empty *vo.LessonDetail
	require.Empty(t, empty.QuestionsBySection())

	lessonID := uuid.New()
	detail := &vo.LessonDetail{
		Questions: []*po.LessonQuestion{
			{QuestionID: uuid.New(), LessonID: lessonID, Section: "theory", Position: 1},
			nil,
			{QuestionID: uuid.New(), LessonID: lessonID, Section: "mcq", Position: 1},
			{QuestionID: uuid.New(), LessonID: lessonID, Section: "mcq", Position: 2},
		},
	}
	grouped := detail.QuestionsBySection()
	require.Len(t, grouped, 2)
	require.Len(t, grouped["theory"], 1)
	require.Len(t, grouped["mcq"], 2)
	require.Equal(t, int32(2), grouped["mcq"][1].Position)
	require.Empty(t, grouped["practical"])
}
