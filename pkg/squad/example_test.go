package squad

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDHelpers(t *testing.T) {
	tests := []struct {
		id     string
		isBase bool
		base   string
	}{
		{"56be4db0acb8001400a502ec", true, "56be4db0acb8001400a502ec"},
		{"56be4db0acb8001400a502ec-high-conf", false, "56be4db0acb8001400a502ec"},
		{"q1-turk-2", false, "q1"},
		{"", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.isBase, IsBaseID(tt.id))
			assert.Equal(t, tt.base, BaseID(tt.id))
		})
	}

	assert.Equal(t, "q1-high-conf", HighConfID("q1"))
}

func TestExampleClone(t *testing.T) {
	original := Example{
		Title:    "Paris",
		Context:  "Paris is the capital. It is large.",
		Question: "What is the capital?",
		Answers: Answers{
			Text:        []string{"Paris"},
			AnswerStart: []int64{0},
		},
	}

	clone := original.Clone()
	clone.Answers.Text[0] = "Rome"
	clone.Answers.AnswerStart[0] = 99

	assert.Equal(t, "Paris", original.Answers.Text[0])
	assert.Equal(t, int64(0), original.Answers.AnswerStart[0])
}

func TestAnswersCloneEmpty(t *testing.T) {
	var a Answers
	clone := a.Clone()
	assert.Empty(t, clone.Text)
	assert.Empty(t, clone.AnswerStart)
}
