package report

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/satlearn/internal/content"
	"github.com/abhisek/satlearn/internal/learning"
	"github.com/abhisek/satlearn/internal/scoring"
	"github.com/abhisek/satlearn/internal/store"
)

func newState(t *testing.T) *learning.LearnerState {
	t.Helper()
	svc := learning.NewService(scoring.NewEngine(scoring.DefaultConfig()), store.NewMemoryLearnerRepo(), nil,
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()
	require.NoError(t, svc.RecordAnswer(ctx, "alice", learning.Answer{QuestionID: "q1", SkillID: 29, Difficulty: scoring.Hard, Correct: true, TimeSpent: 150}))
	st, err := svc.GetLearnerState(ctx, "alice")
	require.NoError(t, err)
	return st
}

func TestStats(t *testing.T) {
	out := Stats(newState(t))
	assert.Contains(t, out, "Learner alice")
	assert.Contains(t, out, "Questions answered  1")
	assert.Contains(t, out, "Domains")
	assert.Contains(t, out, "Advanced Math")
	assert.Contains(t, out, "2m30s")
}

func TestSkills(t *testing.T) {
	st := newState(t)
	practiced := Skills(st, false)
	assert.Contains(t, practiced, "1 attempts")
	assert.NotContains(t, practiced, "0 attempts")

	all := Skills(st, true)
	assert.Contains(t, all, "0 attempts")
}

func TestInsights(t *testing.T) {
	ins := &learning.Insights{
		Strengths: []learning.SkillInsight{{SkillID: 1, Name: "Central Ideas and Details", Competency: 88}},
		ImprovementAreas: []learning.SkillInsight{
			{SkillID: 2, Name: "Command of Evidence", Competency: 40, Reason: "competency below 50"},
		},
	}
	out := Insights(ins)
	assert.Contains(t, out, "Central Ideas and Details")
	assert.Contains(t, out, "competency below 50")
	assert.Contains(t, out, "none")
}

func TestHistory(t *testing.T) {
	assert.Equal(t, "No answers recorded.\n", History(nil))

	out := History([]store.AnswerRecord{
		{Sequence: 7, Timestamp: time.Now(), QuestionID: "q-77", SkillID: 29, Difficulty: 2, Correct: false, TimeSpent: 95},
	})
	assert.Contains(t, out, "q-77")
	assert.Contains(t, out, "hard")
	assert.Contains(t, out, "95")
}

func TestSession(t *testing.T) {
	field := 29
	out := Session("abc", []content.Question{
		{ID: "q1", Field: &field, Domain: 5, Difficulty: 1},
		{ID: "q2", Domain: 42, Difficulty: 0},
	})
	assert.Contains(t, out, "Session abc")
	assert.Contains(t, out, "q1")
	assert.Contains(t, out, "medium")
	assert.Contains(t, out, "unmapped")

	assert.Contains(t, Session("abc", nil), "empty")
}
