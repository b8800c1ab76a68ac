package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPriorityTerms(t *testing.T) {
	e := newTestEngine()
	base := practicedScore(e, 80, t0)
	base.TotalAttempts = 25
	base.CorrectCount = 20
	base.IncorrectCount = 5

	t.Run("competency gap", func(t *testing.T) {
		assert.InDelta(t, 40, e.competencyGapTerm(base), 1e-9)
	})
	t.Run("confidence gap", func(t *testing.T) {
		assert.InDelta(t, 30, e.confidenceGapTerm(base), 1e-9)
	})
	t.Run("recency", func(t *testing.T) {
		assert.InDelta(t, 2, e.recencyTerm(base, t0.AddDate(0, 0, 4)), 1e-9)
		fresh := e.InitializeSkillScore(t0)
		assert.Zero(t, e.recencyTerm(fresh, t0.AddDate(0, 0, 30)))
	})
	t.Run("streak", func(t *testing.T) {
		s := base
		s.RecentStreak = -3
		assert.InDelta(t, 15, e.streakTerm(s), 1e-9)
		s.RecentStreak = 3
		assert.InDelta(t, -8, e.streakTerm(s), 1e-9)
		s.RecentStreak = 2
		assert.Zero(t, e.streakTerm(s))
	})
	t.Run("reinforcement", func(t *testing.T) {
		s := base
		assert.Zero(t, e.reinforcementTerm(s))
		s.NeedsReinforcement = true
		assert.InDelta(t, 20, e.reinforcementTerm(s), 1e-9)
	})
	t.Run("velocity", func(t *testing.T) {
		s := base
		s.ImprovementRate = -33
		assert.InDelta(t, 15, e.velocityTerm(s), 1e-9)
		s.ImprovementRate = 33
		assert.Zero(t, e.velocityTerm(s), "strong skills get no improver boost")
		s.CompetencyScore = 45
		assert.InDelta(t, 10, e.velocityTerm(s), 1e-9)
	})
}

func TestReliabilityTerm(t *testing.T) {
	e := newTestEngine()
	tests := []struct {
		attempts int
		want     float64
	}{
		{0, 15}, {4, 15}, {5, 8}, {9, 8}, {10, 3}, {19, 3}, {20, 0}, {100, 0},
	}
	for _, tt := range tests {
		s := SkillScore{TotalAttempts: tt.attempts}
		assert.Equal(t, tt.want, e.reliabilityTerm(s), "attempts %d", tt.attempts)
	}
}

func TestTimePerformanceTerm(t *testing.T) {
	e := newTestEngine()
	s := SkillScore{TotalAttempts: 10, CorrectCount: 4, IncorrectCount: 6, OptimalTimeEstimate: 100}

	s.AverageTimeSpent = 200
	assert.InDelta(t, 10, e.timePerformanceTerm(s), 1e-9, "slow and wrong")
	s.AverageTimeSpent = 30
	assert.InDelta(t, 8, e.timePerformanceTerm(s), 1e-9, "rushed and wrong")
	s.AverageTimeSpent = 100
	assert.Zero(t, e.timePerformanceTerm(s))

	s.CorrectCount, s.IncorrectCount = 9, 1
	s.AverageTimeSpent = 200
	assert.InDelta(t, 5, e.timePerformanceTerm(s), 1e-9, "right but slow")

	s.OptimalTimeEstimate = 0
	assert.Zero(t, e.timePerformanceTerm(s))
}

func TestSkillPriority_IsSumOfTerms(t *testing.T) {
	e := newTestEngine()
	s := practicedScore(e, 45, t0)
	s.RecentStreak = -2
	s.NeedsReinforcement = true
	now := t0.AddDate(0, 0, 6)

	want := e.competencyGapTerm(s) + e.confidenceGapTerm(s) + e.recencyTerm(s, now) +
		e.streakTerm(s) + e.reinforcementTerm(s) + e.reliabilityTerm(s) +
		e.velocityTerm(s) + e.timePerformanceTerm(s)
	assert.InDelta(t, want, e.SkillPriority(s, now), 1e-9)
}

func TestSkillPriority_WeakerSkillRanksHigher(t *testing.T) {
	e := newTestEngine()
	weak := practicedScore(e, 30, t0)
	strong := practicedScore(e, 90, t0)
	now := t0.Add(time.Hour)
	assert.Greater(t, e.SkillPriority(weak, now), e.SkillPriority(strong, now))
}

func TestSelectOptimalDifficulty(t *testing.T) {
	e := newTestEngine()
	tests := []struct {
		competency float64
		want       Difficulty
	}{
		{0, Easy}, {39.99, Easy}, {40, Medium}, {74.99, Medium}, {75, Hard}, {100, Hard},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, e.SelectOptimalDifficulty(SkillScore{CompetencyScore: tt.competency}))
	}
}

func TestDifficultyHarder(t *testing.T) {
	assert.Equal(t, Medium, Easy.Harder())
	assert.Equal(t, Hard, Medium.Harder())
	assert.Equal(t, Hard, Hard.Harder())
}
