package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func attempts(outcomes ...bool) []AttemptRecord {
	out := make([]AttemptRecord, len(outcomes))
	for i, ok := range outcomes {
		out[i] = AttemptRecord{Correct: ok}
	}
	return out
}

func TestMasteryLevelFor(t *testing.T) {
	tests := []struct {
		competency float64
		want       MasteryLevel
	}{
		{0, LevelBeginner},
		{39.9, LevelBeginner},
		{40, LevelDeveloping},
		{60, LevelProficient},
		{74.9, LevelProficient},
		{75, LevelAdvanced},
		{90, LevelMaster},
		{100, LevelMaster},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MasteryLevelFor(tt.competency), "competency %.1f", tt.competency)
	}
}

func TestIsStable(t *testing.T) {
	tests := []struct {
		name   string
		recent []AttemptRecord
		want   bool
	}{
		{"too few", attempts(true, true, true, true), false},
		{"all correct", attempts(true, true, true, true, true), true},
		{"all wrong", attempts(false, false, false, false, false), true},
		{"four of five", attempts(true, true, false, true, true), true},
		{"three of five", attempts(true, false, true, false, true), false},
		{"only last five count", attempts(false, false, true, true, true, true, true), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isStable(tt.recent, 5, 0.3))
		})
	}
}

func TestImprovementRate(t *testing.T) {
	assert.Zero(t, improvementRate(attempts(true, true, true, true, true)))
	assert.InDelta(t, 100, improvementRate(attempts(false, false, false, true, true, true)), 1e-9)
	assert.InDelta(t, -66.67, improvementRate(attempts(true, true, true, false, false, true)), 0.01)
	// only the last six attempts are compared
	assert.InDelta(t, 0, improvementRate(attempts(false, false, true, true, true, true, true, true)), 1e-9)
}

func TestTimeToMastery(t *testing.T) {
	assert.Zero(t, timeToMastery(80, 0, 80))
	assert.Zero(t, timeToMastery(95, -10, 80))
	assert.Equal(t, 60, timeToMastery(50, 0, 80))
	assert.Equal(t, 60, timeToMastery(50, -33, 80))
	assert.Equal(t, 1, timeToMastery(50, 33.3, 80))
}
