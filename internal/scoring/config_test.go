package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{"shares exceed one", func(c *Config) { c.ReinforcementShare = 0.5 }, "weakness_share + reinforcement_share"},
		{"negative gain", func(c *Config) { c.CorrectGain.Hard = -1 }, "correct_gain"},
		{"negative optimal time", func(c *Config) { c.OptimalTime.Easy = -5 }, "optimal_time"},
		{"stability window too large", func(c *Config) { c.StabilityWindow = 11 }, "stability_window"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfigValidate_ZeroOptimalTimeAllowed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OptimalTime = DifficultyTable{}
	assert.NoError(t, cfg.Validate())
}

func TestDifficultyTableFor(t *testing.T) {
	tbl := DifficultyTable{Easy: 1, Medium: 2, Hard: 3}
	assert.Equal(t, 1.0, tbl.For(Easy))
	assert.Equal(t, 2.0, tbl.For(Medium))
	assert.Equal(t, 3.0, tbl.For(Hard))
	assert.Equal(t, 2.0, tbl.For(Difficulty(7)))
}
