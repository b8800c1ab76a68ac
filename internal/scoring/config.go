package scoring

import (
	"fmt"
	"strings"
)

// DifficultyTable holds one value per difficulty tier.
type DifficultyTable struct {
	Easy   float64 `mapstructure:"easy" json:"easy" validate:"gte=0"`
	Medium float64 `mapstructure:"medium" json:"medium" validate:"gte=0"`
	Hard   float64 `mapstructure:"hard" json:"hard" validate:"gte=0"`
}

// For returns the value for d. Unknown tiers use the medium value.
func (t DifficultyTable) For(d Difficulty) float64 {
	switch d {
	case Easy:
		return t.Easy
	case Hard:
		return t.Hard
	default:
		return t.Medium
	}
}

// PriorityWeights configures the additive terms of SkillPriority.
type PriorityWeights struct {
	CompetencyGap     float64 `mapstructure:"competency_gap" validate:"gte=0"`
	ConfidenceGap     float64 `mapstructure:"confidence_gap" validate:"gte=0"`
	DaysSincePractice float64 `mapstructure:"days_since_practice" validate:"gte=0"`

	// LosingStreak is added per consecutive miss.
	LosingStreak float64 `mapstructure:"losing_streak" validate:"gte=0"`
	// WinningStreakRelief is subtracted once the streak reaches StreakBonusThreshold.
	WinningStreakRelief float64 `mapstructure:"winning_streak_relief" validate:"gte=0"`

	Reinforcement float64 `mapstructure:"reinforcement" validate:"gte=0"`

	// Data reliability bonuses for skills with <5, <10 and <20 attempts.
	FewAttempts      float64 `mapstructure:"few_attempts" validate:"gte=0"`
	SomeAttempts     float64 `mapstructure:"some_attempts" validate:"gte=0"`
	ModerateAttempts float64 `mapstructure:"moderate_attempts" validate:"gte=0"`

	FastImprover float64 `mapstructure:"fast_improver" validate:"gte=0"`
	Decliner     float64 `mapstructure:"decliner" validate:"gte=0"`

	TimePerformance float64 `mapstructure:"time_performance" validate:"gte=0"`
}

// Config holds every tunable constant of the engine.
type Config struct {
	CorrectGain      DifficultyTable `mapstructure:"correct_gain"`
	IncorrectPenalty DifficultyTable `mapstructure:"incorrect_penalty"`
	// OptimalTime is the expected solve time in seconds per tier.
	OptimalTime DifficultyTable `mapstructure:"optimal_time"`

	MinDiminishingFactor float64 `mapstructure:"min_diminishing_factor" validate:"gt=0,lte=1"`
	DiminishingScale     float64 `mapstructure:"diminishing_scale" validate:"gt=0"`

	ExceptionalSpeedThreshold float64 `mapstructure:"exceptional_speed_threshold" validate:"gt=0"`
	ExceptionalSpeedBonus     float64 `mapstructure:"exceptional_speed_bonus" validate:"gte=0,lt=1"`
	SpeedBonusThreshold       float64 `mapstructure:"speed_bonus_threshold" validate:"gtefield=ExceptionalSpeedThreshold"`
	SpeedBonus                float64 `mapstructure:"speed_bonus" validate:"gte=0,lt=1"`
	SlowPenaltyThreshold      float64 `mapstructure:"slow_penalty_threshold" validate:"gtefield=SpeedBonusThreshold"`
	SlowPenalty               float64 `mapstructure:"slow_penalty" validate:"gte=0,lt=1"`
	VerySlowThreshold         float64 `mapstructure:"very_slow_threshold" validate:"gtefield=SlowPenaltyThreshold"`
	VerySlowPenalty           float64 `mapstructure:"very_slow_penalty" validate:"gte=0,lt=1"`

	ConfidenceGainRate float64 `mapstructure:"confidence_gain_rate" validate:"gte=0"`
	ConfidenceLossRate float64 `mapstructure:"confidence_loss_rate" validate:"gte=0"`
	// ConfidenceMargin is how far confidence may sit above competency.
	ConfidenceMargin float64 `mapstructure:"confidence_margin" validate:"gte=0"`

	StreakBonusThreshold  int     `mapstructure:"streak_bonus_threshold" validate:"gte=1"`
	StreakBonusMultiplier float64 `mapstructure:"streak_bonus_multiplier" validate:"gte=1"`

	DecayRate              float64 `mapstructure:"decay_rate" validate:"gte=0"`
	MinimumScore           float64 `mapstructure:"minimum_score" validate:"gte=0,lte=100"`
	GracePeriodDays        float64 `mapstructure:"grace_period_days" validate:"gte=0"`
	ReinforcementThreshold float64 `mapstructure:"reinforcement_threshold" validate:"gte=0"`
	ConfidenceDecayShare   float64 `mapstructure:"confidence_decay_share" validate:"gte=0,lte=1"`

	RecentAttemptsLimit int     `mapstructure:"recent_attempts_limit" validate:"gte=6"`
	StabilityWindow     int     `mapstructure:"stability_window" validate:"gte=2"`
	StabilityVariance   float64 `mapstructure:"stability_variance" validate:"gt=0"`
	MasteryTarget       float64 `mapstructure:"mastery_target" validate:"gt=0,lte=100"`

	Priority PriorityWeights `mapstructure:"priority"`

	WeaknessShare      float64 `mapstructure:"weakness_share" validate:"gte=0,lte=1"`
	ReinforcementShare float64 `mapstructure:"reinforcement_share" validate:"gte=0,lte=1"`
	// Competency bands used to bucket skills during selection.
	WeaknessBelow  float64 `mapstructure:"weakness_below" validate:"gte=0,lte=100"`
	ChallengeAbove float64 `mapstructure:"challenge_above" validate:"gtefield=WeaknessBelow,lte=100"`
}

// DefaultConfig returns the tuned production constants.
func DefaultConfig() Config {
	return Config{
		CorrectGain:      DifficultyTable{Easy: 8, Medium: 12, Hard: 16},
		IncorrectPenalty: DifficultyTable{Easy: 12, Medium: 14, Hard: 16},
		OptimalTime:      DifficultyTable{Easy: 90, Medium: 120, Hard: 180},

		MinDiminishingFactor: 0.3,
		DiminishingScale:     120,

		ExceptionalSpeedThreshold: 0.5,
		ExceptionalSpeedBonus:     0.03,
		SpeedBonusThreshold:       0.75,
		SpeedBonus:                0.02,
		SlowPenaltyThreshold:      1.5,
		SlowPenalty:               0.01,
		VerySlowThreshold:         2.0,
		VerySlowPenalty:           0.02,

		ConfidenceGainRate: 5,
		ConfidenceLossRate: 8,
		ConfidenceMargin:   10,

		StreakBonusThreshold:  3,
		StreakBonusMultiplier: 1.2,

		DecayRate:              1.5,
		MinimumScore:           10,
		GracePeriodDays:        1,
		ReinforcementThreshold: 5,
		ConfidenceDecayShare:   0.3,

		RecentAttemptsLimit: 10,
		StabilityWindow:     5,
		StabilityVariance:   0.3,
		MasteryTarget:       80,

		Priority: PriorityWeights{
			CompetencyGap:       2,
			ConfidenceGap:       1.5,
			DaysSincePractice:   0.5,
			LosingStreak:        5,
			WinningStreakRelief: 8,
			Reinforcement:       20,
			FewAttempts:         15,
			SomeAttempts:        8,
			ModerateAttempts:    3,
			FastImprover:        10,
			Decliner:            15,
			TimePerformance:     10,
		},

		WeaknessShare:      0.6,
		ReinforcementShare: 0.3,
		WeaknessBelow:      60,
		ChallengeAbove:     85,
	}
}

// Validate checks the invariants the engine relies on that struct tags
// cannot express. Zero optimal times are allowed and treated as "no data".
func (c Config) Validate() error {
	var errs []string
	if c.WeaknessShare+c.ReinforcementShare > 1 {
		errs = append(errs, fmt.Sprintf("weakness_share + reinforcement_share must be <= 1, got %.2f", c.WeaknessShare+c.ReinforcementShare))
	}
	for _, tbl := range []struct {
		name string
		t    DifficultyTable
	}{{"correct_gain", c.CorrectGain}, {"incorrect_penalty", c.IncorrectPenalty}, {"optimal_time", c.OptimalTime}} {
		if tbl.t.Easy < 0 || tbl.t.Medium < 0 || tbl.t.Hard < 0 {
			errs = append(errs, fmt.Sprintf("%s must not contain negative values", tbl.name))
		}
	}
	if c.StabilityWindow > c.RecentAttemptsLimit {
		errs = append(errs, fmt.Sprintf("stability_window (%d) exceeds recent_attempts_limit (%d)", c.StabilityWindow, c.RecentAttemptsLimit))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid scoring config:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
