package scoring

import (
	"math"
	"time"
)

const (
	neutralCompetency = 50.0
	neutralConfidence = 50.0
)

// Engine computes skill score transitions. It holds only configuration and
// is safe for concurrent use.
type Engine struct {
	cfg Config
}

// NewEngine creates an engine with the given configuration.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// InitializeSkillScore returns the neutral score for a skill that has never
// been practiced.
func (e *Engine) InitializeSkillScore(now time.Time) SkillScore {
	s := SkillScore{
		CompetencyScore:     neutralCompetency,
		ConfidenceLevel:     neutralConfidence,
		LastPracticedAt:     now,
		LastScoreUpdateAt:   now,
		RecentAttempts:      []AttemptRecord{},
		OptimalTimeEstimate: e.cfg.OptimalTime.Medium,
	}
	e.refreshDerived(&s)
	return s
}

// UpdateSkillScore applies one answer to current and returns the new score.
// current is not modified.
func (e *Engine) UpdateSkillScore(current SkillScore, ev AnswerEvent) SkillScore {
	s := current.Clone()
	difficulty := ev.Difficulty.normalize()
	timeSpent := math.Max(0, ev.TimeSpent)
	priorStreak := s.RecentStreak

	s.TotalAttempts++
	if ev.Correct {
		s.CorrectCount++
	} else {
		s.IncorrectCount++
	}
	s.RecentAttempts = appendAttempt(s.RecentAttempts, AttemptRecord{
		QuestionID: ev.QuestionID,
		Correct:    ev.Correct,
		TimeSpent:  timeSpent,
		Difficulty: difficulty,
		Timestamp:  ev.Timestamp,
	}, e.cfg.RecentAttemptsLimit)

	change := e.scoreChange(s.CompetencyScore, priorStreak, ev.Correct, difficulty, timeSpent)
	s.CompetencyScore = clamp(s.CompetencyScore+change, 0, 100)
	s.ConfidenceLevel = e.nextConfidence(s.CompetencyScore, s.ConfidenceLevel, ev.Correct)

	s.RecentStreak = nextStreak(priorStreak, ev.Correct)
	if n := absInt(s.RecentStreak); n > s.LongestStreak {
		s.LongestStreak = n
	}

	bucket := &s.DifficultyPerformance[difficulty]
	bucket.Attempts++
	if ev.Correct {
		bucket.Correct++
	}
	bucket.AvgTime = runningAverage(bucket.AvgTime, timeSpent, bucket.Attempts)
	s.AverageTimeSpent = runningAverage(s.AverageTimeSpent, timeSpent, s.TotalAttempts)

	e.refreshDerived(&s)

	s.LastPracticedAt = ev.Timestamp
	s.LastScoreUpdateAt = ev.Timestamp
	return s
}

// scoreChange is base × diminishing × (1 + time + streak).
func (e *Engine) scoreChange(competency float64, priorStreak int, correct bool, d Difficulty, timeSpent float64) float64 {
	var base float64
	if correct {
		base = e.cfg.CorrectGain.For(d)
	} else {
		base = -e.cfg.IncorrectPenalty.For(d)
	}
	return base * e.diminishingFactor(competency, correct) *
		(1 + e.timeModifier(timeSpent, d) + e.streakModifier(priorStreak, correct))
}

// diminishingFactor shrinks gains as competency rises. Misses are never
// dampened.
func (e *Engine) diminishingFactor(competency float64, correct bool) float64 {
	if !correct {
		return 1
	}
	return math.Max(e.cfg.MinDiminishingFactor, 1-competency/e.cfg.DiminishingScale)
}

// timeModifier rewards fast answers and penalizes slow ones relative to the
// tier's optimal time. Missing time data yields 0.
func (e *Engine) timeModifier(timeSpent float64, d Difficulty) float64 {
	optimal := e.cfg.OptimalTime.For(d)
	if optimal <= 0 || timeSpent <= 0 {
		return 0
	}
	ratio := timeSpent / optimal
	switch {
	case ratio < e.cfg.ExceptionalSpeedThreshold:
		return e.cfg.ExceptionalSpeedBonus
	case ratio < e.cfg.SpeedBonusThreshold:
		return e.cfg.SpeedBonus
	case ratio >= e.cfg.VerySlowThreshold:
		return -e.cfg.VerySlowPenalty
	case ratio > e.cfg.SlowPenaltyThreshold:
		return -e.cfg.SlowPenalty
	default:
		return 0
	}
}

func (e *Engine) streakModifier(priorStreak int, correct bool) float64 {
	if !correct || priorStreak < e.cfg.StreakBonusThreshold {
		return 0
	}
	return e.cfg.StreakBonusMultiplier - 1
}

// nextConfidence moves confidence toward competency. It never ends above
// competency + ConfidenceMargin.
func (e *Engine) nextConfidence(competency, confidence float64, correct bool) float64 {
	gap := math.Abs(competency-confidence) / 100
	ceiling := competency + e.cfg.ConfidenceMargin
	if correct {
		confidence = math.Min(confidence+e.cfg.ConfidenceGainRate*(1+gap), ceiling)
	} else {
		confidence = math.Min(confidence-e.cfg.ConfidenceLossRate*(1+gap), ceiling)
	}
	return clamp(confidence, 0, 100)
}

func nextStreak(streak int, correct bool) int {
	switch {
	case correct && streak > 0:
		return streak + 1
	case correct:
		return 1
	case streak < 0:
		return streak - 1
	default:
		return -1
	}
}

// appendAttempt adds rec and evicts the oldest entries beyond limit.
func appendAttempt(window []AttemptRecord, rec AttemptRecord, limit int) []AttemptRecord {
	window = append(window, rec)
	if limit > 0 && len(window) > limit {
		window = window[len(window)-limit:]
	}
	return window
}

func runningAverage(avg, sample float64, n int) float64 {
	if n <= 1 {
		return sample
	}
	return (avg*float64(n-1) + sample) / float64(n)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
