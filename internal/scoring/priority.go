package scoring

import "time"

// SkillPriority ranks how urgently a skill should be practiced. Higher is
// more urgent. The result is the sum of the independent terms below.
func (e *Engine) SkillPriority(s SkillScore, now time.Time) float64 {
	return e.competencyGapTerm(s) +
		e.confidenceGapTerm(s) +
		e.recencyTerm(s, now) +
		e.streakTerm(s) +
		e.reinforcementTerm(s) +
		e.reliabilityTerm(s) +
		e.velocityTerm(s) +
		e.timePerformanceTerm(s)
}

func (e *Engine) competencyGapTerm(s SkillScore) float64 {
	return (100 - s.CompetencyScore) * e.cfg.Priority.CompetencyGap
}

func (e *Engine) confidenceGapTerm(s SkillScore) float64 {
	return (100 - s.ConfidenceLevel) * e.cfg.Priority.ConfidenceGap
}

func (e *Engine) recencyTerm(s SkillScore, now time.Time) float64 {
	if s.TotalAttempts == 0 {
		return 0
	}
	return ElapsedDays(s.LastPracticedAt, now) * e.cfg.Priority.DaysSincePractice
}

// streakTerm adds urgency per consecutive miss and relieves skills on a
// strong winning streak.
func (e *Engine) streakTerm(s SkillScore) float64 {
	switch {
	case s.RecentStreak < 0:
		return float64(-s.RecentStreak) * e.cfg.Priority.LosingStreak
	case s.RecentStreak >= e.cfg.StreakBonusThreshold:
		return -e.cfg.Priority.WinningStreakRelief
	default:
		return 0
	}
}

func (e *Engine) reinforcementTerm(s SkillScore) float64 {
	if s.NeedsReinforcement {
		return e.cfg.Priority.Reinforcement
	}
	return 0
}

// reliabilityTerm front-loads skills with too few attempts to trust.
func (e *Engine) reliabilityTerm(s SkillScore) float64 {
	switch {
	case s.TotalAttempts < 5:
		return e.cfg.Priority.FewAttempts
	case s.TotalAttempts < 10:
		return e.cfg.Priority.SomeAttempts
	case s.TotalAttempts < 20:
		return e.cfg.Priority.ModerateAttempts
	default:
		return 0
	}
}

// velocityTerm favors fast improvers that are still weak, and decliners.
func (e *Engine) velocityTerm(s SkillScore) float64 {
	switch {
	case s.ImprovementRate < 0:
		return e.cfg.Priority.Decliner
	case s.ImprovementRate > 0 && s.CompetencyScore < e.cfg.WeaknessBelow:
		return e.cfg.Priority.FastImprover
	default:
		return 0
	}
}

// timePerformanceTerm favors skills where the speed/accuracy tradeoff is
// poor: slow and wrong, rushed and wrong, or right but very slow.
func (e *Engine) timePerformanceTerm(s SkillScore) float64 {
	if s.TotalAttempts < 3 || s.OptimalTimeEstimate <= 0 || s.AverageTimeSpent <= 0 {
		return 0
	}
	ratio := s.AverageTimeSpent / s.OptimalTimeEstimate
	acc := s.Accuracy()
	w := e.cfg.Priority.TimePerformance
	switch {
	case acc < 0.6 && ratio > e.cfg.SlowPenaltyThreshold:
		return w
	case acc < 0.6 && ratio < e.cfg.ExceptionalSpeedThreshold:
		return w * 0.8
	case acc >= 0.8 && ratio > e.cfg.SlowPenaltyThreshold:
		return w * 0.5
	default:
		return 0
	}
}

// SelectOptimalDifficulty picks the tier a skill should be practiced at.
func (e *Engine) SelectOptimalDifficulty(s SkillScore) Difficulty {
	switch {
	case s.CompetencyScore < 40:
		return Easy
	case s.CompetencyScore < 75:
		return Medium
	default:
		return Hard
	}
}
