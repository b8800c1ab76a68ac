package scoring

import "math"

// improvementWindow is the number of attempts compared by ImprovementRate:
// the newest half against the older half.
const improvementWindow = 6

// refreshDerived recomputes every field that is a pure function of the rest
// of the score.
func (e *Engine) refreshDerived(s *SkillScore) {
	s.MasteryLevel = MasteryLevelFor(s.CompetencyScore)
	s.IsStable = isStable(s.RecentAttempts, e.cfg.StabilityWindow, e.cfg.StabilityVariance)
	s.ImprovementRate = improvementRate(s.RecentAttempts)
	s.TimeToMastery = timeToMastery(s.CompetencyScore, s.ImprovementRate, e.cfg.MasteryTarget)
	if est := e.optimalTimeEstimate(s); est > 0 {
		s.OptimalTimeEstimate = est
	}
}

// MasteryLevelFor maps competency onto a mastery label.
func MasteryLevelFor(competency float64) MasteryLevel {
	switch {
	case competency >= 90:
		return LevelMaster
	case competency >= 75:
		return LevelAdvanced
	case competency >= 60:
		return LevelProficient
	case competency >= 40:
		return LevelDeveloping
	default:
		return LevelBeginner
	}
}

// isStable reports whether the last window outcomes have low sample variance.
func isStable(recent []AttemptRecord, window int, threshold float64) bool {
	if window < 2 || len(recent) < window {
		return false
	}
	last := recent[len(recent)-window:]
	mean := 0.0
	for _, a := range last {
		mean += outcome(a)
	}
	mean /= float64(window)

	variance := 0.0
	for _, a := range last {
		d := outcome(a) - mean
		variance += d * d
	}
	variance /= float64(window - 1)
	// A 3/2 split of five outcomes lands exactly on 0.3.
	return variance < threshold-1e-9
}

// improvementRate is the accuracy of the newest three of the last six
// attempts minus the accuracy of the three before them, in percent.
func improvementRate(recent []AttemptRecord) float64 {
	if len(recent) < improvementWindow {
		return 0
	}
	last := recent[len(recent)-improvementWindow:]
	half := improvementWindow / 2
	return (accuracy(last[half:]) - accuracy(last[:half])) * 100
}

// timeToMastery estimates the attempts needed to reach target.
func timeToMastery(competency, rate, target float64) int {
	if competency >= target {
		return 0
	}
	return int(math.Ceil((target - competency) / math.Max(0.5, rate)))
}

// optimalTimeEstimate is the attempt-weighted optimal time across the tiers
// the learner has seen.
func (e *Engine) optimalTimeEstimate(s *SkillScore) float64 {
	total, weighted := 0, 0.0
	for d, stats := range s.DifficultyPerformance {
		total += stats.Attempts
		weighted += float64(stats.Attempts) * e.cfg.OptimalTime.For(Difficulty(d))
	}
	if total == 0 {
		return 0
	}
	return weighted / float64(total)
}

func accuracy(attempts []AttemptRecord) float64 {
	if len(attempts) == 0 {
		return 0
	}
	sum := 0.0
	for _, a := range attempts {
		sum += outcome(a)
	}
	return sum / float64(len(attempts))
}

func outcome(a AttemptRecord) float64 {
	if a.Correct {
		return 1
	}
	return 0
}
