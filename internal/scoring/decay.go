package scoring

import (
	"math"
	"time"
)

// ApplyTimeDecay erodes competency and confidence for skills left unpracticed
// beyond the grace period. Skills with no attempts have nothing to forget and
// are returned unchanged.
//
// Decay is a read-side view: callers apply it before prioritizing and do not
// persist the result, so repeated calls at the same instant are idempotent.
func (e *Engine) ApplyTimeDecay(score SkillScore, now time.Time) SkillScore {
	days := ElapsedDays(score.LastPracticedAt, now)
	if score.TotalAttempts == 0 || days <= e.cfg.GracePeriodDays {
		return score
	}

	amount := (days - e.cfg.GracePeriodDays) * e.cfg.DecayRate
	retention := math.Max(0.3, score.CompetencyScore/100)
	actual := amount * (1 - retention*0.5)

	s := score.Clone()
	if s.CompetencyScore > e.cfg.MinimumScore {
		s.CompetencyScore = math.Max(e.cfg.MinimumScore, s.CompetencyScore-actual)
	}
	s.ConfidenceLevel = math.Max(0, s.ConfidenceLevel-actual*e.cfg.ConfidenceDecayShare)
	s.NeedsReinforcement = actual > e.cfg.ReinforcementThreshold

	s.MasteryLevel = MasteryLevelFor(s.CompetencyScore)
	s.TimeToMastery = timeToMastery(s.CompetencyScore, s.ImprovementRate, e.cfg.MasteryTarget)
	return s
}

// ElapsedDays returns the whole days between since and now, never negative.
// A zero since counts as no elapsed time.
func ElapsedDays(since, now time.Time) float64 {
	if since.IsZero() || !now.After(since) {
		return 0
	}
	return math.Floor(now.Sub(since).Hours() / 24)
}
