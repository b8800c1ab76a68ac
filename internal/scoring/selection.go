package scoring

import (
	"math"
	"sort"
	"time"

	"github.com/abhisek/satlearn/internal/skillmap"
)

// SelectionReason is the bucket a skill was drawn from.
type SelectionReason string

const (
	ReasonWeakness      SelectionReason = "weakness"
	ReasonReinforcement SelectionReason = "reinforcement"
	ReasonChallenge     SelectionReason = "challenge"
)

// SelectionCriterion asks for one question of a skill at a difficulty.
type SelectionCriterion struct {
	SkillID    skillmap.SkillID
	Difficulty Difficulty
	Priority   float64
	Reason     SelectionReason
}

// RankedSkill is a decayed score with its priority.
type RankedSkill struct {
	SkillID  skillmap.SkillID
	Score    SkillScore
	Priority float64
}

// RankSkills decays every score as of now and orders skills by priority,
// highest first. Ties break on skill id.
func (e *Engine) RankSkills(skills map[skillmap.SkillID]SkillScore, now time.Time) []RankedSkill {
	ranked := make([]RankedSkill, 0, len(skills))
	for id, s := range skills {
		decayed := e.ApplyTimeDecay(s, now)
		ranked = append(ranked, RankedSkill{
			SkillID:  id,
			Score:    decayed,
			Priority: e.SkillPriority(decayed, now),
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Priority != ranked[j].Priority {
			return ranked[i].Priority > ranked[j].Priority
		}
		return ranked[i].SkillID < ranked[j].SkillID
	})
	return ranked
}

// GenerateSelectionCriteria allocates sessionLength slots across weakness,
// reinforcement and challenge buckets. Each skill appears at most once. When a
// bucket lacks candidates fewer than sessionLength criteria are returned and
// the caller backfills.
func (e *Engine) GenerateSelectionCriteria(skills map[skillmap.SkillID]SkillScore, sessionLength int, now time.Time) []SelectionCriterion {
	if sessionLength <= 0 || len(skills) == 0 {
		return nil
	}

	weakSlots := min(ceilShare(e.cfg.WeaknessShare, sessionLength), sessionLength)
	reinforceSlots := min(ceilShare(e.cfg.ReinforcementShare, sessionLength), sessionLength-weakSlots)
	challengeSlots := sessionLength - weakSlots - reinforceSlots

	var criteria []SelectionCriterion
	for _, r := range e.RankSkills(skills, now) {
		c := r.Score.CompetencyScore
		switch {
		case c < e.cfg.WeaknessBelow && weakSlots > 0:
			weakSlots--
			criteria = append(criteria, e.criterion(r, ReasonWeakness))
		case c >= e.cfg.WeaknessBelow && c <= e.cfg.ChallengeAbove && reinforceSlots > 0:
			reinforceSlots--
			criteria = append(criteria, e.criterion(r, ReasonReinforcement))
		case c > e.cfg.ChallengeAbove && challengeSlots > 0:
			challengeSlots--
			criteria = append(criteria, e.criterion(r, ReasonChallenge))
		}
		if weakSlots+reinforceSlots+challengeSlots == 0 {
			break
		}
	}

	sort.SliceStable(criteria, func(i, j int) bool {
		return criteria[i].Priority > criteria[j].Priority
	})
	return criteria
}

func (e *Engine) criterion(r RankedSkill, reason SelectionReason) SelectionCriterion {
	d := e.SelectOptimalDifficulty(r.Score)
	if reason == ReasonChallenge {
		d = d.Harder()
	}
	return SelectionCriterion{
		SkillID:    r.SkillID,
		Difficulty: d,
		Priority:   r.Priority,
		Reason:     reason,
	}
}

// ceilShare returns ceil(share × n), tolerant of float error such as
// 0.3 × 10 = 3.0000000000000004.
func ceilShare(share float64, n int) int {
	return int(math.Ceil(share*float64(n) - 1e-9))
}
