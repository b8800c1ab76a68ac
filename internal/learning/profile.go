package learning

import (
	"math"
	"sort"
	"time"

	"github.com/abhisek/satlearn/internal/scoring"
	"github.com/abhisek/satlearn/internal/skillmap"
)

// profileRefreshInterval is how many answers pass between profile refreshes.
const profileRefreshInterval = 10

// strongSkillThreshold is the competency above which a skill counts as strong.
const strongSkillThreshold = 75.0

// refreshProfile recomputes the learner profile from the decayed view of
// the state's skills.
func refreshProfile(engine *scoring.Engine, st *LearnerState, now time.Time) {
	p := &st.Profile

	practiced := st.practiced()
	if len(practiced) > 0 {
		rateSum := 0.0
		retained, stable := 0, 0
		for _, id := range practiced {
			s := engine.ApplyTimeDecay(st.Skills[id], now)
			rateSum += s.ImprovementRate
			if !s.NeedsReinforcement {
				retained++
			}
			if s.IsStable {
				stable++
			}
		}
		n := float64(len(practiced))
		p.LearningVelocity = velocityScale(rateSum / n)
		p.RetentionRate = roundTenth(10 * float64(retained) / n)
		p.ConsistencyScore = roundTenth(10 * float64(stable) / n)
	}

	ranked := engine.RankSkills(st.Skills, now)
	p.PrioritySkills = p.PrioritySkills[:0]
	for i := 0; i < len(ranked) && i < profileListSize; i++ {
		p.PrioritySkills = append(p.PrioritySkills, ranked[i].SkillID)
	}

	p.StrongSkills = strongSkills(st.Skills, profileListSize)
	p.RefreshedAt = now
}

// velocityScale maps a mean improvement rate in [-100,100] onto 0-10,
// with 5 meaning no change.
func velocityScale(meanRate float64) float64 {
	v := 5 + meanRate/20
	return roundTenth(math.Max(0, math.Min(10, v)))
}

// strongSkills returns up to limit skills above the strong threshold,
// highest competency first.
func strongSkills(skills map[skillmap.SkillID]scoring.SkillScore, limit int) []skillmap.SkillID {
	var ids []skillmap.SkillID
	for id, s := range skills {
		if s.CompetencyScore > strongSkillThreshold {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		ci, cj := skills[ids[i]].CompetencyScore, skills[ids[j]].CompetencyScore
		if ci != cj {
			return ci > cj
		}
		return ids[i] < ids[j]
	})
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
