package learning

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/abhisek/satlearn/internal/scoring"
	"github.com/abhisek/satlearn/internal/skillmap"
)

const (
	insightListSize     = 5
	weaknessThreshold   = 60.0
	lowCompetency       = 50.0
	losingStreakTrigger = -2
)

// SkillInsight is one skill in an insight list.
type SkillInsight struct {
	SkillID      skillmap.SkillID     `json:"skill_id"`
	Name         string               `json:"name"`
	Competency   float64              `json:"competency"`
	MasteryLevel scoring.MasteryLevel `json:"mastery_level"`
	Reason       string               `json:"reason,omitempty"`
}

// Insights is a read-only summary of a learner's standing.
type Insights struct {
	Strengths        []SkillInsight `json:"strengths"`
	Weaknesses       []SkillInsight `json:"weaknesses"`
	ImprovementAreas []SkillInsight `json:"improvement_areas"`
}

// GetLearnerInsights reports strengths, weaknesses and improvement areas
// from the decayed view of the learner's skills. Nothing is persisted.
func (s *Service) GetLearnerInsights(ctx context.Context, learnerID string) (*Insights, error) {
	st, err := s.load(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	return buildInsights(s.engine, st, s.now()), nil
}

func buildInsights(engine *scoring.Engine, st *LearnerState, now time.Time) *Insights {
	type entry struct {
		id    skillmap.SkillID
		score scoring.SkillScore
	}
	entries := make([]entry, 0, len(st.Skills))
	for id, sc := range st.Skills {
		entries = append(entries, entry{id, engine.ApplyTimeDecay(sc, now)})
	}
	sort.Slice(entries, func(i, j int) bool {
		ci, cj := entries[i].score.CompetencyScore, entries[j].score.CompetencyScore
		if ci != cj {
			return ci > cj
		}
		return entries[i].id < entries[j].id
	})

	ins := &Insights{}
	for _, e := range entries {
		if len(ins.Strengths) == insightListSize {
			break
		}
		if e.score.CompetencyScore > strongSkillThreshold {
			ins.Strengths = append(ins.Strengths, newSkillInsight(e.id, e.score, ""))
		}
	}
	for i := len(entries) - 1; i >= 0; i-- {
		if len(ins.Weaknesses) == insightListSize {
			break
		}
		e := entries[i]
		if e.score.CompetencyScore < weaknessThreshold {
			ins.Weaknesses = append(ins.Weaknesses, newSkillInsight(e.id, e.score, ""))
		}
	}
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if reason := improvementReason(e.score); reason != "" {
			ins.ImprovementAreas = append(ins.ImprovementAreas, newSkillInsight(e.id, e.score, reason))
		}
	}
	return ins
}

// improvementReason explains why a skill needs work, or returns "".
func improvementReason(s scoring.SkillScore) string {
	switch {
	case s.NeedsReinforcement:
		return "needs review after time away"
	case s.RecentStreak < losingStreakTrigger:
		return fmt.Sprintf("missed the last %d questions", -s.RecentStreak)
	case s.CompetencyScore < lowCompetency:
		return "competency below 50"
	default:
		return ""
	}
}

func newSkillInsight(id skillmap.SkillID, s scoring.SkillScore, reason string) SkillInsight {
	return SkillInsight{
		SkillID:      id,
		Name:         skillmap.DisplayName(id),
		Competency:   s.CompetencyScore,
		MasteryLevel: s.MasteryLevel,
		Reason:       reason,
	}
}
