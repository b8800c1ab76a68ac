package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/satlearn/internal/skillmap"
)

// bucketedSkills returns weak, mid and strong skills in the given counts.
func bucketedSkills(e *Engine, weak, mid, strong int) map[skillmap.SkillID]SkillScore {
	skills := make(map[skillmap.SkillID]SkillScore)
	id := skillmap.SkillID(0)
	add := func(n int, competency float64) {
		for i := 0; i < n; i++ {
			s := e.InitializeSkillScore(t0)
			s.CompetencyScore = competency + float64(i)
			s.ConfidenceLevel = s.CompetencyScore
			skills[id] = s
			id++
		}
	}
	add(weak, 20)
	add(mid, 65)
	add(strong, 88)
	return skills
}

func countReasons(criteria []SelectionCriterion) map[SelectionReason]int {
	out := make(map[SelectionReason]int)
	for _, c := range criteria {
		out[c.Reason]++
	}
	return out
}

func TestGenerateSelectionCriteria_Allocation(t *testing.T) {
	e := newTestEngine()
	criteria := e.GenerateSelectionCriteria(bucketedSkills(e, 10, 5, 3), 10, t0)

	require.Len(t, criteria, 10)
	counts := countReasons(criteria)
	assert.Equal(t, 6, counts[ReasonWeakness])
	assert.Equal(t, 3, counts[ReasonReinforcement])
	assert.Equal(t, 1, counts[ReasonChallenge])
}

func TestGenerateSelectionCriteria_SortedAndUnique(t *testing.T) {
	e := newTestEngine()
	criteria := e.GenerateSelectionCriteria(bucketedSkills(e, 8, 8, 8), 12, t0)

	seen := make(map[skillmap.SkillID]bool)
	for i, c := range criteria {
		assert.False(t, seen[c.SkillID], "skill %d repeated", c.SkillID)
		seen[c.SkillID] = true
		if i > 0 {
			assert.LessOrEqual(t, c.Priority, criteria[i-1].Priority)
		}
	}
}

func TestGenerateSelectionCriteria_PicksHighestPriorityWeaknesses(t *testing.T) {
	e := newTestEngine()
	skills := bucketedSkills(e, 10, 0, 0)
	criteria := e.GenerateSelectionCriteria(skills, 5, t0)

	// lowest competency = highest priority; ids 0..2 are the weakest
	require.Len(t, criteria, 3, "only the weakness bucket has candidates")
	for i, c := range criteria {
		assert.Equal(t, skillmap.SkillID(i), c.SkillID)
		assert.Equal(t, Easy, c.Difficulty)
	}
}

func TestGenerateSelectionCriteria_ChallengeBumpsDifficulty(t *testing.T) {
	e := newTestEngine()
	skills := map[skillmap.SkillID]SkillScore{}
	s := e.InitializeSkillScore(t0)
	s.CompetencyScore = 86
	skills[3] = s

	criteria := e.GenerateSelectionCriteria(skills, 10, t0)
	require.Len(t, criteria, 1)
	assert.Equal(t, ReasonChallenge, criteria[0].Reason)
	assert.Equal(t, Hard, criteria[0].Difficulty)
}

func TestGenerateSelectionCriteria_ReinforcementDifficulty(t *testing.T) {
	e := newTestEngine()
	criteria := e.GenerateSelectionCriteria(bucketedSkills(e, 0, 3, 0), 10, t0)
	require.Len(t, criteria, 3)
	for _, c := range criteria {
		assert.Equal(t, ReasonReinforcement, c.Reason)
		assert.Equal(t, Medium, c.Difficulty)
	}
}

func TestGenerateSelectionCriteria_NeverExceedsSessionLength(t *testing.T) {
	e := newTestEngine()
	skills := bucketedSkills(e, 20, 14, 13)
	for n := 0; n <= 30; n++ {
		criteria := e.GenerateSelectionCriteria(skills, n, t0)
		assert.LessOrEqual(t, len(criteria), n)
		if n > 0 {
			counts := countReasons(criteria)
			assert.Equal(t, min(ceilShare(0.6, n), n), counts[ReasonWeakness], "n=%d", n)
		}
	}
}

func TestGenerateSelectionCriteria_AppliesDecay(t *testing.T) {
	e := newTestEngine()
	s := practicedScore(e, 62, t0)
	skills := map[skillmap.SkillID]SkillScore{0: s}

	// a month away pushes the skill below the weakness line
	criteria := e.GenerateSelectionCriteria(skills, 3, t0.AddDate(0, 1, 0))
	require.Len(t, criteria, 1)
	assert.Equal(t, ReasonWeakness, criteria[0].Reason)
}

func TestGenerateSelectionCriteria_Empty(t *testing.T) {
	e := newTestEngine()
	assert.Nil(t, e.GenerateSelectionCriteria(nil, 10, t0))
	assert.Nil(t, e.GenerateSelectionCriteria(bucketedSkills(e, 3, 0, 0), 0, t0))
}

func TestCeilShare(t *testing.T) {
	assert.Equal(t, 6, ceilShare(0.6, 10))
	assert.Equal(t, 3, ceilShare(0.3, 10))
	assert.Equal(t, 3, ceilShare(0.6, 5))
	assert.Equal(t, 2, ceilShare(0.3, 5))
	assert.Equal(t, 1, ceilShare(0.3, 1))
	assert.Equal(t, 0, ceilShare(0.3, 0))
}
