package learning

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/satlearn/internal/content"
	"github.com/abhisek/satlearn/internal/scoring"
	"github.com/abhisek/satlearn/internal/skillmap"
	"github.com/abhisek/satlearn/internal/store"
)

// fullPool has perQuestion questions for every skill and difficulty.
func fullPool(per int) []content.Question {
	var pool []content.Question
	for _, id := range skillmap.AllSkillIDs() {
		dom, _ := skillmap.DomainOf(id)
		field := int(id)
		for d := 0; d < scoring.NumDifficulties; d++ {
			for i := 0; i < per; i++ {
				pool = append(pool, content.Question{
					ID:         fmt.Sprintf("s%d-d%d-%d", id, d, i),
					Field:      &field,
					Domain:     int(dom),
					Difficulty: d,
				})
			}
		}
	}
	return pool
}

func assertUnique(t *testing.T, qs []content.Question) {
	t.Helper()
	seen := make(map[string]bool, len(qs))
	for _, q := range qs {
		assert.False(t, seen[q.ID], "duplicate question %s", q.ID)
		seen[q.ID] = true
	}
}

func TestSelectSessionQuestions_FollowsCriteria(t *testing.T) {
	svc := newTestService(t, store.NewMemoryLearnerRepo(), nil)

	qs := svc.SelectSessionQuestions(context.Background(), "alice", 10, fullPool(2))
	require.Len(t, qs, 10)
	assertUnique(t, qs)

	// A fresh learner sits at 50 everywhere: six weakness picks at medium,
	// then random backfill.
	skills := make(map[skillmap.SkillID]bool)
	for _, q := range qs[:6] {
		assert.Equal(t, scoring.Medium, q.Level())
		id, err := q.SkillID()
		require.NoError(t, err)
		skills[id] = true
	}
	assert.Len(t, skills, 6)
}

func TestSelectSessionQuestions_TargetsWeakSkills(t *testing.T) {
	svc := newTestService(t, store.NewMemoryLearnerRepo(), nil)
	seedState(t, svc, "alice", func(st *LearnerState) {
		for id, s := range st.Skills {
			s.CompetencyScore = 90
			s.ConfidenceLevel = 90
			st.Skills[id] = s
		}
		weak := st.Skills[12]
		weak.CompetencyScore = 20
		weak.ConfidenceLevel = 20
		st.Skills[12] = weak
	})

	qs := svc.SelectSessionQuestions(context.Background(), "alice", 5, fullPool(1))
	require.Len(t, qs, 5)
	assertUnique(t, qs)

	first, err := qs[0].SkillID()
	require.NoError(t, err)
	assert.Equal(t, skillmap.SkillID(12), first)
	assert.Equal(t, scoring.Easy, qs[0].Level())
}

func TestSelectSessionQuestions_SkipsUnmatchedCriteria(t *testing.T) {
	svc := newTestService(t, store.NewMemoryLearnerRepo(), nil)
	field := 3
	pool := []content.Question{
		{ID: "a", Field: &field, Domain: 0, Difficulty: 2},
		{ID: "b", Domain: 7, Difficulty: 0},
		{ID: "c", Domain: 9, Difficulty: 1},
	}

	qs := svc.SelectSessionQuestions(context.Background(), "alice", 10, pool)
	assert.Len(t, qs, 3)
	assertUnique(t, qs)
}

func TestSelectSessionQuestions_RandomFallback(t *testing.T) {
	repo := &flakyRepo{MemoryLearnerRepo: store.NewMemoryLearnerRepo(), getErr: errors.New("offline")}
	svc := newTestService(t, repo, nil)
	pool := fullPool(1)

	qs := svc.SelectSessionQuestions(context.Background(), "alice", 12, pool)
	assert.Len(t, qs, 12)
	assertUnique(t, qs)
}

func TestSelectSessionQuestions_Empty(t *testing.T) {
	svc := newTestService(t, store.NewMemoryLearnerRepo(), nil)
	ctx := context.Background()

	assert.Empty(t, svc.SelectSessionQuestions(ctx, "alice", 10, nil))
	assert.Empty(t, svc.SelectSessionQuestions(ctx, "alice", 0, fullPool(1)))
}

func TestSelectSessionQuestions_NeverExceedsLength(t *testing.T) {
	svc := newTestService(t, store.NewMemoryLearnerRepo(), nil)
	pool := fullPool(1)
	for _, n := range []int{1, 3, 7, 20, 50} {
		qs := svc.SelectSessionQuestions(context.Background(), "alice", n, pool)
		assert.Len(t, qs, n)
		assertUnique(t, qs)
	}
}

func TestSelectSessionQuestions_DuplicatePoolIDs(t *testing.T) {
	svc := newTestService(t, store.NewMemoryLearnerRepo(), nil)
	pool := []content.Question{
		{ID: "dup", Domain: 0, Difficulty: 1},
		{ID: "dup", Domain: 0, Difficulty: 1},
		{ID: "other", Domain: 1, Difficulty: 0},
	}
	qs := svc.SelectSessionQuestions(context.Background(), "alice", 5, pool)
	assert.Len(t, qs, 2)
	assertUnique(t, qs)
}
