package learning

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/satlearn/internal/skillmap"
	"github.com/abhisek/satlearn/internal/store"
)

func insightIDs(list []SkillInsight) []skillmap.SkillID {
	ids := make([]skillmap.SkillID, len(list))
	for i, in := range list {
		ids[i] = in.SkillID
	}
	return ids
}

func TestGetLearnerInsights(t *testing.T) {
	repo := store.NewMemoryLearnerRepo()
	svc := newTestService(t, repo, nil)
	ctx := context.Background()

	competencies := map[skillmap.SkillID]float64{
		0: 95, 1: 90, 2: 88, 3: 86, 4: 80, 5: 78, 6: 76,
		20: 20, 21: 30, 22: 35, 23: 40, 24: 45, 25: 55,
	}
	seedState(t, svc, "alice", func(st *LearnerState) {
		for id, c := range competencies {
			s := st.Skills[id]
			s.CompetencyScore = c
			st.Skills[id] = s
		}
		streaky := st.Skills[30]
		streaky.CompetencyScore = 65
		streaky.RecentStreak = -3
		st.Skills[30] = streaky

		rusty := st.Skills[31]
		rusty.CompetencyScore = 70
		rusty.NeedsReinforcement = true
		st.Skills[31] = rusty
	})

	before, err := repo.Get(ctx, "alice")
	require.NoError(t, err)

	ins, err := svc.GetLearnerInsights(ctx, "alice")
	require.NoError(t, err)

	assert.Equal(t, []skillmap.SkillID{0, 1, 2, 3, 4}, insightIDs(ins.Strengths))
	assert.Equal(t, []skillmap.SkillID{20, 21, 22, 23, 24}, insightIDs(ins.Weaknesses))
	assert.ElementsMatch(t, []skillmap.SkillID{20, 21, 22, 23, 24, 30, 31}, insightIDs(ins.ImprovementAreas))
	for _, in := range ins.ImprovementAreas {
		assert.NotEmpty(t, in.Reason, "skill %d", in.SkillID)
		assert.NotEmpty(t, in.Name)
	}

	after, err := repo.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, before.Revision, after.Revision)
	assert.Equal(t, before.Data, after.Data)
}

func TestGetLearnerInsights_FreshLearner(t *testing.T) {
	svc := newTestService(t, store.NewMemoryLearnerRepo(), nil)

	ins, err := svc.GetLearnerInsights(context.Background(), "new")
	require.NoError(t, err)
	assert.Empty(t, ins.Strengths)
	assert.Len(t, ins.Weaknesses, 5)
	assert.Empty(t, ins.ImprovementAreas)
}

func TestGetLearnerInsights_StoreFailure(t *testing.T) {
	repo := &flakyRepo{MemoryLearnerRepo: store.NewMemoryLearnerRepo(), getErr: errors.New("offline")}
	svc := newTestService(t, repo, nil)

	_, err := svc.GetLearnerInsights(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrNoData)
}

func TestImprovementReason(t *testing.T) {
	st := newLearnerState(newTestService(t, store.NewMemoryLearnerRepo(), nil).engine, "x", t0)
	s := st.Skills[0]
	assert.Empty(t, improvementReason(s))

	s.RecentStreak = -4
	assert.Contains(t, improvementReason(s), "4")

	s.NeedsReinforcement = true
	assert.Equal(t, "needs review after time away", improvementReason(s))
}
