package learning

import (
	"context"
	"log/slog"

	"github.com/abhisek/satlearn/internal/content"
	"github.com/abhisek/satlearn/internal/scoring"
	"github.com/abhisek/satlearn/internal/skillmap"
)

// SelectSessionQuestions picks up to n questions from pool for the learner.
// Each selection criterion contributes one random matching question;
// remaining slots are backfilled at random. When the learner's state cannot
// be read the whole session is drawn at random. The result never repeats a
// question id.
func (s *Service) SelectSessionQuestions(ctx context.Context, learnerID string, n int, pool []content.Question) []content.Question {
	if n <= 0 || len(pool) == 0 {
		return nil
	}

	st, err := s.load(ctx, learnerID)
	if err != nil {
		s.logger.Warn("falling back to random selection",
			slog.String("learner_id", learnerID), slog.Any("err", err))
		return s.fill(nil, make(map[string]bool), n, pool)
	}

	criteria := s.engine.GenerateSelectionCriteria(st.Skills, n, s.now())
	idx := indexPool(pool)

	chosen := make(map[string]bool, n)
	out := make([]content.Question, 0, n)
	for _, c := range criteria {
		if len(out) == n {
			break
		}
		var matches []content.Question
		for _, q := range idx[poolKey{c.SkillID, c.Difficulty}] {
			if !chosen[q.ID] {
				matches = append(matches, q)
			}
		}
		if len(matches) == 0 {
			continue
		}
		q := matches[s.intN(len(matches))]
		chosen[q.ID] = true
		out = append(out, q)
	}

	return s.fill(out, chosen, n, pool)
}

// fill appends random unused questions from pool until out holds n
// questions or the pool is exhausted.
func (s *Service) fill(out []content.Question, chosen map[string]bool, n int, pool []content.Question) []content.Question {
	var rest []content.Question
	for _, q := range pool {
		if !chosen[q.ID] {
			rest = append(rest, q)
		}
	}
	for len(out) < n && len(rest) > 0 {
		i := s.intN(len(rest))
		q := rest[i]
		rest[i] = rest[len(rest)-1]
		rest = rest[:len(rest)-1]
		if chosen[q.ID] {
			continue
		}
		chosen[q.ID] = true
		out = append(out, q)
	}
	return out
}

type poolKey struct {
	skill      skillmap.SkillID
	difficulty scoring.Difficulty
}

// indexPool groups questions by resolved skill and difficulty. Questions
// whose skill cannot be resolved are left to random backfill.
func indexPool(pool []content.Question) map[poolKey][]content.Question {
	idx := make(map[poolKey][]content.Question)
	for _, q := range pool {
		skill, err := q.SkillID()
		if err != nil {
			continue
		}
		k := poolKey{skill, q.Level()}
		idx[k] = append(idx[k], q)
	}
	return idx
}
