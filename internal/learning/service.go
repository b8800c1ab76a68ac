package learning

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/abhisek/satlearn/internal/content"
	"github.com/abhisek/satlearn/internal/scoring"
	"github.com/abhisek/satlearn/internal/skillmap"
	"github.com/abhisek/satlearn/internal/store"
)

// ErrNoData is returned when a learner's state cannot be read from the store.
var ErrNoData = errors.New("learner data unavailable")

// Answer is a single answered question as reported by a session.
type Answer struct {
	QuestionID string
	SkillID    skillmap.SkillID
	Difficulty scoring.Difficulty
	Correct    bool
	TimeSpent  float64 // seconds
	SessionID  string
}

// AnswerFor builds an Answer for a pool question, resolving its skill.
func AnswerFor(q content.Question, correct bool, timeSpent float64) (Answer, error) {
	skill, err := q.SkillID()
	if err != nil {
		return Answer{}, err
	}
	return Answer{
		QuestionID: q.ID,
		SkillID:    skill,
		Difficulty: q.Level(),
		Correct:    correct,
		TimeSpent:  timeSpent,
	}, nil
}

// Service owns learner state: it loads, updates and persists it, and turns
// skill priorities into question selections.
type Service struct {
	engine  *scoring.Engine
	repo    store.LearnerRepo
	answers store.AnswerLog
	logger  *slog.Logger

	now func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// NewService creates a learning service. answers may be nil, in which case
// no answer history is kept.
func NewService(engine *scoring.Engine, repo store.LearnerRepo, answers store.AnswerLog, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		engine:  engine,
		repo:    repo,
		answers: answers,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// Engine returns the scoring engine used by the service.
func (s *Service) Engine() *scoring.Engine {
	return s.engine
}

// GetLearnerState returns the learner's state, creating and persisting a
// fresh one on first access. Store read failures are logged and reported
// as ErrNoData.
func (s *Service) GetLearnerState(ctx context.Context, learnerID string) (*LearnerState, error) {
	st, err := s.load(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	if st.Revision != 0 {
		return st, nil
	}

	rev, err := s.save(ctx, st)
	switch {
	case err == nil:
		st.Revision = rev
	case errors.Is(err, store.ErrRevisionConflict):
		// Another writer created the learner first.
		return s.load(ctx, learnerID)
	default:
		s.logger.Warn("persist new learner state failed",
			slog.String("learner_id", learnerID), slog.Any("err", err))
	}
	return st, nil
}

// RecordAnswer applies an answer to the learner's state and persists it.
// A concurrent update of the same learner makes the write fail with
// store.ErrRevisionConflict; the caller decides whether to retry.
func (s *Service) RecordAnswer(ctx context.Context, learnerID string, a Answer) error {
	if !a.SkillID.Valid() {
		return fmt.Errorf("record answer: skill %d: %w", a.SkillID, skillmap.ErrUnknownSkill)
	}

	st, err := s.load(ctx, learnerID)
	if err != nil {
		return fmt.Errorf("record answer: %w", err)
	}

	now := s.now()
	ev := scoring.AnswerEvent{
		SkillID:    a.SkillID,
		QuestionID: a.QuestionID,
		Correct:    a.Correct,
		TimeSpent:  a.TimeSpent,
		Difficulty: a.Difficulty,
		Timestamp:  now,
	}
	st.Skills[a.SkillID] = s.engine.UpdateSkillScore(st.Skills[a.SkillID], ev)
	st.recomputeAggregates()
	st.QuestionsAnswered++
	if a.TimeSpent > 0 {
		st.TimeSpent += a.TimeSpent
	}
	st.UpdatedAt = now
	if st.QuestionsAnswered%profileRefreshInterval == 0 {
		refreshProfile(s.engine, st, now)
	}

	if _, err := s.save(ctx, st); err != nil {
		s.logger.Warn("persist learner state failed",
			slog.String("learner_id", learnerID), slog.Any("err", err))
		return fmt.Errorf("record answer: %w", err)
	}

	if s.answers != nil {
		rec := store.AnswerRecord{
			Timestamp:  now,
			LearnerID:  learnerID,
			SessionID:  a.SessionID,
			SkillID:    int(a.SkillID),
			QuestionID: a.QuestionID,
			Difficulty: int(a.Difficulty),
			Correct:    a.Correct,
			TimeSpent:  a.TimeSpent,
		}
		if err := s.answers.AppendAnswer(ctx, rec); err != nil {
			s.logger.Warn("append answer history failed",
				slog.String("learner_id", learnerID), slog.Any("err", err))
		}
	}
	return nil
}

// ResetLearner deletes the learner's persisted state.
func (s *Service) ResetLearner(ctx context.Context, learnerID string) error {
	if err := s.repo.Delete(ctx, learnerID); err != nil {
		return fmt.Errorf("reset learner: %w", err)
	}
	return nil
}

// load reads the learner's state. Absent learners get a fresh, unsaved
// state with revision 0.
func (s *Service) load(ctx context.Context, learnerID string) (*LearnerState, error) {
	rec, err := s.repo.Get(ctx, learnerID)
	if err != nil {
		s.logger.Error("load learner state failed",
			slog.String("learner_id", learnerID), slog.Any("err", err))
		return nil, fmt.Errorf("load learner %q: %w", learnerID, errors.Join(ErrNoData, err))
	}
	if rec == nil {
		return newLearnerState(s.engine, learnerID, s.now()), nil
	}

	st, err := decodeLearnerState(s.engine, rec.Data, rec.Revision, s.now())
	if err != nil {
		s.logger.Error("corrupt learner state",
			slog.String("learner_id", learnerID), slog.Any("err", err))
		return nil, fmt.Errorf("load learner %q: %w", learnerID, errors.Join(ErrNoData, err))
	}
	st.LearnerID = learnerID
	return st, nil
}

func (s *Service) save(ctx context.Context, st *LearnerState) (int64, error) {
	data, err := st.encode()
	if err != nil {
		return 0, err
	}
	return s.repo.Put(ctx, st.LearnerID, data, st.Revision)
}

func (s *Service) intN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}
