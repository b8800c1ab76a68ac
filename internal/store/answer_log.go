package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// AnswerRecord is one row of the answer log.
type AnswerRecord struct {
	Sequence   int64
	Timestamp  time.Time
	LearnerID  string
	SessionID  string
	SkillID    int
	QuestionID string
	Difficulty int
	Correct    bool
	TimeSpent  float64 // seconds
}

// AnswerLog is the append-only history of answered questions.
type AnswerLog interface {
	// AppendAnswer records an answer and assigns its sequence number.
	AppendAnswer(ctx context.Context, rec AnswerRecord) error

	// RecentAnswers returns up to limit answers for a learner, newest first.
	RecentAnswers(ctx context.Context, learnerID string, limit int) ([]AnswerRecord, error)
}

type answerLog struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (l *answerLog) AppendAnswer(ctx context.Context, rec AnswerRecord) error {
	seqNum, err := l.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}

	query, args := builder().
		Insert(answerEventsTable.Name).
		Columns("sequence", "timestamp", "learner_id", "session_id", "skill_id",
			"question_id", "difficulty", "correct", "time_spent").
		Values(seqNum, rec.Timestamp, rec.LearnerID, rec.SessionID, rec.SkillID,
			rec.QuestionID, rec.Difficulty, rec.Correct, rec.TimeSpent).
		Query()
	if _, err := l.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (l *answerLog) RecentAnswers(ctx context.Context, learnerID string, limit int) ([]AnswerRecord, error) {
	sel := builder().
		Select("sequence", "timestamp", "learner_id", "session_id", "skill_id",
			"question_id", "difficulty", "correct", "time_spent").
		From(entsql.Table(answerEventsTable.Name)).
		Where(entsql.EQ("learner_id", learnerID)).
		OrderBy(entsql.Desc("sequence"))
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	query, args := sel.Query()

	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	defer rows.Close()

	var out []AnswerRecord
	for rows.Next() {
		var r AnswerRecord
		if err := rows.Scan(&r.Sequence, &r.Timestamp, &r.LearnerID, &r.SessionID, &r.SkillID,
			&r.QuestionID, &r.Difficulty, &r.Correct, &r.TimeSpent); err != nil {
			return nil, fmt.Errorf("scan answer event: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate answer events: %w", err)
	}
	return out, nil
}

// sequenceCounter hands out the global monotonic sequence for the answer
// log. Uses raw SQL outside ent because ent doesn't support database-level
// atomic counters. The mutex serializes within the process; the RETURNING
// clause makes the increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(ctx context.Context, db *sql.DB) (*sequenceCounter, error) {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.ExecContext(ctx, `INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}
