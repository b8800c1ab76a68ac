package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// ErrRevisionConflict is returned by Put when the stored revision no longer
// matches the caller's expectation. The caller's write was not applied.
var ErrRevisionConflict = errors.New("learner state revision conflict")

// LearnerRecord is a learner's persisted state document.
type LearnerRecord struct {
	LearnerID string
	Revision  int64
	Data      []byte // JSON document
	UpdatedAt time.Time
}

// LearnerRepo persists one state document per learner with optimistic
// concurrency control.
type LearnerRepo interface {
	// Get returns the learner's record, or nil if none exists.
	Get(ctx context.Context, learnerID string) (*LearnerRecord, error)

	// Put writes data if the stored revision equals expected (0 means the
	// record must not exist yet) and returns the new revision.
	Put(ctx context.Context, learnerID string, data []byte, expected int64) (int64, error)

	// Delete removes the learner's record. Missing records are not an error.
	Delete(ctx context.Context, learnerID string) error
}

// learnerRepo implements LearnerRepo on SQLite using ent's SQL builder.
type learnerRepo struct {
	db *sql.DB
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *learnerRepo) Get(ctx context.Context, learnerID string) (*LearnerRecord, error) {
	query, args := builder().
		Select("revision", "data", "updated_at").
		From(entsql.Table(learnerStatesTable.Name)).
		Where(entsql.EQ("learner_id", learnerID)).
		Query()

	rec := &LearnerRecord{LearnerID: learnerID}
	var data string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&rec.Revision, &data, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query learner state: %w", err)
	}
	rec.Data = []byte(data)
	return rec, nil
}

func (r *learnerRepo) Put(ctx context.Context, learnerID string, data []byte, expected int64) (int64, error) {
	now := time.Now().UTC()

	var (
		query string
		args  []any
	)
	if expected == 0 {
		query, args = builder().
			Insert(learnerStatesTable.Name).
			Columns("learner_id", "revision", "data", "created_at", "updated_at").
			Values(learnerID, int64(1), string(data), now, now).
			OnConflict(entsql.ConflictColumns("learner_id"), entsql.DoNothing()).
			Query()
	} else {
		query, args = builder().
			Update(learnerStatesTable.Name).
			Set("revision", expected+1).
			Set("data", string(data)).
			Set("updated_at", now).
			Where(entsql.And(
				entsql.EQ("learner_id", learnerID),
				entsql.EQ("revision", expected),
			)).
			Query()
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("save learner state: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("save learner state: %w", err)
	}
	if n == 0 {
		return 0, fmt.Errorf("save learner %q at revision %d: %w", learnerID, expected, ErrRevisionConflict)
	}
	return expected + 1, nil
}

func (r *learnerRepo) Delete(ctx context.Context, learnerID string) error {
	query, args := builder().
		Delete(learnerStatesTable.Name).
		Where(entsql.EQ("learner_id", learnerID)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete learner state: %w", err)
	}
	return nil
}
