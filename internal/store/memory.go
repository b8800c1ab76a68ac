package store

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MemoryLearnerRepo is an in-process LearnerRepo with the same
// compare-and-swap semantics as the SQLite implementation.
type MemoryLearnerRepo struct {
	mu      sync.Mutex
	records map[string]LearnerRecord
}

// NewMemoryLearnerRepo returns an empty repository.
func NewMemoryLearnerRepo() *MemoryLearnerRepo {
	return &MemoryLearnerRepo{records: make(map[string]LearnerRecord)}
}

func (m *MemoryLearnerRepo) Get(_ context.Context, learnerID string) (*LearnerRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.records[learnerID]
	if !ok {
		return nil, nil
	}
	rec.Data = append([]byte(nil), rec.Data...)
	return &rec, nil
}

func (m *MemoryLearnerRepo) Put(_ context.Context, learnerID string, data []byte, expected int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current := m.records[learnerID].Revision
	if current != expected {
		return 0, fmt.Errorf("save learner %q at revision %d: %w", learnerID, expected, ErrRevisionConflict)
	}
	m.records[learnerID] = LearnerRecord{
		LearnerID: learnerID,
		Revision:  expected + 1,
		Data:      append([]byte(nil), data...),
		UpdatedAt: time.Now().UTC(),
	}
	return expected + 1, nil
}

func (m *MemoryLearnerRepo) Delete(_ context.Context, learnerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, learnerID)
	return nil
}
