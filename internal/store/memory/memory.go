// Package memory provides an in-memory RecordStore used as the default dev
// backend and as the test double for the submission workflow.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"satnica/internal/core"
	"satnica/internal/store"
)

type Store struct {
	mu      sync.Mutex
	records []core.WorkRecord
}

func New() *Store {
	return &Store{}
}

// Insert stores the record under a fresh ID.
func (s *Store) Insert(_ context.Context, r core.WorkRecord) (core.WorkRecord, error) {
	if err := r.Validate(); err != nil {
		return core.WorkRecord{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = uuid.NewString()
	s.records = append(s.records, r)
	return r, nil
}

// ListByUser returns the user's records in insertion order.
func (s *Store) ListByUser(_ context.Context, userID string) ([]core.WorkRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []core.WorkRecord
	for _, r := range s.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

// ListByUserOrderedByDate returns the user's records ascending by date.
func (s *Store) ListByUserOrderedByDate(ctx context.Context, userID string) ([]core.WorkRecord, error) {
	out, err := s.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date.Time)
	})
	return out, nil
}

var _ store.RecordStore = (*Store)(nil)
