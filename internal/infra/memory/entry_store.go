// Package memory holds process-local implementations of the domain
// repositories. They back `serve --in-memory` and the use case tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/ojt-tracker/internal/domain/entry"
	"github.com/BruksfildServices01/ojt-tracker/internal/models"
)

type EntryStore struct {
	mu       sync.RWMutex
	nextID   uint
	entries  map[uint]models.TimeEntry
	required map[string]float64
	now      func() time.Time
}

func NewEntryStore() *EntryStore {
	return &EntryStore{
		nextID:   1,
		entries:  map[uint]models.TimeEntry{},
		required: map[string]float64{},
		now:      time.Now,
	}
}

func (s *EntryStore) ListByOwner(_ context.Context, ownerID string) ([]models.TimeEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.TimeEntry{}
	for _, e := range s.entries {
		if e.CreatedBy == ownerID {
			out = append(out, clone(e))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *EntryStore) GetByID(_ context.Context, id uint, ownerID string) (*models.TimeEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[id]
	if !ok || e.CreatedBy != ownerID {
		return nil, domain.ErrNotFound
	}
	c := clone(e)
	return &c, nil
}

func (s *EntryStore) Create(_ context.Context, e *models.TimeEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = s.nextID
	s.nextID++
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.now()
	}
	s.entries[e.ID] = clone(*e)
	return nil
}

func (s *EntryStore) Update(_ context.Context, id uint, ownerID string, in domain.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok || e.CreatedBy != ownerID {
		return domain.ErrNotFound
	}
	in.ApplyTo(&e)
	s.entries[id] = e
	return nil
}

func (s *EntryStore) Delete(_ context.Context, id uint, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok || e.CreatedBy != ownerID {
		return domain.ErrNotFound
	}
	delete(s.entries, id)
	return nil
}

func (s *EntryStore) RequiredHours(_ context.Context, ownerID string) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.required[ownerID]
	if !ok {
		return 0, domain.ErrNotFound
	}
	return h, nil
}

func (s *EntryStore) SetRequiredHours(_ context.Context, ownerID string, hours float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.required[ownerID] = hours
	return nil
}

// clone copies the evening pointers so callers never alias stored rows.
func clone(e models.TimeEntry) models.TimeEntry {
	if e.EveningTimeIn != nil {
		v := *e.EveningTimeIn
		e.EveningTimeIn = &v
	}
	if e.EveningTimeOut != nil {
		v := *e.EveningTimeOut
		e.EveningTimeOut = &v
	}
	return e
}

var _ domain.Repository = (*EntryStore)(nil)
