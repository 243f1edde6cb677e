package memory

import (
	"context"
	"fmt"
	"sync"

	domainerrors "trailrace/contexts/race-application/command-service/domain/errors"
	"trailrace/contexts/race-application/command-service/ports"
)

// Store is the in-memory write store. A single mutex gives every
// single-record operation the per-identifier atomicity the write side needs.
type Store struct {
	mu sync.RWMutex

	races        map[string]ports.Race
	applications map[string]ports.Application
}

func NewStore() *Store {
	return &Store{
		races:        make(map[string]ports.Race),
		applications: make(map[string]ports.Application),
	}
}

func (s *Store) GetRace(ctx context.Context, id string) (ports.Race, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	race, ok := s.races[id]
	if !ok {
		return ports.Race{}, fmt.Errorf("%w: race %s", domainerrors.ErrNotFound, id)
	}
	return race, nil
}

func (s *Store) SaveRace(ctx context.Context, race ports.Race) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.races[race.ID] = race
	return nil
}

func (s *Store) DeleteRace(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.races, id)
	return nil
}

func (s *Store) SaveApplication(ctx context.Context, app ports.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.applications[app.ID] = app
	return nil
}

func (s *Store) DeleteApplication(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.applications, id)
	return nil
}
