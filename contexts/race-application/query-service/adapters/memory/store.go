package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	domainerrors "trailrace/contexts/race-application/query-service/domain/errors"
	"trailrace/contexts/race-application/query-service/ports"
)

// Store is the in-memory read store. Saves are insert-or-overwrite and
// deletes are delete-if-present, which keeps the event listeners idempotent
// under redelivery.
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

func (s *Store) ListRaces(ctx context.Context) ([]ports.Race, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	races := make([]ports.Race, 0, len(s.races))
	for _, race := range s.races {
		races = append(races, race)
	}
	sort.Slice(races, func(i, j int) bool { return races[i].ID < races[j].ID })
	return races, nil
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

func (s *Store) GetApplication(ctx context.Context, id string) (ports.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	app, ok := s.applications[id]
	if !ok {
		return ports.Application{}, fmt.Errorf("%w: application %s", domainerrors.ErrNotFound, id)
	}
	return app, nil
}

func (s *Store) ListApplications(ctx context.Context) ([]ports.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	apps := make([]ports.Application, 0, len(s.applications))
	for _, app := range s.applications {
		apps = append(apps, app)
	}
	sort.Slice(apps, func(i, j int) bool { return apps[i].ID < apps[j].ID })
	return apps, nil
}

func (s *Store) ListApplicationsByRace(ctx context.Context, raceID string) ([]ports.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	apps := make([]ports.Application, 0)
	for _, app := range s.applications {
		if app.Race.ID == raceID {
			apps = append(apps, app)
		}
	}
	sort.Slice(apps, func(i, j int) bool { return apps[i].ID < apps[j].ID })
	return apps, nil
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
