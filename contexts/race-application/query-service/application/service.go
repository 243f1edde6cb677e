package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	domainerrors "trailrace/contexts/race-application/query-service/domain/errors"
	"trailrace/contexts/race-application/query-service/ports"
)

// Service serves read-only lookups against the read store. The store is
// eventually consistent with the write side; nothing here waits for it.
type Service struct {
	Races        ports.RaceRepository
	Applications ports.ApplicationRepository
	Logger       *slog.Logger
}

func (s Service) ListRaces(ctx context.Context) ([]ports.Race, error) {
	races, err := s.Races.ListRaces(ctx)
	if err != nil {
		return nil, err
	}

	ResolveLogger(s.Logger).Debug("races listed",
		"event", "races_listed",
		"module", "race-application/query-service",
		"layer", "application",
		"count", len(races),
	)
	return races, nil
}

func (s Service) GetRace(ctx context.Context, id string) (ports.Race, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ports.Race{}, fmt.Errorf("%w: race id must not be empty", domainerrors.ErrInvalidRequest)
	}
	return s.Races.GetRace(ctx, id)
}

func (s Service) ListApplications(ctx context.Context) ([]ports.Application, error) {
	apps, err := s.Applications.ListApplications(ctx)
	if err != nil {
		return nil, err
	}

	ResolveLogger(s.Logger).Debug("applications listed",
		"event", "applications_listed",
		"module", "race-application/query-service",
		"layer", "application",
		"count", len(apps),
	)
	return apps, nil
}

func (s Service) GetApplication(ctx context.Context, id string) (ports.Application, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ports.Application{}, fmt.Errorf("%w: application id must not be empty", domainerrors.ErrInvalidRequest)
	}
	return s.Applications.GetApplication(ctx, id)
}

func (s Service) ListApplicationsByRace(ctx context.Context, raceID string) ([]ports.Application, error) {
	raceID = strings.TrimSpace(raceID)
	if raceID == "" {
		return nil, fmt.Errorf("%w: race id must not be empty", domainerrors.ErrInvalidRequest)
	}
	return s.Applications.ListApplicationsByRace(ctx, raceID)
}
