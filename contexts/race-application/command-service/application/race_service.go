package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	domainerrors "trailrace/contexts/race-application/command-service/domain/errors"
	"trailrace/contexts/race-application/command-service/ports"
	eventsv1 "trailrace/contracts/events/v1"
)

// RaceService applies race writes to the write store and emits exactly one
// domain event per successful write. The event is published after the store
// write; a publish failure after a successful write leaves the stores
// divergent and is surfaced to the caller (there is no outbox).
type RaceService struct {
	Races     ports.RaceRepository
	Publisher ports.EventPublisher
	IDs       ports.IDGenerator
	Logger    *slog.Logger
}

func (s RaceService) CreateRace(ctx context.Context, name, distance string) (ports.Race, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ports.Race{}, fmt.Errorf("%w: race name must not be empty", domainerrors.ErrInvalidRequest)
	}
	parsed, ok := ports.ParseDistance(distance)
	if !ok {
		return ports.Race{}, fmt.Errorf("%w: unknown distance %q", domainerrors.ErrInvalidRequest, distance)
	}

	id, err := s.IDs.NewID(ctx)
	if err != nil {
		return ports.Race{}, fmt.Errorf("generate race id: %w", err)
	}

	race := ports.Race{ID: id, Name: name, Distance: parsed}
	if err := s.Races.SaveRace(ctx, race); err != nil {
		return ports.Race{}, err
	}

	event := eventsv1.RaceCreated{ID: race.ID, Name: race.Name, Distance: string(race.Distance)}
	if err := s.Publisher.PublishRaceCreated(ctx, event); err != nil {
		s.logPublishFailure(ctx, "race_created", race.ID, err)
		return ports.Race{}, err
	}

	ResolveLogger(s.Logger).Info("race created",
		"event", "race_created",
		"module", "race-application/command-service",
		"layer", "application",
		"race_id", race.ID,
		"race_name", race.Name,
		"distance", string(race.Distance),
	)
	return race, nil
}

func (s RaceService) UpdateRace(ctx context.Context, id, name, distance string) (ports.Race, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ports.Race{}, fmt.Errorf("%w: race id must not be empty", domainerrors.ErrInvalidRequest)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ports.Race{}, fmt.Errorf("%w: race name must not be empty", domainerrors.ErrInvalidRequest)
	}
	parsed, ok := ports.ParseDistance(distance)
	if !ok {
		return ports.Race{}, fmt.Errorf("%w: unknown distance %q", domainerrors.ErrInvalidRequest, distance)
	}

	race, err := s.Races.GetRace(ctx, id)
	if err != nil {
		return ports.Race{}, err
	}

	race.Name = name
	race.Distance = parsed
	if err := s.Races.SaveRace(ctx, race); err != nil {
		return ports.Race{}, err
	}

	event := eventsv1.RaceUpdated{ID: race.ID, Name: race.Name, Distance: string(race.Distance)}
	if err := s.Publisher.PublishRaceUpdated(ctx, event); err != nil {
		s.logPublishFailure(ctx, "race_updated", race.ID, err)
		return ports.Race{}, err
	}

	ResolveLogger(s.Logger).Info("race updated",
		"event", "race_updated",
		"module", "race-application/command-service",
		"layer", "application",
		"race_id", race.ID,
		"race_name", race.Name,
		"distance", string(race.Distance),
	)
	return race, nil
}

// DeleteRace removes the record if present and publishes RaceDeleted either
// way. Subscribers treat a delete for an unknown identifier as a no-op.
func (s RaceService) DeleteRace(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: race id must not be empty", domainerrors.ErrInvalidRequest)
	}

	if err := s.Races.DeleteRace(ctx, id); err != nil {
		return err
	}

	if err := s.Publisher.PublishRaceDeleted(ctx, eventsv1.RaceDeleted{ID: id}); err != nil {
		s.logPublishFailure(ctx, "race_deleted", id, err)
		return err
	}

	ResolveLogger(s.Logger).Info("race deleted",
		"event", "race_deleted",
		"module", "race-application/command-service",
		"layer", "application",
		"race_id", id,
	)
	return nil
}

func (s RaceService) logPublishFailure(ctx context.Context, action, raceID string, err error) {
	ResolveLogger(s.Logger).Error("event publish failed after store write",
		"event", "race_event_publish_failed",
		"module", "race-application/command-service",
		"layer", "application",
		"action", action,
		"race_id", raceID,
		"error", err.Error(),
	)
}
