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

// ApplicationService applies application writes. Creation requires the
// referenced race to exist on the write side; the race state read at that
// instant is embedded into the ApplicationCreated event and never refreshed.
type ApplicationService struct {
	Applications ports.ApplicationRepository
	Races        ports.RaceRepository
	Publisher    ports.EventPublisher
	IDs          ports.IDGenerator
	Logger       *slog.Logger
}

func (s ApplicationService) CreateApplication(
	ctx context.Context,
	firstName, lastName, club, raceID string,
) (ports.Application, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	club = strings.TrimSpace(club)
	raceID = strings.TrimSpace(raceID)

	if firstName == "" {
		return ports.Application{}, fmt.Errorf("%w: first name must not be empty", domainerrors.ErrInvalidRequest)
	}
	if lastName == "" {
		return ports.Application{}, fmt.Errorf("%w: last name must not be empty", domainerrors.ErrInvalidRequest)
	}
	if raceID == "" {
		return ports.Application{}, fmt.Errorf("%w: race id must not be empty", domainerrors.ErrInvalidRequest)
	}

	race, err := s.Races.GetRace(ctx, raceID)
	if err != nil {
		return ports.Application{}, err
	}

	id, err := s.IDs.NewID(ctx)
	if err != nil {
		return ports.Application{}, fmt.Errorf("generate application id: %w", err)
	}

	app := ports.Application{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		Club:      club,
		Race:      race,
	}
	if err := s.Applications.SaveApplication(ctx, app); err != nil {
		return ports.Application{}, err
	}

	event := eventsv1.ApplicationCreated{
		ID:        app.ID,
		FirstName: app.FirstName,
		LastName:  app.LastName,
		Club:      app.Club,
		Race:      race.Snapshot(),
	}
	if err := s.Publisher.PublishApplicationCreated(ctx, event); err != nil {
		s.logPublishFailure(ctx, "application_created", app.ID, err)
		return ports.Application{}, err
	}

	ResolveLogger(s.Logger).Info("application created",
		"event", "application_created",
		"module", "race-application/command-service",
		"layer", "application",
		"application_id", app.ID,
		"race_id", race.ID,
	)
	return app, nil
}

// DeleteApplication removes the record if present and publishes
// ApplicationDeleted either way.
func (s ApplicationService) DeleteApplication(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: application id must not be empty", domainerrors.ErrInvalidRequest)
	}

	if err := s.Applications.DeleteApplication(ctx, id); err != nil {
		return err
	}

	if err := s.Publisher.PublishApplicationDeleted(ctx, eventsv1.ApplicationDeleted{ID: id}); err != nil {
		s.logPublishFailure(ctx, "application_deleted", id, err)
		return err
	}

	ResolveLogger(s.Logger).Info("application deleted",
		"event", "application_deleted",
		"module", "race-application/command-service",
		"layer", "application",
		"application_id", id,
	)
	return nil
}

func (s ApplicationService) logPublishFailure(ctx context.Context, action, applicationID string, err error) {
	ResolveLogger(s.Logger).Error("event publish failed after store write",
		"event", "application_event_publish_failed",
		"module", "race-application/command-service",
		"layer", "application",
		"action", action,
		"application_id", applicationID,
		"error", err.Error(),
	)
}
