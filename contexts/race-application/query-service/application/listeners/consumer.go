package listeners

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	application "trailrace/contexts/race-application/query-service/application"
	domainerrors "trailrace/contexts/race-application/query-service/domain/errors"
	"trailrace/contexts/race-application/query-service/ports"
	eventsv1 "trailrace/contracts/events/v1"
	"trailrace/internal/shared/codec"
)

// EventConsumer replicates command-side events into the read store, one
// handler per event type. Handlers are idempotent under redelivery:
// creates are insert-or-overwrite, deletes are delete-if-present, and an
// update for an unknown identifier is acknowledged and dropped. Only a
// payload that cannot be decoded or a store failure returns an error, which
// makes the bus redeliver the message.
type EventConsumer struct {
	Races        ports.RaceRepository
	Applications ports.ApplicationRepository
	Codec        codec.Codec
	Logger       *slog.Logger
}

// Start binds every handler to its dedicated queue. Called once at startup.
func (c EventConsumer) Start(ctx context.Context, subscriber ports.EventSubscriber) error {
	bindings := []struct {
		queue      string
		routingKey string
		handler    func(context.Context, []byte) error
	}{
		{eventsv1.QueueRaceCreated, eventsv1.RoutingKeyRaceCreated, c.HandleRaceCreated},
		{eventsv1.QueueRaceUpdated, eventsv1.RoutingKeyRaceUpdated, c.HandleRaceUpdated},
		{eventsv1.QueueRaceDeleted, eventsv1.RoutingKeyRaceDeleted, c.HandleRaceDeleted},
		{eventsv1.QueueApplicationCreated, eventsv1.RoutingKeyApplicationCreated, c.HandleApplicationCreated},
		{eventsv1.QueueApplicationDeleted, eventsv1.RoutingKeyApplicationDeleted, c.HandleApplicationDeleted},
	}
	for _, binding := range bindings {
		if err := subscriber.Subscribe(ctx, binding.queue, binding.routingKey, binding.handler); err != nil {
			return fmt.Errorf("subscribe %s: %w", binding.queue, err)
		}
	}
	return nil
}

func (c EventConsumer) HandleRaceCreated(ctx context.Context, body []byte) error {
	var event eventsv1.RaceCreated
	if err := c.codec().Unmarshal(body, &event); err != nil {
		return c.decodeFailure("race.created", err)
	}

	race := ports.Race{ID: event.ID, Name: event.Name, Distance: event.Distance}
	if err := c.Races.SaveRace(ctx, race); err != nil {
		return err
	}

	c.logReplicated("race_replica_created", "race_id", event.ID)
	return nil
}

func (c EventConsumer) HandleRaceUpdated(ctx context.Context, body []byte) error {
	var event eventsv1.RaceUpdated
	if err := c.codec().Unmarshal(body, &event); err != nil {
		return c.decodeFailure("race.updated", err)
	}

	race, err := c.Races.GetRace(ctx, event.ID)
	if errors.Is(err, domainerrors.ErrNotFound) {
		application.ResolveLogger(c.Logger).Debug("update for unknown race dropped",
			"event", "race_replica_update_dropped",
			"module", "race-application/query-service",
			"layer", "listener",
			"race_id", event.ID,
		)
		return nil
	}
	if err != nil {
		return err
	}

	race.Name = event.Name
	race.Distance = event.Distance
	if err := c.Races.SaveRace(ctx, race); err != nil {
		return err
	}

	c.logReplicated("race_replica_updated", "race_id", event.ID)
	return nil
}

func (c EventConsumer) HandleRaceDeleted(ctx context.Context, body []byte) error {
	var event eventsv1.RaceDeleted
	if err := c.codec().Unmarshal(body, &event); err != nil {
		return c.decodeFailure("race.deleted", err)
	}

	if err := c.Races.DeleteRace(ctx, event.ID); err != nil {
		return err
	}

	c.logReplicated("race_replica_deleted", "race_id", event.ID)
	return nil
}

func (c EventConsumer) HandleApplicationCreated(ctx context.Context, body []byte) error {
	var event eventsv1.ApplicationCreated
	if err := c.codec().Unmarshal(body, &event); err != nil {
		return c.decodeFailure("application.created", err)
	}

	app := ports.Application{
		ID:        event.ID,
		FirstName: event.FirstName,
		LastName:  event.LastName,
		Club:      event.Club,
		Race: ports.Race{
			ID:       event.Race.ID,
			Name:     event.Race.Name,
			Distance: event.Race.Distance,
		},
	}
	if err := c.Applications.SaveApplication(ctx, app); err != nil {
		return err
	}

	c.logReplicated("application_replica_created", "application_id", event.ID)
	return nil
}

func (c EventConsumer) HandleApplicationDeleted(ctx context.Context, body []byte) error {
	var event eventsv1.ApplicationDeleted
	if err := c.codec().Unmarshal(body, &event); err != nil {
		return c.decodeFailure("application.deleted", err)
	}

	if err := c.Applications.DeleteApplication(ctx, event.ID); err != nil {
		return err
	}

	c.logReplicated("application_replica_deleted", "application_id", event.ID)
	return nil
}

func (c EventConsumer) decodeFailure(routingKey string, err error) error {
	application.ResolveLogger(c.Logger).Error("event payload decode failed",
		"event", "replica_event_decode_failed",
		"module", "race-application/query-service",
		"layer", "listener",
		"routing_key", routingKey,
		"error", err.Error(),
	)
	return fmt.Errorf("decode %s: %w", routingKey, err)
}

func (c EventConsumer) logReplicated(event string, idKey, id string) {
	application.ResolveLogger(c.Logger).Info("event replicated",
		"event", event,
		"module", "race-application/query-service",
		"layer", "listener",
		idKey, id,
	)
}

func (c EventConsumer) codec() codec.Codec {
	if c.Codec != nil {
		return c.Codec
	}
	return codec.NewJSONIter()
}
