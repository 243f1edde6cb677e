package busadapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domainerrors "trailrace/contexts/race-application/command-service/domain/errors"
	eventsv1 "trailrace/contracts/events/v1"
	"trailrace/internal/shared/codec"
)

// Wire is the slice of the platform bus the publisher needs.
type Wire interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}

// Publisher serializes domain events and hands them to the bus under the
// routing key fixed for each event type.
type Publisher struct {
	Bus    Wire
	Codec  codec.Codec
	Logger *slog.Logger
}

func (p Publisher) PublishRaceCreated(ctx context.Context, event eventsv1.RaceCreated) error {
	return p.publish(ctx, eventsv1.RoutingKeyRaceCreated, event)
}

func (p Publisher) PublishRaceUpdated(ctx context.Context, event eventsv1.RaceUpdated) error {
	return p.publish(ctx, eventsv1.RoutingKeyRaceUpdated, event)
}

func (p Publisher) PublishRaceDeleted(ctx context.Context, event eventsv1.RaceDeleted) error {
	return p.publish(ctx, eventsv1.RoutingKeyRaceDeleted, event)
}

func (p Publisher) PublishApplicationCreated(ctx context.Context, event eventsv1.ApplicationCreated) error {
	return p.publish(ctx, eventsv1.RoutingKeyApplicationCreated, event)
}

func (p Publisher) PublishApplicationDeleted(ctx context.Context, event eventsv1.ApplicationDeleted) error {
	return p.publish(ctx, eventsv1.RoutingKeyApplicationDeleted, event)
}

func (p Publisher) publish(ctx context.Context, routingKey string, event any) error {
	body, err := p.codec().Marshal(event)
	if err != nil {
		return fmt.Errorf("encode %s: %w", routingKey, err)
	}

	if err := p.Bus.Publish(ctx, routingKey, body); err != nil {
		p.resolveLogger().Error("event publish failed",
			"event", "bus_publish_failed",
			"module", "race-application/command-service",
			"layer", "adapter",
			"routing_key", routingKey,
			"error", err.Error(),
		)
		return errors.Join(domainerrors.ErrDependencyUnavailable, err)
	}

	p.resolveLogger().Debug("event published",
		"event", "bus_publish",
		"module", "race-application/command-service",
		"layer", "adapter",
		"routing_key", routingKey,
	)
	return nil
}

func (p Publisher) codec() codec.Codec {
	if p.Codec != nil {
		return p.Codec
	}
	return codec.NewJSONIter()
}

func (p Publisher) resolveLogger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}
