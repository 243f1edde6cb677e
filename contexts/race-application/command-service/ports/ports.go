package ports

import (
	"context"
	"strings"

	eventsv1 "trailrace/contracts/events/v1"
)

type Distance string

const (
	DistanceFiveK        Distance = "FiveK"
	DistanceTenK         Distance = "TenK"
	DistanceHalfMarathon Distance = "HalfMarathon"
	DistanceMarathon     Distance = "Marathon"
)

// ParseDistance matches the wire names exactly; distances travel by name,
// not ordinal.
func ParseDistance(raw string) (Distance, bool) {
	switch Distance(strings.TrimSpace(raw)) {
	case DistanceFiveK:
		return DistanceFiveK, true
	case DistanceTenK:
		return DistanceTenK, true
	case DistanceHalfMarathon:
		return DistanceHalfMarathon, true
	case DistanceMarathon:
		return DistanceMarathon, true
	default:
		return "", false
	}
}

func IsValidDistance(distance Distance) bool {
	switch distance {
	case DistanceFiveK, DistanceTenK, DistanceHalfMarathon, DistanceMarathon:
		return true
	default:
		return false
	}
}

// Race is the write-side record. The identifier is assigned at creation and
// never changes afterwards.
type Race struct {
	ID       string
	Name     string
	Distance Distance
}

func (r Race) Snapshot() eventsv1.RaceSnapshot {
	return eventsv1.RaceSnapshot{
		ID:       r.ID,
		Name:     r.Name,
		Distance: string(r.Distance),
	}
}

// Application references exactly one race. Race holds the state read at
// creation time; it is what gets embedded into the ApplicationCreated event.
type Application struct {
	ID        string
	FirstName string
	LastName  string
	Club      string
	Race      Race
}

// RaceRepository owns race persistence on the write side.
type RaceRepository interface {
	GetRace(ctx context.Context, id string) (Race, error)
	SaveRace(ctx context.Context, race Race) error
	// DeleteRace is idempotent; deleting an absent race is not an error.
	DeleteRace(ctx context.Context, id string) error
}

// ApplicationRepository owns application persistence on the write side.
type ApplicationRepository interface {
	SaveApplication(ctx context.Context, app Application) error
	// DeleteApplication is idempotent; deleting an absent row is not an error.
	DeleteApplication(ctx context.Context, id string) error
}

// EventPublisher hands one domain event per successful write to the bus,
// keyed by the event's static routing key. Fire-and-forget: no delivery
// confirmation is awaited.
type EventPublisher interface {
	PublishRaceCreated(ctx context.Context, event eventsv1.RaceCreated) error
	PublishRaceUpdated(ctx context.Context, event eventsv1.RaceUpdated) error
	PublishRaceDeleted(ctx context.Context, event eventsv1.RaceDeleted) error
	PublishApplicationCreated(ctx context.Context, event eventsv1.ApplicationCreated) error
	PublishApplicationDeleted(ctx context.Context, event eventsv1.ApplicationDeleted) error
}

// IDGenerator abstracts identifier generation for races and applications.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
