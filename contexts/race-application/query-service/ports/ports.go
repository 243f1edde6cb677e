package ports

import "context"

// Race is the read-side replica row. Distance stays the wire string; the
// read side replicates what it is told and validates nothing.
type Race struct {
	ID       string
	Name     string
	Distance string
}

// Application is the read-side replica row. Race is the snapshot embedded
// in the ApplicationCreated event; it is never refreshed when the race is
// later updated.
type Application struct {
	ID        string
	FirstName string
	LastName  string
	Club      string
	Race      Race
}

// RaceRepository owns the read-side race rows. Mutated only by event
// listeners; queried only by the query service.
type RaceRepository interface {
	GetRace(ctx context.Context, id string) (Race, error)
	ListRaces(ctx context.Context) ([]Race, error)
	// SaveRace is an insert-or-overwrite keyed by identifier.
	SaveRace(ctx context.Context, race Race) error
	// DeleteRace is a no-op when the row is absent.
	DeleteRace(ctx context.Context, id string) error
}

// ApplicationRepository owns the read-side application rows.
type ApplicationRepository interface {
	GetApplication(ctx context.Context, id string) (Application, error)
	ListApplications(ctx context.Context) ([]Application, error)
	ListApplicationsByRace(ctx context.Context, raceID string) ([]Application, error)
	// SaveApplication is an insert-or-overwrite keyed by identifier.
	SaveApplication(ctx context.Context, app Application) error
	// DeleteApplication is a no-op when the row is absent.
	DeleteApplication(ctx context.Context, id string) error
}

// EventSubscriber binds a handler to a dedicated queue fed by one routing
// key. Binding happens once at startup.
type EventSubscriber interface {
	Subscribe(
		ctx context.Context,
		queue string,
		routingKey string,
		handler func(context.Context, []byte) error,
	) error
}
