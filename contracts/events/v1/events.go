package v1

// Wire contract between the command and query services. Payload field names
// and routing keys are frozen; both services and any external consumer
// depend on them staying stable.

const Exchange = "race.exchange"

// Routing keys on the topic exchange, one per event type.
const (
	RoutingKeyRaceCreated        = "race.created"
	RoutingKeyRaceUpdated        = "race.updated"
	RoutingKeyRaceDeleted        = "race.deleted"
	RoutingKeyApplicationCreated = "application.created"
	RoutingKeyApplicationDeleted = "application.deleted"
)

// Query-side queues, one durable queue per routing key.
const (
	QueueRaceCreated        = "race.created.queue"
	QueueRaceUpdated        = "race.updated.queue"
	QueueRaceDeleted        = "race.deleted.queue"
	QueueApplicationCreated = "application.created.queue"
	QueueApplicationDeleted = "application.deleted.queue"
)

// RaceSnapshot is the race state captured at the moment an event was
// produced. It is embedded verbatim and never re-resolved downstream.
type RaceSnapshot struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Distance string `json:"distance"`
}

type RaceCreated struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Distance string `json:"distance"`
}

type RaceUpdated struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Distance string `json:"distance"`
}

type RaceDeleted struct {
	ID string `json:"id"`
}

type ApplicationCreated struct {
	ID        string       `json:"id"`
	FirstName string       `json:"firstName"`
	LastName  string       `json:"lastName"`
	Club      string       `json:"club"`
	Race      RaceSnapshot `json:"race"`
}

type ApplicationDeleted struct {
	ID string `json:"id"`
}
