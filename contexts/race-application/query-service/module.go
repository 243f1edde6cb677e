package queryservice

import (
	"log/slog"

	httpadapter "trailrace/contexts/race-application/query-service/adapters/http"
	"trailrace/contexts/race-application/query-service/adapters/memory"
	"trailrace/contexts/race-application/query-service/application"
	"trailrace/contexts/race-application/query-service/application/listeners"
	"trailrace/contexts/race-application/query-service/ports"
)

type Module struct {
	Handler  httpadapter.Handler
	Consumer listeners.EventConsumer
	Store    *memory.Store
}

type Dependencies struct {
	Races        ports.RaceRepository
	Applications ports.ApplicationRepository
	Logger       *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Races:        deps.Races,
		Applications: deps.Applications,
		Logger:       deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Consumer: listeners.EventConsumer{
			Races:        deps.Races,
			Applications: deps.Applications,
			Logger:       deps.Logger,
		},
	}
}

// NewInMemoryModule wires the module against the in-memory read store.
// Used by tests and DSN-less local runs.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Races:        store,
		Applications: store,
		Logger:       logger,
	})
	module.Store = store
	return module
}
