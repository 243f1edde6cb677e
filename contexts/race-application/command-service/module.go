package commandservice

import (
	"log/slog"

	busadapter "trailrace/contexts/race-application/command-service/adapters/bus"
	httpadapter "trailrace/contexts/race-application/command-service/adapters/http"
	"trailrace/contexts/race-application/command-service/adapters/memory"
	postgresadapter "trailrace/contexts/race-application/command-service/adapters/postgres"
	"trailrace/contexts/race-application/command-service/application"
	"trailrace/contexts/race-application/command-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Races        ports.RaceRepository
	Applications ports.ApplicationRepository
	Publisher    ports.EventPublisher
	IDs          ports.IDGenerator
	Logger       *slog.Logger
}

func NewModule(deps Dependencies) Module {
	raceService := application.RaceService{
		Races:     deps.Races,
		Publisher: deps.Publisher,
		IDs:       deps.IDs,
		Logger:    deps.Logger,
	}
	applicationService := application.ApplicationService{
		Applications: deps.Applications,
		Races:        deps.Races,
		Publisher:    deps.Publisher,
		IDs:          deps.IDs,
		Logger:       deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Races:        raceService,
			Applications: applicationService,
			Logger:       deps.Logger,
		},
	}
}

// NewInMemoryModule wires the module against the in-memory write store,
// publishing through the given bus. Used by tests and DSN-less local runs.
func NewInMemoryModule(bus busadapter.Wire, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Races:        store,
		Applications: store,
		Publisher:    busadapter.Publisher{Bus: bus, Logger: logger},
		IDs:          postgresadapter.UUIDGenerator{},
		Logger:       logger,
	})
	module.Store = store
	return module
}
