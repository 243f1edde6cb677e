package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	commandservice "trailrace/contexts/race-application/command-service"
	commandbus "trailrace/contexts/race-application/command-service/adapters/bus"
	commandmemory "trailrace/contexts/race-application/command-service/adapters/memory"
	commandpostgres "trailrace/contexts/race-application/command-service/adapters/postgres"
	queryservice "trailrace/contexts/race-application/query-service"
	querypostgres "trailrace/contexts/race-application/query-service/adapters/postgres"
	"trailrace/internal/platform/config"
	"trailrace/internal/platform/db"
	"trailrace/internal/platform/httpserver"
	"trailrace/internal/platform/messaging"
	"trailrace/internal/shared/codec"
)

// Package bootstrap is the composition root for both processes. Keep
// construction and wiring here so module code stays framework-agnostic.

// bus is the slice of the platform messaging adapters both sides use.
type bus interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
	Subscribe(ctx context.Context, queue, routingKey string, handler messaging.Handler) error
}

type CommandApp struct {
	server   *httpserver.CommandServer
	postgres *db.Postgres
	closers  []func() error
	logger   *slog.Logger
}

func BuildCommand() (*CommandApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "command")

	eventBus, closeBus, err := buildBus(cfg, logger)
	if err != nil {
		return nil, err
	}

	app := &CommandApp{logger: logger}
	if closeBus != nil {
		app.closers = append(app.closers, closeBus)
	}

	publisher := commandbus.Publisher{
		Bus:    eventBus,
		Codec:  codec.NewJSONIter(),
		Logger: logger,
	}

	var module commandservice.Module
	if strings.TrimSpace(cfg.PostgresDSN) != "" {
		pg, err := db.Connect(cfg.PostgresDSN)
		if err != nil {
			app.closeAll()
			return nil, err
		}
		app.postgres = pg
		app.closers = append(app.closers, pg.Close)

		repo := commandpostgres.NewRepository(pg.DB, logger)
		module = commandservice.NewModule(commandservice.Dependencies{
			Races:        repo,
			Applications: repo,
			Publisher:    publisher,
			IDs:          commandpostgres.UUIDGenerator{},
			Logger:       logger,
		})
	} else {
		store := commandmemory.NewStore()
		module = commandservice.NewModule(commandservice.Dependencies{
			Races:        store,
			Applications: store,
			Publisher:    publisher,
			IDs:          commandpostgres.UUIDGenerator{},
			Logger:       logger,
		})
	}

	app.server = httpserver.NewCommandServer(module, logger, normalizeAddr(cfg.HTTPPort))
	return app, nil
}

func (a *CommandApp) Run(ctx context.Context) error {
	return a.server.Start()
}

func (a *CommandApp) Close() error {
	return a.closeAll()
}

func (a *CommandApp) closeAll() error {
	var firstErr error
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

type QueryApp struct {
	server   *httpserver.QueryServer
	module   queryservice.Module
	eventBus bus
	postgres *db.Postgres
	closers  []func() error
	logger   *slog.Logger
}

func BuildQuery() (*QueryApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "query")

	eventBus, closeBus, err := buildBus(cfg, logger)
	if err != nil {
		return nil, err
	}

	app := &QueryApp{eventBus: eventBus, logger: logger}
	if closeBus != nil {
		app.closers = append(app.closers, closeBus)
	}

	if strings.TrimSpace(cfg.PostgresDSN) != "" {
		pg, err := db.Connect(cfg.PostgresDSN)
		if err != nil {
			app.closeAll()
			return nil, err
		}
		app.postgres = pg
		app.closers = append(app.closers, pg.Close)

		repo := querypostgres.NewRepository(pg.DB, logger)
		app.module = queryservice.NewModule(queryservice.Dependencies{
			Races:        repo,
			Applications: repo,
			Logger:       logger,
		})
	} else {
		app.module = queryservice.NewInMemoryModule(logger)
	}

	app.server = httpserver.NewQueryServer(app.module, logger, normalizeAddr(cfg.HTTPPort))
	return app, nil
}

// Run binds the event listeners to their queues, then serves HTTP until the
// process stops.
func (a *QueryApp) Run(ctx context.Context) error {
	if err := a.module.Consumer.Start(ctx, a.eventBus); err != nil {
		return err
	}
	return a.server.Start()
}

func (a *QueryApp) Close() error {
	return a.closeAll()
}

func (a *QueryApp) closeAll() error {
	var firstErr error
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func buildBus(cfg config.Config, logger *slog.Logger) (bus, func() error, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.BusDriver)) {
	case "inproc":
		return messaging.NewInProc(logger), nil, nil
	case "amqp", "":
		rabbit, err := messaging.NewRabbitMQ(cfg.AMQPURL, cfg.Exchange, logger)
		if err != nil {
			return nil, nil, err
		}
		return rabbit, rabbit.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown bus driver %q", cfg.BusDriver)
	}
}

func normalizeAddr(port string) string {
	port = strings.TrimSpace(port)
	if port == "" {
		return ""
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}
