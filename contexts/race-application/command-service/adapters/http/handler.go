package httpadapter

import (
	"context"
	"log/slog"

	"trailrace/contexts/race-application/command-service/application"
	"trailrace/contexts/race-application/command-service/ports"
	httptransport "trailrace/contexts/race-application/command-service/transport/http"
)

type Handler struct {
	Races        application.RaceService
	Applications application.ApplicationService
	Logger       *slog.Logger
}

func (h Handler) CreateRaceHandler(
	ctx context.Context,
	req httptransport.CreateRaceRequest,
) (httptransport.RaceResponse, error) {
	race, err := h.Races.CreateRace(ctx, req.Name, req.Distance)
	if err != nil {
		return httptransport.RaceResponse{}, err
	}
	return toRaceResponse(race), nil
}

func (h Handler) UpdateRaceHandler(
	ctx context.Context,
	raceID string,
	req httptransport.UpdateRaceRequest,
) (httptransport.RaceResponse, error) {
	race, err := h.Races.UpdateRace(ctx, raceID, req.Name, req.Distance)
	if err != nil {
		return httptransport.RaceResponse{}, err
	}
	return toRaceResponse(race), nil
}

func (h Handler) DeleteRaceHandler(ctx context.Context, raceID string) error {
	return h.Races.DeleteRace(ctx, raceID)
}

func (h Handler) CreateApplicationHandler(
	ctx context.Context,
	req httptransport.CreateApplicationRequest,
) (httptransport.ApplicationResponse, error) {
	app, err := h.Applications.CreateApplication(ctx, req.FirstName, req.LastName, req.Club, req.RaceID)
	if err != nil {
		return httptransport.ApplicationResponse{}, err
	}
	return httptransport.ApplicationResponse{
		ID:        app.ID,
		FirstName: app.FirstName,
		LastName:  app.LastName,
		Club:      app.Club,
		Race:      toRaceResponse(app.Race),
	}, nil
}

func (h Handler) DeleteApplicationHandler(ctx context.Context, applicationID string) error {
	return h.Applications.DeleteApplication(ctx, applicationID)
}

func toRaceResponse(race ports.Race) httptransport.RaceResponse {
	return httptransport.RaceResponse{
		ID:       race.ID,
		Name:     race.Name,
		Distance: string(race.Distance),
	}
}
