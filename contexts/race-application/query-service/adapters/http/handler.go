package httpadapter

import (
	"context"
	"log/slog"

	"trailrace/contexts/race-application/query-service/application"
	"trailrace/contexts/race-application/query-service/ports"
	httptransport "trailrace/contexts/race-application/query-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ListRacesHandler(ctx context.Context) ([]httptransport.RaceResponse, error) {
	races, err := h.Service.ListRaces(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]httptransport.RaceResponse, 0, len(races))
	for _, race := range races {
		resp = append(resp, toRaceResponse(race))
	}
	return resp, nil
}

func (h Handler) GetRaceHandler(ctx context.Context, raceID string) (httptransport.RaceResponse, error) {
	race, err := h.Service.GetRace(ctx, raceID)
	if err != nil {
		return httptransport.RaceResponse{}, err
	}
	return toRaceResponse(race), nil
}

func (h Handler) ListApplicationsHandler(ctx context.Context) ([]httptransport.ApplicationResponse, error) {
	apps, err := h.Service.ListApplications(ctx)
	if err != nil {
		return nil, err
	}
	return toApplicationResponses(apps), nil
}

func (h Handler) GetApplicationHandler(
	ctx context.Context,
	applicationID string,
) (httptransport.ApplicationResponse, error) {
	app, err := h.Service.GetApplication(ctx, applicationID)
	if err != nil {
		return httptransport.ApplicationResponse{}, err
	}
	return toApplicationResponse(app), nil
}

func (h Handler) ListApplicationsByRaceHandler(
	ctx context.Context,
	raceID string,
) ([]httptransport.ApplicationResponse, error) {
	apps, err := h.Service.ListApplicationsByRace(ctx, raceID)
	if err != nil {
		return nil, err
	}
	return toApplicationResponses(apps), nil
}

func toRaceResponse(race ports.Race) httptransport.RaceResponse {
	return httptransport.RaceResponse{
		ID:       race.ID,
		Name:     race.Name,
		Distance: race.Distance,
	}
}

func toApplicationResponse(app ports.Application) httptransport.ApplicationResponse {
	return httptransport.ApplicationResponse{
		ID:        app.ID,
		FirstName: app.FirstName,
		LastName:  app.LastName,
		Club:      app.Club,
		Race:      toRaceResponse(app.Race),
	}
}

func toApplicationResponses(apps []ports.Application) []httptransport.ApplicationResponse {
	resp := make([]httptransport.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		resp = append(resp, toApplicationResponse(app))
	}
	return resp
}
