package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	queryservice "trailrace/contexts/race-application/query-service"
	queryports "trailrace/contexts/race-application/query-service/ports"
	queryhttp "trailrace/contexts/race-application/query-service/transport/http"
)

func newQueryServer(t *testing.T) (*QueryServer, queryservice.Module) {
	t.Helper()
	module := queryservice.NewInMemoryModule(nil)
	return NewQueryServer(module, nil, ":0"), module
}

func doQuery(t *testing.T, server *QueryServer, target, role string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if role != "" {
		req.Header.Set("X-User-Role", role)
	}
	rec := httptest.NewRecorder()
	server.Mux().ServeHTTP(rec, req)
	return rec
}

func TestListRacesEndpoint(t *testing.T) {
	server, module := newQueryServer(t)
	seed := []queryports.Race{
		{ID: "r1", Name: "Zagreb Marathon", Distance: "Marathon"},
		{ID: "r2", Name: "Velebit Trail", Distance: "FiveK"},
	}
	for _, race := range seed {
		if err := module.Store.SaveRace(context.Background(), race); err != nil {
			t.Fatalf("seed race: %v", err)
		}
	}

	rec := doQuery(t, server, "/api/races", "applicant")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var races []queryhttp.RaceResponse
	if err := json.NewDecoder(rec.Body).Decode(&races); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(races) != 2 || races[0].ID != "r1" || races[1].ID != "r2" {
		t.Fatalf("unexpected list: %+v", races)
	}
}

func TestQueryEndpointsRequireRole(t *testing.T) {
	server, _ := newQueryServer(t)

	for _, target := range []string{
		"/api/races",
		"/api/races/r1",
		"/api/applications",
		"/api/applications/a1",
		"/api/applications/race/r1",
	} {
		rec := doQuery(t, server, target, "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401 without role header, got %d", target, rec.Code)
		}
		rec = doQuery(t, server, target, "stranger")
		if rec.Code != http.StatusForbidden {
			t.Fatalf("%s: expected 403 for unknown role, got %d", target, rec.Code)
		}
	}
}

func TestGetRaceEndpoint(t *testing.T) {
	server, module := newQueryServer(t)
	if err := module.Store.SaveRace(context.Background(), queryports.Race{ID: "r1", Name: "Ucka Trail", Distance: "TenK"}); err != nil {
		t.Fatalf("seed race: %v", err)
	}

	rec := doQuery(t, server, "/api/races/r1", "applicant")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var race queryhttp.RaceResponse
	if err := json.NewDecoder(rec.Body).Decode(&race); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if race.Name != "Ucka Trail" || race.Distance != "TenK" {
		t.Fatalf("unexpected race: %+v", race)
	}

	rec = doQuery(t, server, "/api/races/missing", "applicant")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetApplicationEndpoint(t *testing.T) {
	server, module := newQueryServer(t)
	app := queryports.Application{
		ID:        "a1",
		FirstName: "Ana",
		LastName:  "Horvat",
		Club:      "AK Zagreb",
		Race:      queryports.Race{ID: "r1", Name: "Biokovo Skyrace", Distance: "FiveK"},
	}
	if err := module.Store.SaveApplication(context.Background(), app); err != nil {
		t.Fatalf("seed application: %v", err)
	}

	rec := doQuery(t, server, "/api/applications/a1", "applicant")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp queryhttp.ApplicationResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Race.ID != "r1" || resp.Race.Name != "Biokovo Skyrace" {
		t.Fatalf("response must carry the embedded race snapshot: %+v", resp)
	}

	rec = doQuery(t, server, "/api/applications/missing", "applicant")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestListApplicationsByRaceEndpoint(t *testing.T) {
	server, module := newQueryServer(t)
	seed := []queryports.Application{
		{ID: "a1", FirstName: "Ana", LastName: "Horvat", Race: queryports.Race{ID: "r1"}},
		{ID: "a2", FirstName: "Ivan", LastName: "Kovac", Race: queryports.Race{ID: "r2"}},
	}
	for _, app := range seed {
		if err := module.Store.SaveApplication(context.Background(), app); err != nil {
			t.Fatalf("seed application: %v", err)
		}
	}

	rec := doQuery(t, server, "/api/applications/race/r1", "applicant")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var apps []queryhttp.ApplicationResponse
	if err := json.NewDecoder(rec.Body).Decode(&apps); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(apps) != 1 || apps[0].ID != "a1" {
		t.Fatalf("unexpected filter result: %+v", apps)
	}

	rec = doQuery(t, server, "/api/applications/race/empty", "applicant")
	if rec.Code != http.StatusOK {
		t.Fatalf("unknown race must answer 200 with empty list, got %d", rec.Code)
	}
}
