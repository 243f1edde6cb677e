package application

import (
	"context"
	"errors"
	"testing"

	"trailrace/contexts/race-application/command-service/adapters/memory"
	domainerrors "trailrace/contexts/race-application/command-service/domain/errors"
)

func newApplicationService() (ApplicationService, RaceService, *memory.Store, *recordingPublisher) {
	store := memory.NewStore()
	publisher := &recordingPublisher{}
	ids := &sequenceIDs{}
	races := RaceService{Races: store, Publisher: publisher, IDs: ids}
	applications := ApplicationService{
		Applications: store,
		Races:        store,
		Publisher:    publisher,
		IDs:          ids,
	}
	return applications, races, store, publisher
}

func TestCreateApplicationEmbedsRaceSnapshot(t *testing.T) {
	applications, races, _, publisher := newApplicationService()

	race, err := races.CreateRace(context.Background(), "Paklenica Trail", "HalfMarathon")
	if err != nil {
		t.Fatalf("create race failed: %v", err)
	}

	app, err := applications.CreateApplication(context.Background(), "Ana", "Horvat", "AK Zagreb", race.ID)
	if err != nil {
		t.Fatalf("create application failed: %v", err)
	}
	if app.Race.ID != race.ID || app.Race.Name != "Paklenica Trail" {
		t.Fatalf("application must carry the referenced race: %+v", app.Race)
	}

	if len(publisher.applicationCreated) != 1 {
		t.Fatalf("expected exactly one ApplicationCreated event, got %d", len(publisher.applicationCreated))
	}
	event := publisher.applicationCreated[0]
	if event.Race.ID != race.ID || event.Race.Distance != "HalfMarathon" {
		t.Fatalf("event must embed the race snapshot: %+v", event.Race)
	}
	if event.FirstName != "Ana" || event.LastName != "Horvat" || event.Club != "AK Zagreb" {
		t.Fatalf("unexpected event payload: %+v", event)
	}
}

func TestCreateApplicationSnapshotIsNotRefreshed(t *testing.T) {
	applications, races, _, publisher := newApplicationService()

	race, err := races.CreateRace(context.Background(), "Ucka Trail", "TenK")
	if err != nil {
		t.Fatalf("create race failed: %v", err)
	}

	if _, err := applications.CreateApplication(context.Background(), "Ivan", "Kovac", "", race.ID); err != nil {
		t.Fatalf("create application failed: %v", err)
	}
	if _, err := races.UpdateRace(context.Background(), race.ID, "Ucka Ultra", "Marathon"); err != nil {
		t.Fatalf("update race failed: %v", err)
	}

	// The embedded snapshot reflects the race at application time only.
	event := publisher.applicationCreated[0]
	if event.Race.Name != "Ucka Trail" || event.Race.Distance != "TenK" {
		t.Fatalf("snapshot must not track later race updates: %+v", event.Race)
	}
}

func TestCreateApplicationUnknownRace(t *testing.T) {
	applications, _, _, publisher := newApplicationService()

	_, err := applications.CreateApplication(context.Background(), "Ana", "Horvat", "", "no-such-race")
	if !errors.Is(err, domainerrors.ErrNotFound) {
		t.Fatalf("expected not found for unknown race, got %v", err)
	}
	if len(publisher.applicationCreated) != 0 {
		t.Fatalf("no event may be published when the race lookup fails")
	}
}

func TestCreateApplicationValidation(t *testing.T) {
	applications, _, _, _ := newApplicationService()

	cases := []struct {
		name                              string
		firstName, lastName, club, raceID string
	}{
		{"empty first name", "", "Horvat", "", "race-1"},
		{"empty last name", "Ana", "", "", "race-1"},
		{"empty race id", "Ana", "Horvat", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := applications.CreateApplication(context.Background(), tc.firstName, tc.lastName, tc.club, tc.raceID)
			if !errors.Is(err, domainerrors.ErrInvalidRequest) {
				t.Fatalf("expected invalid request, got %v", err)
			}
		})
	}
}

func TestCreateApplicationAllowsEmptyClub(t *testing.T) {
	applications, races, _, _ := newApplicationService()

	race, err := races.CreateRace(context.Background(), "Biokovo Skyrace", "FiveK")
	if err != nil {
		t.Fatalf("create race failed: %v", err)
	}

	app, err := applications.CreateApplication(context.Background(), "Marko", "Babic", "", race.ID)
	if err != nil {
		t.Fatalf("club is optional, create failed: %v", err)
	}
	if app.Club != "" {
		t.Fatalf("unexpected club value: %q", app.Club)
	}
}

func TestDeleteApplicationPublishesEvenWhenAbsent(t *testing.T) {
	applications, _, _, publisher := newApplicationService()

	if err := applications.DeleteApplication(context.Background(), "ghost"); err != nil {
		t.Fatalf("delete of absent application must not fail: %v", err)
	}
	if len(publisher.applicationDeleted) != 1 {
		t.Fatalf("ApplicationDeleted must be published regardless of prior existence")
	}
	if publisher.applicationDeleted[0].ID != "ghost" {
		t.Fatalf("unexpected event: %+v", publisher.applicationDeleted[0])
	}
}

func TestDeleteApplicationEmptyID(t *testing.T) {
	applications, _, _, publisher := newApplicationService()

	if err := applications.DeleteApplication(context.Background(), "  "); !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected invalid request, got %v", err)
	}
	if len(publisher.applicationDeleted) != 0 {
		t.Fatalf("no event may be published for rejected input")
	}
}
