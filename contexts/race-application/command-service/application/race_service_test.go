package application

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"trailrace/contexts/race-application/command-service/adapters/memory"
	domainerrors "trailrace/contexts/race-application/command-service/domain/errors"
	"trailrace/contexts/race-application/command-service/ports"
	eventsv1 "trailrace/contracts/events/v1"
)

type recordingPublisher struct {
	raceCreated        []eventsv1.RaceCreated
	raceUpdated        []eventsv1.RaceUpdated
	raceDeleted        []eventsv1.RaceDeleted
	applicationCreated []eventsv1.ApplicationCreated
	applicationDeleted []eventsv1.ApplicationDeleted

	failNext error
}

func (p *recordingPublisher) fail() error {
	if err := p.failNext; err != nil {
		p.failNext = nil
		return err
	}
	return nil
}

func (p *recordingPublisher) PublishRaceCreated(ctx context.Context, event eventsv1.RaceCreated) error {
	if err := p.fail(); err != nil {
		return err
	}
	p.raceCreated = append(p.raceCreated, event)
	return nil
}

func (p *recordingPublisher) PublishRaceUpdated(ctx context.Context, event eventsv1.RaceUpdated) error {
	if err := p.fail(); err != nil {
		return err
	}
	p.raceUpdated = append(p.raceUpdated, event)
	return nil
}

func (p *recordingPublisher) PublishRaceDeleted(ctx context.Context, event eventsv1.RaceDeleted) error {
	if err := p.fail(); err != nil {
		return err
	}
	p.raceDeleted = append(p.raceDeleted, event)
	return nil
}

func (p *recordingPublisher) PublishApplicationCreated(ctx context.Context, event eventsv1.ApplicationCreated) error {
	if err := p.fail(); err != nil {
		return err
	}
	p.applicationCreated = append(p.applicationCreated, event)
	return nil
}

func (p *recordingPublisher) PublishApplicationDeleted(ctx context.Context, event eventsv1.ApplicationDeleted) error {
	if err := p.fail(); err != nil {
		return err
	}
	p.applicationDeleted = append(p.applicationDeleted, event)
	return nil
}

type sequenceIDs struct {
	next int
}

func (g *sequenceIDs) NewID(ctx context.Context) (string, error) {
	g.next++
	return fmt.Sprintf("id-%d", g.next), nil
}

func newRaceService() (RaceService, *memory.Store, *recordingPublisher) {
	store := memory.NewStore()
	publisher := &recordingPublisher{}
	service := RaceService{
		Races:     store,
		Publisher: publisher,
		IDs:       &sequenceIDs{},
	}
	return service, store, publisher
}

func TestCreateRacePersistsAndPublishes(t *testing.T) {
	service, store, publisher := newRaceService()

	race, err := service.CreateRace(context.Background(), "Zagreb Marathon", "Marathon")
	if err != nil {
		t.Fatalf("create race failed: %v", err)
	}
	if race.ID == "" {
		t.Fatalf("expected assigned race id")
	}

	stored, err := store.GetRace(context.Background(), race.ID)
	if err != nil {
		t.Fatalf("stored race not retrievable: %v", err)
	}
	if stored.Name != "Zagreb Marathon" || stored.Distance != ports.DistanceMarathon {
		t.Fatalf("unexpected stored race: %+v", stored)
	}

	if len(publisher.raceCreated) != 1 {
		t.Fatalf("expected exactly one RaceCreated event, got %d", len(publisher.raceCreated))
	}
	event := publisher.raceCreated[0]
	if event.ID != race.ID || event.Name != "Zagreb Marathon" || event.Distance != "Marathon" {
		t.Fatalf("unexpected event: %+v", event)
	}
}

func TestCreateRaceValidation(t *testing.T) {
	service, _, publisher := newRaceService()

	if _, err := service.CreateRace(context.Background(), "", "Marathon"); !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected invalid request for empty name, got %v", err)
	}
	if _, err := service.CreateRace(context.Background(), "Sljeme Trail", "Ultra"); !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected invalid request for unknown distance, got %v", err)
	}
	if len(publisher.raceCreated) != 0 {
		t.Fatalf("no event may be published for rejected input")
	}
}

func TestUpdateRaceOverwritesAndPreservesID(t *testing.T) {
	service, store, publisher := newRaceService()

	race, err := service.CreateRace(context.Background(), "Medvednica Run", "TenK")
	if err != nil {
		t.Fatalf("create race failed: %v", err)
	}

	updated, err := service.UpdateRace(context.Background(), race.ID, "Medvednica Ultra", "HalfMarathon")
	if err != nil {
		t.Fatalf("update race failed: %v", err)
	}
	if updated.ID != race.ID {
		t.Fatalf("race id must not change on update")
	}
	if updated.Name != "Medvednica Ultra" || updated.Distance != ports.DistanceHalfMarathon {
		t.Fatalf("unexpected updated race: %+v", updated)
	}

	stored, err := store.GetRace(context.Background(), race.ID)
	if err != nil {
		t.Fatalf("stored race not retrievable: %v", err)
	}
	if stored != updated {
		t.Fatalf("store and response diverged: %+v vs %+v", stored, updated)
	}

	if len(publisher.raceUpdated) != 1 {
		t.Fatalf("expected exactly one RaceUpdated event, got %d", len(publisher.raceUpdated))
	}
}

func TestUpdateRaceUnknownIDIsNotFound(t *testing.T) {
	service, _, publisher := newRaceService()

	_, err := service.UpdateRace(context.Background(), "missing", "Any", "FiveK")
	if !errors.Is(err, domainerrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if len(publisher.raceUpdated) != 0 {
		t.Fatalf("no event may be published for a failed update")
	}
}

func TestDeleteRacePublishesEvenWhenAbsent(t *testing.T) {
	service, _, publisher := newRaceService()

	if err := service.DeleteRace(context.Background(), "never-existed"); err != nil {
		t.Fatalf("delete of absent race must not fail: %v", err)
	}
	if len(publisher.raceDeleted) != 1 {
		t.Fatalf("RaceDeleted must be published regardless of prior existence")
	}
	if publisher.raceDeleted[0].ID != "never-existed" {
		t.Fatalf("unexpected event: %+v", publisher.raceDeleted[0])
	}
}

func TestCreateRacePublishFailureSurfaces(t *testing.T) {
	service, store, publisher := newRaceService()
	publisher.failNext = errors.New("broker unreachable")

	_, err := service.CreateRace(context.Background(), "Velebit Trail", "FiveK")
	if err == nil {
		t.Fatalf("expected publish failure to surface")
	}

	// The store write landed before the publish attempt; the service does
	// not roll it back.
	if _, err := store.GetRace(context.Background(), "id-1"); err != nil {
		t.Fatalf("expected the write to remain in the store: %v", err)
	}
}
