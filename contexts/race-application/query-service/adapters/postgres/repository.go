package postgresadapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domainerrors "trailrace/contexts/race-application/query-service/domain/errors"
	"trailrace/contexts/race-application/query-service/ports"
)

type raceModel struct {
	ID       string `gorm:"column:id;primaryKey"`
	Name     string `gorm:"column:name"`
	Distance string `gorm:"column:distance"`
}

func (raceModel) TableName() string { return "races" }

func (m raceModel) toEntity() ports.Race {
	return ports.Race{ID: m.ID, Name: m.Name, Distance: m.Distance}
}

// applicationModel flattens the embedded race snapshot into columns; the
// snapshot is part of the row, not a join against the races table.
type applicationModel struct {
	ID           string `gorm:"column:id;primaryKey"`
	FirstName    string `gorm:"column:first_name"`
	LastName     string `gorm:"column:last_name"`
	Club         string `gorm:"column:club"`
	RaceID       string `gorm:"column:race_id;index"`
	RaceName     string `gorm:"column:race_name"`
	RaceDistance string `gorm:"column:race_distance"`
}

func (applicationModel) TableName() string { return "applications" }

func (m applicationModel) toEntity() ports.Application {
	return ports.Application{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Club:      m.Club,
		Race: ports.Race{
			ID:       m.RaceID,
			Name:     m.RaceName,
			Distance: m.RaceDistance,
		},
	}
}

// Repository is the gorm-backed read store.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

// AutoMigrate creates the read-side tables. Used by local runs and
// integration tests; production schemas are managed externally.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&raceModel{}, &applicationModel{})
}

func (r *Repository) GetRace(ctx context.Context, id string) (ports.Race, error) {
	var row raceModel
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Race{}, fmt.Errorf("%w: race %s", domainerrors.ErrNotFound, id)
		}
		return ports.Race{}, fmt.Errorf("get race replica: %w", err)
	}
	return row.toEntity(), nil
}

func (r *Repository) ListRaces(ctx context.Context) ([]ports.Race, error) {
	var rows []raceModel
	if err := r.db.WithContext(ctx).
		Order("id").
		Find(&rows).
		Error; err != nil {
		return nil, fmt.Errorf("list race replicas: %w", err)
	}
	races := make([]ports.Race, 0, len(rows))
	for _, row := range rows {
		races = append(races, row.toEntity())
	}
	return races, nil
}

func (r *Repository) SaveRace(ctx context.Context, race ports.Race) error {
	row := raceModel{ID: race.ID, Name: race.Name, Distance: race.Distance}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(&row).
		Error
	if err != nil {
		return fmt.Errorf("save race replica: %w", err)
	}
	return nil
}

func (r *Repository) DeleteRace(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&raceModel{}).
		Error
	if err != nil {
		return fmt.Errorf("delete race replica: %w", err)
	}
	return nil
}

func (r *Repository) GetApplication(ctx context.Context, id string) (ports.Application, error) {
	var row applicationModel
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Application{}, fmt.Errorf("%w: application %s", domainerrors.ErrNotFound, id)
		}
		return ports.Application{}, fmt.Errorf("get application replica: %w", err)
	}
	return row.toEntity(), nil
}

func (r *Repository) ListApplications(ctx context.Context) ([]ports.Application, error) {
	var rows []applicationModel
	if err := r.db.WithContext(ctx).
		Order("id").
		Find(&rows).
		Error; err != nil {
		return nil, fmt.Errorf("list application replicas: %w", err)
	}
	return toApplications(rows), nil
}

func (r *Repository) ListApplicationsByRace(ctx context.Context, raceID string) ([]ports.Application, error) {
	var rows []applicationModel
	if err := r.db.WithContext(ctx).
		Where("race_id = ?", raceID).
		Order("id").
		Find(&rows).
		Error; err != nil {
		return nil, fmt.Errorf("list application replicas by race: %w", err)
	}
	return toApplications(rows), nil
}

func (r *Repository) SaveApplication(ctx context.Context, app ports.Application) error {
	row := applicationModel{
		ID:           app.ID,
		FirstName:    app.FirstName,
		LastName:     app.LastName,
		Club:         app.Club,
		RaceID:       app.Race.ID,
		RaceName:     app.Race.Name,
		RaceDistance: app.Race.Distance,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(&row).
		Error
	if err != nil {
		return fmt.Errorf("save application replica: %w", err)
	}
	return nil
}

func (r *Repository) DeleteApplication(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&applicationModel{}).
		Error
	if err != nil {
		return fmt.Errorf("delete application replica: %w", err)
	}
	return nil
}

func toApplications(rows []applicationModel) []ports.Application {
	apps := make([]ports.Application, 0, len(rows))
	for _, row := range rows {
		apps = append(apps, row.toEntity())
	}
	return apps
}
