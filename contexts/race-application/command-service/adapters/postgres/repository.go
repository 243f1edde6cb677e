package postgresadapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domainerrors "trailrace/contexts/race-application/command-service/domain/errors"
	"trailrace/contexts/race-application/command-service/ports"
)

type raceModel struct {
	ID       string `gorm:"column:id;primaryKey"`
	Name     string `gorm:"column:name"`
	Distance string `gorm:"column:distance"`
}

func (raceModel) TableName() string { return "races" }

func (m raceModel) toEntity() ports.Race {
	return ports.Race{
		ID:       m.ID,
		Name:     m.Name,
		Distance: ports.Distance(m.Distance),
	}
}

type applicationModel struct {
	ID        string `gorm:"column:id;primaryKey"`
	FirstName string `gorm:"column:first_name"`
	LastName  string `gorm:"column:last_name"`
	Club      string `gorm:"column:club"`
	RaceID    string `gorm:"column:race_id"`
}

func (applicationModel) TableName() string { return "applications" }

// Repository is the gorm-backed write store.
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

// AutoMigrate creates the write-side tables. Used by local runs and
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
		return ports.Race{}, classify(fmt.Errorf("get race: %w", err))
	}
	return row.toEntity(), nil
}

func (r *Repository) SaveRace(ctx context.Context, race ports.Race) error {
	row := raceModel{
		ID:       race.ID,
		Name:     race.Name,
		Distance: string(race.Distance),
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(&row).
		Error
	if err != nil {
		return classify(fmt.Errorf("save race: %w", err))
	}
	return nil
}

func (r *Repository) DeleteRace(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&raceModel{}).
		Error
	if err != nil {
		return classify(fmt.Errorf("delete race: %w", err))
	}
	return nil
}

func (r *Repository) SaveApplication(ctx context.Context, app ports.Application) error {
	row := applicationModel{
		ID:        app.ID,
		FirstName: app.FirstName,
		LastName:  app.LastName,
		Club:      app.Club,
		RaceID:    app.Race.ID,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(&row).
		Error
	if err != nil {
		return classify(fmt.Errorf("save application: %w", err))
	}
	return nil
}

func (r *Repository) DeleteApplication(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&applicationModel{}).
		Error
	if err != nil {
		return classify(fmt.Errorf("delete application: %w", err))
	}
	return nil
}

// classify folds connection-class postgres failures into the dependency
// sentinel so the transport layer can answer with a retryable status.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code[:2] == "08" {
		return errors.Join(domainerrors.ErrDependencyUnavailable, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.Join(domainerrors.ErrDependencyUnavailable, err)
	}
	return err
}

// UUIDGenerator issues random identifiers for races and applications.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(ctx context.Context) (string, error) {
	return uuid.NewString(), nil
}
