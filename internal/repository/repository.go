package repository

import (
	"context"
	"database/sql"
	"time"

	"pump_console/internal/models"
)

// EventRepo is the append-only operator journal.
type EventRepo interface {
	Append(ctx context.Context, e models.ConsoleEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.ConsoleEvent, error)
}

// TankRepo stores the latest reading per tank, in configured order.
type TankRepo interface {
	Seed(ctx context.Context, tanks []models.TankReading) error
	Update(ctx context.Context, t models.TankReading) error
	List(ctx context.Context) ([]models.TankReading, error)
}

type Repository struct {
	EventRepo EventRepo
	TankRepo  TankRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		EventRepo: NewEventSQLite(db),
		TankRepo:  NewTankSQLite(db),
	}
}
