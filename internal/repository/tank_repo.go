package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pump_console/internal/models"
)

// ErrTankNotFound is returned by Update for an unknown tank id.
var ErrTankNotFound = errors.New("tank not found")

type TankSQLite struct {
	db *sql.DB
}

func NewTankSQLite(db *sql.DB) *TankSQLite {
	return &TankSQLite{db: db}
}

const (
	upsertTankSQL = `
		INSERT INTO tank_readings (id, position, name, role, capacity_l, volume_l, temperature_c, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			position=excluded.position,
			name=excluded.name,
			role=excluded.role,
			capacity_l=excluded.capacity_l,
			volume_l=excluded.volume_l,
			temperature_c=excluded.temperature_c,
			updated_at=excluded.updated_at
	`

	updateTankSQL = `
		UPDATE tank_readings SET volume_l=?, temperature_c=?, updated_at=? WHERE id=?
	`

	selectTanksSQL = `
		SELECT id, name, role, capacity_l, volume_l, temperature_c, updated_at
		FROM tank_readings ORDER BY position ASC
	`
)

// utcOrNow persists timestamps in UTC, stamping zero values with now.
func utcOrNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t.UTC()
}

// Seed upserts the configured tanks, keeping their order.
func (r *TankSQLite) Seed(ctx context.Context, tanks []models.TankReading) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, t := range tanks {
		if _, err := tx.ExecContext(ctx, upsertTankSQL,
			t.ID,
			i,
			t.Name,
			t.Role,
			t.CapacityL,
			t.VolumeL,
			t.TemperatureC,
			utcOrNow(t.UpdatedAt),
		); err != nil {
			return fmt.Errorf("seed tank %q: %w", t.ID, err)
		}
	}
	return tx.Commit()
}

// Update records a new measurement for an existing tank.
func (r *TankSQLite) Update(ctx context.Context, t models.TankReading) error {
	res, err := r.db.ExecContext(ctx, updateTankSQL, t.VolumeL, t.TemperatureC, utcOrNow(t.UpdatedAt), t.ID)
	if err != nil {
		return fmt.Errorf("update tank %q: %w", t.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update tank %q: %w", t.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrTankNotFound, t.ID)
	}
	return nil
}

// List returns all tanks in configured order.
func (r *TankSQLite) List(ctx context.Context) ([]models.TankReading, error) {
	rows, err := r.db.QueryContext(ctx, selectTanksSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.TankReading, 0, 8)
	for rows.Next() {
		var t models.TankReading
		if err := rows.Scan(
			&t.ID,
			&t.Name,
			&t.Role,
			&t.CapacityL,
			&t.VolumeL,
			&t.TemperatureC,
			&t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		t.UpdatedAt = t.UpdatedAt.UTC()
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
