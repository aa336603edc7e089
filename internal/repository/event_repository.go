// Package repository contains the data access layer. Each repository
// wraps a *sql.DB and exposes typed CRUD methods built from
// hand-written SQL. All timestamps are stored in UTC.
package repository

import (
	"context"
	"database/sql"

	"github.com/Prabhugems/AMASI-management-sub016/internal/model"
)

// EventRepo manages persistence for events.
type EventRepo struct {
	db *sql.DB
}

// NewEventRepo constructs an EventRepo with the given DB handle.
func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

// DB exposes the underlying sql.DB so callers can begin transactions
// spanning multiple repositories.
func (r *EventRepo) DB() *sql.DB { return r.db }

const eventCols = `id, name, venue, city, starts_at, ends_at, status, created_at, updated_at`

func scanEvent(row interface{ Scan(...any) error }) (model.Event, error) {
	var e model.Event
	err := row.Scan(&e.ID, &e.Name, &e.Venue, &e.City, &e.StartsAt, &e.EndsAt,
		&e.Status, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

// Create inserts a new event and populates the generated ID and
// DB-default fields on the passed struct.
func (r *EventRepo) Create(ctx context.Context, e *model.Event) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO events (name, venue, city, starts_at, ends_at, status) VALUES (?, ?, ?, ?, ?, ?)`,
		e.Name, e.Venue, e.City, e.StartsAt, e.EndsAt, e.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = uint64(id)
	got, err := scanEvent(r.db.QueryRowContext(ctx,
		`SELECT `+eventCols+` FROM events WHERE id = ?`, e.ID))
	if err != nil {
		return err
	}
	*e = got
	return nil
}

// GetByID fetches one event. Returns ErrNotFound when absent.
func (r *EventRepo) GetByID(ctx context.Context, id uint64) (model.Event, error) {
	e, err := scanEvent(r.db.QueryRowContext(ctx,
		`SELECT `+eventCols+` FROM events WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return model.Event{}, ErrNotFound
	}
	return e, err
}

// List returns all events, newest first.
func (r *EventRepo) List(ctx context.Context) ([]model.Event, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+eventCols+` FROM events ORDER BY starts_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Update rewrites the mutable columns of an event.
func (r *EventRepo) Update(ctx context.Context, e *model.Event) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE events SET name = ?, venue = ?, city = ?, starts_at = ?, ends_at = ?, status = ? WHERE id = ?`,
		e.Name, e.Venue, e.City, e.StartsAt, e.EndsAt, e.Status, e.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// RowsAffected is 0 both for a missing row and for a no-op
		// update; distinguish by re-reading.
		if _, err := r.GetByID(ctx, e.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes an event. Fails with ErrConflict when registrations
// still reference it.
func (r *EventRepo) Delete(ctx context.Context, id uint64) error {
	var n int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM registrations WHERE event_id = ?`, id).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return ErrConflict
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}
