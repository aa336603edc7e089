package repository

import (
	"context"
	"database/sql"

	"github.com/Prabhugems/AMASI-management-sub016/internal/model"
)

// TicketTypeRepo manages persistence for ticket types and their
// sold/available counters. The counters are mutated with plain
// read-then-write sequences; callers are expected to re-check
// availability before incrementing (see DESIGN.md on oversell).
type TicketTypeRepo struct {
	db *sql.DB
}

// NewTicketTypeRepo constructs a TicketTypeRepo with the given DB handle.
func NewTicketTypeRepo(db *sql.DB) *TicketTypeRepo { return &TicketTypeRepo{db: db} }

const ticketCols = `id, event_id, name, price_cents, tax_percent, quantity_total, quantity_sold, status, created_at, updated_at`

func scanTicket(row interface{ Scan(...any) error }) (model.TicketType, error) {
	var t model.TicketType
	err := row.Scan(&t.ID, &t.EventID, &t.Name, &t.PriceCents, &t.TaxPercent,
		&t.QuantityTotal, &t.QuantitySold, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

// Create inserts a ticket type and populates defaults on the struct.
func (r *TicketTypeRepo) Create(ctx context.Context, t *model.TicketType) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO ticket_types (event_id, name, price_cents, tax_percent, quantity_total, status) VALUES (?, ?, ?, ?, ?, ?)`,
		t.EventID, t.Name, t.PriceCents, t.TaxPercent, t.QuantityTotal, t.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	got, err := r.GetByID(ctx, t.ID)
	if err != nil {
		return err
	}
	*t = got
	return nil
}

// GetByID fetches one ticket type. Returns ErrNotFound when absent.
func (r *TicketTypeRepo) GetByID(ctx context.Context, id uint64) (model.TicketType, error) {
	t, err := scanTicket(r.db.QueryRowContext(ctx,
		`SELECT `+ticketCols+` FROM ticket_types WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return model.TicketType{}, ErrNotFound
	}
	return t, err
}

// ListByEvent returns all ticket types belonging to an event.
func (r *TicketTypeRepo) ListByEvent(ctx context.Context, eventID uint64) ([]model.TicketType, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+ticketCols+` FROM ticket_types WHERE event_id = ? ORDER BY id`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.TicketType, 0)
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Update rewrites the mutable columns of a ticket type. Counter fields
// are managed by the Adjust* methods, not here.
func (r *TicketTypeRepo) Update(ctx context.Context, t *model.TicketType) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE ticket_types SET name = ?, price_cents = ?, tax_percent = ?, quantity_total = ?, status = ? WHERE id = ?`,
		t.Name, t.PriceCents, t.TaxPercent, t.QuantityTotal, t.Status, t.ID)
	return err
}

// IncrementSold adds qty to quantity_sold.
func (r *TicketTypeRepo) IncrementSold(ctx context.Context, id uint64, qty uint32) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE ticket_types SET quantity_sold = quantity_sold + ? WHERE id = ?`, qty, id)
	return err
}

// DecrementSold subtracts qty from quantity_sold, floored at zero.
func (r *TicketTypeRepo) DecrementSold(ctx context.Context, id uint64, qty uint32) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE ticket_types SET quantity_sold = IF(quantity_sold > ?, quantity_sold - ?, 0) WHERE id = ?`,
		qty, qty, id)
	return err
}

// Delete removes a ticket type that has no registrations.
func (r *TicketTypeRepo) Delete(ctx context.Context, id uint64) error {
	var n int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM registrations WHERE ticket_type_id = ?`, id).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return ErrConflict
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM ticket_types WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}
