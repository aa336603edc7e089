package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/Prabhugems/AMASI-management-sub016/internal/model"
)

// RegistrationRepo manages persistence for registrations. Registration
// numbers are event-scoped and generated by reading the latest number
// for the event and incrementing its numeric suffix; the repo only
// stores what it is given.
type RegistrationRepo struct {
	db *sql.DB
}

// NewRegistrationRepo constructs a RegistrationRepo with the given DB handle.
func NewRegistrationRepo(db *sql.DB) *RegistrationRepo { return &RegistrationRepo{db: db} }

// DB exposes the underlying sql.DB for callers that need transactions
// spanning multiple repositories.
func (r *RegistrationRepo) DB() *sql.DB { return r.db }

const regCols = `id, event_id, ticket_type_id, reg_number, full_name, email, phone, quantity,
	unit_price_cents, tax_amount_cents, total_amount_cents, status, checked_in, checked_in_at,
	source, notes, created_at, updated_at`

func scanRegistration(row interface{ Scan(...any) error }) (model.Registration, error) {
	var (
		reg       model.Registration
		checkedAt sql.NullTime
	)
	err := row.Scan(&reg.ID, &reg.EventID, &reg.TicketTypeID, &reg.RegNumber,
		&reg.FullName, &reg.Email, &reg.Phone, &reg.Quantity,
		&reg.UnitPriceCents, &reg.TaxAmountCents, &reg.TotalAmountCents,
		&reg.Status, &reg.CheckedIn, &checkedAt,
		&reg.Source, &reg.Notes, &reg.CreatedAt, &reg.UpdatedAt)
	if checkedAt.Valid {
		t := checkedAt.Time
		reg.CheckedInAt = &t
	}
	return reg, err
}

// Create inserts a registration row and populates the generated ID.
func (r *RegistrationRepo) Create(ctx context.Context, reg *model.Registration) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO registrations
		 (event_id, ticket_type_id, reg_number, full_name, email, phone, quantity,
		  unit_price_cents, tax_amount_cents, total_amount_cents, status, source, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		reg.EventID, reg.TicketTypeID, reg.RegNumber, reg.FullName, reg.Email, reg.Phone,
		reg.Quantity, reg.UnitPriceCents, reg.TaxAmountCents, reg.TotalAmountCents,
		reg.Status, reg.Source, reg.Notes)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	reg.ID = uint64(id)
	got, err := r.GetByID(ctx, reg.ID)
	if err != nil {
		return err
	}
	*reg = got
	return nil
}

// GetByID fetches one registration. Returns ErrNotFound when absent.
func (r *RegistrationRepo) GetByID(ctx context.Context, id uint64) (model.Registration, error) {
	reg, err := scanRegistration(r.db.QueryRowContext(ctx,
		`SELECT `+regCols+` FROM registrations WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return model.Registration{}, ErrNotFound
	}
	return reg, err
}

// GetByNumber fetches a registration by its event-scoped number.
func (r *RegistrationRepo) GetByNumber(ctx context.Context, eventID uint64, number string) (model.Registration, error) {
	reg, err := scanRegistration(r.db.QueryRowContext(ctx,
		`SELECT `+regCols+` FROM registrations WHERE event_id = ? AND reg_number = ?`,
		eventID, strings.TrimSpace(number)))
	if err == sql.ErrNoRows {
		return model.Registration{}, ErrNotFound
	}
	return reg, err
}

// LatestNumber returns the most recently issued registration number for
// an event, or "" when the event has no registrations yet. Ordering by
// id rather than by the number string keeps zero-padded and unpadded
// suffixes from sorting wrong.
func (r *RegistrationRepo) LatestNumber(ctx context.Context, eventID uint64) (string, error) {
	var number string
	err := r.db.QueryRowContext(ctx,
		`SELECT reg_number FROM registrations WHERE event_id = ? ORDER BY id DESC LIMIT 1`,
		eventID).Scan(&number)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return number, err
}

// ListByEvent returns registrations for an event, optionally filtered
// by status. Pass "" to list all.
func (r *RegistrationRepo) ListByEvent(ctx context.Context, eventID uint64, status string) ([]model.Registration, error) {
	q := `SELECT ` + regCols + ` FROM registrations WHERE event_id = ?`
	args := []any{eventID}
	if status != "" {
		q += ` AND status = ?`
		args = append(args, status)
	}
	q += ` ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Registration, 0)
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, reg)
	}
	return out, rows.Err()
}

// UpdateStatus sets the status column only.
func (r *RegistrationRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE registrations SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// MarkCheckedIn sets the checked-in flag and timestamp. Calling it on
// an already checked-in registration is a no-op, which makes check-in
// idempotent.
func (r *RegistrationRepo) MarkCheckedIn(ctx context.Context, id uint64, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE registrations SET checked_in = 1, checked_in_at = ? WHERE id = ? AND checked_in = 0`,
		at, id)
	return err
}

// ApplyTransfer rewrites the event/ticket/pricing columns of a
// registration in one statement and appends the audit note. It is the
// final write of the transfer flow; the counter adjustments happen in
// TicketTypeRepo.
func (r *RegistrationRepo) ApplyTransfer(ctx context.Context, id uint64, eventID, ticketTypeID uint64,
	regNumber string, unitPrice, taxAmount, totalAmount uint32, note string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE registrations
		 SET event_id = ?, ticket_type_id = ?, reg_number = ?,
		     unit_price_cents = ?, tax_amount_cents = ?, total_amount_cents = ?,
		     notes = CONCAT(notes, ?)
		 WHERE id = ?`,
		eventID, ticketTypeID, regNumber, unitPrice, taxAmount, totalAmount, note, id)
	return err
}

// BulkDeleteImported removes imported registrations for an event and
// returns how many rows were deleted. ONLINE rows are never touched.
func (r *RegistrationRepo) BulkDeleteImported(ctx context.Context, eventID uint64) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM registrations WHERE event_id = ? AND source = ?`,
		eventID, model.SourceImport)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// CountByStatus returns a status -> count map for an event.
func (r *RegistrationRepo) CountByStatus(ctx context.Context, eventID uint64) (map[string]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM registrations WHERE event_id = ? GROUP BY status`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[string]int64)
	for rows.Next() {
		var (
			status string
			n      int64
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		out[status] = n
	}
	return out, rows.Err()
}

// CountCheckedIn returns how many registrations of an event are checked in.
func (r *RegistrationRepo) CountCheckedIn(ctx context.Context, eventID uint64) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM registrations WHERE event_id = ? AND checked_in = 1`, eventID).Scan(&n)
	return n, err
}
