package repository

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"github.com/Prabhugems/AMASI-management-sub016/internal/model"
)

// PrintStationRepo manages persistence for print stations.
type PrintStationRepo struct {
	db *sql.DB
}

// NewPrintStationRepo constructs a PrintStationRepo with the given DB handle.
func NewPrintStationRepo(db *sql.DB) *PrintStationRepo { return &PrintStationRepo{db: db} }

const stationCols = `id, event_id, name, access_token, token_expires_at, is_active,
	allow_reprint, max_reprints, ticket_type_ids, created_at, updated_at`

func scanStation(row interface{ Scan(...any) error }) (model.PrintStation, error) {
	var (
		s         model.PrintStation
		expiresAt sql.NullTime
		allowlist sql.NullString
	)
	err := row.Scan(&s.ID, &s.EventID, &s.Name, &s.AccessToken, &expiresAt,
		&s.IsActive, &s.AllowReprint, &s.MaxReprints, &allowlist,
		&s.CreatedAt, &s.UpdatedAt)
	if expiresAt.Valid {
		t := expiresAt.Time
		s.TokenExpiresAt = &t
	}
	if allowlist.Valid {
		s.TicketTypeIDs = allowlist.String
	}
	return s, err
}

// Create inserts a station and populates the generated ID.
func (r *PrintStationRepo) Create(ctx context.Context, s *model.PrintStation) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO print_stations
		 (event_id, name, access_token, token_expires_at, allow_reprint, max_reprints, ticket_type_ids)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.EventID, s.Name, s.AccessToken, s.TokenExpiresAt, s.AllowReprint, s.MaxReprints, s.TicketTypeIDs)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	got, err := r.GetByID(ctx, s.ID)
	if err != nil {
		return err
	}
	*s = got
	return nil
}

// GetByID fetches one station. Returns ErrNotFound when absent.
func (r *PrintStationRepo) GetByID(ctx context.Context, id uint64) (model.PrintStation, error) {
	s, err := scanStation(r.db.QueryRowContext(ctx,
		`SELECT `+stationCols+` FROM print_stations WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return model.PrintStation{}, ErrNotFound
	}
	return s, err
}

// GetByToken fetches a station by its access token.
func (r *PrintStationRepo) GetByToken(ctx context.Context, token string) (model.PrintStation, error) {
	s, err := scanStation(r.db.QueryRowContext(ctx,
		`SELECT `+stationCols+` FROM print_stations WHERE access_token = ?`, strings.TrimSpace(token)))
	if err == sql.ErrNoRows {
		return model.PrintStation{}, ErrNotFound
	}
	return s, err
}

// ListByEvent returns all stations belonging to an event.
func (r *PrintStationRepo) ListByEvent(ctx context.Context, eventID uint64) ([]model.PrintStation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+stationCols+` FROM print_stations WHERE event_id = ? ORDER BY id`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.PrintStation, 0)
	for rows.Next() {
		s, err := scanStation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Update rewrites the mutable columns of a station. The access token is
// immutable after creation.
func (r *PrintStationRepo) Update(ctx context.Context, s *model.PrintStation) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE print_stations
		 SET name = ?, token_expires_at = ?, is_active = ?, allow_reprint = ?, max_reprints = ?, ticket_type_ids = ?
		 WHERE id = ?`,
		s.Name, s.TokenExpiresAt, s.IsActive, s.AllowReprint, s.MaxReprints, s.TicketTypeIDs, s.ID)
	return err
}

// Delete removes a station and its print jobs (FK cascade).
func (r *PrintStationRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM print_stations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ParseAllowlist splits the CSV ticket_type_ids column into ids. An
// empty column means no allowlist (all ticket types printable).
func ParseAllowlist(csv string) []uint64 {
	out := make([]uint64, 0)
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if id, err := strconv.ParseUint(part, 10, 64); err == nil && id > 0 {
			out = append(out, id)
		}
	}
	return out
}
