package repository

import (
	"context"
	"database/sql"

	"github.com/Prabhugems/AMASI-management-sub016/internal/model"
)

// SessionRepo manages persistence for program sessions.
type SessionRepo struct {
	db *sql.DB
}

// NewSessionRepo constructs a SessionRepo with the given DB handle.
func NewSessionRepo(db *sql.DB) *SessionRepo { return &SessionRepo{db: db} }

const sessionCols = `id, event_id, title, hall, session_date, start_time, end_time,
	speakers, chairpersons, moderators, created_at, updated_at`

func scanSession(row interface{ Scan(...any) error }) (model.Session, error) {
	var s model.Session
	err := row.Scan(&s.ID, &s.EventID, &s.Title, &s.Hall, &s.SessionDate,
		&s.StartTime, &s.EndTime, &s.Speakers, &s.Chairpersons, &s.Moderators,
		&s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// Create inserts a session and populates the generated ID.
func (r *SessionRepo) Create(ctx context.Context, s *model.Session) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions
		 (event_id, title, hall, session_date, start_time, end_time, speakers, chairpersons, moderators)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.EventID, s.Title, s.Hall, s.SessionDate, s.StartTime, s.EndTime,
		s.Speakers, s.Chairpersons, s.Moderators)
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

// GetByID fetches one session. Returns ErrNotFound when absent.
func (r *SessionRepo) GetByID(ctx context.Context, id uint64) (model.Session, error) {
	s, err := scanSession(r.db.QueryRowContext(ctx,
		`SELECT `+sessionCols+` FROM sessions WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return model.Session{}, ErrNotFound
	}
	return s, err
}

// ListByEvent returns all sessions of an event in program order.
func (r *SessionRepo) ListByEvent(ctx context.Context, eventID uint64) ([]model.Session, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+sessionCols+` FROM sessions WHERE event_id = ? ORDER BY session_date, start_time, id`,
		eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Session, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Update rewrites the mutable columns of a session.
func (r *SessionRepo) Update(ctx context.Context, s *model.Session) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE sessions
		 SET title = ?, hall = ?, session_date = ?, start_time = ?, end_time = ?,
		     speakers = ?, chairpersons = ?, moderators = ?
		 WHERE id = ?`,
		s.Title, s.Hall, s.SessionDate, s.StartTime, s.EndTime,
		s.Speakers, s.Chairpersons, s.Moderators, s.ID)
	return err
}

// Delete removes a session; assignments cascade via FK.
func (r *SessionRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}
