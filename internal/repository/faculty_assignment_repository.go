package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Prabhugems/AMASI-management-sub016/internal/model"
)

// FacultyAssignmentRepo manages persistence for faculty assignments.
// Uniqueness of (session, name, role) is enforced by Exists before
// Create, not by a database constraint; concurrent syncs may race.
type FacultyAssignmentRepo struct {
	db *sql.DB
}

// NewFacultyAssignmentRepo constructs a FacultyAssignmentRepo with the given DB handle.
func NewFacultyAssignmentRepo(db *sql.DB) *FacultyAssignmentRepo {
	return &FacultyAssignmentRepo{db: db}
}

const assignmentCols = `id, event_id, session_id, faculty_name, email, phone, role,
	invite_token, status, responded_at, session_date, start_time, end_time, hall, created_at`

func scanAssignment(row interface{ Scan(...any) error }) (model.FacultyAssignment, error) {
	var (
		a           model.FacultyAssignment
		respondedAt sql.NullTime
	)
	err := row.Scan(&a.ID, &a.EventID, &a.SessionID, &a.FacultyName, &a.Email, &a.Phone,
		&a.Role, &a.InviteToken, &a.Status, &respondedAt,
		&a.SessionDate, &a.StartTime, &a.EndTime, &a.Hall, &a.CreatedAt)
	if respondedAt.Valid {
		t := respondedAt.Time
		a.RespondedAt = &t
	}
	return a, err
}

// Exists reports whether an assignment row already exists for the
// natural key (session, name, role).
func (r *FacultyAssignmentRepo) Exists(ctx context.Context, sessionID uint64, name, role string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM faculty_assignments WHERE session_id = ? AND faculty_name = ? AND role = ? LIMIT 1`,
		sessionID, name, role).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create inserts one assignment row and populates the generated ID.
func (r *FacultyAssignmentRepo) Create(ctx context.Context, a *model.FacultyAssignment) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO faculty_assignments
		 (event_id, session_id, faculty_name, email, phone, role, invite_token, status,
		  session_date, start_time, end_time, hall)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.EventID, a.SessionID, a.FacultyName, a.Email, a.Phone, a.Role,
		a.InviteToken, a.Status, a.SessionDate, a.StartTime, a.EndTime, a.Hall)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}

// GetByToken fetches an assignment by its invitation token.
func (r *FacultyAssignmentRepo) GetByToken(ctx context.Context, token string) (model.FacultyAssignment, error) {
	a, err := scanAssignment(r.db.QueryRowContext(ctx,
		`SELECT `+assignmentCols+` FROM faculty_assignments WHERE invite_token = ?`, token))
	if err == sql.ErrNoRows {
		return model.FacultyAssignment{}, ErrNotFound
	}
	return a, err
}

// ListByEvent returns all assignments of an event grouped by session order.
func (r *FacultyAssignmentRepo) ListByEvent(ctx context.Context, eventID uint64) ([]model.FacultyAssignment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+assignmentCols+` FROM faculty_assignments WHERE event_id = ? ORDER BY session_id, role, id`,
		eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.FacultyAssignment, 0)
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// ListPendingWithEmail returns pending assignments of an event that
// carry an email address, used by the invitation batch send.
func (r *FacultyAssignmentRepo) ListPendingWithEmail(ctx context.Context, eventID uint64) ([]model.FacultyAssignment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+assignmentCols+` FROM faculty_assignments
		 WHERE event_id = ? AND status = ? AND email <> '' ORDER BY id`,
		eventID, model.InvitePending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.FacultyAssignment, 0)
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Respond records an accept/decline against an invitation token.
// Returns ErrInvalidState when the invitation was already answered.
func (r *FacultyAssignmentRepo) Respond(ctx context.Context, token, status string, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE faculty_assignments SET status = ?, responded_at = ? WHERE invite_token = ? AND status = ?`,
		status, at, token, model.InvitePending)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		if _, err := r.GetByToken(ctx, token); err != nil {
			return err
		}
		return ErrInvalidState
	}
	return nil
}
