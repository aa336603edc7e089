package repository

import (
	"context"
	"database/sql"

	"github.com/Prabhugems/AMASI-management-sub016/internal/model"
)

// PrintJobRepo manages persistence for print jobs. For every
// (station, registration) pair completed jobs are numbered 1..K with no
// gaps; the next number is derived from MaxCompletedNumber. No locking
// is applied, so concurrent prints against the same pair can compute
// the same number.
type PrintJobRepo struct {
	db *sql.DB
}

// NewPrintJobRepo constructs a PrintJobRepo with the given DB handle.
func NewPrintJobRepo(db *sql.DB) *PrintJobRepo { return &PrintJobRepo{db: db} }

// Create inserts one print job row and populates the generated ID.
func (r *PrintJobRepo) Create(ctx context.Context, j *model.PrintJob) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO print_jobs (job_ref, station_id, registration_id, print_number, status, device_info)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		j.JobRef, j.StationID, j.RegistrationID, j.PrintNumber, j.Status, j.DeviceInfo)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	j.ID = uint64(id)
	return r.db.QueryRowContext(ctx,
		`SELECT created_at FROM print_jobs WHERE id = ?`, j.ID).Scan(&j.CreatedAt)
}

// MaxCompletedNumber returns the highest print_number among completed
// jobs for a (station, registration) pair, or 0 when none exist.
func (r *PrintJobRepo) MaxCompletedNumber(ctx context.Context, stationID, registrationID uint64) (uint32, error) {
	var n sql.NullInt64
	err := r.db.QueryRowContext(ctx,
		`SELECT MAX(print_number) FROM print_jobs
		 WHERE station_id = ? AND registration_id = ? AND status = ?`,
		stationID, registrationID, model.PrintCompleted).Scan(&n)
	if err != nil {
		return 0, err
	}
	if !n.Valid {
		return 0, nil
	}
	return uint32(n.Int64), nil
}

// ListByStation returns the job history for a station, newest first.
func (r *PrintJobRepo) ListByStation(ctx context.Context, stationID uint64) ([]model.PrintJob, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, job_ref, station_id, registration_id, print_number, status, device_info, created_at
		 FROM print_jobs WHERE station_id = ? ORDER BY id DESC`, stationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.PrintJob, 0)
	for rows.Next() {
		var j model.PrintJob
		if err := rows.Scan(&j.ID, &j.JobRef, &j.StationID, &j.RegistrationID,
			&j.PrintNumber, &j.Status, &j.DeviceInfo, &j.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}
