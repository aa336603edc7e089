package repository

import (
	"context"
	"database/sql"

	"github.com/Prabhugems/AMASI-management-sub016/internal/model"
)

// NotificationLogRepo appends send outcomes. Write-only on the hot
// path; the listing exists for back-office troubleshooting.
type NotificationLogRepo struct {
	db *sql.DB
}

// NewNotificationLogRepo constructs a NotificationLogRepo with the given DB handle.
func NewNotificationLogRepo(db *sql.DB) *NotificationLogRepo {
	return &NotificationLogRepo{db: db}
}

// Append inserts one outcome row.
func (r *NotificationLogRepo) Append(ctx context.Context, l *model.NotificationLog) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO notification_logs (message_ref, channel, recipient, template, status, error)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		l.MessageRef, l.Channel, l.Recipient, l.Template, l.Status, l.Error)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	l.ID = uint64(id)
	return nil
}

// ListRecent returns the most recent outcomes, newest first.
func (r *NotificationLogRepo) ListRecent(ctx context.Context, limit int) ([]model.NotificationLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, message_ref, channel, recipient, template, status, error, created_at
		 FROM notification_logs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.NotificationLog, 0)
	for rows.Next() {
		var l model.NotificationLog
		if err := rows.Scan(&l.ID, &l.MessageRef, &l.Channel, &l.Recipient,
			&l.Template, &l.Status, &l.Error, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
