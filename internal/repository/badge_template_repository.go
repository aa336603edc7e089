package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Prabhugems/AMASI-management-sub016/internal/model"
)

// BadgeTemplateRepo manages persistence for badge templates. The
// default flag is exclusive per event, enforced by a clear-then-set
// pair of writes rather than a unique constraint; a concurrent
// default-set can interleave (see DESIGN.md).
type BadgeTemplateRepo struct {
	db *sql.DB
}

// NewBadgeTemplateRepo constructs a BadgeTemplateRepo with the given DB handle.
func NewBadgeTemplateRepo(db *sql.DB) *BadgeTemplateRepo { return &BadgeTemplateRepo{db: db} }

const templateCols = `id, event_id, name, description, size, template_image_url, template_data,
	is_default, is_locked, locked_at, badges_generated_count, created_at, updated_at`

func scanTemplate(row interface{ Scan(...any) error }) (model.BadgeTemplate, error) {
	var (
		t        model.BadgeTemplate
		lockedAt sql.NullTime
	)
	err := row.Scan(&t.ID, &t.EventID, &t.Name, &t.Description, &t.Size,
		&t.TemplateImageURL, &t.TemplateData, &t.IsDefault, &t.IsLocked,
		&lockedAt, &t.BadgesGenerated, &t.CreatedAt, &t.UpdatedAt)
	if lockedAt.Valid {
		at := lockedAt.Time
		t.LockedAt = &at
	}
	return t, err
}

// Create inserts a template and populates the generated ID.
func (r *BadgeTemplateRepo) Create(ctx context.Context, t *model.BadgeTemplate) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO badge_templates
		 (event_id, name, description, size, template_image_url, template_data, is_default)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.EventID, t.Name, t.Description, t.Size, t.TemplateImageURL, t.TemplateData, t.IsDefault)
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

// GetByID fetches one template. Returns ErrNotFound when absent.
func (r *BadgeTemplateRepo) GetByID(ctx context.Context, id uint64) (model.BadgeTemplate, error) {
	t, err := scanTemplate(r.db.QueryRowContext(ctx,
		`SELECT `+templateCols+` FROM badge_templates WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return model.BadgeTemplate{}, ErrNotFound
	}
	return t, err
}

// GetDefaultForEvent returns the event's default template, falling back
// to the most recent one when no default is flagged.
func (r *BadgeTemplateRepo) GetDefaultForEvent(ctx context.Context, eventID uint64) (model.BadgeTemplate, error) {
	t, err := scanTemplate(r.db.QueryRowContext(ctx,
		`SELECT `+templateCols+` FROM badge_templates
		 WHERE event_id = ? ORDER BY is_default DESC, id DESC LIMIT 1`, eventID))
	if err == sql.ErrNoRows {
		return model.BadgeTemplate{}, ErrNotFound
	}
	return t, err
}

// ListByEvent returns all templates belonging to an event.
func (r *BadgeTemplateRepo) ListByEvent(ctx context.Context, eventID uint64) ([]model.BadgeTemplate, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+templateCols+` FROM badge_templates WHERE event_id = ? ORDER BY id`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.BadgeTemplate, 0)
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Update rewrites all mutable columns from the given struct. The lock
// policy (which fields may change while locked) is decided by the
// service layer before this is called.
func (r *BadgeTemplateRepo) Update(ctx context.Context, t *model.BadgeTemplate) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE badge_templates
		 SET name = ?, description = ?, size = ?, template_image_url = ?, template_data = ?,
		     is_default = ?, is_locked = ?, locked_at = ?
		 WHERE id = ?`,
		t.Name, t.Description, t.Size, t.TemplateImageURL, t.TemplateData,
		t.IsDefault, t.IsLocked, t.LockedAt, t.ID)
	return err
}

// ClearDefaultForEvent drops the default flag from every template of an
// event except the one being promoted. Runs as a separate statement
// from the promote write, so the exclusivity is best-effort.
func (r *BadgeTemplateRepo) ClearDefaultForEvent(ctx context.Context, eventID, keepID uint64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE badge_templates SET is_default = 0 WHERE event_id = ? AND id <> ?`,
		eventID, keepID)
	return err
}

// RecordBadgePrinted increments the generated-badge counter and sets
// the lock on first print. Called by the print gate after a successful
// print job insert.
func (r *BadgeTemplateRepo) RecordBadgePrinted(ctx context.Context, id uint64, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE badge_templates
		 SET badges_generated_count = badges_generated_count + 1,
		     is_locked = 1,
		     locked_at = IFNULL(locked_at, ?)
		 WHERE id = ?`,
		at, id)
	return err
}

// Delete removes a template. Locked templates cannot be deleted without
// force-unlocking first.
func (r *BadgeTemplateRepo) Delete(ctx context.Context, id uint64) error {
	t, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t.IsLocked {
		return ErrLocked
	}
	_, err = r.db.ExecContext(ctx, `DELETE FROM badge_templates WHERE id = ?`, id)
	return err
}
