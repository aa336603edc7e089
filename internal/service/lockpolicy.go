package service

import (
	"time"

	"github.com/Prabhugems/AMASI-management-sub016/internal/model"
	"github.com/Prabhugems/AMASI-management-sub016/internal/repository"
)

// TemplateUpdate is a partial update to a badge template. Nil fields
// are left unchanged.
type TemplateUpdate struct {
	Name             *string
	Description      *string
	Size             *string
	TemplateImageURL *string
	TemplateData     *string
	IsDefault        *bool
	ForceUnlock      bool
}

// touchesDesign reports whether the patch modifies a design field
// relative to the current template. Writing the same value back does
// not count as a touch.
func (u TemplateUpdate) touchesDesign(t model.BadgeTemplate) bool {
	if u.Size != nil && *u.Size != t.Size {
		return true
	}
	if u.TemplateImageURL != nil && *u.TemplateImageURL != t.TemplateImageURL {
		return true
	}
	if u.TemplateData != nil && *u.TemplateData != t.TemplateData {
		return true
	}
	return false
}

// ApplyTemplateUpdate mutates t in place according to the lock policy:
// while a template is locked and ForceUnlock is not set, only name,
// description and the default flag may change; a design-field touch
// fails with repository.ErrLocked. ForceUnlock clears the lock fields
// unconditionally before the patch is applied.
func ApplyTemplateUpdate(t *model.BadgeTemplate, u TemplateUpdate) error {
	if u.ForceUnlock {
		t.IsLocked = false
		t.LockedAt = nil
	} else if t.IsLocked && u.touchesDesign(*t) {
		return repository.ErrLocked
	}

	if u.Name != nil {
		t.Name = *u.Name
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.IsDefault != nil {
		t.IsDefault = *u.IsDefault
	}
	if !t.IsLocked {
		if u.Size != nil {
			t.Size = *u.Size
		}
		if u.TemplateImageURL != nil {
			t.TemplateImageURL = *u.TemplateImageURL
		}
		if u.TemplateData != nil {
			t.TemplateData = *u.TemplateData
		}
	}
	return nil
}

// LockTemplate marks a template locked as of the given time, keeping
// an earlier lock timestamp if one exists.
func LockTemplate(t *model.BadgeTemplate, at time.Time) {
	t.IsLocked = true
	if t.LockedAt == nil {
		utc := at.UTC()
		t.LockedAt = &utc
	}
}
