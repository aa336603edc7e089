package service

import (
	"errors"
	"testing"
	"time"

	"github.com/Prabhugems/AMASI-management-sub016/internal/model"
	"github.com/Prabhugems/AMASI-management-sub016/internal/repository"
)

func str(s string) *string { return &s }
func boolp(b bool) *bool   { return &b }

func lockedTemplate() model.BadgeTemplate {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	return model.BadgeTemplate{
		ID:              5,
		EventID:         1,
		Name:            "Delegate badge",
		Size:            "A6",
		TemplateData:    `{"fields":[]}`,
		IsLocked:        true,
		LockedAt:        &at,
		BadgesGenerated: 120,
	}
}

func TestLockedTemplateRejectsDesignChanges(t *testing.T) {
	tests := []struct {
		name  string
		patch TemplateUpdate
	}{
		{"size", TemplateUpdate{Size: str("A7")}},
		{"image", TemplateUpdate{TemplateImageURL: str("https://cdn/img.png")}},
		{"data", TemplateUpdate{TemplateData: str(`{"fields":[1]}`)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tpl := lockedTemplate()
			err := ApplyTemplateUpdate(&tpl, tc.patch)
			if !errors.Is(err, repository.ErrLocked) {
				t.Fatalf("err = %v, want ErrLocked", err)
			}
		})
	}
}

func TestLockedTemplateAllowsMetadataChanges(t *testing.T) {
	tpl := lockedTemplate()
	err := ApplyTemplateUpdate(&tpl, TemplateUpdate{
		Name:        str("Faculty badge"),
		Description: str("updated"),
		IsDefault:   boolp(true),
	})
	if err != nil {
		t.Fatalf("metadata update on locked template: %v", err)
	}
	if tpl.Name != "Faculty badge" || !tpl.IsDefault {
		t.Errorf("metadata not applied: %+v", tpl)
	}
	if !tpl.IsLocked {
		t.Error("lock must survive a metadata update")
	}
}

func TestLockedTemplateAllowsRewritingSameDesignValue(t *testing.T) {
	tpl := lockedTemplate()
	if err := ApplyTemplateUpdate(&tpl, TemplateUpdate{Size: str("A6")}); err != nil {
		t.Fatalf("writing the unchanged size back must not trip the lock: %v", err)
	}
}

func TestForceUnlockClearsLockAndAppliesDesign(t *testing.T) {
	tpl := lockedTemplate()
	err := ApplyTemplateUpdate(&tpl, TemplateUpdate{
		Size:        str("4x6"),
		ForceUnlock: true,
	})
	if err != nil {
		t.Fatalf("force unlock: %v", err)
	}
	if tpl.IsLocked || tpl.LockedAt != nil {
		t.Errorf("lock fields not cleared: locked=%v at=%v", tpl.IsLocked, tpl.LockedAt)
	}
	if tpl.Size != "4x6" {
		t.Errorf("size = %q, want 4x6", tpl.Size)
	}
}

func TestLockTemplateKeepsFirstTimestamp(t *testing.T) {
	tpl := lockedTemplate()
	first := *tpl.LockedAt
	LockTemplate(&tpl, time.Now())
	if !tpl.LockedAt.Equal(first) {
		t.Errorf("locked_at moved from %v to %v", first, tpl.LockedAt)
	}

	fresh := model.BadgeTemplate{}
	LockTemplate(&fresh, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	if !fresh.IsLocked || fresh.LockedAt == nil {
		t.Error("fresh template not locked")
	}
}
