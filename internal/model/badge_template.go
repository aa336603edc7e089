package model

import "time"

// BadgeTemplate is a visual design used to render printed attendee
// badges.  At most one template per event is marked default.  Once a
// template has produced badges it is locked: the design fields (size,
// image, layout data) become immutable until an explicit force unlock.
//
// Fields:
//  ID               – primary key identifier.
//  EventID          – owning event.
//  Name             – display name.
//  Description      – free text.
//  Size             – physical badge size (e.g. "A6", "4x6").
//  TemplateImageURL – background artwork location.
//  TemplateData     – serialized layout payload (JSON).
//  IsDefault        – whether this is the event's default template.
//  IsLocked         – set once badges have been generated.
//  LockedAt         – when the lock was applied (nullable).
//  BadgesGenerated  – count of badges printed from this template.
//  CreatedAt        – creation timestamp.
//  UpdatedAt        – last update timestamp.
type BadgeTemplate struct {
	ID               uint64     // badge_templates.id
	EventID          uint64     // badge_templates.event_id
	Name             string     // badge_templates.name
	Description      string     // badge_templates.description
	Size             string     // badge_templates.size
	TemplateImageURL string     // badge_templates.template_image_url
	TemplateData     string     // badge_templates.template_data
	IsDefault        bool       // badge_templates.is_default
	IsLocked         bool       // badge_templates.is_locked
	LockedAt         *time.Time // badge_templates.locked_at (nullable)
	BadgesGenerated  uint32     // badge_templates.badges_generated_count
	CreatedAt        time.Time  // badge_templates.created_at
	UpdatedAt        time.Time  // badge_templates.updated_at
}
