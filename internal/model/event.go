package model

import "time"

// Event represents one conference or meeting managed by the back
// office.  Every other entity (ticket types, registrations, badge
// templates, print stations, program sessions) hangs off an event.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – display name of the event.
//  Venue     – venue name, free text.
//  City      – host city, free text.
//  StartsAt  – first day of the event.
//  EndsAt    – last day of the event.
//  Status    – lifecycle state (DRAFT, PUBLISHED, ARCHIVED).
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Event struct {
	ID        uint64    // events.id
	Name      string    // events.name
	Venue     string    // events.venue
	City      string    // events.city
	StartsAt  time.Time // events.starts_at
	EndsAt    time.Time // events.ends_at
	Status    string    // events.status
	CreatedAt time.Time // events.created_at
	UpdatedAt time.Time // events.updated_at
}
