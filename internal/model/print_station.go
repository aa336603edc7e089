package model

import "time"

// PrintStation is a physical or kiosk endpoint authorized to print
// badges for one event.  Stations authenticate with an opaque access
// token rather than a user session.  The reprint policy and the
// optional ticket-type allowlist are enforced by the print gate.
//
// Fields:
//  ID             – primary key identifier.
//  EventID        – event this station serves.
//  Name           – display name (e.g. "Front Desk 1").
//  AccessToken    – opaque token presented by the printer client.
//  TokenExpiresAt – token validity cutoff (nullable = no expiry).
//  IsActive       – stations can be disabled without deleting them.
//  AllowReprint   – whether any print beyond the first is allowed.
//  MaxReprints    – ceiling on the per-registration print number.
//  TicketTypeIDs  – comma separated allowlist of ticket type ids;
//                   empty means all ticket types are printable.
//  CreatedAt      – creation timestamp.
//  UpdatedAt      – last update timestamp.
type PrintStation struct {
	ID             uint64     // print_stations.id
	EventID        uint64     // print_stations.event_id
	Name           string     // print_stations.name
	AccessToken    string     // print_stations.access_token
	TokenExpiresAt *time.Time // print_stations.token_expires_at (nullable)
	IsActive       bool       // print_stations.is_active
	AllowReprint   bool       // print_stations.allow_reprint
	MaxReprints    uint32     // print_stations.max_reprints
	TicketTypeIDs  string     // print_stations.ticket_type_ids (CSV)
	CreatedAt      time.Time  // print_stations.created_at
	UpdatedAt      time.Time  // print_stations.updated_at
}

// PrintJob records one print attempt for a (station, registration)
// pair.  PrintNumber is the prior maximum for the pair plus one, so
// completed jobs for a pair are numbered 1..K with no gaps as long as
// prints against the same pair do not race.
type PrintJob struct {
	ID             uint64    // print_jobs.id
	JobRef         string    // print_jobs.job_ref (UUID)
	StationID      uint64    // print_jobs.station_id
	RegistrationID uint64    // print_jobs.registration_id
	PrintNumber    uint32    // print_jobs.print_number
	Status         string    // print_jobs.status (COMPLETED, FAILED)
	DeviceInfo     string    // print_jobs.device_info
	CreatedAt      time.Time // print_jobs.created_at
}

// PrintJob status values.
const (
	PrintCompleted = "COMPLETED"
	PrintFailed    = "FAILED"
)
