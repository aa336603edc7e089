package model

import "time"

// Session is one slot in an event's scientific program.  The
// speakers, chairpersons and moderators columns hold free text in the
// form "Name (email, phone) | Name2 (email2)" as entered by the
// program team; the assignment synchronizer parses them into
// structured FacultyAssignment rows.
type Session struct {
	ID           uint64    // sessions.id
	EventID      uint64    // sessions.event_id
	Title        string    // sessions.title
	Hall         string    // sessions.hall
	SessionDate  string    // sessions.session_date (YYYY-MM-DD)
	StartTime    string    // sessions.start_time (HH:MM)
	EndTime      string    // sessions.end_time (HH:MM)
	Speakers     string    // sessions.speakers (free text)
	Chairpersons string    // sessions.chairpersons (free text)
	Moderators   string    // sessions.moderators (free text)
	CreatedAt    time.Time // sessions.created_at
	UpdatedAt    time.Time // sessions.updated_at
}

// FacultyAssignment links a named person to a session in a specific
// role.  Uniqueness of (session, name, role) is enforced by a
// read-before-insert check in the synchronizer.  Session metadata is
// denormalized onto the row so invitation emails can be rendered
// without joining back to sessions.
type FacultyAssignment struct {
	ID          uint64     // faculty_assignments.id
	EventID     uint64     // faculty_assignments.event_id
	SessionID   uint64     // faculty_assignments.session_id
	FacultyName string     // faculty_assignments.faculty_name
	Email       string     // faculty_assignments.email
	Phone       string     // faculty_assignments.phone
	Role        string     // faculty_assignments.role
	InviteToken string     // faculty_assignments.invite_token (32 chars)
	Status      string     // faculty_assignments.status
	RespondedAt *time.Time // faculty_assignments.responded_at (nullable)
	SessionDate string     // faculty_assignments.session_date
	StartTime   string     // faculty_assignments.start_time
	EndTime     string     // faculty_assignments.end_time
	Hall        string     // faculty_assignments.hall
	CreatedAt   time.Time  // faculty_assignments.created_at
}

// Faculty roles.
const (
	RoleSpeaker     = "SPEAKER"
	RoleChairperson = "CHAIRPERSON"
	RoleModerator   = "MODERATOR"
)

// Invitation statuses.
const (
	InvitePending  = "PENDING"
	InviteAccepted = "ACCEPTED"
	InviteDeclined = "DECLINED"
)
