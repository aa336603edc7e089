package model

import "time"

// Registration is one attendee's claim on one ticket type for one
// event.  The registration number is a human-readable, event-scoped
// sequence (e.g. "AMASI24-0042") and must be unique within its event.
// Rows are never physically deleted except by the admin bulk delete
// of imported rows.
//
// Fields:
//  ID               – primary key identifier.
//  EventID          – event the attendee registered for.
//  TicketTypeID     – ticket category claimed.
//  RegNumber        – event-scoped human readable number.
//  FullName         – attendee name.
//  Email            – attendee email.
//  Phone            – attendee phone.
//  Quantity         – number of admissions under this registration.
//  UnitPriceCents   – unit price at time of purchase/transfer.
//  TaxAmountCents   – tax portion of the total.
//  TotalAmountCents – unit price * quantity + tax.
//  Status           – PENDING, CONFIRMED, CANCELLED or REFUNDED.
//  CheckedIn        – whether the attendee has been checked in.
//  CheckedInAt      – when check-in happened (nullable).
//  Source           – ONLINE or IMPORT; bulk delete only touches IMPORT.
//  Notes            – free text audit trail, appended on transfer.
//  CreatedAt        – creation timestamp.
//  UpdatedAt        – last update timestamp.
type Registration struct {
	ID               uint64     // registrations.id
	EventID          uint64     // registrations.event_id
	TicketTypeID     uint64     // registrations.ticket_type_id
	RegNumber        string     // registrations.reg_number
	FullName         string     // registrations.full_name
	Email            string     // registrations.email
	Phone            string     // registrations.phone
	Quantity         uint32     // registrations.quantity
	UnitPriceCents   uint32     // registrations.unit_price_cents
	TaxAmountCents   uint32     // registrations.tax_amount_cents
	TotalAmountCents uint32     // registrations.total_amount_cents
	Status           string     // registrations.status
	CheckedIn        bool       // registrations.checked_in
	CheckedInAt      *time.Time // registrations.checked_in_at (nullable)
	Source           string     // registrations.source
	Notes            string     // registrations.notes
	CreatedAt        time.Time  // registrations.created_at
	UpdatedAt        time.Time  // registrations.updated_at
}

// Registration status values.
const (
	RegPending   = "PENDING"
	RegConfirmed = "CONFIRMED"
	RegCancelled = "CANCELLED"
	RegRefunded  = "REFUNDED"
)

// Registration source values.
const (
	SourceOnline = "ONLINE"
	SourceImport = "IMPORT"
)
