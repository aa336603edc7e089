package model

import "time"

// TicketType is a purchasable admission category belonging to exactly
// one event.  Inventory is tracked with a sold counter next to the
// total; `QuantitySold <= QuantityTotal` is a soft constraint checked
// by callers before incrementing, not enforced by the database.
//
// Fields:
//  ID            – primary key identifier.
//  EventID       – owning event.
//  Name          – display name (e.g. "Delegate", "Faculty").
//  PriceCents    – unit price in minor currency units.
//  TaxPercent    – tax percentage applied on top of the unit price.
//  QuantityTotal – number of tickets available for sale.
//  QuantitySold  – number of tickets currently counted as sold.
//  Status        – one of ACTIVE, HIDDEN, SOLDOUT, DISABLED.
//  CreatedAt     – creation timestamp.
//  UpdatedAt     – last update timestamp.
type TicketType struct {
	ID            uint64    // ticket_types.id
	EventID       uint64    // ticket_types.event_id
	Name          string    // ticket_types.name
	PriceCents    uint32    // ticket_types.price_cents
	TaxPercent    float64   // ticket_types.tax_percent
	QuantityTotal uint32    // ticket_types.quantity_total
	QuantitySold  uint32    // ticket_types.quantity_sold
	Status        string    // ticket_types.status
	CreatedAt     time.Time // ticket_types.created_at
	UpdatedAt     time.Time // ticket_types.updated_at
}

// TicketType status values.
const (
	TicketActive   = "ACTIVE"
	TicketHidden   = "HIDDEN"
	TicketSoldOut  = "SOLDOUT"
	TicketDisabled = "DISABLED"
)
