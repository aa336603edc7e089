package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Prabhugems/AMASI-management-sub016/internal/model"
	"github.com/Prabhugems/AMASI-management-sub016/internal/queue"
	"github.com/Prabhugems/AMASI-management-sub016/internal/repository"
	"github.com/Prabhugems/AMASI-management-sub016/internal/service"
)

// RegistrationHandler serves attendee registrations: creation, status
// changes, check-in, the cross-event transfer and the bulk import and
// delete flows.
type RegistrationHandler struct {
	Events  *repository.EventRepo
	Tickets *repository.TicketTypeRepo
	Regs    *repository.RegistrationRepo
	Log     zerolog.Logger
}

func NewRegistrationHandler(e *repository.EventRepo, t *repository.TicketTypeRepo,
	r *repository.RegistrationRepo, log zerolog.Logger) *RegistrationHandler {
	if e == nil || t == nil || r == nil {
		panic("nil repository passed to NewRegistrationHandler")
	}
	return &RegistrationHandler{Events: e, Tickets: t, Regs: r, Log: log}
}

type registrationReq struct {
	TicketTypeID uint64 `json:"ticket_type_id" validate:"required"`
	FullName     string `json:"full_name" validate:"required,max=255"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone" validate:"max=32"`
	Quantity     uint32 `json:"quantity" validate:"omitempty,gte=1,lte=100"`
	Status       string `json:"status" validate:"omitempty,oneof=PENDING CONFIRMED"`
	Notes        string `json:"notes"`
}

type transferReq struct {
	NewEventID      uint64 `json:"new_event_id" validate:"required"`
	NewTicketTypeID uint64 `json:"new_ticket_type_id" validate:"required"`
	Notes           string `json:"notes"`
}

// Create registers an attendee under POST /v1/events/:id/registrations.
// A confirmed registration consumes inventory immediately; the
// availability check and the counter increment are separate statements,
// so concurrent confirmed creates can oversell (see DESIGN.md).
func (h *RegistrationHandler) Create(c echo.Context) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	var req registrationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	status := req.Status
	if status == "" {
		status = model.RegConfirmed
	}
	qty := req.Quantity
	if qty == 0 {
		qty = 1
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	ev, err := h.Events.GetByID(ctx, eventID)
	if err != nil {
		return writeRepoError(c, err, "load event failed")
	}
	ticket, err := h.Tickets.GetByID(ctx, req.TicketTypeID)
	if err != nil {
		return writeRepoError(c, err, "load ticket type failed")
	}
	if ticket.EventID != ev.ID {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "ticket type does not belong to event"})
	}
	if ticket.Status != model.TicketActive {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "ticket type is " + ticket.Status})
	}
	if status == model.RegConfirmed {
		if ticket.QuantityTotal < ticket.QuantitySold ||
			ticket.QuantityTotal-ticket.QuantitySold < qty {
			return writeRepoError(c, repository.ErrCapacityExceeded, "")
		}
	}

	latest, err := h.Regs.LatestNumber(ctx, ev.ID)
	if err != nil {
		return writeRepoError(c, err, "allocate registration number failed")
	}
	tax, total := service.ComputeAmounts(ticket.PriceCents, ticket.TaxPercent, qty)
	reg := model.Registration{
		EventID:          ev.ID,
		TicketTypeID:     ticket.ID,
		RegNumber:        service.NextRegNumber(latest, service.DefaultRegPrefix(ev.ID)),
		FullName:         strings.TrimSpace(req.FullName),
		Email:            strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:            strings.TrimSpace(req.Phone),
		Quantity:         qty,
		UnitPriceCents:   ticket.PriceCents,
		TaxAmountCents:   tax,
		TotalAmountCents: total,
		Status:           status,
		Source:           model.SourceOnline,
		Notes:            req.Notes,
	}
	if err := h.Regs.Create(ctx, &reg); err != nil {
		return writeRepoError(c, err, "create registration failed")
	}
	if status == model.RegConfirmed {
		if err := h.Tickets.IncrementSold(ctx, ticket.ID, qty); err != nil {
			h.Log.Warn().Err(err).Uint64("ticket_type_id", ticket.ID).Msg("increment sold failed")
		}
		h.notifyConfirmed(reg, ev, ticket)
	}
	return c.JSON(http.StatusCreated, registrationJSON(reg))
}

// notifyConfirmed queues the confirmation email without blocking the
// request. Publish failures are logged inside the publisher.
func (h *RegistrationHandler) notifyConfirmed(reg model.Registration, ev model.Event, ticket model.TicketType) {
	if reg.Email == "" {
		return
	}
	msg := queue.NotificationMessage{
		Template: "registration_confirmed",
		Email:    reg.Email,
		Phone:    reg.Phone,
		Subject:  "Registration confirmed for {{event}}",
		Body: "Dear {{name}},\n\nYour registration {{number}} for {{event}} ({{ticket}}) is confirmed." +
			"\nPlease carry this number to the registration desk.\n",
		Vars: map[string]string{
			"name":   reg.FullName,
			"number": reg.RegNumber,
			"event":  ev.Name,
			"ticket": ticket.Name,
		},
	}
	log := h.Log
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = queue.PublishNotification(ctx, msg, log)
	}()
}

func (h *RegistrationHandler) ListByEvent(c echo.Context) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	regs, err := h.Regs.ListByEvent(ctx, eventID, strings.ToUpper(c.QueryParam("status")))
	if err != nil {
		return writeRepoError(c, err, "list registrations failed")
	}
	out := make([]echo.Map, 0, len(regs))
	for _, r := range regs {
		out = append(out, registrationJSON(r))
	}
	return c.JSON(http.StatusOK, echo.Map{"registrations": out})
}

func (h *RegistrationHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid registration id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	reg, err := h.Regs.GetByID(ctx, id)
	if err != nil {
		return writeRepoError(c, err, "load registration failed")
	}
	return c.JSON(http.StatusOK, registrationJSON(reg))
}

// UpdateStatus moves a registration between lifecycle states and keeps
// the sold counter in step: leaving CONFIRMED releases inventory,
// entering it consumes inventory after an availability check.
func (h *RegistrationHandler) UpdateStatus(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid registration id"})
	}
	var req struct {
		Status string `json:"status" validate:"required,oneof=PENDING CONFIRMED CANCELLED REFUNDED"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	reg, err := h.Regs.GetByID(ctx, id)
	if err != nil {
		return writeRepoError(c, err, "load registration failed")
	}
	if reg.Status == req.Status {
		return c.JSON(http.StatusOK, registrationJSON(reg))
	}
	if reg.CheckedIn {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "registration is checked in"})
	}

	wasConfirmed := reg.Status == model.RegConfirmed
	nowConfirmed := req.Status == model.RegConfirmed
	if nowConfirmed && !wasConfirmed {
		ticket, err := h.Tickets.GetByID(ctx, reg.TicketTypeID)
		if err != nil {
			return writeRepoError(c, err, "load ticket type failed")
		}
		if ticket.QuantityTotal < ticket.QuantitySold ||
			ticket.QuantityTotal-ticket.QuantitySold < reg.Quantity {
			return writeRepoError(c, repository.ErrCapacityExceeded, "")
		}
	}
	if err := h.Regs.UpdateStatus(ctx, id, req.Status); err != nil {
		return writeRepoError(c, err, "update status failed")
	}
	if wasConfirmed && !nowConfirmed {
		if err := h.Tickets.DecrementSold(ctx, reg.TicketTypeID, reg.Quantity); err != nil {
			h.Log.Warn().Err(err).Uint64("ticket_type_id", reg.TicketTypeID).Msg("decrement sold failed")
		}
	} else if nowConfirmed && !wasConfirmed {
		if err := h.Tickets.IncrementSold(ctx, reg.TicketTypeID, reg.Quantity); err != nil {
			h.Log.Warn().Err(err).Uint64("ticket_type_id", reg.TicketTypeID).Msg("increment sold failed")
		}
	}
	reg.Status = req.Status
	return c.JSON(http.StatusOK, registrationJSON(reg))
}

// CheckIn sets the checked-in flag. Repeating the call is a no-op: the
// update is guarded by checked_in = 0 in SQL.
func (h *RegistrationHandler) CheckIn(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid registration id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	reg, err := h.Regs.GetByID(ctx, id)
	if err != nil {
		return writeRepoError(c, err, "load registration failed")
	}
	if reg.Status != model.RegConfirmed {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "registration is " + reg.Status})
	}
	if err := h.Regs.MarkCheckedIn(ctx, id, time.Now().UTC()); err != nil {
		return writeRepoError(c, err, "check-in failed")
	}
	reg, err = h.Regs.GetByID(ctx, id)
	if err != nil {
		return writeRepoError(c, err, "load registration failed")
	}
	return c.JSON(http.StatusOK, registrationJSON(reg))
}

// Transfer moves a registration to another event and ticket type. The
// rules live in service.PlanTransfer; this handler loads the rows,
// asks for a plan and applies its three writes in order.
func (h *RegistrationHandler) Transfer(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid registration id"})
	}
	var req transferReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	reg, err := h.Regs.GetByID(ctx, id)
	if err != nil {
		return writeRepoError(c, err, "load registration failed")
	}
	fromEvent, err := h.Events.GetByID(ctx, reg.EventID)
	if err != nil {
		return writeRepoError(c, err, "load source event failed")
	}
	fromTicket, err := h.Tickets.GetByID(ctx, reg.TicketTypeID)
	if err != nil {
		return writeRepoError(c, err, "load source ticket failed")
	}
	toEvent, err := h.Events.GetByID(ctx, req.NewEventID)
	if err != nil {
		return writeRepoError(c, err, "load target event failed")
	}
	toTicket, err := h.Tickets.GetByID(ctx, req.NewTicketTypeID)
	if err != nil {
		return writeRepoError(c, err, "load target ticket failed")
	}
	latest, err := h.Regs.LatestNumber(ctx, toEvent.ID)
	if err != nil {
		return writeRepoError(c, err, "allocate registration number failed")
	}

	plan, err := service.PlanTransfer(reg, toTicket, toEvent, latest, time.Now())
	if err != nil {
		return writeRepoError(c, err, "transfer failed")
	}

	note := plan.Note
	if strings.TrimSpace(req.Notes) != "" {
		note += fmt.Sprintf("\n[note] %s", strings.TrimSpace(req.Notes))
	}
	if plan.MoveSold {
		if err := h.Tickets.DecrementSold(ctx, fromTicket.ID, plan.Quantity); err != nil {
			return writeRepoError(c, err, "release source inventory failed")
		}
		if err := h.Tickets.IncrementSold(ctx, toTicket.ID, plan.Quantity); err != nil {
			return writeRepoError(c, err, "consume target inventory failed")
		}
	}
	if err := h.Regs.ApplyTransfer(ctx, reg.ID, toEvent.ID, toTicket.ID,
		plan.RegNumber, plan.UnitPriceCents, plan.TaxAmountCents, plan.TotalAmountCents, note); err != nil {
		if plan.MoveSold {
			// The counters moved but the registration row did not.
			// Undo both moves; a failure here leaves the counters
			// off by plan.Quantity until reconciled.
			if derr := h.Tickets.DecrementSold(ctx, toTicket.ID, plan.Quantity); derr != nil {
				h.Log.Warn().Err(derr).Uint64("ticket_type_id", toTicket.ID).Msg("transfer undo: decrement sold failed")
			}
			if ierr := h.Tickets.IncrementSold(ctx, fromTicket.ID, plan.Quantity); ierr != nil {
				h.Log.Warn().Err(ierr).Uint64("ticket_type_id", fromTicket.ID).Msg("transfer undo: increment sold failed")
			}
		}
		return writeRepoError(c, err, "apply transfer failed")
	}
	updated, err := h.Regs.GetByID(ctx, reg.ID)
	if err != nil {
		return writeRepoError(c, err, "load registration failed")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    registrationJSON(updated),
		"transfer": echo.Map{
			"fromEvent":             fromEvent.Name,
			"toEvent":               toEvent.Name,
			"fromTicket":            fromTicket.Name,
			"toTicket":              toTicket.Name,
			"newRegistrationNumber": plan.RegNumber,
		},
		"priceChange": plan.Change,
	})
}

// BulkDeleteImported wipes IMPORT-sourced rows for an event. ONLINE
// registrations are never touched by this endpoint.
func (h *RegistrationHandler) BulkDeleteImported(c echo.Context) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Events.GetByID(ctx, eventID); err != nil {
		return writeRepoError(c, err, "load event failed")
	}
	deleted, err := h.Regs.BulkDeleteImported(ctx, eventID)
	if err != nil {
		return writeRepoError(c, err, "bulk delete failed")
	}
	if uid, uerr := getUserID(c); uerr == nil {
		h.Log.Info().Uint64("user_id", uid).Uint64("event_id", eventID).
			Int64("deleted", deleted).Msg("imported registrations wiped")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "deleted": deleted})
}

type importRow struct {
	TicketTypeID uint64 `json:"ticket_type_id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Quantity     uint32 `json:"quantity"`
	Status       string `json:"status"`
}

// BulkImport inserts attendee rows migrated from an external list.
// Rows are processed best effort: a failed row is counted and sampled,
// the batch continues. Imported rows carry source IMPORT so they can
// be wiped by BulkDeleteImported.
func (h *RegistrationHandler) BulkImport(c echo.Context) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	var req struct {
		Rows []importRow `json:"rows"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if len(req.Rows) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rows required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	ev, err := h.Events.GetByID(ctx, eventID)
	if err != nil {
		return writeRepoError(c, err, "load event failed")
	}
	latest, err := h.Regs.LatestNumber(ctx, ev.ID)
	if err != nil {
		return writeRepoError(c, err, "allocate registration number failed")
	}

	var res service.SyncResult
	number := latest
	for i, row := range req.Rows {
		res.Total++
		if strings.TrimSpace(row.FullName) == "" {
			res.RecordError(fmt.Sprintf("row %d: full_name required", i))
			continue
		}
		ticket, err := h.Tickets.GetByID(ctx, row.TicketTypeID)
		if err != nil || ticket.EventID != ev.ID {
			res.RecordError(fmt.Sprintf("row %d: unknown ticket type %d", i, row.TicketTypeID))
			continue
		}
		status := strings.ToUpper(row.Status)
		if status == "" {
			status = model.RegConfirmed
		}
		if status != model.RegConfirmed && status != model.RegPending {
			res.RecordError(fmt.Sprintf("row %d: unsupported status %s", i, status))
			continue
		}
		qty := row.Quantity
		if qty == 0 {
			qty = 1
		}

		number = service.NextRegNumber(number, service.DefaultRegPrefix(ev.ID))
		tax, total := service.ComputeAmounts(ticket.PriceCents, ticket.TaxPercent, qty)
		reg := model.Registration{
			EventID:          ev.ID,
			TicketTypeID:     ticket.ID,
			RegNumber:        number,
			FullName:         strings.TrimSpace(row.FullName),
			Email:            strings.ToLower(strings.TrimSpace(row.Email)),
			Phone:            strings.TrimSpace(row.Phone),
			Quantity:         qty,
			UnitPriceCents:   ticket.PriceCents,
			TaxAmountCents:   tax,
			TotalAmountCents: total,
			Status:           status,
			Source:           model.SourceImport,
		}
		if err := h.Regs.Create(ctx, &reg); err != nil {
			res.RecordError(fmt.Sprintf("row %d: %v", i, err))
			continue
		}
		if status == model.RegConfirmed {
			if err := h.Tickets.IncrementSold(ctx, ticket.ID, qty); err != nil {
				h.Log.Warn().Err(err).Uint64("ticket_type_id", ticket.ID).Msg("increment sold failed")
			}
		}
		res.Created++
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":      true,
		"created":      res.Created,
		"skipped":      res.Skipped,
		"total":        res.Total,
		"sampleErrors": res.SampleErrors,
	})
}
