package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Prabhugems/AMASI-management-sub016/internal/model"
	"github.com/Prabhugems/AMASI-management-sub016/internal/repository"
)

// EventHandler serves event CRUD and the per-event stats endpoint.
type EventHandler struct {
	Events  *repository.EventRepo
	Tickets *repository.TicketTypeRepo
	Regs    *repository.RegistrationRepo
}

func NewEventHandler(e *repository.EventRepo, t *repository.TicketTypeRepo, r *repository.RegistrationRepo) *EventHandler {
	if e == nil || t == nil || r == nil {
		panic("nil repository passed to NewEventHandler")
	}
	return &EventHandler{Events: e, Tickets: t, Regs: r}
}

type eventReq struct {
	Name     string    `json:"name" validate:"required,max=255"`
	Venue    string    `json:"venue" validate:"max=255"`
	City     string    `json:"city" validate:"max=128"`
	StartsAt time.Time `json:"starts_at" validate:"required"`
	EndsAt   time.Time `json:"ends_at" validate:"required"`
	Status   string    `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
}

func (h *EventHandler) Create(c echo.Context) error {
	var req eventReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if req.EndsAt.Before(req.StartsAt) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "ends_at before starts_at"})
	}
	status := req.Status
	if status == "" {
		status = "DRAFT"
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	ev := model.Event{
		Name:     strings.TrimSpace(req.Name),
		Venue:    strings.TrimSpace(req.Venue),
		City:     strings.TrimSpace(req.City),
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
		Status:   status,
	}
	if err := h.Events.Create(ctx, &ev); err != nil {
		return writeRepoError(c, err, "create event failed")
	}
	return c.JSON(http.StatusCreated, eventJSON(ev))
}

func (h *EventHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	events, err := h.Events.List(ctx)
	if err != nil {
		return writeRepoError(c, err, "list events failed")
	}
	out := make([]echo.Map, 0, len(events))
	for _, ev := range events {
		out = append(out, eventJSON(ev))
	}
	return c.JSON(http.StatusOK, echo.Map{"events": out})
}

func (h *EventHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	ev, err := h.Events.GetByID(ctx, id)
	if err != nil {
		return writeRepoError(c, err, "load event failed")
	}
	return c.JSON(http.StatusOK, eventJSON(ev))
}

func (h *EventHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	var req eventReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	ev, err := h.Events.GetByID(ctx, id)
	if err != nil {
		return writeRepoError(c, err, "load event failed")
	}
	ev.Name = strings.TrimSpace(req.Name)
	ev.Venue = strings.TrimSpace(req.Venue)
	ev.City = strings.TrimSpace(req.City)
	ev.StartsAt = req.StartsAt
	ev.EndsAt = req.EndsAt
	if req.Status != "" {
		ev.Status = req.Status
	}
	if err := h.Events.Update(ctx, &ev); err != nil {
		return writeRepoError(c, err, "update event failed")
	}
	return c.JSON(http.StatusOK, eventJSON(ev))
}

// Delete refuses when registrations still reference the event.
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Events.Delete(ctx, id); err != nil {
		return writeRepoError(c, err, "delete event failed")
	}
	return c.NoContent(http.StatusNoContent)
}

// Stats aggregates registration counts by status, the checked-in
// count and per-ticket inventory. The route sits behind the redis
// response cache, so repeated dashboard polls do not hit MySQL.
func (h *EventHandler) Stats(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	ev, err := h.Events.GetByID(ctx, id)
	if err != nil {
		return writeRepoError(c, err, "load event failed")
	}
	byStatus, err := h.Regs.CountByStatus(ctx, id)
	if err != nil {
		return writeRepoError(c, err, "load stats failed")
	}
	checkedIn, err := h.Regs.CountCheckedIn(ctx, id)
	if err != nil {
		return writeRepoError(c, err, "load stats failed")
	}
	tickets, err := h.Tickets.ListByEvent(ctx, id)
	if err != nil {
		return writeRepoError(c, err, "load stats failed")
	}

	var total int64
	for _, n := range byStatus {
		total += n
	}
	inventory := make([]echo.Map, 0, len(tickets))
	for _, t := range tickets {
		inventory = append(inventory, echo.Map{
			"ticket_type_id": t.ID,
			"name":           t.Name,
			"quantity_total": t.QuantityTotal,
			"quantity_sold":  t.QuantitySold,
			"status":         t.Status,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"event_id":             ev.ID,
		"event_name":           ev.Name,
		"total_registrations":  total,
		"by_status":            byStatus,
		"checked_in":           checkedIn,
		"ticket_inventory":     inventory,
	})
}
