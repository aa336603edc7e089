package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Prabhugems/AMASI-management-sub016/internal/model"
	"github.com/Prabhugems/AMASI-management-sub016/internal/repository"
)

// TicketTypeHandler serves the admission categories of an event.
type TicketTypeHandler struct {
	Events  *repository.EventRepo
	Tickets *repository.TicketTypeRepo
}

func NewTicketTypeHandler(e *repository.EventRepo, t *repository.TicketTypeRepo) *TicketTypeHandler {
	if e == nil || t == nil {
		panic("nil repository passed to NewTicketTypeHandler")
	}
	return &TicketTypeHandler{Events: e, Tickets: t}
}

type ticketReq struct {
	Name          string  `json:"name" validate:"required,max=255"`
	PriceCents    uint32  `json:"price_cents"`
	TaxPercent    float64 `json:"tax_percent" validate:"gte=0,lte=100"`
	QuantityTotal uint32  `json:"quantity_total"`
	Status        string  `json:"status" validate:"omitempty,oneof=ACTIVE HIDDEN SOLDOUT DISABLED"`
}

// Create adds a ticket type under POST /v1/events/:id/ticket-types.
func (h *TicketTypeHandler) Create(c echo.Context) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	var req ticketReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	status := req.Status
	if status == "" {
		status = model.TicketActive
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Events.GetByID(ctx, eventID); err != nil {
		return writeRepoError(c, err, "load event failed")
	}
	t := model.TicketType{
		EventID:       eventID,
		Name:          strings.TrimSpace(req.Name),
		PriceCents:    req.PriceCents,
		TaxPercent:    req.TaxPercent,
		QuantityTotal: req.QuantityTotal,
		Status:        status,
	}
	if err := h.Tickets.Create(ctx, &t); err != nil {
		return writeRepoError(c, err, "create ticket type failed")
	}
	return c.JSON(http.StatusCreated, ticketJSON(t))
}

func (h *TicketTypeHandler) ListByEvent(c echo.Context) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	tickets, err := h.Tickets.ListByEvent(ctx, eventID)
	if err != nil {
		return writeRepoError(c, err, "list ticket types failed")
	}
	out := make([]echo.Map, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, ticketJSON(t))
	}
	return c.JSON(http.StatusOK, echo.Map{"ticket_types": out})
}

func (h *TicketTypeHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid ticket type id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	t, err := h.Tickets.GetByID(ctx, id)
	if err != nil {
		return writeRepoError(c, err, "load ticket type failed")
	}
	return c.JSON(http.StatusOK, ticketJSON(t))
}

// Update rewrites the mutable columns. quantity_sold is owned by the
// registration flows and is never writable here.
func (h *TicketTypeHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid ticket type id"})
	}
	var req ticketReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	t, err := h.Tickets.GetByID(ctx, id)
	if err != nil {
		return writeRepoError(c, err, "load ticket type failed")
	}
	t.Name = strings.TrimSpace(req.Name)
	t.PriceCents = req.PriceCents
	t.TaxPercent = req.TaxPercent
	t.QuantityTotal = req.QuantityTotal
	if req.Status != "" {
		t.Status = req.Status
	}
	if err := h.Tickets.Update(ctx, &t); err != nil {
		return writeRepoError(c, err, "update ticket type failed")
	}
	return c.JSON(http.StatusOK, ticketJSON(t))
}

func (h *TicketTypeHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid ticket type id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Tickets.Delete(ctx, id); err != nil {
		return writeRepoError(c, err, "delete ticket type failed")
	}
	return c.NoContent(http.StatusNoContent)
}
