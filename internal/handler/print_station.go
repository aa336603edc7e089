package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Prabhugems/AMASI-management-sub016/internal/model"
	"github.com/Prabhugems/AMASI-management-sub016/internal/repository"
	"github.com/Prabhugems/AMASI-management-sub016/internal/service"
	"github.com/Prabhugems/AMASI-management-sub016/internal/utils"
)

// PrintStationHandler serves station CRUD and the print gate. Stations
// are managed by admins over JWT; the print endpoint itself can
// authenticate with the station's opaque access token so kiosks need
// no user session.
type PrintStationHandler struct {
	Events    *repository.EventRepo
	Stations  *repository.PrintStationRepo
	Jobs      *repository.PrintJobRepo
	Regs      *repository.RegistrationRepo
	Templates *repository.BadgeTemplateRepo
	Log       zerolog.Logger
}

func NewPrintStationHandler(e *repository.EventRepo, s *repository.PrintStationRepo,
	j *repository.PrintJobRepo, r *repository.RegistrationRepo,
	t *repository.BadgeTemplateRepo, log zerolog.Logger) *PrintStationHandler {
	if e == nil || s == nil || j == nil || r == nil || t == nil {
		panic("nil repository passed to NewPrintStationHandler")
	}
	return &PrintStationHandler{Events: e, Stations: s, Jobs: j, Regs: r, Templates: t, Log: log}
}

type stationReq struct {
	Name           string     `json:"name" validate:"required,max=255"`
	TokenExpiresAt *time.Time `json:"token_expires_at"`
	IsActive       *bool      `json:"is_active"`
	AllowReprint   bool       `json:"allow_reprint"`
	MaxReprints    uint32     `json:"max_reprints" validate:"lte=100"`
	TicketTypeIDs  string     `json:"ticket_type_ids"`
}

// Create issues the station's access token server side; clients never
// choose it. POST /v1/events/:id/print-stations.
func (h *PrintStationHandler) Create(c echo.Context) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	var req stationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Events.GetByID(ctx, eventID); err != nil {
		return writeRepoError(c, err, "load event failed")
	}
	token, err := utils.NewStationToken()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	s := model.PrintStation{
		EventID:        eventID,
		Name:           strings.TrimSpace(req.Name),
		AccessToken:    token,
		TokenExpiresAt: req.TokenExpiresAt,
		AllowReprint:   req.AllowReprint,
		MaxReprints:    req.MaxReprints,
		TicketTypeIDs:  strings.ReplaceAll(req.TicketTypeIDs, " ", ""),
	}
	if err := h.Stations.Create(ctx, &s); err != nil {
		return writeRepoError(c, err, "create station failed")
	}
	return c.JSON(http.StatusCreated, stationJSON(s))
}

func (h *PrintStationHandler) ListByEvent(c echo.Context) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	stations, err := h.Stations.ListByEvent(ctx, eventID)
	if err != nil {
		return writeRepoError(c, err, "list stations failed")
	}
	out := make([]echo.Map, 0, len(stations))
	for _, s := range stations {
		out = append(out, stationJSON(s))
	}
	return c.JSON(http.StatusOK, echo.Map{"print_stations": out})
}

func (h *PrintStationHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid station id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	s, err := h.Stations.GetByID(ctx, id)
	if err != nil {
		return writeRepoError(c, err, "load station failed")
	}
	return c.JSON(http.StatusOK, stationJSON(s))
}

// Update rewrites policy fields. The access token is immutable; rotate
// by deleting and recreating the station.
func (h *PrintStationHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid station id"})
	}
	var req stationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	s, err := h.Stations.GetByID(ctx, id)
	if err != nil {
		return writeRepoError(c, err, "load station failed")
	}
	s.Name = strings.TrimSpace(req.Name)
	s.TokenExpiresAt = req.TokenExpiresAt
	s.AllowReprint = req.AllowReprint
	s.MaxReprints = req.MaxReprints
	s.TicketTypeIDs = strings.ReplaceAll(req.TicketTypeIDs, " ", "")
	if req.IsActive != nil {
		s.IsActive = *req.IsActive
	}
	if err := h.Stations.Update(ctx, &s); err != nil {
		return writeRepoError(c, err, "update station failed")
	}
	return c.JSON(http.StatusOK, stationJSON(s))
}

func (h *PrintStationHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid station id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Stations.Delete(ctx, id); err != nil {
		return writeRepoError(c, err, "delete station failed")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PrintStationHandler) ListJobs(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid station id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	jobs, err := h.Jobs.ListByStation(ctx, id)
	if err != nil {
		return writeRepoError(c, err, "list jobs failed")
	}
	out := make([]echo.Map, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, jobJSON(j))
	}
	return c.JSON(http.StatusOK, echo.Map{"jobs": out})
}

type printReq struct {
	PrintStationID     uint64 `json:"print_station_id"`
	Token              string `json:"token"`
	RegistrationID     uint64 `json:"registration_id"`
	RegistrationNumber string `json:"registration_number"`
	DeviceInfo         string `json:"device_info" validate:"max=255"`
}

// Print is the badge print gate. The station may identify itself by id
// or by access token, the attendee by registration id or number. The
// gate checks live in service.PlanPrint; on success a completed job is
// recorded, the badge counter of the event's default template is bumped
// and the template locks on its first print.
func (h *PrintStationHandler) Print(c echo.Context) error {
	var req printReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if req.PrintStationID == 0 && strings.TrimSpace(req.Token) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "print_station_id or token required"})
	}
	if req.RegistrationID == 0 && strings.TrimSpace(req.RegistrationNumber) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "registration_id or registration_number required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	var (
		station model.PrintStation
		err     error
	)
	if req.PrintStationID != 0 {
		station, err = h.Stations.GetByID(ctx, req.PrintStationID)
	} else {
		station, err = h.Stations.GetByToken(ctx, strings.TrimSpace(req.Token))
	}
	if err != nil {
		return writeRepoError(c, err, "load station failed")
	}

	var reg model.Registration
	if req.RegistrationID != 0 {
		reg, err = h.Regs.GetByID(ctx, req.RegistrationID)
	} else {
		reg, err = h.Regs.GetByNumber(ctx, station.EventID, strings.TrimSpace(req.RegistrationNumber))
	}
	if err != nil {
		return writeRepoError(c, err, "load registration failed")
	}

	lastCompleted, err := h.Jobs.MaxCompletedNumber(ctx, station.ID, reg.ID)
	if err != nil {
		return writeRepoError(c, err, "load print history failed")
	}
	printNumber, err := service.PlanPrint(station, reg, lastCompleted, time.Now())
	if err != nil {
		return writeRepoError(c, err, "print rejected")
	}

	job := model.PrintJob{
		JobRef:         uuid.NewString(),
		StationID:      station.ID,
		RegistrationID: reg.ID,
		PrintNumber:    printNumber,
		Status:         model.PrintCompleted,
		DeviceInfo:     strings.TrimSpace(req.DeviceInfo),
	}
	if err := h.Jobs.Create(ctx, &job); err != nil {
		return writeRepoError(c, err, "record print job failed")
	}

	// The default template locks on its first print. Missing template
	// is tolerated: printing proceeds with a blank layout.
	var template *model.BadgeTemplate
	if t, terr := h.Templates.GetDefaultForEvent(ctx, station.EventID); terr == nil {
		if rerr := h.Templates.RecordBadgePrinted(ctx, t.ID, time.Now().UTC()); rerr != nil {
			h.Log.Warn().Err(rerr).Uint64("template_id", t.ID).Msg("record badge print failed")
		}
		if t, terr = h.Templates.GetByID(ctx, t.ID); terr == nil {
			template = &t
		}
	}

	resp := echo.Map{
		"success":      true,
		"print_job":    jobJSON(job),
		"print_number": printNumber,
		"is_reprint":   printNumber > 1,
		"registration": registrationJSON(reg),
		"station": echo.Map{
			"id":            station.ID,
			"name":          station.Name,
			"allow_reprint": station.AllowReprint,
			"max_reprints":  station.MaxReprints,
		},
	}
	if template != nil {
		resp["badge_template"] = templateJSON(*template)
	} else {
		resp["badge_template"] = nil
	}
	return c.JSON(http.StatusOK, resp)
}
