package handler

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Prabhugems/AMASI-management-sub016/internal/model"
	"github.com/Prabhugems/AMASI-management-sub016/internal/notifier"
	"github.com/Prabhugems/AMASI-management-sub016/internal/queue"
	"github.com/Prabhugems/AMASI-management-sub016/internal/repository"
	"github.com/Prabhugems/AMASI-management-sub016/internal/service"
)

// ProgramHandler serves the scientific program: sessions, the faculty
// assignment synchronizer and the invitation endpoints. Invitation
// responses are token-addressed so faculty never need an account.
type ProgramHandler struct {
	Events      *repository.EventRepo
	Sessions    *repository.SessionRepo
	Assignments *repository.FacultyAssignmentRepo
	Dispatcher  *notifier.Dispatcher
	Log         zerolog.Logger
}

func NewProgramHandler(e *repository.EventRepo, s *repository.SessionRepo,
	a *repository.FacultyAssignmentRepo, d *notifier.Dispatcher, log zerolog.Logger) *ProgramHandler {
	if e == nil || s == nil || a == nil {
		panic("nil repository passed to NewProgramHandler")
	}
	return &ProgramHandler{Events: e, Sessions: s, Assignments: a, Dispatcher: d, Log: log}
}

type sessionReq struct {
	Title        string `json:"title" validate:"required,max=500"`
	Hall         string `json:"hall" validate:"max=255"`
	SessionDate  string `json:"session_date" validate:"required,ymd"`
	StartTime    string `json:"start_time" validate:"required,hhmm"`
	EndTime      string `json:"end_time" validate:"required,hhmm"`
	Speakers     string `json:"speakers"`
	Chairpersons string `json:"chairpersons"`
	Moderators   string `json:"moderators"`
}

// CreateSession adds a program slot under POST /v1/events/:id/sessions.
// The faculty columns stay free text until sync-assignments parses them.
func (h *ProgramHandler) CreateSession(c echo.Context) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	var req sessionReq
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
	s := model.Session{
		EventID:      eventID,
		Title:        strings.TrimSpace(req.Title),
		Hall:         strings.TrimSpace(req.Hall),
		SessionDate:  req.SessionDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Speakers:     req.Speakers,
		Chairpersons: req.Chairpersons,
		Moderators:   req.Moderators,
	}
	if err := h.Sessions.Create(ctx, &s); err != nil {
		return writeRepoError(c, err, "create session failed")
	}
	return c.JSON(http.StatusCreated, sessionJSON(s))
}

func (h *ProgramHandler) ListSessions(c echo.Context) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	sessions, err := h.Sessions.ListByEvent(ctx, eventID)
	if err != nil {
		return writeRepoError(c, err, "list sessions failed")
	}
	out := make([]echo.Map, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, sessionJSON(s))
	}
	return c.JSON(http.StatusOK, echo.Map{"sessions": out})
}

func (h *ProgramHandler) UpdateSession(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid session id"})
	}
	var req sessionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	s, err := h.Sessions.GetByID(ctx, id)
	if err != nil {
		return writeRepoError(c, err, "load session failed")
	}
	s.Title = strings.TrimSpace(req.Title)
	s.Hall = strings.TrimSpace(req.Hall)
	s.SessionDate = req.SessionDate
	s.StartTime = req.StartTime
	s.EndTime = req.EndTime
	s.Speakers = req.Speakers
	s.Chairpersons = req.Chairpersons
	s.Moderators = req.Moderators
	if err := h.Sessions.Update(ctx, &s); err != nil {
		return writeRepoError(c, err, "update session failed")
	}
	return c.JSON(http.StatusOK, sessionJSON(s))
}

// SyncAssignments walks every session of the event, parses the three
// free-text faculty columns and materializes one assignment row per
// (session, person, role). Existing rows are skipped by a
// read-before-insert check; per-row failures are counted and sampled
// but never abort the batch.
func (h *ProgramHandler) SyncAssignments(c echo.Context) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Events.GetByID(ctx, eventID); err != nil {
		return writeRepoError(c, err, "load event failed")
	}
	sessions, err := h.Sessions.ListByEvent(ctx, eventID)
	if err != nil {
		return writeRepoError(c, err, "list sessions failed")
	}

	var res service.SyncResult
	for _, s := range sessions {
		groups := []struct {
			text string
			role string
		}{
			{s.Speakers, model.RoleSpeaker},
			{s.Chairpersons, model.RoleChairperson},
			{s.Moderators, model.RoleModerator},
		}
		for _, g := range groups {
			for _, p := range service.ParseFacultyList(g.text) {
				res.Total++
				exists, err := h.Assignments.Exists(ctx, s.ID, p.Name, g.role)
				if err != nil {
					res.RecordError(fmt.Sprintf("session %d %s %q: %v", s.ID, g.role, p.Name, err))
					continue
				}
				if exists {
					res.Skipped++
					continue
				}
				token, err := service.NewInviteToken()
				if err != nil {
					res.RecordError(fmt.Sprintf("session %d %s %q: %v", s.ID, g.role, p.Name, err))
					continue
				}
				a := model.FacultyAssignment{
					EventID:     eventID,
					SessionID:   s.ID,
					FacultyName: p.Name,
					Email:       p.Email,
					Phone:       p.Phone,
					Role:        g.role,
					InviteToken: token,
					Status:      model.InvitePending,
					SessionDate: s.SessionDate,
					StartTime:   s.StartTime,
					EndTime:     s.EndTime,
					Hall:        s.Hall,
				}
				if err := h.Assignments.Create(ctx, &a); err != nil {
					res.RecordError(fmt.Sprintf("session %d %s %q: %v", s.ID, g.role, p.Name, err))
					continue
				}
				res.Created++
			}
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":      true,
		"created":      res.Created,
		"skipped":      res.Skipped,
		"total":        res.Total,
		"firstError":   res.FirstError(),
		"sampleErrors": res.SampleErrors,
	})
}

func (h *ProgramHandler) ListAssignments(c echo.Context) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	assignments, err := h.Assignments.ListByEvent(ctx, eventID)
	if err != nil {
		return writeRepoError(c, err, "list assignments failed")
	}
	out := make([]echo.Map, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, assignmentJSON(a))
	}
	return c.JSON(http.StatusOK, echo.Map{"assignments": out})
}

// GetInvitation resolves an invitation token for the public respond
// page. No authentication: the token is the credential.
func (h *ProgramHandler) GetInvitation(c echo.Context) error {
	token := strings.TrimSpace(c.Param("token"))
	if token == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "token required"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	a, err := h.Assignments.GetByToken(ctx, token)
	if err != nil {
		return writeRepoError(c, err, "load invitation failed")
	}
	s, err := h.Sessions.GetByID(ctx, a.SessionID)
	if err != nil {
		return writeRepoError(c, err, "load session failed")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"invitation":    assignmentJSON(a),
		"session_title": s.Title,
	})
}

// RespondInvitation records an accept or decline. A token can only be
// answered once; a second attempt returns 400.
func (h *ProgramHandler) RespondInvitation(c echo.Context) error {
	token := strings.TrimSpace(c.Param("token"))
	if token == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "token required"})
	}
	var req struct {
		Response string `json:"response" validate:"required,oneof=accept decline ACCEPT DECLINE"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	status := model.InviteAccepted
	if strings.EqualFold(req.Response, "decline") {
		status = model.InviteDeclined
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Assignments.Respond(ctx, token, status, time.Now().UTC()); err != nil {
		return writeRepoError(c, err, "record response failed")
	}
	a, err := h.Assignments.GetByToken(ctx, token)
	if err != nil {
		return writeRepoError(c, err, "load invitation failed")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "invitation": assignmentJSON(a)})
}

// InviteBatch sends invitation emails to every pending assignment of
// the event that has an address. Sends run synchronously through the
// dispatcher so the response can name each recipient that failed.
func (h *ProgramHandler) InviteBatch(c echo.Context) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	if h.Dispatcher == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "notification dispatch is not configured"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	ev, err := h.Events.GetByID(ctx, eventID)
	if err != nil {
		return writeRepoError(c, err, "load event failed")
	}
	pending, err := h.Assignments.ListPendingWithEmail(ctx, eventID)
	if err != nil {
		return writeRepoError(c, err, "list pending invitations failed")
	}

	base := strings.TrimRight(os.Getenv("INVITE_BASE_URL"), "/")
	sent := 0
	failures := make([]echo.Map, 0)
	for _, a := range pending {
		msg := queue.NotificationMessage{
			MessageRef: uuid.NewString(),
			Template:   "faculty_invitation",
			Email:      a.Email,
			Phone:      a.Phone,
			Subject:    "Invitation: {{role}} at {{event}}",
			Body: "Dear {{name}},\n\nYou are invited as {{role}} on {{date}} {{start}}-{{end}} in {{hall}}." +
				"\nPlease respond at {{link}}\n",
			Vars: map[string]string{
				"name":  a.FacultyName,
				"role":  a.Role,
				"event": ev.Name,
				"date":  a.SessionDate,
				"start": a.StartTime,
				"end":   a.EndTime,
				"hall":  a.Hall,
				"link":  base + "/faculty/invitations/" + a.InviteToken,
			},
		}
		sendCtx, sendCancel := reqCtx(c)
		err := h.Dispatcher.Deliver(sendCtx, msg)
		sendCancel()
		if err != nil {
			failures = append(failures, echo.Map{"email": a.Email, "error": err.Error()})
			continue
		}
		sent++
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":  len(failures) == 0,
		"sent":     sent,
		"failed":   len(failures),
		"failures": failures,
	})
}
