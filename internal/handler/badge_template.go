package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Prabhugems/AMASI-management-sub016/internal/model"
	"github.com/Prabhugems/AMASI-management-sub016/internal/repository"
	"github.com/Prabhugems/AMASI-management-sub016/internal/service"
)

// BadgeTemplateHandler serves badge template CRUD. Updates go through
// the lock policy in internal/service: once a template has printed
// badges its design fields are frozen unless the caller force-unlocks.
type BadgeTemplateHandler struct {
	Events    *repository.EventRepo
	Templates *repository.BadgeTemplateRepo
}

func NewBadgeTemplateHandler(e *repository.EventRepo, t *repository.BadgeTemplateRepo) *BadgeTemplateHandler {
	if e == nil || t == nil {
		panic("nil repository passed to NewBadgeTemplateHandler")
	}
	return &BadgeTemplateHandler{Events: e, Templates: t}
}

type templateCreateReq struct {
	Name             string `json:"name" validate:"required,max=255"`
	Description      string `json:"description"`
	Size             string `json:"size" validate:"max=32"`
	TemplateImageURL string `json:"template_image_url" validate:"omitempty,url"`
	TemplateData     string `json:"template_data"`
	IsDefault        bool   `json:"is_default"`
}

type templateUpdateReq struct {
	Name             *string `json:"name"`
	Description      *string `json:"description"`
	Size             *string `json:"size"`
	TemplateImageURL *string `json:"template_image_url"`
	TemplateData     *string `json:"template_data"`
	IsDefault        *bool   `json:"is_default"`
	ForceUnlock      bool    `json:"force_unlock"`
}

// lockedResponse is the 403 body promised to badge editors so the UI
// can explain why the design is frozen.
func lockedResponse(c echo.Context, t model.BadgeTemplate) error {
	return c.JSON(http.StatusForbidden, echo.Map{
		"error":            "Template is locked",
		"message":          "badges have been generated from this template; design changes require force_unlock",
		"is_locked":        true,
		"locked_at":        nullableTime(t.LockedAt),
		"badges_generated": t.BadgesGenerated,
	})
}

// Create adds a template under POST /v1/events/:id/badge-templates.
// When is_default is set, other defaults for the event are cleared
// first; the two writes are not atomic, matching the update path.
func (h *BadgeTemplateHandler) Create(c echo.Context) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	var req templateCreateReq
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
	t := model.BadgeTemplate{
		EventID:          eventID,
		Name:             strings.TrimSpace(req.Name),
		Description:      req.Description,
		Size:             req.Size,
		TemplateImageURL: req.TemplateImageURL,
		TemplateData:     req.TemplateData,
		IsDefault:        req.IsDefault,
	}
	if err := h.Templates.Create(ctx, &t); err != nil {
		return writeRepoError(c, err, "create template failed")
	}
	if t.IsDefault {
		if err := h.Templates.ClearDefaultForEvent(ctx, eventID, t.ID); err != nil {
			return writeRepoError(c, err, "set default failed")
		}
	}
	return c.JSON(http.StatusCreated, templateJSON(t))
}

func (h *BadgeTemplateHandler) ListByEvent(c echo.Context) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	templates, err := h.Templates.ListByEvent(ctx, eventID)
	if err != nil {
		return writeRepoError(c, err, "list templates failed")
	}
	out := make([]echo.Map, 0, len(templates))
	for _, t := range templates {
		out = append(out, templateJSON(t))
	}
	return c.JSON(http.StatusOK, echo.Map{"badge_templates": out})
}

func (h *BadgeTemplateHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid template id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	t, err := h.Templates.GetByID(ctx, id)
	if err != nil {
		return writeRepoError(c, err, "load template failed")
	}
	return c.JSON(http.StatusOK, templateJSON(t))
}

// Update applies a partial patch through the lock policy. Setting
// is_default clears other defaults for the event first: a brief window
// with no default exists between the two writes.
func (h *BadgeTemplateHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid template id"})
	}
	var req templateUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	t, err := h.Templates.GetByID(ctx, id)
	if err != nil {
		return writeRepoError(c, err, "load template failed")
	}
	patch := service.TemplateUpdate{
		Name:             req.Name,
		Description:      req.Description,
		Size:             req.Size,
		TemplateImageURL: req.TemplateImageURL,
		TemplateData:     req.TemplateData,
		IsDefault:        req.IsDefault,
		ForceUnlock:      req.ForceUnlock,
	}
	if err := service.ApplyTemplateUpdate(&t, patch); err != nil {
		if errors.Is(err, repository.ErrLocked) {
			return lockedResponse(c, t)
		}
		return writeRepoError(c, err, "update template failed")
	}
	if t.IsDefault {
		if err := h.Templates.ClearDefaultForEvent(ctx, t.EventID, t.ID); err != nil {
			return writeRepoError(c, err, "set default failed")
		}
	}
	if err := h.Templates.Update(ctx, &t); err != nil {
		return writeRepoError(c, err, "update template failed")
	}
	return c.JSON(http.StatusOK, templateJSON(t))
}

// Delete refuses to remove a locked template.
func (h *BadgeTemplateHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid template id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Templates.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrLocked) {
			if t, lerr := h.Templates.GetByID(ctx, id); lerr == nil {
				return lockedResponse(c, t)
			}
		}
		return writeRepoError(c, err, "delete template failed")
	}
	return c.NoContent(http.StatusNoContent)
}
