package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Prabhugems/AMASI-management-sub016/internal/repository"
)

// NotificationHandler exposes the delivery audit trail written by the
// dispatcher.
type NotificationHandler struct {
	Logs *repository.NotificationLogRepo
}

func NewNotificationHandler(l *repository.NotificationLogRepo) *NotificationHandler {
	if l == nil {
		panic("nil repository passed to NewNotificationHandler")
	}
	return &NotificationHandler{Logs: l}
}

// ListRecent returns the newest log rows, up to ?limit (default 100).
func (h *NotificationHandler) ListRecent(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid limit"})
		}
		limit = n
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	logs, err := h.Logs.ListRecent(ctx, limit)
	if err != nil {
		return writeRepoError(c, err, "list notification logs failed")
	}
	out := make([]echo.Map, 0, len(logs))
	for _, l := range logs {
		out = append(out, logJSON(l))
	}
	return c.JSON(http.StatusOK, echo.Map{"logs": out})
}
