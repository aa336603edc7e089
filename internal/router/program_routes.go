package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Prabhugems/AMASI-management-sub016/internal/handler"
	"github.com/Prabhugems/AMASI-management-sub016/internal/middleware"
	"github.com/Prabhugems/AMASI-management-sub016/internal/model"
)

// RegisterProgram wires sessions, the assignment synchronizer, the
// invitation batch send and the public token-addressed respond
// endpoints. The notification log listing is admin only.
func RegisterProgram(e *echo.Echo, staff *echo.Group, ph *handler.ProgramHandler, nh *handler.NotificationHandler) {
	staff.POST("/events/:id/sessions", ph.CreateSession)
	staff.GET("/events/:id/sessions", ph.ListSessions)
	staff.PUT("/sessions/:id", ph.UpdateSession)

	staff.POST("/events/:id/program/sync-assignments", ph.SyncAssignments)
	staff.GET("/events/:id/faculty/assignments", ph.ListAssignments)
	staff.POST("/events/:id/faculty/invite", ph.InviteBatch)

	staff.GET("/notifications/logs", nh.ListRecent, middleware.RequireRole(model.RoleAdmin))

	e.GET("/v1/faculty/invitations/:token", ph.GetInvitation)
	e.POST("/v1/faculty/invitations/:token/respond", ph.RespondInvitation)
}
