package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Prabhugems/AMASI-management-sub016/internal/handler"
	"github.com/Prabhugems/AMASI-management-sub016/internal/middleware"
	"github.com/Prabhugems/AMASI-management-sub016/internal/model"
)

// RegisterEvents wires event and ticket type management plus the
// cached stats endpoint. cache may be nil when Redis is unavailable.
func RegisterEvents(staff *echo.Group, eh *handler.EventHandler, th *handler.TicketTypeHandler, cache echo.MiddlewareFunc) {
	staff.POST("/events", eh.Create)
	staff.GET("/events", eh.List)
	staff.GET("/events/:id", eh.Get)
	staff.PUT("/events/:id", eh.Update)
	staff.DELETE("/events/:id", eh.Delete, middleware.RequireRole(model.RoleAdmin))

	if cache != nil {
		staff.GET("/events/:id/stats", eh.Stats, cache)
	} else {
		staff.GET("/events/:id/stats", eh.Stats)
	}

	staff.POST("/events/:id/ticket-types", th.Create)
	staff.GET("/events/:id/ticket-types", th.ListByEvent)
	staff.GET("/ticket-types/:id", th.Get)
	staff.PUT("/ticket-types/:id", th.Update)
	staff.DELETE("/ticket-types/:id", th.Delete, middleware.RequireRole(model.RoleAdmin))
}
