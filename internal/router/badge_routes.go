package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Prabhugems/AMASI-management-sub016/internal/handler"
)

// RegisterBadges wires badge template management, print station
// management and the print gate. The gate is registered on the bare
// echo instance: kiosks authenticate with the station access token in
// the request body, not a staff JWT.
func RegisterBadges(e *echo.Echo, staff *echo.Group, bh *handler.BadgeTemplateHandler, ph *handler.PrintStationHandler) {
	staff.POST("/events/:id/badge-templates", bh.Create)
	staff.GET("/events/:id/badge-templates", bh.ListByEvent)
	staff.GET("/badge-templates/:id", bh.Get)
	staff.PATCH("/badge-templates/:id", bh.Update)
	staff.DELETE("/badge-templates/:id", bh.Delete)

	staff.POST("/events/:id/print-stations", ph.Create)
	staff.GET("/events/:id/print-stations", ph.ListByEvent)
	staff.GET("/print-stations/:id", ph.Get)
	staff.PUT("/print-stations/:id", ph.Update)
	staff.DELETE("/print-stations/:id", ph.Delete)
	staff.GET("/print-stations/:id/jobs", ph.ListJobs)

	e.POST("/v1/print-stations/print", ph.Print)
}
