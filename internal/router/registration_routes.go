package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Prabhugems/AMASI-management-sub016/internal/handler"
	"github.com/Prabhugems/AMASI-management-sub016/internal/middleware"
	"github.com/Prabhugems/AMASI-management-sub016/internal/model"
)

// RegisterRegistrations wires attendee registration management. Bulk
// delete is restricted to admins because it destroys rows.
func RegisterRegistrations(staff *echo.Group, rh *handler.RegistrationHandler) {
	staff.POST("/events/:id/registrations", rh.Create)
	staff.GET("/events/:id/registrations", rh.ListByEvent)
	staff.POST("/events/:id/registrations/import", rh.BulkImport)
	staff.POST("/events/:id/registrations/bulk-delete", rh.BulkDeleteImported,
		middleware.RequireRole(model.RoleAdmin))

	staff.GET("/registrations/:id", rh.Get)
	staff.PATCH("/registrations/:id/status", rh.UpdateStatus)
	staff.POST("/registrations/:id/checkin", rh.CheckIn)
	staff.POST("/registrations/:id/transfer", rh.Transfer)
}
