// Package router maps URLs to handlers. Staff routes live under /v1
// behind JWT and role middleware; the print gate and the invitation
// endpoints stay public because their credential is an opaque token
// carried in the request itself.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Prabhugems/AMASI-management-sub016/internal/handler"
	"github.com/Prabhugems/AMASI-management-sub016/internal/middleware"
	"github.com/Prabhugems/AMASI-management-sub016/internal/model"
)

// RegisterRoutes registers routes that need no authentication at all.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the account endpoints and returns the
// protected /v1 group the remaining registrars attach to.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) *echo.Group {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	staff := e.Group("/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin, model.RoleOrganizer))
	staff.GET("/me", a.Me)
	return staff
}
