package router

import (
	"github.com/labstack/echo/v4"

	"github.com/eventgrounds/campsite-booking/internal/handler"
	"github.com/eventgrounds/campsite-booking/internal/middleware"
	"github.com/eventgrounds/campsite-booking/internal/model"
)

// RegisterAdmin registers event-staff endpoints under /v1/admin. All routes
// require a valid JWT and the ADMIN role.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
	g := e.Group(
		"/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin),
	)

	// ---- Events ----
	g.POST("/events", a.CreateEvent)
	g.PUT("/events/:id/windows", a.UpdateEventWindows)

	// ---- Campgrounds ----
	g.POST("/campgrounds", a.CreateCampground)
	g.PUT("/campgrounds/:id", a.UpdateCampground)
	g.DELETE("/campgrounds/:id", a.DeleteCampground)
	g.GET("/campgrounds/:id/occupancy", a.OccupancyReport)

	// ---- Campsites ----
	g.POST("/sites", a.CreateSite)
	g.PUT("/sites/:id", a.UpdateSite)
	g.PUT("/sites/:id/position", a.SetSitePosition)
	g.PUT("/sites/:id/availability", a.SetSiteAvailability)
	g.DELETE("/sites/:id", a.DeleteSite)
	g.GET("/sites/:id/reservations", a.ListSiteReservations)

	// ---- Reservations ----
	g.POST("/reservations", a.CreateReservation)
	g.DELETE("/reservations/:id", a.DeleteReservation)
	g.POST("/reservations/import", a.ImportLegacy)
}
