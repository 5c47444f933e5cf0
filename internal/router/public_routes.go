package router

import (
	"github.com/labstack/echo/v4"

	"github.com/eventgrounds/campsite-booking/internal/handler"
)

// RegisterPublic registers the unauthenticated browse endpoints: events,
// campground maps, site statuses, night grids and quotes. The optional
// middleware (response cache, rate limiter) applies to this group only so
// authenticated traffic is never cached.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/v1", mw...)
	g.GET("/events", p.ListEvents)
	g.GET("/events/:id/campgrounds", p.ListCampgrounds)
	g.GET("/campgrounds/:id/sites", p.ListSites)
	g.GET("/sites/:id/nights", p.SiteNights)
	// quoting is a pure computation, POST only because of the body
	g.POST("/sites/:id/quote", p.QuoteSite)
}
