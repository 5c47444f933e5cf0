package router

import (
	"github.com/labstack/echo/v4"

	"github.com/eventgrounds/campsite-booking/internal/handler"
	"github.com/eventgrounds/campsite-booking/internal/middleware"
	"github.com/eventgrounds/campsite-booking/internal/model"
)

// RegisterCustomer registers customer-scoped endpoints under /v1. All
// routes require a valid JWT and the CUSTOMER role: the cart lifecycle,
// checkout, the user's own bookings and claiming a legacy-imported booking.
func RegisterCustomer(e *echo.Echo, cart *handler.CartHandler, bookings *handler.BookingHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleCustomer),
	)

	g.POST("/cart", cart.AddItem)
	g.GET("/cart", cart.ListItems)
	g.DELETE("/cart/:id", cart.RemoveItem)
	g.POST("/cart/checkout", cart.Checkout)

	g.GET("/my-bookings", bookings.MyBookings)
	g.GET("/bookings/:id", bookings.GetBooking)
	g.POST("/bookings/claim", bookings.ClaimBooking)
}
