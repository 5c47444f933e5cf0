package handler

import (
	"github.com/eventgrounds/campsite-booking/internal/repository"
)

// AdminHandler bundles the repositories the event-staff endpoints operate
// on: event windows, campgrounds, campsites and direct reservation entry.
type AdminHandler struct {
	Events       *repository.EventRepo
	Campgrounds  *repository.CampgroundRepo
	Sites        *repository.CampsiteRepo
	Reservations *repository.ReservationRepo
}

// NewAdminHandler constructs an AdminHandler and panics if any dependency
// is nil.
func NewAdminHandler(e *repository.EventRepo, g *repository.CampgroundRepo, s *repository.CampsiteRepo, r *repository.ReservationRepo) *AdminHandler {
	if e == nil || g == nil || s == nil || r == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{Events: e, Campgrounds: g, Sites: s, Reservations: r}
}
