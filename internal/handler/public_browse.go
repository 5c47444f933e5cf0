package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eventgrounds/campsite-booking/internal/booking"
	"github.com/eventgrounds/campsite-booking/internal/model"
	"github.com/eventgrounds/campsite-booking/internal/repository"
)

// PublicHandler serves the unauthenticated browse API: events, campground
// maps, per-site statuses, night grids and price quotes.
type PublicHandler struct {
	Events       *repository.EventRepo
	Campgrounds  *repository.CampgroundRepo
	Sites        *repository.CampsiteRepo
	Reservations *repository.ReservationRepo
}

func NewPublicHandler(e *repository.EventRepo, g *repository.CampgroundRepo, s *repository.CampsiteRepo, r *repository.ReservationRepo) *PublicHandler {
	return &PublicHandler{Events: e, Campgrounds: g, Sites: s, Reservations: r}
}

type eventResp struct {
	ID        uint64       `json:"id"`
	Name      string       `json:"name"`
	StartsOn  booking.Date `json:"starts_on"`
	EndsOn    booking.Date `json:"ends_on"`
	OpenFrom  booking.Date `json:"open_from"`
	OpenUntil booking.Date `json:"open_until"`
}

func toEventResp(e *model.Event) eventResp {
	return eventResp{
		ID: e.ID, Name: e.Name,
		StartsOn: e.StartsOn, EndsOn: e.EndsOn,
		OpenFrom: e.OpenFrom, OpenUntil: e.OpenUntil,
	}
}

// ListEvents returns all event editions, newest first.
func (h *PublicHandler) ListEvents(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	events, err := h.Events.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]eventResp, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResp(e))
	}
	return c.JSON(http.StatusOK, echo.Map{"events": out})
}

type campgroundResp struct {
	ID       uint64  `json:"id"`
	EventID  uint64  `json:"event_id"`
	Name     string  `json:"name"`
	MapImage *string `json:"map_image,omitempty"`
}

// ListCampgrounds returns the campgrounds of one event.
func (h *PublicHandler) ListCampgrounds(c echo.Context) error {
	eventID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	event, err := h.Events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	grounds, err := h.Campgrounds.ListByEvent(ctx, event.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]campgroundResp, 0, len(grounds))
	for _, g := range grounds {
		out = append(out, campgroundResp{ID: g.ID, EventID: g.EventID, Name: g.Name, MapImage: g.MapImage})
	}
	return c.JSON(http.StatusOK, echo.Map{"event": toEventResp(event), "campgrounds": out})
}

type siteResp struct {
	ID                       uint64             `json:"id"`
	Label                    string             `json:"label"`
	Powered                  bool               `json:"powered"`
	WidthM                   float64            `json:"width_m"`
	LengthM                  float64            `json:"length_m"`
	NightlyRateCents         uint32             `json:"nightly_rate_cents"`
	FullEventRateCents       *uint32            `json:"full_event_rate_cents,omitempty"`
	ExtraAdultNightlyCents   *uint32            `json:"extra_adult_nightly_cents,omitempty"`
	ExtraAdultFullEventCents *uint32            `json:"extra_adult_full_event_cents,omitempty"`
	PosX                     *float64           `json:"pos_x,omitempty"`
	PosY                     *float64           `json:"pos_y,omitempty"`
	Status                   booking.SiteStatus `json:"status"`
	FreeForStay              *bool              `json:"free_for_stay,omitempty"`
}

// ListSites returns a campground's sites with their status against the
// event's core window. With check_in and check_out query parameters each
// site additionally reports whether that exact stay is free, and
// free_only=true narrows the list to on-sale sites with the whole window
// open.
func (h *PublicHandler) ListSites(c echo.Context) error {
	campgroundID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid campground id"})
	}

	var (
		stay    booking.Interval
		hasStay bool
	)
	if inQ, outQ := c.QueryParam("check_in"), c.QueryParam("check_out"); inQ != "" || outQ != "" {
		var err error
		if stay, err = parseStay(inQ, outQ); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		hasStay = true
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	event, err := h.Events.GetForCampground(ctx, campgroundID)
	if err != nil {
		if errors.Is(err, repository.ErrCampgroundNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "campground not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if hasStay {
		bounds := event.ExtendedBounds()
		if stay.CheckIn.Before(bounds.CheckIn) || bounds.CheckOut.Before(stay.CheckOut) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "stay outside the event's open window"})
		}
	}

	sites, err := h.Sites.ListByCampground(ctx, campgroundID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	intervals, err := h.Reservations.IntervalsByCampground(ctx, campgroundID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	freeOnly := hasStay && c.QueryParam("free_only") == "true"
	keep := map[uint64]bool{}
	if freeOnly {
		snapshot := make([]booking.Site, 0, len(sites))
		for _, s := range sites {
			snapshot = append(snapshot, booking.Site{
				ID:           s.ID,
				Label:        s.Label,
				Available:    s.IsAvailable,
				Reservations: intervals[s.ID],
			})
		}
		for _, s := range booking.FilterAvailable(snapshot, stay) {
			keep[s.ID] = true
		}
	}

	core, bounds := event.CoreWindow(), event.ExtendedBounds()
	out := make([]siteResp, 0, len(sites))
	for _, s := range sites {
		if freeOnly && !keep[s.ID] {
			continue
		}
		resp := siteResp{
			ID:                       s.ID,
			Label:                    s.Label,
			Powered:                  s.Powered,
			WidthM:                   s.WidthM,
			LengthM:                  s.LengthM,
			NightlyRateCents:         s.NightlyRateCents,
			FullEventRateCents:       s.FullEventRateCents,
			ExtraAdultNightlyCents:   s.ExtraAdultNightlyCents,
			ExtraAdultFullEventCents: s.ExtraAdultFullEventCents,
			PosX:                     s.PosX,
			PosY:                     s.PosY,
			Status:                   booking.Classify(intervals[s.ID], core, bounds, s.IsAvailable),
		}
		if hasStay {
			free := s.IsAvailable && booking.Free(intervals[s.ID], stay)
			resp.FreeForStay = &free
		}
		out = append(out, resp)
	}
	return c.JSON(http.StatusOK, echo.Map{"event": toEventResp(event), "sites": out})
}

type nightResp struct {
	Night  booking.Date `json:"night"`
	Booked bool         `json:"booked"`
}

// SiteNights returns the per-night occupancy grid for one site. The window
// defaults to the event's extended bounds and can be narrowed with from/to
// query parameters.
func (h *PublicHandler) SiteNights(c echo.Context) error {
	siteID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid site id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	site, err := h.Sites.GetByID(ctx, siteID)
	if err != nil {
		if errors.Is(err, repository.ErrCampsiteNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "campsite not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	event, err := h.Events.GetForCampground(ctx, site.CampgroundID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	window := event.ExtendedBounds()
	if fromQ, toQ := c.QueryParam("from"), c.QueryParam("to"); fromQ != "" || toQ != "" {
		if window, err = parseStay(fromQ, toQ); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
	}

	reservations, err := h.Reservations.IntervalsBySite(ctx, siteID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	nights := make([]nightResp, 0, window.Nights())
	for night, booked := range booking.Nightly(reservations, window) {
		nights = append(nights, nightResp{Night: night, Booked: booked})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"site_id": site.ID,
		"label":   site.Label,
		"nights":  nights,
	})
}

type quoteReq struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Adults   int    `json:"adults"`
	Children int    `json:"children"`
	Mode     string `json:"mode"`
}

// QuoteSite prices a candidate stay for one site without reserving
// anything. The response carries the full breakdown plus whether the
// full-event package could be offered for this stay.
func (h *PublicHandler) QuoteSite(c echo.Context) error {
	siteID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid site id"})
	}
	var req quoteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	stay, err := parseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	mode := booking.Mode(req.Mode)
	if mode == "" {
		mode = booking.ModeNightly
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	site, err := h.Sites.GetByID(ctx, siteID)
	if err != nil {
		if errors.Is(err, repository.ErrCampsiteNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "campsite not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	event, err := h.Events.GetForCampground(ctx, site.CampgroundID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	bounds := event.ExtendedBounds()
	if stay.CheckIn.Before(bounds.CheckIn) || bounds.CheckOut.Before(stay.CheckOut) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "stay outside the event's open window"})
	}

	card := site.RateCard()
	quote, err := booking.Price(card, stay, req.Adults, req.Children, mode)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"site_id":              site.ID,
		"check_in":             stay.CheckIn,
		"check_out":            stay.CheckOut,
		"quote":                quote,
		"full_event_available": booking.FullEventEligible(card, stay),
	})
}
