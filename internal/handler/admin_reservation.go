package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eventgrounds/campsite-booking/internal/booking"
	"github.com/eventgrounds/campsite-booking/internal/model"
	"github.com/eventgrounds/campsite-booking/internal/repository"
	"github.com/eventgrounds/campsite-booking/internal/utils"
)

// ListSiteReservations returns every reservation of one campsite, earliest
// first.
func (h *AdminHandler) ListSiteReservations(c echo.Context) error {
	siteID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid site id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	reservations, err := h.Reservations.ListBySite(ctx, siteID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]reservationResp, 0, len(reservations))
	for _, res := range reservations {
		out = append(out, toReservationResp(res))
	}
	return c.JSON(http.StatusOK, echo.Map{"reservations": out})
}

type adminReservationReq struct {
	CampsiteID uint64  `json:"campsite_id"`
	UserID     *uint64 `json:"user_id"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	Adults     uint32  `json:"adults"`
	Children   uint32  `json:"children"`
}

// CreateReservation enters a reservation directly, for phone and walk-up
// bookings. It runs through the same overlap check as checkout, so a taken
// window is rejected with 409.
func (h *AdminHandler) CreateReservation(c echo.Context) error {
	var req adminReservationReq
	if err := c.Bind(&req); err != nil || req.CampsiteID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	stay, err := parseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if req.Adults < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": booking.ErrInvalidOccupancy.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Sites.GetByID(ctx, req.CampsiteID); err != nil {
		if errors.Is(err, repository.ErrCampsiteNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "campsite not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	res := &model.Reservation{
		CampsiteID: req.CampsiteID,
		UserID:     req.UserID,
		CheckIn:    stay.CheckIn,
		CheckOut:   stay.CheckOut,
		Adults:     req.Adults,
		Children:   req.Children,
		Status:     model.ReservationConfirmed,
	}
	if err := h.Reservations.Create(ctx, res); err != nil {
		if errors.Is(err, repository.ErrOverlap) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "stay overlaps an existing booking"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create reservation failed"})
	}
	return c.JSON(http.StatusCreated, toReservationResp(res))
}

// DeleteReservation cancels a reservation, freeing its nights.
func (h *AdminHandler) DeleteReservation(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Reservations.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// OccupancyReport aggregates booked versus available site counts per night
// across one campground. The window defaults to the event's extended bounds
// and can be narrowed with from/to query parameters.
func (h *AdminHandler) OccupancyReport(c echo.Context) error {
	campgroundID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid campground id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	event, err := h.Events.GetForCampground(ctx, campgroundID)
	if err != nil {
		if errors.Is(err, repository.ErrCampgroundNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "campground not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	window := event.ExtendedBounds()
	if fromQ, toQ := c.QueryParam("from"), c.QueryParam("to"); fromQ != "" || toQ != "" {
		if window, err = parseStay(fromQ, toQ); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
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

	perSite := make([][]booking.Interval, 0, len(sites))
	for _, s := range sites {
		perSite = append(perSite, intervals[s.ID])
	}
	counts := booking.CountNights(perSite, window)
	return c.JSON(http.StatusOK, echo.Map{
		"campground_id": campgroundID,
		"sites":         len(sites),
		"nights":        counts,
	})
}

type legacyImportReq struct {
	Bookings []adminReservationReq `json:"bookings"`
}

type legacyImportResult struct {
	CampsiteID uint64 `json:"campsite_id"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Status     string `json:"status"`
	ClaimToken string `json:"claim_token,omitempty"`
	Error      string `json:"error,omitempty"`
}

// ImportLegacy bulk-loads bookings carried over from the previous system.
// Each imported reservation is created CLAIM_PENDING with a claim token to
// hand to the guest; rows that overlap existing bookings are reported and
// skipped rather than failing the batch.
func (h *AdminHandler) ImportLegacy(c echo.Context) error {
	var req legacyImportReq
	if err := c.Bind(&req); err != nil || len(req.Bookings) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bookings required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	results := make([]legacyImportResult, 0, len(req.Bookings))
	imported := 0
	for _, b := range req.Bookings {
		result := legacyImportResult{CampsiteID: b.CampsiteID, CheckIn: b.CheckIn, CheckOut: b.CheckOut}
		stay, err := parseStay(b.CheckIn, b.CheckOut)
		if err != nil {
			result.Status = "rejected"
			result.Error = err.Error()
			results = append(results, result)
			continue
		}
		adults := b.Adults
		if adults == 0 {
			adults = 1 // legacy exports often lack occupant counts
		}
		token, err := utils.NewClaimToken()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token generation failed"})
		}
		res := &model.Reservation{
			CampsiteID: b.CampsiteID,
			CheckIn:    stay.CheckIn,
			CheckOut:   stay.CheckOut,
			Adults:     adults,
			Children:   b.Children,
			Status:     model.ReservationClaimPending,
			ClaimToken: &token,
		}
		if err := h.Reservations.Create(ctx, res); err != nil {
			result.Status = "rejected"
			if errors.Is(err, repository.ErrOverlap) {
				result.Error = "overlaps an existing booking"
			} else {
				result.Error = "create failed"
			}
			results = append(results, result)
			continue
		}
		imported++
		result.Status = "imported"
		result.ClaimToken = token
		results = append(results, result)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"imported": imported,
		"rejected": len(results) - imported,
		"results":  results,
	})
}
