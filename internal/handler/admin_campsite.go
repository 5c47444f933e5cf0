package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eventgrounds/campsite-booking/internal/model"
	"github.com/eventgrounds/campsite-booking/internal/repository"
)

type campsiteReq struct {
	CampgroundID             uint64  `json:"campground_id"`
	Label                    string  `json:"label"`
	Powered                  bool    `json:"powered"`
	WidthM                   float64 `json:"width_m"`
	LengthM                  float64 `json:"length_m"`
	NightlyRateCents         uint32  `json:"nightly_rate_cents"`
	FullEventRateCents       *uint32 `json:"full_event_rate_cents"`
	ExtraAdultNightlyCents   *uint32 `json:"extra_adult_nightly_cents"`
	ExtraAdultFullEventCents *uint32 `json:"extra_adult_full_event_cents"`
	IsAvailable              *bool   `json:"is_available"`
}

func (req *campsiteReq) validate() error {
	req.Label = strings.TrimSpace(req.Label)
	if req.Label == "" {
		return errors.New("label required")
	}
	if req.NightlyRateCents == 0 {
		return errors.New("nightly_rate_cents required")
	}
	if req.WidthM <= 0 || req.LengthM <= 0 {
		return errors.New("width_m and length_m must be positive")
	}
	return nil
}

// CreateSite adds a campsite with its rate card. New sites start on sale
// unless is_available is given.
func (h *AdminHandler) CreateSite(c echo.Context) error {
	var req campsiteReq
	if err := c.Bind(&req); err != nil || req.CampgroundID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := req.validate(); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Campgrounds.GetByID(ctx, req.CampgroundID); err != nil {
		if errors.Is(err, repository.ErrCampgroundNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "campground not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	site := &model.Campsite{
		CampgroundID:             req.CampgroundID,
		Label:                    req.Label,
		Powered:                  req.Powered,
		WidthM:                   req.WidthM,
		LengthM:                  req.LengthM,
		NightlyRateCents:         req.NightlyRateCents,
		FullEventRateCents:       req.FullEventRateCents,
		ExtraAdultNightlyCents:   req.ExtraAdultNightlyCents,
		ExtraAdultFullEventCents: req.ExtraAdultFullEventCents,
		IsAvailable:              available,
	}
	if err := h.Sites.Create(ctx, site); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create campsite failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": site.ID})
}

// UpdateSite rewrites a campsite's label, attributes and rate card.
func (h *AdminHandler) UpdateSite(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid site id"})
	}
	var req campsiteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := req.validate(); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	site, err := h.Sites.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCampsiteNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "campsite not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	site.Label = req.Label
	site.Powered = req.Powered
	site.WidthM = req.WidthM
	site.LengthM = req.LengthM
	site.NightlyRateCents = req.NightlyRateCents
	site.FullEventRateCents = req.FullEventRateCents
	site.ExtraAdultNightlyCents = req.ExtraAdultNightlyCents
	site.ExtraAdultFullEventCents = req.ExtraAdultFullEventCents
	if req.IsAvailable != nil {
		site.IsAvailable = *req.IsAvailable
	}
	if err := h.Sites.Update(ctx, site); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

type positionReq struct {
	PosX *float64 `json:"pos_x"`
	PosY *float64 `json:"pos_y"`
}

// SetSitePosition places or moves a site on the campground map. Coordinates
// are percentages of the map image; sending nulls clears the placement.
func (h *AdminHandler) SetSitePosition(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid site id"})
	}
	var req positionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if (req.PosX == nil) != (req.PosY == nil) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "pos_x and pos_y must be set together"})
	}
	if req.PosX != nil {
		if *req.PosX < 0 || *req.PosX > 100 || *req.PosY < 0 || *req.PosY > 100 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "coordinates must be 0..100 percent"})
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Sites.SetPosition(ctx, id, req.PosX, req.PosY); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "campsite not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

type availabilityReq struct {
	IsAvailable bool `json:"is_available"`
}

// SetSiteAvailability flips the admin on-sale flag. Existing reservations
// are untouched; an off-sale site with bookings shows PARTIAL or BOOKED,
// never UNAVAILABLE.
func (h *AdminHandler) SetSiteAvailability(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid site id"})
	}
	var req availabilityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Sites.SetAvailability(ctx, id, req.IsAvailable); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "campsite not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteSite removes a campsite that has no reservations.
func (h *AdminHandler) DeleteSite(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid site id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Sites.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": "campsite still has reservations"})
		case errors.Is(err, sql.ErrNoRows):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "campsite not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
