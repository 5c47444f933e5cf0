package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eventgrounds/campsite-booking/internal/booking"
	"github.com/eventgrounds/campsite-booking/internal/model"
)

type eventWindowsReq struct {
	Name      string `json:"name"`
	StartsOn  string `json:"starts_on"`
	EndsOn    string `json:"ends_on"`
	OpenFrom  string `json:"open_from"`
	OpenUntil string `json:"open_until"`
}

// parseEventWindows validates both event windows and that the extended
// bounds contain the core window.
func parseEventWindows(req eventWindowsReq) (core, extended booking.Interval, err error) {
	if core, err = parseStay(req.StartsOn, req.EndsOn); err != nil {
		return
	}
	if extended, err = parseStay(req.OpenFrom, req.OpenUntil); err != nil {
		return
	}
	if core.CheckIn.Before(extended.CheckIn) || extended.CheckOut.Before(core.CheckOut) {
		err = errors.New("open window must contain the event window")
	}
	return
}

// CreateEvent registers a new event edition with its core window and
// extended open bounds.
func (h *AdminHandler) CreateEvent(c echo.Context) error {
	var req eventWindowsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}
	core, extended, err := parseEventWindows(req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	event := &model.Event{
		Name:      req.Name,
		StartsOn:  core.CheckIn,
		EndsOn:    core.CheckOut,
		OpenFrom:  extended.CheckIn,
		OpenUntil: extended.CheckOut,
	}
	if err := h.Events.Create(ctx, event); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create event failed"})
	}
	return c.JSON(http.StatusCreated, toEventResp(event))
}

// UpdateEventWindows rewrites an event's core window and extended bounds.
// Existing reservations are untouched; sites with stays outside the new
// bounds simply show as PARTIAL against the new window.
func (h *AdminHandler) UpdateEventWindows(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	var req eventWindowsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	core, extended, err := parseEventWindows(req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Events.UpdateWindows(ctx, id, core.CheckIn, core.CheckOut, extended.CheckIn, extended.CheckOut); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
