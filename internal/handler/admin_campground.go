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

type campgroundReq struct {
	EventID  uint64  `json:"event_id"`
	Name     string  `json:"name"`
	MapImage *string `json:"map_image"`
}

// CreateCampground adds a campground to an event.
func (h *AdminHandler) CreateCampground(c echo.Context) error {
	var req campgroundReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.EventID == 0 || req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "event_id and name required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Events.GetByID(ctx, req.EventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	g := &model.Campground{EventID: req.EventID, Name: req.Name, MapImage: req.MapImage}
	if err := h.Campgrounds.Create(ctx, g); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create campground failed"})
	}
	return c.JSON(http.StatusCreated, campgroundResp{ID: g.ID, EventID: g.EventID, Name: g.Name, MapImage: g.MapImage})
}

// UpdateCampground changes a campground's name and map image.
func (h *AdminHandler) UpdateCampground(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid campground id"})
	}
	var req campgroundReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Campgrounds.Update(ctx, id, req.Name, req.MapImage); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "campground not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteCampground removes a campground with all of its sites, their
// reservations and cart entries.
func (h *AdminHandler) DeleteCampground(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid campground id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	if err := h.Campgrounds.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "campground not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
