package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eventgrounds/campsite-booking/internal/model"
	"github.com/eventgrounds/campsite-booking/internal/repository"
)

// BookingHandler serves a customer's own reservations.
type BookingHandler struct {
	Reservations *repository.ReservationRepo
}

func NewBookingHandler(r *repository.ReservationRepo) *BookingHandler {
	return &BookingHandler{Reservations: r}
}

// MyBookings lists the user's reservations, newest first.
func (h *BookingHandler) MyBookings(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	bookings, err := h.Reservations.ListByUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": bookings})
}

type reservationResp struct {
	ID         uint64  `json:"id"`
	CampsiteID uint64  `json:"campsite_id"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	Adults     uint32  `json:"adults"`
	Children   uint32  `json:"children"`
	Status     string  `json:"status"`
	OrderRef   *string `json:"order_ref,omitempty"`
}

func toReservationResp(res *model.Reservation) reservationResp {
	return reservationResp{
		ID:         res.ID,
		CampsiteID: res.CampsiteID,
		CheckIn:    res.CheckIn.String(),
		CheckOut:   res.CheckOut.String(),
		Adults:     res.Adults,
		Children:   res.Children,
		Status:     res.Status,
		OrderRef:   res.OrderRef,
	}
}

// GetBooking returns one reservation owned by the user. A reservation that
// exists but belongs to someone else reads as not found.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	res, err := h.Reservations.GetByIDForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, toReservationResp(res))
}

type claimReq struct {
	ClaimToken string `json:"claim_token"`
}

// ClaimBooking attaches a legacy-imported reservation to the calling user.
// The claim token was handed to the guest out of band; a wrong or already
// used token reads as not found.
func (h *BookingHandler) ClaimBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req claimReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.ClaimToken) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "claim_token required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	res, err := h.Reservations.Claim(ctx, strings.TrimSpace(req.ClaimToken), userID)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no unclaimed booking for that token"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "claim failed"})
	}
	return c.JSON(http.StatusOK, toReservationResp(res))
}
