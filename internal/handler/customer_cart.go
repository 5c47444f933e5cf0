package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eventgrounds/campsite-booking/internal/booking"
	"github.com/eventgrounds/campsite-booking/internal/model"
	"github.com/eventgrounds/campsite-booking/internal/queue"
	"github.com/eventgrounds/campsite-booking/internal/repository"
	queue_publisher "github.com/eventgrounds/campsite-booking/internal/service"
	"github.com/eventgrounds/campsite-booking/internal/utils"
)

// CartHandler serves the customer cart: priced line items accumulated
// between browsing and checkout. Prices are frozen when an item is added;
// checkout forwards them verbatim to the order pipeline.
type CartHandler struct {
	Events       *repository.EventRepo
	Sites        *repository.CampsiteRepo
	Cart         *repository.CartRepo
	Reservations *repository.ReservationRepo
}

func NewCartHandler(e *repository.EventRepo, s *repository.CampsiteRepo, cart *repository.CartRepo, r *repository.ReservationRepo) *CartHandler {
	return &CartHandler{Events: e, Sites: s, Cart: cart, Reservations: r}
}

type addItemReq struct {
	CampsiteID uint64 `json:"campsite_id"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Adults     int    `json:"adults"`
	Children   int    `json:"children"`
	Mode       string `json:"mode"`
}

// AddItem prices a stay and stores it as a cart line item. The availability
// check here reads the current snapshot only; the authoritative overlap
// rejection happens when the order consumer inserts the reservation.
func (h *CartHandler) AddItem(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req addItemReq
	if err := c.Bind(&req); err != nil || req.CampsiteID == 0 {
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

	site, err := h.Sites.GetByID(ctx, req.CampsiteID)
	if err != nil {
		if errors.Is(err, repository.ErrCampsiteNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "campsite not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !site.IsAvailable {
		return c.JSON(http.StatusConflict, echo.Map{"error": "campsite not on sale"})
	}
	event, err := h.Events.GetForCampground(ctx, site.CampgroundID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	bounds := event.ExtendedBounds()
	if stay.CheckIn.Before(bounds.CheckIn) || bounds.CheckOut.Before(stay.CheckOut) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "stay outside the event's open window"})
	}
	existing, err := h.Reservations.IntervalsBySite(ctx, site.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !booking.Free(existing, stay) {
		return c.JSON(http.StatusConflict, echo.Map{"error": "stay overlaps an existing booking"})
	}

	line, err := booking.NewLineItem(site.ID, site.RateCard(), stay, req.Adults, req.Children, mode)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	item := &model.CartItem{
		UserID:      userID,
		CampsiteID:  line.SiteID,
		CheckIn:     line.CheckIn,
		CheckOut:    line.CheckOut,
		Adults:      uint32(line.Adults),
		Children:    uint32(line.Children),
		PricingMode: string(line.Mode),
		Nights:      uint32(line.Nights),
		BaseCents:   line.BaseCents,
		ExtraCents:  line.ExtraOccupantCents,
		TotalCents:  line.TotalCents,
	}
	if err := h.Cart.Add(ctx, item); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save cart item failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": item.ID, "item": line})
}

type cartItemResp struct {
	ID   uint64           `json:"id"`
	Item booking.LineItem `json:"item"`
}

// ListItems returns the user's cart with a running total.
func (h *CartHandler) ListItems(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Cart.ListByUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]cartItemResp, 0, len(items))
	var total uint64
	for _, ci := range items {
		out = append(out, cartItemResp{ID: ci.ID, Item: ci.LineItem()})
		total += uint64(ci.TotalCents)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out, "total_cents": total})
}

// RemoveItem deletes one cart entry owned by the user.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid cart item id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Cart.Remove(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "cart item not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// Checkout submits the whole cart as one order. The order is published to
// the broker and fulfilled asynchronously by the order consumer, so the
// response is 202 with the order reference, not a list of confirmed
// reservations.
func (h *CartHandler) Checkout(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	items, err := h.Cart.ListByUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if len(items) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cart is empty"})
	}

	orderRef, err := utils.NewOrderRef()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "checkout failed"})
	}

	lines := make([]queue.OrderLine, 0, len(items))
	var total uint64
	for _, ci := range items {
		lines = append(lines, queue.OrderLine{
			CampsiteID:  ci.CampsiteID,
			CheckIn:     ci.CheckIn,
			CheckOut:    ci.CheckOut,
			Adults:      ci.Adults,
			Children:    ci.Children,
			PricingMode: ci.PricingMode,
			Nights:      ci.Nights,
			BaseCents:   ci.BaseCents,
			ExtraCents:  ci.ExtraCents,
			TotalCents:  ci.TotalCents,
		})
		total += uint64(ci.TotalCents)
	}

	ev := queue.OrderSubmittedEvent{
		OrderRef:    orderRef,
		UserID:      userID,
		Lines:       lines,
		TotalCents:  total,
		SubmittedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := queue_publisher.PublishOrderSubmitted(ctx, ev); err != nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "order submission failed, cart kept"})
	}
	if _, err := h.Cart.ClearForUser(ctx, userID); err != nil {
		// order is on its way; an uncleaned cart is recoverable by the user
		c.Logger().Warnf("checkout: clear cart for user=%d failed: %v", userID, err)
	}
	return c.JSON(http.StatusAccepted, echo.Map{
		"order_ref":   orderRef,
		"total_cents": total,
		"lines":       len(lines),
	})
}
