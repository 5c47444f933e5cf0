package model

import (
	"time"

	"github.com/eventgrounds/campsite-booking/internal/booking"
)

// CartItem persists a priced stay between add-to-cart and checkout. The
// price columns are the quote breakdown frozen at add time; checkout
// forwards the same fields verbatim into the order payload without
// recomputation.
//
// Fields:
//  ID                 – primary key identifier.
//  UserID             – shopper who owns the cart entry.
//  CampsiteID         – selected site.
//  CheckIn, CheckOut  – requested stay window.
//  Adults, Children   – occupant counts.
//  PricingMode        – NIGHTLY or FULL_EVENT (after any downgrade).
//  Nights             – nights charged.
//  BaseCents          – base amount of the quote.
//  ExtraCents         – extra-occupant surcharge amount.
//  TotalCents         – total price attached to the line item.
//  CreatedAt          – creation timestamp.
type CartItem struct {
	ID          uint64       // cart_items.id
	UserID      uint64       // cart_items.user_id
	CampsiteID  uint64       // cart_items.campsite_id
	CheckIn     booking.Date // cart_items.check_in (DATE)
	CheckOut    booking.Date // cart_items.check_out (DATE)
	Adults      uint32       // cart_items.adults
	Children    uint32       // cart_items.children
	PricingMode string       // cart_items.pricing_mode
	Nights      uint32       // cart_items.nights
	BaseCents   uint32       // cart_items.base_cents
	ExtraCents  uint32       // cart_items.extra_cents
	TotalCents  uint32       // cart_items.total_cents
	CreatedAt   time.Time    // cart_items.created_at
}

// LineItem projects the stored row back into the core's line-item shape for
// the order payload.
func (ci *CartItem) LineItem() booking.LineItem {
	return booking.LineItem{
		SiteID:             ci.CampsiteID,
		CheckIn:            ci.CheckIn,
		CheckOut:           ci.CheckOut,
		Adults:             int(ci.Adults),
		Children:           int(ci.Children),
		Mode:               booking.Mode(ci.PricingMode),
		Nights:             int(ci.Nights),
		BaseCents:          ci.BaseCents,
		ExtraOccupantCents: ci.ExtraCents,
		TotalCents:         ci.TotalCents,
	}
}
