// Package queue defines the order message payload and the background
// consumer that turns submitted orders into reservation rows.
package queue

import "github.com/eventgrounds/campsite-booking/internal/booking"

// OrderQueueName is the durable queue carrying submitted orders from
// checkout to the fulfilment consumer.
const OrderQueueName = "order.submitted"

// OrderLine is one campsite stay inside a submitted order. The price fields
// are the ones computed at add-to-cart time; fulfilment never reprices.
type OrderLine struct {
	CampsiteID  uint64       `json:"campsite_id"`
	CheckIn     booking.Date `json:"check_in"`
	CheckOut    booking.Date `json:"check_out"`
	Adults      uint32       `json:"adults"`
	Children    uint32       `json:"children"`
	PricingMode string       `json:"pricing_mode"`
	Nights      uint32       `json:"nights"`
	BaseCents   uint32       `json:"base_cents"`
	ExtraCents  uint32       `json:"extra_cents"`
	TotalCents  uint32       `json:"total_cents"`
}

// OrderSubmittedEvent is published when a customer checks out their cart.
// OrderRef ties the resulting reservations back to the order.
type OrderSubmittedEvent struct {
	OrderRef    string      `json:"order_ref"`
	UserID      uint64      `json:"user_id"`
	Lines       []OrderLine `json:"lines"`
	TotalCents  uint64      `json:"total_cents"`
	SubmittedAt string      `json:"submitted_at"`
}
