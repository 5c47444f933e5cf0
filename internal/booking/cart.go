package booking

// LineItem is a priced stay packaged for the cart and, later, the
// order-creation payload. The same fields travel verbatim from add-to-cart
// through checkout into the order pipeline; nothing is recomputed at the
// hand-off, so the only obligation here is that building a line item from
// the same rate card and stay parameters is deterministic.
//
// The core does not re-validate availability when a line item is forwarded
// to checkout. That recheck belongs to the order service, which holds the
// overlap constraint and is the only place a double-booking can be
// rejected.
type LineItem struct {
	SiteID             uint64 `json:"site_id"`
	CheckIn            Date   `json:"check_in"`
	CheckOut           Date   `json:"check_out"`
	Adults             int    `json:"adults"`
	Children           int    `json:"children"`
	Mode               Mode   `json:"pricing_mode"`
	Nights             int    `json:"nights"`
	BaseCents          uint32 `json:"base_cents"`
	ExtraOccupantCents uint32 `json:"extra_occupant_cents"`
	TotalCents         uint32 `json:"total_cents"`
}

// NewLineItem prices a stay and packages the result as a cart line item.
// Validation errors from the interval and pricing layers pass through
// unchanged.
func NewLineItem(siteID uint64, card RateCard, stay Interval, adults, children int, mode Mode) (LineItem, error) {
	q, err := Price(card, stay, adults, children, mode)
	if err != nil {
		return LineItem{}, err
	}
	return LineItem{
		SiteID:             siteID,
		CheckIn:            stay.CheckIn,
		CheckOut:           stay.CheckOut,
		Adults:             adults,
		Children:           children,
		Mode:               q.Mode,
		Nights:             q.Nights,
		BaseCents:          q.BaseCents,
		ExtraOccupantCents: q.ExtraOccupantCents,
		TotalCents:         q.TotalCents,
	}, nil
}
