package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/eventgrounds/campsite-booking/internal/booking"
	"github.com/eventgrounds/campsite-booking/internal/model"
)

// CartRepo persists priced cart line items between add-to-cart and checkout.
// The price columns are written once when the item is added and are never
// recomputed here; checkout reads them back verbatim for the order payload.
type CartRepo struct {
	db *sql.DB
}

// NewCartRepo returns a CartRepo bound to the given database.
func NewCartRepo(db *sql.DB) *CartRepo { return &CartRepo{db: db} }

const cartColumns = `id, user_id, campsite_id, check_in, check_out,
	adults, children, pricing_mode, nights, base_cents, extra_cents, total_cents, created_at`

func scanCartItem(row interface{ Scan(...any) error }) (*model.CartItem, error) {
	var (
		ci      model.CartItem
		in, end time.Time
	)
	if err := row.Scan(
		&ci.ID, &ci.UserID, &ci.CampsiteID, &in, &end,
		&ci.Adults, &ci.Children, &ci.PricingMode, &ci.Nights,
		&ci.BaseCents, &ci.ExtraCents, &ci.TotalCents, &ci.CreatedAt,
	); err != nil {
		return nil, err
	}
	ci.CheckIn = booking.DateOf(in)
	ci.CheckOut = booking.DateOf(end)
	return &ci, nil
}

// Add inserts a cart line item and populates its generated ID.
func (r *CartRepo) Add(ctx context.Context, ci *model.CartItem) error {
	const q = `INSERT INTO cart_items
	           (user_id, campsite_id, check_in, check_out, adults, children,
	            pricing_mode, nights, base_cents, extra_cents, total_cents)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		ci.UserID, ci.CampsiteID, ci.CheckIn.String(), ci.CheckOut.String(),
		ci.Adults, ci.Children, ci.PricingMode, ci.Nights,
		ci.BaseCents, ci.ExtraCents, ci.TotalCents)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	ci.ID = uint64(id)
	const sel = `SELECT created_at FROM cart_items WHERE id = ?`
	return r.db.QueryRowContext(ctx, sel, ci.ID).Scan(&ci.CreatedAt)
}

// ListByUser returns a user's cart entries oldest first.
func (r *CartRepo) ListByUser(ctx context.Context, userID uint64) ([]*model.CartItem, error) {
	const q = `SELECT ` + cartColumns + ` FROM cart_items WHERE user_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.CartItem
	for rows.Next() {
		ci, err := scanCartItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ci)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Remove deletes one cart item owned by the user. ErrCartItemNotFound is
// returned when the row does not exist or belongs to someone else.
func (r *CartRepo) Remove(ctx context.Context, id, userID uint64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM cart_items WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// ClearForUser empties a user's cart after a successful checkout and
// returns the number of rows removed.
func (r *CartRepo) ClearForUser(ctx context.Context, userID uint64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE user_id = ?`, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// GetByID returns one cart item regardless of owner; callers enforce
// ownership.
func (r *CartRepo) GetByID(ctx context.Context, id uint64) (*model.CartItem, error) {
	const q = `SELECT ` + cartColumns + ` FROM cart_items WHERE id = ?`
	ci, err := scanCartItem(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}
	return ci, nil
}
