package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart is the per-user working set of pending selections. One cart per user,
// created lazily on first access; it survives checkout with its items cleared.
type Cart struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
}

// Total sums the item subtotals. Computed, never stored.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// ItemCount sums the quantities across all items.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// CartItem links a cart to a menu item. The (cart, menu item) pair is unique;
// adding an item already in the cart increments its quantity instead.
type CartItem struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CartID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_menu_item" json:"cart_id"`
	MenuItemID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_menu_item" json:"menu_item_id"`
	MenuItem   MenuItem  `gorm:"foreignKey:MenuItemID;constraint:OnDelete:CASCADE" json:"menu_item"`
	Quantity   int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Subtotal is unit price times quantity.
func (ci *CartItem) Subtotal() decimal.Decimal {
	return ci.MenuItem.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}

// UpdateCartItemRequest carries the new quantity for a cart line. Zero or a
// negative value removes the line, so the field is a pointer: "required"
// must still accept an explicit 0.
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}
