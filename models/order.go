package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order statuses. Checkout creates orders as completed; the intermediate
// kitchen states are only reachable through the staff status update.
const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

const (
	PaymentMethodCash   = "cash"
	PaymentMethodCard   = "card"
	PaymentMethodOnline = "online"
)

// FirstTokenSeq is the numeric suffix of the first token ever issued (#1001).
const FirstTokenSeq = 1001

// Order is a permanent purchase record. Append-only after creation except for
// status and the update timestamp.
type Order struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	TokenNumber   string          `gorm:"type:varchar(10);uniqueIndex;not null" json:"token_number"`
	CustomerName  string          `gorm:"type:varchar(200);not null" json:"customer_name"`
	CustomerPhone string          `gorm:"type:varchar(20);not null" json:"customer_phone"`
	CustomerEmail string          `gorm:"type:varchar(254)" json:"customer_email"`
	Notes         string          `gorm:"type:text" json:"notes"`
	PaymentMethod string          `gorm:"type:varchar(20);not null;default:'cash'" json:"payment_method"`
	Status        string          `gorm:"type:varchar(20);not null;default:'completed'" json:"status"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	Tax           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"tax"`
	Total         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	Items         []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

// OrderItem is an immutable snapshot of a menu item at order time. It carries
// the name and price by value so later menu edits or deletions cannot touch it.
type OrderItem struct {
	ID           uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	MenuItemName string          `gorm:"type:varchar(200);not null" json:"menu_item_name"`
	Quantity     int             `gorm:"not null" json:"quantity"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Subtotal     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`
}

// CheckoutRequest is the customer-details payload for placing an order.
type CheckoutRequest struct {
	CustomerName  string `json:"customer_name" binding:"required,max=200"`
	CustomerPhone string `json:"customer_phone" binding:"required,max=20"`
	CustomerEmail string `json:"customer_email" binding:"omitempty,email"`
	PaymentMethod string `json:"payment_method" binding:"required,oneof=cash card online"`
	Notes         string `json:"notes"`
}

// UpdateOrderStatusRequest is the staff payload for moving an order through
// the kitchen workflow.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending preparing ready completed cancelled"`
}

// AnalyticsSummary is the read-side rollup over completed orders.
type AnalyticsSummary struct {
	DailyRevenue   decimal.Decimal `json:"daily_revenue"`
	WeeklyRevenue  decimal.Decimal `json:"weekly_revenue"`
	MonthlyRevenue decimal.Decimal `json:"monthly_revenue"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalOrders    int64           `json:"total_orders"`
	PendingOrders  int64           `json:"pending_orders"`
}
