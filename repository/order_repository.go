package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mehmood09/restaurant-system/models"
)

// tokenSeqLockID is the advisory lock key serializing token assignment across
// concurrent checkouts.
const tokenSeqLockID = 982451

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// PlaceOrder assigns the next token number, persists the order with its
	// item snapshots and empties the cart, all in a single transaction.
	PlaceOrder(ctx context.Context, order *models.Order, cartID uuid.UUID) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
	FindByIDAndUserID(ctx context.Context, orderID, userID uuid.UUID) (*models.Order, error)
	FindAll(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) error
	SumCompletedTotals(ctx context.Context, from, to *time.Time) (decimal.Decimal, error)
	CountByStatuses(ctx context.Context, statuses []string) (int64, error)
}

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository.
func NewGormOrderRepository(db *gorm.DB) OrderRepository {
	return &GormOrderRepository{db: db}
}

// PlaceOrder runs the checkout write path. The advisory transaction lock
// serializes the read-increment-write on the token sequence, so two
// concurrent checkouts can never mint the same token or skip one.
func (r *GormOrderRepository) PlaceOrder(ctx context.Context, order *models.Order, cartID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", tokenSeqLockID).Error; err != nil {
			return err
		}

		var lastSeq int
		err := tx.Raw(
			"SELECT COALESCE(MAX(CAST(SUBSTRING(token_number FROM 2) AS INTEGER)), ?) FROM orders",
			models.FirstTokenSeq-1,
		).Scan(&lastSeq).Error
		if err != nil {
			return err
		}
		order.TokenNumber = fmt.Sprintf("#%d", lastSeq+1)

		if err := tx.Create(order).Error; err != nil {
			return err
		}

		// The cart row persists; only its lines are consumed by the order.
		return tx.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
	})
}

func (r *GormOrderRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *GormOrderRepository) FindByIDAndUserID(ctx context.Context, orderID, userID uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormOrderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *GormOrderRepository) UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SumCompletedTotals sums the total column over completed orders created in
// [from, to). Nil bounds leave that side open. Missing rows sum to zero.
func (r *GormOrderRepository) SumCompletedTotals(ctx context.Context, from, to *time.Time) (decimal.Decimal, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("status = ?", models.OrderStatusCompleted)
	if from != nil {
		query = query.Where("created_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("created_at < ?", *to)
	}

	var sum decimal.Decimal
	err := query.Select("COALESCE(SUM(total), 0)").Scan(&sum).Error
	return sum, err
}

func (r *GormOrderRepository) CountByStatuses(ctx context.Context, statuses []string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("status IN ?", statuses).
		Count(&count).Error
	return count, err
}
