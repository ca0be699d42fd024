package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mehmood09/restaurant-system/models"
	"github.com/mehmood09/restaurant-system/repository"
)

// taxRate is the fixed sales tax applied at checkout.
var taxRate = decimal.NewFromFloat(0.10)

// CheckoutSummary is the preview shown before an order is placed.
type CheckoutSummary struct {
	Cart     *models.Cart    `json:"cart"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// OrderService turns carts into orders and serves order history.
type OrderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	logger    *zap.Logger
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, logger *zap.Logger) *OrderService {
	return &OrderService{orderRepo: orderRepo, cartRepo: cartRepo, logger: logger}
}

// PreviewCheckout returns the cart with its computed totals, for the checkout
// page before confirmation.
func (s *OrderService) PreviewCheckout(ctx context.Context, userID string) (*CheckoutSummary, *ServiceError) {
	id, serviceErr := parseUserID(userID)
	if serviceErr != nil {
		return nil, serviceErr
	}

	cart, err := s.cartRepo.FindOrCreateByUserID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to load cart", zap.Error(err))
		return nil, internal("Failed to load cart")
	}

	subtotal, tax, total := computeTotals(cart)
	return &CheckoutSummary{Cart: cart, Subtotal: subtotal, Tax: tax, Total: total}, nil
}

// Checkout converts the user's cart into a persisted order. The order and its
// item snapshots are written and the cart emptied in one transaction; on any
// failure nothing is created.
func (s *OrderService) Checkout(ctx context.Context, userID string, req *models.CheckoutRequest) (*models.Order, *ServiceError) {
	id, serviceErr := parseUserID(userID)
	if serviceErr != nil {
		return nil, serviceErr
	}

	cart, err := s.cartRepo.FindOrCreateByUserID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to load cart", zap.Error(err))
		return nil, internal("Failed to load cart")
	}
	if len(cart.Items) == 0 {
		return nil, badRequest("Your cart is empty")
	}

	subtotal, tax, total := computeTotals(cart)

	order := &models.Order{
		UserID:        id,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		Notes:         req.Notes,
		PaymentMethod: req.PaymentMethod,
		Status:        models.OrderStatusCompleted,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         total,
	}

	// Snapshot name and price now; later menu edits must not reach past orders.
	for _, cartItem := range cart.Items {
		order.Items = append(order.Items, models.OrderItem{
			MenuItemName: cartItem.MenuItem.Name,
			Quantity:     cartItem.Quantity,
			Price:        cartItem.MenuItem.Price,
			Subtotal:     cartItem.Subtotal(),
		})
	}

	if err := s.orderRepo.PlaceOrder(ctx, order, cart.ID); err != nil {
		s.logger.Error("Failed to place order", zap.Error(err))
		return nil, internal("Failed to place order")
	}

	s.logger.Info("Order placed",
		zap.String("token", order.TokenNumber),
		zap.String("user_id", userID),
		zap.String("total", order.Total.String()),
	)
	return order, nil
}

// GetUserOrders returns the caller's orders, newest first.
func (s *OrderService) GetUserOrders(ctx context.Context, userID string) ([]models.Order, *ServiceError) {
	id, serviceErr := parseUserID(userID)
	if serviceErr != nil {
		return nil, serviceErr
	}

	orders, err := s.orderRepo.FindByUserID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to fetch orders", zap.Error(err))
		return nil, internal("Failed to fetch orders")
	}
	return orders, nil
}

// GetOrderByID returns a single order for its owner, for the receipt view.
func (s *OrderService) GetOrderByID(ctx context.Context, userID string, orderID uuid.UUID) (*models.Order, *ServiceError) {
	id, serviceErr := parseUserID(userID)
	if serviceErr != nil {
		return nil, serviceErr
	}

	order, err := s.orderRepo.FindByIDAndUserID(ctx, orderID, id)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound("Order not found")
		}
		s.logger.Error("Failed to fetch order", zap.Error(err))
		return nil, internal("Failed to fetch order")
	}
	return order, nil
}

// GetAllOrders returns every order, newest first. Staff only.
func (s *OrderService) GetAllOrders(ctx context.Context) ([]models.Order, *ServiceError) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch orders", zap.Error(err))
		return nil, internal("Failed to fetch orders")
	}
	return orders, nil
}

// UpdateStatus moves an order to a new workflow status. Staff only.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) *ServiceError {
	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		if isNotFound(err) {
			return notFound("Order not found")
		}
		s.logger.Error("Failed to update order status", zap.Error(err))
		return internal("Failed to update order status")
	}
	return nil
}

// computeTotals derives subtotal, 10% tax and total from the cart using
// decimal arithmetic. Tax is rounded to cents.
func computeTotals(cart *models.Cart) (subtotal, tax, total decimal.Decimal) {
	subtotal = cart.Total()
	tax = subtotal.Mul(taxRate).Round(2)
	total = subtotal.Add(tax)
	return subtotal, tax, total
}
