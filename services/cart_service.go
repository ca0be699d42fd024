package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mehmood09/restaurant-system/models"
	"github.com/mehmood09/restaurant-system/repository"
)

// parseUserID converts the user ID carried in the request context.
func parseUserID(userID string) (uuid.UUID, *ServiceError) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, badRequest("Invalid user ID format")
	}
	return id, nil
}

// CartService handles cart mutations for the authenticated user.
type CartService struct {
	cartRepo     repository.CartRepository
	menuItemRepo repository.MenuItemRepository
	logger       *zap.Logger
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repository.CartRepository, menuItemRepo repository.MenuItemRepository, logger *zap.Logger) *CartService {
	return &CartService{cartRepo: cartRepo, menuItemRepo: menuItemRepo, logger: logger}
}

// GetCart returns the user's cart, creating it on first access.
func (s *CartService) GetCart(ctx context.Context, userID string) (*models.Cart, *ServiceError) {
	id, serviceErr := parseUserID(userID)
	if serviceErr != nil {
		return nil, serviceErr
	}

	cart, err := s.cartRepo.FindOrCreateByUserID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to load cart", zap.Error(err))
		return nil, internal("Failed to load cart")
	}
	return cart, nil
}

// AddItem puts one unit of a menu item into the user's cart. Adding an item
// already in the cart increments its quantity instead of creating a second row.
func (s *CartService) AddItem(ctx context.Context, userID string, menuItemID uuid.UUID) (*models.CartItem, *ServiceError) {
	id, serviceErr := parseUserID(userID)
	if serviceErr != nil {
		return nil, serviceErr
	}

	menuItem, err := s.menuItemRepo.FindAvailableByID(ctx, menuItemID)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound("Menu item not found")
		}
		s.logger.Error("Failed to load menu item", zap.Error(err))
		return nil, internal("Failed to add item to cart")
	}

	cart, err := s.cartRepo.FindOrCreateByUserID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to load cart", zap.Error(err))
		return nil, internal("Failed to add item to cart")
	}

	item, err := s.cartRepo.FindItem(ctx, cart.ID, menuItem.ID)
	if err != nil {
		if !isNotFound(err) {
			s.logger.Error("Failed to look up cart item", zap.Error(err))
			return nil, internal("Failed to add item to cart")
		}
		item = &models.CartItem{
			CartID:     cart.ID,
			MenuItemID: menuItem.ID,
			Quantity:   1,
		}
		if err := s.cartRepo.CreateItem(ctx, item); err != nil {
			s.logger.Error("Failed to create cart item", zap.Error(err))
			return nil, internal("Failed to add item to cart")
		}
		item.MenuItem = *menuItem
		return item, nil
	}

	item.Quantity++
	if err := s.cartRepo.UpdateItem(ctx, item); err != nil {
		s.logger.Error("Failed to update cart item", zap.Error(err))
		return nil, internal("Failed to add item to cart")
	}
	item.MenuItem = *menuItem
	return item, nil
}

// UpdateItem sets the quantity of a cart line the user owns. A quantity of
// zero or less removes the line; that is the documented policy, not an error.
func (s *CartService) UpdateItem(ctx context.Context, userID string, itemID uuid.UUID, quantity int) *ServiceError {
	item, serviceErr := s.ownedItem(ctx, userID, itemID)
	if serviceErr != nil {
		return serviceErr
	}

	if quantity <= 0 {
		if err := s.cartRepo.DeleteItem(ctx, item.ID); err != nil {
			s.logger.Error("Failed to remove cart item", zap.Error(err))
			return internal("Failed to update cart")
		}
		return nil
	}

	item.Quantity = quantity
	if err := s.cartRepo.UpdateItem(ctx, item); err != nil {
		s.logger.Error("Failed to update cart item", zap.Error(err))
		return internal("Failed to update cart")
	}
	return nil
}

// RemoveItem deletes a cart line the user owns.
func (s *CartService) RemoveItem(ctx context.Context, userID string, itemID uuid.UUID) *ServiceError {
	item, serviceErr := s.ownedItem(ctx, userID, itemID)
	if serviceErr != nil {
		return serviceErr
	}

	if err := s.cartRepo.DeleteItem(ctx, item.ID); err != nil {
		s.logger.Error("Failed to remove cart item", zap.Error(err))
		return internal("Failed to remove item from cart")
	}
	return nil
}

// ownedItem loads a cart line and verifies it belongs to the caller's cart.
// A line owned by someone else reads as not found, never as a hint that it
// exists.
func (s *CartService) ownedItem(ctx context.Context, userID string, itemID uuid.UUID) (*models.CartItem, *ServiceError) {
	id, serviceErr := parseUserID(userID)
	if serviceErr != nil {
		return nil, serviceErr
	}

	item, cart, err := s.cartRepo.FindItemByID(ctx, itemID)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound("Cart item not found")
		}
		s.logger.Error("Failed to load cart item", zap.Error(err))
		return nil, internal("Failed to load cart item")
	}

	if cart.UserID != id {
		return nil, notFound("Cart item not found")
	}
	return item, nil
}
