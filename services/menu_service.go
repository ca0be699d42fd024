package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mehmood09/restaurant-system/models"
	"github.com/mehmood09/restaurant-system/repository"
)

// featuredLimit bounds the home page listing.
const featuredLimit = 6

// HomePage is the landing view data: a handful of categories and featured
// (available) items.
type HomePage struct {
	Categories    []models.Category `json:"categories"`
	FeaturedItems []models.MenuItem `json:"featured_items"`
}

// MenuPage is the menu listing: all categories plus the available items,
// optionally narrowed to one category.
type MenuPage struct {
	Categories       []models.Category `json:"categories"`
	MenuItems        []models.MenuItem `json:"menu_items"`
	SelectedCategory *uuid.UUID        `json:"selected_category,omitempty"`
}

// MenuService serves menu browsing and the staff-side catalog management.
type MenuService struct {
	categoryRepo repository.CategoryRepository
	menuItemRepo repository.MenuItemRepository
	logger       *zap.Logger
}

// NewMenuService creates a new MenuService.
func NewMenuService(categoryRepo repository.CategoryRepository, menuItemRepo repository.MenuItemRepository, logger *zap.Logger) *MenuService {
	return &MenuService{categoryRepo: categoryRepo, menuItemRepo: menuItemRepo, logger: logger}
}

// Home returns the landing page data.
func (s *MenuService) Home(ctx context.Context) (*HomePage, *ServiceError) {
	categories, err := s.categoryRepo.FindFirst(ctx, featuredLimit)
	if err != nil {
		s.logger.Error("Failed to list categories", zap.Error(err))
		return nil, internal("Failed to load home page")
	}

	items, err := s.menuItemRepo.FindFirstAvailable(ctx, featuredLimit)
	if err != nil {
		s.logger.Error("Failed to list featured items", zap.Error(err))
		return nil, internal("Failed to load home page")
	}

	return &HomePage{Categories: categories, FeaturedItems: items}, nil
}

// Menu returns the available items, optionally filtered by category.
func (s *MenuService) Menu(ctx context.Context, categoryID *uuid.UUID) (*MenuPage, *ServiceError) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list categories", zap.Error(err))
		return nil, internal("Failed to load menu")
	}

	items, err := s.menuItemRepo.FindAvailable(ctx, categoryID)
	if err != nil {
		s.logger.Error("Failed to list menu items", zap.Error(err))
		return nil, internal("Failed to load menu")
	}

	return &MenuPage{Categories: categories, MenuItems: items, SelectedCategory: categoryID}, nil
}

// ListCategories returns every category ordered by name.
func (s *MenuService) ListCategories(ctx context.Context) ([]models.Category, *ServiceError) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list categories", zap.Error(err))
		return nil, internal("Failed to list categories")
	}
	return categories, nil
}

// CreateCategory adds a new category.
func (s *MenuService) CreateCategory(ctx context.Context, req *models.CategoryRequest) (*models.Category, *ServiceError) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, badRequest("Category name must not be empty")
	}

	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		s.logger.Error("Failed to create category", zap.Error(err))
		return nil, internal("Failed to create category")
	}
	return category, nil
}

// UpdateCategory edits an existing category.
func (s *MenuService) UpdateCategory(ctx context.Context, id uuid.UUID, req *models.CategoryRequest) (*models.Category, *ServiceError) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, badRequest("Category name must not be empty")
	}

	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound("Category not found")
		}
		s.logger.Error("Failed to load category", zap.Error(err))
		return nil, internal("Failed to update category")
	}

	category.Name = req.Name
	category.Description = req.Description
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		s.logger.Error("Failed to update category", zap.Error(err))
		return nil, internal("Failed to update category")
	}
	return category, nil
}

// DeleteCategory removes a category and, by cascade, its menu items.
func (s *MenuService) DeleteCategory(ctx context.Context, id uuid.UUID) *ServiceError {
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		if isNotFound(err) {
			return notFound("Category not found")
		}
		s.logger.Error("Failed to load category", zap.Error(err))
		return internal("Failed to delete category")
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete category", zap.Error(err))
		return internal("Failed to delete category")
	}
	return nil
}

// ListMenuItems returns the full catalog including unavailable items.
func (s *MenuService) ListMenuItems(ctx context.Context) ([]models.MenuItem, *ServiceError) {
	items, err := s.menuItemRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list menu items", zap.Error(err))
		return nil, internal("Failed to list menu items")
	}
	return items, nil
}

// CreateMenuItem adds a new menu item to an existing category.
func (s *MenuService) CreateMenuItem(ctx context.Context, req *models.MenuItemRequest) (*models.MenuItem, *ServiceError) {
	if serviceErr := s.validateMenuItemRequest(ctx, req); serviceErr != nil {
		return nil, serviceErr
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	item := &models.MenuItem{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		IsAvailable: isAvailable,
	}
	if err := s.menuItemRepo.Create(ctx, item); err != nil {
		s.logger.Error("Failed to create menu item", zap.Error(err))
		return nil, internal("Failed to create menu item")
	}
	return item, nil
}

// UpdateMenuItem edits an existing menu item.
func (s *MenuService) UpdateMenuItem(ctx context.Context, id uuid.UUID, req *models.MenuItemRequest) (*models.MenuItem, *ServiceError) {
	if serviceErr := s.validateMenuItemRequest(ctx, req); serviceErr != nil {
		return nil, serviceErr
	}

	item, err := s.menuItemRepo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound("Menu item not found")
		}
		s.logger.Error("Failed to load menu item", zap.Error(err))
		return nil, internal("Failed to update menu item")
	}

	item.CategoryID = req.CategoryID
	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price
	item.ImageURL = req.ImageURL
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if err := s.menuItemRepo.Update(ctx, item); err != nil {
		s.logger.Error("Failed to update menu item", zap.Error(err))
		return nil, internal("Failed to update menu item")
	}
	return item, nil
}

// DeleteMenuItem removes a menu item. Past order snapshots keep their copies.
func (s *MenuService) DeleteMenuItem(ctx context.Context, id uuid.UUID) *ServiceError {
	if _, err := s.menuItemRepo.FindByID(ctx, id); err != nil {
		if isNotFound(err) {
			return notFound("Menu item not found")
		}
		s.logger.Error("Failed to load menu item", zap.Error(err))
		return internal("Failed to delete menu item")
	}

	if err := s.menuItemRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete menu item", zap.Error(err))
		return internal("Failed to delete menu item")
	}
	return nil
}

// ToggleAvailability flips a menu item's availability and returns the item
// with its new state. No other field changes.
func (s *MenuService) ToggleAvailability(ctx context.Context, id uuid.UUID) (*models.MenuItem, *ServiceError) {
	item, err := s.menuItemRepo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound("Menu item not found")
		}
		s.logger.Error("Failed to load menu item", zap.Error(err))
		return nil, internal("Failed to toggle availability")
	}

	item.IsAvailable = !item.IsAvailable
	if err := s.menuItemRepo.Update(ctx, item); err != nil {
		s.logger.Error("Failed to toggle availability", zap.Error(err))
		return nil, internal("Failed to toggle availability")
	}
	return item, nil
}

func (s *MenuService) validateMenuItemRequest(ctx context.Context, req *models.MenuItemRequest) *ServiceError {
	if strings.TrimSpace(req.Name) == "" {
		return badRequest("Menu item name must not be empty")
	}
	if !req.Price.GreaterThan(decimal.Zero) {
		return badRequest("Price must be greater than zero")
	}

	if _, err := s.categoryRepo.FindByID(ctx, req.CategoryID); err != nil {
		if isNotFound(err) {
			return badRequest("Category does not exist")
		}
		s.logger.Error("Failed to load category", zap.Error(err))
		return internal("Failed to validate menu item")
	}
	return nil
}
