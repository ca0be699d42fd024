package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mehmood09/restaurant-system/models"
)

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	FindAll(ctx context.Context) ([]models.Category, error)
	FindFirst(ctx context.Context, limit int) ([]models.Category, error)
}

// MenuItemRepository defines the interface for menu item data access.
type MenuItemRepository interface {
	Create(ctx context.Context, item *models.MenuItem) error
	Update(ctx context.Context, item *models.MenuItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.MenuItem, error)
	FindAvailableByID(ctx context.Context, id uuid.UUID) (*models.MenuItem, error)
	FindAll(ctx context.Context) ([]models.MenuItem, error)
	FindAvailable(ctx context.Context, categoryID *uuid.UUID) ([]models.MenuItem, error)
	FindFirstAvailable(ctx context.Context, limit int) ([]models.MenuItem, error)
}

// GormCategoryRepository implements CategoryRepository using GORM.
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository.
func NewGormCategoryRepository(db *gorm.DB) CategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *GormCategoryRepository) Update(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// Delete removes the category. The menu item foreign key is declared with
// ON DELETE CASCADE, so the items go with it.
func (r *GormCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id).Error
}

func (r *GormCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	return &category, err
}

func (r *GormCategoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *GormCategoryRepository) FindFirst(ctx context.Context, limit int) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Order("name ASC").Limit(limit).Find(&categories).Error
	return categories, err
}

// GormMenuItemRepository implements MenuItemRepository using GORM.
type GormMenuItemRepository struct {
	db *gorm.DB
}

// NewGormMenuItemRepository creates a new GormMenuItemRepository.
func NewGormMenuItemRepository(db *gorm.DB) MenuItemRepository {
	return &GormMenuItemRepository{db: db}
}

func (r *GormMenuItemRepository) Create(ctx context.Context, item *models.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *GormMenuItemRepository) Update(ctx context.Context, item *models.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *GormMenuItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.MenuItem{}, "id = ?", id).Error
}

func (r *GormMenuItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	return &item, err
}

func (r *GormMenuItemRepository) FindAvailableByID(ctx context.Context, id uuid.UUID) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.WithContext(ctx).Where("id = ? AND is_available = true", id).First(&item).Error
	return &item, err
}

func (r *GormMenuItemRepository) FindAll(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.WithContext(ctx).Order("category_id ASC, name ASC").Find(&items).Error
	return items, err
}

func (r *GormMenuItemRepository) FindAvailable(ctx context.Context, categoryID *uuid.UUID) ([]models.MenuItem, error) {
	query := r.db.WithContext(ctx).Where("is_available = true")
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var items []models.MenuItem
	err := query.Order("category_id ASC, name ASC").Find(&items).Error
	return items, err
}

func (r *GormMenuItemRepository) FindFirstAvailable(ctx context.Context, limit int) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.WithContext(ctx).
		Where("is_available = true").
		Order("category_id ASC, name ASC").
		Limit(limit).
		Find(&items).Error
	return items, err
}
