package services

import (
	"context"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mehmood09/restaurant-system/models"
)

// mockCategoryRepo keeps categories in memory and mimics the cascade delete by
// holding a reference to the menu item store.
type mockCategoryRepo struct {
	menu       *mockMenuItemRepo
	categories map[uuid.UUID]*models.Category
}

func newMockCategoryRepo(menu *mockMenuItemRepo) *mockCategoryRepo {
	return &mockCategoryRepo{menu: menu, categories: make(map[uuid.UUID]*models.Category)}
}

func (m *mockCategoryRepo) add(name string) *models.Category {
	category := &models.Category{ID: uuid.New(), Name: name}
	m.categories[category.ID] = category
	return category
}

func (m *mockCategoryRepo) Create(_ context.Context, category *models.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	m.categories[category.ID] = category
	return nil
}

func (m *mockCategoryRepo) Update(_ context.Context, category *models.Category) error {
	m.categories[category.ID] = category
	return nil
}

func (m *mockCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.categories, id)
	for itemID, item := range m.menu.items {
		if item.CategoryID == id {
			delete(m.menu.items, itemID)
		}
	}
	return nil
}

func (m *mockCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Category, error) {
	category, ok := m.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return category, nil
}

func (m *mockCategoryRepo) FindAll(_ context.Context) ([]models.Category, error) {
	var categories []models.Category
	for _, category := range m.categories {
		categories = append(categories, *category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

func (m *mockCategoryRepo) FindFirst(ctx context.Context, limit int) ([]models.Category, error) {
	categories, _ := m.FindAll(ctx)
	if len(categories) > limit {
		categories = categories[:limit]
	}
	return categories, nil
}

func newMenuServiceForTest() (*MenuService, *mockCategoryRepo, *mockMenuItemRepo) {
	menu := newMockMenuItemRepo()
	categories := newMockCategoryRepo(menu)
	return NewMenuService(categories, menu, zap.NewNop()), categories, menu
}

func menuItemRequest(categoryID uuid.UUID, name, price string) *models.MenuItemRequest {
	return &models.MenuItemRequest{
		CategoryID: categoryID,
		Name:       name,
		Price:      decimal.RequireFromString(price),
	}
}

func TestCreateMenuItem(t *testing.T) {
	svc, categories, _ := newMenuServiceForTest()
	mains := categories.add("Mains")

	item, serviceErr := svc.CreateMenuItem(context.Background(), menuItemRequest(mains.ID, "Biryani", "9.50"))
	assert.Nil(t, serviceErr)
	assert.True(t, item.IsAvailable, "new items default to available")
	assert.Equal(t, mains.ID, item.CategoryID)
}

func TestCreateMenuItem_RejectsNonPositivePrice(t *testing.T) {
	svc, categories, _ := newMenuServiceForTest()
	mains := categories.add("Mains")

	for _, price := range []string{"0", "-1.00"} {
		_, serviceErr := svc.CreateMenuItem(context.Background(), menuItemRequest(mains.ID, "Biryani", price))
		assert.NotNil(t, serviceErr, "price %s must be rejected", price)
		assert.Equal(t, 400, serviceErr.StatusCode)
	}
}

func TestCreateMenuItem_RejectsUnknownCategory(t *testing.T) {
	svc, _, _ := newMenuServiceForTest()

	_, serviceErr := svc.CreateMenuItem(context.Background(), menuItemRequest(uuid.New(), "Biryani", "9.50"))
	assert.NotNil(t, serviceErr)
	assert.Equal(t, 400, serviceErr.StatusCode)
}

func TestCreateCategory_RejectsBlankName(t *testing.T) {
	svc, _, _ := newMenuServiceForTest()

	_, serviceErr := svc.CreateCategory(context.Background(), &models.CategoryRequest{Name: "   "})
	assert.NotNil(t, serviceErr)
	assert.Equal(t, 400, serviceErr.StatusCode)
}

func TestDeleteCategory_CascadesToItems(t *testing.T) {
	svc, categories, menu := newMenuServiceForTest()
	drinks := categories.add("Drinks")
	_, _ = svc.CreateMenuItem(context.Background(), menuItemRequest(drinks.ID, "Lassi", "3.00"))
	_, _ = svc.CreateMenuItem(context.Background(), menuItemRequest(drinks.ID, "Chai", "1.50"))

	serviceErr := svc.DeleteCategory(context.Background(), drinks.ID)
	assert.Nil(t, serviceErr)

	items, _ := menu.FindAll(context.Background())
	assert.Empty(t, items)
}

func TestToggleAvailability(t *testing.T) {
	svc, _, menu := newMenuServiceForTest()
	kebab := menu.add("Kebab", "6.00", true)

	toggled, serviceErr := svc.ToggleAvailability(context.Background(), kebab.ID)
	assert.Nil(t, serviceErr)
	assert.False(t, toggled.IsAvailable)

	toggled, serviceErr = svc.ToggleAvailability(context.Background(), kebab.ID)
	assert.Nil(t, serviceErr)
	assert.True(t, toggled.IsAvailable)

	_, serviceErr = svc.ToggleAvailability(context.Background(), uuid.New())
	assert.NotNil(t, serviceErr)
	assert.Equal(t, 404, serviceErr.StatusCode)
}

func TestMenu_FiltersUnavailableAndByCategory(t *testing.T) {
	svc, categories, menu := newMenuServiceForTest()
	mains := categories.add("Mains")
	categories.add("Drinks")

	onMenu := menu.add("Karahi", "11.00", true)
	onMenu.CategoryID = mains.ID
	hidden := menu.add("Nihari", "10.00", false)
	hidden.CategoryID = mains.ID
	menu.add("Cola", "1.00", true)

	page, serviceErr := svc.Menu(context.Background(), &mains.ID)
	assert.Nil(t, serviceErr)
	assert.Len(t, page.Categories, 2, "every category is listed regardless of the filter")
	assert.Len(t, page.MenuItems, 1)
	assert.Equal(t, "Karahi", page.MenuItems[0].Name)

	page, serviceErr = svc.Menu(context.Background(), nil)
	assert.Nil(t, serviceErr)
	assert.Len(t, page.MenuItems, 2, "unavailable items never appear")
}

func TestHome_LimitsFeaturedListing(t *testing.T) {
	svc, categories, menu := newMenuServiceForTest()
	mains := categories.add("Mains")
	for i := 0; i < featuredLimit+3; i++ {
		item := menu.add("Dish", "5.00", true)
		item.CategoryID = mains.ID
	}

	home, serviceErr := svc.Home(context.Background())
	assert.Nil(t, serviceErr)
	assert.Len(t, home.FeaturedItems, featuredLimit)
}

func TestUpdateMenuItem(t *testing.T) {
	svc, categories, menu := newMenuServiceForTest()
	mains := categories.add("Mains")
	haleem := menu.add("Haleem", "7.00", true)
	haleem.CategoryID = mains.ID

	unavailable := false
	req := menuItemRequest(mains.ID, "Haleem Special", "8.25")
	req.IsAvailable = &unavailable

	updated, serviceErr := svc.UpdateMenuItem(context.Background(), haleem.ID, req)
	assert.Nil(t, serviceErr)
	assert.Equal(t, "Haleem Special", updated.Name)
	assert.True(t, decimal.RequireFromString("8.25").Equal(updated.Price))
	assert.False(t, updated.IsAvailable)

	_, serviceErr = svc.UpdateMenuItem(context.Background(), uuid.New(), menuItemRequest(mains.ID, "Ghost", "1.00"))
	assert.NotNil(t, serviceErr)
	assert.Equal(t, 404, serviceErr.StatusCode)
}
