package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mehmood09/restaurant-system/models"
)

// --- In-memory repositories shared by the service tests ---

type mockMenuItemRepo struct {
	items map[uuid.UUID]*models.MenuItem
}

func newMockMenuItemRepo() *mockMenuItemRepo {
	return &mockMenuItemRepo{items: make(map[uuid.UUID]*models.MenuItem)}
}

func (m *mockMenuItemRepo) add(name string, price string, available bool) *models.MenuItem {
	item := &models.MenuItem{
		ID:          uuid.New(),
		CategoryID:  uuid.New(),
		Name:        name,
		Price:       decimal.RequireFromString(price),
		IsAvailable: available,
	}
	m.items[item.ID] = item
	return item
}

func (m *mockMenuItemRepo) Create(_ context.Context, item *models.MenuItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	m.items[item.ID] = item
	return nil
}

func (m *mockMenuItemRepo) Update(_ context.Context, item *models.MenuItem) error {
	m.items[item.ID] = item
	return nil
}

func (m *mockMenuItemRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.items, id)
	return nil
}

func (m *mockMenuItemRepo) FindByID(_ context.Context, id uuid.UUID) (*models.MenuItem, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (m *mockMenuItemRepo) FindAvailableByID(_ context.Context, id uuid.UUID) (*models.MenuItem, error) {
	item, ok := m.items[id]
	if !ok || !item.IsAvailable {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (m *mockMenuItemRepo) FindAll(_ context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	for _, item := range m.items {
		items = append(items, *item)
	}
	return items, nil
}

func (m *mockMenuItemRepo) FindAvailable(_ context.Context, categoryID *uuid.UUID) ([]models.MenuItem, error) {
	var items []models.MenuItem
	for _, item := range m.items {
		if !item.IsAvailable {
			continue
		}
		if categoryID != nil && item.CategoryID != *categoryID {
			continue
		}
		items = append(items, *item)
	}
	return items, nil
}

func (m *mockMenuItemRepo) FindFirstAvailable(ctx context.Context, limit int) ([]models.MenuItem, error) {
	items, _ := m.FindAvailable(ctx, nil)
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

type mockCartRepo struct {
	menu  *mockMenuItemRepo
	carts map[uuid.UUID]*models.Cart     // keyed by user ID
	items map[uuid.UUID]*models.CartItem // keyed by cart item ID
}

func newMockCartRepo(menu *mockMenuItemRepo) *mockCartRepo {
	return &mockCartRepo{
		menu:  menu,
		carts: make(map[uuid.UUID]*models.Cart),
		items: make(map[uuid.UUID]*models.CartItem),
	}
}

func (m *mockCartRepo) FindOrCreateByUserID(_ context.Context, userID uuid.UUID) (*models.Cart, error) {
	cart, ok := m.carts[userID]
	if !ok {
		cart = &models.Cart{ID: uuid.New(), UserID: userID}
		m.carts[userID] = cart
	}

	cart.Items = nil
	for _, item := range m.items {
		if item.CartID != cart.ID {
			continue
		}
		loaded := *item
		if menuItem, ok := m.menu.items[item.MenuItemID]; ok {
			loaded.MenuItem = *menuItem
		}
		cart.Items = append(cart.Items, loaded)
	}
	return cart, nil
}

func (m *mockCartRepo) FindItem(_ context.Context, cartID, menuItemID uuid.UUID) (*models.CartItem, error) {
	for _, item := range m.items {
		if item.CartID == cartID && item.MenuItemID == menuItemID {
			return item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCartRepo) FindItemByID(_ context.Context, itemID uuid.UUID) (*models.CartItem, *models.Cart, error) {
	item, ok := m.items[itemID]
	if !ok {
		return nil, nil, gorm.ErrRecordNotFound
	}
	for _, cart := range m.carts {
		if cart.ID == item.CartID {
			return item, cart, nil
		}
	}
	return nil, nil, gorm.ErrRecordNotFound
}

func (m *mockCartRepo) CreateItem(_ context.Context, item *models.CartItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	m.items[item.ID] = item
	return nil
}

func (m *mockCartRepo) UpdateItem(_ context.Context, item *models.CartItem) error {
	m.items[item.ID] = item
	return nil
}

func (m *mockCartRepo) DeleteItem(_ context.Context, itemID uuid.UUID) error {
	delete(m.items, itemID)
	return nil
}

func (m *mockCartRepo) itemCountFor(cartID uuid.UUID) int {
	count := 0
	for _, item := range m.items {
		if item.CartID == cartID {
			count++
		}
	}
	return count
}

func newCartServiceForTest() (*CartService, *mockCartRepo, *mockMenuItemRepo) {
	menu := newMockMenuItemRepo()
	carts := newMockCartRepo(menu)
	return NewCartService(carts, menu, zap.NewNop()), carts, menu
}

// --- Tests ---

func TestAddItem_CreatesRowThenIncrements(t *testing.T) {
	svc, carts, menu := newCartServiceForTest()
	userID := uuid.New().String()
	burger := menu.add("Burger", "8.50", true)

	first, serviceErr := svc.AddItem(context.Background(), userID, burger.ID)
	assert.Nil(t, serviceErr)
	assert.Equal(t, 1, first.Quantity)

	second, serviceErr := svc.AddItem(context.Background(), userID, burger.ID)
	assert.Nil(t, serviceErr)
	assert.Equal(t, 2, second.Quantity)
	assert.Equal(t, first.ID, second.ID, "adding the same item twice must not create a second row")

	cart, _ := svc.GetCart(context.Background(), userID)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.ItemCount())
	assert.Equal(t, 1, carts.itemCountFor(cart.ID))
}

func TestAddItem_UnavailableOrMissingItem(t *testing.T) {
	svc, _, menu := newCartServiceForTest()
	userID := uuid.New().String()
	offMenu := menu.add("Seasonal Special", "14.00", false)

	_, serviceErr := svc.AddItem(context.Background(), userID, offMenu.ID)
	assert.NotNil(t, serviceErr)
	assert.Equal(t, 404, serviceErr.StatusCode)

	_, serviceErr = svc.AddItem(context.Background(), userID, uuid.New())
	assert.NotNil(t, serviceErr)
	assert.Equal(t, 404, serviceErr.StatusCode)
}

func TestUpdateItem_SetsQuantityInPlace(t *testing.T) {
	svc, _, menu := newCartServiceForTest()
	userID := uuid.New().String()
	pasta := menu.add("Pasta", "11.00", true)

	item, _ := svc.AddItem(context.Background(), userID, pasta.ID)

	serviceErr := svc.UpdateItem(context.Background(), userID, item.ID, 5)
	assert.Nil(t, serviceErr)

	cart, _ := svc.GetCart(context.Background(), userID)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, item.ID, cart.Items[0].ID)
}

func TestUpdateItem_ZeroQuantityRemovesLine(t *testing.T) {
	svc, _, menu := newCartServiceForTest()
	userID := uuid.New().String()
	soup := menu.add("Soup", "5.25", true)

	item, _ := svc.AddItem(context.Background(), userID, soup.ID)

	serviceErr := svc.UpdateItem(context.Background(), userID, item.ID, 0)
	assert.Nil(t, serviceErr, "removal by zero is a policy, not an error")

	cart, _ := svc.GetCart(context.Background(), userID)
	assert.Empty(t, cart.Items)
}

func TestUpdateItem_ForeignCartItemReadsAsNotFound(t *testing.T) {
	svc, _, menu := newCartServiceForTest()
	owner := uuid.New().String()
	intruder := uuid.New().String()
	salad := menu.add("Salad", "6.75", true)

	item, _ := svc.AddItem(context.Background(), owner, salad.ID)

	serviceErr := svc.UpdateItem(context.Background(), intruder, item.ID, 3)
	assert.NotNil(t, serviceErr)
	assert.Equal(t, 404, serviceErr.StatusCode)

	serviceErr = svc.RemoveItem(context.Background(), intruder, item.ID)
	assert.NotNil(t, serviceErr)
	assert.Equal(t, 404, serviceErr.StatusCode)

	cart, _ := svc.GetCart(context.Background(), owner)
	assert.Len(t, cart.Items, 1, "the owner's line must be untouched")
}

func TestRemoveItem(t *testing.T) {
	svc, _, menu := newCartServiceForTest()
	userID := uuid.New().String()
	fries := menu.add("Fries", "3.50", true)

	item, _ := svc.AddItem(context.Background(), userID, fries.ID)

	serviceErr := svc.RemoveItem(context.Background(), userID, item.ID)
	assert.Nil(t, serviceErr)

	cart, _ := svc.GetCart(context.Background(), userID)
	assert.Empty(t, cart.Items)
}

func TestCartItemSubtotal(t *testing.T) {
	svc, _, menu := newCartServiceForTest()
	userID := uuid.New().String()
	steak := menu.add("Steak", "12.50", true)

	item, _ := svc.AddItem(context.Background(), userID, steak.ID)
	_ = svc.UpdateItem(context.Background(), userID, item.ID, 3)

	cart, _ := svc.GetCart(context.Background(), userID)
	assert.True(t, decimal.RequireFromString("37.50").Equal(cart.Items[0].Subtotal()))
	assert.True(t, decimal.RequireFromString("37.50").Equal(cart.Total()))
}
