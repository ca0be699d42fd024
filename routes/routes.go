package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mehmood09/restaurant-system/controllers"
	"github.com/mehmood09/restaurant-system/middleware"
	"github.com/mehmood09/restaurant-system/services"
)

// Controllers bundles everything route registration needs.
type Controllers struct {
	Auth      *controllers.AuthController
	Menu      *controllers.MenuController
	Cart      *controllers.CartController
	Order     *controllers.OrderController
	Category  *controllers.CategoryController
	MenuItem  *controllers.MenuItemController
	Analytics *controllers.AnalyticsController
}

// RegisterRoutes wires up the complete HTTP surface.
func RegisterRoutes(r *gin.Engine, c *Controllers, tokenService *services.TokenService) {
	// Public routes. The home page is browsable without a session.
	r.GET("/", c.Menu.Home)

	auth := r.Group("")
	auth.Use(middleware.RateLimitMiddleware())
	auth.POST("/register", c.Auth.Register)
	auth.POST("/login", c.Auth.Login)

	// Authenticated customer routes.
	session := r.Group("")
	session.Use(middleware.AuthRequired(tokenService))

	session.POST("/logout", c.Auth.Logout)

	session.GET("/menu", c.Menu.Menu)
	session.POST("/add-to-cart/:itemId", c.Cart.AddToCart)
	session.GET("/cart", c.Cart.GetCart)
	session.POST("/update-cart/:itemId", c.Cart.UpdateCartItem)
	session.POST("/remove-from-cart/:itemId", c.Cart.RemoveFromCart)

	session.GET("/checkout", c.Order.CheckoutPreview)
	session.POST("/checkout", c.Order.Checkout)
	session.GET("/orders", c.Order.GetOrders)
	session.GET("/receipt/:orderId", c.Order.GetReceipt)

	// Staff-only management routes.
	manage := session.Group("/manage")
	manage.Use(middleware.StaffOnly())

	manage.GET("/categories", c.Category.ListCategories)
	manage.POST("/categories/add", c.Category.AddCategory)
	manage.POST("/categories/edit/:id", c.Category.EditCategory)
	manage.POST("/categories/delete/:id", c.Category.DeleteCategory)

	manage.GET("/menu-items", c.MenuItem.ListMenuItems)
	manage.POST("/menu-items/add", c.MenuItem.AddMenuItem)
	manage.POST("/menu-items/edit/:id", c.MenuItem.EditMenuItem)
	manage.POST("/menu-items/delete/:id", c.MenuItem.DeleteMenuItem)
	manage.POST("/menu-items/toggle/:id", c.MenuItem.ToggleAvailability)

	manage.GET("/orders", c.Order.GetAllOrders)
	manage.POST("/orders/status/:orderId", c.Order.UpdateOrderStatus)

	session.GET("/analytics", middleware.StaffOnly(), c.Analytics.GetAnalytics)
}
