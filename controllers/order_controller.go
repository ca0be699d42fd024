package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mehmood09/restaurant-system/middleware"
	"github.com/mehmood09/restaurant-system/models"
	"github.com/mehmood09/restaurant-system/services"
)

type OrderController struct {
	orderService *services.OrderService
	authService  *services.AuthService
	validator    *RequestValidator
}

func NewOrderController(orderService *services.OrderService, authService *services.AuthService) *OrderController {
	return &OrderController{
		orderService: orderService,
		authService:  authService,
		validator:    NewRequestValidator(),
	}
}

// CheckoutPreview returns the cart totals and customer details prefilled from
// the user's profile, for the checkout page.
func (oc *OrderController) CheckoutPreview(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	summary, serviceErr := oc.orderService.PreviewCheckout(c.Request.Context(), userID)
	if serviceErr != nil {
		c.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}

	response := gin.H{"summary": summary}
	if user, serviceErr := oc.authService.GetUser(c.Request.Context(), userID); serviceErr == nil {
		response["prefill"] = gin.H{
			"customer_name":  strings.TrimSpace(user.FirstName + " " + user.LastName),
			"customer_email": user.Email,
		}
	}
	c.JSON(http.StatusOK, response)
}

// Checkout places an order from the caller's cart.
func (oc *OrderController) Checkout(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}
	if err := oc.validator.ValidateCheckout(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, serviceErr := oc.orderService.Checkout(c.Request.Context(), userID, &req)
	if serviceErr != nil {
		c.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully! Token: " + order.TokenNumber,
		"order":   order,
	})
}

// GetOrders lists the caller's order history, newest first.
func (oc *OrderController) GetOrders(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	orders, serviceErr := oc.orderService.GetUserOrders(c.Request.Context(), userID)
	if serviceErr != nil {
		c.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// GetReceipt returns one of the caller's orders with its item snapshots.
func (oc *OrderController) GetReceipt(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID format"})
		return
	}

	order, serviceErr := oc.orderService.GetOrderByID(c.Request.Context(), userID, orderID)
	if serviceErr != nil {
		c.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// GetAllOrders lists every order. Staff only.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, serviceErr := oc.orderService.GetAllOrders(c.Request.Context())
	if serviceErr != nil {
		c.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// UpdateOrderStatus moves an order through the kitchen workflow. Staff only.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID format"})
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if serviceErr := oc.orderService.UpdateStatus(c.Request.Context(), orderID, req.Status); serviceErr != nil {
		c.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "status": req.Status})
}
