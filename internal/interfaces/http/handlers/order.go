// internal/interfaces/http/handlers/order.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/gearshop-backend/internal/domain/checkout"
	"github.com/your-org/gearshop-backend/internal/domain/order"
	"github.com/your-org/gearshop-backend/internal/interfaces/http/middleware"
	"github.com/your-org/gearshop-backend/internal/pkg/pdf"
)

// OrderHandler handles order endpoints
type OrderHandler struct {
	orderService    *order.Service
	checkoutService *checkout.Service
	receipts        *pdf.Service
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *order.Service, checkoutService *checkout.Service, receipts *pdf.Service) *OrderHandler {
	return &OrderHandler{
		orderService:    orderService,
		checkoutService: checkoutService,
		receipts:        receipts,
	}
}

// PlaceOrderRequest is the payload for POST /orders
type PlaceOrderRequest struct {
	ShippingAddress string                  `json:"shipping_address" binding:"required"`
	Payment         checkout.PaymentDetails `json:"payment"`
}

// UpdateStatusRequest is the payload for PUT /orders/:id/status
type UpdateStatusRequest struct {
	Status order.OrderStatus `json:"status" binding:"required"`
}

// PlaceOrder handles POST /orders
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if fieldErrs := checkout.ValidatePayment(req.Payment); fieldErrs != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Payment details failed validation",
			"fields": fieldErrs,
		})
		return
	}

	placed, err := h.orderService.CreateOrder(c.Request.Context(), sessionID, req.ShippingAddress)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrNoCustomer):
			c.JSON(http.StatusConflict, gin.H{
				"error":    "No customer signed in",
				"redirect": "/login",
			})
		case errors.Is(err, order.ErrEmptyCart):
			c.JSON(http.StatusConflict, gin.H{
				"error":    "Cart is empty",
				"redirect": "/cart",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to create order",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order created successfully",
		"data":    placed,
	})
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	orders, err := h.orderService.History(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve orders",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data":    orders,
	})
}

// GetCurrentOrder handles GET /orders/current
func (h *OrderHandler) GetCurrentOrder(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	current, err := h.orderService.Current(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":    "No order placed in this session",
				"redirect": "/",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve order",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    current,
	})
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	found, err := h.orderService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve order",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    found,
	})
}

// DownloadReceipt handles GET /orders/:id/receipt
func (h *OrderHandler) DownloadReceipt(c *gin.Context) {
	found, err := h.orderService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve order",
		})
		return
	}

	receipt, err := h.receipts.GenerateReceipt(found, h.checkoutService.Price(found.Total))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate receipt",
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", found.ID))
	c.Data(http.StatusOK, "application/pdf", receipt.Bytes())
}

// UpdateStatus handles PUT /orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	updated, err := h.orderService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errors.Is(err, order.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to update order status",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated successfully",
		"data":    updated,
	})
}
