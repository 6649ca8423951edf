// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/gearshop-backend/internal/domain/checkout"
	"github.com/your-org/gearshop-backend/internal/interfaces/http/middleware"
)

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	checkoutService *checkout.Service
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// GetSummary handles GET /checkout/summary. The frontend redirects away
// from checkout when can_checkout is false.
func (h *CheckoutHandler) GetSummary(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	summary, err := h.checkoutService.Summary(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute checkout summary",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout summary computed successfully",
		"data":    summary,
	})
}

// ValidatePayment handles POST /checkout/payment/validate
func (h *CheckoutHandler) ValidatePayment(c *gin.Context) {
	var details checkout.PaymentDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if fieldErrs := checkout.ValidatePayment(details); fieldErrs != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Payment details failed validation",
			"fields": fieldErrs,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment details are valid",
	})
}
