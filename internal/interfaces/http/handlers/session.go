// internal/interfaces/http/handlers/session.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/gearshop-backend/internal/domain/customer"
	"github.com/your-org/gearshop-backend/internal/interfaces/http/middleware"
)

// SessionHandler handles customer session endpoints
type SessionHandler struct {
	sessions *customer.Manager
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *customer.Manager) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// CustomerRequest is the payload for sign-in and profile updates.
type CustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (r CustomerRequest) toProfile() *customer.Customer {
	return &customer.Customer{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
	}
}

// Login handles POST /session/login
func (h *SessionHandler) Login(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	profile, err := h.sessions.Establish(c.Request.Context(), sessionID, req.toProfile())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to sign in",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Signed in successfully",
		"data":    profile,
	})
}

// GetCurrent handles GET /session/customer
func (h *SessionHandler) GetCurrent(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	profile, err := h.sessions.Current(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, customer.ErrNoProfile) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No customer signed in",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve customer",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Customer retrieved successfully",
		"data":    profile,
	})
}

// UpdateProfile handles PUT /session/customer
func (h *SessionHandler) UpdateProfile(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	profile, err := h.sessions.Update(c.Request.Context(), sessionID, req.toProfile())
	if err != nil {
		if errors.Is(err, customer.ErrNoProfile) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No customer signed in",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update profile",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"data":    profile,
	})
}

// Logout handles POST /session/logout
func (h *SessionHandler) Logout(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	if err := h.sessions.Exit(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to sign out",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Signed out successfully",
	})
}
