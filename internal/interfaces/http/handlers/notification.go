// internal/interfaces/http/handlers/notification.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/gearshop-backend/internal/interfaces/http/middleware"
	"github.com/your-org/gearshop-backend/internal/pkg/notification"
)

// NotificationHandler exposes the session's notification feed
type NotificationHandler struct {
	feed *notification.Feed
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(feed *notification.Feed) *NotificationHandler {
	return &NotificationHandler{feed: feed}
}

// Drain handles GET /notifications. Notices are returned once and then
// removed, so polling clients see each message a single time.
func (h *NotificationHandler) Drain(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	notices, err := h.feed.Drain(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve notifications",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Notifications retrieved successfully",
		"data":    notices,
	})
}
