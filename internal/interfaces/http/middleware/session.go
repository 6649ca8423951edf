package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/gearshop-backend/internal/config"
	"github.com/your-org/gearshop-backend/internal/pkg/auth"
)

const sessionIDKey = "session_id"

// Session resolves the browsing session from the signed session cookie.
// Requests without a valid cookie get a fresh session, so every caller
// downstream can rely on a session ID being present.
func Session(cfg *config.Config, tokens *auth.SessionTokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := ""

		if cookie, err := c.Cookie(cfg.Session.CookieName); err == nil {
			if id, err := tokens.Validate(cookie); err == nil {
				sessionID = id
			}
		}

		if sessionID == "" {
			sessionID = auth.NewSessionID()
			token, err := tokens.Issue(sessionID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Failed to establish session",
				})
				c.Abort()
				return
			}
			secure := cfg.App.Environment == "production"
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cfg.Session.CookieName, token,
				int(cfg.Session.TokenExpiry.Seconds()), "/", "", secure, true)
		}

		c.Set(sessionIDKey, sessionID)
		c.Next()
	}
}

// SessionID returns the session ID resolved by the Session middleware.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
