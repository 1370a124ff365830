package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session keys written at login and read back by RequireSession and the
// getSession handler.
const (
	SessionUserID    = "user_id"
	SessionEmail     = "email"
	SessionFirstName = "first_name"
	SessionLastName  = "last_name"
)

// RequireSession rejects requests that do not carry a valid session
// cookie. On success the customer's identity is placed in the gin context
// under "customer_id" for downstream handlers.
func RequireSession(c *gin.Context) {
	session := sessions.Default(c)

	userID, ok := session.Get(SessionUserID).(uint)
	if !ok || userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
		c.Abort()
		return
	}

	c.Set("customer_id", userID)
	c.Next()
}
