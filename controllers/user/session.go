package userControllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/w0411725/FinalProject-API/middleware"
)

// Logout destroys the current session and expires its cookie.
// POST /users/logout
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		if session.Get(middleware.SessionUserID) == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No active session"})
			return
		}

		session.Clear()
		session.Options(sessions.Options{Path: "/", MaxAge: -1})
		if err := session.Save(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to destroy session"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
	}
}

// GetSession returns the identity attached to the current session.
// GET /users/getSession
func GetSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		userID, ok := session.Get(middleware.SessionUserID).(uint)
		if !ok || userID == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user_id":    userID,
			"email":      session.Get(middleware.SessionEmail),
			"first_name": session.Get(middleware.SessionFirstName),
			"last_name":  session.Get(middleware.SessionLastName),
		})
	}
}
