package userControllers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/w0411725/FinalProject-API/auth"
	"github.com/w0411725/FinalProject-API/middleware"
	"github.com/w0411725/FinalProject-API/models"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// Login verifies credentials and starts a session.
// POST /users/login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
			return
		}

		if req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
			return
		}

		var customer models.Customer
		if err := db.Where("email = ?", req.Email).First(&customer).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		if !auth.CheckPassword(req.Password, customer.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
			return
		}

		session := sessions.Default(c)
		session.Set(middleware.SessionUserID, customer.ID)
		session.Set(middleware.SessionEmail, customer.Email)
		session.Set(middleware.SessionFirstName, customer.FirstName)
		session.Set(middleware.SessionLastName, customer.LastName)
		if err := session.Save(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"user": gin.H{
				"user_id": customer.ID,
				"email":   customer.Email,
				"name":    customer.FirstName + " " + customer.LastName,
			},
		})
	}
}
