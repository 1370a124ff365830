package routes

import (
	"github.com/gin-gonic/gin"
	userControllers "github.com/w0411725/FinalProject-API/controllers/user"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/users/*" endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	users := r.Group("/users")
	{
		users.POST("/signup", userControllers.Signup(db))    // POST /users/signup
		users.POST("/login", userControllers.Login(db))      // POST /users/login
		users.POST("/logout", userControllers.Logout())      // POST /users/logout
		users.GET("/getSession", userControllers.GetSession()) // GET /users/getSession
	}
}
