package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the Product and
// User route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	SetupProductRoutes(r, db)
	SetupUserRoutes(r, db)
}
