package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/w0411725/FinalProject-API/models"
	"gorm.io/gorm"
)

// GetProducts returns the full catalog.
// GET /products/all
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := make([]models.Product, 0)
		if err := db.Order("id").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
