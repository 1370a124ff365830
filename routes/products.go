package routes

import (
	"github.com/gin-gonic/gin"
	productControllers "github.com/w0411725/FinalProject-API/controllers/product"
	purchaseControllers "github.com/w0411725/FinalProject-API/controllers/purchase"
	"github.com/w0411725/FinalProject-API/middleware"
	"gorm.io/gorm"
)

// SetupProductRoutes registers all "/products/*" endpoints. The catalog
// reads are public; purchasing requires a session.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("/all", productControllers.GetProducts(db))      // GET /products/all
		products.GET("/:id", productControllers.GetProductByID(db))   // GET /products/:id
		products.POST("/purchase", middleware.RequireSession,
			purchaseControllers.CreatePurchase(db)) // POST /products/purchase
	}
}
