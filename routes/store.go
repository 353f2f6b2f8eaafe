package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/maisonkart/storefront-api/controllers/cart"
	checkoutControllers "github.com/maisonkart/storefront-api/controllers/checkout"
	productControllers "github.com/maisonkart/storefront-api/controllers/product"
	"github.com/maisonkart/storefront-api/middleware"
	"github.com/maisonkart/storefront-api/storage"
	"gorm.io/gorm"
)

// SetupStoreRoutes registers all “/store/*” endpoints. Requires the
// session middleware.
func SetupStoreRoutes(r *gin.Engine, db *gorm.DB, kv storage.KV) {
	storeGroup := r.Group("/store")
	storeGroup.Use(middleware.RequireSession)
	{
		// ──────────────── Browse Products ────────────────
		storeGroup.GET("/products", productControllers.GetProducts(db))        // GET /store/products
		storeGroup.GET("/products/:id", productControllers.GetProductByID(db)) // GET /store/products/:id

		// ──────────────── Browse Categories + Products ────────────────
		storeGroup.GET("/categories", productControllers.GetAllCategoriesWithProducts(db)) // GET /store/categories

		// ──────────────── Shopping Cart ────────────────
		cartGroup := storeGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(kv))                             // GET /store/cart
			cartGroup.GET("/count", cartControllers.GetCartCount(kv))                  // GET /store/cart/count
			cartGroup.POST("/items", cartControllers.AddCartItem(db, kv))              // POST /store/cart/items
			cartGroup.PUT("/items/:product_id", cartControllers.UpdateCartItem(kv))    // PUT /store/cart/items/:product_id
			cartGroup.DELETE("/items/:product_id", cartControllers.DeleteCartItem(kv)) // DELETE /store/cart/items/:product_id
			cartGroup.DELETE("", cartControllers.ClearCart(kv))                        // DELETE /store/cart
		}

		// ──────────────── Checkout ────────────────
		checkoutGroup := storeGroup.Group("/checkout")
		{
			checkoutGroup.GET("", checkoutControllers.GetCheckout(kv))                  // GET /store/checkout
			checkoutGroup.PUT("/details", checkoutControllers.SaveDetails(kv))          // PUT /store/checkout/details
			checkoutGroup.POST("/complete", checkoutControllers.CompletePurchase(kv))   // POST /store/checkout/complete
			checkoutGroup.GET("/confirmation", checkoutControllers.GetConfirmation(kv)) // GET /store/checkout/confirmation
		}
	}

	// websocket endpoint for real-time purchase updates; registered
	// outside the session group because browsers cannot set headers on
	// a websocket upgrade
	r.GET("/store/checkout/ws", checkoutControllers.PurchaseFeedHandler)
}
