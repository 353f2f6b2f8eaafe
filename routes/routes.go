package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/maisonkart/storefront-api/storage"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up Session, Store,
// and Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, kv storage.KV) {
	// 1️⃣ Public session routes (no middleware)
	SetupSessionRoutes(r, db)

	// 2️⃣ Storefront routes (session-token-protected)
	SetupStoreRoutes(r, db, kv)

	// 3️⃣ Admin routes (API-Key-protected)
	SetupAdminRoutes(r, db)
}
