package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/maisonkart/storefront-api/auth"
	"gorm.io/gorm"
)

// SetupSessionRoutes registers all “/session/*” endpoints.
func SetupSessionRoutes(r *gin.Engine, db *gorm.DB) {
	sessionGroup := r.Group("/session")
	{
		sessionGroup.POST("/guest", auth.CreateGuestSession(db))
	}
}
