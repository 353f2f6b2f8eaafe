package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/maisonkart/storefront-api/models"
	"github.com/maisonkart/storefront-api/routes"
	"github.com/maisonkart/storefront-api/storage"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Product{},
		&models.Category{},
		&models.Session{},
		&models.StateRecord{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Seed the demo catalog on first boot
	if err := seedCatalog(db); err != nil {
		log.Fatalf("❌ Catalog seed failed: %v", err)
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, db, storage.NewGorm(db))

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

// seedCatalog inserts the demo furniture catalog when the products
// table is empty.
func seedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	furniture := models.Category{Name: "Furniture"}
	lighting := models.Category{Name: "Lighting"}
	if err := db.Create(&furniture).Error; err != nil {
		return err
	}
	if err := db.Create(&lighting).Error; err != nil {
		return err
	}

	products := []models.Product{
		{Title: "Premium Chair", Description: "Ergonomic chair with walnut frame", Price: 199.99, Stock: 25, Categories: []models.Category{furniture}},
		{Title: "Modern Sofa", Description: "Three-seater in slate grey", Price: 499.99, Stock: 8, Categories: []models.Category{furniture}},
		{Title: "Coffee Table", Description: "Oak top, steel legs", Price: 149.99, Stock: 14, Categories: []models.Category{furniture}},
		{Title: "Bookshelf", Description: "Five-shelf unit in white", Price: 129.99, Stock: 20, Categories: []models.Category{furniture}},
		{Title: "Lamp", Description: "Brass floor lamp with linen shade", Price: 99.99, Stock: 40, Categories: []models.Category{lighting}},
		{Title: "Pendant Light", Description: "Matte black pendant, E27", Price: 79.99, Stock: 32, Categories: []models.Category{lighting}},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded %d demo products", len(products))
	return nil
}
