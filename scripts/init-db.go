package main

import (
	"fmt"
	"log"

	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/models"

	"gorm.io/gorm"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.OrderItem{},
		&models.Order{},
		&models.ProductIngredient{},
		&models.ProductAddon{},
		&models.ProductFlavor{},
		&models.ProductSize{},
		&models.Product{},
		&models.Category{},
		&models.Customer{},
		&models.StoreSettings{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	// Create tables with proper schema
	fmt.Println("Creating tables...")
	err = db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.ProductIngredient{},
		&models.ProductAddon{},
		&models.ProductFlavor{},
		&models.ProductSize{},
		&models.Customer{},
		&models.Order{},
		&models.OrderItem{},
		&models.StoreSettings{},
	)
	if err != nil {
		log.Fatal("Failed to create tables:", err)
	}

	// Seed sample data
	fmt.Println("Seeding sample data...")
	if err := seedSampleData(db); err != nil {
		log.Fatal("Failed to seed sample data:", err)
	}

	fmt.Println("Database initialized successfully!")
}

func seedSampleData(db *gorm.DB) error {
	settings := &models.StoreSettings{
		StoreName:   "Ponto do Lanche",
		MaxAddons:   3,
		DeliveryFee: 5.0,
		IsOpen:      true,
	}
	if err := db.Create(settings).Error; err != nil {
		return err
	}

	burgers := &models.Category{Name: "Burgers", DisplayOrder: 1, IsActive: true}
	drinks := &models.Category{Name: "Drinks", DisplayOrder: 2, IsActive: true}
	if err := db.Create(burgers).Error; err != nil {
		return err
	}
	if err := db.Create(drinks).Error; err != nil {
		return err
	}

	cheeseburger := &models.Product{
		CategoryID:   burgers.ID,
		Name:         "Cheeseburger",
		Description:  "Beef patty with cheese",
		Price:        15.99,
		DisplayOrder: 1,
		IsActive:     true,
		Ingredients: []models.ProductIngredient{
			{Name: "Beef patty", Removable: false},
			{Name: "Cheese", Removable: true},
			{Name: "Lettuce", Removable: true},
		},
		Addons: []models.ProductAddon{
			{Name: "Bacon", Price: 4.00},
			{Name: "Extra cheese", Price: 2.50},
			{Name: "Fried egg", Price: 2.00},
		},
		Sizes: []models.ProductSize{
			{Name: "Regular", Price: 0},
			{Name: "Double", Price: 8.00},
		},
	}
	if err := db.Create(cheeseburger).Error; err != nil {
		return err
	}

	milkshake := &models.Product{
		CategoryID:   drinks.ID,
		Name:         "Milkshake",
		Description:  "Hand-spun milkshake",
		Price:        12.00,
		DisplayOrder: 1,
		IsActive:     true,
		Flavors: []models.ProductFlavor{
			{Name: "Chocolate", Price: 0},
			{Name: "Strawberry", Price: 0},
			{Name: "Ovomaltine", Price: 2.00},
		},
		Sizes: []models.ProductSize{
			{Name: "300ml", Price: 0},
			{Name: "500ml", Price: 4.00},
		},
	}
	if err := db.Create(milkshake).Error; err != nil {
		return err
	}

	fmt.Println("Sample catalog created:")
	fmt.Println("  - 2 categories, 2 products")
	fmt.Printf("  - store settings: max_addons=%d delivery_fee=%.2f\n", settings.MaxAddons, settings.DeliveryFee)
	return nil
}
