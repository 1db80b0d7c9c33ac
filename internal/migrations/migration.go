package migrations

import (
	"errors"
	"log"
	"storefront/internal/models"
	"storefront/internal/repository"

	"gorm.io/gorm"
)

// RunMigrations runs all database migrations and creates default data
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
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
		return err
	}

	// Create default data
	if err := createDefaultData(db); err != nil {
		log.Printf("Warning: Failed to create default data: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

// createDefaultData seeds the store settings singleton when missing
func createDefaultData(db *gorm.DB) error {
	settingsRepo := repository.NewSettingsRepository(db)

	_, err := settingsRepo.Get()
	if err == nil {
		log.Println("Store settings already exist")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	log.Println("Creating default store settings...")
	settings := &models.StoreSettings{
		StoreName:   "Ponto do Lanche",
		MaxAddons:   3,
		DeliveryFee: 5.0,
		IsOpen:      true,
	}
	if err := settingsRepo.Create(settings); err != nil {
		return err
	}

	log.Println("Default store settings created successfully!")
	return nil
}
