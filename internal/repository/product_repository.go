package repository

import (
	"storefront/internal/models"

	"gorm.io/gorm"
)

type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Update(product *models.Product) error
	Delete(id uint) error
	ReplaceIngredients(productID uint, ingredients []models.ProductIngredient) error
	ReplaceAddons(productID uint, addons []models.ProductAddon) error
	ReplaceFlavors(productID uint, flavors []models.ProductFlavor) error
	ReplaceSizes(productID uint, sizes []models.ProductSize) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	err := r.db.
		Preload("Ingredients").
		Preload("Addons").
		Preload("Flavors").
		Preload("Sizes").
		Order("display_order ASC").
		Find(&products).Error
	return products, err
}

func (r *productRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.
		Preload("Ingredients").
		Preload("Addons").
		Preload("Flavors").
		Preload("Sizes").
		First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Update(product *models.Product) error {
	return r.db.Omit("Ingredients", "Addons", "Flavors", "Sizes").Save(product).Error
}

func (r *productRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *productRepository) ReplaceIngredients(productID uint, ingredients []models.ProductIngredient) error {
	if err := r.db.Where("product_id = ?", productID).Delete(&models.ProductIngredient{}).Error; err != nil {
		return err
	}
	if len(ingredients) == 0 {
		return nil
	}
	for i := range ingredients {
		ingredients[i].ID = 0
		ingredients[i].ProductID = productID
	}
	return r.db.Create(&ingredients).Error
}

func (r *productRepository) ReplaceAddons(productID uint, addons []models.ProductAddon) error {
	if err := r.db.Where("product_id = ?", productID).Delete(&models.ProductAddon{}).Error; err != nil {
		return err
	}
	if len(addons) == 0 {
		return nil
	}
	for i := range addons {
		addons[i].ID = 0
		addons[i].ProductID = productID
	}
	return r.db.Create(&addons).Error
}

func (r *productRepository) ReplaceFlavors(productID uint, flavors []models.ProductFlavor) error {
	if err := r.db.Where("product_id = ?", productID).Delete(&models.ProductFlavor{}).Error; err != nil {
		return err
	}
	if len(flavors) == 0 {
		return nil
	}
	for i := range flavors {
		flavors[i].ID = 0
		flavors[i].ProductID = productID
	}
	return r.db.Create(&flavors).Error
}

func (r *productRepository) ReplaceSizes(productID uint, sizes []models.ProductSize) error {
	if err := r.db.Where("product_id = ?", productID).Delete(&models.ProductSize{}).Error; err != nil {
		return err
	}
	if len(sizes) == 0 {
		return nil
	}
	for i := range sizes {
		sizes[i].ID = 0
		sizes[i].ProductID = productID
	}
	return r.db.Create(&sizes).Error
}
