package services

import (
	"context"
	"errors"
	"strings"

	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/repository"

	"gorm.io/gorm"
)

var productConstraintMessages = map[string]string{
	apperrors.PgForeignKeyViolation: "cannot delete a product linked to an order",
}

type ProductService interface {
	GetAllProducts() ([]models.Product, error)
	GetProductByID(id uint) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uint, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(id uint) error
}

type productService struct {
	tx          repository.TransactionManager
	productRepo repository.ProductRepository
}

func NewProductService(tx repository.TransactionManager, productRepo repository.ProductRepository) ProductService {
	return &productService{tx: tx, productRepo: productRepo}
}

func (s *productService) GetAllProducts() ([]models.Product, error) {
	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return products, nil
}

func (s *productService) GetProductByID(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("product")
		}
		return nil, apperrors.NewInternalError(err)
	}
	return product, nil
}

// UpdateProduct applies the deep update in one transaction: the header row
// and every nested collection are replaced together or not at all.
func (s *productService) UpdateProduct(ctx context.Context, id uint, req *models.UpdateProductRequest) (*models.Product, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationError(`the "name" field is required`)
	}
	if req.Price < 0 {
		return nil, apperrors.NewValidationError("price must not be negative")
	}

	var updated *models.Product

	err := s.tx.WithinTx(ctx, func(r repository.TxRepos) error {
		product, err := r.Products().GetByID(id)
		if err != nil {
			return err
		}

		product.Name = strings.TrimSpace(req.Name)
		product.Description = req.Description
		product.Price = req.Price
		product.ImageURL = req.ImageURL
		product.DisplayOrder = req.DisplayOrder
		if req.CategoryID != 0 {
			product.CategoryID = req.CategoryID
		}
		if req.IsActive != nil {
			product.IsActive = *req.IsActive
		}

		if err := r.Products().Update(product); err != nil {
			return err
		}
		if err := r.Products().ReplaceIngredients(id, req.Ingredients); err != nil {
			return err
		}
		if err := r.Products().ReplaceAddons(id, req.Addons); err != nil {
			return err
		}
		if err := r.Products().ReplaceFlavors(id, req.Flavors); err != nil {
			return err
		}
		if err := r.Products().ReplaceSizes(id, req.Sizes); err != nil {
			return err
		}

		updated, err = r.Products().GetByID(id)
		return err
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("product")
		}
		return nil, apperrors.FromDB(err, productConstraintMessages)
	}

	return updated, nil
}

func (s *productService) DeleteProduct(id uint) error {
	if err := s.productRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("product")
		}
		return apperrors.FromDB(err, productConstraintMessages)
	}
	return nil
}
