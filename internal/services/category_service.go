package services

import (
	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/repository"
)

type CategoryService interface {
	GetAllCategories() ([]models.Category, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) GetAllCategories() ([]models.Category, error) {
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return categories, nil
}
