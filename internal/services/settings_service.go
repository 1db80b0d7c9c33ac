package services

import (
	"errors"
	"log"
	"time"

	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/repository"

	"gorm.io/gorm"
)

// SettingsCache is satisfied by the redis client. A nil cache disables
// caching entirely.
type SettingsCache interface {
	GetStoreSettings() (*models.StoreSettings, error)
	SetStoreSettings(settings *models.StoreSettings, ttl time.Duration) error
	InvalidateStoreSettings() error
}

type SettingsService interface {
	GetSettings() (*models.StoreSettings, error)
	UpdateSettings(settings *models.StoreSettings) error
}

type settingsService struct {
	repo     repository.SettingsRepository
	cache    SettingsCache
	cacheTTL time.Duration
}

func NewSettingsService(repo repository.SettingsRepository, cache SettingsCache, cacheTTL time.Duration) SettingsService {
	return &settingsService{repo: repo, cache: cache, cacheTTL: cacheTTL}
}

// GetSettings returns the store settings singleton, serving from cache when
// possible and falling back to the database.
func (s *settingsService) GetSettings() (*models.StoreSettings, error) {
	if s.cache != nil {
		if settings, err := s.cache.GetStoreSettings(); err == nil {
			return settings, nil
		}
	}

	settings, err := s.repo.Get()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("store settings")
		}
		return nil, apperrors.NewInternalError(err)
	}

	if s.cache != nil {
		if err := s.cache.SetStoreSettings(settings, s.cacheTTL); err != nil {
			log.Printf("Warning: Failed to cache store settings: %v", err)
		}
	}

	return settings, nil
}

func (s *settingsService) UpdateSettings(settings *models.StoreSettings) error {
	if settings.MaxAddons < 0 {
		return apperrors.NewValidationError("max_addons must not be negative")
	}
	if settings.DeliveryFee < 0 {
		return apperrors.NewValidationError("delivery_fee must not be negative")
	}

	current, err := s.repo.Get()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("store settings")
		}
		return apperrors.NewInternalError(err)
	}

	settings.ID = current.ID
	if err := s.repo.Update(settings); err != nil {
		return apperrors.NewInternalError(err)
	}

	if s.cache != nil {
		if err := s.cache.InvalidateStoreSettings(); err != nil {
			log.Printf("Warning: Failed to invalidate settings cache: %v", err)
		}
	}

	return nil
}
