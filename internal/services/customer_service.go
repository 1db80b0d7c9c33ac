package services

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/repository"

	"gorm.io/gorm"
)

var customerConstraintMessages = map[string]string{
	apperrors.PgUniqueViolation: "a customer with this phone already exists",
}

type CustomerService interface {
	CreateCustomer(customer *models.Customer) error
	GetCustomerByID(id uint) (*models.Customer, error)
	GetAllCustomers() ([]models.Customer, error)
	UpdateCustomer(id uint, customer *models.Customer) (*models.Customer, error)
	DeleteCustomer(id uint) error
}

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

// validateCustomer checks field shapes and phone uniqueness. currentID is 0
// on create, or the customer being updated (its own phone is not a
// duplicate).
func (s *customerService) validateCustomer(customer *models.Customer, currentID uint) error {
	name := strings.TrimSpace(customer.Name)
	if len(name) < 3 || len(name) > 150 {
		return apperrors.NewValidationError(`the "name" field is required and must be between 3 and 150 characters`)
	}

	phone := strings.TrimSpace(customer.Phone)
	if len(phone) < 8 || len(phone) > 20 {
		return apperrors.NewValidationError(`the "phone" field is required and must be between 8 and 20 characters`)
	}

	optionals := []struct {
		field string
		value *string
		max   int
	}{
		{"street", customer.Street, 255},
		{"number", customer.Number, 20},
		{"neighborhood", customer.Neighborhood, 100},
		{"complement", customer.Complement, 255},
	}
	for _, o := range optionals {
		if o.value != nil && len(*o.value) > o.max {
			return apperrors.NewValidationError(fmt.Sprintf("the %q field must be at most %d characters", o.field, o.max))
		}
	}

	existing, err := s.customerRepo.GetByPhone(phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return apperrors.NewInternalError(err)
	}
	if existing.ID != currentID {
		return apperrors.NewValidationError("a customer with this phone already exists")
	}

	return nil
}

func normalizeCustomer(customer *models.Customer) {
	customer.Name = strings.TrimSpace(customer.Name)
	customer.Phone = strings.TrimSpace(customer.Phone)
	for _, field := range []**string{&customer.Street, &customer.Number, &customer.Neighborhood, &customer.Complement} {
		if *field != nil {
			trimmed := strings.TrimSpace(**field)
			if trimmed == "" {
				*field = nil
			} else {
				*field = &trimmed
			}
		}
	}
}

func (s *customerService) CreateCustomer(customer *models.Customer) error {
	if err := s.validateCustomer(customer, 0); err != nil {
		return err
	}
	normalizeCustomer(customer)

	if err := s.customerRepo.Create(customer); err != nil {
		return apperrors.FromDB(err, customerConstraintMessages)
	}
	return nil
}

func (s *customerService) GetCustomerByID(id uint) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("customer")
		}
		return nil, apperrors.NewInternalError(err)
	}
	return customer, nil
}

func (s *customerService) GetAllCustomers() ([]models.Customer, error) {
	customers, err := s.customerRepo.GetAll()
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return customers, nil
}

func (s *customerService) UpdateCustomer(id uint, customer *models.Customer) (*models.Customer, error) {
	existing, err := s.customerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("customer")
		}
		return nil, apperrors.NewInternalError(err)
	}

	if err := s.validateCustomer(customer, id); err != nil {
		return nil, err
	}
	normalizeCustomer(customer)

	existing.Name = customer.Name
	existing.Phone = customer.Phone
	existing.Street = customer.Street
	existing.Number = customer.Number
	existing.Neighborhood = customer.Neighborhood
	existing.Complement = customer.Complement

	if err := s.customerRepo.Update(existing); err != nil {
		return nil, apperrors.FromDB(err, customerConstraintMessages)
	}
	return existing, nil
}

func (s *customerService) DeleteCustomer(id uint) error {
	if err := s.customerRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("customer")
		}
		return apperrors.NewInternalError(err)
	}
	return nil
}
