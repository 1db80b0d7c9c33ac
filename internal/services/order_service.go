package services

import (
	"context"
	"log"

	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/repository"
	"storefront/pkg/notify"
)

// orderConstraintMessages maps the integrity violations the orders schema can
// raise to client-facing messages.
var orderConstraintMessages = map[string]string{
	apperrors.PgCheckViolation:      "order values violate store rules (change amount, delivery address or pricing)",
	apperrors.PgForeignKeyViolation: "order references an unknown product",
}

type OrderNotifier interface {
	Enabled() bool
	SendOrderNotification(notification notify.OrderNotification) (*notify.NotifyResponse, error)
}

type OrderService interface {
	PlaceOrder(ctx context.Context, req *models.CreateOrderRequest) (uint, error)
	GetAllOrders() ([]models.Order, error)
	GetOrderItems(orderID uint) ([]models.OrderItem, error)
}

type orderService struct {
	tx              repository.TransactionManager
	orderRepo       repository.OrderRepository
	orderItemRepo   repository.OrderItemRepository
	settingsService SettingsService
	notifier        OrderNotifier
}

func NewOrderService(
	tx repository.TransactionManager,
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	settingsService SettingsService,
	notifier OrderNotifier,
) OrderService {
	return &orderService{
		tx:              tx,
		orderRepo:       orderRepo,
		orderItemRepo:   orderItemRepo,
		settingsService: settingsService,
		notifier:        notifier,
	}
}

// PlaceOrder validates and prices the cart, then writes the order header and
// every line item in one transaction. No partial order is ever visible: any
// insert failure rolls the whole submission back.
func (s *orderService) PlaceOrder(ctx context.Context, req *models.CreateOrderRequest) (uint, error) {
	// Pricing cannot proceed without the store settings.
	settings, err := s.settingsService.GetSettings()
	if err != nil {
		return 0, apperrors.NewInternalError(err)
	}

	order, items, err := buildOrder(req, settings)
	if err != nil {
		return 0, err
	}

	err = s.tx.WithinTx(ctx, func(r repository.TxRepos) error {
		if err := r.Orders().Create(order); err != nil {
			return err
		}
		// Items are inserted in the original cart order, all bound to the
		// generated order id.
		for i := range items {
			items[i].OrderID = order.ID
			if err := r.OrderItems().Create(&items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, apperrors.FromDB(err, orderConstraintMessages)
	}

	s.notifyNewOrder(order)

	return order.ID, nil
}

// notifyNewOrder is best effort: a webhook failure never affects the order.
func (s *orderService) notifyNewOrder(order *models.Order) {
	if s.notifier == nil || !s.notifier.Enabled() {
		return
	}

	notification := notify.OrderNotification{
		OrderID:       order.ID,
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		DeliveryType:  order.DeliveryType,
		Total:         order.Total,
	}

	go func() {
		if _, err := s.notifier.SendOrderNotification(notification); err != nil {
			log.Printf("Warning: Failed to send order notification for order %d: %v", order.ID, err)
		}
	}()
}

func (s *orderService) GetAllOrders() ([]models.Order, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return orders, nil
}

func (s *orderService) GetOrderItems(orderID uint) ([]models.OrderItem, error) {
	items, err := s.orderItemRepo.GetByOrderID(orderID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return items, nil
}
