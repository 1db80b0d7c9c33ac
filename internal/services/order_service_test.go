package services

import (
	"context"
	"testing"
	"time"

	"storefront/internal/apperrors"
	"storefront/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderServiceFixture struct {
	tx       *fakeTxManager
	orders   *fakeOrderRepo
	items    *fakeOrderItemRepo
	settings *fakeSettingsService
	notifier *fakeNotifier
	service  OrderService
}

func newOrderServiceFixture() *orderServiceFixture {
	orders := &fakeOrderRepo{}
	items := &fakeOrderItemRepo{}
	tx := &fakeTxManager{repos: &fakeTxRepos{orders: orders, orderItems: items, products: newFakeProductRepo()}}
	settings := &fakeSettingsService{settings: &models.StoreSettings{MaxAddons: 3, DeliveryFee: 5.0}}
	notifier := newFakeNotifier(true)

	return &orderServiceFixture{
		tx:       tx,
		orders:   orders,
		items:    items,
		settings: settings,
		notifier: notifier,
		service:  NewOrderService(tx, orders, items, settings, notifier),
	}
}

func TestPlaceOrderSuccess(t *testing.T) {
	f := newOrderServiceFixture()

	id, err := f.service.PlaceOrder(context.Background(), deliveryCart())
	require.NoError(t, err)
	assert.Equal(t, uint(1), id)

	require.Len(t, f.orders.orders, 1)
	order := f.orders.orders[0]
	assert.Equal(t, 19.99, order.Subtotal)
	assert.Equal(t, 5.0, order.DeliveryFee)
	assert.Equal(t, 24.99, order.Total)

	require.Len(t, f.items.items, 1)
	assert.Equal(t, id, f.items.items[0].OrderID)

	select {
	case n := <-f.notifier.sent:
		assert.Equal(t, id, n.OrderID)
		assert.Equal(t, "Joao", n.CustomerName)
	case <-time.After(time.Second):
		t.Fatal("expected an order notification")
	}
}

func TestPlaceOrderPickupPersistsZeroFee(t *testing.T) {
	f := newOrderServiceFixture()
	f.settings.settings.DeliveryFee = 9.99

	req := deliveryCart()
	req.DeliveryType = "pickup"
	req.DeliveryAddress = nil

	_, err := f.service.PlaceOrder(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, f.orders.orders, 1)
	assert.Equal(t, 0.0, f.orders.orders[0].DeliveryFee)
}

func TestPlaceOrderValidationSkipsDatabase(t *testing.T) {
	f := newOrderServiceFixture()

	req := deliveryCart()
	req.Items = nil

	_, err := f.service.PlaceOrder(context.Background(), req)

	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, 0, f.tx.calls, "no transaction should start for an invalid cart")
	assert.Empty(t, f.orders.orders)
}

func TestPlaceOrderAtomicRollback(t *testing.T) {
	f := newOrderServiceFixture()
	f.items.failAt = 3 // item inserts are calls 1..5

	req := deliveryCart()
	for i := 2; i <= 5; i++ {
		req.Items = append(req.Items, models.OrderItemRequest{
			ProductID:  uint(i),
			Quantity:   1,
			FinalPrice: 10.0,
		})
	}

	_, err := f.service.PlaceOrder(context.Background(), req)
	require.Error(t, err)

	assert.Equal(t, 1, f.tx.rollbacks)
	assert.Empty(t, f.orders.orders, "order header must be rolled back")
	assert.Empty(t, f.items.items, "all item rows must be rolled back")
}

func TestPlaceOrderConstraintViolation(t *testing.T) {
	f := newOrderServiceFixture()
	f.orders.createErr = &pgconn.PgError{Code: "23514", ConstraintName: "chk_change_for"}

	req := deliveryCart()
	change := 10.0 // below total, rejected by the check constraint
	req.ChangeFor = &change

	_, err := f.service.PlaceOrder(context.Background(), req)

	var cvErr *apperrors.ConstraintViolation
	require.ErrorAs(t, err, &cvErr)
	assert.Equal(t, "23514", cvErr.Code)
	assert.Contains(t, cvErr.Message, "store rules")
	assert.Equal(t, 1, f.tx.rollbacks)
}

func TestPlaceOrderUnknownDBErrorIsInternal(t *testing.T) {
	f := newOrderServiceFixture()
	f.orders.createErr = assert.AnError

	_, err := f.service.PlaceOrder(context.Background(), deliveryCart())

	var iErr *apperrors.InternalError
	require.ErrorAs(t, err, &iErr)
}

func TestPlaceOrderSettingsUnavailable(t *testing.T) {
	f := newOrderServiceFixture()
	f.settings.err = assert.AnError

	_, err := f.service.PlaceOrder(context.Background(), deliveryCart())

	var iErr *apperrors.InternalError
	require.ErrorAs(t, err, &iErr)
	assert.Equal(t, 0, f.tx.calls)
}

func TestPlaceOrderRepeatedInvalidCart(t *testing.T) {
	f := newOrderServiceFixture()

	req := deliveryCart()
	req.Items[0].Addons = make([]models.OrderAddonRequest, 4)

	_, err1 := f.service.PlaceOrder(context.Background(), req)
	_, err2 := f.service.PlaceOrder(context.Background(), req)

	require.Error(t, err1)
	require.Error(t, err2)
	assert.Equal(t, err1.Error(), err2.Error())
	assert.IsType(t, err1, err2)
	assert.Empty(t, f.orders.orders)
	assert.Empty(t, f.items.items)
}

func TestGetAllOrdersNewestFirst(t *testing.T) {
	f := newOrderServiceFixture()

	for i := 0; i < 3; i++ {
		_, err := f.service.PlaceOrder(context.Background(), deliveryCart())
		require.NoError(t, err)
	}

	orders, err := f.service.GetAllOrders()
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, uint(3), orders[0].ID)
	assert.Equal(t, uint(1), orders[2].ID)
}
