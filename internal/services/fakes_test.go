package services

import (
	"context"
	"errors"
	"time"

	"storefront/internal/models"
	"storefront/internal/repository"
	"storefront/pkg/notify"

	"gorm.io/gorm"
)

// In-memory fakes over the repository interfaces. The fake transaction
// manager keeps rollback semantics: staged writes are discarded when the unit
// of work returns an error.

type fakeOrderRepo struct {
	orders    []models.Order
	nextID    uint
	createErr error
	getAllErr error
}

func (f *fakeOrderRepo) Create(order *models.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	order.ID = f.nextID
	f.orders = append(f.orders, *order)
	return nil
}

func (f *fakeOrderRepo) GetByID(id uint) (*models.Order, error) {
	for i := range f.orders {
		if f.orders[i].ID == id {
			o := f.orders[i]
			return &o, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrderRepo) GetAll() ([]models.Order, error) {
	if f.getAllErr != nil {
		return nil, f.getAllErr
	}
	out := make([]models.Order, 0, len(f.orders))
	for i := len(f.orders) - 1; i >= 0; i-- {
		out = append(out, f.orders[i])
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatus(id uint, status string) error {
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders[i].Status = status
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeOrderItemRepo struct {
	items   []models.OrderItem
	calls   int
	failAt  int // fail the Nth Create call (1-based), 0 disables
	failErr error
}

func (f *fakeOrderItemRepo) Create(item *models.OrderItem) error {
	f.calls++
	if f.failAt > 0 && f.calls == f.failAt {
		if f.failErr != nil {
			return f.failErr
		}
		return errors.New("simulated insert failure")
	}
	item.ID = uint(len(f.items) + 1)
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeOrderItemRepo) GetByOrderID(orderID uint) ([]models.OrderItem, error) {
	var out []models.OrderItem
	for _, it := range f.items {
		if it.OrderID == orderID {
			out = append(out, it)
		}
	}
	return out, nil
}

type fakeProductRepo struct {
	products    map[uint]*models.Product
	ingredients map[uint][]models.ProductIngredient
	addons      map[uint][]models.ProductAddon
	flavors     map[uint][]models.ProductFlavor
	sizes       map[uint][]models.ProductSize
	updateErr   error
	deleteErr   error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products:    map[uint]*models.Product{},
		ingredients: map[uint][]models.ProductIngredient{},
		addons:      map[uint][]models.ProductAddon{},
		flavors:     map[uint][]models.ProductFlavor{},
		sizes:       map[uint][]models.ProductSize{},
	}
}

func (f *fakeProductRepo) GetAll() ([]models.Product, error) {
	var out []models.Product
	for _, p := range f.products {
		cp := *p
		cp.Ingredients = f.ingredients[p.ID]
		cp.Addons = f.addons[p.ID]
		cp.Flavors = f.flavors[p.ID]
		cp.Sizes = f.sizes[p.ID]
		out = append(out, cp)
	}
	return out, nil
}

func (f *fakeProductRepo) GetByID(id uint) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	cp.Ingredients = f.ingredients[id]
	cp.Addons = f.addons[id]
	cp.Flavors = f.flavors[id]
	cp.Sizes = f.sizes[id]
	return &cp, nil
}

func (f *fakeProductRepo) Update(product *models.Product) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	cp := *product
	f.products[product.ID] = &cp
	return nil
}

func (f *fakeProductRepo) Delete(id uint) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.products[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) ReplaceIngredients(productID uint, ingredients []models.ProductIngredient) error {
	f.ingredients[productID] = ingredients
	return nil
}

func (f *fakeProductRepo) ReplaceAddons(productID uint, addons []models.ProductAddon) error {
	f.addons[productID] = addons
	return nil
}

func (f *fakeProductRepo) ReplaceFlavors(productID uint, flavors []models.ProductFlavor) error {
	f.flavors[productID] = flavors
	return nil
}

func (f *fakeProductRepo) ReplaceSizes(productID uint, sizes []models.ProductSize) error {
	f.sizes[productID] = sizes
	return nil
}

type fakeTxRepos struct {
	orders     *fakeOrderRepo
	orderItems *fakeOrderItemRepo
	products   *fakeProductRepo
}

func (f *fakeTxRepos) Orders() repository.OrderRepository         { return f.orders }
func (f *fakeTxRepos) OrderItems() repository.OrderItemRepository { return f.orderItems }
func (f *fakeTxRepos) Products() repository.ProductRepository     { return f.products }

type fakeTxManager struct {
	repos     *fakeTxRepos
	calls     int
	rollbacks int
}

func (tm *fakeTxManager) WithinTx(ctx context.Context, fn func(r repository.TxRepos) error) error {
	tm.calls++
	ordersBefore := len(tm.repos.orders.orders)
	itemsBefore := len(tm.repos.orderItems.items)

	err := fn(tm.repos)
	if err != nil {
		// rollback: discard everything staged by this unit of work
		tm.rollbacks++
		tm.repos.orders.orders = tm.repos.orders.orders[:ordersBefore]
		tm.repos.orderItems.items = tm.repos.orderItems.items[:itemsBefore]
		return err
	}
	return nil
}

type fakeSettingsService struct {
	settings *models.StoreSettings
	err      error
}

func (f *fakeSettingsService) GetSettings() (*models.StoreSettings, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.settings, nil
}

func (f *fakeSettingsService) UpdateSettings(settings *models.StoreSettings) error {
	f.settings = settings
	return nil
}

type fakeNotifier struct {
	enabled bool
	sent    chan notify.OrderNotification
}

func newFakeNotifier(enabled bool) *fakeNotifier {
	return &fakeNotifier{enabled: enabled, sent: make(chan notify.OrderNotification, 8)}
}

func (f *fakeNotifier) Enabled() bool { return f.enabled }

func (f *fakeNotifier) SendOrderNotification(n notify.OrderNotification) (*notify.NotifyResponse, error) {
	f.sent <- n
	return &notify.NotifyResponse{Success: true}, nil
}

type fakeSettingsRepo struct {
	settings  *models.StoreSettings
	updateErr error
	updated   int
}

func (f *fakeSettingsRepo) Get() (*models.StoreSettings, error) {
	if f.settings == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *f.settings
	return &cp, nil
}

func (f *fakeSettingsRepo) Create(settings *models.StoreSettings) error {
	f.settings = settings
	return nil
}

func (f *fakeSettingsRepo) Update(settings *models.StoreSettings) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated++
	cp := *settings
	f.settings = &cp
	return nil
}

type fakeSettingsCache struct {
	stored      *models.StoreSettings
	getErr      error
	setErr      error
	invalidated int
}

func (f *fakeSettingsCache) GetStoreSettings() (*models.StoreSettings, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.stored == nil {
		return nil, errors.New("cache miss")
	}
	cp := *f.stored
	return &cp, nil
}

func (f *fakeSettingsCache) SetStoreSettings(settings *models.StoreSettings, _ time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	cp := *settings
	f.stored = &cp
	return nil
}

func (f *fakeSettingsCache) InvalidateStoreSettings() error {
	f.invalidated++
	f.stored = nil
	return nil
}

type fakeCustomerRepo struct {
	customers map[uint]*models.Customer
	nextID    uint
	createErr error
	updateErr error
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[uint]*models.Customer{}}
}

func (f *fakeCustomerRepo) Create(customer *models.Customer) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	customer.ID = f.nextID
	cp := *customer
	f.customers[customer.ID] = &cp
	return nil
}

func (f *fakeCustomerRepo) GetByID(id uint) (*models.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCustomerRepo) GetByPhone(phone string) (*models.Customer, error) {
	for _, c := range f.customers {
		if c.Phone == phone {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCustomerRepo) GetAll() ([]models.Customer, error) {
	var out []models.Customer
	for _, c := range f.customers {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCustomerRepo) Update(customer *models.Customer) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	cp := *customer
	f.customers[customer.ID] = &cp
	return nil
}

func (f *fakeCustomerRepo) Delete(id uint) error {
	if _, ok := f.customers[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.customers, id)
	return nil
}
