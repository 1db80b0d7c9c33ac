package repository

import (
	"context"

	"gorm.io/gorm"
)

// TxRepos gives a unit of work access to repositories bound to one
// transaction. All writes made through it commit or roll back together.
type TxRepos interface {
	Orders() OrderRepository
	OrderItems() OrderItemRepository
	Products() ProductRepository
}

// TransactionManager hides begin/commit/rollback from the services. The
// callback runs inside a single transaction: returning nil commits,
// returning an error rolls everything back. The underlying connection is
// released in both cases.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}

type txRepos struct {
	orders     OrderRepository
	orderItems OrderItemRepository
	products   ProductRepository
}

func (r *txRepos) Orders() OrderRepository         { return r.orders }
func (r *txRepos) OrderItems() OrderItemRepository { return r.orderItems }
func (r *txRepos) Products() ProductRepository     { return r.products }

type txManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) TransactionManager {
	return &txManager{db: db}
}

func (tm *txManager) WithinTx(ctx context.Context, fn func(r TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// repositories are rebuilt on the transaction handle
		r := &txRepos{
			orders:     NewOrderRepository(tx),
			orderItems: NewOrderItemRepository(tx),
			products:   NewProductRepository(tx),
		}
		return fn(r)
	})
}
