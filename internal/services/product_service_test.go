package services

import (
	"context"
	"testing"

	"storefront/internal/apperrors"
	"storefront/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductServiceFixture() (*fakeProductRepo, ProductService) {
	products := newFakeProductRepo()
	products.products[1] = &models.Product{ID: 1, CategoryID: 1, Name: "Cheeseburger", Price: 15.99, IsActive: true}
	products.addons[1] = []models.ProductAddon{{ID: 1, ProductID: 1, Name: "Bacon", Price: 4.00}}

	tx := &fakeTxManager{repos: &fakeTxRepos{orders: &fakeOrderRepo{}, orderItems: &fakeOrderItemRepo{}, products: products}}
	return products, NewProductService(tx, products)
}

func TestUpdateProductDeep(t *testing.T) {
	products, svc := newProductServiceFixture()

	updated, err := svc.UpdateProduct(context.Background(), 1, &models.UpdateProductRequest{
		Name:        "X-Burger",
		Description: "With salad",
		Price:       18.50,
		Addons: []models.ProductAddon{
			{Name: "Bacon", Price: 4.50},
			{Name: "Fried egg", Price: 2.00},
		},
		Sizes: []models.ProductSize{{Name: "Double", Price: 8.00}},
	})
	require.NoError(t, err)

	assert.Equal(t, "X-Burger", updated.Name)
	assert.Equal(t, 18.50, updated.Price)
	assert.Len(t, updated.Addons, 2)
	assert.Len(t, updated.Sizes, 1)
	assert.Empty(t, products.ingredients[1], "omitted collections are replaced with nothing")
}

func TestUpdateProductNotFound(t *testing.T) {
	_, svc := newProductServiceFixture()

	_, err := svc.UpdateProduct(context.Background(), 99, &models.UpdateProductRequest{Name: "Ghost", Price: 1})

	var nfErr *apperrors.NotFoundError
	require.ErrorAs(t, err, &nfErr)
}

func TestUpdateProductValidation(t *testing.T) {
	_, svc := newProductServiceFixture()

	var vErr *apperrors.ValidationError

	_, err := svc.UpdateProduct(context.Background(), 1, &models.UpdateProductRequest{Name: "  ", Price: 1})
	require.ErrorAs(t, err, &vErr)

	_, err = svc.UpdateProduct(context.Background(), 1, &models.UpdateProductRequest{Name: "Burger", Price: -1})
	require.ErrorAs(t, err, &vErr)
}

func TestDeleteProductLinkedToOrder(t *testing.T) {
	products, svc := newProductServiceFixture()
	products.deleteErr = &pgconn.PgError{Code: "23503", ConstraintName: "fk_order_items_product"}

	err := svc.DeleteProduct(1)

	var cvErr *apperrors.ConstraintViolation
	require.ErrorAs(t, err, &cvErr)
	assert.Contains(t, cvErr.Message, "linked to an order")
}

func TestDeleteProductNotFound(t *testing.T) {
	_, svc := newProductServiceFixture()

	var nfErr *apperrors.NotFoundError
	require.ErrorAs(t, svc.DeleteProduct(99), &nfErr)
}
