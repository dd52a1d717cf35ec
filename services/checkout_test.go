package services

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Kariqs/storefront-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestCheckout_TotalsAndClearsCart(t *testing.T) {
	db := newTestDB(t)
	customer := seedCustomer(t, db, "checkout@example.com")
	a := seedProduct(t, db, "Product A", "10.00")
	b := seedProduct(t, db, "Product B", "5.00")
	_, err := AddProductToCart(db, customer.ID, a.ID, 2)
	require.NoError(t, err)
	_, err = AddProductToCart(db, customer.ID, b.ID, 3)
	require.NoError(t, err)

	order, err := Checkout(db, customer.ID)
	require.NoError(t, err)
	assert.NotZero(t, order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, customer.ID, order.CustomerID)
	assert.False(t, order.OrderDate.IsZero())
	assertDecimal(t, "35.00", order.TotalAmount)

	assert.Equal(t, int64(0), countRows(t, db, &models.CartItem{}, "customer_id = ?", customer.ID))
	assert.Equal(t, int64(1), countRows(t, db, &models.Order{}, "customer_id = ?", customer.ID))

	stored, err := GetOrder(db, order.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 2)
	assertDecimal(t, "35", stored.TotalAmount)
	assertDecimal(t, "10", stored.Items[0].UnitPrice)
	assert.Equal(t, 2, stored.Items[0].Quantity)
	assertDecimal(t, "15", stored.Items[1].LineTotal)
}

func TestCheckout_TotalIsSnapshot(t *testing.T) {
	db := newTestDB(t)
	customer := seedCustomer(t, db, "snapshot@example.com")
	product := seedProduct(t, db, "Lamp", "12.50")
	_, err := AddProductToCart(db, customer.ID, product.ID, 4)
	require.NoError(t, err)

	order, err := Checkout(db, customer.ID)
	require.NoError(t, err)

	require.NoError(t, db.Model(&product).Update("price", decimal.NewFromInt(99)).Error)

	stored, err := GetOrder(db, order.ID)
	require.NoError(t, err)
	assertDecimal(t, "50", stored.TotalAmount)
	assertDecimal(t, "12.5", stored.Items[0].UnitPrice)
}

func TestCheckout_EmptyCartCreatesNothing(t *testing.T) {
	db := newTestDB(t)
	customer := seedCustomer(t, db, "empty@example.com")

	order, err := Checkout(db, customer.ID)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, int64(0), countRows(t, db, &models.Order{}, "1 = 1"))
}

func TestCheckout_UnknownCustomer(t *testing.T) {
	db := newTestDB(t)
	_, err := Checkout(db, 31337)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCheckout_MissingProductRollsBack(t *testing.T) {
	db := newTestDB(t)
	customer := seedCustomer(t, db, "gone@example.com")
	kept := seedProduct(t, db, "Kept", "3.00")
	gone := seedProduct(t, db, "Gone", "7.00")
	_, err := AddProductToCart(db, customer.ID, kept.ID, 1)
	require.NoError(t, err)
	_, err = AddProductToCart(db, customer.ID, gone.ID, 1)
	require.NoError(t, err)
	require.NoError(t, db.Delete(&gone).Error)

	_, err = Checkout(db, customer.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, int64(0), countRows(t, db, &models.Order{}, "1 = 1"))
	assert.Equal(t, int64(2), countRows(t, db, &models.CartItem{}, "customer_id = ?", customer.ID))
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func expectCheckoutReads(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `customers`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).AddRow(1, "mock@example.com"))
	mock.ExpectQuery("SELECT (.+) FROM `cart_items` WHERE customer_id = (.+) FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "product_id", "quantity"}).
			AddRow(1, 1, 10, 2).
			AddRow(2, 1, 11, 3))
	mock.ExpectQuery("SELECT (.+) FROM `products` WHERE id IN").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price"}).
			AddRow(10, "Product A", "10.00").
			AddRow(11, "Product B", "5.00"))
}

func TestCheckout_CommitsOrderAndCartClearTogether(t *testing.T) {
	db, mock := newMockDB(t)
	expectCheckoutReads(mock)
	mock.ExpectExec("INSERT INTO `orders`").WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO `order_items`").WillReturnResult(sqlmock.NewResult(1, 2))
	mock.ExpectExec("DELETE FROM `cart_items` WHERE id IN").
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	order, err := Checkout(db, 1)
	require.NoError(t, err)
	assert.Equal(t, uint(7), order.ID)
	assertDecimal(t, "35", order.TotalAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckout_RollsBackWhenCartClearFails(t *testing.T) {
	db, mock := newMockDB(t)
	expectCheckoutReads(mock)
	mock.ExpectExec("INSERT INTO `orders`").WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO `order_items`").WillReturnResult(sqlmock.NewResult(1, 2))
	mock.ExpectExec("DELETE FROM `cart_items`").WillReturnError(errors.New("lock wait timeout exceeded"))
	mock.ExpectRollback()

	order, err := Checkout(db, 1)
	assert.Nil(t, order)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lock wait timeout")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckout_RollsBackWhenOrderInsertFails(t *testing.T) {
	db, mock := newMockDB(t)
	expectCheckoutReads(mock)
	mock.ExpectExec("INSERT INTO `orders`").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := Checkout(db, 1)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
