package services

import (
	"path/filepath"
	"testing"

	"github.com/Kariqs/storefront-api/initializers"
	"github.com/Kariqs/storefront-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "storefront.db") + "?_pragma=busy_timeout(5000)"
	db, err := initializers.OpenDatabase("sqlite", dsn)
	require.NoError(t, err)
	require.NoError(t, initializers.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, email string) models.Customer {
	t.Helper()
	customer := models.Customer{FirstName: "Test", LastName: "Customer", Email: email}
	require.NoError(t, db.Create(&customer).Error)
	return customer
}

func seedProduct(t *testing.T, db *gorm.DB, name, price string) models.Product {
	t.Helper()
	product := models.Product{Name: name, Price: decimal.RequireFromString(price)}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func seedStore(t *testing.T, db *gorm.DB, name string) models.Store {
	t.Helper()
	store := models.Store{Name: name}
	require.NoError(t, db.Create(&store).Error)
	return store
}

func seedOrder(t *testing.T, db *gorm.DB, customerID uint, status models.OrderStatus, total string) models.Order {
	t.Helper()
	order := models.Order{
		CustomerID:  customerID,
		Status:      status,
		TotalAmount: decimal.RequireFromString(total),
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}

func countRows(t *testing.T, db *gorm.DB, model any, query string, args ...any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Where(query, args...).Count(&n).Error)
	return n
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.Truef(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}
