package services

import (
	"sync"
	"testing"

	"github.com/Kariqs/storefront-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedInventory(t *testing.T, db *gorm.DB, quantity int) models.StoreInventory {
	t.Helper()
	store := seedStore(t, db, "Main Street")
	product := seedProduct(t, db, "Lamp", "20.00")
	record, err := CreateInventory(db, store.ID, product.ID, quantity, "A-1")
	require.NoError(t, err)
	return *record
}

func TestAdjustInventory(t *testing.T) {
	db := newTestDB(t)
	record := seedInventory(t, db, 10)

	updated, err := AdjustInventory(db, record.StoreID, record.ProductID, -4)
	require.NoError(t, err)
	assert.Equal(t, 6, updated.Quantity)

	updated, err = AdjustInventory(db, record.StoreID, record.ProductID, 5)
	require.NoError(t, err)
	assert.Equal(t, 11, updated.Quantity)

	updated, err = AdjustInventory(db, record.StoreID, record.ProductID, -11)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Quantity)
}

func TestAdjustInventory_NeverNegative(t *testing.T) {
	db := newTestDB(t)
	record := seedInventory(t, db, 3)

	_, err := AdjustInventory(db, record.StoreID, record.ProductID, -4)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.ErrorIs(t, err, ErrConflict)

	stored, err := GetInventory(db, record.StoreID, record.ProductID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Quantity)
}

func TestAdjustInventory_MissingRecordNotCreated(t *testing.T) {
	db := newTestDB(t)
	store := seedStore(t, db, "Empty")
	product := seedProduct(t, db, "Ghost", "1.00")

	_, err := AdjustInventory(db, store.ID, product.ID, 5)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, int64(0), countRows(t, db, &models.StoreInventory{}, "store_id = ?", store.ID))
}

func TestAdjustInventory_ConcurrentIncrements(t *testing.T) {
	db := newTestDB(t)
	record := seedInventory(t, db, 0)

	const workers = 20
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := AdjustInventory(db, record.StoreID, record.ProductID, 1)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	stored, err := GetInventory(db, record.StoreID, record.ProductID)
	require.NoError(t, err)
	assert.Equal(t, workers, stored.Quantity)
}

func TestCreateInventory(t *testing.T) {
	db := newTestDB(t)
	record := seedInventory(t, db, 2)

	_, err := CreateInventory(db, record.StoreID, record.ProductID, 1, "")
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = CreateInventory(db, record.StoreID, record.ProductID, -1, "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = CreateInventory(db, 999, record.ProductID, 1, "")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = CreateInventory(db, record.StoreID, 999, 1, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateAndDeleteInventory(t *testing.T) {
	db := newTestDB(t)
	record := seedInventory(t, db, 2)

	updated, err := UpdateInventory(db, record.StoreID, record.ProductID, 40, "B-7")
	require.NoError(t, err)
	assert.Equal(t, 40, updated.Quantity)
	assert.Equal(t, "B-7", updated.Location)

	_, err = UpdateInventory(db, record.StoreID, 999, 1, "")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, DeleteInventory(db, record.StoreID, record.ProductID))
	assert.ErrorIs(t, DeleteInventory(db, record.StoreID, record.ProductID), ErrNotFound)
}

func TestInventoryListings(t *testing.T) {
	db := newTestDB(t)
	store := seedStore(t, db, "North")
	lamp := seedProduct(t, db, "Lamp", "20.00")
	desk := seedProduct(t, db, "Desk", "120.00")
	_, err := CreateInventory(db, store.ID, lamp.ID, 2, "")
	require.NoError(t, err)
	_, err = CreateInventory(db, store.ID, desk.ID, 50, "")
	require.NoError(t, err)

	byStore, err := ListInventoryByStore(db, store.ID)
	require.NoError(t, err)
	assert.Len(t, byStore, 2)

	byProduct, err := ListInventoryByProduct(db, desk.ID)
	require.NoError(t, err)
	require.Len(t, byProduct, 1)
	assert.Equal(t, 50, byProduct[0].Quantity)

	low, err := ListLowStock(db, 5)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, lamp.ID, low[0].ProductID)

	_, err = ListLowStock(db, -1)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ListInventoryByStore(db, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}
