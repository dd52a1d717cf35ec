package services

import (
	"errors"
	"fmt"

	"github.com/Kariqs/storefront-api/models"
	"gorm.io/gorm"
)

func inventoryKey(storeID, productID uint) string {
	return fmt.Sprintf("store %d / product %d", storeID, productID)
}

func CreateStore(db *gorm.DB, store *models.Store) error {
	return db.Create(store).Error
}

func ListStores(db *gorm.DB) ([]models.Store, error) {
	var stores []models.Store
	err := db.Order("id").Find(&stores).Error
	return stores, err
}

func CreateInventory(db *gorm.DB, storeID, productID uint, quantity int, location string) (*models.StoreInventory, error) {
	if quantity < 0 {
		return nil, invalid("quantity %d is negative", quantity)
	}

	record := models.StoreInventory{StoreID: storeID, ProductID: productID, Quantity: quantity, Location: location}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := findByID(tx, &models.Store{}, "store", storeID); err != nil {
			return err
		}
		if err := findByID(tx, &models.Product{}, "product", productID); err != nil {
			return err
		}
		found, err := exists(tx, &models.StoreInventory{}, "store_id = ? AND product_id = ?", storeID, productID)
		if err != nil {
			return err
		}
		if found {
			return duplicate("inventory", "key", inventoryKey(storeID, productID))
		}
		return tx.Create(&record).Error
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func GetInventory(db *gorm.DB, storeID, productID uint) (*models.StoreInventory, error) {
	var record models.StoreInventory
	err := db.Where("store_id = ? AND product_id = ?", storeID, productID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("inventory", inventoryKey(storeID, productID))
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func ListInventory(db *gorm.DB) ([]models.StoreInventory, error) {
	var records []models.StoreInventory
	err := db.Order("store_id, product_id").Find(&records).Error
	return records, err
}

func ListInventoryByStore(db *gorm.DB, storeID uint) ([]models.StoreInventory, error) {
	if err := findByID(db, &models.Store{}, "store", storeID); err != nil {
		return nil, err
	}
	var records []models.StoreInventory
	err := db.Where("store_id = ?", storeID).Order("product_id").Find(&records).Error
	return records, err
}

func ListInventoryByProduct(db *gorm.DB, productID uint) ([]models.StoreInventory, error) {
	if err := findByID(db, &models.Product{}, "product", productID); err != nil {
		return nil, err
	}
	var records []models.StoreInventory
	err := db.Where("product_id = ?", productID).Order("store_id").Find(&records).Error
	return records, err
}

// ListLowStock returns records whose quantity is below threshold.
func ListLowStock(db *gorm.DB, threshold int) ([]models.StoreInventory, error) {
	if threshold < 0 {
		return nil, invalid("threshold %d is negative", threshold)
	}
	var records []models.StoreInventory
	err := db.Where("quantity < ?", threshold).Order("quantity, store_id, product_id").Find(&records).Error
	return records, err
}

// UpdateInventory overwrites quantity and location of an existing record.
func UpdateInventory(db *gorm.DB, storeID, productID uint, quantity int, location string) (*models.StoreInventory, error) {
	if quantity < 0 {
		return nil, invalid("quantity %d is negative", quantity)
	}
	result := db.Model(&models.StoreInventory{}).
		Where("store_id = ? AND product_id = ?", storeID, productID).
		Updates(map[string]any{"quantity": quantity, "location": location})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, notFound("inventory", inventoryKey(storeID, productID))
	}
	return GetInventory(db, storeID, productID)
}

// AdjustInventory adds delta (which may be negative) to the stock on hand.
// The increment happens in a single guarded UPDATE, so concurrent
// adjustments of the same record cannot lose each other's writes and the
// quantity never goes below zero. A missing record is not created.
func AdjustInventory(db *gorm.DB, storeID, productID uint, delta int) (*models.StoreInventory, error) {
	var record *models.StoreInventory
	err := db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.StoreInventory{}).
			Where("store_id = ? AND product_id = ? AND quantity + ? >= 0", storeID, productID, delta).
			Update("quantity", gorm.Expr("quantity + ?", delta))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			current, err := GetInventory(tx, storeID, productID)
			if err != nil {
				return err
			}
			return fmt.Errorf("%s has %d, adjustment %d: %w", inventoryKey(storeID, productID), current.Quantity, delta, ErrInsufficientStock)
		}

		var err error
		record, err = GetInventory(tx, storeID, productID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

func DeleteInventory(db *gorm.DB, storeID, productID uint) error {
	result := db.Where("store_id = ? AND product_id = ?", storeID, productID).Delete(&models.StoreInventory{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound("inventory", inventoryKey(storeID, productID))
	}
	return nil
}
