package services

import (
	"errors"

	"github.com/Kariqs/storefront-api/models"
	"gorm.io/gorm"
)

// CreateAddress stores an address for input.CustomerID. A customer's first
// address becomes the default.
func CreateAddress(db *gorm.DB, input models.AddressInput) (*models.Address, error) {
	address := models.Address{CustomerID: input.CustomerID}
	applyAddressInput(&address, input)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := findByID(tx, &models.Customer{}, "customer", input.CustomerID); err != nil {
			return err
		}
		hasDefault, err := exists(tx, &models.Address{}, "customer_id = ? AND is_default = ?", input.CustomerID, true)
		if err != nil {
			return err
		}
		switch {
		case !hasDefault:
			address.IsDefault = true
		case address.IsDefault:
			if err := clearDefaultAddress(tx, input.CustomerID); err != nil {
				return err
			}
		}
		return tx.Create(&address).Error
	})
	if err != nil {
		return nil, err
	}
	return &address, nil
}

func applyAddressInput(address *models.Address, input models.AddressInput) {
	address.Street = input.Street
	address.City = input.City
	address.State = input.State
	address.PostalCode = input.PostalCode
	address.Country = input.Country
	address.AddressType = input.AddressType
	if address.AddressType == "" {
		address.AddressType = models.AddressTypeShipping
	}
	if input.IsDefault != nil {
		address.IsDefault = *input.IsDefault
	}
}

func clearDefaultAddress(tx *gorm.DB, customerID uint) error {
	return tx.Model(&models.Address{}).
		Where("customer_id = ? AND is_default = ?", customerID, true).
		Update("is_default", false).Error
}

func GetAddress(db *gorm.DB, id uint) (*models.Address, error) {
	var address models.Address
	if err := findByID(db, &address, "address", id); err != nil {
		return nil, err
	}
	return &address, nil
}

func ListAddresses(db *gorm.DB, customerID uint) ([]models.Address, error) {
	if err := findByID(db, &models.Customer{}, "customer", customerID); err != nil {
		return nil, err
	}
	var addresses []models.Address
	err := db.Where("customer_id = ?", customerID).Order("is_default desc, id").Find(&addresses).Error
	return addresses, err
}

func GetDefaultAddress(db *gorm.DB, customerID uint) (*models.Address, error) {
	if err := findByID(db, &models.Customer{}, "customer", customerID); err != nil {
		return nil, err
	}
	var address models.Address
	err := db.Where("customer_id = ? AND is_default = ?", customerID, true).First(&address).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("default address for customer", customerID)
	}
	if err != nil {
		return nil, err
	}
	return &address, nil
}

// UpdateAddress replaces an address's fields. The owner cannot change, and
// unsetting the default is refused; pick another default instead.
func UpdateAddress(db *gorm.DB, id uint, input models.AddressInput) (*models.Address, error) {
	var address models.Address
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := findByID(tx, &address, "address", id); err != nil {
			return err
		}
		if input.CustomerID != address.CustomerID {
			return invalid("address owner cannot change")
		}
		wasDefault := address.IsDefault
		applyAddressInput(&address, input)
		if wasDefault && !address.IsDefault {
			return invalid("address %d is the default; set another address as default first", id)
		}
		if address.IsDefault && !wasDefault {
			if err := clearDefaultAddress(tx, address.CustomerID); err != nil {
				return err
			}
		}
		return tx.Save(&address).Error
	})
	if err != nil {
		return nil, err
	}
	return &address, nil
}

func SetDefaultAddress(db *gorm.DB, id uint) (*models.Address, error) {
	var address models.Address
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := findByID(tx, &address, "address", id); err != nil {
			return err
		}
		if err := clearDefaultAddress(tx, address.CustomerID); err != nil {
			return err
		}
		address.IsDefault = true
		return tx.Model(&address).Update("is_default", true).Error
	})
	if err != nil {
		return nil, err
	}
	return &address, nil
}

// DeleteAddress removes an address. When it was the default, the customer's
// oldest remaining address takes over.
func DeleteAddress(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var address models.Address
		if err := findByID(tx, &address, "address", id); err != nil {
			return err
		}
		if err := tx.Delete(&address).Error; err != nil {
			return err
		}
		if !address.IsDefault {
			return nil
		}

		var next models.Address
		err := tx.Where("customer_id = ?", address.CustomerID).Order("id").First(&next).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return tx.Model(&next).Update("is_default", true).Error
	})
}
