package services

import (
	"errors"
	"strings"
	"time"

	"github.com/Kariqs/storefront-api/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func preloadWishlist(db *gorm.DB) *gorm.DB {
	return db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("added_at, id")
	}).Preload("Items.Product")
}

func CreateWishlist(db *gorm.DB, input models.WishlistInput) (*models.Wishlist, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, invalid("wishlist name is required")
	}
	if err := findByID(db, &models.Customer{}, "customer", input.CustomerID); err != nil {
		return nil, err
	}
	wishlist := models.Wishlist{CustomerID: input.CustomerID, Name: name, Description: input.Description}
	if err := db.Create(&wishlist).Error; err != nil {
		return nil, err
	}
	wishlist.Items = []models.WishlistItem{}
	return &wishlist, nil
}

func GetWishlist(db *gorm.DB, id uint) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	if err := findByID(preloadWishlist(db), &wishlist, "wishlist", id); err != nil {
		return nil, err
	}
	return &wishlist, nil
}

func ListWishlists(db *gorm.DB, customerID uint) ([]models.Wishlist, error) {
	if err := findByID(db, &models.Customer{}, "customer", customerID); err != nil {
		return nil, err
	}
	var wishlists []models.Wishlist
	err := preloadWishlist(db).Where("customer_id = ?", customerID).Order("id").Find(&wishlists).Error
	return wishlists, err
}

// UpdateWishlist renames a wishlist. Its owner and products are untouched.
func UpdateWishlist(db *gorm.DB, id uint, input models.WishlistInput) (*models.Wishlist, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, invalid("wishlist name is required")
	}
	wishlist, err := GetWishlist(db, id)
	if err != nil {
		return nil, err
	}
	if input.CustomerID != 0 && input.CustomerID != wishlist.CustomerID {
		return nil, invalid("wishlist owner cannot change")
	}
	err = db.Model(&models.Wishlist{}).Where("id = ?", id).
		Updates(map[string]any{"name": name, "description": input.Description}).Error
	if err != nil {
		return nil, err
	}
	return GetWishlist(db, id)
}

func DeleteWishlist(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("wishlist_id = ?", id).Delete(&models.WishlistItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Wishlist{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return notFound("wishlist", id)
		}
		return nil
	})
}

// AddProductToWishlist saves a product. Adding one that is already on the
// list leaves it as is.
func AddProductToWishlist(db *gorm.DB, wishlistID, productID uint) (*models.Wishlist, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := findByID(tx, &models.Wishlist{}, "wishlist", wishlistID); err != nil {
			return err
		}
		if err := findByID(tx, &models.Product{}, "product", productID); err != nil {
			return err
		}
		item := models.WishlistItem{WishlistID: wishlistID, ProductID: productID, AddedAt: time.Now().UTC()}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return GetWishlist(db, wishlistID)
}

func RemoveProductFromWishlist(db *gorm.DB, wishlistID, productID uint) (*models.Wishlist, error) {
	if err := findByID(db, &models.Wishlist{}, "wishlist", wishlistID); err != nil {
		return nil, err
	}
	if err := removeWishlistItem(db, wishlistID, productID); err != nil {
		return nil, err
	}
	return GetWishlist(db, wishlistID)
}

func removeWishlistItem(db *gorm.DB, wishlistID, productID uint) error {
	result := db.Where("wishlist_id = ? AND product_id = ?", wishlistID, productID).Delete(&models.WishlistItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound("product in wishlist", productID)
	}
	return nil
}

type MovedToCart struct {
	Wishlist *models.Wishlist `json:"wishlist"`
	CartItem *models.CartItem `json:"cartItem"`
}

// MoveProductToCart takes a product off the wishlist and adds quantity units
// of it to the owner's cart, in one transaction.
func MoveProductToCart(db *gorm.DB, wishlistID, productID uint, quantity int) (*MovedToCart, error) {
	if err := checkCartQuantity(quantity); err != nil {
		return nil, err
	}
	var moved MovedToCart
	err := db.Transaction(func(tx *gorm.DB) error {
		var wishlist models.Wishlist
		if err := findByID(tx, &wishlist, "wishlist", wishlistID); err != nil {
			return err
		}
		if err := removeWishlistItem(tx, wishlistID, productID); err != nil {
			return err
		}
		item, err := AddProductToCart(tx, wishlist.CustomerID, productID, quantity)
		if err != nil {
			return err
		}
		moved.CartItem = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	if moved.Wishlist, err = GetWishlist(db, wishlistID); err != nil {
		return nil, err
	}
	return &moved, nil
}

// ShareWishlist gives the wishlist a public share code, keeping an existing
// one.
func ShareWishlist(db *gorm.DB, id uint) (*models.Wishlist, error) {
	wishlist, err := GetWishlist(db, id)
	if err != nil {
		return nil, err
	}
	if wishlist.ShareCode != nil {
		return wishlist, nil
	}
	code := strings.ReplaceAll(uuid.NewString(), "-", "")
	result := db.Model(&models.Wishlist{}).Where("id = ? AND share_code IS NULL", id).Update("share_code", code)
	if result.Error != nil {
		return nil, result.Error
	}
	return GetWishlist(db, id)
}

func UnshareWishlist(db *gorm.DB, id uint) (*models.Wishlist, error) {
	if err := findByID(db, &models.Wishlist{}, "wishlist", id); err != nil {
		return nil, err
	}
	if err := db.Model(&models.Wishlist{}).Where("id = ?", id).Update("share_code", nil).Error; err != nil {
		return nil, err
	}
	return GetWishlist(db, id)
}

func GetSharedWishlist(db *gorm.DB, code string) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	err := preloadWishlist(db).Where("share_code = ?", code).First(&wishlist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("shared wishlist", code)
	}
	if err != nil {
		return nil, err
	}
	return &wishlist, nil
}
