package initializers

import (
	"log"

	"github.com/Kariqs/storefront-api/models"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Customer{},
		&models.User{},
		&models.ProductCategory{},
		&models.Supplier{},
		&models.Product{},
		&models.ProductImage{},
		&models.ProductSpecs{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Store{},
		&models.StoreInventory{},
		&models.PaymentMethod{},
		&models.Payment{},
		&models.Review{},
		&models.Promotion{},
		&models.Wishlist{},
		&models.WishlistItem{},
		&models.Address{},
		&models.Shipment{},
		&models.ShipmentEvent{},
	)
}

func SyncDatabase() {
	if err := Migrate(DB); err != nil {
		log.Fatal("Database sync failed: ", err)
	}
	log.Println("Database synced successfully.")
}
