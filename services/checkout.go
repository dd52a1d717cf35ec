package services

import (
	"time"

	"github.com/Kariqs/storefront-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Checkout turns the customer's cart into a PENDING order and removes the
// lines it priced. Everything runs in one transaction: either the order
// exists and those lines are gone, or nothing changed. Cart rows are read
// with FOR UPDATE, and only the ids read are deleted, so a line added
// concurrently stays in the cart.
func Checkout(db *gorm.DB, customerID uint) (*models.Order, error) {
	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := findByID(tx, &models.Customer{}, "customer", customerID); err != nil {
			return err
		}

		var items []models.CartItem
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("customer_id = ?", customerID).
			Order("id").
			Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		products, err := productsByID(tx, items)
		if err != nil {
			return err
		}

		order = models.Order{
			CustomerID:  customerID,
			OrderDate:   time.Now().UTC(),
			Status:      models.OrderStatusPending,
			TotalAmount: decimal.Zero,
			Items:       make([]models.OrderItem, 0, len(items)),
		}
		lineIDs := make([]uint, 0, len(items))
		for _, item := range items {
			lineIDs = append(lineIDs, item.ID)
			product := products[item.ProductID]
			lineTotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			order.Items = append(order.Items, models.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				UnitPrice:   product.Price,
				Quantity:    item.Quantity,
				LineTotal:   lineTotal,
			})
			order.TotalAmount = order.TotalAmount.Add(lineTotal)
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", lineIDs).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}
