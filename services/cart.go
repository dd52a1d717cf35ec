package services

import (
	"fmt"
	"time"

	"github.com/Kariqs/storefront-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartLine is a cart item joined with the product's current price.
type CartLine struct {
	models.CartItem
	ProductName string          `json:"productName"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

type CartView struct {
	CustomerID uint            `json:"customerId"`
	Items      []CartLine      `json:"items"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

// MaxCartQuantity caps the units of one product a cart line may hold.
const MaxCartQuantity = 9999

func checkCartQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if quantity > MaxCartQuantity {
		return invalid("quantity %d exceeds the limit of %d", quantity, MaxCartQuantity)
	}
	return nil
}

// AddProductToCart stages quantity units of a product for a customer. A
// second add of the same product increments the existing line. The insert
// is an upsert on (customer, product) so concurrent first adds merge.
func AddProductToCart(db *gorm.DB, customerID, productID uint, quantity int) (*models.CartItem, error) {
	if err := checkCartQuantity(quantity); err != nil {
		return nil, err
	}

	var item models.CartItem
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := findByID(tx, &models.Customer{}, "customer", customerID); err != nil {
			return err
		}
		if err := findByID(tx, &models.Product{}, "product", productID); err != nil {
			return err
		}

		now := time.Now()
		line := models.CartItem{
			CustomerID: customerID,
			ProductID:  productID,
			Quantity:   quantity,
			AddedAt:    now,
		}
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "customer_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity":   gorm.Expr("quantity + ?", quantity),
				"updated_at": now,
			}),
		}).Create(&line).Error
		if err != nil {
			return err
		}

		if err := tx.Where("customer_id = ? AND product_id = ?", customerID, productID).First(&item).Error; err != nil {
			return err
		}
		if item.Quantity > MaxCartQuantity {
			return invalid("cart line for product %d would hold %d units, limit is %d", productID, item.Quantity, MaxCartQuantity)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// loadCartLine fetches a cart line and checks it holds productID.
func loadCartLine(db *gorm.DB, cartID, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := findByID(db, &item, "cart item", cartID); err != nil {
		return nil, err
	}
	if item.ProductID != productID {
		return nil, notFound(fmt.Sprintf("product in cart item %d", cartID), productID)
	}
	return &item, nil
}

// UpdateCartQuantity replaces the quantity of a cart line. Zero is rejected
// here; the HTTP layer turns a zero into RemoveProductFromCart.
func UpdateCartQuantity(db *gorm.DB, cartID, productID uint, quantity int) (*models.CartItem, error) {
	if err := checkCartQuantity(quantity); err != nil {
		return nil, err
	}
	item, err := loadCartLine(db, cartID, productID)
	if err != nil {
		return nil, err
	}
	item.Quantity = quantity
	if err := db.Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func RemoveProductFromCart(db *gorm.DB, cartID, productID uint) (*models.CartItem, error) {
	item, err := loadCartLine(db, cartID, productID)
	if err != nil {
		return nil, err
	}
	if err := db.Delete(&models.CartItem{}, item.ID).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// ClearCart removes every line of the customer's cart.
func ClearCart(db *gorm.DB, customerID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := findByID(tx, &models.Customer{}, "customer", customerID); err != nil {
			return err
		}
		result := tx.Where("customer_id = ?", customerID).Delete(&models.CartItem{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return notFound("cart for customer", customerID)
		}
		return nil
	})
}

func GetCartItem(db *gorm.DB, cartID uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := findByID(db, &item, "cart item", cartID); err != nil {
		return nil, err
	}
	return &item, nil
}

// GetCart returns the customer's cart priced at current product prices.
func GetCart(db *gorm.DB, customerID uint) (*CartView, error) {
	if err := findByID(db, &models.Customer{}, "customer", customerID); err != nil {
		return nil, err
	}

	var items []models.CartItem
	if err := db.Where("customer_id = ?", customerID).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	products, err := productsByID(db, items)
	if err != nil {
		return nil, err
	}

	view := &CartView{CustomerID: customerID, Items: make([]CartLine, 0, len(items)), Subtotal: decimal.Zero}
	for _, item := range items {
		product := products[item.ProductID]
		line := CartLine{CartItem: item, ProductName: product.Name, UnitPrice: product.Price}
		line.LineTotal = product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		view.Subtotal = view.Subtotal.Add(line.LineTotal)
		view.Items = append(view.Items, line)
	}
	return view, nil
}

// productsByID loads the products referenced by the given cart lines.
// A line pointing at a missing product is reported as ErrNotFound.
func productsByID(db *gorm.DB, items []models.CartItem) (map[uint]models.Product, error) {
	if len(items) == 0 {
		return map[uint]models.Product{}, nil
	}
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	var products []models.Product
	if err := db.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			return nil, notFound("product", id)
		}
	}
	return byID, nil
}
