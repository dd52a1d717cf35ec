package models

import "time"

// CartItem is one staged (customer, product) line. Rows are hard-deleted,
// so it carries no DeletedAt and the unique index stays meaningful.
type CartItem struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CustomerID uint      `json:"customerId" gorm:"not null;uniqueIndex:idx_cart_customer_product"`
	ProductID  uint      `json:"productId" gorm:"not null;uniqueIndex:idx_cart_customer_product"`
	Quantity   int       `json:"quantity" gorm:"not null"`
	AddedAt    time.Time `json:"addedAt"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type AddToCartInput struct {
	CustomerID uint `json:"customerId" binding:"required"`
	ProductID  uint `json:"productId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1,max=9999"`
}

type CartQuantityInput struct {
	Quantity *int `json:"quantity" binding:"required,min=0,max=9999"`
}
