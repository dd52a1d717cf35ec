package models

import "time"

// Wishlist is a named list of products a customer is saving for later.
// ShareCode is set while the list is shared publicly.
type Wishlist struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	CustomerID  uint           `json:"customerId" gorm:"not null;index"`
	Name        string         `json:"name" gorm:"size:120;not null"`
	Description string         `json:"description"`
	ShareCode   *string        `json:"shareCode,omitempty" gorm:"size:32;uniqueIndex"`
	Items       []WishlistItem `json:"items" gorm:"foreignKey:WishlistID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

type WishlistItem struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	WishlistID uint      `json:"wishlistId" gorm:"not null;uniqueIndex:idx_wishlist_product"`
	ProductID  uint      `json:"productId" gorm:"not null;uniqueIndex:idx_wishlist_product"`
	Product    *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	AddedAt    time.Time `json:"addedAt"`
}

type WishlistInput struct {
	CustomerID  uint   `json:"customerId"`
	Name        string `json:"name" binding:"required,max=120"`
	Description string `json:"description"`
}
