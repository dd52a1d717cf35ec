package models

import (
	"time"

	"gorm.io/gorm"
)

type Store struct {
	gorm.Model
	Name    string `json:"name" gorm:"not null" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// StoreInventory is keyed by (store, product); Quantity never drops below zero.
type StoreInventory struct {
	StoreID   uint      `json:"storeId" gorm:"primaryKey;autoIncrement:false"`
	ProductID uint      `json:"productId" gorm:"primaryKey;autoIncrement:false"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type InventoryInput struct {
	StoreID   uint   `json:"storeId"`
	ProductID uint   `json:"productId"`
	Quantity  *int   `json:"quantity" binding:"required"`
	Location  string `json:"location"`
}
