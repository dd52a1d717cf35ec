package models

import "gorm.io/gorm"

const (
	AddressTypeShipping = "SHIPPING"
	AddressTypeBilling  = "BILLING"
)

type Address struct {
	gorm.Model
	CustomerID  uint   `json:"customerId" gorm:"not null;index"`
	Street      string `json:"street" gorm:"not null"`
	City        string `json:"city" gorm:"size:100;not null"`
	State       string `json:"state" gorm:"size:100"`
	PostalCode  string `json:"postalCode" gorm:"size:20"`
	Country     string `json:"country" gorm:"size:100;not null"`
	AddressType string `json:"addressType" gorm:"size:20"`
	IsDefault   bool   `json:"isDefault"`
}

// AddressInput is the create and update body. A nil IsDefault leaves the
// default flag alone on update.
type AddressInput struct {
	CustomerID  uint   `json:"customerId" binding:"required"`
	Street      string `json:"street" binding:"required,max=255"`
	City        string `json:"city" binding:"required,max=100"`
	State       string `json:"state" binding:"max=100"`
	PostalCode  string `json:"postalCode" binding:"max=20"`
	Country     string `json:"country" binding:"required,max=100"`
	AddressType string `json:"addressType" binding:"omitempty,oneof=SHIPPING BILLING"`
	IsDefault   *bool  `json:"isDefault"`
}
