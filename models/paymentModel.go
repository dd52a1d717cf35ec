package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentMethod struct {
	gorm.Model
	CustomerID   uint   `json:"customerId" gorm:"not null;index"`
	Type         string `json:"type" gorm:"size:30"`
	Provider     string `json:"provider"`
	LastFour     string `json:"lastFour" gorm:"size:4"`
	ExpiryMonth  int    `json:"expiryMonth"`
	ExpiryYear   int    `json:"expiryYear"`
	GatewayToken string `json:"-" gorm:"size:255"`
	IsDefault    bool   `json:"isDefault"`
}

// PaymentMethodInput is the create body. GatewayToken is the processor's
// credential for the method; it is stored but never echoed back.
type PaymentMethodInput struct {
	CustomerID   uint   `json:"customerId" binding:"required"`
	Type         string `json:"type" binding:"required,oneof=CARD PAYPAL BANK_TRANSFER MOBILE_MONEY"`
	Provider     string `json:"provider"`
	LastFour     string `json:"lastFour" binding:"omitempty,len=4,numeric"`
	ExpiryMonth  int    `json:"expiryMonth" binding:"omitempty,min=1,max=12"`
	ExpiryYear   int    `json:"expiryYear"`
	GatewayToken string `json:"gatewayToken" binding:"omitempty,max=255"`
	IsDefault    bool   `json:"isDefault"`
}

func (in PaymentMethodInput) PaymentMethod() PaymentMethod {
	return PaymentMethod{
		CustomerID:   in.CustomerID,
		Type:         in.Type,
		Provider:     in.Provider,
		LastFour:     in.LastFour,
		ExpiryMonth:  in.ExpiryMonth,
		ExpiryYear:   in.ExpiryYear,
		GatewayToken: in.GatewayToken,
		IsDefault:    in.IsDefault,
	}
}

type Payment struct {
	gorm.Model
	OrderID         uint            `json:"orderId" gorm:"not null;index"`
	PaymentMethodID uint            `json:"paymentMethodId" gorm:"not null"`
	Amount          decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	Currency        string          `json:"currency" gorm:"size:3"`
	TransactionID   string          `json:"transactionId" gorm:"index"`
	Status          string          `json:"status" gorm:"size:20"`
	ProcessedAt     time.Time       `json:"processedAt"`
}
