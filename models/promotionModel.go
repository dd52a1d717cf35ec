package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	DiscountPercentage = "PERCENTAGE"
	DiscountFixed      = "FIXED"
)

type Promotion struct {
	gorm.Model
	Name          string          `json:"name" gorm:"not null" binding:"required"`
	Description   string          `json:"description"`
	DiscountType  string          `json:"discountType" gorm:"size:20;not null" binding:"required"`
	DiscountValue decimal.Decimal `json:"discountValue" gorm:"type:decimal(12,2);not null"`
	StartDate     time.Time       `json:"startDate" binding:"required"`
	EndDate       time.Time       `json:"endDate" binding:"required"`
	Active        bool            `json:"active"`
	ProductID     *uint           `json:"productId"`
	CategoryID    *uint           `json:"categoryId"`
}
