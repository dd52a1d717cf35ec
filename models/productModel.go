package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProductSpecs struct {
	gorm.Model
	Label     string `json:"label" binding:"required"`
	Value     string `json:"value" binding:"required"`
	ProductID uint   `json:"productId" binding:"required"`
}

type ProductImage struct {
	gorm.Model
	Url       string `json:"url" binding:"required"`
	ProductID uint   `json:"productId" binding:"required"`
}

type ProductCategory struct {
	gorm.Model
	Name        string `json:"name" gorm:"size:120;not null;uniqueIndex" binding:"required"`
	Description string `json:"description"`
}

type Supplier struct {
	gorm.Model
	Name         string `json:"name" gorm:"size:120;not null;uniqueIndex" binding:"required"`
	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail" binding:"omitempty,email"`
	Phone        string `json:"phone"`
}

type Product struct {
	gorm.Model
	Brand          string          `json:"brand"`
	Name           string          `json:"name" gorm:"not null;index" binding:"required"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	CategoryID     *uint           `json:"categoryId" gorm:"index"`
	SupplierID     *uint           `json:"supplierId" gorm:"index"`
	Colors         datatypes.JSON  `json:"colors"`
	Specifications []ProductSpecs  `json:"specifications" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Images         []ProductImage  `json:"images" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}
