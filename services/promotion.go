package services

import (
	"strings"
	"time"

	"github.com/Kariqs/storefront-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var hundred = decimal.NewFromInt(100)

func validatePromotion(db *gorm.DB, promo *models.Promotion) error {
	promo.StartDate = promo.StartDate.UTC()
	promo.EndDate = promo.EndDate.UTC()
	promo.DiscountType = strings.ToUpper(strings.TrimSpace(promo.DiscountType))
	switch promo.DiscountType {
	case models.DiscountPercentage:
		if !promo.DiscountValue.IsPositive() || promo.DiscountValue.GreaterThan(hundred) {
			return invalid("percentage discount %s must be in (0, 100]", promo.DiscountValue)
		}
	case models.DiscountFixed:
		if !promo.DiscountValue.IsPositive() {
			return invalid("fixed discount %s must be greater than zero", promo.DiscountValue)
		}
	default:
		return invalid("unknown discount type %q", promo.DiscountType)
	}
	if !promo.EndDate.After(promo.StartDate) {
		return invalid("promotion must end after it starts")
	}
	if promo.ProductID != nil {
		if err := findByID(db, &models.Product{}, "product", *promo.ProductID); err != nil {
			return err
		}
	}
	if promo.CategoryID != nil {
		if err := findByID(db, &models.ProductCategory{}, "category", *promo.CategoryID); err != nil {
			return err
		}
	}
	return nil
}

func CreatePromotion(db *gorm.DB, promo *models.Promotion) error {
	if err := validatePromotion(db, promo); err != nil {
		return err
	}
	return db.Create(promo).Error
}

func UpdatePromotion(db *gorm.DB, id uint, input models.Promotion) (*models.Promotion, error) {
	promo, err := GetPromotion(db, id)
	if err != nil {
		return nil, err
	}
	if err := validatePromotion(db, &input); err != nil {
		return nil, err
	}
	input.ID = promo.ID
	input.CreatedAt = promo.CreatedAt
	if err := db.Save(&input).Error; err != nil {
		return nil, err
	}
	return &input, nil
}

func GetPromotion(db *gorm.DB, id uint) (*models.Promotion, error) {
	var promo models.Promotion
	if err := findByID(db, &promo, "promotion", id); err != nil {
		return nil, err
	}
	return &promo, nil
}

func ListPromotions(db *gorm.DB) ([]models.Promotion, error) {
	var promos []models.Promotion
	err := db.Order("start_date desc").Find(&promos).Error
	return promos, err
}

// ListActivePromotions returns enabled promotions whose window contains at.
func ListActivePromotions(db *gorm.DB, at time.Time) ([]models.Promotion, error) {
	at = at.UTC()
	var promos []models.Promotion
	err := db.Where("active = ? AND start_date <= ? AND end_date > ?", true, at, at).
		Order("end_date").
		Find(&promos).Error
	return promos, err
}

func DeletePromotion(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Promotion{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound("promotion", id)
	}
	return nil
}

// ApplyPromotion returns price after the promotion's discount, never below zero.
func ApplyPromotion(price decimal.Decimal, promo models.Promotion) decimal.Decimal {
	var discounted decimal.Decimal
	switch promo.DiscountType {
	case models.DiscountPercentage:
		discounted = price.Sub(price.Mul(promo.DiscountValue).Div(hundred))
	case models.DiscountFixed:
		discounted = price.Sub(promo.DiscountValue)
	default:
		return price
	}
	if discounted.IsNegative() {
		return decimal.Zero
	}
	return discounted.Round(2)
}
