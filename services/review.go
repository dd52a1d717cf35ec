package services

import (
	"errors"

	"github.com/Kariqs/storefront-api/models"
	"gorm.io/gorm"
)

const (
	minRating = 1
	maxRating = 5
)

type RatingSummary struct {
	ProductID uint    `json:"productId"`
	Average   float64 `json:"average"`
	Count     int64   `json:"count"`
}

func validateRating(rating int) error {
	if rating < minRating || rating > maxRating {
		return invalid("rating %d must be between %d and %d", rating, minRating, maxRating)
	}
	return nil
}

// CreateReview records a customer's review of a product. Each customer may
// review a product once; new reviews wait for moderation.
func CreateReview(db *gorm.DB, input models.ReviewInput) (*models.Review, error) {
	if err := validateRating(input.Rating); err != nil {
		return nil, err
	}

	review := models.Review{
		CustomerID: input.CustomerID,
		ProductID:  input.ProductID,
		Rating:     input.Rating,
		Title:      input.Title,
		Comment:    input.Comment,
		Status:     models.ReviewStatusPending,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := findByID(tx, &models.Customer{}, "customer", input.CustomerID); err != nil {
			return err
		}
		if err := findByID(tx, &models.Product{}, "product", input.ProductID); err != nil {
			return err
		}
		reviewed, err := exists(tx, &models.Review{}, "customer_id = ? AND product_id = ?", input.CustomerID, input.ProductID)
		if err != nil {
			return err
		}
		if reviewed {
			return duplicate("review", "product", input.ProductID)
		}
		err = tx.Create(&review).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return duplicate("review", "product", input.ProductID)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// IsPublished reports whether a review is visible to everyone.
func IsPublished(review *models.Review) bool {
	return review.Status == models.ReviewStatusApproved
}

func GetReview(db *gorm.DB, id uint) (*models.Review, error) {
	var review models.Review
	if err := findByID(db, &review, "review", id); err != nil {
		return nil, err
	}
	return &review, nil
}

// UpdateReview changes rating and text. Owner and product are fixed.
func UpdateReview(db *gorm.DB, id uint, input models.ReviewInput) (*models.Review, error) {
	if err := validateRating(input.Rating); err != nil {
		return nil, err
	}
	review, err := GetReview(db, id)
	if err != nil {
		return nil, err
	}
	if (input.CustomerID != 0 && input.CustomerID != review.CustomerID) ||
		(input.ProductID != 0 && input.ProductID != review.ProductID) {
		return nil, invalid("review owner and product cannot change")
	}

	review.Rating = input.Rating
	review.Title = input.Title
	review.Comment = input.Comment
	review.Status = models.ReviewStatusPending
	if err := db.Save(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

func ModerateReview(db *gorm.DB, id uint, approve bool) (*models.Review, error) {
	review, err := GetReview(db, id)
	if err != nil {
		return nil, err
	}
	review.Status = models.ReviewStatusRejected
	if approve {
		review.Status = models.ReviewStatusApproved
	}
	if err := db.Model(review).Update("status", review.Status).Error; err != nil {
		return nil, err
	}
	return review, nil
}

func DeleteReview(db *gorm.DB, id uint) error {
	result := db.Unscoped().Delete(&models.Review{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound("review", id)
	}
	return nil
}

func ListReviewsByProduct(db *gorm.DB, productID uint, approvedOnly bool) ([]models.Review, error) {
	if err := findByID(db, &models.Product{}, "product", productID); err != nil {
		return nil, err
	}
	query := db.Where("product_id = ?", productID)
	if approvedOnly {
		query = query.Where("status = ?", models.ReviewStatusApproved)
	}
	var reviews []models.Review
	err := query.Order("created_at desc").Find(&reviews).Error
	return reviews, err
}

func ListReviewsByCustomer(db *gorm.DB, customerID uint) ([]models.Review, error) {
	if err := findByID(db, &models.Customer{}, "customer", customerID); err != nil {
		return nil, err
	}
	var reviews []models.Review
	err := db.Where("customer_id = ?", customerID).Order("created_at desc").Find(&reviews).Error
	return reviews, err
}

// ProductRating averages approved reviews. A product without any has an
// average of zero.
func ProductRating(db *gorm.DB, productID uint) (*RatingSummary, error) {
	if err := findByID(db, &models.Product{}, "product", productID); err != nil {
		return nil, err
	}

	var row struct {
		Average float64
		Count   int64
	}
	err := db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where("product_id = ? AND status = ?", productID, models.ReviewStatusApproved).
		Scan(&row).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return &RatingSummary{ProductID: productID, Average: row.Average, Count: row.Count}, nil
}
