package models

import "gorm.io/gorm"

const (
	ReviewStatusPending  = "PENDING"
	ReviewStatusApproved = "APPROVED"
	ReviewStatusRejected = "REJECTED"
)

// Review rows are hard-deleted so the (customer, product) unique index only
// ever sees live reviews.
type Review struct {
	gorm.Model
	CustomerID uint   `json:"customerId" gorm:"not null;uniqueIndex:idx_review_customer_product"`
	ProductID  uint   `json:"productId" gorm:"not null;uniqueIndex:idx_review_customer_product;index"`
	Rating     int    `json:"rating" gorm:"not null"`
	Title      string `json:"title"`
	Comment    string `json:"comment"`
	Status     string `json:"status" gorm:"size:20"`
}

type ReviewInput struct {
	CustomerID uint   `json:"customerId"`
	ProductID  uint   `json:"productId"`
	Rating     int    `json:"rating"`
	Title      string `json:"title"`
	Comment    string `json:"comment"`
}
