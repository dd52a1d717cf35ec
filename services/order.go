package services

import (
	"fmt"
	"time"

	"github.com/Kariqs/storefront-api/models"
	"gorm.io/gorm"
)

type OrderFilter struct {
	Page   int
	Limit  int
	Sort   string
	Status models.OrderStatus
}

type OrderPage struct {
	Orders []models.Order `json:"orders"`
	Total  int64          `json:"total"`
	Page   int            `json:"page"`
	Limit  int            `json:"limit"`
}

func GetOrder(db *gorm.DB, orderID uint) (*models.Order, error) {
	var order models.Order
	if err := findByID(db.Preload("Items"), &order, "order", orderID); err != nil {
		return nil, err
	}
	return &order, nil
}

func ListOrders(db *gorm.DB, filter OrderFilter) (*OrderPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 15
	}
	if filter.Sort != "asc" {
		filter.Sort = "desc"
	}

	scoped := func() *gorm.DB {
		query := db.Model(&models.Order{})
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
		return query
	}

	var count int64
	if err := scoped().Count(&count).Error; err != nil {
		return nil, err
	}

	var orders []models.Order
	if err := scoped().Preload("Items").
		Order("created_at " + filter.Sort).
		Limit(filter.Limit).
		Offset((filter.Page - 1) * filter.Limit).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return &OrderPage{Orders: orders, Total: count, Page: filter.Page, Limit: filter.Limit}, nil
}

func ListOrdersByCustomer(db *gorm.DB, customerID uint) ([]models.Order, error) {
	if err := findByID(db, &models.Customer{}, "customer", customerID); err != nil {
		return nil, err
	}
	var orders []models.Order
	err := db.Preload("Items").Where("customer_id = ?", customerID).Order("created_at desc").Find(&orders).Error
	return orders, err
}

// ListOrdersByDateRange returns orders placed on or after start and before
// the day following end. Order dates are stored in UTC.
func ListOrdersByDateRange(db *gorm.DB, start, end time.Time) ([]models.Order, error) {
	if end.Before(start) {
		return nil, invalid("end date %s is before start date %s", end.Format(time.DateOnly), start.Format(time.DateOnly))
	}
	start, end = start.UTC(), end.UTC()
	var orders []models.Order
	err := db.Preload("Items").
		Where("order_date >= ? AND order_date < ?", start, end.AddDate(0, 0, 1)).
		Order("order_date").
		Find(&orders).Error
	return orders, err
}

// UpdateOrderStatus moves an order to status. The update is conditional on
// the status read, so two racing updates cannot both apply.
func UpdateOrderStatus(db *gorm.DB, orderID uint, status string) (*models.Order, error) {
	next, err := ParseOrderStatus(status)
	if err != nil {
		return nil, err
	}
	return transitionOrder(db, orderID, next)
}

// CancelOrder cancels a PENDING or PAID order. A PENDING order being charged
// cannot be cancelled until the charge settles.
func CancelOrder(db *gorm.DB, orderID uint) (*models.Order, error) {
	return transitionOrder(db, orderID, models.OrderStatusCancelled)
}

func transitionOrder(db *gorm.DB, orderID uint, next models.OrderStatus) (*models.Order, error) {
	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := findByID(tx, &order, "order", orderID); err != nil {
			return err
		}
		if err := checkTransition(order.Status, next); err != nil {
			return err
		}

		query := tx.Model(&models.Order{}).Where("id = ? AND status = ?", orderID, order.Status)
		if order.Status == models.OrderStatusPending {
			query = noLivePaymentAttempt(query, time.Now().UTC())
		}
		result := query.Update("status", next)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return conflictingUpdate(tx, &order)
		}
		return tx.Preload("Items").First(&order, orderID).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// conflictingUpdate explains why a conditional order update matched no row.
func conflictingUpdate(db *gorm.DB, read *models.Order) error {
	var current models.Order
	if err := findByID(db, &current, "order", read.ID); err != nil {
		return err
	}
	if current.Status == read.Status && current.Status == models.OrderStatusPending {
		return fmt.Errorf("order %d: %w", read.ID, ErrPaymentInProgress)
	}
	return fmt.Errorf("order %d changed to %s: %w", read.ID, current.Status, ErrInvalidTransition)
}

func DeleteOrder(db *gorm.DB, orderID uint) error {
	result := db.Delete(&models.Order{}, orderID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound("order", orderID)
	}
	return nil
}

// CountOpenOrders counts orders that are neither delivered nor cancelled.
func CountOpenOrders(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Order{}).
		Where("status NOT IN ?", []models.OrderStatus{models.OrderStatusDelivered, models.OrderStatusCancelled}).
		Count(&count).Error
	return count, err
}
