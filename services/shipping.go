package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Kariqs/storefront-api/models"
	"gorm.io/gorm"
)

var ErrOrderNotShippable = fmt.Errorf("order cannot be shipped: %w", ErrConflict)

var shipmentTransitions = map[models.ShipmentStatus][]models.ShipmentStatus{
	models.ShipmentStatusPending:        {models.ShipmentStatusInTransit},
	models.ShipmentStatusInTransit:      {models.ShipmentStatusOutForDelivery, models.ShipmentStatusDelivered, models.ShipmentStatusReturned},
	models.ShipmentStatusOutForDelivery: {models.ShipmentStatusDelivered, models.ShipmentStatusReturned},
}

// ParseShipmentStatus matches s against the known statuses, ignoring case and
// surrounding whitespace.
func ParseShipmentStatus(s string) (models.ShipmentStatus, error) {
	candidate := models.ShipmentStatus(strings.ToUpper(strings.TrimSpace(s)))
	for _, status := range models.ShipmentStatuses {
		if status == candidate {
			return status, nil
		}
	}
	return "", fmt.Errorf("shipment status %q: %w", s, ErrUnknownStatus)
}

func canShip(from, to models.ShipmentStatus) bool {
	for _, next := range shipmentTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func preloadShipment(db *gorm.DB) *gorm.DB {
	return db.Preload("Events", func(db *gorm.DB) *gorm.DB {
		return db.Order("occurred_at, id")
	})
}

func trackingNumberTaken(db *gorm.DB, number string, exceptID uint) error {
	taken, err := exists(db.Unscoped(), &models.Shipment{}, "tracking_number = ? AND id <> ?", number, exceptID)
	if err != nil {
		return err
	}
	if taken {
		return duplicate("shipment", "tracking number", number)
	}
	return nil
}

// CreateShipment opens a PENDING shipment for a PAID or SHIPPED order. An
// address, when given, must belong to the order's customer.
func CreateShipment(db *gorm.DB, input models.ShipmentInput) (*models.Shipment, error) {
	var shipment models.Shipment
	err := db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := findByID(tx, &order, "order", input.OrderID); err != nil {
			return err
		}
		if order.Status != models.OrderStatusPaid && order.Status != models.OrderStatusShipped {
			return fmt.Errorf("order %d is %s: %w", order.ID, order.Status, ErrOrderNotShippable)
		}
		if input.AddressID != nil {
			address, err := GetAddress(tx, *input.AddressID)
			if err != nil {
				return err
			}
			if address.CustomerID != order.CustomerID {
				return invalid("address %d does not belong to customer %d", address.ID, order.CustomerID)
			}
		}

		shipment = models.Shipment{
			OrderID:     order.ID,
			CustomerID:  order.CustomerID,
			AddressID:   input.AddressID,
			Carrier:     strings.TrimSpace(input.Carrier),
			TrackingURL: input.TrackingURL,
			Status:      models.ShipmentStatusPending,
			Events:      []models.ShipmentEvent{},
		}
		if input.EstimatedDeliveryAt != nil {
			eta := input.EstimatedDeliveryAt.UTC()
			shipment.EstimatedDeliveryAt = &eta
		}
		if number := strings.TrimSpace(input.TrackingNumber); number != "" {
			if err := trackingNumberTaken(tx, number, 0); err != nil {
				return err
			}
			shipment.TrackingNumber = &number
		}
		return tx.Create(&shipment).Error
	})
	if err != nil {
		return nil, err
	}
	return &shipment, nil
}

func GetShipment(db *gorm.DB, id uint) (*models.Shipment, error) {
	var shipment models.Shipment
	if err := findByID(preloadShipment(db), &shipment, "shipment", id); err != nil {
		return nil, err
	}
	return &shipment, nil
}

// ListShipments returns every shipment, or only those in status when it is
// not empty.
func ListShipments(db *gorm.DB, status string) ([]models.Shipment, error) {
	query := preloadShipment(db)
	if status != "" {
		parsed, err := ParseShipmentStatus(status)
		if err != nil {
			return nil, err
		}
		query = query.Where("status = ?", parsed)
	}
	var shipments []models.Shipment
	err := query.Order("id").Find(&shipments).Error
	return shipments, err
}

func ListShipmentsByOrder(db *gorm.DB, orderID uint) ([]models.Shipment, error) {
	if err := findByID(db, &models.Order{}, "order", orderID); err != nil {
		return nil, err
	}
	var shipments []models.Shipment
	err := preloadShipment(db).Where("order_id = ?", orderID).Order("id").Find(&shipments).Error
	return shipments, err
}

func ListShipmentsByCustomer(db *gorm.DB, customerID uint) ([]models.Shipment, error) {
	if err := findByID(db, &models.Customer{}, "customer", customerID); err != nil {
		return nil, err
	}
	var shipments []models.Shipment
	err := preloadShipment(db).Where("customer_id = ?", customerID).Order("id").Find(&shipments).Error
	return shipments, err
}

func TrackShipment(db *gorm.DB, trackingNumber string) (*models.Shipment, error) {
	var shipment models.Shipment
	err := preloadShipment(db).Where("tracking_number = ?", strings.TrimSpace(trackingNumber)).First(&shipment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("shipment with tracking number", trackingNumber)
	}
	if err != nil {
		return nil, err
	}
	return &shipment, nil
}

// UpdateShipmentStatus moves a shipment along its lifecycle and logs the
// change as an event. Going in transit ships a PAID order; delivery
// delivers it. The shipment update is conditional on the status read.
func UpdateShipmentStatus(db *gorm.DB, id uint, status, notes string) (*models.Shipment, error) {
	next, err := ParseShipmentStatus(status)
	if err != nil {
		return nil, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var shipment models.Shipment
		if err := findByID(tx, &shipment, "shipment", id); err != nil {
			return err
		}
		if !canShip(shipment.Status, next) {
			return fmt.Errorf("shipment %s -> %s: %w", shipment.Status, next, ErrInvalidTransition)
		}

		now := time.Now().UTC()
		updates := map[string]any{"status": next}
		switch next {
		case models.ShipmentStatusInTransit:
			updates["shipped_at"] = now
		case models.ShipmentStatusDelivered:
			updates["delivered_at"] = now
		}
		result := tx.Model(&models.Shipment{}).
			Where("id = ? AND status = ?", id, shipment.Status).
			Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("shipment %d changed concurrently: %w", id, ErrInvalidTransition)
		}

		event := models.ShipmentEvent{ShipmentID: id, EventType: string(next), Notes: notes, OccurredAt: now}
		if err := tx.Create(&event).Error; err != nil {
			return err
		}

		switch next {
		case models.ShipmentStatusInTransit:
			return advanceOrder(tx, shipment.OrderID, models.OrderStatusShipped)
		case models.ShipmentStatusDelivered:
			return advanceOrder(tx, shipment.OrderID, models.OrderStatusDelivered)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return GetShipment(db, id)
}

// MarkShipmentDelivered is UpdateShipmentStatus to DELIVERED.
func MarkShipmentDelivered(db *gorm.DB, id uint, notes string) (*models.Shipment, error) {
	return UpdateShipmentStatus(db, id, string(models.ShipmentStatusDelivered), notes)
}

// advanceOrder moves the order to status unless it is already there or
// further along. A cancelled order makes this fail.
func advanceOrder(tx *gorm.DB, orderID uint, status models.OrderStatus) error {
	var order models.Order
	if err := findByID(tx, &order, "order", orderID); err != nil {
		return err
	}
	if order.Status == status || order.Status == models.OrderStatusDelivered {
		return nil
	}
	_, err := transitionOrder(tx, orderID, status)
	return err
}

func UpdateTrackingInfo(db *gorm.DB, id uint, input models.TrackingInput) (*models.Shipment, error) {
	number := strings.TrimSpace(input.TrackingNumber)
	if number == "" {
		return nil, invalid("tracking number is required")
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := findByID(tx, &models.Shipment{}, "shipment", id); err != nil {
			return err
		}
		if err := trackingNumberTaken(tx, number, id); err != nil {
			return err
		}
		return tx.Model(&models.Shipment{}).Where("id = ?", id).Updates(map[string]any{
			"carrier":         strings.TrimSpace(input.Carrier),
			"tracking_number": number,
			"tracking_url":    input.TrackingURL,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return GetShipment(db, id)
}

// AddShipmentEvent records a checkpoint without changing the status.
func AddShipmentEvent(db *gorm.DB, id uint, input models.ShipmentEventInput) (*models.Shipment, error) {
	eventType := strings.ToUpper(strings.TrimSpace(input.EventType))
	if eventType == "" {
		return nil, invalid("event type is required")
	}
	if err := findByID(db, &models.Shipment{}, "shipment", id); err != nil {
		return nil, err
	}
	event := models.ShipmentEvent{
		ShipmentID: id,
		EventType:  eventType,
		Location:   input.Location,
		Notes:      input.Notes,
		OccurredAt: time.Now().UTC(),
	}
	if err := db.Create(&event).Error; err != nil {
		return nil, err
	}
	return GetShipment(db, id)
}
