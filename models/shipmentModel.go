package models

import (
	"time"

	"gorm.io/gorm"
)

type ShipmentStatus string

const (
	ShipmentStatusPending        ShipmentStatus = "PENDING"
	ShipmentStatusInTransit      ShipmentStatus = "IN_TRANSIT"
	ShipmentStatusOutForDelivery ShipmentStatus = "OUT_FOR_DELIVERY"
	ShipmentStatusDelivered      ShipmentStatus = "DELIVERED"
	ShipmentStatusReturned       ShipmentStatus = "RETURNED"
)

var ShipmentStatuses = []ShipmentStatus{
	ShipmentStatusPending,
	ShipmentStatusInTransit,
	ShipmentStatusOutForDelivery,
	ShipmentStatusDelivered,
	ShipmentStatusReturned,
}

// Shipment tracks one parcel of an order. CustomerID is copied from the
// order so customers can list their shipments without a join.
type Shipment struct {
	gorm.Model
	OrderID             uint            `json:"orderId" gorm:"not null;index"`
	CustomerID          uint            `json:"customerId" gorm:"not null;index"`
	AddressID           *uint           `json:"addressId"`
	Carrier             string          `json:"carrier" gorm:"size:50"`
	TrackingNumber      *string         `json:"trackingNumber" gorm:"size:50;uniqueIndex"`
	TrackingURL         string          `json:"trackingUrl"`
	Status              ShipmentStatus  `json:"status" gorm:"type:varchar(20);not null;index"`
	ShippedAt           *time.Time      `json:"shippedAt"`
	EstimatedDeliveryAt *time.Time      `json:"estimatedDeliveryAt"`
	DeliveredAt         *time.Time      `json:"deliveredAt"`
	Events              []ShipmentEvent `json:"events" gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
}

type ShipmentEvent struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ShipmentID uint      `json:"shipmentId" gorm:"not null;index"`
	EventType  string    `json:"eventType" gorm:"size:40;not null"`
	Location   string    `json:"location"`
	Notes      string    `json:"notes"`
	OccurredAt time.Time `json:"occurredAt" gorm:"not null"`
}

type ShipmentInput struct {
	OrderID             uint       `json:"orderId" binding:"required"`
	AddressID           *uint      `json:"addressId"`
	Carrier             string     `json:"carrier" binding:"max=50"`
	TrackingNumber      string     `json:"trackingNumber" binding:"max=50"`
	TrackingURL         string     `json:"trackingUrl" binding:"omitempty,url"`
	EstimatedDeliveryAt *time.Time `json:"estimatedDeliveryAt"`
}

type TrackingInput struct {
	Carrier        string `json:"carrier" binding:"required,max=50"`
	TrackingNumber string `json:"trackingNumber" binding:"required,max=50"`
	TrackingURL    string `json:"trackingUrl" binding:"omitempty,url"`
}

type ShipmentEventInput struct {
	EventType string `json:"eventType" binding:"required,max=40"`
	Location  string `json:"location" binding:"required"`
	Notes     string `json:"notes"`
}

type ShipmentStatusInput struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}
