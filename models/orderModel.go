package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
)

// OrderStatuses lists every recognized status in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusPaid,
	OrderStatusCancelled,
	OrderStatusShipped,
	OrderStatusDelivered,
}

type Order struct {
	gorm.Model
	CustomerID      uint            `json:"customerId" gorm:"not null;index"`
	OrderDate       time.Time       `json:"orderDate" gorm:"not null;index"`
	Status          OrderStatus     `json:"status" gorm:"type:varchar(20);not null;index"`
	TotalAmount     decimal.Decimal `json:"totalAmount" gorm:"type:decimal(12,2);not null"`
	PaymentMethodID *uint           `json:"paymentMethodId"`
	PaidAt          *time.Time      `json:"paidAt"`
	Items           []OrderItem     `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	// PaymentAttempt is the idempotency key of the charge in flight, if any.
	PaymentAttempt   string     `json:"-" gorm:"size:80"`
	PaymentAttemptAt *time.Time `json:"-"`
}

// OrderItem snapshots the product name and unit price at checkout time.
type OrderItem struct {
	gorm.Model
	OrderID     uint            `json:"orderId" gorm:"not null;index"`
	ProductID   uint            `json:"productId" gorm:"not null"`
	ProductName string          `json:"productName"`
	UnitPrice   decimal.Decimal `json:"unitPrice" gorm:"type:decimal(12,2);not null"`
	Quantity    int             `json:"quantity" gorm:"not null"`
	LineTotal   decimal.Decimal `json:"lineTotal" gorm:"type:decimal(12,2);not null"`
}
