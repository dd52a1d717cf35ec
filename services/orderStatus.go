package services

import (
	"fmt"
	"strings"

	"github.com/Kariqs/storefront-api/models"
)

var orderTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderStatusPending: {models.OrderStatusPaid, models.OrderStatusCancelled},
	models.OrderStatusPaid:    {models.OrderStatusShipped, models.OrderStatusCancelled},
	models.OrderStatusShipped: {models.OrderStatusDelivered},
}

// ParseOrderStatus matches s against the known statuses, ignoring case and
// surrounding whitespace.
func ParseOrderStatus(s string) (models.OrderStatus, error) {
	candidate := models.OrderStatus(strings.ToUpper(strings.TrimSpace(s)))
	for _, status := range models.OrderStatuses {
		if status == candidate {
			return status, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownStatus)
}

// IsTerminal reports whether no transition leaves status.
func IsTerminal(status models.OrderStatus) bool {
	return len(orderTransitions[status]) == 0
}

func CanTransition(from, to models.OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func checkTransition(from, to models.OrderStatus) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("%s -> %s: %w", from, to, ErrInvalidTransition)
	}
	return nil
}
