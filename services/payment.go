package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Kariqs/storefront-api/gateway"
	"github.com/Kariqs/storefront-api/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPaymentDeclined   = fmt.Errorf("payment declined: %w", ErrConflict)
	ErrPaymentInProgress = fmt.Errorf("payment already in progress: %w", ErrConflict)
)

// CreatePaymentMethod stores method. A customer's first method becomes the
// default.
func CreatePaymentMethod(db *gorm.DB, method *models.PaymentMethod) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := findByID(tx, &models.Customer{}, "customer", method.CustomerID); err != nil {
			return err
		}
		hasDefault, err := exists(tx, &models.PaymentMethod{}, "customer_id = ? AND is_default = ?", method.CustomerID, true)
		if err != nil {
			return err
		}
		if !hasDefault {
			method.IsDefault = true
		} else if method.IsDefault {
			if err := clearDefaultPaymentMethod(tx, method.CustomerID); err != nil {
				return err
			}
		}
		return tx.Create(method).Error
	})
}

func GetPaymentMethod(db *gorm.DB, id uint) (*models.PaymentMethod, error) {
	var method models.PaymentMethod
	if err := findByID(db, &method, "payment method", id); err != nil {
		return nil, err
	}
	return &method, nil
}

func ListPaymentMethods(db *gorm.DB, customerID uint) ([]models.PaymentMethod, error) {
	if err := findByID(db, &models.Customer{}, "customer", customerID); err != nil {
		return nil, err
	}
	var methods []models.PaymentMethod
	err := db.Where("customer_id = ?", customerID).Order("is_default desc, id").Find(&methods).Error
	return methods, err
}

// SetDefaultPaymentMethod makes id the customer's only default method.
func SetDefaultPaymentMethod(db *gorm.DB, id uint) (*models.PaymentMethod, error) {
	var method models.PaymentMethod
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := findByID(tx, &method, "payment method", id); err != nil {
			return err
		}
		if err := clearDefaultPaymentMethod(tx, method.CustomerID); err != nil {
			return err
		}
		method.IsDefault = true
		return tx.Model(&method).Update("is_default", true).Error
	})
	if err != nil {
		return nil, err
	}
	return &method, nil
}

func clearDefaultPaymentMethod(tx *gorm.DB, customerID uint) error {
	return tx.Model(&models.PaymentMethod{}).
		Where("customer_id = ? AND is_default = ?", customerID, true).
		Update("is_default", false).Error
}

func DeletePaymentMethod(db *gorm.DB, id uint) error {
	result := db.Delete(&models.PaymentMethod{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound("payment method", id)
	}
	return nil
}

// paymentClaimTTL bounds how long an unfinished payment attempt blocks the
// order. A claim older than this is treated as abandoned.
const paymentClaimTTL = 15 * time.Minute

// noLivePaymentAttempt restricts a query to orders nobody is charging.
func noLivePaymentAttempt(db *gorm.DB, now time.Time) *gorm.DB {
	return db.Where("(payment_attempt IS NULL OR payment_attempt = '' OR payment_attempt_at < ?)", now.Add(-paymentClaimTTL))
}

// claimPayment marks a PENDING order as being charged under attempt. Only one
// live claim can exist per order.
func claimPayment(db *gorm.DB, orderID uint, attempt string) error {
	now := time.Now().UTC()
	result := noLivePaymentAttempt(db.Model(&models.Order{}), now).
		Where("id = ? AND status = ?", orderID, models.OrderStatusPending).
		Updates(map[string]any{"payment_attempt": attempt, "payment_attempt_at": now})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 1 {
		return nil
	}

	var order models.Order
	if err := findByID(db, &order, "order", orderID); err != nil {
		return err
	}
	if err := checkTransition(order.Status, models.OrderStatusPaid); err != nil {
		return err
	}
	return fmt.Errorf("order %d: %w", orderID, ErrPaymentInProgress)
}

// releasePayment drops a claim after a failed charge so the order can be
// paid again.
func releasePayment(db *gorm.DB, orderID uint, attempt string) error {
	return db.Model(&models.Order{}).
		Where("id = ? AND payment_attempt = ?", orderID, attempt).
		Updates(map[string]any{"payment_attempt": "", "payment_attempt_at": nil}).Error
}

// ProcessPayment charges a PENDING order to one of its customer's payment
// methods and moves it to PAID. The order is claimed before the gateway is
// called, so concurrent calls charge at most once.
func ProcessPayment(ctx context.Context, db *gorm.DB, gw gateway.Gateway, currency string, orderID, paymentMethodID uint) (*models.Order, error) {
	var order models.Order
	if err := findByID(db, &order, "order", orderID); err != nil {
		return nil, err
	}
	if err := checkTransition(order.Status, models.OrderStatusPaid); err != nil {
		return nil, err
	}

	method, err := GetPaymentMethod(db, paymentMethodID)
	if err != nil {
		return nil, err
	}
	if method.CustomerID != order.CustomerID {
		return nil, invalid("payment method %d does not belong to customer %d", method.ID, order.CustomerID)
	}

	reference := fmt.Sprintf("ORDER-%d", order.ID)
	attempt := reference + "-" + uuid.NewString()
	if err := claimPayment(db, order.ID, attempt); err != nil {
		return nil, err
	}

	charge, err := gw.Charge(ctx, gateway.ChargeRequest{
		Reference:      reference,
		Amount:         order.TotalAmount,
		Currency:       currency,
		MethodType:     method.Type,
		MethodToken:    method.GatewayToken,
		CustomerID:     order.CustomerID,
		Description:    fmt.Sprintf("Payment for order #%d", order.ID),
		IdempotencyKey: attempt,
	})
	if err != nil {
		// The request context may already be done; the claim must still go.
		if releaseErr := releasePayment(db.WithContext(context.WithoutCancel(ctx)), order.ID, attempt); releaseErr != nil {
			err = errors.Join(err, fmt.Errorf("release payment claim: %w", releaseErr))
		}
		if errors.Is(err, gateway.ErrDeclined) {
			return nil, fmt.Errorf("%w: %v", ErrPaymentDeclined, err)
		}
		return nil, err
	}

	var paid models.Order
	err = db.Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		payment := models.Payment{
			OrderID:         order.ID,
			PaymentMethodID: method.ID,
			Amount:          order.TotalAmount,
			Currency:        currency,
			TransactionID:   charge.TransactionID,
			Status:          charge.Status,
			ProcessedAt:     now,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		result := tx.Model(&models.Order{}).
			Where("id = ? AND status = ? AND payment_attempt = ?", order.ID, models.OrderStatusPending, attempt).
			Updates(map[string]any{
				"status":             models.OrderStatusPaid,
				"payment_method_id":  method.ID,
				"paid_at":            now,
				"payment_attempt":    "",
				"payment_attempt_at": nil,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("order %d lost its payment claim: %w", order.ID, ErrInvalidTransition)
		}
		return tx.Preload("Items").First(&paid, order.ID).Error
	})
	if err != nil {
		return nil, fmt.Errorf("order %d charged (transaction %s) but not recorded: %w", order.ID, charge.TransactionID, err)
	}
	return &paid, nil
}

func ListPayments(db *gorm.DB, orderID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := db.Where("order_id = ?", orderID).Order("id").Find(&payments).Error
	return payments, err
}
