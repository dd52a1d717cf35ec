package services

import (
	"testing"

	"github.com/Kariqs/storefront-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateShipment(t *testing.T) {
	db := newTestDB(t)
	customer := seedCustomer(t, db, "buyer@example.com")
	stranger := seedCustomer(t, db, "stranger@example.com")
	paid := seedOrder(t, db, customer.ID, models.OrderStatusPaid, "50.00")
	pending := seedOrder(t, db, customer.ID, models.OrderStatusPending, "50.00")
	home, err := CreateAddress(db, addressInput(customer.ID, "1 Moi Avenue"))
	require.NoError(t, err)
	elsewhere, err := CreateAddress(db, addressInput(stranger.ID, "9 Elsewhere"))
	require.NoError(t, err)

	shipment, err := CreateShipment(db, models.ShipmentInput{OrderID: paid.ID, AddressID: &home.ID, Carrier: "DHL", TrackingNumber: " TRK-1 "})
	require.NoError(t, err)
	assert.Equal(t, models.ShipmentStatusPending, shipment.Status)
	assert.Equal(t, customer.ID, shipment.CustomerID)
	require.NotNil(t, shipment.TrackingNumber)
	assert.Equal(t, "TRK-1", *shipment.TrackingNumber)

	_, err = CreateShipment(db, models.ShipmentInput{OrderID: paid.ID, TrackingNumber: "TRK-1"})
	assert.ErrorIs(t, err, ErrDuplicate)
	_, err = CreateShipment(db, models.ShipmentInput{OrderID: pending.ID})
	assert.ErrorIs(t, err, ErrOrderNotShippable)
	_, err = CreateShipment(db, models.ShipmentInput{OrderID: paid.ID, AddressID: &elsewhere.ID})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = CreateShipment(db, models.ShipmentInput{OrderID: 999})
	assert.ErrorIs(t, err, ErrNotFound)

	byOrder, err := ListShipmentsByOrder(db, paid.ID)
	require.NoError(t, err)
	assert.Len(t, byOrder, 1)
	byCustomer, err := ListShipmentsByCustomer(db, customer.ID)
	require.NoError(t, err)
	assert.Len(t, byCustomer, 1)
}

func TestUpdateShipmentStatus_DrivesOrder(t *testing.T) {
	db := newTestDB(t)
	customer := seedCustomer(t, db, "buyer@example.com")
	order := seedOrder(t, db, customer.ID, models.OrderStatusPaid, "50.00")
	shipment, err := CreateShipment(db, models.ShipmentInput{OrderID: order.ID, Carrier: "DHL"})
	require.NoError(t, err)

	_, err = UpdateShipmentStatus(db, shipment.ID, "delivered", "")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	moving, err := UpdateShipmentStatus(db, shipment.ID, "in_transit", "Left the warehouse")
	require.NoError(t, err)
	assert.Equal(t, models.ShipmentStatusInTransit, moving.Status)
	assert.NotNil(t, moving.ShippedAt)
	require.Len(t, moving.Events, 1)
	assert.Equal(t, "IN_TRANSIT", moving.Events[0].EventType)
	assert.Equal(t, "Left the warehouse", moving.Events[0].Notes)

	got, err := GetOrder(db, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, got.Status)

	done, err := MarkShipmentDelivered(db, shipment.ID, "Signed by J")
	require.NoError(t, err)
	assert.Equal(t, models.ShipmentStatusDelivered, done.Status)
	assert.NotNil(t, done.DeliveredAt)
	assert.Len(t, done.Events, 2)

	got, err = GetOrder(db, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, got.Status)

	_, err = UpdateShipmentStatus(db, shipment.ID, "RETURNED", "")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = UpdateShipmentStatus(db, shipment.ID, "LOST", "")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestUpdateShipmentStatus_SecondParcelLeavesShippedOrder(t *testing.T) {
	db := newTestDB(t)
	customer := seedCustomer(t, db, "buyer@example.com")
	order := seedOrder(t, db, customer.ID, models.OrderStatusPaid, "50.00")
	first, err := CreateShipment(db, models.ShipmentInput{OrderID: order.ID})
	require.NoError(t, err)
	second, err := CreateShipment(db, models.ShipmentInput{OrderID: order.ID})
	require.NoError(t, err)

	_, err = UpdateShipmentStatus(db, first.ID, "IN_TRANSIT", "")
	require.NoError(t, err)
	_, err = UpdateShipmentStatus(db, second.ID, "IN_TRANSIT", "")
	require.NoError(t, err)

	got, err := GetOrder(db, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, got.Status)
}

func TestUpdateShipmentStatus_CancelledOrderRollsBack(t *testing.T) {
	db := newTestDB(t)
	customer := seedCustomer(t, db, "buyer@example.com")
	order := seedOrder(t, db, customer.ID, models.OrderStatusPaid, "50.00")
	shipment, err := CreateShipment(db, models.ShipmentInput{OrderID: order.ID})
	require.NoError(t, err)
	_, err = CancelOrder(db, order.ID)
	require.NoError(t, err)

	_, err = UpdateShipmentStatus(db, shipment.ID, "IN_TRANSIT", "")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	got, err := GetShipment(db, shipment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ShipmentStatusPending, got.Status)
	assert.Empty(t, got.Events)
}

func TestTrackingInfoAndEvents(t *testing.T) {
	db := newTestDB(t)
	customer := seedCustomer(t, db, "buyer@example.com")
	order := seedOrder(t, db, customer.ID, models.OrderStatusPaid, "50.00")
	first, err := CreateShipment(db, models.ShipmentInput{OrderID: order.ID, TrackingNumber: "TRK-1"})
	require.NoError(t, err)
	second, err := CreateShipment(db, models.ShipmentInput{OrderID: order.ID})
	require.NoError(t, err)

	_, err = UpdateTrackingInfo(db, second.ID, models.TrackingInput{Carrier: "UPS", TrackingNumber: "TRK-1"})
	assert.ErrorIs(t, err, ErrDuplicate)

	updated, err := UpdateTrackingInfo(db, second.ID, models.TrackingInput{Carrier: "UPS", TrackingNumber: "TRK-2"})
	require.NoError(t, err)
	assert.Equal(t, "UPS", updated.Carrier)

	_, err = UpdateTrackingInfo(db, first.ID, models.TrackingInput{Carrier: "DHL", TrackingNumber: "TRK-1"})
	require.NoError(t, err)

	withEvent, err := AddShipmentEvent(db, second.ID, models.ShipmentEventInput{EventType: "arrived_at_hub", Location: "Mombasa"})
	require.NoError(t, err)
	require.Len(t, withEvent.Events, 1)
	assert.Equal(t, "ARRIVED_AT_HUB", withEvent.Events[0].EventType)
	assert.Equal(t, models.ShipmentStatusPending, withEvent.Status)

	tracked, err := TrackShipment(db, "TRK-2")
	require.NoError(t, err)
	assert.Equal(t, second.ID, tracked.ID)
	assert.Len(t, tracked.Events, 1)
	_, err = TrackShipment(db, "TRK-404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListShipments_FiltersByStatus(t *testing.T) {
	db := newTestDB(t)
	customer := seedCustomer(t, db, "buyer@example.com")
	order := seedOrder(t, db, customer.ID, models.OrderStatusPaid, "50.00")
	first, err := CreateShipment(db, models.ShipmentInput{OrderID: order.ID})
	require.NoError(t, err)
	_, err = CreateShipment(db, models.ShipmentInput{OrderID: order.ID})
	require.NoError(t, err)
	_, err = UpdateShipmentStatus(db, first.ID, "IN_TRANSIT", "")
	require.NoError(t, err)

	all, err := ListShipments(db, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
	moving, err := ListShipments(db, "in_transit")
	require.NoError(t, err)
	require.Len(t, moving, 1)
	assert.Equal(t, first.ID, moving[0].ID)

	_, err = ListShipments(db, "lost")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}
