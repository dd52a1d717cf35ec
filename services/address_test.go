package services

import (
	"testing"

	"github.com/Kariqs/storefront-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addressInput(customerID uint, street string) models.AddressInput {
	return models.AddressInput{CustomerID: customerID, Street: street, City: "Nairobi", Country: "Kenya"}
}

func TestCreateAddress_FirstBecomesDefault(t *testing.T) {
	db := newTestDB(t)
	customer := seedCustomer(t, db, "home@example.com")

	first, err := CreateAddress(db, addressInput(customer.ID, "1 Moi Avenue"))
	require.NoError(t, err)
	assert.True(t, first.IsDefault)
	assert.Equal(t, models.AddressTypeShipping, first.AddressType)

	second, err := CreateAddress(db, addressInput(customer.ID, "2 Kenyatta Avenue"))
	require.NoError(t, err)
	assert.False(t, second.IsDefault)

	yes := true
	input := addressInput(customer.ID, "3 Ngong Road")
	input.IsDefault = &yes
	input.AddressType = models.AddressTypeBilling
	third, err := CreateAddress(db, input)
	require.NoError(t, err)
	assert.True(t, third.IsDefault)

	current, err := GetDefaultAddress(db, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, third.ID, current.ID)
	assert.EqualValues(t, 1, countRows(t, db, &models.Address{}, "customer_id = ? AND is_default = ?", customer.ID, true))

	listed, err := ListAddresses(db, customer.ID)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, third.ID, listed[0].ID)

	_, err = CreateAddress(db, addressInput(999, "Nowhere"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetDefaultAddress_NoneYet(t *testing.T) {
	db := newTestDB(t)
	customer := seedCustomer(t, db, "home@example.com")

	_, err := GetDefaultAddress(db, customer.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateAddress(t *testing.T) {
	db := newTestDB(t)
	customer := seedCustomer(t, db, "home@example.com")
	other := seedCustomer(t, db, "other@example.com")
	first, err := CreateAddress(db, addressInput(customer.ID, "1 Moi Avenue"))
	require.NoError(t, err)
	second, err := CreateAddress(db, addressInput(customer.ID, "2 Kenyatta Avenue"))
	require.NoError(t, err)

	input := addressInput(customer.ID, "2 Kenyatta Avenue, Floor 3")
	input.PostalCode = "00100"
	updated, err := UpdateAddress(db, second.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "2 Kenyatta Avenue, Floor 3", updated.Street)
	assert.Equal(t, "00100", updated.PostalCode)
	assert.False(t, updated.IsDefault)

	yes, no := true, false
	input.IsDefault = &yes
	updated, err = UpdateAddress(db, second.ID, input)
	require.NoError(t, err)
	assert.True(t, updated.IsDefault)
	reloaded, err := GetAddress(db, first.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsDefault)

	input.IsDefault = &no
	_, err = UpdateAddress(db, second.ID, input)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = UpdateAddress(db, second.ID, addressInput(other.ID, "Stolen"))
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = UpdateAddress(db, 999, input)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetDefaultAddress(t *testing.T) {
	db := newTestDB(t)
	customer := seedCustomer(t, db, "home@example.com")
	first, err := CreateAddress(db, addressInput(customer.ID, "1 Moi Avenue"))
	require.NoError(t, err)
	second, err := CreateAddress(db, addressInput(customer.ID, "2 Kenyatta Avenue"))
	require.NoError(t, err)

	got, err := SetDefaultAddress(db, second.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDefault)

	current, err := GetDefaultAddress(db, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, current.ID)
	reloaded, err := GetAddress(db, first.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsDefault)
}

func TestDeleteAddress_PromotesNextDefault(t *testing.T) {
	db := newTestDB(t)
	customer := seedCustomer(t, db, "home@example.com")
	first, err := CreateAddress(db, addressInput(customer.ID, "1 Moi Avenue"))
	require.NoError(t, err)
	second, err := CreateAddress(db, addressInput(customer.ID, "2 Kenyatta Avenue"))
	require.NoError(t, err)
	third, err := CreateAddress(db, addressInput(customer.ID, "3 Ngong Road"))
	require.NoError(t, err)

	require.NoError(t, DeleteAddress(db, third.ID))
	current, err := GetDefaultAddress(db, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, current.ID)

	require.NoError(t, DeleteAddress(db, first.ID))
	current, err = GetDefaultAddress(db, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, current.ID)

	require.NoError(t, DeleteAddress(db, second.ID))
	_, err = GetDefaultAddress(db, customer.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, DeleteAddress(db, second.ID), ErrNotFound)
}
