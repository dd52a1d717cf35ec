package services

import (
	"testing"
	"time"

	"github.com/Kariqs/storefront-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func promotionAt(kind, value string, start time.Time, days int) models.Promotion {
	return models.Promotion{
		Name:          "Spring sale",
		DiscountType:  kind,
		DiscountValue: decimal.RequireFromString(value),
		StartDate:     start,
		EndDate:       start.AddDate(0, 0, days),
		Active:        true,
	}
}

func TestApplyPromotion(t *testing.T) {
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		promo models.Promotion
		price string
		want  string
	}{
		{"percentage", promotionAt(models.DiscountPercentage, "15", start, 7), "20.00", "17.00"},
		{"percentage rounds", promotionAt(models.DiscountPercentage, "33", start, 7), "9.99", "6.69"},
		{"full percentage", promotionAt(models.DiscountPercentage, "100", start, 7), "9.99", "0"},
		{"fixed", promotionAt(models.DiscountFixed, "2.50", start, 7), "10.00", "7.50"},
		{"fixed floors at zero", promotionAt(models.DiscountFixed, "25", start, 7), "10.00", "0"},
		{"unknown type", promotionAt("BOGO", "1", start, 7), "10.00", "10.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, tt.want, ApplyPromotion(decimal.RequireFromString(tt.price), tt.promo))
		})
	}
}

func TestCreatePromotion_Validation(t *testing.T) {
	db := newTestDB(t)
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	missing := uint(77)

	bad := []models.Promotion{
		promotionAt(models.DiscountPercentage, "0", start, 7),
		promotionAt(models.DiscountPercentage, "101", start, 7),
		promotionAt(models.DiscountFixed, "-1", start, 7),
		promotionAt("BOGO", "1", start, 7),
		promotionAt(models.DiscountFixed, "1", start, 0),
	}
	for i := range bad {
		assert.ErrorIs(t, CreatePromotion(db, &bad[i]), ErrInvalidInput, i)
	}

	orphan := promotionAt(models.DiscountFixed, "1", start, 3)
	orphan.ProductID = &missing
	assert.ErrorIs(t, CreatePromotion(db, &orphan), ErrNotFound)

	ok := promotionAt("percentage", "10", start, 3)
	require.NoError(t, CreatePromotion(db, &ok))
	assert.Equal(t, models.DiscountPercentage, ok.DiscountType)
}

func TestListActivePromotions(t *testing.T) {
	db := newTestDB(t)
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	current := promotionAt(models.DiscountFixed, "1", start, 10)
	expired := promotionAt(models.DiscountFixed, "1", start.AddDate(0, -1, 0), 5)
	disabled := promotionAt(models.DiscountFixed, "1", start, 10)
	disabled.Active = false
	for _, promo := range []*models.Promotion{&current, &expired, &disabled} {
		require.NoError(t, CreatePromotion(db, promo))
	}
	require.NoError(t, db.Model(&disabled).Update("active", false).Error)

	active, err := ListActivePromotions(db, start.AddDate(0, 0, 2))
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, current.ID, active[0].ID)

	updated, err := UpdatePromotion(db, current.ID, promotionAt(models.DiscountPercentage, "20", start, 1))
	require.NoError(t, err)
	assert.Equal(t, current.ID, updated.ID)

	active, err = ListActivePromotions(db, start.AddDate(0, 0, 2))
	require.NoError(t, err)
	assert.Empty(t, active)

	require.NoError(t, DeletePromotion(db, current.ID))
	assert.ErrorIs(t, DeletePromotion(db, current.ID), ErrNotFound)
}
