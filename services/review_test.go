package services

import (
	"testing"

	"github.com/Kariqs/storefront-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateReview(t *testing.T) {
	db := newTestDB(t)
	customer := seedCustomer(t, db, "reviewer@example.com")
	product := seedProduct(t, db, "Lamp", "20.00")

	review, err := CreateReview(db, models.ReviewInput{CustomerID: customer.ID, ProductID: product.ID, Rating: 4, Title: "Bright"})
	require.NoError(t, err)
	assert.Equal(t, models.ReviewStatusPending, review.Status)

	_, err = CreateReview(db, models.ReviewInput{CustomerID: customer.ID, ProductID: product.ID, Rating: 5})
	assert.ErrorIs(t, err, ErrDuplicate)

	for _, rating := range []int{0, 6, -1} {
		_, err = CreateReview(db, models.ReviewInput{CustomerID: customer.ID, ProductID: product.ID, Rating: rating})
		assert.ErrorIs(t, err, ErrInvalidInput, rating)
	}

	_, err = CreateReview(db, models.ReviewInput{CustomerID: customer.ID, ProductID: 999, Rating: 3})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateReview_ResetsModeration(t *testing.T) {
	db := newTestDB(t)
	customer := seedCustomer(t, db, "reviewer@example.com")
	product := seedProduct(t, db, "Lamp", "20.00")
	review, err := CreateReview(db, models.ReviewInput{CustomerID: customer.ID, ProductID: product.ID, Rating: 2})
	require.NoError(t, err)
	_, err = ModerateReview(db, review.ID, true)
	require.NoError(t, err)

	updated, err := UpdateReview(db, review.ID, models.ReviewInput{Rating: 5, Comment: "Grew on me"})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)
	assert.Equal(t, models.ReviewStatusPending, updated.Status)

	_, err = UpdateReview(db, review.ID, models.ReviewInput{ProductID: product.ID + 1, Rating: 3})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestProductRating_CountsApprovedOnly(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Lamp", "20.00")

	summary, err := ProductRating(db, product.ID)
	require.NoError(t, err)
	assert.Zero(t, summary.Average)
	assert.Zero(t, summary.Count)

	ratings := map[string]int{"a@example.com": 5, "b@example.com": 3, "c@example.com": 1}
	for email, rating := range ratings {
		customer := seedCustomer(t, db, email)
		review, err := CreateReview(db, models.ReviewInput{CustomerID: customer.ID, ProductID: product.ID, Rating: rating})
		require.NoError(t, err)
		_, err = ModerateReview(db, review.ID, rating != 1)
		require.NoError(t, err)
	}

	summary, err = ProductRating(db, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.Count)
	assert.InDelta(t, 4.0, summary.Average, 0.001)

	approved, err := ListReviewsByProduct(db, product.ID, true)
	require.NoError(t, err)
	assert.Len(t, approved, 2)

	all, err := ListReviewsByProduct(db, product.ID, false)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = ProductRating(db, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteReview(t *testing.T) {
	db := newTestDB(t)
	customer := seedCustomer(t, db, "reviewer@example.com")
	product := seedProduct(t, db, "Lamp", "20.00")
	review, err := CreateReview(db, models.ReviewInput{CustomerID: customer.ID, ProductID: product.ID, Rating: 3})
	require.NoError(t, err)

	mine, err := ListReviewsByCustomer(db, customer.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	require.NoError(t, DeleteReview(db, review.ID))
	assert.ErrorIs(t, DeleteReview(db, review.ID), ErrNotFound)
}

func TestCreateReview_UniquePerCustomerAndProduct(t *testing.T) {
	db := newTestDB(t)
	customer := seedCustomer(t, db, "reviewer@example.com")
	product := seedProduct(t, db, "Lamp", "20.00")
	review, err := CreateReview(db, models.ReviewInput{CustomerID: customer.ID, ProductID: product.ID, Rating: 4})
	require.NoError(t, err)

	// A write that skips the service check still hits the index.
	err = db.Create(&models.Review{CustomerID: customer.ID, ProductID: product.ID, Rating: 1, Status: models.ReviewStatusPending}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	require.NoError(t, DeleteReview(db, review.ID))
	assert.Zero(t, countRows(t, db.Unscoped(), &models.Review{}, "id = ?", review.ID))

	again, err := CreateReview(db, models.ReviewInput{CustomerID: customer.ID, ProductID: product.ID, Rating: 2})
	require.NoError(t, err)
	assert.NotEqual(t, review.ID, again.ID)
}

func TestIsPublished(t *testing.T) {
	assert.True(t, IsPublished(&models.Review{Status: models.ReviewStatusApproved}))
	assert.False(t, IsPublished(&models.Review{Status: models.ReviewStatusPending}))
	assert.False(t, IsPublished(&models.Review{Status: models.ReviewStatusRejected}))
}
