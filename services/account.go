package services

import (
	"errors"
	"strings"

	"github.com/Kariqs/storefront-api/models"
	"gorm.io/gorm"
)

// RegisterAccount creates the customer profile and its login in one
// transaction. passwordHash must already be hashed.
func RegisterAccount(db *gorm.DB, data models.SignupData, passwordHash, activationToken string) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(data.Email))
	user := models.User{
		Username:               strings.TrimSpace(data.Username),
		Email:                  email,
		Password:               passwordHash,
		Role:                   models.RoleCustomer,
		AccountActivationToken: activationToken,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		taken, err := exists(tx.Unscoped(), &models.User{}, "email = ? OR username = ?", user.Email, user.Username)
		if err != nil {
			return err
		}
		if taken {
			return duplicate("user", "email or username", user.Email)
		}

		customer := models.Customer{
			FirstName: data.FirstName,
			LastName:  data.LastName,
			Email:     email,
			Phone:     data.Phone,
		}
		if err := CreateCustomer(tx, &customer); err != nil {
			return err
		}
		user.CustomerID = &customer.ID
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByIdentifier looks a user up by email or username.
func FindUserByIdentifier(db *gorm.DB, identifier string) (*models.User, error) {
	identifier = strings.TrimSpace(identifier)
	var user models.User
	err := db.Where("email = ? OR username = ?", strings.ToLower(identifier), identifier).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("user", identifier)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func ActivateAccount(db *gorm.DB, token string) error {
	if token == "" {
		return invalid("activation token is empty")
	}
	result := db.Model(&models.User{}).
		Where("account_activation_token = ?", token).
		Updates(map[string]any{
			"account_activated":        true,
			"account_activation_token": "",
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound("activation token", token)
	}
	return nil
}

func SetPasswordResetToken(db *gorm.DB, email, token string) (*models.User, error) {
	user, err := FindUserByIdentifier(db, email)
	if err != nil {
		return nil, err
	}
	if err := db.Model(user).Update("password_reset_token", token).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func ResetPassword(db *gorm.DB, token, passwordHash string) error {
	if token == "" {
		return invalid("reset token is empty")
	}
	result := db.Model(&models.User{}).
		Where("password_reset_token = ?", token).
		Updates(map[string]any{
			"password":             passwordHash,
			"password_reset_token": "",
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound("reset token", token)
	}
	return nil
}
