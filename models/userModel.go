package models

import "gorm.io/gorm"

const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleStaff    = "staff"
	RoleCustomer = "customer"
)

type User struct {
	gorm.Model
	Username               string `json:"username" gorm:"size:80;uniqueIndex"`
	Email                  string `json:"email" gorm:"size:160;uniqueIndex"`
	Password               string `json:"-"`
	Role                   string `json:"role" gorm:"size:20"`
	CustomerID             *uint  `json:"customerId"`
	AccountActivated       bool   `json:"accountActivated"`
	AccountActivationToken string `json:"-" gorm:"index"`
	PasswordResetToken     string `json:"-" gorm:"index"`
}

type SignupData struct {
	Username  string `json:"username" binding:"required,min=3"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Phone     string `json:"phone"`
}

type LoginData struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}
