package models

import "gorm.io/gorm"

type Customer struct {
	gorm.Model
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" gorm:"size:160;not null;uniqueIndex" binding:"required,email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}
