package models

import (
	"gorm.io/gorm"
)

type Customer struct {
	gorm.Model
	Name            string `gorm:"not null" json:"name"`
	TaxNo           string `gorm:"default:''" json:"tax_no"`
	Email           string `gorm:"default:''" json:"email"`
	Phone           string `gorm:"default:''" json:"phone"`
	Address         string `gorm:"default:''" json:"address"`
	City            string `gorm:"default:''" json:"city"`
	Country         string `gorm:"default:''" json:"country"`
	ShippingAddress string `gorm:"default:''" json:"shipping_address"`
}

type Contact struct {
	gorm.Model
	CustomerID uint   `gorm:"index;not null" json:"customer_id"`
	Name       string `gorm:"not null" json:"name"`
	Email      string `gorm:"default:''" json:"email"`
	Phone      string `gorm:"default:''" json:"phone"`
	Title      string `gorm:"default:''" json:"title"`
	Department string `gorm:"default:''" json:"department"`
	IsDefault  bool   `gorm:"default:false" json:"is_default"`
}
