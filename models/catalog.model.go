package models

import (
	"gorm.io/gorm"
)

type Brand struct {
	gorm.Model
	Name string `gorm:"unique;not null" json:"name"`
}

type ValveModel struct {
	gorm.Model
	BrandID uint   `gorm:"index;not null" json:"brand_id"`
	Name    string `gorm:"not null" json:"name"`
}
