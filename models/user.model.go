package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name      string    `gorm:"default:''" json:"name"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"default:'TECHNICIAN'" json:"role"` // TECHNICIAN, ADMIN
	LastLogin time.Time `gorm:"default:NULL" json:"last_login"`
}
