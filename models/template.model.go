package models

import (
	"gorm.io/gorm"
)

type Template struct {
	gorm.Model
	Type     string `gorm:"index;not null" json:"type"` // action, problem, complaint
	Title    string `gorm:"not null" json:"title"`
	Language string `gorm:"default:'tr'" json:"language"` // tr, en, both
	Text     string `gorm:"not null" json:"text"`
}
