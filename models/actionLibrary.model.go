package models

import (
	"gorm.io/gorm"
)

// ActionLibraryItem is a reusable bilingual action text. ValveType empty means
// the entry applies to every valve type. Deletion is a soft deactivate so
// reports that snapshotted the text keep a resolvable library reference.
type ActionLibraryItem struct {
	gorm.Model
	Scope         string `gorm:"index;default:''" json:"scope"`
	ValveType     string `gorm:"index;default:''" json:"valve_type"`
	Category      string `gorm:"default:''" json:"category"`
	OrderIndex    int    `gorm:"default:0" json:"order_index"`
	TitleTr       string `gorm:"default:''" json:"title_tr"`
	TitleEn       string `gorm:"default:''" json:"title_en"`
	TextTr        string `gorm:"not null" json:"text_tr"`
	TextEn        string `gorm:"not null" json:"text_en"`
	IsActive      bool   `gorm:"default:true;index" json:"is_active"`
	CreatedByUser string `gorm:"default:''" json:"created_by_user"`
}
