package models

import (
	"gorm.io/gorm"
)

// TaxonomyValue is one known value of one product attribute field. The pair is
// unique; publishing the same value twice is a no-op.
type TaxonomyValue struct {
	gorm.Model
	Field string `gorm:"uniqueIndex:idx_taxonomy_field_value;not null" json:"field"`
	Value string `gorm:"uniqueIndex:idx_taxonomy_field_value;not null" json:"value"`
}
