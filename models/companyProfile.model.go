package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CompanyProfile is an issuer identity printed on reports. At most one profile
// is the default; setting a new default clears the old one.
type CompanyProfile struct {
	gorm.Model
	Name             string         `gorm:"not null" json:"name"`
	LegalCompanyName string         `gorm:"default:''" json:"legal_company_name"`
	LegalText        string         `gorm:"default:''" json:"legal_text"`
	LegalNotes       datatypes.JSON `json:"legal_notes"`
	Address          string         `gorm:"default:''" json:"address"`
	Phone            string         `gorm:"default:''" json:"phone"`
	Email            string         `gorm:"default:''" json:"email"`
	SignatureLabels  datatypes.JSON `json:"signature_labels"`
	LogoObjectKey    string         `gorm:"default:''" json:"logo_object_key"`
	IsDefault        bool           `gorm:"default:false" json:"is_default"`
}
