package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Product is an installed valve registered to a customer. The free-form
// attribute fields (valve type, materials, connection type, ...) hold taxonomy
// values; every non-empty value typed here is promoted into the shared
// taxonomy on save.
type Product struct {
	gorm.Model
	CustomerID uint `gorm:"index;not null" json:"customer_id"`
	BrandID    uint `gorm:"index" json:"brand_id"`
	ModelID    uint `gorm:"index" json:"model_id"`

	Type     string `gorm:"default:''" json:"type"`
	SerialNo string `gorm:"default:''" json:"serial_no"`
	TagNo    string `gorm:"default:''" json:"tag_no"`
	DnPn     string `gorm:"default:''" json:"dn_pn"`
	Notes    string `gorm:"default:''" json:"notes"`

	ValveType      string `gorm:"default:''" json:"valve_type"`
	Manufacturer   string `gorm:"default:''" json:"manufacturer"`
	Size           string `gorm:"default:''" json:"size"`
	PressureClass  string `gorm:"default:''" json:"pressure_class"`
	ConnectionType string `gorm:"default:''" json:"connection_type"`
	BodyStyle      string `gorm:"default:''" json:"body_style"`
	FailAction     string `gorm:"default:''" json:"fail_action"`
	BodyMaterial   string `gorm:"default:''" json:"body_material"`
	TrimMaterial   string `gorm:"default:''" json:"trim_material"`
	SeatMaterial   string `gorm:"default:''" json:"seat_material"`
	StemMaterial   string `gorm:"default:''" json:"stem_material"`

	// Nested structures kept as JSON documents: actuator {type, brand, model,
	// serial_no, action, model_same_as_valve, serial_same_as_valve} and a list
	// of accessories {key, installed, brand, model, serial_no, notes}.
	Actuator      datatypes.JSON `json:"actuator"`
	Accessories   datatypes.JSON `json:"accessories"`
	TechnicalCard datatypes.JSON `json:"technical_card"`
}
