package models

import "time"

// Request/response shapes shared by the HTTP controllers, the resty client and
// the wizard/taxonomy engines. These are plain structs, no persistence tags.

// CustomerOption is the picker row for the wizard's customer list.
type CustomerOption struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ProductOption is the picker row for the wizard's product list.
type ProductOption struct {
	ID        uint   `json:"id"`
	Type      string `json:"type"`
	TagNo     string `json:"tag_no"`
	ValveType string `json:"valve_type"`
}

// CatalogEntry is the action library view served to the wizard. An empty
// ValveType means the entry applies to every valve type.
type CatalogEntry struct {
	ID        uint   `json:"id"`
	Scope     string `json:"scope"`
	ValveType string `json:"valve_type"`
	TextTr    string `json:"text_tr"`
	TextEn    string `json:"text_en"`
}

// ActuatorInfo is the structured actuator block of a product.
type ActuatorInfo struct {
	Type              string `json:"type"`
	Brand             string `json:"brand"`
	Model             string `json:"model"`
	SerialNo          string `json:"serial_no"`
	Action            string `json:"action"`
	ModelSameAsValve  bool   `json:"model_same_as_valve"`
	SerialSameAsValve bool   `json:"serial_same_as_valve"`
}

// AccessoryInfo is one accessory row of a product. Key is a taxonomy value
// (slugified when the operator types a new one).
type AccessoryInfo struct {
	Key       string `json:"key"`
	Installed bool   `json:"installed"`
	Brand     string `json:"brand"`
	Model     string `json:"model"`
	SerialNo  string `json:"serial_no"`
	Notes     string `json:"notes"`
}

// ProductPayload is the full product shape used for create/update and for the
// product editor form.
type ProductPayload struct {
	ID         uint   `json:"id"`
	CustomerID uint   `json:"customer_id"`
	BrandID    uint   `json:"brand_id"`
	ModelID    uint   `json:"model_id"`
	Type       string `json:"type"`
	SerialNo   string `json:"serial_no"`
	TagNo      string `json:"tag_no"`
	DnPn       string `json:"dn_pn"`
	Notes      string `json:"notes"`

	ValveType      string `json:"valve_type"`
	Manufacturer   string `json:"manufacturer"`
	Size           string `json:"size"`
	PressureClass  string `json:"pressure_class"`
	ConnectionType string `json:"connection_type"`
	BodyStyle      string `json:"body_style"`
	FailAction     string `json:"fail_action"`
	BodyMaterial   string `json:"body_material"`
	TrimMaterial   string `json:"trim_material"`
	SeatMaterial   string `json:"seat_material"`
	StemMaterial   string `json:"stem_material"`

	Actuator      *ActuatorInfo          `json:"actuator"`
	Accessories   []AccessoryInfo        `json:"accessories"`
	TechnicalCard map[string]interface{} `json:"technical_card"`
}

// TextBlock is one free-text block of a report section.
type TextBlock struct {
	Text string `json:"text"`
}

// ReportBlocks groups the complaint and problems sections.
type ReportBlocks struct {
	Complaint []TextBlock `json:"complaint"`
	Problems  []TextBlock `json:"problems"`
}

// ReportPayload is the create/update report contract.
type ReportPayload struct {
	Language        string     `json:"language"`
	Status          string     `json:"status"`
	CustomerID      uint       `json:"customer_id"`
	IssuerID        uint       `json:"issuer_id"`
	ContactID       uint       `json:"contact_id"`
	ResponsibleUser string     `json:"responsible_user"`
	LastCheckBy     string     `json:"last_check_by"`
	ArrivalDate     *time.Time `json:"arrival_date"`
	ShippingDate    *time.Time `json:"shipping_date"`
	WarrantyStatus  string     `json:"warranty_status"`

	Products       []map[string]interface{} `json:"products"`
	Blocks         ReportBlocks             `json:"blocks"`
	Actions        []ReportAction           `json:"actions"`
	AccessoryNotes []TextBlock              `json:"accessory_notes"`
	Spares         []TextBlock              `json:"spares"`
	ResultNotes    string                   `json:"result_notes"`
	InternalNotes  string                   `json:"internal_notes"`
}

// CreateResult is the id envelope returned by create endpoints.
type CreateResult struct {
	ID       uint   `json:"id"`
	ReportNo string `json:"report_no,omitempty"`
}
