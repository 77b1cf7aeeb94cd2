package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Report status flow, in order. A report may only advance one stage at a time.
const (
	StatusDraft            = "draft"
	StatusPreReport        = "pre_report"
	StatusQuotationSent    = "quotation_sent"
	StatusAwaitingApproval = "awaiting_approval"
	StatusApproved         = "approved"
	StatusInService        = "in_service"
	StatusFinalReport      = "final_report"
	StatusArchived         = "archived"
)

// StatusFlow lists the report stages in their allowed order.
var StatusFlow = []string{
	StatusDraft,
	StatusPreReport,
	StatusQuotationSent,
	StatusAwaitingApproval,
	StatusApproved,
	StatusInService,
	StatusFinalReport,
	StatusArchived,
}

type Report struct {
	gorm.Model
	ReportNo   string `gorm:"index;not null" json:"report_no"`
	Language   string `gorm:"default:'tr'" json:"language"`
	Status     string `gorm:"default:'draft';index" json:"status"`
	RevisionNo int    `gorm:"default:1" json:"revision_no"`

	CustomerID      uint   `gorm:"index;not null" json:"customer_id"`
	IssuerID        uint   `gorm:"index" json:"issuer_id"`
	ContactID       uint   `gorm:"index" json:"contact_id"`
	ResponsibleUser string `gorm:"default:''" json:"responsible_user"`
	LastCheckBy     string `gorm:"default:''" json:"last_check_by"`

	ArrivalDate    *time.Time `gorm:"default:NULL" json:"arrival_date"`
	ShippingDate   *time.Time `gorm:"default:NULL" json:"shipping_date"`
	WarrantyStatus string     `gorm:"default:''" json:"warranty_status"`

	// Document-shaped sections carried as JSON: product snapshots, complaint and
	// problem text blocks, the ordered action list, accessory notes and spares.
	Products       datatypes.JSON `json:"products"`
	Blocks         datatypes.JSON `json:"blocks"`
	Actions        datatypes.JSON `json:"actions"`
	AccessoryNotes datatypes.JSON `json:"accessory_notes"`
	Spares         datatypes.JSON `json:"spares"`

	ResultNotes   string `gorm:"default:''" json:"result_notes"`
	InternalNotes string `gorm:"default:''" json:"internal_notes"`

	AuditLog datatypes.JSON `json:"audit_log"`

	CreatedBy string `gorm:"default:''" json:"created_by"`
	UpdatedBy string `gorm:"default:''" json:"updated_by"`
}

// ReportAction is one row of a report's action list. Snapshot texts are copied
// from the action library at selection time and never re-read; FinalText* is
// recomputed from snapshot + manual extension whenever the report is written
// or served.
type ReportAction struct {
	LibraryID         uint   `json:"library_id"`
	SnapshotTextTr    string `json:"snapshot_text_tr"`
	SnapshotTextEn    string `json:"snapshot_text_en"`
	ManualExtensionTr string `json:"manual_extension_tr"`
	ManualExtensionEn string `json:"manual_extension_en"`
	FinalTextTr       string `json:"final_text_tr"`
	FinalTextEn       string `json:"final_text_en"`
	OrderIndex        int    `json:"order_index"`
}

type ReportPhoto struct {
	gorm.Model
	ReportID uint   `gorm:"index;not null" json:"report_id"`
	Set      string `gorm:"default:'before'" json:"set"` // before, after
	Path     string `gorm:"not null" json:"path"`
	Caption  string `gorm:"default:''" json:"caption"`
}
