package reportController

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/yilfev-stack/yeniservisrapor26022026/database"
	"github.com/yilfev-stack/yeniservisrapor26022026/middleware"
	"github.com/yilfev-stack/yeniservisrapor26022026/models"
	"github.com/yilfev-stack/yeniservisrapor26022026/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// composeFinalText joins a snapshot with its manual extension.
func composeFinalText(snapshot, extension string) string {
	snap := strings.TrimSpace(snapshot)
	ext := strings.TrimSpace(extension)
	if ext == "" {
		return snap
	}
	return strings.TrimSpace(snap + " " + ext)
}

// normalizeActions recomputes the final texts of every action row. Snapshot
// and extension fields pass through untouched.
func normalizeActions(actions []models.ReportAction) []models.ReportAction {
	normalized := make([]models.ReportAction, len(actions))
	for i, action := range actions {
		action.FinalTextTr = composeFinalText(action.SnapshotTextTr, action.ManualExtensionTr)
		action.FinalTextEn = composeFinalText(action.SnapshotTextEn, action.ManualExtensionEn)
		normalized[i] = action
	}
	return normalized
}

// decodeActions parses the stored actions column; a broken or empty column
// decodes to an empty list.
func decodeActions(raw datatypes.JSON) []models.ReportAction {
	var actions []models.ReportAction
	if len(raw) > 0 {
		json.Unmarshal(raw, &actions)
	}
	if actions == nil {
		actions = []models.ReportAction{}
	}
	return actions
}

func encodeActions(actions []models.ReportAction) datatypes.JSON {
	raw, _ := json.Marshal(actions)
	return datatypes.JSON(raw)
}

type statusMeta struct {
	CurrentStage string   `json:"current_stage"`
	NextAllowed  string   `json:"next_allowed,omitempty"`
	Timeline     []string `json:"timeline"`
}

func buildStatusMeta(status string) statusMeta {
	idx := statusIndex(status)
	meta := statusMeta{CurrentStage: models.StatusFlow[idx], Timeline: models.StatusFlow}
	if idx < len(models.StatusFlow)-1 {
		meta.NextAllowed = models.StatusFlow[idx+1]
	}
	return meta
}

func statusIndex(status string) int {
	for i, s := range models.StatusFlow {
		if s == status {
			return i
		}
	}
	return 0
}

// reportView is a report row served with recomputed finals and status meta.
type reportView struct {
	models.Report
	ActionsView []models.ReportAction `json:"actions_view"`
	StatusMeta  statusMeta            `json:"status_meta"`
}

func toView(report models.Report) reportView {
	actions := normalizeActions(decodeActions(report.Actions))
	report.Actions = encodeActions(actions)
	return reportView{
		Report:      report,
		ActionsView: actions,
		StatusMeta:  buildStatusMeta(report.Status),
	}
}

func appendAudit(report *models.Report, user, action, summary string) {
	var entries []map[string]interface{}
	if len(report.AuditLog) > 0 {
		json.Unmarshal(report.AuditLog, &entries)
	}
	entries = append(entries, map[string]interface{}{
		"ts":           time.Now().UTC().Format(time.RFC3339),
		"user":         user,
		"action":       action,
		"diff_summary": summary,
	})
	raw, _ := json.Marshal(entries)
	report.AuditLog = datatypes.JSON(raw)
}

// applyPayload copies a validated report payload onto a report row and
// recomputes the action finals.
func applyPayload(payload *models.ReportPayload, report *models.Report) {
	report.Language = payload.Language
	report.Status = payload.Status
	report.CustomerID = payload.CustomerID
	report.IssuerID = payload.IssuerID
	report.ContactID = payload.ContactID
	report.ResponsibleUser = payload.ResponsibleUser
	report.LastCheckBy = payload.LastCheckBy
	report.ArrivalDate = payload.ArrivalDate
	report.ShippingDate = payload.ShippingDate
	report.WarrantyStatus = payload.WarrantyStatus
	report.ResultNotes = payload.ResultNotes
	report.InternalNotes = payload.InternalNotes

	report.Actions = encodeActions(normalizeActions(payload.Actions))

	rawProducts, _ := json.Marshal(payload.Products)
	report.Products = datatypes.JSON(rawProducts)
	rawBlocks, _ := json.Marshal(payload.Blocks)
	report.Blocks = datatypes.JSON(rawBlocks)
	rawNotes, _ := json.Marshal(payload.AccessoryNotes)
	report.AccessoryNotes = datatypes.JSON(rawNotes)
	rawSpares, _ := json.Marshal(payload.Spares)
	report.Spares = datatypes.JSON(rawSpares)
}

func CreateReport(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedReport").(*models.ReportPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	report := models.Report{
		ReportNo:   utils.GenerateReportNo(time.Now()),
		RevisionNo: 1,
		CreatedBy:  reqData.ResponsibleUser,
		UpdatedBy:  reqData.ResponsibleUser,
	}
	applyPayload(reqData, &report)
	appendAudit(&report, reqData.ResponsibleUser, "create", "initial draft")

	if err := database.Database.Db.Create(&report).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create report!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Report created successfully!", fiber.Map{
		"id":          report.ID,
		"report_no":   report.ReportNo,
		"status_meta": buildStatusMeta(report.Status),
	})
}

func ReportList(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&models.Report{})

	if customerId := c.QueryInt("customer_id"); customerId > 0 {
		db = db.Where("customer_id = ?", customerId)
	}
	if contactId := c.QueryInt("contact_id"); contactId > 0 {
		db = db.Where("contact_id = ?", contactId)
	}
	if issuerId := c.QueryInt("issuer_id"); issuerId > 0 {
		db = db.Where("issuer_id = ?", issuerId)
	}
	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}
	if responsible := c.Query("responsible_user"); responsible != "" {
		db = db.Where("responsible_user = ?", responsible)
	}
	if from := c.Query("date_from"); from != "" {
		if start, ok := utils.DayStart(from); ok {
			db = db.Where("created_at >= ?", start)
		}
	}
	if to := c.Query("date_to"); to != "" {
		if end, ok := utils.DayEnd(to); ok {
			db = db.Where("created_at <= ?", end)
		}
	}
	// Product snapshot filters search the serialized products column
	for _, field := range []string{"brand", "model", "serial_no", "tag_no"} {
		if value := c.Query(field); value != "" {
			db = db.Where("CAST(products AS TEXT) LIKE ?", "%"+value+"%")
		}
	}

	var reports []models.Report
	if err := db.Order("created_at DESC").Find(&reports).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reports!", nil)
	}

	views := make([]reportView, 0, len(reports))
	for _, report := range reports {
		views = append(views, toView(report))
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reports fetched successfully!", views)
}

func GetReport(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	var report models.Report
	if err := database.Database.Db.First(&report, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Report not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Report fetched successfully!", toView(report))
}

func UpdateReport(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	reqData, ok := c.Locals("validatedReport").(*models.ReportPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var report models.Report
	if err := database.Database.Db.First(&report, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Report not found!", nil)
	}

	applyPayload(reqData, &report)
	report.UpdatedBy = reqData.ResponsibleUser
	appendAudit(&report, reqData.ResponsibleUser, "update", "draft updated")

	if err := database.Database.Db.Save(&report).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update report!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Report updated successfully!", nil)
}

func DeleteReport(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	if err := database.Database.Db.Delete(&models.Report{}, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete report!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Report deleted successfully!", nil)
}
