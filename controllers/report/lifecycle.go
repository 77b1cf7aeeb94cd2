package reportController

import (
	"time"

	"github.com/yilfev-stack/yeniservisrapor26022026/database"
	"github.com/yilfev-stack/yeniservisrapor26022026/middleware"
	"github.com/yilfev-stack/yeniservisrapor26022026/models"
	"github.com/yilfev-stack/yeniservisrapor26022026/utils"

	"github.com/gofiber/fiber/v2"
)

// TransitionStatus advances a report one stage along the status flow. Final
// reports additionally require at least one action and an after photo set.
func TransitionStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	target := c.Query("status")
	if statusIndex(target) == 0 && target != models.StatusDraft {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid status!", nil)
	}
	user := c.Query("user", "system")

	var report models.Report
	if err := database.Database.Db.First(&report, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Report not found!", nil)
	}

	if target == models.StatusFinalReport {
		actions := decodeActions(report.Actions)
		var afterPhotos int64
		if err := database.Database.Db.Model(&models.ReportPhoto{}).
			Where("report_id = ? AND \"set\" = ?", report.ID, "after").Count(&afterPhotos).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check report photos!", nil)
		}
		if len(actions) == 0 || afterPhotos == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Final report requires actions and after photos!", nil)
		}
	}

	currentIdx := statusIndex(report.Status)
	targetIdx := statusIndex(target)
	if targetIdx > currentIdx+1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Can only move to next stage!", nil)
	}

	previous := report.Status
	report.Status = target
	report.UpdatedBy = user
	appendAudit(&report, user, "status_change", previous+"->"+target)

	if err := database.Database.Db.Save(&report).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update status!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Status updated successfully!", fiber.Map{
		"status_meta": buildStatusMeta(target),
	})
}

// CreateRevision clones a report into a new draft with a bumped revision
// number.
func CreateRevision(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	var report models.Report
	if err := database.Database.Db.First(&report, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Report not found!", nil)
	}

	revision := report
	revision.ID = 0
	revision.CreatedAt = time.Time{}
	revision.UpdatedAt = time.Time{}
	revision.RevisionNo = report.RevisionNo + 1
	revision.Status = models.StatusDraft

	if err := database.Database.Db.Create(&revision).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create revision!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Revision created successfully!", fiber.Map{
		"id":          revision.ID,
		"revision_no": revision.RevisionNo,
	})
}

// DuplicateReport clones a report into a fresh draft with a new report number
// and empty photo sets.
func DuplicateReport(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	var report models.Report
	if err := database.Database.Db.First(&report, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Report not found!", nil)
	}

	duplicate := report
	duplicate.ID = 0
	duplicate.CreatedAt = time.Time{}
	duplicate.UpdatedAt = time.Time{}
	duplicate.ReportNo = utils.GenerateReportNo(time.Now())
	duplicate.RevisionNo = 1
	duplicate.Status = models.StatusDraft

	if err := database.Database.Db.Create(&duplicate).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to duplicate report!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Report duplicated successfully!", fiber.Map{
		"id":          duplicate.ID,
		"report_no":   duplicate.ReportNo,
		"revision_no": 1,
	})
}

// ServiceHistory lists the latest reports that reference a product.
func ServiceHistory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	limit := c.QueryInt("limit", 10)

	db := database.Database.Db.Model(&models.Report{}).
		Where("CAST(products AS TEXT) LIKE ?", "%\"product_id\":"+c.Params("id")+"%")

	var total int64
	db.Count(&total)

	var reports []models.Report
	if err := db.Order("created_at DESC").Limit(limit).Find(&reports).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch service history!", nil)
	}

	items := make([]fiber.Map, 0, len(reports))
	for _, report := range reports {
		items = append(items, fiber.Map{
			"id":        report.ID,
			"report_no": report.ReportNo,
			"date":      report.CreatedAt,
			"status":    report.Status,
			"summary":   report.ResultNotes,
		})
	}

	var lastServiceDate interface{}
	if len(reports) > 0 {
		lastServiceDate = reports[0].CreatedAt
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Service history fetched successfully!", fiber.Map{
		"product_id":        uint(id),
		"total_reports":     total,
		"last_service_date": lastServiceDate,
		"reports":           items,
	})
}

// IssuerReports lists the reports issued under a company profile.
func IssuerReports(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	var reports []models.Report
	if err := database.Database.Db.
		Where("issuer_id = ?", id).
		Order("created_at DESC").
		Find(&reports).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reports!", nil)
	}

	views := make([]reportView, 0, len(reports))
	for _, report := range reports {
		views = append(views, toView(report))
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reports fetched successfully!", views)
}

// DashboardKPIs returns the headline counts for the dashboard.
func DashboardKPIs(c *fiber.Ctx) error {
	db := database.Database.Db

	var openReports, finalReports, awaiting, customers, products, templates int64
	db.Model(&models.Report{}).
		Where("status NOT IN ?", []string{models.StatusFinalReport, models.StatusArchived}).
		Count(&openReports)
	db.Model(&models.Report{}).Where("status = ?", models.StatusFinalReport).Count(&finalReports)
	db.Model(&models.Report{}).Where("status = ?", models.StatusAwaitingApproval).Count(&awaiting)
	db.Model(&models.Customer{}).Count(&customers)
	db.Model(&models.Product{}).Count(&products)
	db.Model(&models.Template{}).Count(&templates)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard KPIs fetched successfully!", fiber.Map{
		"open_reports":      openReports,
		"final_reports":     finalReports,
		"awaiting_approval": awaiting,
		"customers":         customers,
		"products":          products,
		"templates":         templates,
	})
}
