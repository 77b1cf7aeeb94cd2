package reportController

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/yilfev-stack/yeniservisrapor26022026/config"
	"github.com/yilfev-stack/yeniservisrapor26022026/database"
	"github.com/yilfev-stack/yeniservisrapor26022026/middleware"
	"github.com/yilfev-stack/yeniservisrapor26022026/models"

	"github.com/gofiber/fiber/v2"
)

// exportFileName names an export file after the report and revision, e.g.
// "SR-260831-042-rev2.csv".
func exportFileName(report *models.Report) string {
	return fmt.Sprintf("%s-rev%d.csv", report.ReportNo, report.RevisionNo)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// writeReportCSV renders a report as a two-section CSV: a header block of
// scalar fields followed by the ordered action rows with their final texts.
func writeReportCSV(w io.Writer, report *models.Report) error {
	cw := csv.NewWriter(w)

	header := [][]string{
		{"report_no", report.ReportNo},
		{"revision_no", strconv.Itoa(report.RevisionNo)},
		{"status", report.Status},
		{"language", report.Language},
		{"customer_id", strconv.FormatUint(uint64(report.CustomerID), 10)},
		{"responsible_user", report.ResponsibleUser},
		{"arrival_date", formatDate(report.ArrivalDate)},
		{"shipping_date", formatDate(report.ShippingDate)},
		{"warranty_status", report.WarrantyStatus},
		{"result_notes", report.ResultNotes},
	}
	for _, row := range header {
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	if err := cw.Write([]string{}); err != nil {
		return err
	}
	if err := cw.Write([]string{"order", "final_text_tr", "final_text_en"}); err != nil {
		return err
	}
	for _, action := range normalizeActions(decodeActions(report.Actions)) {
		row := []string{strconv.Itoa(action.OrderIndex), action.FinalTextTr, action.FinalTextEn}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportReport writes the report's CSV export into the export directory and
// records the export on the report's audit log.
func ExportReport(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}
	if format := c.Query("format", "csv"); format != "csv" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only csv export is supported!", nil)
	}

	var report models.Report
	if err := database.Database.Db.First(&report, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Report not found!", nil)
	}

	if err := os.MkdirAll(config.AppConfig.ExportDir, 0o755); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to prepare export directory!", nil)
	}

	fileName := exportFileName(&report)
	file, err := os.Create(filepath.Join(config.AppConfig.ExportDir, fileName))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create export file!", nil)
	}
	defer file.Close()

	if err := writeReportCSV(file, &report); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to write export file!", nil)
	}

	user := c.Query("user", "system")
	appendAudit(&report, user, "export", fileName)
	if err := database.Database.Db.Save(&report).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record export!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Report exported successfully!", fiber.Map{
		"file": fileName,
		"url":  "/exports/" + fileName,
	})
}

// ExportIndex lists the files in the export directory.
func ExportIndex(c *fiber.Ctx) error {
	entries, err := os.ReadDir(config.AppConfig.ExportDir)
	if err != nil {
		if os.IsNotExist(err) {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Exports fetched successfully!", []fiber.Map{})
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read export directory!", nil)
	}

	items := make([]fiber.Map, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		items = append(items, fiber.Map{
			"file":     entry.Name(),
			"size":     info.Size(),
			"modified": info.ModTime(),
			"url":      "/exports/" + entry.Name(),
		})
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exports fetched successfully!", items)
}

// DownloadExport serves one export file by name.
func DownloadExport(c *fiber.Ctx) error {
	fileName := filepath.Base(c.Params("filename"))
	if fileName == "." || fileName == "/" || fileName == ".." {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid file name!", nil)
	}

	path := filepath.Join(config.AppConfig.ExportDir, fileName)
	if _, err := os.Stat(path); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Export not found!", nil)
	}
	return c.Download(path, fileName)
}
