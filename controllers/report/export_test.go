package reportController

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/yilfev-stack/yeniservisrapor26022026/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportFileName(t *testing.T) {
	report := &models.Report{ReportNo: "SR-260831-042", RevisionNo: 2}
	assert.Equal(t, "SR-260831-042-rev2.csv", exportFileName(report))
}

func TestWriteReportCSV(t *testing.T) {
	arrival := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	report := &models.Report{
		ReportNo:        "SR-260831-001",
		RevisionNo:      1,
		Status:          models.StatusFinalReport,
		Language:        "en",
		CustomerID:      7,
		ResponsibleUser: "a.tekin",
		ArrivalDate:     &arrival,
		ResultNotes:     "Restored to service.",
		Actions: encodeActions([]models.ReportAction{
			{LibraryID: 1, SnapshotTextTr: "Gövde temizlendi.", SnapshotTextEn: "Body cleaned.", OrderIndex: 0},
			{LibraryID: 2, SnapshotTextEn: "Packing inspected.", ManualExtensionEn: "Replaced.", OrderIndex: 1},
		}),
	}

	var buf bytes.Buffer
	require.NoError(t, writeReportCSV(&buf, report))

	reader := csv.NewReader(&buf)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	require.NoError(t, err)

	byKey := map[string]string{}
	for _, row := range rows {
		if len(row) == 2 {
			byKey[row[0]] = row[1]
		}
	}
	assert.Equal(t, "SR-260831-001", byKey["report_no"])
	assert.Equal(t, models.StatusFinalReport, byKey["status"])
	assert.Equal(t, "7", byKey["customer_id"])
	assert.Equal(t, "2026-08-20", byKey["arrival_date"])
	assert.Equal(t, "", byKey["shipping_date"])

	last := rows[len(rows)-1]
	require.Len(t, last, 3)
	assert.Equal(t, "1", last[0])
	assert.Equal(t, "Packing inspected. Replaced.", last[2], "final text recomputed for export")

	header := rows[len(rows)-3]
	assert.Equal(t, []string{"order", "final_text_tr", "final_text_en"}, header)
}
