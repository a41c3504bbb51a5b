package report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/models"
)

const (
	AlertsSheet = "Alerts"
	KPISheet    = "KPI"
)

// AlertColumns is the column order of every alert export.
var AlertColumns = []string{
	"id",
	"patient_id",
	"time",
	"kind",
	"value",
	"status",
	"acknowledged_by",
	"ack_time",
	"note",
}

var KPIColumns = []string{
	"patient_id",
	"total_records",
	"alert_records",
	"total_alerts",
	"open_alerts",
	"avg_hr_bpm",
	"avg_spo2_pct",
	"avg_temp_c",
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func optString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// AlertRecord renders one alert in AlertColumns order.
func AlertRecord(a models.Alert) []string {
	return []string{
		strconv.FormatUint(uint64(a.ID), 10),
		a.PatientID,
		a.Time.UTC().Format(time.RFC3339),
		string(a.Kind),
		formatFloat(a.Value),
		a.Status,
		optString(a.AcknowledgedBy),
		optTime(a.AckTime),
		optString(a.Note),
	}
}

func KPIRecord(s models.KPISummary) []string {
	return []string{
		s.PatientID,
		strconv.Itoa(s.TotalRecords),
		strconv.Itoa(s.AlertRecords),
		strconv.Itoa(s.TotalAlerts),
		strconv.Itoa(s.OpenAlerts),
		formatFloat(s.AvgHR),
		formatFloat(s.AvgSpO2),
		formatFloat(s.AvgTemp),
	}
}

// AlertsWorkbook builds an xlsx file with an Alerts sheet and, when summary
// is given, a KPI sheet.
func AlertsWorkbook(alerts []models.Alert, summary *models.KPISummary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", AlertsSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	if err := writeHeader(f, AlertsSheet, AlertColumns, headerStyle); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(AlertsSheet, "C", "C", 22); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}
	if err := f.SetColWidth(AlertsSheet, "G", "I", 20); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}

	for i, a := range alerts {
		record := AlertRecord(a)
		for col, value := range record {
			var cellValue any = value
			switch AlertColumns[col] {
			case "id":
				cellValue = a.ID
			case "value":
				cellValue = a.Value
			}
			if err := setCell(f, AlertsSheet, col+1, i+2, cellValue); err != nil {
				return nil, err
			}
		}
	}

	if summary != nil {
		if _, err := f.NewSheet(KPISheet); err != nil {
			return nil, fmt.Errorf("create kpi sheet: %w", err)
		}
		if err := writeHeader(f, KPISheet, KPIColumns, headerStyle); err != nil {
			return nil, err
		}
		for col, value := range KPIRecord(*summary) {
			if err := setCell(f, KPISheet, col+1, 2, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHeader(f *excelize.File, sheet string, headers []string, style int) error {
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return fmt.Errorf("failed to set header style: %w", err)
		}
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("failed to convert coordinates: %w", err)
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("failed to set cell %s: %w", cell, err)
	}
	return nil
}
