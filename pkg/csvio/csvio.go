// Package csvio reads vital-sign readings from CSV uploads and writes the
// alert and KPI exports.
package csvio

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/common"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/metrics"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/models"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/report"
)

var ErrMissingColumns = errors.New("csv missing required columns")

// Canonical header names of the device export.
const (
	ColumnTime   = "Time"
	ColumnHR     = "HR (bpm)"
	ColumnSpO2   = "SpO₂ (%)"
	ColumnTemp   = "Temp (°C)"
	ColumnStatus = "Status"
)

var RequiredColumns = []string{ColumnTime, ColumnHR, ColumnSpO2, ColumnTemp}

// columnAliases are matched case-insensitively after trimming.
var columnAliases = map[string][]string{
	ColumnTime: {"time", "timestamp", "date_time", "datetime"},
	ColumnHR:   {"hr", "heart_rate", "heart rate", "hr (bpm)", "heartrate", "heart_rate_bpm"},
	ColumnSpO2: {"spo2", "spo2 (%)", "spo (%)", "spo2_percent", "oxygen"},
	ColumnTemp: {"temp", "temperature", "temp (c)", "temperature_c", "temp_c", "body_temp"},
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006/01/02 15:04:05",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"2006-01-02",
}

const utf8BOM = "\ufeff"

// ParseTime accepts the timestamp shapes seen in device exports. Values
// without a zone are read as UTC.
func ParseTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised time %q", value)
}

// ResolveHeader maps each required column to its index in header. The
// returned slice lists required columns that could not be found.
func ResolveHeader(header []string) (map[string]int, []string) {
	index := map[string]int{}
	lowered := map[string]int{}
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, utf8BOM))
		if _, ok := index[h]; !ok {
			index[h] = i
		}
		key := strings.ToLower(h)
		if _, ok := lowered[key]; !ok {
			lowered[key] = i
		}
	}

	positions := map[string]int{}
	var missing []string
	for _, column := range RequiredColumns {
		if i, ok := index[column]; ok {
			positions[column] = i
			continue
		}
		found := false
		for _, alias := range append([]string{strings.ToLower(column)}, columnAliases[column]...) {
			if i, ok := lowered[alias]; ok {
				positions[column] = i
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, column)
		}
	}
	if i, ok := lowered[strings.ToLower(ColumnStatus)]; ok {
		positions[ColumnStatus] = i
	}
	return positions, missing
}

func detectDelimiter(data []byte) rune {
	firstLine := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		firstLine = data[:i]
	}
	if bytes.Count(firstLine, []byte(";")) > bytes.Count(firstLine, []byte(",")) {
		return ';'
	}
	return ','
}

// ParseReadings reads a header row followed by data rows. A missing required
// column fails the whole file with ErrMissingColumns; a bad row is skipped
// and reported with its 1-based line number.
func ParseReadings(r io.Reader) ([]models.Reading, []models.RowRejection, error) {
	logger := common.GetCategoryLogger(common.LoggerNameVitalsCore, common.LoggerCategoryVitalsImport)

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}
	data = bytes.TrimPrefix(data, []byte(utf8BOM))

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = detectDelimiter(data)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("%w: empty file", ErrMissingColumns)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read csv header: %w", err)
	}

	positions, missing := ResolveHeader(header)
	if len(missing) > 0 {
		return nil, nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	readings := []models.Reading{}
	rejected := []models.RowRejection{}
	reject := func(line int, reason string) {
		rejected = append(rejected, models.RowRejection{Line: line, Reason: reason})
		metrics.ImportRowsTotal.WithLabelValues("rejected").Inc()
	}

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			reject(parseErr.StartLine, parseErr.Err.Error())
			continue
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read csv: %w", err)
		}

		line, _ := cr.FieldPos(0)
		reading, reason := parseRow(record, positions)
		if reason != "" {
			reject(line, reason)
			continue
		}
		readings = append(readings, reading)
		metrics.ImportRowsTotal.WithLabelValues("accepted").Inc()
	}

	logger.Info("Parsed csv readings",
		zap.Int("accepted", len(readings)),
		zap.Int("rejected", len(rejected)),
		zap.String("delimiter", string(cr.Comma)))
	return readings, rejected, nil
}

func parseRow(record []string, positions map[string]int) (models.Reading, string) {
	field := func(column string) (string, bool) {
		i := positions[column]
		if i >= len(record) {
			return "", false
		}
		v := strings.TrimSpace(record[i])
		return v, v != ""
	}

	var reading models.Reading

	raw, ok := field(ColumnTime)
	if !ok {
		return reading, "missing value for " + ColumnTime
	}
	t, err := ParseTime(raw)
	if err != nil {
		return reading, err.Error()
	}
	reading.Time = t

	for _, target := range []struct {
		column string
		dst    *float64
	}{
		{ColumnHR, &reading.HR},
		{ColumnSpO2, &reading.SpO2},
		{ColumnTemp, &reading.Temp},
	} {
		raw, ok := field(target.column)
		if !ok {
			return reading, "missing value for " + target.column
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return reading, fmt.Sprintf("invalid number %q for %s", raw, target.column)
		}
		*target.dst = v
	}

	return reading, ""
}

// WriteAlerts writes a header row and one row per alert.
func WriteAlerts(w io.Writer, alerts []models.Alert) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(report.AlertColumns); err != nil {
		return fmt.Errorf("write alerts header: %w", err)
	}
	for _, a := range alerts {
		if err := cw.Write(report.AlertRecord(a)); err != nil {
			return fmt.Errorf("write alert %d: %w", a.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteKPI(w io.Writer, summary models.KPISummary) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll([][]string{report.KPIColumns, report.KPIRecord(summary)}); err != nil {
		return fmt.Errorf("write kpi: %w", err)
	}
	return nil
}
