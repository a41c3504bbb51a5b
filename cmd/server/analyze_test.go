package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/common"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/models"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/report"
	_ "github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/testing"
)

const analyzeCSV = "Time,HR (bpm),SpO₂ (%),Temp (°C),Status\n" +
	"2024-03-01 08:00:00,72,98,36.6,Normal\n" +
	"2024-03-01 08:01:00,130,97,36.9,Alert\n" +
	"2024-03-01 08:02:00,88,86,38.5,Alert\n" +
	"2024-03-01 08:03:00,abc,97,36.8,Normal\n"

func TestAnalyzeReadings(t *testing.T) {
	common.SetTestLoggerNop()

	a, err := analyzeReadings(strings.NewReader(analyzeCSV), "P001", models.DefaultThreshold(""))
	require.NoError(t, err)

	assert.Equal(t, 3, a.Summary.TotalRecords)
	assert.Equal(t, 2, a.Summary.AlertRecords)
	assert.Equal(t, 3, a.Summary.TotalAlerts)
	assert.Equal(t, 96.7, a.Summary.AvgHR)

	require.Len(t, a.Alerts, 3)
	assert.Equal(t, uint(1), a.Alerts[0].ID)
	assert.Equal(t, models.AlertKindHR, a.Alerts[0].Kind)
	assert.Equal(t, uint(3), a.Alerts[2].ID)
	assert.Equal(t, models.AlertKindTemp, a.Alerts[2].Kind)
	for _, alert := range a.Alerts {
		assert.Equal(t, "P001", alert.PatientID)
	}

	require.Len(t, a.Rejected, 1)
	assert.Equal(t, 5, a.Rejected[0].Line)
}

func TestAnalyzeCustomThresholds(t *testing.T) {
	common.SetTestLoggerNop()

	thr := models.DefaultThreshold("")
	thr.HRHigh = 140
	thr.TempHigh = 39

	a, err := analyzeReadings(strings.NewReader(analyzeCSV), "P002", thr)
	require.NoError(t, err)
	require.Len(t, a.Alerts, 1)
	assert.Equal(t, models.AlertKindSpO2, a.Alerts[0].Kind)
	assert.Equal(t, 86.0, a.Alerts[0].Value)
}

func TestAnalyzeCommand(t *testing.T) {
	common.SetTestLoggerNop()

	dir := t.TempDir()
	in := filepath.Join(dir, "readings.csv")
	out := filepath.Join(dir, "alerts.csv")
	xlsx := filepath.Join(dir, "alerts.xlsx")
	require.NoError(t, os.WriteFile(in, []byte(analyzeCSV), 0o644))

	cmd := newAnalyzeCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{in, "--out", out, "--xlsx", xlsx, "--patient", "P009"})
	require.NoError(t, cmd.Execute())

	text := stdout.String()
	assert.Contains(t, text, "[STATS] Total rows: 3")
	assert.Contains(t, text, "[STATS] Total alerts: 3")
	assert.Contains(t, text, "line 5: invalid number")
	assert.Contains(t, text, "[OK] Alerts saved to "+out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, strings.Join(report.AlertColumns, ","), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "1,P009,2024-03-01T08:01:00Z,hr,130,new"))

	f, err := excelize.OpenFile(xlsx)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(report.KPISheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "P009", rows[1][0])
}

func TestAnalyzeCommandRejectsBadInput(t *testing.T) {
	common.SetTestLoggerNop()

	dir := t.TempDir()
	in := filepath.Join(dir, "readings.csv")
	require.NoError(t, os.WriteFile(in, []byte("Time,HR\n2024-03-01 08:00:00,72\n"), 0o644))

	cmd := newAnalyzeCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{in, "--out", ""})
	assert.ErrorContains(t, cmd.Execute(), "missing required columns")

	cmd = newAnalyzeCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{in, "--spo2-low", "120"})
	assert.ErrorContains(t, cmd.Execute(), "spo2-low")
}
