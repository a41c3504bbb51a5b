package vitals

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/common"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/models"
	_ "github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/testing"
)

func TestSummary(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, monitor, _ := GetMockMonitorWithMemorySqliteDialector(t, mockOpts{})
	defer ctrl.Finish()

	patientID := uuid.NewString()
	alerts := seedAlerts(t, monitor, patientID)
	_, err := monitor.Alert.AcknowledgeAlert(alerts[0].ID, "dr.sen", "")
	require.NoError(t, err)

	s, err := monitor.Report.Summary(patientID)
	require.NoError(t, err)

	assert.Equal(t, 3, s.TotalRecords)
	assert.Equal(t, 3, s.AlertRecords)
	assert.Equal(t, 4, s.TotalAlerts)
	assert.Equal(t, 3, s.OpenAlerts)
	assert.Equal(t, 111.7, s.AvgHR)
	assert.Equal(t, 92.7, s.AvgSpO2)
	assert.Equal(t, 37.5, s.AvgTemp)
	assert.Equal(t, 2, s.AlertsByKind[models.AlertKindHR])
	assert.Equal(t, 1, s.AlertsByKind[models.AlertKindSpO2])
	assert.Equal(t, 1, s.AlertsByKind[models.AlertKindTemp])
}

func TestSummaryPropagatesErrors(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, monitor, ms := GetMockMonitorWithMemorySqliteDialector(t, mockOpts{Observation: true})
	defer ctrl.Finish()

	ms.Observation.EXPECT().ListObservations("P001").Return(nil, errors.New("disk gone")).Times(1)

	_, err := monitor.Report.Summary("P001")
	require.ErrorContains(t, err, "disk gone")
}

func TestSeriesUsesCurrentThresholds(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, monitor, _ := GetMockMonitorWithMemorySqliteDialector(t, mockOpts{})
	defer ctrl.Finish()

	patientID := uuid.NewString()
	start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	_, err := monitor.Observation.ImportObservations(patientID, "Bed 9", []models.Reading{
		{Time: start, HR: 105, SpO2: 97, Temp: 36.9},
		{Time: start.Add(time.Minute), HR: 90, SpO2: 97, Temp: 36.9},
	})
	require.NoError(t, err)

	// lower the HR bound after the fact; the chart reflects the new bound
	require.NoError(t, monitor.Threshold.UpsertThreshold(patientID, &models.Threshold{
		HRHigh: 100, SpO2Low: 90, TempHigh: 38,
	}))

	points, err := monitor.Report.Series(patientID)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.True(t, points[0].HRAlert)
	assert.Equal(t, models.ObservationStatusNormal, points[0].Status)
	assert.False(t, points[1].HRAlert)
}
