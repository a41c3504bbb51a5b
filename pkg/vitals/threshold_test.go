package vitals

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/common"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/models"
	_ "github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/testing"
)

func TestGetThresholdDefaults(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, monitor, _ := GetMockMonitorWithMemorySqliteDialector(t, mockOpts{})
	defer ctrl.Finish()

	patientID := uuid.NewString()
	thr, err := monitor.Threshold.GetThreshold(patientID)
	require.NoError(t, err)

	assert.Equal(t, patientID, thr.PatientID)
	assert.Equal(t, 120.0, thr.HRHigh)
	assert.Equal(t, 90.0, thr.SpO2Low)
	assert.Equal(t, 38.0, thr.TempHigh)
	assert.True(t, thr.IsDefault())
}

func TestUpsertThreshold(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, monitor, _ := GetMockMonitorWithMemorySqliteDialector(t, mockOpts{})
	defer ctrl.Finish()

	patientID := uuid.NewString()

	first := &models.Threshold{HRHigh: 110, SpO2Low: 92, TempHigh: 37.5}
	require.NoError(t, monitor.Threshold.UpsertThreshold(patientID, first))
	assert.Equal(t, patientID, first.PatientID)
	assert.False(t, first.UpdatedAt.IsZero())

	second := &models.Threshold{HRHigh: 100, SpO2Low: 94, TempHigh: 37.8}
	require.NoError(t, monitor.Threshold.UpsertThreshold(patientID, second))

	thr, err := monitor.Threshold.GetThreshold(patientID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, thr.HRHigh)
	assert.Equal(t, 94.0, thr.SpO2Low)
	assert.Equal(t, 37.8, thr.TempHigh)
	assert.False(t, thr.IsDefault())

	var rows int64
	require.NoError(t, monitor.Db.Conn.Model(&models.Threshold{}).Where("patient_id = ?", patientID).Count(&rows).Error)
	assert.EqualValues(t, 1, rows)
}
