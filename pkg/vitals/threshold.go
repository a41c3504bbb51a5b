package vitals

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/common"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/models"
)

func (m *Monitor) upsertThreshold(patientID string, input *models.Threshold) error {
	logger := common.GetCategoryLogger(common.LoggerNameVitalsCore, common.LoggerCategoryVitalsThresh)

	threshold := models.Threshold{
		PatientID: patientID,
		HRHigh:    input.HRHigh,
		SpO2Low:   input.SpO2Low,
		TempHigh:  input.TempHigh,
		UpdatedAt: time.Now().UTC(),
	}

	logger.Info("Received thresholds for patient", zap.Reflect("threshold", threshold))

	err := m.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "patient_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"hr_high", "spo2_low", "temp_high", "updated_at"}),
	}).Create(&threshold).Error
	if err != nil {
		return fmt.Errorf("upsert thresholds for %s: %w", patientID, err)
	}

	logger.Info("Upserted thresholds for patient", zap.Reflect("threshold", threshold))
	*input = threshold
	return nil
}

// getThreshold never fails for a missing row: defaults stand in for it.
func (m *Monitor) getThreshold(patientID string) (*models.Threshold, error) {
	var threshold models.Threshold
	err := m.Db.Conn.First(&threshold, "patient_id = ?", patientID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		def := models.DefaultThreshold(patientID)
		return &def, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get thresholds for %s: %w", patientID, err)
	}
	return &threshold, nil
}

type IThresholdImpl struct {
	monitor *Monitor
}

func (it *IThresholdImpl) UpsertThreshold(patientID string, input *models.Threshold) error {
	return it.monitor.upsertThreshold(patientID, input)
}

func (it *IThresholdImpl) GetThreshold(patientID string) (*models.Threshold, error) {
	return it.monitor.getThreshold(patientID)
}

func (m *Monitor) GetIThreshold() IThreshold {
	return &IThresholdImpl{monitor: m}
}
