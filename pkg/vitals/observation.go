package vitals

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/common"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/metrics"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/models"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/rules"
)

const importBatchSize = 200

func (m *Monitor) recordObservation(patientID string, input *models.Observation) (*models.Evaluation, error) {
	logger := common.GetCategoryLogger(common.LoggerNameVitalsCore, common.LoggerCategoryVitalsObserve)

	if m.Threshold == nil {
		return nil, fmt.Errorf("threshold service not available")
	}
	if m.Alert == nil {
		return nil, fmt.Errorf("alert service not available")
	}

	observation := models.Observation{
		PatientID: patientID,
		Time:      input.Time,
		HR:        input.HR,
		SpO2:      input.SpO2,
		Temp:      input.Temp,
	}
	if observation.Time.IsZero() {
		observation.Time = time.Now().UTC()
	}

	threshold, err := m.Threshold.GetThreshold(patientID)
	if err != nil {
		return nil, err
	}

	status, alerts := rules.Evaluate(observation, *threshold)
	observation.Status = status

	logger.Info("Received observation for patient", zap.Reflect("observation", observation))

	err = m.Db.Conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&observation).Error; err != nil {
			return fmt.Errorf("insert observation for %s: %w", patientID, err)
		}
		if len(alerts) > 0 {
			return m.Alert.StoreAlerts(tx, alerts)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.ObservationsTotal.WithLabelValues(status).Inc()

	logger.Info("Stored observation for patient", zap.Uint("id", observation.ID), zap.String("status", status))

	return &models.Evaluation{Observation: observation, Alerts: alerts}, nil
}

// importObservations evaluates every reading against the patient's current
// thresholds and writes observations and alerts in a single transaction.
func (m *Monitor) importObservations(patientID string, patientName string, readings []models.Reading) (*models.ImportResult, error) {
	logger := common.GetCategoryLogger(common.LoggerNameVitalsCore, common.LoggerCategoryVitalsImport)

	if m.Patient == nil || m.Threshold == nil {
		return nil, fmt.Errorf("patient or threshold service not available")
	}

	if err := m.Patient.EnsurePatient(patientID, patientName); err != nil {
		return nil, err
	}

	threshold, err := m.Threshold.GetThreshold(patientID)
	if err != nil {
		return nil, err
	}

	observations := make([]models.Observation, 0, len(readings))
	var alerts []models.Alert
	for _, reading := range readings {
		observation := reading.Observation(patientID)
		status, raised := rules.Evaluate(observation, *threshold)
		observation.Status = status
		observations = append(observations, observation)
		alerts = append(alerts, raised...)
	}

	err = m.Db.Conn.Transaction(func(tx *gorm.DB) error {
		if len(observations) > 0 {
			if err := tx.CreateInBatches(&observations, importBatchSize).Error; err != nil {
				return fmt.Errorf("insert observations: %w", err)
			}
		}
		if len(alerts) > 0 {
			if err := tx.CreateInBatches(&alerts, importBatchSize).Error; err != nil {
				return fmt.Errorf("insert alerts: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("import for %s: %w", patientID, err)
	}

	for _, observation := range observations {
		metrics.ObservationsTotal.WithLabelValues(observation.Status).Inc()
	}
	for _, alert := range alerts {
		metrics.AlertsRaisedTotal.WithLabelValues(string(alert.Kind)).Inc()
	}

	result := &models.ImportResult{
		PatientID: patientID,
		Imported:  len(observations),
		Alerts:    len(alerts),
		Rejected:  []models.RowRejection{},
	}

	logger.Info("Imported observations for patient", zap.Reflect("result", result))
	return result, nil
}

func (m *Monitor) listObservations(patientID string) ([]models.Observation, error) {
	observations := []models.Observation{}
	err := m.Db.Conn.
		Where("patient_id = ?", patientID).
		Order("time asc, id asc").
		Find(&observations).Error
	return observations, err
}

type IObservationImpl struct {
	monitor *Monitor
}

func (ib *IObservationImpl) RecordObservation(patientID string, input *models.Observation) (*models.Evaluation, error) {
	return ib.monitor.recordObservation(patientID, input)
}

func (ib *IObservationImpl) ImportObservations(patientID string, patientName string, readings []models.Reading) (*models.ImportResult, error) {
	return ib.monitor.importObservations(patientID, patientName, readings)
}

func (ib *IObservationImpl) ListObservations(patientID string) ([]models.Observation, error) {
	return ib.monitor.listObservations(patientID)
}

func (m *Monitor) GetIObservation() IObservation {
	return &IObservationImpl{monitor: m}
}
