package vitals

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/common"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/metrics"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/models"
)

func (m *Monitor) storeAlerts(tx *gorm.DB, alerts []models.Alert) error {
	if tx == nil {
		tx = m.Db.Conn
	}
	logger := common.GetCategoryLogger(common.LoggerNameVitalsCore, common.LoggerCategoryVitalsAlert)

	for i := range alerts {
		if alerts[i].Status == "" {
			alerts[i].Status = models.AlertStatusNew
		}
		logger.Info("Alert found", zap.Reflect("alert", alerts[i]))
	}

	if err := tx.Create(&alerts).Error; err != nil {
		return fmt.Errorf("insert alerts: %w", err)
	}

	for _, alert := range alerts {
		metrics.AlertsRaisedTotal.WithLabelValues(string(alert.Kind)).Inc()
		logger.Info("Alert saved", zap.Reflect("alert", alert))
	}
	return nil
}

func (m *Monitor) listAlerts(patientID string, filter models.AlertFilter) ([]models.Alert, error) {
	alerts := []models.Alert{}

	query := m.Db.Conn.Where("patient_id = ?", patientID)
	if len(filter.Kinds) > 0 {
		query = query.Where("kind IN ?", filter.Kinds)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	err := query.Order("time desc, id desc").Find(&alerts).Error
	return alerts, err
}

func (m *Monitor) getAlert(alertID uint) (*models.Alert, error) {
	var alert models.Alert
	err := m.Db.Conn.First(&alert, alertID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %d", ErrAlertNotFound, alertID)
	}
	if err != nil {
		return nil, fmt.Errorf("get alert %d: %w", alertID, err)
	}
	return &alert, nil
}

// acknowledgeAlert is the only transition an alert has. Repeating it leaves
// the first acknowledgement in place.
func (m *Monitor) acknowledgeAlert(alertID uint, acknowledgedBy string, note string) (*models.Alert, error) {
	logger := common.GetCategoryLogger(common.LoggerNameVitalsCore, common.LoggerCategoryVitalsAlert)

	alert, err := m.getAlert(alertID)
	if err != nil {
		return nil, err
	}

	if alert.Status == models.AlertStatusAcknowledged {
		logger.Info("Alert already acknowledged", zap.Uint("id", alertID))
		return alert, nil
	}

	var noteValue any
	if note = strings.TrimSpace(note); note != "" {
		noteValue = note
	}

	err = m.Db.Conn.Model(&models.Alert{}).
		Where("id = ? AND status <> ?", alertID, models.AlertStatusAcknowledged).
		Updates(map[string]any{
			"status":          models.AlertStatusAcknowledged,
			"acknowledged_by": strings.TrimSpace(acknowledgedBy),
			"ack_time":        time.Now().UTC(),
			"note":            noteValue,
		}).Error
	if err != nil {
		return nil, fmt.Errorf("acknowledge alert %d: %w", alertID, err)
	}
	metrics.AlertsAcknowledgedTotal.Inc()

	alert, err = m.getAlert(alertID)
	if err != nil {
		return nil, err
	}

	logger.Info("Alert acknowledged", zap.Reflect("alert", alert))
	return alert, nil
}

type IAlertImpl struct {
	monitor *Monitor
}

func (ia *IAlertImpl) StoreAlerts(tx *gorm.DB, alerts []models.Alert) error {
	return ia.monitor.storeAlerts(tx, alerts)
}

func (ia *IAlertImpl) ListAlerts(patientID string, filter models.AlertFilter) ([]models.Alert, error) {
	return ia.monitor.listAlerts(patientID, filter)
}

func (ia *IAlertImpl) GetAlert(alertID uint) (*models.Alert, error) {
	return ia.monitor.getAlert(alertID)
}

func (ia *IAlertImpl) AcknowledgeAlert(alertID uint, acknowledgedBy string, note string) (*models.Alert, error) {
	return ia.monitor.acknowledgeAlert(alertID, acknowledgedBy, note)
}

func (m *Monitor) GetIAlert() IAlert {
	return &IAlertImpl{monitor: m}
}
