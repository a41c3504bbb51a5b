package vitals

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/common"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/models"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/report"
)

func (m *Monitor) summary(patientID string) (*models.KPISummary, error) {
	logger := common.GetCategoryLogger(common.LoggerNameVitalsCore, common.LoggerCategoryVitalsReport)

	if m.Observation == nil || m.Alert == nil {
		return nil, fmt.Errorf("observation or alert service not available")
	}

	observations, err := m.Observation.ListObservations(patientID)
	if err != nil {
		return nil, fmt.Errorf("list observations for %s: %w", patientID, err)
	}
	alerts, err := m.Alert.ListAlerts(patientID, models.AlertFilter{})
	if err != nil {
		return nil, fmt.Errorf("list alerts for %s: %w", patientID, err)
	}

	summary := report.Summarize(patientID, observations, alerts)
	logger.Debug("Computed KPI summary", zap.Reflect("summary", summary))
	return &summary, nil
}

func (m *Monitor) series(patientID string) ([]models.SeriesPoint, error) {
	if m.Observation == nil || m.Threshold == nil {
		return nil, fmt.Errorf("observation or threshold service not available")
	}

	observations, err := m.Observation.ListObservations(patientID)
	if err != nil {
		return nil, fmt.Errorf("list observations for %s: %w", patientID, err)
	}
	threshold, err := m.Threshold.GetThreshold(patientID)
	if err != nil {
		return nil, err
	}
	return report.Series(observations, *threshold), nil
}

type IReportImpl struct {
	monitor *Monitor
}

func (ir *IReportImpl) Summary(patientID string) (*models.KPISummary, error) {
	return ir.monitor.summary(patientID)
}

func (ir *IReportImpl) Series(patientID string) ([]models.SeriesPoint, error) {
	return ir.monitor.series(patientID)
}

func (m *Monitor) GetIReport() IReport {
	return &IReportImpl{monitor: m}
}
