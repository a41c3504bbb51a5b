package vitals

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/common"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/models"
)

func (m *Monitor) createPatient(input *models.Patient) error {
	logger := common.GetCategoryLogger(common.LoggerNameVitalsCore, common.LoggerCategoryVitalsPatient)

	patient := models.Patient{
		ID:   strings.TrimSpace(input.ID),
		Name: strings.TrimSpace(input.Name),
	}

	var existing int64
	if err := m.Db.Conn.Model(&models.Patient{}).Where("id = ?", patient.ID).Count(&existing).Error; err != nil {
		return fmt.Errorf("look up patient %s: %w", patient.ID, err)
	}
	if existing > 0 {
		return fmt.Errorf("%w: %s", ErrPatientExists, patient.ID)
	}

	if err := m.Db.Conn.Create(&patient).Error; err != nil {
		return fmt.Errorf("insert patient %s: %w", patient.ID, err)
	}

	logger.Info("Created patient", zap.Reflect("patient", patient))
	*input = patient
	return nil
}

func (m *Monitor) renamePatient(patientID string, name string) (*models.Patient, error) {
	logger := common.GetCategoryLogger(common.LoggerNameVitalsCore, common.LoggerCategoryVitalsPatient)

	res := m.Db.Conn.Model(&models.Patient{}).
		Where("id = ?", patientID).
		Update("name", strings.TrimSpace(name))
	if res.Error != nil {
		return nil, fmt.Errorf("rename patient %s: %w", patientID, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: %s", ErrPatientNotFound, patientID)
	}

	patient, err := m.getPatient(patientID)
	if err != nil {
		return nil, err
	}

	logger.Info("Renamed patient", zap.Reflect("patient", patient))
	return patient, nil
}

func (m *Monitor) getPatient(patientID string) (*models.Patient, error) {
	var patient models.Patient
	err := m.Db.Conn.First(&patient, "id = ?", patientID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrPatientNotFound, patientID)
	}
	if err != nil {
		return nil, fmt.Errorf("get patient %s: %w", patientID, err)
	}
	return &patient, nil
}

func (m *Monitor) listPatients() ([]models.Patient, error) {
	patients := []models.Patient{}
	err := m.Db.Conn.Order("id").Find(&patients).Error
	return patients, err
}

// ensurePatient inserts the patient when missing and leaves an existing row
// (including its name) untouched.
func (m *Monitor) ensurePatient(patientID string, name string) error {
	if name == "" {
		name = DefaultPatientName
	}

	patient := models.Patient{ID: patientID, Name: name}
	res := m.Db.Conn.Clauses(clause.OnConflict{DoNothing: true}).Create(&patient)
	if res.Error != nil {
		return fmt.Errorf("ensure patient %s: %w", patientID, res.Error)
	}

	if res.RowsAffected > 0 {
		common.GetCategoryLogger(common.LoggerNameVitalsCore, common.LoggerCategoryVitalsPatient).
			Info("Created patient on import", zap.Reflect("patient", patient))
	}
	return nil
}

type IPatientImpl struct {
	monitor *Monitor
}

func (ip *IPatientImpl) CreatePatient(input *models.Patient) error {
	return ip.monitor.createPatient(input)
}

func (ip *IPatientImpl) RenamePatient(patientID string, name string) (*models.Patient, error) {
	return ip.monitor.renamePatient(patientID, name)
}

func (ip *IPatientImpl) GetPatient(patientID string) (*models.Patient, error) {
	return ip.monitor.getPatient(patientID)
}

func (ip *IPatientImpl) ListPatients() ([]models.Patient, error) {
	return ip.monitor.listPatients()
}

func (ip *IPatientImpl) EnsurePatient(patientID string, name string) error {
	return ip.monitor.ensurePatient(patientID, name)
}

func (m *Monitor) GetIPatient() IPatient {
	return &IPatientImpl{monitor: m}
}
