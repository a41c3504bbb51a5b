package vitals

//go:generate mockgen -source=vitals.go -destination=mocks/vitals_mock.go -package=mocks

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/db"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/models"
)

const DefaultPatientName = "Demo Patient"

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrPatientExists   = errors.New("patient already exists")
	ErrAlertNotFound   = errors.New("alert not found")
)

type IPatient interface {
	CreatePatient(input *models.Patient) error
	RenamePatient(patientID string, name string) (*models.Patient, error)
	GetPatient(patientID string) (*models.Patient, error)
	ListPatients() ([]models.Patient, error)
	EnsurePatient(patientID string, name string) error
}

type IThreshold interface {
	UpsertThreshold(patientID string, input *models.Threshold) error
	GetThreshold(patientID string) (*models.Threshold, error)
}

type IObservation interface {
	RecordObservation(patientID string, input *models.Observation) (*models.Evaluation, error)
	ImportObservations(patientID string, patientName string, readings []models.Reading) (*models.ImportResult, error)
	ListObservations(patientID string) ([]models.Observation, error)
}

type IAlert interface {
	// StoreAlerts inserts alerts on tx so they commit or roll back with the
	// observation that raised them. A nil tx uses the monitor's connection.
	StoreAlerts(tx *gorm.DB, alerts []models.Alert) error
	ListAlerts(patientID string, filter models.AlertFilter) ([]models.Alert, error)
	GetAlert(alertID uint) (*models.Alert, error)
	AcknowledgeAlert(alertID uint, acknowledgedBy string, note string) (*models.Alert, error)
}

type IReport interface {
	Summary(patientID string) (*models.KPISummary, error)
	Series(patientID string) ([]models.SeriesPoint, error)
}

// Monitor is the persistence layer of the dashboard. Each concern sits
// behind its own interface so transports and tests can swap one of them.
type Monitor struct {
	Db          db.DB
	Patient     IPatient
	Threshold   IThreshold
	Observation IObservation
	Alert       IAlert
	Report      IReport
}

type ServiceOpts struct {
	Patient     IPatient
	Threshold   IThreshold
	Observation IObservation
	Alert       IAlert
	Report      IReport
}

func (m *Monitor) WithServices(opts ServiceOpts) *Monitor {
	if opts.Patient != nil {
		m.Patient = opts.Patient
	}
	if opts.Threshold != nil {
		m.Threshold = opts.Threshold
	}
	if opts.Observation != nil {
		m.Observation = opts.Observation
	}
	if opts.Alert != nil {
		m.Alert = opts.Alert
	}
	if opts.Report != nil {
		m.Report = opts.Report
	}
	return m
}

// WithDefaultServices wires every concern to its database implementation.
func (m *Monitor) WithDefaultServices() *Monitor {
	return m.WithServices(ServiceOpts{
		Patient:     m.GetIPatient(),
		Threshold:   m.GetIThreshold(),
		Observation: m.GetIObservation(),
		Alert:       m.GetIAlert(),
		Report:      m.GetIReport(),
	})
}

// NewMonitor returns a fully wired Monitor over dbInstance.
func NewMonitor(dbInstance *db.DB) *Monitor {
	m := &Monitor{Db: *dbInstance}
	return m.WithDefaultServices()
}
