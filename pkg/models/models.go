package models

import "time"

type AlertKind string

const (
	AlertKindHR   AlertKind = "hr"
	AlertKindSpO2 AlertKind = "spo2"
	AlertKindTemp AlertKind = "temp"
)

var AlertKinds = []AlertKind{AlertKindHR, AlertKindSpO2, AlertKindTemp}

func (k AlertKind) Valid() bool {
	switch k {
	case AlertKindHR, AlertKindSpO2, AlertKindTemp:
		return true
	}
	return false
}

const (
	ObservationStatusNormal = "normal"
	ObservationStatusAlert  = "alert"

	AlertStatusNew          = "new"
	AlertStatusAcknowledged = "acknowledged"
)

// Defaults applied when a patient has no thresholds row.
const (
	DefaultHRHigh   = 120.0
	DefaultSpO2Low  = 90.0
	DefaultTempHigh = 38.0
)

type Patient struct {
	ID   string `gorm:"column:id;primaryKey" json:"id"`
	Name string `gorm:"column:name" json:"name"`
}

type Threshold struct {
	PatientID string    `gorm:"column:patient_id;primaryKey" json:"patient_id"`
	HRHigh    float64   `gorm:"column:hr_high" json:"hr_high"`
	SpO2Low   float64   `gorm:"column:spo2_low" json:"spo2_low"`
	TempHigh  float64   `gorm:"column:temp_high" json:"temp_high"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// DefaultThreshold returns the bounds used for a patient without a stored
// row. UpdatedAt stays zero so callers can tell the two apart.
func DefaultThreshold(patientID string) Threshold {
	return Threshold{
		PatientID: patientID,
		HRHigh:    DefaultHRHigh,
		SpO2Low:   DefaultSpO2Low,
		TempHigh:  DefaultTempHigh,
	}
}

func (t Threshold) IsDefault() bool {
	return t.UpdatedAt.IsZero()
}

type Observation struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PatientID string    `gorm:"column:patient_id;index" json:"patient_id"`
	Time      time.Time `gorm:"column:time;index" json:"time"`
	HR        float64   `gorm:"column:hr" json:"hr"`
	SpO2      float64   `gorm:"column:spo2" json:"spo2"`
	Temp      float64   `gorm:"column:temp" json:"temp"`
	Status    string    `gorm:"column:status" json:"status"`
}

type Alert struct {
	ID             uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PatientID      string     `gorm:"column:patient_id;index" json:"patient_id"`
	Time           time.Time  `gorm:"column:time" json:"time"`
	Kind           AlertKind  `gorm:"column:kind" json:"kind"`
	Value          float64    `gorm:"column:value" json:"value"`
	Status         string     `gorm:"column:status;default:new" json:"status"`
	AcknowledgedBy *string    `gorm:"column:acknowledged_by" json:"acknowledged_by"`
	AckTime        *time.Time `gorm:"column:ack_time" json:"ack_time"`
	Note           *string    `gorm:"column:note" json:"note"`
}

// AllModels lists the four tables in migration order.
func AllModels() []any {
	return []any{&Patient{}, &Threshold{}, &Observation{}, &Alert{}}
}
