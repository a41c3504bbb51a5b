package models

import "time"

// Reading is one parsed input row before evaluation.
type Reading struct {
	Time time.Time `json:"time"`
	HR   float64   `json:"hr"`
	SpO2 float64   `json:"spo2"`
	Temp float64   `json:"temp"`
}

func (r Reading) Observation(patientID string) Observation {
	return Observation{
		PatientID: patientID,
		Time:      r.Time,
		HR:        r.HR,
		SpO2:      r.SpO2,
		Temp:      r.Temp,
	}
}

// Evaluation is the outcome of checking one observation against thresholds.
type Evaluation struct {
	Observation Observation `json:"observation"`
	Alerts      []Alert     `json:"alerts"`
}

type AlertFilter struct {
	Kinds  []AlertKind
	Status string
}

type RowRejection struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

type ImportResult struct {
	PatientID string         `json:"patient_id"`
	Imported  int            `json:"imported"`
	Alerts    int            `json:"alerts"`
	Rejected  []RowRejection `json:"rejected"`
}

type KPISummary struct {
	PatientID    string            `json:"patient_id"`
	TotalRecords int               `json:"total_records"`
	AlertRecords int               `json:"alert_records"`
	TotalAlerts  int               `json:"total_alerts"`
	OpenAlerts   int               `json:"open_alerts"`
	AvgHR        float64           `json:"avg_hr_bpm"`
	AvgSpO2      float64           `json:"avg_spo2_pct"`
	AvgTemp      float64           `json:"avg_temp_c"`
	AlertsByKind map[AlertKind]int `json:"alerts_by_kind"`
}

type SeriesPoint struct {
	Time      time.Time `json:"time"`
	HR        float64   `json:"hr"`
	SpO2      float64   `json:"spo2"`
	Temp      float64   `json:"temp"`
	Status    string    `json:"status"`
	HRAlert   bool      `json:"hr_alert"`
	SpO2Alert bool      `json:"spo2_alert"`
	TempAlert bool      `json:"temp_alert"`
}
