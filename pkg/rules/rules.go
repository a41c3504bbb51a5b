// Package rules holds the threshold evaluator. It has no dependencies beyond
// the models so that every layer can classify readings the same way.
package rules

import "github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/models"

// Breaches reports which metrics of obs violate thr. All comparisons are
// strict: a reading equal to its bound is normal.
type Breaches struct {
	HR   bool
	SpO2 bool
	Temp bool
}

func (b Breaches) Any() bool {
	return b.HR || b.SpO2 || b.Temp
}

func Check(obs models.Observation, thr models.Threshold) Breaches {
	return Breaches{
		HR:   obs.HR > thr.HRHigh,
		SpO2: obs.SpO2 < thr.SpO2Low,
		Temp: obs.Temp > thr.TempHigh,
	}
}

// Evaluate classifies obs and builds one new alert per breached metric, in
// hr, spo2, temp order. It does not touch obs.
func Evaluate(obs models.Observation, thr models.Threshold) (string, []models.Alert) {
	b := Check(obs, thr)
	if !b.Any() {
		return models.ObservationStatusNormal, nil
	}

	alerts := make([]models.Alert, 0, 3)
	add := func(kind models.AlertKind, value float64) {
		alerts = append(alerts, models.Alert{
			PatientID: obs.PatientID,
			Time:      obs.Time,
			Kind:      kind,
			Value:     value,
			Status:    models.AlertStatusNew,
		})
	}

	if b.HR {
		add(models.AlertKindHR, obs.HR)
	}
	if b.SpO2 {
		add(models.AlertKindSpO2, obs.SpO2)
	}
	if b.Temp {
		add(models.AlertKindTemp, obs.Temp)
	}

	return models.ObservationStatusAlert, alerts
}
