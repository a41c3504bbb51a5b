// Package report turns stored observations and alerts into the figures the
// dashboard shows: KPI summary, chart series and spreadsheet exports.
package report

import (
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/common"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/models"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/rules"
)

func Summarize(patientID string, observations []models.Observation, alerts []models.Alert) models.KPISummary {
	summary := models.KPISummary{
		PatientID:    patientID,
		TotalRecords: len(observations),
		TotalAlerts:  len(alerts),
		AlertsByKind: map[models.AlertKind]int{},
	}
	for _, kind := range models.AlertKinds {
		summary.AlertsByKind[kind] = 0
	}

	if len(observations) > 0 {
		var hr, spo2, temp float64
		for _, o := range observations {
			hr += o.HR
			spo2 += o.SpO2
			temp += o.Temp
			if o.Status == models.ObservationStatusAlert {
				summary.AlertRecords++
			}
		}
		n := float64(len(observations))
		summary.AvgHR = common.Round1(hr / n)
		summary.AvgSpO2 = common.Round1(spo2 / n)
		summary.AvgTemp = common.Round1(temp / n)
	}

	for _, a := range alerts {
		summary.AlertsByKind[a.Kind]++
		if a.Status == models.AlertStatusNew {
			summary.OpenAlerts++
		}
	}

	return summary
}

// Series flags each point with the metrics that breach thr, so a chart can
// highlight them. Input order is preserved.
func Series(observations []models.Observation, thr models.Threshold) []models.SeriesPoint {
	return common.Mapper(observations, func(o models.Observation) models.SeriesPoint {
		b := rules.Check(o, thr)
		return models.SeriesPoint{
			Time:      o.Time,
			HR:        o.HR,
			SpO2:      o.SpO2,
			Temp:      o.Temp,
			Status:    o.Status,
			HRAlert:   b.HR,
			SpO2Alert: b.SpO2,
			TempAlert: b.Temp,
		}
	})
}
