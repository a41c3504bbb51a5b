package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/common"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/csvio"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/models"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/report"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/rules"
)

// analysis is the offline counterpart of an import: nothing is stored.
type analysis struct {
	Summary  models.KPISummary
	Alerts   []models.Alert
	Rejected []models.RowRejection
}

func analyzeReadings(r io.Reader, patientID string, thr models.Threshold) (*analysis, error) {
	readings, rejected, err := csvio.ParseReadings(r)
	if err != nil {
		return nil, err
	}

	thr.PatientID = patientID
	observations := make([]models.Observation, 0, len(readings))
	var alerts []models.Alert
	for i, reading := range readings {
		observation := reading.Observation(patientID)
		observation.ID = uint(i + 1)
		status, raised := rules.Evaluate(observation, thr)
		observation.Status = status
		observations = append(observations, observation)
		for _, alert := range raised {
			alert.ID = uint(len(alerts) + 1)
			alerts = append(alerts, alert)
		}
	}

	return &analysis{
		Summary:  report.Summarize(patientID, observations, alerts),
		Alerts:   alerts,
		Rejected: rejected,
	}, nil
}

func printAnalysis(w io.Writer, a *analysis) {
	s := a.Summary
	fmt.Fprintf(w, "Patient %s\n", s.PatientID)
	fmt.Fprintf(w, "[STATS] Total rows: %d\n", s.TotalRecords)
	fmt.Fprintf(w, "[STATS] Alert rows: %d\n", s.AlertRecords)
	fmt.Fprintf(w, "[STATS] Total alerts: %d\n", s.TotalAlerts)
	fmt.Fprintf(w, "[STATS] Avg HR: %v bpm, Avg SpO2: %v %%, Avg Temp: %v C\n", s.AvgHR, s.AvgSpO2, s.AvgTemp)
	for _, kind := range models.AlertKinds {
		fmt.Fprintf(w, "  %-5s %d\n", kind, s.AlertsByKind[kind])
	}
	if len(a.Rejected) > 0 {
		fmt.Fprintf(w, "[WARN] Rejected rows: %d\n", len(a.Rejected))
		for _, r := range a.Rejected {
			fmt.Fprintf(w, "  line %d: %s\n", r.Line, r.Reason)
		}
	}
}

func writeCSVFile(path string, alerts []models.Alert) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := csvio.WriteAlerts(f, alerts); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func newAnalyzeCmd() *cobra.Command {
	var (
		patientID string
		out       string
		xlsxOut   string
		thr       = models.DefaultThreshold("")
	)

	cmd := &cobra.Command{
		Use:   "analyze <readings.csv>",
		Short: "Evaluate a readings CSV offline and write the alerts it raises",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := common.GetLoggerWith(common.LoggerNameCli)

			if thr.HRHigh <= 0 || thr.SpO2Low <= 0 || thr.SpO2Low > 100 || thr.TempHigh <= 0 {
				return fmt.Errorf("thresholds must be positive and spo2-low at most 100")
			}

			in, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			a, err := analyzeReadings(in, patientID, thr)
			if err != nil {
				return fmt.Errorf("analyze %s: %w", args[0], err)
			}
			logger.Info("Analyzed readings", zap.String("file", args[0]), zap.Reflect("summary", a.Summary))

			w := cmd.OutOrStdout()
			printAnalysis(w, a)

			if out != "" {
				if err := writeCSVFile(out, a.Alerts); err != nil {
					return fmt.Errorf("write %s: %w", out, err)
				}
				fmt.Fprintf(w, "[OK] Alerts saved to %s\n", out)
			}
			if xlsxOut != "" {
				data, err := report.AlertsWorkbook(a.Alerts, &a.Summary)
				if err != nil {
					return err
				}
				if err := os.WriteFile(xlsxOut, data, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", xlsxOut, err)
				}
				fmt.Fprintf(w, "[OK] Workbook saved to %s\n", xlsxOut)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&patientID, "patient", "P001", "patient id stamped on the alerts")
	f.StringVar(&out, "out", "alerts_log.csv", "alerts CSV path, empty to skip")
	f.StringVar(&xlsxOut, "xlsx", "", "alerts workbook path, empty to skip")
	f.Float64Var(&thr.HRHigh, "hr-high", models.DefaultHRHigh, "heart rate upper bound, bpm")
	f.Float64Var(&thr.SpO2Low, "spo2-low", models.DefaultSpO2Low, "SpO2 lower bound, percent")
	f.Float64Var(&thr.TempHigh, "temp-high", models.DefaultTempHigh, "temperature upper bound, C")

	return cmd
}
