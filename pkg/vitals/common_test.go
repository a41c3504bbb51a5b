package vitals

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/db"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/vitals/mocks"
)

type mockSet struct {
	Patient     *mocks.MockIPatient
	Threshold   *mocks.MockIThreshold
	Observation *mocks.MockIObservation
	Alert       *mocks.MockIAlert
	Report      *mocks.MockIReport
}

// mockOpts picks which concerns are replaced by mocks; the rest use the
// shared in-memory database.
type mockOpts struct {
	Patient     bool
	Threshold   bool
	Observation bool
	Alert       bool
	Report      bool
}

func GetMockMonitorWithMemorySqliteDialector(t *testing.T, opts mockOpts) (*gomock.Controller, *Monitor, mockSet) {
	ctrl := gomock.NewController(t)

	ms := mockSet{
		Patient:     mocks.NewMockIPatient(ctrl),
		Threshold:   mocks.NewMockIThreshold(ctrl),
		Observation: mocks.NewMockIObservation(ctrl),
		Alert:       mocks.NewMockIAlert(ctrl),
		Report:      mocks.NewMockIReport(ctrl),
	}

	dbInstance := db.GetInstance(db.UseMemorySqliteDialector())
	monitor := NewMonitor(dbInstance)

	services := ServiceOpts{}
	if opts.Patient {
		services.Patient = ms.Patient
	}
	if opts.Threshold {
		services.Threshold = ms.Threshold
	}
	if opts.Observation {
		services.Observation = ms.Observation
	}
	if opts.Alert {
		services.Alert = ms.Alert
	}
	if opts.Report {
		services.Report = ms.Report
	}
	monitor.WithServices(services)

	return ctrl, monitor, ms
}

func ParseLogs(r io.Reader) []map[string]any {
	scanner := bufio.NewScanner(r)
	var logs []map[string]any

	for scanner.Scan() {
		var j map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}

func findLog(logs []map[string]any, match func(map[string]any) bool) bool {
	for _, l := range logs {
		if match(l) {
			return true
		}
	}
	return false
}
