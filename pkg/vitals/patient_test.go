package vitals

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/common"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/models"
	_ "github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/testing"
)

func TestCreateAndGetPatient(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, monitor, _ := GetMockMonitorWithMemorySqliteDialector(t, mockOpts{})
	defer ctrl.Finish()

	patientID := uuid.NewString()
	input := &models.Patient{ID: " " + patientID + " ", Name: "  Asha Verma "}
	require.NoError(t, monitor.Patient.CreatePatient(input))
	assert.Equal(t, patientID, input.ID)
	assert.Equal(t, "Asha Verma", input.Name)

	got, err := monitor.Patient.GetPatient(patientID)
	require.NoError(t, err)
	assert.Equal(t, "Asha Verma", got.Name)

	err = monitor.Patient.CreatePatient(&models.Patient{ID: patientID, Name: "Other"})
	assert.ErrorIs(t, err, ErrPatientExists)
}

func TestGetPatientNotFound(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, monitor, _ := GetMockMonitorWithMemorySqliteDialector(t, mockOpts{})
	defer ctrl.Finish()

	_, err := monitor.Patient.GetPatient(uuid.NewString())
	assert.ErrorIs(t, err, ErrPatientNotFound)

	_, err = monitor.Patient.RenamePatient(uuid.NewString(), "Nobody")
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestRenamePatient(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, monitor, _ := GetMockMonitorWithMemorySqliteDialector(t, mockOpts{})
	defer ctrl.Finish()

	patientID := uuid.NewString()
	require.NoError(t, monitor.Patient.CreatePatient(&models.Patient{ID: patientID, Name: "Before"}))

	renamed, err := monitor.Patient.RenamePatient(patientID, "After")
	require.NoError(t, err)
	assert.Equal(t, patientID, renamed.ID)
	assert.Equal(t, "After", renamed.Name)
}

func TestListPatientsOrdered(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, monitor, _ := GetMockMonitorWithMemorySqliteDialector(t, mockOpts{})
	defer ctrl.Finish()

	prefix := uuid.NewString()
	for _, suffix := range []string{"-c", "-a", "-b"} {
		require.NoError(t, monitor.Patient.CreatePatient(&models.Patient{ID: prefix + suffix, Name: suffix}))
	}

	patients, err := monitor.Patient.ListPatients()
	require.NoError(t, err)

	var ours []string
	for _, p := range patients {
		if len(p.ID) > len(prefix) && p.ID[:len(prefix)] == prefix {
			ours = append(ours, p.ID)
		}
	}
	assert.Equal(t, []string{prefix + "-a", prefix + "-b", prefix + "-c"}, ours)
}

func TestEnsurePatientKeepsExistingName(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, monitor, _ := GetMockMonitorWithMemorySqliteDialector(t, mockOpts{})
	defer ctrl.Finish()

	fresh := uuid.NewString()
	require.NoError(t, monitor.Patient.EnsurePatient(fresh, ""))
	got, err := monitor.Patient.GetPatient(fresh)
	require.NoError(t, err)
	assert.Equal(t, DefaultPatientName, got.Name)

	existing := uuid.NewString()
	require.NoError(t, monitor.Patient.CreatePatient(&models.Patient{ID: existing, Name: "Ravi"}))
	require.NoError(t, monitor.Patient.EnsurePatient(existing, "Overwritten"))
	got, err = monitor.Patient.GetPatient(existing)
	require.NoError(t, err)
	assert.Equal(t, "Ravi", got.Name)
}
