package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/models"
)

type PatientRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var patientRequestSchema = z.Struct(z.Shape{
	"ID":   z.String().Trim().Min(1).Required(),
	"Name": z.String().Trim().Min(1).Required(),
})

type RenameRequest struct {
	Name string `json:"name"`
}

var renameRequestSchema = z.Struct(z.Shape{
	"Name": z.String().Trim().Min(1).Required(),
})

func (rs *RestfulServer) ListPatients(c *gin.Context) {
	patients, err := rs.Monitor.Patient.ListPatients()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

func (rs *RestfulServer) CreatePatient(c *gin.Context) {
	var req PatientRequest
	if err := patientRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	patient := models.Patient{ID: req.ID, Name: req.Name}
	if err := rs.Monitor.Patient.CreatePatient(&patient); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, patient)
}

func (rs *RestfulServer) GetPatient(c *gin.Context) {
	patient, err := rs.Monitor.Patient.GetPatient(c.Param("patient_id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

func (rs *RestfulServer) RenamePatient(c *gin.Context) {
	var req RenameRequest
	if err := renameRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	patient, err := rs.Monitor.Patient.RenamePatient(c.Param("patient_id"), req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

type ThresholdRequest struct {
	HRHigh   float64 `json:"hr_high"`
	SpO2Low  float64 `json:"spo2_low"`
	TempHigh float64 `json:"temp_high"`
}

var thresholdRequestSchema = z.Struct(z.Shape{
	"HRHigh":   z.Float64().GT(0).Required(),
	"SpO2Low":  z.Float64().GT(0).LTE(100).Required(),
	"TempHigh": z.Float64().GT(0).Required(),
})

type ThresholdResponse struct {
	models.Threshold
	IsDefault bool `json:"is_default"`
}

func (rs *RestfulServer) GetThresholds(c *gin.Context) {
	threshold, err := rs.Monitor.Threshold.GetThreshold(c.Param("patient_id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ThresholdResponse{Threshold: *threshold, IsDefault: threshold.IsDefault()})
}

func (rs *RestfulServer) UpdateThresholds(c *gin.Context) {
	patientID := c.Param("patient_id")

	var req ThresholdRequest
	if err := thresholdRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	threshold := models.Threshold{
		HRHigh:   req.HRHigh,
		SpO2Low:  req.SpO2Low,
		TempHigh: req.TempHigh,
	}
	if err := rs.Monitor.Threshold.UpsertThreshold(patientID, &threshold); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ThresholdResponse{Threshold: threshold})
}

type ObservationRequest struct {
	Time time.Time `json:"time"`
	HR   float64   `json:"hr"`
	SpO2 float64   `json:"spo2"`
	Temp float64   `json:"temp"`
}

// time is optional: the server clock stands in for it.
var observationRequestSchema = z.Struct(z.Shape{
	"Time": z.Time(),
	"HR":   z.Float64().GT(0).Required(),
	"SpO2": z.Float64().GT(0).Required(),
	"Temp": z.Float64().GT(0).Required(),
})

func (rs *RestfulServer) PostObservation(c *gin.Context) {
	patientID := c.Param("patient_id")

	if !rs.CheckPatientLimiter(patientID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req ObservationRequest
	if err := observationRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	evaluation, err := rs.Monitor.Observation.RecordObservation(patientID, &models.Observation{
		Time: req.Time.UTC(),
		HR:   req.HR,
		SpO2: req.SpO2,
		Temp: req.Temp,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, evaluation)
}

func (rs *RestfulServer) ListObservations(c *gin.Context) {
	observations, err := rs.Monitor.Observation.ListObservations(c.Param("patient_id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, observations)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"Rate":  z.Float64().GT(0).Required(),
	"Burst": z.Int().GTE(1).Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	patientID := c.Param("patient_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(patientID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
