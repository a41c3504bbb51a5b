package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/common"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/csvio"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/metrics"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/vitals"
)

const HeaderRequestID = "X-Request-ID"

type RestfulServer struct {
	Server           *gin.Engine
	Monitor          *vitals.Monitor
	RateLimiterStore *vitals.RateLimiterStore
}

func (rs *RestfulServer) CheckPatientLimiter(patientID string) bool {
	if rs.RateLimiterStore == nil {
		return true
	}
	return rs.RateLimiterStore.Allow(patientID, vitals.TransportHTTP)
}

func (rs *RestfulServer) SetLimiter(patientID string, patientRate float64, patientBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(patientID, rate.Limit(patientRate), patientBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.Use(requestID(), observe())

	rs.Server.GET("/", rs.Dashboard)
	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rs.Server.GET("/patients", rs.ListPatients)
	rs.Server.POST("/patients", rs.CreatePatient)

	patients := rs.Server.Group("/patients/:patient_id")
	{
		patients.GET("", rs.GetPatient)
		patients.PUT("", rs.RenamePatient)

		patients.GET("/thresholds", rs.GetThresholds)
		patients.PUT("/thresholds", rs.UpdateThresholds)

		patients.GET("/observations", rs.ListObservations)
		patients.POST("/observations", rs.PostObservation)
		patients.POST("/observations/import", rs.ImportObservations)

		patients.GET("/alerts", rs.GetAlerts)
		patients.GET("/alerts/export.csv", rs.ExportAlertsCSV)
		patients.GET("/alerts/export.xlsx", rs.ExportAlertsXLSX)

		patients.GET("/kpis", rs.GetKPIs)
		patients.GET("/kpis.csv", rs.ExportKPIsCSV)
		patients.GET("/series", rs.GetSeries)

		patients.POST("/limiter", rs.PostLimiter)
	}

	rs.Server.POST("/alerts/:alert_id/ack", rs.AcknowledgeAlert)
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

func observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// fail maps service errors onto status codes. Anything unrecognised is a 500.
func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, vitals.ErrPatientNotFound), errors.Is(err, vitals.ErrAlertNotFound):
		status = http.StatusNotFound
	case errors.Is(err, vitals.ErrPatientExists):
		status = http.StatusConflict
	case errors.Is(err, csvio.ErrMissingColumns):
		status = http.StatusBadRequest
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		status = http.StatusRequestEntityTooLarge
	}

	if status == http.StatusInternalServerError {
		common.GetLoggerWith(common.LoggerNameRestfulServer).Error("Request failed",
			zap.String("request_id", c.GetString("request_id")),
			zap.String("route", c.FullPath()),
			zap.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
