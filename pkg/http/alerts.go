package http

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/csvio"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/models"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/report"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// alertFilter reads ?kind=hr&kind=spo2 (or kind=hr,spo2) and ?status=.
func alertFilter(c *gin.Context) (models.AlertFilter, error) {
	var filter models.AlertFilter
	for _, raw := range c.QueryArray("kind") {
		for _, k := range strings.Split(raw, ",") {
			kind := models.AlertKind(strings.ToLower(strings.TrimSpace(k)))
			if kind == "" {
				continue
			}
			if !kind.Valid() {
				return filter, fmt.Errorf("unknown alert kind %q", k)
			}
			filter.Kinds = append(filter.Kinds, kind)
		}
	}

	switch status := c.Query("status"); status {
	case "", models.AlertStatusNew, models.AlertStatusAcknowledged:
		filter.Status = status
	default:
		return filter, fmt.Errorf("unknown alert status %q", status)
	}
	return filter, nil
}

func (rs *RestfulServer) GetAlerts(c *gin.Context) {
	filter, err := alertFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alerts, err := rs.Monitor.Alert.ListAlerts(c.Param("patient_id"), filter)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

func (rs *RestfulServer) ExportAlertsCSV(c *gin.Context) {
	patientID := c.Param("patient_id")

	filter, err := alertFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	alerts, err := rs.Monitor.Alert.ListAlerts(patientID, filter)
	if err != nil {
		fail(c, err)
		return
	}

	var buf bytes.Buffer
	if err := csvio.WriteAlerts(&buf, alerts); err != nil {
		fail(c, err)
		return
	}
	attachment(c, "alerts_"+patientID+".csv")
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (rs *RestfulServer) ExportAlertsXLSX(c *gin.Context) {
	patientID := c.Param("patient_id")

	filter, err := alertFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	alerts, err := rs.Monitor.Alert.ListAlerts(patientID, filter)
	if err != nil {
		fail(c, err)
		return
	}
	summary, err := rs.Monitor.Report.Summary(patientID)
	if err != nil {
		fail(c, err)
		return
	}

	data, err := report.AlertsWorkbook(alerts, summary)
	if err != nil {
		fail(c, err)
		return
	}
	attachment(c, "alerts_"+patientID+".xlsx")
	c.Data(http.StatusOK, contentTypeXLSX, data)
}

type AckRequest struct {
	AcknowledgedBy string `json:"acknowledged_by"`
	Note           string `json:"note"`
}

var ackRequestSchema = z.Struct(z.Shape{
	"AcknowledgedBy": z.String().Trim().Min(1).Required(),
	"Note":           z.String().Trim(),
})

func (rs *RestfulServer) AcknowledgeAlert(c *gin.Context) {
	alertID, err := strconv.ParseUint(c.Param("alert_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "alert_id must be a positive integer"})
		return
	}

	var req AckRequest
	if err := ackRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	alert, err := rs.Monitor.Alert.AcknowledgeAlert(uint(alertID), req.AcknowledgedBy, req.Note)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

func attachment(c *gin.Context, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
}
