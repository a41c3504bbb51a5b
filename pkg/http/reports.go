package http

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/csvio"
)

func (rs *RestfulServer) GetKPIs(c *gin.Context) {
	summary, err := rs.Monitor.Report.Summary(c.Param("patient_id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (rs *RestfulServer) ExportKPIsCSV(c *gin.Context) {
	patientID := c.Param("patient_id")

	summary, err := rs.Monitor.Report.Summary(patientID)
	if err != nil {
		fail(c, err)
		return
	}

	var buf bytes.Buffer
	if err := csvio.WriteKPI(&buf, *summary); err != nil {
		fail(c, err)
		return
	}
	attachment(c, "kpis_"+patientID+".csv")
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (rs *RestfulServer) GetSeries(c *gin.Context) {
	points, err := rs.Monitor.Report.Series(c.Param("patient_id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}
