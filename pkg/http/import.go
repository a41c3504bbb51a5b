package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/common"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/csvio"
)

// maxImportBytes bounds a single upload.
const maxImportBytes = 16 << 20

// ImportObservations accepts either a multipart form with a "file" field or
// the CSV as the raw request body. The optional "name" is used only when the
// patient does not exist yet.
func (rs *RestfulServer) ImportObservations(c *gin.Context) {
	patientID := c.Param("patient_id")
	logger := common.GetLoggerWith(common.LoggerNameRestfulServer,
		zap.String(common.LoggerFieldVitalsCategory, common.LoggerCategoryVitalsImport))

	if !rs.CheckPatientLimiter(patientID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportBytes)

	var src io.Reader
	name := strings.TrimSpace(c.Query("name"))
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fileHeader, err := c.FormFile("file")
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			fail(c, err)
			return
		}
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "multipart upload needs a \"file\" field"})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			fail(c, err)
			return
		}
		defer file.Close()
		src = file
		if name == "" {
			name = strings.TrimSpace(c.PostForm("name"))
		}
	} else {
		src = c.Request.Body
	}

	readings, rejected, err := csvio.ParseReadings(src)
	if err != nil {
		logger.Info("Rejected csv upload", zap.String("patient_id", patientID), zap.Error(err))
		fail(c, err)
		return
	}

	result, err := rs.Monitor.Observation.ImportObservations(patientID, name, readings)
	if err != nil {
		fail(c, err)
		return
	}
	result.Rejected = rejected

	c.JSON(http.StatusOK, result)
}
