package vitals

import (
	"sync"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/common"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/metrics"
)

// Transport labels for rate-limited requests.
const (
	TransportHTTP = "http"
	TransportGRPC = "grpc"
)

// RateLimiterStore throttles ingest per patient. A single store is meant to
// be shared by every transport, so a patient has one token bucket whichever
// endpoint it posts to and an override applies everywhere.
type RateLimiterStore struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	perSec  rate.Limit
	burst   int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		buckets: map[string]*rate.Limiter{},
		perSec:  defaultRate,
		burst:   defaultBurst,
	}
}

// GetLimiter returns the patient's bucket, creating it with the store
// defaults on first use.
func (s *RateLimiterStore) GetLimiter(patientID string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if bucket, ok := s.buckets[patientID]; ok {
		return bucket
	}
	bucket := rate.NewLimiter(s.perSec, s.burst)
	s.buckets[patientID] = bucket
	return bucket
}

// SetLimiter replaces the patient's bucket, dropping any tokens already spent.
func (s *RateLimiterStore) SetLimiter(patientID string, patientRate rate.Limit, patientBurst int) {
	s.mu.Lock()
	s.buckets[patientID] = rate.NewLimiter(patientRate, patientBurst)
	s.mu.Unlock()

	common.GetCategoryLogger(common.LoggerNameVitalsCore, common.LoggerCategoryVitalsLimit).
		Info("Limiter overridden for patient",
			zap.String("patient_id", patientID),
			zap.Float64("rate", float64(patientRate)),
			zap.Int("burst", patientBurst))
}

// Allow spends one token of the patient's bucket. A refusal is counted under
// transport.
func (s *RateLimiterStore) Allow(patientID string, transport string) bool {
	if s.GetLimiter(patientID).Allow() {
		return true
	}

	metrics.RateLimitedTotal.WithLabelValues(transport).Inc()
	common.GetCategoryLogger(common.LoggerNameVitalsCore, common.LoggerCategoryVitalsLimit).
		Debug("Ingest rate limited", zap.String("patient_id", patientID), zap.String("transport", transport))
	return false
}
