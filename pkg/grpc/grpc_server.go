package grpc

import (
	"google.golang.org/grpc"

	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/vitals"
)

type VitalsServer struct {
	Monitor          *vitals.Monitor
	RateLimiterStore *vitals.RateLimiterStore
}

// CheckPatientLimiter reports whether patientID may ingest now. Without a
// store nothing is throttled.
func (s *VitalsServer) CheckPatientLimiter(patientID string) bool {
	if s.RateLimiterStore == nil {
		return true
	}
	return s.RateLimiterStore.Allow(patientID, vitals.TransportGRPC)
}

// IngestMethods are throttled per patient. Limiter overrides and reads are not.
var IngestMethods = []string{
	MethodPostObservation,
	MethodUpdateThresholds,
}

// NewGrpcServer registers s on a fresh grpc.Server with the rate-limit
// interceptor installed for IngestMethods.
func NewGrpcServer(s *VitalsServer, opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.UnaryInterceptor(s.CreateRateLimitInterceptor(IngestMethods)))
	server := grpc.NewServer(opts...)
	RegisterVitalsServiceServer(server, s)
	return server
}
