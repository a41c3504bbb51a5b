package grpc

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/common"
)

func patientIDOf(req any) (string, bool) {
	switch r := req.(type) {
	case *structpb.Struct:
		v, ok := r.GetFields()["patient_id"]
		if !ok {
			return "", false
		}
		return v.GetStringValue(), true
	case *wrapperspb.StringValue:
		return r.GetValue(), true
	}
	return "", false
}

func (s *VitalsServer) CreateRateLimitInterceptor(targetMethods []string) grpc.UnaryServerInterceptor {
	targetMethodMap := common.Reducer(targetMethods,
		func(m map[string]bool, method string) map[string]bool {
			m[method] = true
			return m
		},
		map[string]bool{},
	)

	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		if _, ok := targetMethodMap[info.FullMethod]; ok {
			if patientID, ok := patientIDOf(req); ok && !s.CheckPatientLimiter(patientID) {
				common.GetLoggerWith(common.LoggerNameGrpcServer).Info("Rate limit exceeded",
					zap.String("method", info.FullMethod),
					zap.String("patient_id", patientID))
				return nil, status.Errorf(codes.ResourceExhausted, "rate limit exceeded")
			}
		}

		return handler(ctx, req)
	}
}
