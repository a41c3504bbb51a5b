package grpc

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/common"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/db"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/vitals"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/vitals/mocks"
	_ "github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/testing"
)

const bufSize = 1024 * 1024

func startTestServerWith(t *testing.T, monitor *vitals.Monitor, limiterStore *vitals.RateLimiterStore) *VitalsServiceClient {
	listener := bufconn.Listen(bufSize)

	server := NewGrpcServer(&VitalsServer{Monitor: monitor, RateLimiterStore: limiterStore})
	go func() {
		_ = server.Serve(listener)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, s string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewVitalsServiceClient(conn)
}

func startTestServer(t *testing.T, limiterStore *vitals.RateLimiterStore) *VitalsServiceClient {
	return startTestServerWith(t, vitals.NewMonitor(db.GetInstance(db.UseMemorySqliteDialector())), limiterStore)
}

func mustStruct(t *testing.T, m map[string]any) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(m)
	require.NoError(t, err)
	return s
}

func requireSuccess(t *testing.T, resp *structpb.Struct) map[string]any {
	t.Helper()
	out := resp.AsMap()
	require.Equal(t, true, out["success"], "message: %v", out["message"])
	return out
}

func TestPostObservationAndGetAlerts(t *testing.T) {
	common.SetTestLoggerNop()
	client := startTestServer(t, nil)
	ctx := context.Background()

	patientID := uuid.NewString()

	resp, err := client.UpdateThresholds(ctx, mustStruct(t, map[string]any{
		"patient_id": patientID,
		"hr_high":    110,
		"spo2_low":   92,
		"temp_high":  37.8,
	}))
	require.NoError(t, err)
	requireSuccess(t, resp)

	resp, err = client.PostObservation(ctx, mustStruct(t, map[string]any{
		"patient_id": patientID,
		"time":       time.Now().UTC().Format(time.RFC3339),
		"hr":         115,
		"spo2":       91,
		"temp":       37.0,
	}))
	require.NoError(t, err)
	out := requireSuccess(t, resp)
	assert.Equal(t, "alert", out["observation"].(map[string]any)["status"])
	assert.Len(t, out["alerts"], 2)

	resp, err = client.GetAlerts(ctx, wrapperspb.String(patientID))
	require.NoError(t, err)
	out = requireSuccess(t, resp)
	alerts := out["alerts"].([]any)
	require.Len(t, alerts, 2)

	kinds := map[string]bool{}
	for _, a := range alerts {
		kinds[a.(map[string]any)["kind"].(string)] = true
	}
	assert.True(t, kinds["hr"])
	assert.True(t, kinds["spo2"])
}

func TestAcknowledgeAlert(t *testing.T) {
	common.SetTestLoggerNop()
	client := startTestServer(t, nil)
	ctx := context.Background()

	patientID := uuid.NewString()
	resp, err := client.PostObservation(ctx, mustStruct(t, map[string]any{
		"patient_id": patientID, "hr": 80, "spo2": 97, "temp": 39.2,
	}))
	require.NoError(t, err)
	out := requireSuccess(t, resp)
	alertID := out["alerts"].([]any)[0].(map[string]any)["id"]

	resp, err = client.AcknowledgeAlert(ctx, mustStruct(t, map[string]any{
		"alert_id": alertID, "acknowledged_by": "dr.sen", "note": "paracetamol given",
	}))
	require.NoError(t, err)
	out = requireSuccess(t, resp)
	alert := out["alert"].(map[string]any)
	assert.Equal(t, "acknowledged", alert["status"])
	assert.Equal(t, "dr.sen", alert["acknowledged_by"])
	assert.Equal(t, "paracetamol given", alert["note"])

	resp, err = client.AcknowledgeAlert(ctx, mustStruct(t, map[string]any{
		"alert_id": 987654321, "acknowledged_by": "dr.sen",
	}))
	require.NoError(t, err)
	out = resp.AsMap()
	assert.Equal(t, false, out["success"])
	assert.Equal(t, "alert 987654321 not found", out["message"])

	resp, err = client.AcknowledgeAlert(ctx, mustStruct(t, map[string]any{"alert_id": alertID}))
	require.NoError(t, err)
	assert.Equal(t, false, resp.AsMap()["success"])
}

func TestValidationFailures(t *testing.T) {
	common.SetTestLoggerNop()
	client := startTestServer(t, nil)
	ctx := context.Background()

	for _, tc := range []struct {
		name string
		call func() (*structpb.Struct, error)
	}{
		{"observation without patient", func() (*structpb.Struct, error) {
			return client.PostObservation(ctx, mustStruct(t, map[string]any{"hr": 70, "spo2": 98, "temp": 36.5}))
		}},
		{"observation without readings", func() (*structpb.Struct, error) {
			return client.PostObservation(ctx, mustStruct(t, map[string]any{"patient_id": "P001"}))
		}},
		{"observation with bad time", func() (*structpb.Struct, error) {
			return client.PostObservation(ctx, mustStruct(t, map[string]any{
				"patient_id": "P001", "time": "yesterday", "hr": 70, "spo2": 98, "temp": 36.5,
			}))
		}},
		{"thresholds out of range", func() (*structpb.Struct, error) {
			return client.UpdateThresholds(ctx, mustStruct(t, map[string]any{
				"patient_id": "P001", "hr_high": 120, "spo2_low": 140, "temp_high": 38,
			}))
		}},
		{"alerts without patient", func() (*structpb.Struct, error) {
			return client.GetAlerts(ctx, wrapperspb.String(""))
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := tc.call()
			require.NoError(t, err)
			out := resp.AsMap()
			assert.Equal(t, false, out["success"])
			assert.Contains(t, out["message"], "validation error")
		})
	}
}

func TestRateLimitInterceptor(t *testing.T) {
	common.SetTestLoggerNop()

	client := startTestServer(t, vitals.NewRateLimiterStore(2, 2))
	ctx := context.Background()
	patientID := uuid.NewString()

	req := mustStruct(t, map[string]any{"patient_id": patientID, "hr": 70, "spo2": 98, "temp": 36.5})

	for i := range 2 {
		_, err := client.PostObservation(ctx, req)
		require.NoError(t, err, "expected request %d to pass", i+1)
	}

	_, err := client.PostObservation(ctx, req)
	require.Error(t, err, "expected third request to be rate limited")
	st, ok := status.FromError(err)
	require.True(t, ok, "expected gRPC status error")
	require.Equal(t, codes.ResourceExhausted, st.Code())

	// reads are not throttled
	resp, err := client.GetAlerts(ctx, wrapperspb.String(patientID))
	require.NoError(t, err)
	requireSuccess(t, resp)

	resp, err = client.PostLimiter(ctx, mustStruct(t, map[string]any{"patient_id": patientID, "rate": 3, "burst": 2}))
	require.NoError(t, err)
	requireSuccess(t, resp)

	_, err = client.PostObservation(ctx, req)
	require.NoError(t, err, "expected request after limiter reset to pass")
}

func TestPostLimiterWithoutStore(t *testing.T) {
	common.SetTestLoggerNop()
	client := startTestServer(t, nil)

	resp, err := client.PostLimiter(context.Background(), mustStruct(t, map[string]any{
		"patient_id": uuid.NewString(), "rate": 3, "burst": 2,
	}))
	require.NoError(t, err)
	out := resp.AsMap()
	assert.Equal(t, false, out["success"])
	assert.Equal(t, "RateLimiterStore is not used. No effect.", out["message"])
}

func TestServiceErrorsBecomeFailures(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIAlert := mocks.NewMockIAlert(ctrl)
	monitor := vitals.NewMonitor(db.GetInstance(db.UseMemorySqliteDialector()))
	monitor.WithServices(vitals.ServiceOpts{Alert: mockIAlert})

	patientID := uuid.NewString()
	mockIAlert.EXPECT().
		ListAlerts(gomock.Eq(patientID), gomock.Any()).
		Return(nil, fmt.Errorf("just causing error")).
		Times(1)

	client := startTestServerWith(t, monitor, nil)
	resp, err := client.GetAlerts(context.Background(), wrapperspb.String(patientID))
	require.NoError(t, err)

	out := resp.AsMap()
	assert.Equal(t, false, out["success"])
	assert.Equal(t, "just causing error", out["message"])
}
