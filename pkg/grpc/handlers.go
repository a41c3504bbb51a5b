package grpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	z "github.com/Oudwins/zog"
	"golang.org/x/time/rate"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/models"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/vitals"
)

type observationRequest struct {
	PatientID string  `json:"patient_id"`
	Time      string  `json:"time"`
	HR        float64 `json:"hr"`
	SpO2      float64 `json:"spo2"`
	Temp      float64 `json:"temp"`
}

func (s *VitalsServer) PostObservation(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req observationRequest
	if err := decode(in, &req); err != nil {
		return failReply(validationMessage(err))
	}
	if err := validatePatientID(&req.PatientID); err != nil {
		return failReply(validationMessage(err))
	}

	{
		var observationValidator = z.Struct(z.Shape{
			// Time is optional and parsed separately
			"HR":   z.Float64().GT(0).Required(),
			"SpO2": z.Float64().GT(0).Required(),
			"Temp": z.Float64().GT(0).Required(),
		})
		if err := observationValidator.Validate(&req); err != nil {
			return failReply(validationMessage(err))
		}
	}

	var at time.Time
	if req.Time != "" {
		t, err := time.Parse(time.RFC3339, req.Time)
		if err != nil {
			return failReply("validation error: time must be RFC3339")
		}
		at = t.UTC()
	}

	evaluation, err := s.Monitor.Observation.RecordObservation(req.PatientID, &models.Observation{
		Time: at,
		HR:   req.HR,
		SpO2: req.SpO2,
		Temp: req.Temp,
	})
	if err != nil {
		return failReply(err.Error())
	}

	return okReply(map[string]any{
		"observation": evaluation.Observation,
		"alerts":      evaluation.Alerts,
	})
}

type thresholdRequest struct {
	PatientID string  `json:"patient_id"`
	HRHigh    float64 `json:"hr_high"`
	SpO2Low   float64 `json:"spo2_low"`
	TempHigh  float64 `json:"temp_high"`
}

func (s *VitalsServer) UpdateThresholds(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req thresholdRequest
	if err := decode(in, &req); err != nil {
		return failReply(validationMessage(err))
	}
	if err := validatePatientID(&req.PatientID); err != nil {
		return failReply(validationMessage(err))
	}

	var thresholdValidator = z.Struct(z.Shape{
		"HRHigh":   z.Float64().GT(0).Required(),
		"SpO2Low":  z.Float64().GT(0).LTE(100).Required(),
		"TempHigh": z.Float64().GT(0).Required(),
	})
	if err := thresholdValidator.Validate(&req); err != nil {
		return failReply(validationMessage(err))
	}

	threshold := models.Threshold{
		HRHigh:   req.HRHigh,
		SpO2Low:  req.SpO2Low,
		TempHigh: req.TempHigh,
	}
	if err := s.Monitor.Threshold.UpsertThreshold(req.PatientID, &threshold); err != nil {
		return failReply(err.Error())
	}

	return okReply(map[string]any{"threshold": threshold})
}

func (s *VitalsServer) GetAlerts(ctx context.Context, in *wrapperspb.StringValue) (*structpb.Struct, error) {
	patientID := in.GetValue()
	if err := validatePatientID(&patientID); err != nil {
		return failReply(validationMessage(err))
	}

	alerts, err := s.Monitor.Alert.ListAlerts(patientID, models.AlertFilter{})
	if err != nil {
		return failReply(err.Error())
	}

	return okReply(map[string]any{"alerts": alerts})
}

type ackRequest struct {
	AlertID        uint   `json:"alert_id"`
	AcknowledgedBy string `json:"acknowledged_by"`
	Note           string `json:"note"`
}

func (s *VitalsServer) AcknowledgeAlert(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req ackRequest
	if err := decode(in, &req); err != nil {
		return failReply(validationMessage(err))
	}

	if req.AlertID == 0 {
		return failReply("validation error: alert_id is required")
	}
	var acknowledgedByValidator = z.String().Trim().Min(1).Required()
	if err := acknowledgedByValidator.Validate(&req.AcknowledgedBy); err != nil {
		return failReply(validationMessage(err))
	}

	alert, err := s.Monitor.Alert.AcknowledgeAlert(req.AlertID, req.AcknowledgedBy, req.Note)
	if errors.Is(err, vitals.ErrAlertNotFound) {
		return failReply(fmt.Sprintf("alert %d not found", req.AlertID))
	}
	if err != nil {
		return failReply(err.Error())
	}

	return okReply(map[string]any{"alert": alert})
}

type limiterRequest struct {
	PatientID string  `json:"patient_id"`
	Rate      float64 `json:"rate"`
	Burst     int     `json:"burst"`
}

func (s *VitalsServer) PostLimiter(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req limiterRequest
	if err := decode(in, &req); err != nil {
		return failReply(validationMessage(err))
	}
	if err := validatePatientID(&req.PatientID); err != nil {
		return failReply(validationMessage(err))
	}

	var limiterValidator = z.Struct(z.Shape{
		"Rate":  z.Float64().GT(0).Required(),
		"Burst": z.Int().GTE(1).Required(),
	})
	if err := limiterValidator.Validate(&req); err != nil {
		return failReply(validationMessage(err))
	}

	if s.RateLimiterStore == nil {
		return failReply("RateLimiterStore is not used. No effect.")
	}

	s.RateLimiterStore.SetLimiter(req.PatientID, rate.Limit(req.Rate), req.Burst)
	return okReply(nil)
}
