// Command ward drives a running server with a synthetic ward of patients,
// mixing HTTP and gRPC calls, and prints the throughput of each phase.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	vitalsGrpc "github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/grpc"
)

var (
	maxPatients  int
	httpHostPort string
	grpcHostPort string
	readings     int

	grpcClient *vitalsGrpc.VitalsServiceClient
	failures   atomic.Int64

	rndMu sync.Mutex
	rnd   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

func main() {
	cmd := &cobra.Command{
		Use:          "ward",
		Short:        "Load test the vitals server with synthetic patients",
		SilenceUsage: true,
		RunE:         run,
	}
	cmd.Flags().IntVar(&maxPatients, "patients", 500, "number of synthetic patients")
	cmd.Flags().IntVar(&readings, "readings", 5, "readings posted per patient")
	cmd.Flags().StringVar(&httpHostPort, "http", "127.0.0.1:1080", "HTTP address of the server")
	cmd.Flags().StringVar(&grpcHostPort, "grpc", "127.0.0.1:10801", "gRPC address of the server")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	patientIDs := make([]string, maxPatients)
	for i := range maxPatients {
		patientIDs[i] = uuid.NewString()
	}
	fmt.Printf("generated %v patient IDs\n", maxPatients)

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		return fmt.Errorf("connect to HTTP server: %w", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP server not available: %s", resp.Status)
	}
	fmt.Printf("http server verified\n")

	conn, err := grpc.NewClient(grpcHostPort, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("connect to gRPC server: %w", err)
	}
	defer conn.Close()
	grpcClient = vitalsGrpc.NewVitalsServiceClient(conn)
	fmt.Printf("gRPC client ready\n")

	phase("set thresholds", maxPatients, patientIDs, func(id string) {
		setThresholds(id)
	})
	phase("ward rounds", maxPatients*(readings+1), patientIDs, doRound)

	if n := failures.Load(); n > 0 {
		return fmt.Errorf("%d calls failed", n)
	}
	return nil
}

func phase(name string, actions int, patientIDs []string, fn func(string)) {
	startTime := time.Now()
	wg := sync.WaitGroup{}
	for _, id := range patientIDs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn(id)
		}()
	}
	wg.Wait()
	usedTime := time.Since(startTime)

	fmt.Printf(
		"%s for %v patients: used time=%v seconds, throughput=%v action/second\n",
		name, len(patientIDs), usedTime.Seconds(), float64(actions)/usedTime.Seconds(),
	)
}

func flipCoin() bool {
	rndMu.Lock()
	defer rndMu.Unlock()
	return rnd.Intn(2) == 0
}

// rndVital draws from a normal distribution around mean, rounded to one
// decimal, so that a realistic share of readings cross the default bounds.
func rndVital(mean, stddev float64) float64 {
	rndMu.Lock()
	v := mean + rnd.NormFloat64()*stddev
	rndMu.Unlock()
	return math.Round(v*10) / 10
}

func report(format string, args ...any) {
	failures.Add(1)
	fmt.Printf("\nerror: "+format+"\n", args...)
}

func postJSON(method, url string, payload any) {
	data, _ := json.Marshal(payload)
	req, err := http.NewRequest(method, url, bytes.NewReader(data))
	if err != nil {
		report("%v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		report("%v", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 && resp.StatusCode != http.StatusTooManyRequests {
		report("%s %s: %s", method, url, resp.Status)
	}
}

func isRateLimited(err error) bool {
	return status.Code(err) == codes.ResourceExhausted
}

func checkReply(resp *structpb.Struct, err error) {
	if err != nil {
		report("%v", err)
		return
	}
	if !resp.GetFields()["success"].GetBoolValue() {
		report("response success = false: %v", resp.GetFields()["message"].GetStringValue())
	}
}

func setThresholds(patientID string) {
	payload := map[string]any{
		"hr_high":   rndVital(120, 5),
		"spo2_low":  rndVital(90, 1),
		"temp_high": rndVital(38, 0.2),
	}

	if flipCoin() {
		postJSON(http.MethodPut, fmt.Sprintf("http://%s/patients/%s/thresholds", httpHostPort, patientID), payload)
		return
	}
	payload["patient_id"] = patientID
	in, err := structpb.NewStruct(payload)
	if err != nil {
		report("%v", err)
		return
	}
	checkReply(grpcClient.UpdateThresholds(context.Background(), in))
}

func postObservation(patientID string) {
	payload := map[string]any{
		"time": time.Now().UTC().Format(time.RFC3339),
		"hr":   rndVital(85, 20),
		"spo2": rndVital(95, 3),
		"temp": rndVital(37, 0.6),
	}

	if flipCoin() {
		postJSON(http.MethodPost, fmt.Sprintf("http://%s/patients/%s/observations", httpHostPort, patientID), payload)
		return
	}
	payload["patient_id"] = patientID
	in, err := structpb.NewStruct(payload)
	if err != nil {
		report("%v", err)
		return
	}
	resp, err := grpcClient.PostObservation(context.Background(), in)
	if err == nil && !resp.GetFields()["success"].GetBoolValue() {
		// rate limited calls come back as errors, not failed replies
		report("response success = false: %v", resp.GetFields()["message"].GetStringValue())
		return
	}
	if err != nil && !isRateLimited(err) {
		report("%v", err)
	}
}

func getAlerts(patientID string) {
	if flipCoin() {
		resp, err := http.Get(fmt.Sprintf("http://%s/patients/%s/alerts", httpHostPort, patientID))
		if err != nil {
			report("%v", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			report("GET alerts: %s", resp.Status)
		}
		return
	}
	checkReply(grpcClient.GetAlerts(context.Background(), wrapperspb.String(patientID)))
}

func doRound(patientID string) {
	for range readings {
		postObservation(patientID)
		rndMu.Lock()
		pause := time.Duration(100+rnd.Int31n(400)) * time.Millisecond
		rndMu.Unlock()
		time.Sleep(pause)
	}
	getAlerts(patientID)
}
