package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/common"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/config"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/db"
	vitalsGrpc "github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/grpc"
	vitalsHttp "github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/http"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/vitals"
)

const shutdownTimeout = 10 * time.Second

// serveFlags maps config keys to the serve flags that can override them.
var serveFlags = map[string]string{
	"db.type":        "db-type",
	"db.path":        "db-path",
	"http.host_port": "http",
	"grpc.host_port": "grpc",
	"limiter.rate":   "rate",
	"limiter.burst":  "burst",
	"log.dir":        "log-dir",
}

func addServeFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("db-type", config.DbTypeFile, "storage backend: file or memory")
	f.String("db-path", "vitals.db", "sqlite file used when db-type is file")
	f.String("http", ":1080", "HTTP listen address")
	f.String("grpc", "", "gRPC listen address, empty to disable")
	f.Float64("rate", 5, "default ingest rate per patient, requests per second")
	f.Int("burst", 10, "default ingest burst per patient")
	f.String("log-dir", "logs", "directory of the rotating log file")
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard, REST API and gRPC endpoint",
		RunE:  runServe,
	}
	addServeFlags(cmd)
	return cmd
}

func openDatabase(cfg *config.Config) *db.DB {
	if cfg.Db.Type == config.DbTypeMemory {
		return db.GetInstance(db.UseMemorySqliteDialector())
	}
	return db.GetInstance(db.UseSqliteDialector(cfg.Db.Path))
}

// newServers builds both transports over one limiter store, so a patient has
// a single ingest budget and a limiter override applies to either endpoint.
func newServers(cfg *config.Config, monitor *vitals.Monitor) (*vitalsHttp.RestfulServer, *vitalsGrpc.VitalsServer) {
	store := vitals.NewRateLimiterStore(rate.Limit(cfg.Limiter.Rate), cfg.Limiter.Burst)

	rs := &vitalsHttp.RestfulServer{
		Server:           gin.Default(),
		Monitor:          monitor,
		RateLimiterStore: store,
	}
	rs.Setup()

	return rs, &vitalsGrpc.VitalsServer{Monitor: monitor, RateLimiterStore: store}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, serveFlags)
	if err != nil {
		return err
	}

	common.SetLogOptions(common.LogOptions{Dir: cfg.Log.Dir, File: cfg.Log.File})
	logger := common.GetLoggerWith(common.LoggerNameCli)
	defer func() { _ = logger.Sync() }()

	if common.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	rs, vs := newServers(cfg, vitals.NewMonitor(openDatabase(cfg)))
	limiterFields := []zap.Field{
		zap.Float64("default_rate", cfg.Limiter.Rate),
		zap.Int("default_burst", cfg.Limiter.Burst),
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 2)

	if cfg.Grpc.HostPort != "" {
		listener, err := net.Listen("tcp", cfg.Grpc.HostPort)
		if err != nil {
			return err
		}
		grpcServer := vitalsGrpc.NewGrpcServer(vs)
		logger.Info("gRPC server created with:", limiterFields...)

		go func() {
			logger.Info("Starting gRPC server on: " + cfg.Grpc.HostPort)
			if err := grpcServer.Serve(listener); err != nil {
				errCh <- err
			}
		}()
		defer grpcServer.GracefulStop()
	}

	logger.Info("http server created with:", limiterFields...)

	httpServer := &http.Server{
		Addr:              cfg.Http.HostPort,
		Handler:           rs.Server,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("Starting HTTP server on: " + cfg.Http.HostPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down")
	case err := <-errCh:
		logger.Error("Server failed", zap.Error(err))
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
