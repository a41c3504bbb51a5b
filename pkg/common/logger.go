package common

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogOptions controls where the rotating JSON log file lives. It must be set
// before the first call to GetLogger to take effect.
type LogOptions struct {
	Dir        string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

var (
	logger  *zap.Logger
	once    sync.Once
	logOpts = LogOptions{
		Dir:        "logs",
		File:       "vitals.log",
		MaxSizeMB:  10,
		MaxBackups: 5,
		MaxAgeDays: 28,
	}
)

func SetLogOptions(opts LogOptions) {
	if opts.Dir != "" {
		logOpts.Dir = opts.Dir
	}
	if opts.File != "" {
		logOpts.File = opts.File
	}
	if opts.MaxSizeMB > 0 {
		logOpts.MaxSizeMB = opts.MaxSizeMB
	}
	if opts.MaxBackups > 0 {
		logOpts.MaxBackups = opts.MaxBackups
	}
	if opts.MaxAgeDays > 0 {
		logOpts.MaxAgeDays = opts.MaxAgeDays
	}
}

func getLogger() *zap.Logger {
	if logger == nil {
		initLogger()
	}
	return logger
}

func GetLogger() *zap.Logger {
	logger = getLogger()
	return logger.Named("default")
}

func GetLoggerWith(name string, fields ...zap.Field) *zap.Logger {
	logger = getLogger()
	return logger.Named(name).With(fields...)
}

// GetCategoryLogger is the usual entry point of the core service: a named
// logger tagged with the category field.
func GetCategoryLogger(name, category string) *zap.Logger {
	return GetLoggerWith(name, zap.String(LoggerFieldVitalsCategory, category))
}

func initLogger() {
	once.Do(func() {
		logsDir := logOpts.Dir
		if !filepath.IsAbs(logsDir) {
			dir, err := os.Getwd()
			if err != nil {
				log.Fatalf("Error getting current directory: %v", err)
			}
			logsDir = filepath.Join(dir, logsDir)
		}

		if err := os.MkdirAll(logsDir, os.ModePerm); err != nil {
			log.Fatalf("Error find/create logs directory: %v", err)
		}

		logFile := &lumberjack.Logger{
			Filename:   filepath.Join(logsDir, logOpts.File),
			MaxSize:    logOpts.MaxSizeMB, // megabytes
			MaxBackups: logOpts.MaxBackups,
			MaxAge:     logOpts.MaxAgeDays, // days
			Compress:   true,
		}

		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

		fileCore := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.AddSync(logFile),
			zap.InfoLevel,
		)

		if IsProduction() {
			logger = zap.New(fileCore, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
		} else {
			consoleEncoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
			consoleCore := zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stdout), zap.DebugLevel)

			combinedCore := zapcore.NewTee(fileCore, consoleCore)
			logger = zap.New(combinedCore, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
		}
	})
}

func SetTestCaptureLogger(buf *bytes.Buffer, level zapcore.Level) {
	_ = GetLogger()

	writer := zapcore.AddSync(buf)
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderCfg)

	core := zapcore.NewCore(encoder, writer, level)
	logger = zap.New(core)
}

func SetTestLoggerNop() {
	_ = GetLogger()

	logger = zap.NewNop()
}
