package main

import (
	"flag"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/KristenSantos/swe-5-1-closures-exemplar-Kristen-Santos/internal/app/config"
	"github.com/KristenSantos/swe-5-1-closures-exemplar-Kristen-Santos/internal/app/showcase"
	"github.com/KristenSantos/swe-5-1-closures-exemplar-Kristen-Santos/internal/shared/interfaces"
	"github.com/KristenSantos/swe-5-1-closures-exemplar-Kristen-Santos/internal/shared/logger"
	"github.com/KristenSantos/swe-5-1-closures-exemplar-Kristen-Santos/internal/shared/metrics"
	"github.com/KristenSantos/swe-5-1-closures-exemplar-Kristen-Santos/internal/utils"
)

func main() {
	configPath := flag.String("config", "./configs", "directory containing config.yaml")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(logger.Options{
		Environment: cfg.Environment,
		Level:       cfg.LogLevel,
		File:        cfg.LogFile,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Sync()

	appLogger = &logger.Logger{Logger: appLogger.With(zap.String("run_id", utils.NewRunID()))}

	// Initialize metrics (if enabled)
	var recorder interfaces.Recorder = interfaces.NopRecorder{}
	var metricsCollector *metrics.Metrics
	if cfg.MetricsEnabled {
		metricsCollector = metrics.New(appLogger)
		recorder = metricsCollector
	}

	appLogger.Info("Showcase starting", zap.String("environment", cfg.Environment))

	if _, err := showcase.New(cfg, os.Stdout, appLogger, recorder).Run(); err != nil {
		appLogger.Fatal("Showcase failed", zap.Error(err))
	}

	if metricsCollector != nil {
		metricsCollector.LogSnapshot()
	}

	appLogger.Info("Showcase finished")
}
