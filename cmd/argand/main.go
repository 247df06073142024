// Package main is the entry point for the Argand engine demo.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/argand/internal/app"
	"github.com/Faultbox/argand/internal/config"
	"github.com/Faultbox/argand/internal/logger"
	"github.com/Faultbox/argand/internal/objects/complexgrapher"
	"github.com/Faultbox/argand/internal/objects/fpscounter"
	"github.com/Faultbox/argand/internal/objects/pentagon"
	"github.com/Faultbox/argand/internal/objects/uiquad"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== Argand ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to create application", zap.Error(err))
		return 1
	}
	defer a.Close()

	// Registration order is draw order: the plot fills the screen first.
	if err := a.AddObjects(
		complexgrapher.New(complexgrapher.DefaultExtent),
		pentagon.New(),
		uiquad.New(),
		fpscounter.New(),
	); err != nil {
		logger.Error("failed to add objects", zap.Error(err))
		return 1
	}

	if err := a.Run(); err != nil {
		logger.Error("engine error", zap.Error(err))
		return 1
	}

	logger.Info("closed normally")
	return 0
}
