package main

import (
	"fmt"

	"go.uber.org/zap"
)

// newLogger creates and configures a zap logger for the given level.
// Unknown levels fall back to info.
func newLogger(level string) (*zap.Logger, error) {
	var zapConfig zap.Config
	switch level {
	case "debug":
		zapConfig = zap.NewDevelopmentConfig()
	case "warn":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create zap logger: %w", err)
	}

	return logger, nil
}
