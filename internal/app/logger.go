package app

import (
	"fmt"

	"go.uber.org/zap"
)

const serviceName = "dataplatform"

// initLogger maps LOG_LEVEL to a zap configuration. "development" (or empty)
// gives the console logger, "production" gives JSON at info, and any zap level
// name gives JSON at that level.
func initLogger(logLevel string) (*zap.Logger, error) {
	var cfg zap.Config

	switch logLevel {
	case "", "development":
		cfg = zap.NewDevelopmentConfig()
	case "production":
		cfg = zap.NewProductionConfig()
	default:
		level, err := zap.ParseAtomicLevel(logLevel)
		if err != nil {
			return nil, fmt.Errorf("failed to parse log level %q: %w", logLevel, err)
		}
		cfg = zap.NewProductionConfig()
		cfg.Level = level
	}

	logger, err := cfg.Build(zap.Fields(zap.String("service", serviceName)))
	if err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	return logger, nil
}
