package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// New builds the process logger. Debug gin mode switches to the console
// encoder; level is any zap level name ("debug", "info", "warn", ...).
func New(level, ginMode string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	if ginMode == "debug" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = lvl

	return cfg.Build()
}
