// Package logging builds the zap loggers every component receives through
// its constructor. Nothing in the repo logs through a package-level logger.
package logging

import (
	"strings"

	"go.uber.org/zap"
)

// New builds a sugared logger for the given mode ("prod"/"production" for
// JSON output, anything else for the development console encoder).
func New(mode string) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// Nop returns a logger that discards everything. Used by tests and as the
// fallback when a caller passes a nil logger.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
