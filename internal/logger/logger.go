package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// New builds the process logger: human-readable in development, JSON in
// production.
func New(environment string) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error
	if environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
