package logging

import "go.uber.org/zap"

// New creates the process-wide sugared logger
func New() *zap.SugaredLogger {
	logger, _ := zap.NewProduction()
	zap.ReplaceGlobals(logger)
	return logger.Sugar()
}

// NewDevelopment creates a human-readable logger for local runs and tests
func NewDevelopment() *zap.SugaredLogger {
	logger, _ := zap.NewDevelopment()
	return logger.Sugar()
}
