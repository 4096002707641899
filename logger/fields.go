package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging.
// Use these constants instead of raw strings.
const (
	// Components
	FieldComponent = "component"
	FieldCommand   = "command"

	// Errors
	FieldError = "error"

	// Files and paths
	FieldFile = "file"
	FieldPath = "path"

	// Counts
	FieldCount = "count"

	// Fuzzy evaluation
	FieldProfile   = "profile"
	FieldOperation = "operation"
	FieldTime      = "time"
	FieldTruth     = "truth"
	FieldTrigger   = "trigger"
	FieldTriggered = "triggered"
	FieldTimezone  = "timezone"
)

// ComponentLogger returns a named logger for a specific component.
//
// Example:
//
//	log := logger.ComponentLogger("schedule")
//	log.Debugw("Profile built", logger.FieldProfile, p.Name)
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
