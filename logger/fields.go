package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across clientgen.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Host model
	FieldNamespace = "namespace"
	FieldType      = "type"
	FieldKind      = "kind"
	FieldMember    = "member"

	// Run
	FieldComponent = "component"
	FieldLanguage  = "language"
	FieldSuffix    = "suffix"
	FieldWorkers   = "workers"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"

	// Counts
	FieldCount = "count"

	// Files and paths
	FieldFile    = "file"
	FieldPackage = "package"
)

// ComponentLogger returns a named logger for a specific component.
//
// Example:
//
//	log := logger.ComponentLogger("emit")
//	log.Debugw("namespace emitted", logger.FieldNamespace, ns)
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}
