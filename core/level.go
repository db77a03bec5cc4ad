package core

import "strings"

// Level represents the severity of a logged event
type Level int8

const (
	// TraceLevel for the most detailed diagnostics
	TraceLevel Level = iota
	// DebugLevel for debugging information
	DebugLevel
	// InformationLevel for general informational events
	InformationLevel
	// WarningLevel for unexpected but recoverable events
	WarningLevel
	// ErrorLevel for failures of the current operation
	ErrorLevel
	// CriticalLevel for failures that require immediate attention
	CriticalLevel
	// NoneLevel is only meaningful as a threshold; it disables everything
	NoneLevel
)

var levelNames = [...]string{
	TraceLevel:       "Trace",
	DebugLevel:       "Debug",
	InformationLevel: "Information",
	WarningLevel:     "Warning",
	ErrorLevel:       "Error",
	CriticalLevel:    "Critical",
	NoneLevel:        "None",
}

// String returns the string representation of the level
func (l Level) String() string {
	if l >= 0 && int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "Unknown"
}

// Enabled reports whether l passes threshold
func (l Level) Enabled(threshold Level) bool {
	return l >= threshold && l < NoneLevel
}

var levelFromString = map[string]Level{
	"trace":       TraceLevel,
	"trce":        TraceLevel,
	"debug":       DebugLevel,
	"dbug":        DebugLevel,
	"information": InformationLevel,
	"info":        InformationLevel,
	"warning":     WarningLevel,
	"warn":        WarningLevel,
	"error":       ErrorLevel,
	"fail":        ErrorLevel,
	"critical":    CriticalLevel,
	"crit":        CriticalLevel,
	"none":        NoneLevel,
}

// ParseLevel converts a level name (case-insensitive) to a Level.
// The short labels used in formatted lines ("info", "fail", ...) are accepted too.
func ParseLevel(s string) (Level, bool) {
	l, ok := levelFromString[strings.ToLower(strings.TrimSpace(s))]
	return l, ok
}
