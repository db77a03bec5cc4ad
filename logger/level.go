package logger

import (
	"github.com/philipp01105/couchlog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	TraceLevel       = core.TraceLevel
	DebugLevel       = core.DebugLevel
	InformationLevel = core.InformationLevel
	WarningLevel     = core.WarningLevel
	ErrorLevel       = core.ErrorLevel
	CriticalLevel    = core.CriticalLevel
	NoneLevel        = core.NoneLevel
)

// ParseLevel converts a string to a Level, defaulting to InformationLevel
func ParseLevel(s string) Level {
	if l, ok := core.ParseLevel(s); ok {
		return l
	}
	return InformationLevel
}
