package event

import "strings"

// Behavior decides what happens to an event once it passes the filter
type Behavior int

const (
	// Log writes the event to the logger
	Log Behavior = iota
	// Throw turns the event into a WarningAsErrorError at the call site
	Throw
)

// String returns the string representation of the behavior
func (b Behavior) String() string {
	switch b {
	case Log:
		return "Log"
	case Throw:
		return "Throw"
	default:
		return "Unknown"
	}
}

// ParseBehavior converts a behavior name (case-insensitive) to a Behavior
func ParseBehavior(s string) (Behavior, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "log":
		return Log, true
	case "throw", "error":
		return Throw, true
	default:
		return Log, false
	}
}
