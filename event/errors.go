package event

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned when an event definition cannot be built
var ErrInvalidConfiguration = errors.New("event: invalid configuration")

// WarningAsErrorError is returned in place of logging an event whose
// behavior is Throw.
type WarningAsErrorError struct {
	// EventID is the string form of the event identity
	EventID string
	// Message is the rendered event message
	Message string
	// Code is the handle used to reconfigure the event
	Code string
}

func (e *WarningAsErrorError) Error() string {
	return fmt.Sprintf(
		"an error was generated for warning '%s': %s This exception can be suppressed or logged by configuring event '%s' in the warnings configuration",
		e.EventID, e.Message, e.Code)
}
