package event

import (
	"fmt"

	"github.com/philipp01105/couchlog/core"
)

// Definition is the resolved, immutable description of an event kind
type Definition struct {
	eventID  core.EventID
	level    core.Level
	code     string
	behavior Behavior
}

// NewDefinition resolves the level and behavior of an event kind against
// warnings, which may be nil. It fails with ErrInvalidConfiguration when
// the event id has no name or code is empty.
func NewDefinition(warnings *WarningsConfiguration, id core.EventID, level core.Level, code string) (*Definition, error) {
	if id.Name() == "" {
		return nil, fmt.Errorf("%w: event %d has no name", ErrInvalidConfiguration, id.ID())
	}
	if code == "" {
		return nil, fmt.Errorf("%w: event %s has no code", ErrInvalidConfiguration, id)
	}

	if override, ok := warnings.Level(id); ok {
		level = override
	}

	behavior, ok := warnings.Behavior(id)
	if !ok {
		behavior = Log
		if level == core.WarningLevel && warnings.DefaultBehavior() == Throw {
			behavior = Throw
		}
	}

	return &Definition{
		eventID:  id,
		level:    level,
		code:     code,
		behavior: behavior,
	}, nil
}

// EventID returns the event identity
func (d *Definition) EventID() core.EventID {
	return d.eventID
}

// Level returns the resolved level
func (d *Definition) Level() core.Level {
	return d.level
}

// Code returns the handle external configuration uses for this event
func (d *Definition) Code() string {
	return d.code
}

// Behavior returns the resolved behavior
func (d *Definition) Behavior() Behavior {
	return d.behavior
}

// WarningAsError wraps a rendered message into the error a producer returns
// instead of logging when Behavior is Throw.
func (d *Definition) WarningAsError(message string) error {
	return &WarningAsErrorError{
		EventID: d.eventID.String(),
		Message: message,
		Code:    d.code,
	}
}

// Messagef creates a payload whose message is fmt.Sprintf(format, args...),
// formatted only when rendered.
func (d *Definition) Messagef(format string, args ...any) *Data {
	return NewData(d, func(*Definition) string {
		return fmt.Sprintf(format, args...)
	})
}
