package event

import "github.com/philipp01105/couchlog/core"

// MessageGenerator renders the message of one event occurrence
type MessageGenerator func(def *Definition) string

// Data is the payload of a single event occurrence
type Data struct {
	definition *Definition
	generator  MessageGenerator
}

// NewData creates a payload. The generator is not called here.
func NewData(def *Definition, generator MessageGenerator) *Data {
	return &Data{definition: def, generator: generator}
}

// Definition returns the event definition
func (d *Data) Definition() *Definition {
	return d.definition
}

// EventID returns the event identity
func (d *Data) EventID() core.EventID {
	return d.definition.eventID
}

// Level returns the level the event is logged at
func (d *Data) Level() core.Level {
	return d.definition.level
}

// Code returns the event code
func (d *Data) Code() string {
	return d.definition.code
}

// String renders the message by calling the generator
func (d *Data) String() string {
	return d.generator(d.definition)
}
