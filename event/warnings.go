package event

import (
	"maps"

	"github.com/philipp01105/couchlog/core"
)

// WarningsConfiguration holds per-event level and behavior overrides plus
// the behavior applied to Warning-level events without an override.
// Overrides are keyed by the numeric event id.
//
// The type is immutable: WithLevel and WithBehavior return modified copies.
// A nil *WarningsConfiguration is valid and has no overrides and a Log
// default behavior.
type WarningsConfiguration struct {
	defaultBehavior Behavior
	levels          map[int]core.Level
	behaviors       map[int]Behavior
}

// NewWarningsConfiguration creates a configuration without overrides
func NewWarningsConfiguration(defaultBehavior Behavior) *WarningsConfiguration {
	return &WarningsConfiguration{defaultBehavior: defaultBehavior}
}

// DefaultBehavior returns the behavior for Warning-level events without an override
func (w *WarningsConfiguration) DefaultBehavior() Behavior {
	if w == nil {
		return Log
	}
	return w.defaultBehavior
}

// Level returns the level override for an event, if any
func (w *WarningsConfiguration) Level(id core.EventID) (core.Level, bool) {
	if w == nil {
		return 0, false
	}
	l, ok := w.levels[id.ID()]
	return l, ok
}

// Behavior returns the behavior override for an event, if any
func (w *WarningsConfiguration) Behavior(id core.EventID) (Behavior, bool) {
	if w == nil {
		return Log, false
	}
	b, ok := w.behaviors[id.ID()]
	return b, ok
}

// WithDefaultBehavior returns a copy with a different default behavior
func (w *WarningsConfiguration) WithDefaultBehavior(b Behavior) *WarningsConfiguration {
	c := w.clone()
	c.defaultBehavior = b
	return c
}

// WithLevel returns a copy that logs the given event ids at level
func (w *WarningsConfiguration) WithLevel(level core.Level, ids ...int) *WarningsConfiguration {
	c := w.clone()
	if c.levels == nil {
		c.levels = make(map[int]core.Level, len(ids))
	}
	for _, id := range ids {
		c.levels[id] = level
	}
	return c
}

// WithBehavior returns a copy that applies b to the given event ids
func (w *WarningsConfiguration) WithBehavior(b Behavior, ids ...int) *WarningsConfiguration {
	c := w.clone()
	if c.behaviors == nil {
		c.behaviors = make(map[int]Behavior, len(ids))
	}
	for _, id := range ids {
		c.behaviors[id] = b
	}
	return c
}

func (w *WarningsConfiguration) clone() *WarningsConfiguration {
	if w == nil {
		return &WarningsConfiguration{}
	}
	return &WarningsConfiguration{
		defaultBehavior: w.defaultBehavior,
		levels:          maps.Clone(w.levels),
		behaviors:       maps.Clone(w.behaviors),
	}
}
