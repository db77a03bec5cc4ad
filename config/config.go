package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"

	"github.com/philipp01105/couchlog/core"
	"github.com/philipp01105/couchlog/event"
	"github.com/philipp01105/couchlog/formatter"
	"github.com/philipp01105/couchlog/logger"
	"github.com/philipp01105/couchlog/sink"
)

var (
	// ErrUnknownLevel is returned for level names that do not parse
	ErrUnknownLevel = errors.New("config: unknown level")
	// ErrUnknownBehavior is returned for behavior names that do not parse
	ErrUnknownBehavior = errors.New("config: unknown behavior")
	// ErrInvalidEvent is returned for event overrides without a usable id or value
	ErrInvalidEvent = errors.New("config: invalid event override")
)

// Options contains the logging configuration
type Options struct {
	// Format is a comma separated list of formatter option names
	Format   string   `toml:"format"`
	MinLevel string   `toml:"min_level"`
	Warnings Warnings `toml:"warnings"`
}

// Warnings contains the escalation configuration
type Warnings struct {
	DefaultBehavior string          `toml:"default_behavior"`
	Events          []EventOverride `toml:"events"`
}

// EventOverride changes the level and/or behavior of one event id
type EventOverride struct {
	ID       int    `toml:"id"`
	Level    string `toml:"level"`
	Behavior string `toml:"behavior"`
}

// Decode reads TOML options from r on top of Default and validates them
func Decode(r io.Reader) (Options, error) {
	opts := Default()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&opts); err != nil {
		return Options{}, fmt.Errorf("decode logging config: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// FormatOptions parses Format
func (o Options) FormatOptions() (formatter.Options, error) {
	return formatter.ParseOptions(o.Format)
}

// Level parses MinLevel
func (o Options) Level() (core.Level, error) {
	return parseLevel(o.MinLevel)
}

// Filter builds a minimum level filter from MinLevel
func (o Options) Filter() (logger.Filter, error) {
	level, err := o.Level()
	if err != nil {
		return nil, err
	}
	return logger.MinLevel(level), nil
}

// WarningsConfiguration builds the event warnings configuration
func (o Options) WarningsConfiguration() (*event.WarningsConfiguration, error) {
	def, err := parseBehavior(o.Warnings.DefaultBehavior)
	if err != nil {
		return nil, err
	}
	w := event.NewWarningsConfiguration(def)
	for _, ev := range o.Warnings.Events {
		if ev.Level != "" {
			level, err := parseLevel(ev.Level)
			if err != nil {
				return nil, fmt.Errorf("event %d: %w", ev.ID, err)
			}
			w = w.WithLevel(level, ev.ID)
		}
		if ev.Behavior != "" {
			behavior, err := parseBehavior(ev.Behavior)
			if err != nil {
				return nil, fmt.Errorf("event %d: %w", ev.ID, err)
			}
			w = w.WithBehavior(behavior, ev.ID)
		}
	}
	return w, nil
}

// NewLogger builds a FormattingLogger writing to s
func (o Options) NewLogger(s sink.Sink) (*logger.FormattingLogger, error) {
	opts, err := o.FormatOptions()
	if err != nil {
		return nil, err
	}
	filter, err := o.Filter()
	if err != nil {
		return nil, err
	}
	return logger.New(s, filter, opts), nil
}

func parseLevel(s string) (core.Level, error) {
	level, ok := core.ParseLevel(s)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
	return level, nil
}

func parseBehavior(s string) (event.Behavior, error) {
	behavior, ok := event.ParseBehavior(s)
	if !ok {
		return event.Log, fmt.Errorf("%w: %q", ErrUnknownBehavior, s)
	}
	return behavior, nil
}
