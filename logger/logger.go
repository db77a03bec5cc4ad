package logger

import (
	"errors"

	"github.com/philipp01105/couchlog/core"
	"github.com/philipp01105/couchlog/event"
	"github.com/philipp01105/couchlog/formatter"
	"github.com/philipp01105/couchlog/sink"
)

// ErrNilData is returned by Log when called without a payload
var ErrNilData = errors.New("logger: nil event data")

// Logger is what event producers log through
type Logger interface {
	// Log writes the event if the filter allows it
	Log(data *event.Data) error
	// ShouldLog reports whether an event would be written. It never renders.
	ShouldLog(id core.EventID, level core.Level) bool
}

// FormattingLogger formats events into single lines and hands them to a sink (immutable)
type FormattingLogger struct {
	sink      sink.Sink
	filter    Filter
	formatter *formatter.LineFormatter
}

var _ Logger = (*FormattingLogger)(nil)

// Builder provides a fluent API for building FormattingLogger instances
type Builder struct {
	sink    sink.Sink
	filter  Filter
	options formatter.Options
	clock   core.Clock
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		options: formatter.DefaultWithLocalTime,
		filter:  All,
	}
}

// WithSink sets the sink (default: sink.Console)
func (b *Builder) WithSink(s sink.Sink) *Builder {
	b.sink = s
	return b
}

// WithFilter sets the filter (default: All)
func (b *Builder) WithFilter(f Filter) *Builder {
	b.filter = f
	return b
}

// WithLevel filters out events below level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.filter = MinLevel(level)
	return b
}

// WithOptions sets the formatting options (default: formatter.DefaultWithLocalTime)
func (b *Builder) WithOptions(opts formatter.Options) *Builder {
	b.options = opts
	return b
}

// WithClock sets the timestamp source (default: core.SystemClock)
func (b *Builder) WithClock(c core.Clock) *Builder {
	b.clock = c
	return b
}

// Build creates the FormattingLogger instance
func (b *Builder) Build() *FormattingLogger {
	s := b.sink
	if s == nil {
		s = sink.Console()
	}
	f := b.filter
	if f == nil {
		f = All
	}
	return &FormattingLogger{
		sink:   s,
		filter: f,
		formatter: formatter.NewLineFormatter(formatter.Config{
			Options: b.options,
			Clock:   b.clock,
		}),
	}
}

// New creates a FormattingLogger from its three collaborators.
// A nil filter lets everything through.
func New(s sink.Sink, filter Filter, opts formatter.Options) *FormattingLogger {
	return NewBuilder().
		WithSink(s).
		WithFilter(filter).
		WithOptions(opts).
		Build()
}

// Options returns the formatting options
func (l *FormattingLogger) Options() formatter.Options {
	return l.formatter.Options
}

// ShouldLog delegates to the filter
func (l *FormattingLogger) ShouldLog(id core.EventID, level core.Level) bool {
	return l.filter(id, level)
}

// Log formats the event and writes it to the sink. Filtered events are
// dropped before the message is rendered. Sink errors are returned as is.
func (l *FormattingLogger) Log(data *event.Data) error {
	if data == nil {
		return ErrNilData
	}
	// Filter check BEFORE rendering
	if !l.filter(data.EventID(), data.Level()) {
		return nil
	}
	return l.sink(l.formatter.Format(data))
}
