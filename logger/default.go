package logger

import (
	"sync"

	"github.com/philipp01105/couchlog/core"
	"github.com/philipp01105/couchlog/event"
	"github.com/philipp01105/couchlog/formatter"
	"github.com/philipp01105/couchlog/sink"
)

var (
	defaultLogger Logger
	defaultMu     sync.RWMutex
)

func init() {
	defaultLogger = NewBuilder().
		WithSink(sink.Console()).
		WithLevel(core.InformationLevel).
		WithOptions(formatter.DefaultWithLocalTime).
		WithClock(core.SystemClock).
		Build()
}

// Default returns the default logger
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Log logs an event using the default logger
func Log(data *event.Data) error {
	return Default().Log(data)
}

// ShouldLog reports whether the default logger would log an event
func ShouldLog(id core.EventID, level core.Level) bool {
	return Default().ShouldLog(id, level)
}
