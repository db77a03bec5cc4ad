// Package sink provides destinations for formatted lines.
//
// A Sink receives one finished line per call and reports whether it was
// written. Sinks are called synchronously from the logging goroutine; they
// must be safe for concurrent use if the logger is shared. The adapters in
// this package are:
//
//   - Writer and Console write each line plus a newline to an io.Writer,
//     serializing writes with a mutex.
//   - Zap forwards each line as the message of a zap entry written to the
//     logger's core, returning the core's write error.
//   - Slog forwards each line as the message of a slog record, returning
//     the handler's error. NewConsoleSlog builds a slog.Logger that renders
//     with console-slog on terminals and slog's text handler elsewhere.
package sink
