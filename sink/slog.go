package sink

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/phsym/console-slog"
)

// Slog creates a sink that logs each line as a slog record at level and
// returns the handler's error.
func Slog(l *slog.Logger, level slog.Level) Sink {
	h := l.Handler()
	return func(line string) error {
		ctx := context.Background()
		if !h.Enabled(ctx, level) {
			return nil
		}
		var pcs [1]uintptr
		// skip [runtime.Callers, this closure]
		runtime.Callers(2, pcs[:])
		r := slog.NewRecord(time.Now(), level, line, pcs[0])
		return h.Handle(ctx, r)
	}
}

// NewConsoleSlog creates a slog.Logger writing to w. Terminals get the
// console-slog handler, anything else slog's text handler.
func NewConsoleSlog(w io.Writer, level slog.Leveler) *slog.Logger {
	if isTerminal(w) {
		return slog.New(console.NewHandler(w, &console.HandlerOptions{Level: level}))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
