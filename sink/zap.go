package sink

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrUnsupportedLevel is returned by Zap for levels that panic or exit
var ErrUnsupportedLevel = errors.New("sink: unsupported zap level")

// Zap creates a sink that logs each line as a zap message at level.
// Lines below the core's level are dropped. Entries are written to the
// logger's core directly so write failures reach the caller; zap's
// sampling and entry hooks are not applied. Levels above ErrorLevel are
// rejected.
func Zap(l *zap.Logger, level zapcore.Level) (Sink, error) {
	if level > zapcore.ErrorLevel {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLevel, level)
	}
	core := l.Core()
	name := l.Name()
	return func(line string) error {
		if !core.Enabled(level) {
			return nil
		}
		return core.Write(zapcore.Entry{
			Level:      level,
			Time:       time.Now(),
			LoggerName: name,
			Message:    line,
		}, nil)
	}, nil
}
