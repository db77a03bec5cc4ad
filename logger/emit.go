package logger

import (
	"github.com/philipp01105/couchlog/event"
)

// Emit is the producer side of logging an event. Events whose behavior is
// Throw are always rendered into the returned *event.WarningAsErrorError,
// whatever the logger's filter says. Other events are logged when the
// logger accepts them and skipped without rendering otherwise.
func Emit(l Logger, data *event.Data) error {
	if data == nil {
		return ErrNilData
	}
	def := data.Definition()
	if def.Behavior() == event.Throw {
		return def.WarningAsError(data.String())
	}
	if !l.ShouldLog(data.EventID(), data.Level()) {
		return nil
	}
	return l.Log(data)
}
