package formatter

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/philipp01105/couchlog/core"
)

const (
	// padding aligns continuation lines under the level label
	padding = "      "
	// singleLineMarker separates the prefix from a single line message
	singleLineMarker = "-> "
	newline          = "\n"

	localTimeLayout = "2006-01-02 15:04:05.000 "
	utcTimeLayout   = "2006-01-02T15:04:05.0000000Z07:00"
)

// pre-formatted level labels
var levelLabels = [...]string{
	core.TraceLevel:       "trce: ",
	core.DebugLevel:       "dbug: ",
	core.InformationLevel: "info: ",
	core.WarningLevel:     "warn: ",
	core.ErrorLevel:       "fail: ",
	core.CriticalLevel:    "crit: ",
}

var (
	lineBreakStripper = strings.NewReplacer("\r\n", "", "\n", "")
	lineBreakPadder   = strings.NewReplacer("\r\n", "\r\n"+padding, "\n", "\n"+padding)
)

// LineFormatter renders an event into a single text line
type LineFormatter struct {
	Config
}

// NewLineFormatter creates a new line formatter
func NewLineFormatter(cfg Config) *LineFormatter {
	if cfg.Clock == nil {
		cfg.Clock = core.SystemClock
	}
	return &LineFormatter{Config: cfg}
}

// Format renders the event message and decorates it according to Options
func (f *LineFormatter) Format(e Event) string {
	message := e.String()
	if f.Options == None {
		return message
	}

	buf := getBuffer()
	defer putBuffer(buf)

	f.writePrefix(buf, e)

	switch {
	case f.Options == SingleLine:
		buf.WriteString(message)
		return lineBreakStripper.Replace(buf.String())
	case f.Options.Has(SingleLine):
		buf.WriteString(singleLineMarker)
		lineBreakStripper.WriteString(buf, message)
	default:
		buf.WriteString(newline)
		lineBreakPadder.WriteString(buf, message)
	}
	return buf.String()
}

// LevelLabel returns the six character label for a level, or "none"
func LevelLabel(level core.Level) string {
	if level >= 0 && int(level) < len(levelLabels) {
		return levelLabels[level]
	}
	return "none"
}

// writePrefix writes the enabled segments in their fixed order
func (f *LineFormatter) writePrefix(buf *bytes.Buffer, e Event) {
	if f.Options.Has(Level) {
		buf.WriteString(LevelLabel(e.Level()))
	}

	if f.Options&(LocalTime|UTCTime) != 0 {
		now := f.Clock()
		if f.Options.Has(LocalTime) {
			buf.Write(now.Local().AppendFormat(buf.AvailableBuffer(), localTimeLayout))
		}
		if f.Options.Has(UTCTime) {
			buf.Write(now.UTC().AppendFormat(buf.AvailableBuffer(), utcTimeLayout))
			buf.WriteByte(' ')
		}
	}

	if f.Options.Has(ID) {
		buf.WriteString(e.Code())
		buf.WriteByte('[')
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(e.EventID().ID()), 10))
		buf.WriteString("] ")
	}

	if f.Options.Has(Category) {
		name := e.EventID().Name()
		if lastDot := strings.LastIndexByte(name, '.'); lastDot > 0 {
			buf.WriteByte('(')
			buf.WriteString(name[:lastDot])
			buf.WriteString(") ")
		}
	}
}
