package formatter

import (
	"bytes"
	"sync"

	"github.com/philipp01105/couchlog/core"
)

// Event is what a formatter needs from an event payload.
// String renders the message and is called at most once per Format.
type Event interface {
	EventID() core.EventID
	Level() core.Level
	Code() string
	String() string
}

// Config holds formatter configuration
type Config struct {
	// Options selects the prefix segments and line handling (default: None)
	Options Options
	// Clock supplies timestamps for LocalTime and UtcTime (default: core.SystemClock)
	Clock core.Clock
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
