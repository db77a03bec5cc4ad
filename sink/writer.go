package sink

import (
	"io"
	"os"
	"sync"
)

// WriterConfig holds configuration for a writer sink
type WriterConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Newline terminates every line (default: "\n")
	Newline string
}

type writerSink struct {
	mu      sync.Mutex
	writer  io.Writer
	newline string
	buf     []byte
}

// NewWriter creates a sink that writes each line followed by Newline
func NewWriter(cfg WriterConfig) Sink {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Newline == "" {
		cfg.Newline = "\n"
	}
	s := &writerSink{
		writer:  cfg.Writer,
		newline: cfg.Newline,
		buf:     make([]byte, 0, 256),
	}
	return s.write
}

// Writer creates a sink writing newline terminated lines to w
func Writer(w io.Writer) Sink {
	return NewWriter(WriterConfig{Writer: w})
}

// Console creates a sink writing newline terminated lines to stdout
func Console() Sink {
	return NewWriter(WriterConfig{})
}

// write issues a single Write per line so concurrent lines never interleave
func (s *writerSink) write(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buf = append(s.buf[:0], line...)
	s.buf = append(s.buf, s.newline...)
	_, err := s.writer.Write(s.buf)
	if cap(s.buf) > 64*1024 { // Don't keep very large buffers
		s.buf = make([]byte, 0, 256)
	}
	return err
}
