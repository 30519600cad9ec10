// Package sink delivers formatted activity lines to their destination.
package sink

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Sink receives one formatted line per activity event.
type Sink interface {
	Emit(line string)
}

// ZapSink logs each line as one Info entry on the given logger.
type ZapSink struct {
	logger *zap.Logger
}

// NewZapSink creates a sink backed by logger.
func NewZapSink(logger *zap.Logger) *ZapSink {
	return &ZapSink{logger: logger}
}

// Emit logs the line.
func (s *ZapSink) Emit(line string) {
	s.logger.Info(line)
}

// WriterSink writes one newline-terminated line per event.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink creates a sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Emit writes the line followed by a newline.
func (s *WriterSink) Emit(line string) {
	fmt.Fprintln(s.w, line)
}
