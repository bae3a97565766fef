package textio

import (
	"bufio"
	"io"

	"golang.org/x/text/encoding"
	textenc "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Emitter writes logical lines to the output sink, one terminator per line.
type Emitter struct {
	buf       *bufio.Writer
	transcode io.Closer
	flushEach bool
}

// NewEmitter wraps sink. With wide set, output is encoded as UTF-16LE with
// a leading BOM. With flushEach set, every emitted line is pushed through
// to the sink immediately.
func NewEmitter(sink io.Writer, wide, flushEach bool) *Emitter {
	e := &Emitter{flushEach: flushEach}
	if wide {
		var enc encoding.Encoding = textenc.UTF16(textenc.LittleEndian, textenc.UseBOM)
		tw := transform.NewWriter(sink, enc.NewEncoder())
		e.transcode = tw
		e.buf = bufio.NewWriter(tw)
	} else {
		e.buf = bufio.NewWriter(sink)
	}
	return e
}

// Emit writes one line followed by the line terminator. Lines already
// written stay written when a later write fails.
func (e *Emitter) Emit(line string) error {
	if _, err := e.buf.WriteString(line); err != nil {
		return err
	}
	if err := e.buf.WriteByte('\n'); err != nil {
		return err
	}
	if e.flushEach {
		return e.buf.Flush()
	}
	return nil
}

// Close flushes whatever is still buffered and finalizes the transcoder.
func (e *Emitter) Close() error {
	if err := e.buf.Flush(); err != nil {
		return err
	}
	if e.transcode != nil {
		return e.transcode.Close()
	}
	return nil
}
