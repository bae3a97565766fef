package textio

import (
	"bytes"
	"errors"
	"testing"
)

func TestEmitterWritesTerminatedLines(t *testing.T) {
	var buf bytes.Buffer
	em := NewEmitter(&buf, false, false)
	for _, line := range []string{"one", "two", ""} {
		if err := em.Emit(line); err != nil {
			t.Fatalf("Emit(%q): %v", line, err)
		}
	}
	if err := em.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	want := "one\ntwo\n\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestEmitterForceFlush(t *testing.T) {
	var buf bytes.Buffer
	em := NewEmitter(&buf, false, true)
	if err := em.Emit("visible"); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	// The line must reach the sink before Close.
	if got := buf.String(); got != "visible\n" {
		t.Errorf("after Emit, sink = %q, want %q", got, "visible\n")
	}
	if err := em.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestEmitterUTF16Output(t *testing.T) {
	var buf bytes.Buffer
	em := NewEmitter(&buf, true, false)
	if err := em.Emit("ab"); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if err := em.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	want := []byte{0xFF, 0xFE, 'a', 0, 'b', 0, '\n', 0}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("output = % X, want % X", buf.Bytes(), want)
	}
}

type failingWriter struct {
	err error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	return 0, w.err
}

func TestEmitterSurfacesWriteFailure(t *testing.T) {
	sinkErr := errors.New("sink rejected write")
	em := NewEmitter(&failingWriter{err: sinkErr}, false, true)
	if err := em.Emit("doomed"); !errors.Is(err, sinkErr) {
		t.Fatalf("Emit error = %v, want %v", err, sinkErr)
	}
}
