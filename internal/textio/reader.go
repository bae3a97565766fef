// Package textio turns raw byte streams into logical lines and back.
// It owns the read-buffer discipline (including recovery from lines longer
// than the buffer), the trim and blank-skip rules, and the UTF-8/UTF-16
// transcoding of both directions.
package textio

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/encoding"
	textenc "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// BufferSize is the fixed capacity of one physical read. A logical line
// longer than this is accepted once, as a truncated fragment; the rest of
// it is discarded.
const BufferSize = 128 * 1024

// Reader yields logical lines from one source.
type Reader struct {
	src       *bufio.Reader
	trim      bool
	skipBlank bool
}

// NewReader wraps src. With wide set, input is decoded from UTF-16
// (BOM-aware, little-endian when no BOM); otherwise a UTF-8 BOM is
// stripped if present.
func NewReader(src io.Reader, wide, trim, skipBlank bool) *Reader {
	var enc encoding.Encoding = textenc.UTF8BOM
	if wide {
		enc = textenc.UTF16(textenc.LittleEndian, textenc.UseBOM)
	}
	decoded := transform.NewReader(src, enc.NewDecoder())
	return &Reader{
		src:       bufio.NewReaderSize(decoded, BufferSize),
		trim:      trim,
		skipBlank: skipBlank,
	}
}

// ReadAll pulls logical lines until end of source, passing each accepted
// line to accept. A buffer-filling chunk without a terminator is accepted
// as-is; the continuation chunks of the same logical line are read and
// dropped until the terminator, so an oversized line never yields more
// than one output line.
func (r *Reader) ReadAll(accept func(string)) error {
	truncatedLast := false
	for {
		chunk, err := r.src.ReadSlice('\n')
		atEOF := false
		truncated := false
		switch {
		case err == nil:
			// complete line
		case errors.Is(err, bufio.ErrBufferFull):
			truncated = true
		case errors.Is(err, io.EOF):
			if len(chunk) == 0 {
				return nil
			}
			atEOF = true
		default:
			return err
		}

		line := string(trimEOL(chunk))
		if r.trim {
			line = Trim(line)
		}
		if !truncatedLast && !(r.skipBlank && IsBlank(line)) {
			accept(line)
		}
		truncatedLast = truncated

		if atEOF {
			return nil
		}
	}
}

// trimEOL drops the terminator: a trailing \n and the \r of a \r\n pair.
func trimEOL(chunk []byte) []byte {
	if n := len(chunk); n > 0 && chunk[n-1] == '\n' {
		chunk = chunk[:n-1]
		if n := len(chunk); n > 0 && chunk[n-1] == '\r' {
			chunk = chunk[:n-1]
		}
	}
	return chunk
}

// Trim strips leading and trailing whitespace-or-control characters.
func Trim(s string) string {
	return strings.TrimFunc(s, isSpaceOrControl)
}

// IsBlank reports whether s consists entirely of whitespace-or-control
// characters. The empty string is blank.
func IsBlank(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !isSpaceOrControl(r) }) < 0
}

func isSpaceOrControl(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsControl(r)
}
