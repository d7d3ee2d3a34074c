package picofmt

import (
	"io"
	"os"
)

// Sink consumes rendered output one character at a time. The engine
// calls it once per output byte, in order, and never retains it beyond
// the rendering call. Any state the sink needs lives in its closure.
type Sink func(c byte)

// printer is the rendering state for a single call: the destination
// sink and the running character count. Every pipeline stage receives
// it by pointer.
type printer struct {
	sink Sink
	n    int
}

func (p *printer) put(c byte) {
	p.sink(c)
	p.n++
}

// Format renders format against args, delivering every output
// character to sink, and returns the number of characters produced.
// It is the primitive the other entry points are built on.
func Format(sink Sink, format string, args ...any) int {
	p := printer{sink: sink}
	p.run(format, args)
	return p.n
}

// Sprintf renders format against args and returns the result as a
// string.
func Sprintf(format string, args ...any) string {
	return string(Append(nil, format, args...))
}

// Append renders format against args, appends the output to dst, and
// returns the extended slice. When dst has enough spare capacity the
// backing array is reused.
func Append(dst []byte, format string, args ...any) []byte {
	Format(func(c byte) { dst = append(dst, c) }, format, args...)
	return dst
}

// Snprintf renders format against args into buf under the C snprintf
// contract: at most len(buf)-1 content bytes are stored, buf always
// ends up NUL terminated when len(buf) >= 1, and a zero-length buf is
// left untouched. The return value is the length the full output would
// have had, which exceeds len(buf)-1 when the result was truncated.
func Snprintf(buf []byte, format string, args ...any) int {
	if len(buf) == 0 {
		return Format(func(byte) {}, format, args...)
	}
	pos := 0
	n := Format(func(c byte) {
		if pos < len(buf)-1 {
			buf[pos] = c
			pos++
		}
	}, format, args...)
	buf[pos] = 0
	return n
}

// Fprintf renders format against args to w. Each character is written
// individually; wrap w in a [bufio.Writer] when that is too chatty for
// the destination. After the first write error the remaining output is
// discarded while rendering runs to completion. Fprintf returns the
// number of bytes successfully written and the first error.
func Fprintf(w io.Writer, format string, args ...any) (int, error) {
	var werr error
	var one [1]byte
	n := 0
	Format(func(c byte) {
		if werr != nil {
			return
		}
		one[0] = c
		if _, err := w.Write(one[:]); err != nil {
			werr = err
			return
		}
		n++
	}, format, args...)
	return n, werr
}

// Printf renders format against args to standard output.
func Printf(format string, args ...any) (int, error) {
	return Fprintf(os.Stdout, format, args...)
}
