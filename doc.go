// Package picofmt renders C printf-style format templates with the
// semantics of the small printf engines used in embedded firmware.
//
// The template grammar is %[flags][width][.precision][length]type with
// conversions d, i, u, x, X, o, b, c, s, p and %%. Output is produced
// one character at a time through a caller-supplied [Sink], rendering
// never fails, and the render loop itself performs no allocation; an
// entry point allocates at most the closure carrying its output state.
// The package exists for Go programs that must reproduce
// firmware-formatted output byte for byte, for example when verifying
// device logs, speaking text-based device protocols, or filling
// buffers that a C peer will read as NUL terminated strings.
//
// # Entry Points
//
// [Format] is the primitive: it drives a [Sink] and returns the
// character count. The wrappers cover the usual destinations:
//
//   - [Sprintf] — returns a string
//   - [Append] — appends to a byte slice, in the manner of [strconv]
//   - [Snprintf] — fills a fixed buffer under the C snprintf contract
//   - [Fprintf] — writes to an [io.Writer]
//   - [Printf] — writes to standard output
//
// All of them return the length the output would have with unlimited
// capacity, so a truncated [Snprintf] still reports the space a full
// rendering needs:
//
//	buf := make([]byte, 8)
//	n := picofmt.Snprintf(buf, "%05d", -42) // buf holds "-0042\x00", n == 5
//
// # Grammar
//
// Flags may appear in any order and combination:
//
//   - '0' pad the field with leading zeros
//   - '-' left justify within the field
//   - '+' always emit a sign for signed conversions
//   - ' ' emit a space where the sign would go
//   - '#' alternate form: 0x/0X/0b/0 prefix for non-zero values
//
// Width and precision are decimal literals or '*', which takes the
// value from the argument list. A negative width argument selects
// left justification with the absolute value; a negative precision
// argument means zero. A '.' with no digits also means precision
// zero, which for integer conversions suppresses a zero value
// entirely.
//
// Length modifiers hh, h, l, ll, j, z and t select the argument width
// the way a C compiler would: hh is 8 bits, h is 16, no modifier is
// 32, ll and j are 64, and l, z and t take the platform word size.
// Arguments are truncated to that width before conversion, so
// picofmt.Sprintf("%hhd", 384) is "-128" exactly as on a
// microcontroller.
//
// # Differences From package fmt
//
// This engine follows C, not Go. %x expects an integer rather than
// printing a hex dump, %c takes the low byte of its argument rather
// than a rune, %s stops at the first NUL byte, and an unknown verb is
// passed through literally instead of producing an error annotation.
// %p renders as exactly 2 x pointer-size uppercase hex digits with no
// 0x prefix and accepts uintptr, [unsafe.Pointer] or nil. The only
// fmt-ism kept is the "%!" marker, followed by the verb, emitted when
// a value argument is missing or has an unsupported type, since Go
// callers cannot be handed undefined behavior instead.
//
// Floating-point conversions are not supported, matching the
// reference engines this package follows.
//
// # Arguments
//
// Arguments are consumed strictly left to right: a directive takes
// its dynamic width first, then its dynamic precision, then its
// value. Integer conversions accept every built-in integer kind;
// signed kinds sign extend and unsigned kinds zero extend before the
// length modifier truncates, so "%u" of int(-1) is 4294967295 as in
// C.
//
// # Inspection
//
// [Directives] iterates the parsed directives of a template without
// rendering it:
//
//	for d := range picofmt.Directives("%6s %#06x") {
//		fmt.Println(d.Raw, d.NumArgs())
//	}
//
// Use it to validate templates ahead of time or to build argument
// lists mechanically; [Directive.NumArgs] counts the arguments a
// directive consumes.
//
// # Concurrency
//
// The engine keeps no state between calls. Concurrent calls are safe
// as long as each call gets its own sink; a shared sink needs the
// caller's own synchronization.
package picofmt
