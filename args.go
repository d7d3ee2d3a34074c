package picofmt

import "unsafe"

// argReader walks the variadic argument list in strict left-to-right
// order. Each directive takes its dynamic width first, then its
// dynamic precision, then its value; nothing is ever pushed back or
// addressed by position.
type argReader struct {
	args []any
	pos  int
}

func (a *argReader) next() (any, bool) {
	if a.pos >= len(a.args) {
		return nil, false
	}
	v := a.args[a.pos]
	a.pos++
	return v, true
}

// fieldArg consumes one argument for a dynamic width or precision. A
// missing or non-integer argument counts as zero.
func (a *argReader) fieldArg() int64 {
	v, ok := a.next()
	if !ok {
		return 0
	}
	n, ok := integerBits(v)
	if !ok {
		return 0
	}
	return n
}

// signedArg consumes one value argument as a signed integer.
func (a *argReader) signedArg() (int64, bool) {
	v, ok := a.next()
	if !ok {
		return 0, false
	}
	return integerBits(v)
}

// unsignedArg consumes one value argument as raw integer bits. Signed
// kinds arrive sign extended, so masking to the directive's argument
// width reproduces the two's-complement reinterpretation C applies
// when a negative value meets an unsigned conversion.
func (a *argReader) unsignedArg() (uint64, bool) {
	v, ok := a.next()
	if !ok {
		return 0, false
	}
	n, ok := integerBits(v)
	return uint64(n), ok
}

// pointerArg consumes one value argument as an address. Addresses
// travel as uintptr or [unsafe.Pointer]; a nil argument is address
// zero.
func (a *argReader) pointerArg() (uintptr, bool) {
	v, ok := a.next()
	if !ok {
		return 0, false
	}
	switch ptr := v.(type) {
	case uintptr:
		return ptr, true
	case unsafe.Pointer:
		return uintptr(ptr), true
	case nil:
		return 0, true
	}
	return 0, false
}

// integerBits extracts the value bits of any integer kind into an
// int64: signed kinds sign extend, unsigned kinds zero extend. A
// uint64 above the int64 range keeps its bit pattern and round-trips
// through [argReader.unsignedArg] unchanged.
func integerBits(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	case uintptr:
		return int64(n), true
	}
	return 0, false
}
