package picofmt

// Power-of-ten tables for the two converter widths. Digit counting
// finds the smallest k with value < 10^k, and digit emission divides
// by the shrinking table entry, so every decimal digit costs one
// division and the count is known before the first character goes out.
var (
	pow10x32 = [...]uint32{
		1,
		10,
		100,
		1000,
		10000,
		100000,
		1000000,
		10000000,
		100000000,
		1000000000,
	}
	pow10x64 = [...]uint64{
		1,
		10,
		100,
		1000,
		10000,
		100000,
		1000000,
		10000000,
		100000000,
		1000000000,
		10000000000,
		100000000000,
		1000000000000,
		10000000000000,
		100000000000000,
		1000000000000000,
		10000000000000000,
		100000000000000000,
		1000000000000000000,
		10000000000000000000,
	}
)

// Bits per digit and digit mask for the shift-and-mask bases, indexed
// by base. The decimal entries are placeholders.
var (
	baseBits = [4]uint{1, 3, 0, 4}
	baseMask = [4]uint8{1, 7, 0, 15}
)

// uinteger is the pair of magnitude widths the converter is
// instantiated at. Arguments of 32 bits or fewer run on uint32, 64-bit
// arguments on uint64.
type uinteger interface {
	~uint32 | ~uint64
}

// digitCount returns the digit characters needed for v in base b: the
// smallest k with v < 10^k for decimal, or the occupied digit groups
// for the shift bases. Zero counts as one digit here; the zero
// suppression rule lives in prepare.
func digitCount[U uinteger](v U, b base, pow10 []U) int {
	if v == 0 {
		return 1
	}
	if b == baseDecimal {
		n := 0
		for n < len(pow10) && v >= pow10[n] {
			n++
		}
		return n
	}
	n := 0
	for ; v > 0; v >>= baseBits[b] {
		n++
	}
	return n
}

// prepare fixes the directive's digit count for magnitude v and
// applies the two zero-value rules: an explicit zero precision
// suppresses the digits entirely, and the alternate-form prefix never
// appears on a zero value.
func prepare[U uinteger](d *directive, v U, pow10 []U) {
	if v == 0 {
		d.alt = false
		if d.precSet && d.prec == 0 {
			d.digits = 0
			return
		}
		d.digits = 1
		return
	}
	d.digits = digitCount(v, d.base, pow10)
}

// emitDigits writes the magnitude most significant digit first, then
// any trailing pad a left-justified field still owes. It consumes
// d.digits and, for the trailing pad, whatever the field formatter
// left in d.width.
func emitDigits[U uinteger](p *printer, d *directive, v U, pow10 []U) {
	switch {
	case d.digits == 0:
		// Zero value suppressed by zero precision.
	case v == 0:
		p.put('0')
	case d.base == baseDecimal:
		for ; d.digits > 0; d.digits-- {
			div := pow10[d.digits-1]
			p.put('0' + byte(v/div))
			v %= div
		}
	default:
		shift := baseBits[d.base]
		mask := U(baseMask[d.base])
		for ; d.digits > 0; d.digits-- {
			digit := byte(v >> (uint(d.digits-1) * shift) & mask)
			p.put(digitChar(digit, d.upper))
		}
	}
	for d.minus && d.width > 0 {
		p.put(' ')
		d.width--
	}
}

func digitChar(digit byte, upper bool) byte {
	if digit < 10 {
		return '0' + digit
	}
	if upper {
		return 'A' + digit - 10
	}
	return 'a' + digit - 10
}

// formatNumber is the full numeric pipeline for one magnitude: count
// digits, emit the field prelude, emit the digits.
func formatNumber[U uinteger](p *printer, d *directive, v U, pow10 []U) {
	prepare(d, v, pow10)
	p.padNumber(d)
	emitDigits(p, d, v, pow10)
}

// truncSigned narrows v to the directive's argument width with sign
// extension, mirroring C's conversion through signed char, short and
// int.
func truncSigned(v int64, bits uint8) int64 {
	switch bits {
	case 8:
		return int64(int8(v))
	case 16:
		return int64(int16(v))
	case 32:
		return int64(int32(v))
	}
	return v
}

// truncUnsigned masks v to the directive's argument width.
func truncUnsigned(v uint64, bits uint8) uint64 {
	switch bits {
	case 8:
		return v & 0xff
	case 16:
		return v & 0xffff
	case 32:
		return v & 0xffffffff
	}
	return v
}

// signed renders %d and %i. The magnitude is the two's-complement
// negation of the truncated value, which is exact even for the most
// negative value of each width.
func (p *printer) signed(d *directive, verb byte, ar *argReader) {
	d.base = baseDecimal
	d.alt = false
	if d.precSet {
		d.zeroPad = false
	}
	v, ok := ar.signedArg()
	if !ok {
		p.badVerb(verb)
		return
	}
	v = truncSigned(v, d.bits)
	d.negative = v < 0
	mag := uint64(v)
	if d.negative {
		mag = -mag
	}
	if d.bits == 64 {
		formatNumber(p, d, mag, pow10x64[:])
	} else {
		formatNumber(p, d, uint32(mag), pow10x32[:])
	}
}

// unsigned renders %u, %x, %X, %o and %b. Sign flags do not apply to
// unsigned conversions and are dropped.
func (p *printer) unsigned(d *directive, verb byte, ar *argReader) {
	switch verb {
	case 'x':
		d.base = baseHex
	case 'X':
		d.base = baseHex
		d.upper = true
	case 'o':
		d.base = baseOctal
	case 'b':
		d.base = baseBinary
	default:
		d.base = baseDecimal
		d.alt = false
	}
	d.plus = false
	d.space = false
	if d.precSet {
		d.zeroPad = false
	}
	v, ok := ar.unsignedArg()
	if !ok {
		p.badVerb(verb)
		return
	}
	v = truncUnsigned(v, d.bits)
	if d.bits == 64 {
		formatNumber(p, d, v, pow10x64[:])
	} else {
		formatNumber(p, d, uint32(v), pow10x32[:])
	}
}

// pointer renders %p: the address as exactly wordBits/4 uppercase hex
// digits, zero padded. The directive's own flags, width and precision
// are discarded so the output shape is fixed for a given platform.
func (p *printer) pointer(d *directive, ar *argReader) {
	v, ok := ar.pointerArg()
	if !ok {
		p.badVerb('p')
		return
	}
	*d = directive{
		zeroPad: true,
		upper:   true,
		width:   wordBits / 4,
		base:    baseHex,
		bits:    wordBits,
	}
	if wordBits == 64 {
		formatNumber(p, d, uint64(v), pow10x64[:])
	} else {
		formatNumber(p, d, uint32(v), pow10x32[:])
	}
}
