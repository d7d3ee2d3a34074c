package picofmt

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirectiveEverything(t *testing.T) {
	t.Parallel()
	pd, end, ok := parseDirective("0- +#12.4llxrest", 0)
	require.True(t, ok)
	assert.True(t, pd.zeroPad)
	assert.True(t, pd.minus)
	assert.True(t, pd.plus)
	assert.True(t, pd.space)
	assert.True(t, pd.alt)
	assert.Equal(t, 12, pd.width)
	assert.True(t, pd.precSet)
	assert.Equal(t, 4, pd.prec)
	assert.Equal(t, "ll", pd.modifier)
	assert.Equal(t, uint8(64), pd.bits)
	assert.Equal(t, byte('x'), pd.verb)
	assert.Equal(t, len("0- +#12.4llx"), end)
}

func TestParseDirectiveRepeatedFlags(t *testing.T) {
	t.Parallel()
	pd, _, ok := parseDirective("--00d", 0)
	require.True(t, ok)
	assert.True(t, pd.minus)
	assert.True(t, pd.zeroPad)
	assert.Equal(t, byte('d'), pd.verb)
}

func TestParseDirectiveBareDot(t *testing.T) {
	t.Parallel()
	// A '.' with no digits means precision zero, not "no precision".
	pd, _, ok := parseDirective(".d", 0)
	require.True(t, ok)
	assert.True(t, pd.precSet)
	assert.Equal(t, 0, pd.prec)
}

func TestParseDirectiveStars(t *testing.T) {
	t.Parallel()
	pd, _, ok := parseDirective("*.*s", 0)
	require.True(t, ok)
	assert.True(t, pd.widthStar)
	assert.True(t, pd.precStar)
	assert.True(t, pd.precSet)
	assert.Equal(t, byte('s'), pd.verb)
}

func TestParseDirectiveIncomplete(t *testing.T) {
	t.Parallel()
	for _, frag := range []string{"", "0", "-5", ".", ".*", "05.2", "ll", "h"} {
		_, _, ok := parseDirective(frag, 0)
		assert.False(t, ok, "fragment %q", frag)
	}
}

func TestParseDirectiveModifierBits(t *testing.T) {
	t.Parallel()
	word := uint8(bits.UintSize)
	tests := map[string]uint8{
		"d":   32,
		"hhd": 8,
		"hd":  16,
		"ld":  word,
		"lld": 64,
		"jd":  64,
		"zd":  word,
		"td":  word,
	}
	for frag, want := range tests {
		pd, _, ok := parseDirective(frag, 0)
		require.True(t, ok, "fragment %q", frag)
		assert.Equal(t, want, pd.bits, "fragment %q", frag)
	}
}

func TestAtoiFieldStopsAtNonDigit(t *testing.T) {
	t.Parallel()
	n, i := atoiField("123abc", 0)
	assert.Equal(t, 123, n)
	assert.Equal(t, 3, i)
}

func TestAtoiFieldSaturates(t *testing.T) {
	t.Parallel()
	n, i := atoiField("99999999999999999999d", 0)
	assert.Equal(t, maxField, n)
	assert.Equal(t, 20, i)
}

func TestDigitCountDecimal32(t *testing.T) {
	t.Parallel()
	tests := map[uint32]int{
		0:          1,
		9:          1,
		10:         2,
		99:         2,
		100:        3,
		999999999:  9,
		1000000000: 10,
		4294967295: 10,
	}
	for v, want := range tests {
		assert.Equal(t, want, digitCount(v, baseDecimal, pow10x32[:]), "value %d", v)
	}
}

func TestDigitCountDecimal64(t *testing.T) {
	t.Parallel()
	tests := map[uint64]int{
		0:                    1,
		9999999999:           10,
		10000000000:          11,
		9999999999999999999:  19,
		10000000000000000000: 20,
		18446744073709551615: 20,
	}
	for v, want := range tests {
		assert.Equal(t, want, digitCount(v, baseDecimal, pow10x64[:]), "value %d", v)
	}
}

func TestDigitCountShiftBases(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 3, digitCount(uint32(5), baseBinary, pow10x32[:]))
	assert.Equal(t, 2, digitCount(uint32(8), baseOctal, pow10x32[:]))
	assert.Equal(t, 2, digitCount(uint32(255), baseHex, pow10x32[:]))
	assert.Equal(t, 64, digitCount(uint64(1)<<63, baseBinary, pow10x64[:]))
	assert.Equal(t, 16, digitCount(uint64(0xFFFFFFFFFFFFFFFF), baseHex, pow10x64[:]))
}

func TestPrepareZeroRules(t *testing.T) {
	t.Parallel()
	d := directive{alt: true, base: baseHex}
	prepare(&d, uint32(0), pow10x32[:])
	assert.False(t, d.alt, "alternate form must drop for zero")
	assert.Equal(t, 1, d.digits)

	d = directive{precSet: true, prec: 0}
	prepare(&d, uint32(0), pow10x32[:])
	assert.Equal(t, 0, d.digits, "zero precision suppresses a zero value")

	d = directive{precSet: true, prec: 3}
	prepare(&d, uint32(0), pow10x32[:])
	assert.Equal(t, 1, d.digits)
}

func TestTruncSigned(t *testing.T) {
	t.Parallel()
	assert.Equal(t, int64(-128), truncSigned(384, 8))
	assert.Equal(t, int64(127), truncSigned(-129, 8))
	assert.Equal(t, int64(-25536), truncSigned(40000, 16))
	assert.Equal(t, int64(705032704), truncSigned(5000000000, 32))
	assert.Equal(t, int64(5000000000), truncSigned(5000000000, 64))
}

func TestTruncUnsigned(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uint64(0x34), truncUnsigned(0x1234, 8))
	assert.Equal(t, uint64(0x2345), truncUnsigned(0x12345, 16))
	assert.Equal(t, uint64(0xFFFFFFFF), truncUnsigned(^uint64(0), 32))
	assert.Equal(t, ^uint64(0), truncUnsigned(^uint64(0), 64))
}

func TestClampField(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, clampField(0))
	assert.Equal(t, 42, clampField(42))
	assert.Equal(t, maxField, clampField(int64(maxField)+1))
	assert.Equal(t, maxField, clampField(-1))
}

func TestPadNumberBudget(t *testing.T) {
	t.Parallel()
	var out []byte
	p := printer{sink: func(c byte) { out = append(out, c) }}

	// "%#05x" of one digit: prefix claims two columns, zeros the rest.
	d := directive{zeroPad: true, alt: true, width: 5, base: baseHex, digits: 1}
	p.padNumber(&d)
	assert.Equal(t, "0x00", string(out))
	assert.Equal(t, 0, d.width)

	// Right justified with sign reservation: spaces then sign.
	out = out[:0]
	d = directive{plus: true, width: 5, base: baseDecimal, digits: 1}
	p.padNumber(&d)
	assert.Equal(t, "   +", string(out))

	// Left justified keeps the budget for the trailing pad.
	out = out[:0]
	d = directive{minus: true, precSet: true, prec: 3, width: 8, base: baseDecimal, digits: 2}
	p.padNumber(&d)
	assert.Empty(t, string(out))
	assert.Equal(t, 5, d.width, "trailing pad budget after digit, precision reserves")
}

func TestIntegerBitsExtension(t *testing.T) {
	t.Parallel()
	n, ok := integerBits(int8(-1))
	require.True(t, ok)
	assert.Equal(t, int64(-1), n, "signed kinds sign extend")

	n, ok = integerBits(uint32(0xFFFFFFFF))
	require.True(t, ok)
	assert.Equal(t, int64(0xFFFFFFFF), n, "unsigned kinds zero extend")

	n, ok = integerBits(uint64(0xFFFFFFFFFFFFFFFF))
	require.True(t, ok)
	assert.Equal(t, int64(-1), n, "uint64 keeps its bit pattern")

	_, ok = integerBits("nope")
	assert.False(t, ok)
}
