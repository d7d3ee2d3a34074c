package picofmt

import "math/bits"

// base is the radix used for digit extraction.
type base uint8

const (
	baseBinary  base = iota // shift-and-mask, 1 bit per digit
	baseOctal               // shift-and-mask, 3 bits per digit
	baseDecimal             // power-of-ten division
	baseHex                 // shift-and-mask, 4 bits per digit
)

// wordBits is the pointer-size argument width used by the l, z and t
// length modifiers and by %p.
const wordBits = bits.UintSize

// maxField caps parsed and argument-supplied width and precision.
// Values beyond it saturate rather than wrap.
const maxField = 1<<31 - 1

// directive is the working descriptor for one conversion. The width,
// prec and digits fields double as cursors during emission: the field
// formatter consumes width and prec while padding, and the magnitude
// converter consumes digits while emitting, so whatever remains of
// width afterwards is the trailing pad a left-justified field owes.
type directive struct {
	zeroPad  bool // '0'
	minus    bool // '-'
	plus     bool // '+'
	space    bool // ' '
	alt      bool // '#'
	upper    bool // %X
	precSet  bool // '.' was present
	negative bool

	width  int
	prec   int
	base   base
	bits   uint8 // argument width in bits: 8, 16, 32 or 64
	digits int   // magnitude digit count, set by prepare
}

// parsed is a directive plus the parse-only detail that rendering and
// inspection need: dynamic-field markers, the raw length modifier, and
// the type character.
type parsed struct {
	directive
	widthStar bool
	precStar  bool
	modifier  string
	verb      byte
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func clampField(v int64) int {
	if v < 0 || v > maxField {
		return maxField
	}
	return int(v)
}

// atoiField parses a run of decimal digits starting at format[i] and
// returns the value, saturated at [maxField], and the index past the
// run.
func atoiField(format string, i int) (int, int) {
	n := int64(0)
	for ; i < len(format) && isDigit(format[i]); i++ {
		if n < maxField {
			n = n*10 + int64(format[i]-'0')
		}
	}
	return clampField(n), i
}

// parseDirective parses the conversion beginning at format[i], the
// byte after the '%', and returns its description plus the index past
// the type character. ok is false when the template ends before a type
// character appears; such a trailing fragment renders as nothing.
func parseDirective(format string, i int) (pd parsed, end int, ok bool) {
	pd.bits = 32

flags:
	for i < len(format) {
		switch format[i] {
		case '0':
			pd.zeroPad = true
		case '-':
			pd.minus = true
		case '+':
			pd.plus = true
		case ' ':
			pd.space = true
		case '#':
			pd.alt = true
		default:
			break flags
		}
		i++
	}

	if i < len(format) && isDigit(format[i]) {
		pd.width, i = atoiField(format, i)
	} else if i < len(format) && format[i] == '*' {
		pd.widthStar = true
		i++
	}

	if i < len(format) && format[i] == '.' {
		pd.precSet = true
		i++
		if i < len(format) && isDigit(format[i]) {
			pd.prec, i = atoiField(format, i)
		} else if i < len(format) && format[i] == '*' {
			pd.precStar = true
			i++
		}
	}

	mod := i
	if i < len(format) {
		switch format[i] {
		case 'l':
			i++
			pd.bits = wordBits
			if i < len(format) && format[i] == 'l' {
				i++
				pd.bits = 64
			}
		case 'h':
			i++
			pd.bits = 16
			if i < len(format) && format[i] == 'h' {
				i++
				pd.bits = 8
			}
		case 'j':
			i++
			pd.bits = 64
		case 'z', 't':
			i++
			pd.bits = wordBits
		}
	}
	pd.modifier = format[mod:i]

	if i >= len(format) {
		return pd, i, false
	}
	pd.verb = format[i]
	return pd, i + 1, true
}

// run renders the whole template: literal bytes pass straight through
// and each '%' starts a directive. Arguments are consumed strictly
// left to right, width before precision before value.
func (p *printer) run(format string, args []any) {
	ar := argReader{args: args}
	for i := 0; i < len(format); {
		if format[i] != '%' {
			p.put(format[i])
			i++
			continue
		}
		pd, end, ok := parseDirective(format, i+1)
		if !ok {
			return
		}
		i = end
		p.render(&pd, &ar)
	}
}

// render resolves dynamic fields and dispatches one directive. A
// negative argument-supplied width selects left justification with the
// absolute value; a negative precision means zero.
func (p *printer) render(pd *parsed, ar *argReader) {
	d := pd.directive
	if pd.widthStar {
		w := ar.fieldArg()
		if w < 0 {
			d.minus = true
			w = -w
		}
		d.width = clampField(w)
	}
	if pd.precStar {
		pr := ar.fieldArg()
		if pr < 0 {
			pr = 0
		}
		d.prec = clampField(pr)
	}
	switch pd.verb {
	case 'd', 'i':
		p.signed(&d, pd.verb, ar)
	case 'u', 'x', 'X', 'o', 'b':
		p.unsigned(&d, pd.verb, ar)
	case 'c':
		p.char(&d, ar)
	case 's':
		p.str(&d, ar)
	case 'p':
		p.pointer(&d, ar)
	case '%':
		p.put('%')
	default:
		p.put(pd.verb)
	}
}

// badVerb marks a missing or mistyped value argument in the output, in
// the manner of package fmt but without allocating.
func (p *printer) badVerb(verb byte) {
	p.put('%')
	p.put('!')
	p.put(verb)
}
