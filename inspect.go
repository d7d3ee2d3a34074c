package picofmt

import "iter"

// Directive describes one conversion parsed from a template. It is
// the inspection view of the directive grammar: [Directives] yields
// one Directive per %-sequence so callers can audit a template or
// size an argument list without rendering anything.
type Directive struct {
	// Offset is the byte index of the introducing '%' in the template.
	// Raw is the full directive text, '%' included.
	Offset int
	Raw    string

	// Flag characters present in the directive.
	Zero  bool
	Minus bool
	Plus  bool
	Space bool
	Alt   bool

	// Width and Prec hold literal field values. WidthArg and PrecArg
	// report that the field is argument supplied instead; PrecSet
	// reports that a '.' appeared at all. A bare '.' means precision
	// zero.
	Width    int
	WidthArg bool
	Prec     int
	PrecSet  bool
	PrecArg  bool

	// Modifier is the raw length modifier ("", "h", "hh", "l", "ll",
	// "j", "z" or "t"). Verb is the conversion type character.
	Modifier string
	Verb     byte
}

// Known reports whether the directive's verb is a supported
// conversion. Directives with unknown verbs render as literal
// pass-through of the verb character.
func (d Directive) Known() bool {
	switch d.Verb {
	case 'd', 'i', 'u', 'x', 'X', 'o', 'b', 'c', 's', 'p', '%':
		return true
	}
	return false
}

// NumArgs returns how many arguments the directive consumes when
// rendered: one each for a dynamic width, a dynamic precision, and
// the converted value. %% and unknown verbs take no value argument
// but still consume any dynamic fields.
func (d Directive) NumArgs() int {
	n := 0
	if d.WidthArg {
		n++
	}
	if d.PrecArg {
		n++
	}
	switch d.Verb {
	case 'd', 'i', 'u', 'x', 'X', 'o', 'b', 'c', 's', 'p':
		n++
	}
	return n
}

// Directives iterates the conversion directives of a template in
// order. Literal text between directives is skipped, as is a trailing
// fragment with no type character, mirroring what rendering does with
// it.
func Directives(format string) iter.Seq[Directive] {
	return func(yield func(Directive) bool) {
		for i := 0; i < len(format); {
			if format[i] != '%' {
				i++
				continue
			}
			pd, end, ok := parseDirective(format, i+1)
			if !ok {
				return
			}
			if !yield(describe(pd, format, i, end)) {
				return
			}
			i = end
		}
	}
}

func describe(pd parsed, format string, start, end int) Directive {
	return Directive{
		Offset:   start,
		Raw:      format[start:end],
		Zero:     pd.zeroPad,
		Minus:    pd.minus,
		Plus:     pd.plus,
		Space:    pd.space,
		Alt:      pd.alt,
		Width:    pd.width,
		WidthArg: pd.widthStar,
		Prec:     pd.prec,
		PrecSet:  pd.precSet,
		PrecArg:  pd.precStar,
		Modifier: pd.modifier,
		Verb:     pd.verb,
	}
}
