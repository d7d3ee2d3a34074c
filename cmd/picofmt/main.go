// Command picofmt renders a printf style template against string
// arguments, following printf(1) where the two overlap: backslash
// escapes in literal text, C constant syntax for numeric arguments,
// and template reuse until the argument list is exhausted.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-runewidth"

	"github.com/bjaus/picofmt"
)

var cli struct {
	Explain  bool     `help:"Describe the template's directives instead of rendering"`
	Template string   `arg:"" help:"printf style template"`
	Args     []string `arg:"" optional:"" help:"Arguments bound to the template's directives in order"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("picofmt"),
		kong.Description("picofmt - render printf style templates with C conversion semantics"),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(run(os.Stdout, cli.Explain, cli.Template, cli.Args))
}

func run(w io.Writer, explain bool, template string, args []string) error {
	if explain {
		return explainTemplate(w, template)
	}
	need := 0
	for d := range picofmt.Directives(template) {
		need += d.NumArgs()
	}
	var out []byte
	var err error
	rest := args
	for {
		out, rest, err = renderPass(out, template, rest)
		if err != nil {
			return err
		}
		if need == 0 || len(rest) == 0 {
			break
		}
	}
	_, err = w.Write(out)
	return err
}

// --- Rendering ---

// renderPass applies the template once against the leading arguments
// and returns the extended output plus the arguments left over.
// Escapes are interpreted in literal text only; directive text reaches
// the engine byte for byte, so an escape can produce a literal '%'
// without starting a conversion.
func renderPass(out []byte, template string, args []string) ([]byte, []string, error) {
	last := 0
	for d := range picofmt.Directives(template) {
		out = append(out, unescape(template[last:d.Offset])...)
		last = d.Offset + len(d.Raw)
		typed, rest, err := directiveArgs(d, args)
		if err != nil {
			return nil, nil, err
		}
		args = rest
		out = picofmt.Append(out, d.Raw, typed...)
	}
	tail := template[last:]
	if i := strings.IndexByte(tail, '%'); i >= 0 {
		// incomplete trailing directive, renders as nothing
		tail = tail[:i]
	}
	out = append(out, unescape(tail)...)
	return out, args, nil
}

// --- Argument typing ---

// directiveArgs types the arguments one directive consumes. Dynamic
// width and precision parse as integers, numeric verbs as C constants,
// %c takes the first byte of its argument, and %s passes the argument
// through. Exhausted arguments fall back to zero and the empty string,
// as in printf(1).
func directiveArgs(d picofmt.Directive, args []string) ([]any, []string, error) {
	typed := make([]any, 0, 3)
	take := func() (string, bool) {
		if len(args) == 0 {
			return "", false
		}
		s := args[0]
		args = args[1:]
		return s, true
	}
	field := func() (int64, error) {
		s, ok := take()
		if !ok {
			return 0, nil
		}
		return parseInt(s)
	}
	if d.WidthArg {
		n, err := field()
		if err != nil {
			return nil, nil, err
		}
		typed = append(typed, n)
	}
	if d.PrecArg {
		n, err := field()
		if err != nil {
			return nil, nil, err
		}
		typed = append(typed, n)
	}
	switch d.Verb {
	case 'd', 'i':
		s, ok := take()
		var n int64
		if ok {
			var err error
			if n, err = parseInt(s); err != nil {
				return nil, nil, err
			}
		}
		typed = append(typed, n)
	case 'u', 'x', 'X', 'o', 'b', 'p':
		s, ok := take()
		var n uint64
		if ok {
			var err error
			if n, err = parseUint(s); err != nil {
				return nil, nil, err
			}
		}
		if d.Verb == 'p' {
			typed = append(typed, uintptr(n))
		} else {
			typed = append(typed, n)
		}
	case 'c':
		s, _ := take()
		var c byte
		if s != "" {
			c = s[0]
		}
		typed = append(typed, c)
	case 's':
		s, _ := take()
		typed = append(typed, s)
	}
	return typed, args, nil
}

// parseInt reads a C integer constant: optional sign, 0x and leading
// zero base prefixes, or a leading quote yielding the code point of
// the character that follows, as in printf(1). An empty argument
// counts as zero.
func parseInt(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	if r, ok := quotedChar(s); ok {
		return int64(r), nil
	}
	n, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: expected an integer", s)
	}
	return n, nil
}

// parseUint reads like [parseInt] but keeps the full unsigned range. A
// negative constant is accepted and carries its two's-complement bit
// pattern, which the engine then truncates to the conversion's width.
func parseUint(s string) (uint64, error) {
	if s == "" {
		return 0, nil
	}
	if r, ok := quotedChar(s); ok {
		return uint64(r), nil
	}
	if strings.HasPrefix(s, "-") {
		n, err := parseInt(s)
		return uint64(n), err
	}
	n, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: expected an integer", s)
	}
	return n, nil
}

// quotedChar recognizes the printf(1) 'c and "c argument forms, whose
// value is the character after the quote.
func quotedChar(s string) (rune, bool) {
	if len(s) < 2 || (s[0] != '\'' && s[0] != '"') {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s[1:])
	return r, true
}

// --- Escapes ---

// unescape interprets printf(1) backslash escapes: \a \b \e \f \n \r
// \t \v \\, octal \NNN up to three digits, and hex \xHH up to two. An
// unrecognized escape keeps the backslash and the character.
func unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			i++
			continue
		}
		i++
		switch e := s[i]; e {
		case 'a':
			b.WriteByte('\a')
			i++
		case 'b':
			b.WriteByte('\b')
			i++
		case 'e':
			b.WriteByte(0x1b)
			i++
		case 'f':
			b.WriteByte('\f')
			i++
		case 'n':
			b.WriteByte('\n')
			i++
		case 'r':
			b.WriteByte('\r')
			i++
		case 't':
			b.WriteByte('\t')
			i++
		case 'v':
			b.WriteByte('\v')
			i++
		case '\\':
			b.WriteByte('\\')
			i++
		case 'x':
			v, digits := 0, 0
			j := i + 1
			for j < len(s) && digits < 2 {
				d, ok := hexDigit(s[j])
				if !ok {
					break
				}
				v = v<<4 | d
				j++
				digits++
			}
			if digits == 0 {
				b.WriteString(`\x`)
				i++
			} else {
				b.WriteByte(byte(v))
				i = j
			}
		default:
			if e < '0' || e > '7' {
				b.WriteByte('\\')
				b.WriteByte(e)
				i++
				break
			}
			v, digits := 0, 0
			for i < len(s) && digits < 3 && s[i] >= '0' && s[i] <= '7' {
				v = v<<3 | int(s[i]-'0')
				i++
				digits++
			}
			b.WriteByte(byte(v))
		}
	}
	return b.String()
}

func hexDigit(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}

// --- Explain ---

// explainTemplate writes one table row per directive instead of
// rendering: the raw text, the flags, the field values with * marking
// argument supplied fields, the length modifier, the verb, and how
// many arguments the directive consumes.
func explainTemplate(w io.Writer, template string) error {
	header := []string{"DIRECTIVE", "FLAGS", "WIDTH", "PRECISION", "LENGTH", "VERB", "ARGS"}
	var rows [][]string
	for d := range picofmt.Directives(template) {
		rows = append(rows, explainRow(d))
	}
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}
	if err := writeRow(w, header, widths); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func explainRow(d picofmt.Directive) []string {
	var flags strings.Builder
	if d.Minus {
		flags.WriteByte('-')
	}
	if d.Plus {
		flags.WriteByte('+')
	}
	if d.Space {
		flags.WriteByte(' ')
	}
	if d.Zero {
		flags.WriteByte('0')
	}
	if d.Alt {
		flags.WriteByte('#')
	}
	width := ""
	switch {
	case d.WidthArg:
		width = "*"
	case d.Width > 0:
		width = strconv.Itoa(d.Width)
	}
	prec := ""
	switch {
	case d.PrecArg:
		prec = "*"
	case d.PrecSet:
		prec = strconv.Itoa(d.Prec)
	}
	verb := string(d.Verb)
	if !d.Known() {
		verb += " (pass-through)"
	}
	return []string{
		d.Raw,
		flags.String(),
		width,
		prec,
		d.Modifier,
		verb,
		strconv.Itoa(d.NumArgs()),
	}
}

func writeRow(w io.Writer, cells []string, widths []int) error {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		if pad := widths[i] - runewidth.StringWidth(cell); pad > 0 {
			cell += strings.Repeat(" ", pad)
		}
		padded[i] = cell
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(padded, "  "), " "))
	return err
}
