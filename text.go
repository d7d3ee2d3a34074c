package picofmt

// chars is the pair of value shapes %s accepts.
type chars interface {
	~string | ~[]byte
}

// emitText writes one string field: space padding to width around an
// effective length capped by precision and by the first NUL byte. A
// NUL ends the field early because the engine treats its input as
// C-string content, not as arbitrary binary.
func emitText[S chars](p *printer, d *directive, s S) {
	n := 0
	for n < len(s) && s[n] != 0 {
		n++
	}
	if d.precSet && n > d.prec {
		n = d.prec
	}
	if !d.minus {
		for pad := d.width - n; pad > 0; pad-- {
			p.put(' ')
		}
	}
	for i := 0; i < n; i++ {
		p.put(s[i])
	}
	if d.minus {
		for pad := d.width - n; pad > 0; pad-- {
			p.put(' ')
		}
	}
}

// str renders %s for string and []byte arguments.
func (p *printer) str(d *directive, ar *argReader) {
	v, ok := ar.next()
	if !ok {
		p.badVerb('s')
		return
	}
	switch s := v.(type) {
	case string:
		emitText(p, d, s)
	case []byte:
		emitText(p, d, s)
	default:
		p.badVerb('s')
	}
}

// char renders %c: the argument's low byte as a single character,
// space padded to width. Precision has no meaning here and is
// ignored.
func (p *printer) char(d *directive, ar *argReader) {
	v, ok := ar.unsignedArg()
	if !ok {
		p.badVerb('c')
		return
	}
	if !d.minus {
		for pad := d.width - 1; pad > 0; pad-- {
			p.put(' ')
		}
	}
	p.put(byte(v))
	if d.minus {
		for pad := d.width - 1; pad > 0; pad-- {
			p.put(' ')
		}
	}
}
