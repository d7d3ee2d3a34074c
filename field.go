package picofmt

// padNumber emits everything that precedes the digits of a numeric
// field: leading space padding, the sign column, the alternate-form
// prefix, and the leading zeros owed to precision and the zero-pad
// flag. Width shrinks as each part of the field claims its columns;
// what remains afterwards is the trailing pad of a left-justified
// field, emitted by emitDigits.
func (p *printer) padNumber(d *directive) {
	d.width = max(d.width-d.digits, 0)
	d.prec = max(d.prec-d.digits, 0)

	if d.width > 0 && (d.negative || d.plus || d.space) {
		d.width--
	}
	if d.precSet {
		d.width = max(d.width-d.prec, 0)
	}
	if d.alt {
		if d.base == baseHex || d.base == baseBinary {
			d.width = max(d.width-2, 0)
		} else {
			d.width = max(d.width-1, 0)
		}
	}

	if !d.minus && !d.zeroPad {
		for ; d.width > 0; d.width-- {
			p.put(' ')
		}
	}

	switch {
	case d.negative:
		p.put('-')
	case d.plus:
		p.put('+')
	case d.space:
		p.put(' ')
	}

	if d.alt {
		p.put('0')
		switch {
		case d.base == baseHex && d.upper:
			p.put('X')
		case d.base == baseHex:
			p.put('x')
		case d.base == baseBinary:
			p.put('b')
		}
	}

	if !d.minus {
		for ; d.prec > 0; d.prec-- {
			p.put('0')
		}
		for ; d.zeroPad && d.width > 0; d.width-- {
			p.put('0')
		}
	}
}
