package foldcalc

import "strconv"

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	digitsopt  int
	lenientopt bool
)

// parsectx holds the settings for parsing a line. It is also a ParseOption.
type parsectx struct {
	// digits is the maximum number of digits in a literal.
	digits int
	// lenient indicates that a space terminates a literal outside folds.
	lenient bool
}

func defaultParse() parsectx {
	return parsectx{digits: MaxDigits}
}

// Digits sets the maximum number of digits in a single literal, counting both
// the integer and fractional parts. Panics if n is not positive.
func Digits(n int) ParseOption {
	if n <= 0 {
		panic("foldcalc: invalid digit limit " + strconv.Itoa(n))
	}
	return digitsopt(n)
}

func (o digitsopt) parseOption(p parsectx) parsectx {
	p.digits = int(o)
	return p
}

// LenientSpace tells the parser to accept a space after the argument of an
// operation that is not folded. By default, only folded operations allow
// spaces after their arguments, so "+ 5 " is an error while "(+) 5 " is not.
// With LenientSpace, trailing whitespace after the single argument is
// ignored, but anything else following it is still an error.
func LenientSpace(lenient bool) ParseOption {
	return lenientopt(lenient)
}

func (o lenientopt) parseOption(p parsectx) parsectx {
	p.lenient = bool(o)
	return p
}

// ParsingPreset combines parse options into one, which may be more efficient
// when applying the same options to many lines. A preset replaces the effect
// of any options before it.
func ParsingPreset(opts ...ParseOption) ParseOption {
	p := parseopts(opts)
	return &p
}

func (o *parsectx) parseOption(p parsectx) parsectx {
	return *o
}

func parseopts(opts []ParseOption) parsectx {
	p := defaultParse()
	for _, opt := range opts {
		if opt != nil {
			p = opt.parseOption(p)
		}
	}
	return p
}
