package foldcalc

import (
	"strings"
)

// Line = ['('] Op [')'] { Space Arg }
// Op = Digit | '+' | '-' | '*' | '/' | '%' | '_' | '^' | "SQRT"
// Arg = { Digit } [ '.' { Digit } ], with at least one Digit
//
// The parentheses around Op fold a binary operation over every argument that
// follows it. Unary operations take no arguments.

// Line is a parsed line that can be applied to an accumulator.
type Line struct {
	// Op is the operation. Parse never produces OpErr.
	Op Op
	// Fold indicates that Op applies to each of Args in turn.
	Fold bool
	// Args is the list of arguments. It has exactly one element for a binary
	// operation that is not folded, at least one for a folded binary
	// operation, and none for a unary operation.
	Args []Arg
}

// Arg is a literal argument to an operation.
type Arg struct {
	// Text is the literal as it appears in the line.
	Text string
	// Value is the literal's value as a float64.
	Value float64
	// Col is the 1-based byte position of the literal in the line.
	Col int
}

// Parse parses a line. Every error Parse returns implements InputError.
func Parse(line string, opts ...ParseOption) (*Line, error) {
	l := lex(line, parseopts(opts))
	op, err := l.scanOp()
	if err != nil {
		return nil, err
	}
	r := &Line{Op: op, Fold: l.fold}
	switch op.Arity() {
	case 1:
		if !l.eol() {
			return nil, &SuffixError{Col: l.pos + 1, Op: op, Suffix: l.rest()}
		}
	case 2:
		if err := l.parseArgs(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// parseArgs parses the arguments of a binary operation into r.
func (l *lexer) parseArgs(r *Line) error {
	for {
		l.skipSpace()
		at := l.pos
		v, err := l.scanNum()
		if l.pos == at {
			// Trailing whitespace after a folded argument list is fine.
			if l.fold && l.eol() && len(r.Args) > 0 {
				return nil
			}
			return &ArgumentError{Col: at + 1, Op: r.Op}
		}
		if err != nil {
			return err
		}
		r.Args = append(r.Args, Arg{Text: l.line[at:l.pos], Value: v, Col: at + 1})
		if !l.fold || l.eol() {
			break
		}
	}
	if !l.fold && l.p.lenient {
		l.skipSpace()
		if !l.eol() {
			return &SuffixError{Col: l.pos + 1, Op: r.Op, Suffix: l.rest()}
		}
	}
	return nil
}

// String formats the line in canonical form, e.g. "(+) 1 2 3".
func (r *Line) String() string {
	var b strings.Builder
	if r.Fold {
		b.WriteByte('(')
	}
	b.WriteString(r.Op.Token())
	if r.Fold {
		b.WriteByte(')')
	}
	for i, a := range r.Args {
		if i > 0 || r.Op != OpSet {
			b.WriteByte(' ')
		}
		b.WriteString(a.Text)
	}
	return b.String()
}
