package foldcalc

// MaxDigits is the default limit on the number of digits in a single literal,
// counting both the integer and fractional parts.
const MaxDigits = 10

// lexer scans one line. pos is a byte offset into line and is never exposed
// outside the package; errors report it as a 1-based column.
type lexer struct {
	line string
	pos  int
	fold bool
	p    parsectx
}

func lex(line string, p parsectx) *lexer {
	return &lexer{line: line, p: p}
}

// peek returns the byte at the cursor, or 0 at the end of the line.
func (l *lexer) peek() byte {
	if l.pos >= len(l.line) {
		return 0
	}
	return l.line[l.pos]
}

// eol returns whether the cursor is at the end of the line.
func (l *lexer) eol() bool {
	return l.pos >= len(l.line)
}

// rest returns the unscanned remainder of the line.
func (l *lexer) rest() string {
	if l.eol() {
		return ""
	}
	return l.line[l.pos:]
}

// skipSpace advances the cursor past whitespace.
func (l *lexer) skipSpace() {
	for !l.eol() && isSpace(l.line[l.pos]) {
		l.pos++
	}
}

// isSpace reports whether c is an ASCII whitespace byte.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// scanOp recognizes the operation at the start of the line, including the
// fold marker. On an unknown operation, the cursor returns to where it was
// before scanOp.
func (l *lexer) scanOp() (Op, error) {
	start := l.pos
	if l.peek() == '(' {
		l.fold = true
		l.pos++
	}
	if c := l.peek(); '0' <= c && c <= '9' {
		// The digit starts the argument.
		return l.closeFold(OpSet)
	}
	op, n := matchKeyword(l.rest())
	if op == OpErr {
		// The byte after the partial match is the one that failed.
		end := l.pos + n + 1
		if end > len(l.line) {
			end = len(l.line)
		}
		err := &OperatorError{Col: l.pos + 1, Operator: l.line[l.pos:end], Line: l.line}
		l.pos = start
		return OpErr, err
	}
	l.pos += n
	return l.closeFold(op)
}

// closeFold requires a close paren after a folded operation. The cursor moves
// past the checked byte whether or not it is correct.
func (l *lexer) closeFold(op Op) (Op, error) {
	if !l.fold {
		return op, nil
	}
	if l.eol() {
		return OpErr, &FoldError{Col: l.pos + 1, Op: op, Line: l.line}
	}
	c := l.line[l.pos]
	l.pos++
	if c != ')' {
		return OpErr, &FoldError{Col: l.pos, Op: op, Line: l.line}
	}
	return op, nil
}

// spaceEnds returns whether a space terminates a literal.
func (l *lexer) spaceEnds() bool {
	return l.fold || l.p.lenient
}

// scanNum scans a decimal literal at the cursor. The cursor is left at the
// first unconsumed byte whether or not the literal is valid, so the caller can
// distinguish a missing literal from a malformed one. A literal that reaches
// the digit limit is complete only if it is followed by the end of the line
// or by a byte that would end a shorter literal, so a tab after the last digit
// is an error even when a space would not be.
func (l *lexer) scanNum() (float64, error) {
	start := l.pos
	var (
		v      float64
		frac   = 1.0
		digits int
		dot    bool
	)
scan:
	for !l.eol() && digits < l.p.digits {
		c := l.line[l.pos]
		switch {
		case '0' <= c && c <= '9':
			d := float64(c - '0')
			if dot {
				frac /= 10
				v += d * frac
			} else {
				v = v*10 + d
			}
			digits++
		case c == '.' && !dot:
			dot = true
		case c == ' ' && l.spaceEnds():
			break scan
		default:
			return 0, l.error(false)
		}
		l.pos++
	}
	if l.pos > start && digits == 0 {
		return 0, &LiteralError{Col: start + 1, Text: l.line[start:l.pos]}
	}
	if !l.eol() && digits >= l.p.digits && !(l.line[l.pos] == ' ' && l.spaceEnds()) {
		return 0, l.error(true)
	}
	return v, nil
}

func (l *lexer) error(long bool) error {
	return &LiteralError{
		Col:  l.pos + 1,
		Text: l.rest(),
		Long: long,
	}
}
