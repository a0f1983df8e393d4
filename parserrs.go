package foldcalc

import "strconv"

// OperatorError is an error indicating a line that does not start with a
// known operation. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the text up to and including the first byte that did not
	// match any operation.
	Operator string
	// Line is the complete line.
	Line string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "unknown operation "+strconv.Quote(err.Operator)+" in "+strconv.Quote(err.Line))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// FoldError is an error indicating a folded operation with no close paren
// immediately after the operator. It implements InputError.
type FoldError struct {
	// Col is the position where the close paren was expected.
	Col int
	// Op is the operation that was folded.
	Op Op
	// Line is the complete line.
	Line string
}

func (err *FoldError) Error() string {
	return errpos(err.Col, "incorrect folded operation "+err.Op.name()+" in "+strconv.Quote(err.Line))
}

func (err *FoldError) Pos() int {
	return err.Col
}

// ArgumentError is an error indicating a binary operation with no argument.
// It implements InputError.
type ArgumentError struct {
	// Col is the position where the argument was expected.
	Col int
	// Op is the operation missing its argument.
	Op Op
}

func (err *ArgumentError) Error() string {
	return errpos(err.Col, "no argument for binary operation "+err.Op.name())
}

func (err *ArgumentError) Pos() int {
	return err.Col
}

// LiteralError is an error indicating a malformed numeric literal. It
// implements InputError.
type LiteralError struct {
	// Col is the position of the byte that ended the literal.
	Col int
	// Text is the unparsed remainder of the line.
	Text string
	// Long indicates that the literal had too many digits.
	Long bool
}

func (err *LiteralError) Error() string {
	if err.Long {
		return errpos(err.Col, "argument not fully parsed, suffix left: "+strconv.Quote(err.Text))
	}
	return errpos(err.Col, "argument parsing error: "+strconv.Quote(err.Text))
}

func (err *LiteralError) Pos() int {
	return err.Col
}

// SuffixError is an error indicating text following a complete operation,
// e.g. anything after a unary operator. It implements InputError.
type SuffixError struct {
	// Col is the position of the suffix.
	Col int
	// Op is the operation that the suffix follows.
	Op Op
	// Suffix is the unexpected text.
	Suffix string
}

func (err *SuffixError) Error() string {
	return errpos(err.Col, "unexpected suffix for operation "+err.Op.name()+": "+strconv.Quote(err.Suffix))
}

func (err *SuffixError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// an invalid line implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based byte position in the line of the start of the
	// token that caused the error.
	Pos() int
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*FoldError)(nil)
	_ InputError = (*ArgumentError)(nil)
	_ InputError = (*LiteralError)(nil)
	_ InputError = (*SuffixError)(nil)
)
