package foldcalc

import (
	"errors"
	"math"
	"strconv"
)

// ProcessLine applies a line to an accumulator and returns the new value. If
// the line is invalid or evaluating it fails, then the result is current, and
// a diagnostic is written to Stderr.
func ProcessLine(current float64, line string) float64 {
	return Process(current, line, Stderr)
}

// Process applies a line to an accumulator using the given parse options and
// returns the new value. If the line is invalid or evaluating it fails, then
// the result is current, and r receives the error. A nil r discards errors.
func Process(current float64, line string, r Reporter, opts ...ParseOption) float64 {
	if r == nil {
		r = Discard
	}
	l, err := Parse(line, opts...)
	if err != nil {
		r.Report(err)
		return current
	}
	v, err := l.Eval(current)
	if err != nil {
		r.Report(err)
	}
	return v
}

// Eval applies the line to an accumulator. If any step fails, the result is
// current along with the error. The square root of a non-positive value is
// not evaluated and produces a *DomainError, so the result is also current.
// Panics if r.Op is OpErr.
func (r *Line) Eval(current float64) (float64, error) {
	switch r.Op.Arity() {
	case 1:
		return unary(r.Op, current)
	case 2:
		v := current
		for _, a := range r.Args {
			var err error
			v, err = binary(r.Op, v, a.Value)
			if err != nil {
				var d *DomainError
				if errors.As(err, &d) {
					d.Col = a.Col
				}
				return current, err
			}
		}
		return v, nil
	default:
		panic("foldcalc: Eval of " + r.Op.String())
	}
}

func unary(op Op, x float64) (float64, error) {
	switch op {
	case OpNeg:
		return -x, nil
	case OpSqrt:
		if x > 0 {
			return math.Sqrt(x), nil
		}
		return x, &DomainError{X: ftoa(x), Op: op}
	default:
		panic("foldcalc: " + op.String() + " is not unary")
	}
}

func binary(op Op, x, y float64) (float64, error) {
	switch op {
	case OpSet:
		return y, nil
	case OpAdd:
		return x + y, nil
	case OpSub:
		return x - y, nil
	case OpMul:
		return x * y, nil
	case OpDiv:
		if y == 0 {
			return x, &DomainError{X: ftoa(y), Op: op}
		}
		return x / y, nil
	case OpRem:
		if y == 0 {
			return x, &DomainError{X: ftoa(y), Op: op}
		}
		return math.Mod(x, y), nil
	case OpPow:
		return math.Pow(x, y), nil
	default:
		panic("foldcalc: " + op.String() + " is not binary")
	}
}

func ftoa(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// DomainError is an error returned when an operation is applied to an operand
// outside its domain: division or remainder by zero, the square root of a
// non-positive value, or an arbitrary-precision result that is not a number.
type DomainError struct {
	// X is the out-of-domain operand.
	X string
	// Op is the operation.
	Op Op
	// Col is the position of the argument that was out of domain, or 0 if the
	// accumulator was.
	Col int
}

func (err *DomainError) Error() string {
	r := "bad argument " + err.X + " for " + err.Op.name()
	if err.Col > 0 {
		return errpos(err.Col, r)
	}
	return r
}
