package foldcalc

import (
	"errors"
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// EvalBig applies the line to an arbitrary-precision accumulator, setting z to
// the result and returning it. Arguments are parsed from their text at the
// precision of z, or of current if z has precision 0. If any step fails, z is
// set to current and the error is returned. An argument whose text is not a
// decimal literal, as can happen in a Line built without Parse, produces a
// *LiteralError. Panics if r.Op is OpErr.
func (r *Line) EvalBig(z, current *big.Float) (*big.Float, error) {
	prec := z.Prec()
	if prec == 0 {
		prec = current.Prec()
	}
	if prec == 0 {
		prec = 64
	}
	v := new(big.Float).SetPrec(prec).Set(current)
	switch r.Op.Arity() {
	case 1:
		if err := bigUnary(r.Op, v, v); err != nil {
			return z.SetPrec(prec).Set(current), err
		}
	case 2:
		y := new(big.Float).SetPrec(prec)
		for _, a := range r.Args {
			if _, _, err := y.Parse(a.Text, 10); err != nil {
				return z.SetPrec(prec).Set(current), &LiteralError{Col: a.Col, Text: a.Text}
			}
			if err := bigBinary(r.Op, v, v, y); err != nil {
				var d *DomainError
				if errors.As(err, &d) {
					d.Col = a.Col
				}
				return z.SetPrec(prec).Set(current), err
			}
		}
	default:
		panic("foldcalc: EvalBig of " + r.Op.String())
	}
	return z.SetPrec(prec).Set(v), nil
}

func bigUnary(op Op, z, x *big.Float) error {
	switch op {
	case OpNeg:
		z.Neg(x)
	case OpSqrt:
		if x.Sign() <= 0 {
			return &DomainError{X: x.Text('g', 10), Op: op}
		}
		z.Sqrt(x)
	default:
		panic("foldcalc: " + op.String() + " is not unary")
	}
	return nil
}

// bigBinary sets z to x op y. z may alias x.
func bigBinary(op Op, z, x, y *big.Float) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		err = r.(error) // panic if not error
		if errors.As(err, &big.ErrNaN{}) {
			err = &DomainError{X: y.Text('g', 10), Op: op}
			return
		}
		panic(err)
	}()
	switch op {
	case OpSet:
		z.Set(y)
	case OpAdd:
		z.Add(x, y)
	case OpSub:
		z.Sub(x, y)
	case OpMul:
		z.Mul(x, y)
	case OpDiv:
		if y.Sign() == 0 {
			return &DomainError{X: y.Text('g', 10), Op: op}
		}
		z.Quo(x, y)
	case OpRem:
		if !bigRem(z, x, y) {
			return &DomainError{X: y.Text('g', 10), Op: op}
		}
	case OpPow:
		if !bigPow(z, x, y) {
			return &DomainError{X: y.Text('g', 10), Op: op}
		}
	default:
		panic("foldcalc: " + op.String() + " is not binary")
	}
	return nil
}

// bigRem sets z to the remainder of x/y truncated toward zero, which has the
// sign of x and magnitude less than |y|. Returns false if the result is not a
// number. z may alias x.
func bigRem(z, x, y *big.Float) bool {
	switch {
	case x.IsInf(), y.Sign() == 0:
		return false
	case y.IsInf(), x.Sign() == 0:
		z.Set(x)
		return true
	}
	xe, ye := x.MantExp(nil), y.MantExp(nil)
	if xe < ye {
		// |x| < |y|
		z.Set(x)
		return true
	}
	// At this precision, the truncated quotient, its product with y, and the
	// final difference are all exact.
	w := x.Prec() + y.Prec() + uint(xe-ye) + 2
	q := new(big.Float).SetPrec(w).SetMode(big.ToZero).Quo(x, y)
	n, _ := q.Int(nil)
	t := new(big.Float).SetPrec(w).SetInt(n)
	t.Mul(t, y)
	t.Sub(x, t)
	z.Set(t)
	return true
}

// bigPow sets z to x^y. Returns false if the result is not a number, i.e. x is
// negative and y is not an integer. z may alias x.
func bigPow(z, x, y *big.Float) bool {
	switch {
	case y.Sign() == 0:
		z.SetInt64(1)
		return true
	case x.Sign() == 0, x.IsInf(), y.IsInf():
		// Limits and signed zeros follow float64.
		xf, _ := x.Float64()
		yf, _ := y.Float64()
		r := math.Pow(xf, yf)
		if math.IsNaN(r) {
			return false
		}
		z.SetFloat64(r)
		return true
	}
	if n, acc := y.Int64(); acc == big.Exact && n != math.MinInt64 {
		powInt(z, x, n)
		return true
	}
	odd := false
	if x.Signbit() {
		if !y.IsInt() {
			return false
		}
		n, _ := y.Int(nil)
		odd = n.Bit(0) == 1
		x = new(big.Float).Neg(x)
	}
	// Pow does not always write its result to z.
	z.Set(bigfloat.Pow(z, x, y))
	if odd {
		z.Neg(z)
	}
	return true
}

// powInt sets z to x^n by repeated squaring.
func powInt(z, x *big.Float, n int64) *big.Float {
	prec := z.Prec() + 64
	p := new(big.Float).SetPrec(prec).Set(x)
	r := new(big.Float).SetPrec(prec).SetInt64(1)
	k := n
	if k < 0 {
		k = -k
	}
	for ; k > 0; k >>= 1 {
		if k&1 != 0 {
			r.Mul(r, p)
		}
		p.Mul(p, p)
	}
	if n < 0 {
		r.Quo(new(big.Float).SetInt64(1), r)
	}
	return z.Set(r)
}
