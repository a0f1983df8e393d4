package foldcalc

import (
	"math/big"
)

// Context holds an arbitrary-precision accumulator that lines update in turn.
// It is not safe to use a Context concurrently.
type Context struct {
	acc    *big.Float
	prec   uint
	parse  []ParseOption
	report Reporter
	err    error
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	precopt   uint
	reportopt struct{ r Reporter }
	parseopt  []ParseOption
	startopt  struct{ val *big.Float }
)

func (precopt) ctxOption()   {}
func (reportopt) ctxOption() {}
func (parseopt) ctxOption()  {}
func (startopt) ctxOption()  {}

// Prec sets the precision of calculations in bits. Panics if prec is 0.
func Prec(prec uint) ContextOption {
	if prec == 0 {
		panic("foldcalc: precision must be positive")
	}
	return precopt(prec)
}

// Report sets the destination for diagnostics. The default is Discard.
func Report(r Reporter) ContextOption {
	return reportopt{r}
}

// Parsing sets the options used to parse each line.
func Parsing(opts ...ParseOption) ContextOption {
	return parseopt{ParsingPreset(opts...)}
}

// Start sets the initial value of the accumulator. The default is 0.
func Start(val *big.Float) ContextOption {
	return startopt{val}
}

// NewContext creates a new context. If no precision is given, the default is
// 64.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{acc: new(big.Float).SetPrec(64), prec: 64, report: Discard}
	return ctx.Clone(opts...)
}

// Process applies a line to the accumulator and returns a copy of the new
// value. If the line is invalid or evaluating it fails, then the accumulator
// is unchanged, ctx.Err returns the error, and the context's Reporter receives
// it. As with ProcessLine, the square root of a non-positive value leaves the
// accumulator unchanged and reports an error.
func (ctx *Context) Process(line string) *big.Float {
	ctx.err = nil
	l, err := Parse(line, ctx.parse...)
	if err == nil {
		r := new(big.Float).SetPrec(ctx.prec)
		if _, err = l.EvalBig(r, ctx.acc); err == nil {
			ctx.acc = r
		}
	}
	if err != nil {
		ctx.err = err
		ctx.report.Report(err)
	}
	return ctx.Result()
}

// Result returns a copy of the accumulator.
func (ctx *Context) Result() *big.Float {
	return new(big.Float).Copy(ctx.acc)
}

// Err returns the error from the last call to Process, if any.
func (ctx *Context) Err() error {
	return ctx.err
}

// Set sets the accumulator, rounding to the context's precision. Returns ctx
// for chaining.
func (ctx *Context) Set(value *big.Float) *Context {
	ctx.acc = new(big.Float).SetPrec(ctx.prec).Set(value)
	return ctx
}

// Prec returns the precision to which values are computed in the context.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Clone creates a copy of a context and applies options to it. The clone has
// no error.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{
		prec:   ctx.prec,
		parse:  ctx.parse,
		report: ctx.report,
	}
	// Apply the last precision first so that the accumulator is rounded once.
	for i := len(opts) - 1; i >= 0; i-- {
		if p, ok := opts[i].(precopt); ok {
			n.prec = uint(p)
			break
		}
	}
	n.acc = new(big.Float).SetPrec(n.prec).Set(ctx.acc)
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case precopt:
			// Already done. Do nothing.
		case reportopt:
			n.report = opt.r
			if n.report == nil {
				n.report = Discard
			}
		case parseopt:
			n.parse = opt
		case startopt:
			n.acc.Set(opt.val)
		default:
			panic("foldcalc: unknown option type")
		}
	}
	return &n
}
