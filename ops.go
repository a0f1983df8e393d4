package foldcalc

// Op is an operation recognized at the start of a line. The set of operations
// is closed.
type Op int8

const (
	// OpErr is the result of failing to recognize an operation.
	OpErr Op = iota

	OpSet  // digit: replace the accumulator
	OpAdd  // +
	OpSub  // -
	OpMul  // *
	OpDiv  // /
	OpRem  // %: floating-point remainder, as fmod
	OpNeg  // _: unary
	OpPow  // ^
	OpSqrt // SQRT: unary
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=Op -trimprefix=Op
//go:generate go mod tidy

// Arity returns the number of operands op consumes, counting the accumulator.
// OpErr has arity 0, OpNeg and OpSqrt have arity 1, and the remaining
// operations have arity 2. Operations of arity 2 may be folded.
func (op Op) Arity() int {
	switch op {
	case OpErr:
		return 0
	case OpNeg, OpSqrt:
		return 1
	case OpSet, OpAdd, OpSub, OpMul, OpDiv, OpRem, OpPow:
		return 2
	default:
		panic("foldcalc: invalid operation " + op.String())
	}
}

// Token returns the text that selects op at the start of a line. OpSet and
// OpErr have no token.
func (op Op) Token() string {
	for _, kw := range keywords {
		if kw.op == op {
			return kw.text
		}
	}
	return ""
}

// name is the operation's name as it appears in error messages.
func (op Op) name() string {
	if t := op.Token(); t != "" {
		return t
	}
	switch op {
	case OpSet:
		return "set"
	case OpErr:
		return "error"
	default:
		return op.String()
	}
}

// keywords maps operator tokens to operations. Digits select OpSet without
// being consumed, so they are handled separately.
var keywords = [...]struct {
	text string
	op   Op
}{
	{"+", OpAdd},
	{"-", OpSub},
	{"*", OpMul},
	{"/", OpDiv},
	{"%", OpRem},
	{"_", OpNeg},
	{"^", OpPow},
	{"SQRT", OpSqrt},
}

// matchKeyword finds the longest keyword that prefixes s. If there is none,
// the result is OpErr and the length of the longest prefix that s shares with
// any keyword.
func matchKeyword(s string) (Op, int) {
	op, best, partial := OpErr, 0, 0
	for _, kw := range keywords {
		if len(s) >= len(kw.text) && s[:len(kw.text)] == kw.text {
			if len(kw.text) > best {
				op, best = kw.op, len(kw.text)
			}
			continue
		}
		k := 0
		for k < len(s) && k < len(kw.text) && s[k] == kw.text[k] {
			k++
		}
		if k > partial {
			partial = k
		}
	}
	if op == OpErr {
		return OpErr, partial
	}
	return op, best
}
