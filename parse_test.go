package foldcalc

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseLines(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want Line
		str  string
	}{
		{"set", "5", Line{Op: OpSet, Args: []Arg{{"5", 5, 1}}}, "5"},
		{"set-frac", "12.5", Line{Op: OpSet, Args: []Arg{{"12.5", 12.5, 1}}}, "12.5"},
		{"add", "+ 5", Line{Op: OpAdd, Args: []Arg{{"5", 5, 3}}}, "+ 5"},
		{"add-nospace", "+5", Line{Op: OpAdd, Args: []Arg{{"5", 5, 2}}}, "+ 5"},
		{"add-spaces", "+ \t 5", Line{Op: OpAdd, Args: []Arg{{"5", 5, 5}}}, "+ 5"},
		{"div", "/0", Line{Op: OpDiv, Args: []Arg{{"0", 0, 2}}}, "/ 0"},
		{"pow", "^ .5", Line{Op: OpPow, Args: []Arg{{".5", 0.5, 3}}}, "^ .5"},
		{"neg", "_", Line{Op: OpNeg}, "_"},
		{"sqrt", "SQRT", Line{Op: OpSqrt}, "SQRT"},
		{"fold-sqrt", "(SQRT)", Line{Op: OpSqrt, Fold: true}, "(SQRT)"},
		{"fold", "(+) 1 2 3", Line{Op: OpAdd, Fold: true, Args: []Arg{{"1", 1, 5}, {"2", 2, 7}, {"3", 3, 9}}}, "(+) 1 2 3"},
		{"fold-nospace", "(*)2", Line{Op: OpMul, Fold: true, Args: []Arg{{"2", 2, 4}}}, "(*) 2"},
		{"fold-trailing", "(-) 1  2   ", Line{Op: OpSub, Fold: true, Args: []Arg{{"1", 1, 5}, {"2", 2, 8}}}, "(-) 1 2"},
		{"fold-long", "(%) 1234567890 7", Line{Op: OpRem, Fold: true, Args: []Arg{{"1234567890", 1234567890, 5}, {"7", 7, 16}}}, "(%) 1234567890 7"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := Parse(c.src)
			if err != nil {
				t.Fatalf("failed to parse %q: %v", c.src, err)
			}
			if !reflect.DeepEqual(*r, c.want) {
				t.Errorf("%q: want %+v, got %+v", c.src, c.want, *r)
			}
			if s := r.String(); s != c.str {
				t.Errorf("%q: want string %q, got %q", c.src, c.str, s)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	var (
		operr   *OperatorError
		folderr *FoldError
		argerr  *ArgumentError
		literr  *LiteralError
		sufferr *SuffixError
	)
	cases := []struct {
		name string
		src  string
		as   interface{}
		pos  int
	}{
		{"empty", "", &operr, 1},
		{"unknown", "x 5", &operr, 1},
		{"lower-sqrt", "sqrt", &operr, 1},
		{"partial-sqrt", "SQR", &operr, 1},
		{"leading-space", " + 5", &operr, 1},
		{"fold-unknown", "(SQ) 4", &operr, 2},
		{"fold-unclosed", "(+ 1", &folderr, 3},
		{"fold-eol", "(+", &folderr, 3},
		{"fold-set", "(5)", &folderr, 2},
		{"no-arg", "+", &argerr, 2},
		{"no-arg-space", "+   ", &argerr, 5},
		{"fold-no-arg", "(+)", &argerr, 4},
		{"fold-no-arg-space", "(+)   ", &argerr, 7},
		{"fold-bad-arg", "(+) 1 x", &argerr, 7},
		{"bad-arg", "+ x", &argerr, 3},
		{"double-op", "++5", &argerr, 2},
		{"neg-literal", "+ -5", &argerr, 3},
		{"trailing-space", "+ 5 ", &literr, 4},
		{"two-args", "+ 5 6", &literr, 4},
		{"two-dots", "+ 1.2.3", &literr, 6},
		{"junk", "* 5x", &literr, 4},
		{"too-long", "+ 12345678901", &literr, 13},
		{"too-long-fold", "(+) 1 12345678901 2", &literr, 17},
		{"tab-fold", "(+) 1\t2", &literr, 6},
		{"dot", "+ .", &literr, 3},
		{"neg-suffix", "_ ", &sufferr, 2},
		{"sqrt-suffix", "SQRT 4", &sufferr, 5},
		{"sqrt-sqrt", "SQRTSQRT", &sufferr, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := Parse(c.src)
			if err == nil {
				t.Fatalf("%q parsed as %v", c.src, r)
			}
			if !errors.As(err, c.as) {
				t.Errorf("%q: wrong error type %T: %v", c.src, err, err)
			}
			var ierr InputError
			if !errors.As(err, &ierr) {
				t.Fatalf("%q: error %v is not an InputError", c.src, err)
			}
			if p := ierr.Pos(); p != c.pos {
				t.Errorf("%q: want error at %d, got %d (%v)", c.src, c.pos, p, err)
			}
		})
	}
}

func TestParseLenient(t *testing.T) {
	cases := []struct {
		src string
		ok  bool
	}{
		{"+ 5 ", true},
		{"+ 5 \t", true},
		{"+ 5\t", false},
		{"5 ", true},
		{"+ 1234567890 ", true},
		{"+ 5 6", false},
		{"+ 5 x", false},
		{"_ ", false},
		{"(+) 1 2 ", true},
	}
	for _, c := range cases {
		r, err := Parse(c.src, LenientSpace(true))
		if c.ok && err != nil {
			t.Errorf("%q: unexpected error %v", c.src, err)
		}
		if !c.ok && err == nil {
			t.Errorf("%q: parsed as %v", c.src, r)
		}
	}
	var serr *SuffixError
	if _, err := Parse("+ 5 6", LenientSpace(true)); !errors.As(err, &serr) || serr.Pos() != 5 {
		t.Errorf("want suffix error at 5, got %v", err)
	}
}

func TestParsingPreset(t *testing.T) {
	preset := ParsingPreset(Digits(2), LenientSpace(true))
	if _, err := Parse("+ 12 ", preset); err != nil {
		t.Errorf("preset: unexpected error %v", err)
	}
	if _, err := Parse("+ 123", preset); err == nil {
		t.Error("preset: three digits with a limit of two should fail")
	}
	if _, err := Parse("+ 12 ", preset, LenientSpace(false)); err == nil {
		t.Error("option after preset did not apply")
	}
	if _, err := Parse("+ 123", Digits(5), preset); err == nil {
		t.Error("preset did not replace earlier options")
	}
}

func TestDigitsInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic for zero digits")
		}
	}()
	Digits(0)
}
