package foldcalc_test

import (
	"math/big"
	"testing"

	"github.com/zephyrtronium/foldcalc"
)

func FuzzProcess(f *testing.F) {
	f.Add(3.0, "+ 5")
	f.Add(0.0, "(+) 1 2 3")
	f.Add(-4.0, "SQRT")
	f.Add(1.0, "(%) 1234567890 0")
	f.Fuzz(func(t *testing.T, x float64, s string) {
		r := foldcalc.Process(x, s, nil)
		if _, err := foldcalc.Parse(s); err != nil && r != x && r == r {
			t.Errorf("invalid line %q changed %g to %g", s, x, r)
		}
	})
}

func FuzzContext(f *testing.F) {
	f.Add("(^) 2 .5 3")
	f.Add("% 7")
	f.Fuzz(func(t *testing.T, s string) {
		ctx := foldcalc.NewContext(foldcalc.Start(big.NewFloat(-3)))
		ctx.Process(s)
	})
}
