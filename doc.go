// Package foldcalc implements a line-oriented calculator over a running
// accumulator.
//
// Each line names one operation and its arguments. "+ 5" adds 5 to the
// accumulator, "5" sets it to 5, "_" negates it, and "SQRT" takes its square
// root. Wrapping a binary operator in parentheses folds it over any number of
// arguments, so "(+) 1 2 3" adds 1, 2, and 3 in turn. A line that fails to
// parse or evaluate never changes the accumulator.
//
// ProcessLine evaluates in float64. A Context evaluates the same lines with an
// arbitrary-precision accumulator.
package foldcalc
