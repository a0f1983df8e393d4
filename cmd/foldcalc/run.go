package main

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zephyrtronium/foldcalc"
)

// accumulator applies lines to a running value.
type accumulator interface {
	Process(line string) interface{}
}

type floatAcc struct {
	x    float64
	r    foldcalc.Reporter
	opts []foldcalc.ParseOption
}

func (a *floatAcc) Process(line string) interface{} {
	a.x = foldcalc.Process(a.x, line, a.r, a.opts...)
	return a.x
}

type bigAcc struct {
	ctx *foldcalc.Context
}

func (a bigAcc) Process(line string) interface{} {
	return a.ctx.Process(line)
}

func newAccumulator(cfg config, r foldcalc.Reporter) (accumulator, error) {
	opts := []foldcalc.ParseOption{foldcalc.LenientSpace(cfg.lenient)}
	if cfg.prec == 0 {
		x, err := strconv.ParseFloat(cfg.start, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid start value %q: %w", cfg.start, err)
		}
		return &floatAcc{x: x, r: r, opts: opts}, nil
	}
	x, _, err := new(big.Float).SetPrec(cfg.prec).Parse(cfg.start, 10)
	if err != nil {
		return nil, fmt.Errorf("invalid start value %q: %w", cfg.start, err)
	}
	ctx := foldcalc.NewContext(
		foldcalc.Prec(cfg.prec),
		foldcalc.Start(x),
		foldcalc.Report(r),
		foldcalc.Parsing(opts...),
	)
	return bigAcc{ctx}, nil
}

func run(cmd *cobra.Command, cfg config, args []string) error {
	out := cmd.OutOrStdout()
	st := newStyles(cmd.ErrOrStderr(), cfg.noColor)

	var ins []io.Reader
	in, err := infile(cmd, cfg.in, len(args) == 0)
	if err != nil {
		return err
	}
	if in != nil {
		defer in.Close()
		ins = append(ins, in)
	}
	for _, arg := range args {
		ins = append(ins, strings.NewReader(arg))
	}

	n := 0
	var report foldcalc.Reporter = foldcalc.Discard
	if !cfg.quiet {
		report = foldcalc.ReporterFunc(func(err error) {
			st.diagnostic(n, err)
		})
	}
	acc, err := newAccumulator(cfg, report)
	if err != nil {
		return err
	}

	verb := cfg.verb + "\n"
	for _, in := range ins {
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			n++
			line := strings.TrimSuffix(sc.Text(), "\r")
			r := acc.Process(line)
			if cfg.echo {
				fmt.Fprint(out, st.echo.Render(line)+" : ")
			}
			fmt.Fprintf(out, verb, r)
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}
	return nil
}

func infile(cmd *cobra.Command, inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return nil, nil
}
