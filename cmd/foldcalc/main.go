package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/zephyrtronium/foldcalc/internal/version"
)

type config struct {
	in      string
	start   string
	prec    uint
	verb    string
	lenient bool
	echo    bool
	quiet   bool
	noColor bool
}

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var cfg config
	cmd := &cobra.Command{
		Use:   "foldcalc [flags] [line...]",
		Short: "Apply calculator lines to a running accumulator",
		Long: `foldcalc reads lines of the form "+ 5", "(*) 2 3 4", "_", or "SQRT" and
applies each to a running accumulator, printing the value after every line.

Lines come from --in, then from the arguments. With neither, lines come from
standard input. A line that fails leaves the accumulator unchanged and prints a
diagnostic to standard error.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := envConfig(cmd, &cfg); err != nil {
				return err
			}
			return run(cmd, cfg, args)
		},
	}
	cmd.Version = version.Version
	cmd.SetVersionTemplate(fmt.Sprintf("foldcalc %s\n", version.String()))

	f := cmd.Flags()
	f.StringVar(&cfg.in, "in", "", "input file, or - for stdin (default stdin if no args given)")
	f.StringVar(&cfg.start, "start", "0", "initial value of the accumulator")
	f.UintVarP(&cfg.prec, "prec", "p", 0, "precision of calculations in bits (0 = float64) [$FOLDCALC_PREC]")
	f.StringVar(&cfg.verb, "fmt", "%g", "result formatting string [$FOLDCALC_FORMAT]")
	f.BoolVar(&cfg.lenient, "lenient-space", false, "allow trailing spaces after the argument of an unfolded operation")
	f.BoolVar(&cfg.echo, "echo", false, "print each line before its result")
	f.BoolVarP(&cfg.quiet, "quiet", "q", false, "do not print diagnostics")
	f.BoolVar(&cfg.noColor, "no-color", false, "do not style diagnostics")
	return cmd
}

// envConfig applies environment fallbacks for flags that were not set.
func envConfig(cmd *cobra.Command, cfg *config) error {
	f := cmd.Flags()
	if s := os.Getenv("FOLDCALC_PREC"); s != "" && !f.Changed("prec") {
		p, err := strconv.ParseUint(s, 10, 0)
		if err != nil {
			return fmt.Errorf("invalid FOLDCALC_PREC %q: %w", s, err)
		}
		cfg.prec = uint(p)
	}
	if s := os.Getenv("FOLDCALC_FORMAT"); s != "" && !f.Changed("fmt") {
		cfg.verb = s
	}
	return nil
}
