package foldcalc

import (
	"io"
	"os"
)

// Reporter receives diagnostics for lines that fail to evaluate.
type Reporter interface {
	Report(err error)
}

// ReporterFunc adapts a function to a Reporter.
type ReporterFunc func(err error)

func (f ReporterFunc) Report(err error) {
	f(err)
}

// Discard is a Reporter that ignores all diagnostics.
var Discard Reporter = ReporterFunc(func(error) {})

// Stderr is a Reporter that writes diagnostics to os.Stderr, one per line.
var Stderr = WriterReporter(os.Stderr)

type writerReporter struct {
	w io.Writer
}

// WriterReporter returns a Reporter that writes each diagnostic to w followed
// by a newline. Write errors are ignored.
func WriterReporter(w io.Writer) Reporter {
	return writerReporter{w}
}

func (r writerReporter) Report(err error) {
	io.WriteString(r.w, err.Error()+"\n")
}
