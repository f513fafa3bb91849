// Command xcdfeval is a small demonstration driver for the expr
// package: it loads a YAML record fixture, compiles an expression
// against it, and prints the per-row result — the moral equivalent of
// the teacher repo's examples/ demo programs, adapted to this domain.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hayalaso/xcdf/expr"
	"github.com/hayalaso/xcdf/histogram"
	"github.com/hayalaso/xcdf/logger"
	"github.com/hayalaso/xcdf/memsource"
)

func main() {
	fixture := flag.String("fixture", "", "path to a YAML record fixture (required)")
	expression := flag.String("expr", "", "expression to compile and evaluate per row (required)")
	selectMode := flag.Bool("select", false, "treat -expr as an event-select filter instead of a projection")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		logger.SetDefault(logger.NewLogger(logger.DEBUG, os.Stderr))
	} else {
		logger.SetDefault(logger.NewDiscardLogger())
	}

	if *fixture == "" || *expression == "" {
		fmt.Fprintln(os.Stderr, "usage: xcdfeval -fixture events.yaml -expr 'sqrt(v) / n'")
		os.Exit(2)
	}

	if err := run(*fixture, *expression, *selectMode); err != nil {
		fmt.Fprintln(os.Stderr, "xcdfeval:", err)
		os.Exit(1)
	}
}

func run(fixturePath, expression string, selectMode bool) error {
	source, err := memsource.FromYAMLFile(fixturePath)
	if err != nil {
		return err
	}

	if selectMode {
		return runSelect(expression, source)
	}
	return runProject(expression, source)
}

func runSelect(expression string, source *memsource.Source) error {
	sel, err := expr.NewEventSelect(expression, source)
	if err != nil {
		return err
	}
	for source.Read() {
		fmt.Printf("event %d: select=%v\n", source.CurrentEventNumber(), sel.Select())
	}
	return nil
}

func runProject(expression string, source *memsource.Source) error {
	e, err := expr.Compile(expression, source)
	if err != nil {
		return err
	}
	h, err := histogram.NewHistogram1D(20, -10, 10)
	if err != nil {
		return err
	}
	for source.Read() {
		values := make([]string, 0, e.Size())
		for i := uint32(0); i < e.Size(); i++ {
			v := e.Get(i)
			values = append(values, fmt.Sprintf("%v", scalarValue(v)))
			h.Fill(v.AsF64(), 1.)
		}
		fmt.Printf("event %d: %v\n", source.CurrentEventNumber(), values)
	}
	fmt.Printf("histogram: underflow=%.0f overflow=%.0f\n", h.GetUnderflow(), h.GetOverflow())
	for i := 0; i < h.GetNBins(); i++ {
		if h.GetData(i) != 0 {
			fmt.Printf("  bin[%2d] center=%6.2f count=%.0f\n", i, h.GetBinCenter(i), h.GetData(i))
		}
	}
	return nil
}

func scalarValue(s expr.Scalar) interface{} {
	switch s.Type {
	case expr.U64:
		return s.U
	case expr.I64:
		return s.I
	default:
		return s.F
	}
}
