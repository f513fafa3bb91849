package histogram

import (
	"fmt"

	"github.com/hayalaso/xcdf/expr"
)

// Filler1D drives an XCDF record source through a compiled value
// expression and weight expression, filling a Histogram1D one row at
// a time (grounded on original_source/include/xcdf/utility/Histogram.h's
// Filler1D, which pairs a NumericalExpression value/weight with
// XCDFFile::Read()).
type Filler1D struct {
	x *expr.Expression
	w *expr.Expression
}

// NewFiller1D compiles xExpr and wExpr against source.
func NewFiller1D(xExpr, wExpr string, source expr.RecordSource) (*Filler1D, error) {
	x, err := expr.Compile(xExpr, source)
	if err != nil {
		return nil, fmt.Errorf("histogram: value expression: %w", err)
	}
	w, err := expr.Compile(wExpr, source)
	if err != nil {
		return nil, fmt.Errorf("histogram: weight expression: %w", err)
	}
	return &Filler1D{x: x, w: w}, nil
}

// Fill reads every remaining row from source into h, evaluating each
// expression's element 0; rows where either expression has size 0 are
// skipped (spec §3.2: get(size()) is undefined).
func (f *Filler1D) Fill(h *Histogram1D, source expr.RecordSource) {
	for source.Read() {
		if f.x.Size() == 0 || f.w.Size() == 0 {
			continue
		}
		h.Fill(f.x.Get(0).AsF64(), f.w.Get(0).AsF64())
	}
}

// Filler2D is the two-dimensional analogue of Filler1D.
type Filler2D struct {
	x *expr.Expression
	y *expr.Expression
	w *expr.Expression
}

// NewFiller2D compiles xExpr, yExpr, and wExpr against source.
func NewFiller2D(xExpr, yExpr, wExpr string, source expr.RecordSource) (*Filler2D, error) {
	x, err := expr.Compile(xExpr, source)
	if err != nil {
		return nil, fmt.Errorf("histogram: x expression: %w", err)
	}
	y, err := expr.Compile(yExpr, source)
	if err != nil {
		return nil, fmt.Errorf("histogram: y expression: %w", err)
	}
	w, err := expr.Compile(wExpr, source)
	if err != nil {
		return nil, fmt.Errorf("histogram: weight expression: %w", err)
	}
	return &Filler2D{x: x, y: y, w: w}, nil
}

// Fill reads every remaining row from source into h.
func (f *Filler2D) Fill(h *Histogram2D, source expr.RecordSource) {
	for source.Read() {
		if f.x.Size() == 0 || f.y.Size() == 0 || f.w.Size() == 0 {
			continue
		}
		h.Fill(f.x.Get(0).AsF64(), f.y.Get(0).AsF64(), f.w.Get(0).AsF64())
	}
}
