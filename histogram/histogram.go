// Package histogram provides small 1-D and 2-D histogram containers
// that accept the numerical values an expr.Expression produces (spec
// §1: "out of scope ... the small 1-D/2-D histogram containers that
// merely accept numerical values produced by this core"), grounded on
// original_source/include/xcdf/utility/Histogram.h.
package histogram

import (
	"fmt"
	"math"
)

// Histogram1D accumulates weighted counts into a fixed number of
// equal-width bins over [min, max), tracking under/overflow and the
// sum of squared weights per bin for error estimation.
type Histogram1D struct {
	data, dataW2               []float64
	underflow, underflowW2     float64
	overflow, overflowW2       float64
	min, max, rinv             float64
}

// NewHistogram1D builds an empty histogram with nbins equal-width bins
// covering [min, max).
func NewHistogram1D(nbins int, min, max float64) (*Histogram1D, error) {
	if nbins <= 0 {
		return nil, fmt.Errorf("histogram: must have >0 bins")
	}
	if !(max > min) {
		return nil, fmt.Errorf("histogram: maximum must be larger than the minimum")
	}
	return &Histogram1D{
		data:   make([]float64, nbins),
		dataW2: make([]float64, nbins),
		min:    min,
		max:    max,
		rinv:   1. / (max - min),
	}, nil
}

func (h *Histogram1D) GetNBins() int        { return len(h.data) }
func (h *Histogram1D) GetMinimum() float64  { return h.min }
func (h *Histogram1D) GetMaximum() float64  { return h.max }

// GetBinMinimum returns the lower edge of bin i.
func (h *Histogram1D) GetBinMinimum(i int) float64 {
	return h.min + float64(i)/(h.rinv*float64(h.GetNBins()))
}

// GetBinCenter returns the center of bin i.
func (h *Histogram1D) GetBinCenter(i int) float64 {
	return h.min + (float64(i)+0.5)/(h.rinv*float64(h.GetNBins()))
}

func (h *Histogram1D) GetUnderflow() float64      { return h.underflow }
func (h *Histogram1D) GetOverflow() float64       { return h.overflow }
func (h *Histogram1D) GetUnderflowW2Sum() float64 { return h.underflowW2 }
func (h *Histogram1D) GetOverflowW2Sum() float64  { return h.overflowW2 }
func (h *Histogram1D) GetData(i int) float64      { return h.data[i] }
func (h *Histogram1D) GetW2Sum(i int) float64      { return h.dataW2[i] }

// Fill adds weight to the bin containing value, or to the
// under/overflow accumulators if value falls outside [min, max).
func (h *Histogram1D) Fill(value float64, weight float64) {
	ldiff := (value - h.min) * h.rinv * float64(h.GetNBins())
	// Don't let values exactly on a bin edge round down to the bin below.
	ldiff *= 1. + math.Nextafter(1., 2.) - 1.

	switch {
	case ldiff < 0.:
		h.underflow += weight
		h.underflowW2 += weight * weight
	case ldiff >= float64(h.GetNBins()):
		h.overflow += weight
		h.overflowW2 += weight * weight
	default:
		bin := int(math.Floor(ldiff))
		h.data[bin] += weight
		h.dataW2[bin] += weight * weight
	}
}

// Histogram2D is the two-dimensional analogue of Histogram1D, binning
// (x, y) pairs into an nbinsX * nbinsY grid stored row-major by y.
type Histogram2D struct {
	data, dataW2     []float64
	nbinsX, nbinsY   int
	xMin, xMax       float64
	yMin, yMax       float64
	xRinv, yRinv     float64
}

// NewHistogram2D builds an empty 2-D histogram.
func NewHistogram2D(nbinsX int, minX, maxX float64, nbinsY int, minY, maxY float64) (*Histogram2D, error) {
	if nbinsX <= 0 || nbinsY <= 0 {
		return nil, fmt.Errorf("histogram: must have >0 bins")
	}
	if !(maxX > minX) || !(maxY > minY) {
		return nil, fmt.Errorf("histogram: maximum must be larger than the minimum")
	}
	return &Histogram2D{
		data:   make([]float64, nbinsX*nbinsY),
		dataW2: make([]float64, nbinsX*nbinsY),
		nbinsX: nbinsX,
		nbinsY: nbinsY,
		xMin:   minX,
		xMax:   maxX,
		yMin:   minY,
		yMax:   maxY,
		xRinv:  1. / (maxX - minX),
		yRinv:  1. / (maxY - minY),
	}, nil
}

func (h *Histogram2D) GetNBins() int  { return len(h.data) }
func (h *Histogram2D) GetNBinsX() int { return h.nbinsX }
func (h *Histogram2D) GetNBinsY() int { return h.nbinsY }

func (h *Histogram2D) GetBinCenter(i, j int) (float64, float64) {
	mx := h.xMin + (float64(i)+0.5)/(h.xRinv*float64(h.nbinsX))
	my := h.yMin + (float64(j)+0.5)/(h.yRinv*float64(h.nbinsY))
	return mx, my
}

func (h *Histogram2D) GetData(i, j int) float64 { return h.data[j*h.nbinsX+i] }
func (h *Histogram2D) GetW2Sum(i, j int) float64 { return h.dataW2[j*h.nbinsX+i] }

// Fill adds weight to the bin containing (xValue, yValue), or drops it
// if either coordinate falls outside its axis range.
func (h *Histogram2D) Fill(xValue, yValue, weight float64) {
	xdiff := (xValue - h.xMin) * h.xRinv * float64(h.nbinsX)
	ydiff := (yValue - h.yMin) * h.yRinv * float64(h.nbinsY)
	eps := math.Nextafter(1., 2.) - 1.
	xdiff *= 1. + eps
	ydiff *= 1. + eps

	if xdiff >= 0 && xdiff < float64(h.nbinsX) && ydiff >= 0 && ydiff < float64(h.nbinsY) {
		binX := int(xdiff)
		binY := int(ydiff)
		idx := binY*h.nbinsX + binX
		h.data[idx] += weight
		h.dataW2[idx] += weight * weight
	}
}

// ProfileX sums every y-bin in yBins into a 1-D histogram over the X
// axis.
func (h *Histogram2D) ProfileX(yBins ...int) *Histogram1D {
	out := &Histogram1D{
		data:   make([]float64, h.nbinsX),
		dataW2: make([]float64, h.nbinsX),
		min:    h.xMin,
		max:    h.xMax,
		rinv:   h.xRinv,
	}
	for _, yb := range yBins {
		for j := 0; j < h.nbinsX; j++ {
			idx := yb*h.nbinsX + j
			out.data[j] += h.data[idx]
			out.dataW2[j] += h.dataW2[idx]
		}
	}
	return out
}

// ProfileY sums every x-bin in xBins into a 1-D histogram over the Y
// axis.
func (h *Histogram2D) ProfileY(xBins ...int) *Histogram1D {
	out := &Histogram1D{
		data:   make([]float64, h.nbinsY),
		dataW2: make([]float64, h.nbinsY),
		min:    h.yMin,
		max:    h.yMax,
		rinv:   h.yRinv,
	}
	for _, xb := range xBins {
		for j := 0; j < h.nbinsY; j++ {
			idx := j*h.nbinsX + xb
			out.data[j] += h.data[idx]
			out.dataW2[j] += h.dataW2[idx]
		}
	}
	return out
}
