package expr

import "math/rand"

// randSource is the narrow interface rand() draws from; satisfied by
// *rand.Rand. Pluggable per spec §9's design note, defaulting to a
// process-wide generator but overridable with WithRand at compile time
// so tests can pin a seed.
type randSource interface {
	Float64() float64
}

var globalRand randSource = rand.New(rand.NewSource(1))

// randNode implements rand(): F64, size 1, uniform in [0, 1).
// Reproducibility is only guaranteed when compiled with an explicit
// WithRand source.
type randNode struct {
	source randSource
}

func (n *randNode) ElementType() ElementType { return F64 }
func (n *randNode) Size() uint32             { return 1 }
func (n *randNode) Get(uint32) Scalar {
	return Scalar{Type: F64, F: n.source.Float64()}
}
