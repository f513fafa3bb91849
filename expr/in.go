package expr

// inNode implements in(x, list): U64 output, size equal to x.Size().
// Every element of list must already be a constant leaf, cast to x's
// element type at compile time (spec §3.5, §4.4).
type inNode struct {
	x      Node
	values []Scalar // pre-cast to x.ElementType()
}

func (n *inNode) ElementType() ElementType { return U64 }
func (n *inNode) Size() uint32             { return n.x.Size() }
func (n *inNode) Get(i uint32) Scalar {
	v := n.x.Get(i)
	for _, candidate := range n.values {
		if scalarEqual(v, candidate) {
			return Scalar{Type: U64, U: 1}
		}
	}
	return Scalar{Type: U64, U: 0}
}

func scalarEqual(a, b Scalar) bool {
	switch a.Type {
	case U64:
		return a.U == b.U
	case I64:
		return a.I == b.I
	default:
		return a.F == b.F
	}
}

// castListTo casts every constant scalar in list to the element type t,
// the way the "in" builder prepares literals against x's type.
func castListTo(t ElementType, list []Scalar) []Scalar {
	out := make([]Scalar, len(list))
	for i, s := range list {
		switch t {
		case U64:
			out[i] = Scalar{Type: U64, U: s.AsU64()}
		case I64:
			out[i] = Scalar{Type: I64, I: s.AsI64()}
		default:
			out[i] = Scalar{Type: F64, F: s.AsF64()}
		}
	}
	return out
}
