package expr

// anyNode and allNode implement the any()/all() reducers: U64 output,
// size 1, 0/1 semantics (spec §4.4, identities in §8.1).
type anyNode struct{ operand Node }

func (n *anyNode) ElementType() ElementType { return U64 }
func (n *anyNode) Size() uint32             { return 1 }
func (n *anyNode) Get(uint32) Scalar {
	size := n.operand.Size()
	for i := uint32(0); i < size; i++ {
		if n.operand.Get(i).NonZero() {
			return Scalar{Type: U64, U: 1}
		}
	}
	return Scalar{Type: U64, U: 0}
}

type allNode struct{ operand Node }

func (n *allNode) ElementType() ElementType { return U64 }
func (n *allNode) Size() uint32             { return 1 }
func (n *allNode) Get(uint32) Scalar {
	size := n.operand.Size()
	for i := uint32(0); i < size; i++ {
		if !n.operand.Get(i).NonZero() {
			return Scalar{Type: U64, U: 0}
		}
	}
	// Vacuously true for an empty vector.
	return Scalar{Type: U64, U: 1}
}

// sumNode preserves the operand's element type and is always size 1;
// the sum of an empty vector is 0 (spec §8.1).
type sumNode struct{ operand Node }

func (n *sumNode) ElementType() ElementType { return n.operand.ElementType() }
func (n *sumNode) Size() uint32             { return 1 }
func (n *sumNode) Get(uint32) Scalar {
	size := n.operand.Size()
	switch n.operand.ElementType() {
	case U64:
		var total uint64
		for i := uint32(0); i < size; i++ {
			total += n.operand.Get(i).U
		}
		return Scalar{Type: U64, U: total}
	case I64:
		var total int64
		for i := uint32(0); i < size; i++ {
			total += n.operand.Get(i).I
		}
		return Scalar{Type: I64, I: total}
	default:
		var total float64
		for i := uint32(0); i < size; i++ {
			total += n.operand.Get(i).F
		}
		return Scalar{Type: F64, F: total}
	}
}

// uniqueNode counts the distinct values in the operand row, U64 output,
// size 1.
type uniqueNode struct{ operand Node }

func (n *uniqueNode) ElementType() ElementType { return U64 }
func (n *uniqueNode) Size() uint32             { return 1 }
func (n *uniqueNode) Get(uint32) Scalar {
	size := n.operand.Size()
	seen := make(map[Scalar]struct{}, size)
	for i := uint32(0); i < size; i++ {
		seen[n.operand.Get(i)] = struct{}{}
	}
	return Scalar{Type: U64, U: uint64(len(seen))}
}
