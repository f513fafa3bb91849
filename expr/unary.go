package expr

import "math"

// mathNode applies a float64 -> float64 function element-wise; every
// trigonometric/exponential/rounding unary function in spec §4.4
// produces F64 regardless of the operand's element type.
type mathNode struct {
	operand Node
	fn      func(float64) float64
}

func (n *mathNode) ElementType() ElementType { return F64 }
func (n *mathNode) Size() uint32             { return n.operand.Size() }
func (n *mathNode) Get(i uint32) Scalar {
	return Scalar{Type: F64, F: n.fn(n.operand.Get(i).AsF64())}
}

var unaryMathFns = map[symbolKind]func(float64) float64{
	fnSin: math.Sin, fnCos: math.Cos, fnTan: math.Tan,
	fnAsin: math.Asin, fnAcos: math.Acos, fnAtan: math.Atan,
	fnLog: math.Log, fnLog10: math.Log10, fnExp: math.Exp,
	fnSqrt: math.Sqrt, fnCeil: math.Ceil, fnFloor: math.Floor,
	fnSinh: math.Sinh, fnCosh: math.Cosh, fnTanh: math.Tanh,
}

// boolUnaryNode implements isnan/isinf: U64 output, 0/1 semantics,
// always 0 for integer operands since they can never hold NaN/Inf.
type boolUnaryNode struct {
	operand Node
	fn      func(float64) bool
}

func (n *boolUnaryNode) ElementType() ElementType { return U64 }
func (n *boolUnaryNode) Size() uint32             { return n.operand.Size() }
func (n *boolUnaryNode) Get(i uint32) Scalar {
	v := n.operand.Get(i)
	if v.Type != F64 {
		return Scalar{Type: U64, U: 0}
	}
	return boolScalar(n.fn(v.F))
}

// absNode preserves the operand's element type, per spec §4.4.
type absNode struct {
	operand Node
}

func (n *absNode) ElementType() ElementType { return n.operand.ElementType() }
func (n *absNode) Size() uint32             { return n.operand.Size() }
func (n *absNode) Get(i uint32) Scalar {
	v := n.operand.Get(i)
	switch v.Type {
	case U64:
		return v
	case I64:
		if v.I < 0 {
			return Scalar{Type: I64, I: -v.I}
		}
		return v
	default:
		return Scalar{Type: F64, F: math.Abs(v.F)}
	}
}

// castNode converts its operand's element type to a fixed output type
// with C-style truncate/reinterpret semantics (spec §4.4).
type castNode struct {
	operand Node
	out     ElementType
}

func (n *castNode) ElementType() ElementType { return n.out }
func (n *castNode) Size() uint32             { return n.operand.Size() }
func (n *castNode) Get(i uint32) Scalar {
	v := n.operand.Get(i)
	switch n.out {
	case U64:
		return Scalar{Type: U64, U: v.AsU64()}
	case I64:
		return Scalar{Type: I64, I: v.AsI64()}
	default:
		return Scalar{Type: F64, F: v.AsF64()}
	}
}

// logicalNotNode implements "!": U64 output, 0/1 semantics over any
// operand type's truthiness.
type logicalNotNode struct {
	operand Node
}

func (n *logicalNotNode) ElementType() ElementType { return U64 }
func (n *logicalNotNode) Size() uint32             { return n.operand.Size() }
func (n *logicalNotNode) Get(i uint32) Scalar {
	return boolScalar(!n.operand.Get(i).NonZero())
}

// negateNode implements a leading "-" applied to a non-literal operand
// (a field, function call, or parenthesized group — signed numeric
// literals are folded directly into a ConstNode by the tokenizer and
// never reach this node). Preserves the operand's element type.
type negateNode struct {
	operand Node
}

func (n *negateNode) ElementType() ElementType { return n.operand.ElementType() }
func (n *negateNode) Size() uint32             { return n.operand.Size() }
func (n *negateNode) Get(i uint32) Scalar {
	v := n.operand.Get(i)
	switch v.Type {
	case U64:
		return Scalar{Type: U64, U: -v.U}
	case I64:
		return Scalar{Type: I64, I: -v.I}
	default:
		return Scalar{Type: F64, F: -v.F}
	}
}

// bitwiseNotNode implements "~"; only constructible over integer
// operands (rejected for F64 at dispatch time).
type bitwiseNotNode[T interface {
	uint64 | int64
}] struct {
	operand Node
}

func (n *bitwiseNotNode[T]) ElementType() ElementType { return elementTypeOf[T]() }
func (n *bitwiseNotNode[T]) Size() uint32             { return n.operand.Size() }
func (n *bitwiseNotNode[T]) Get(i uint32) Scalar {
	v := castScalarTo[T](n.operand.Get(i))
	return scalarOf(^v)
}
