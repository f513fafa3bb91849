package expr

import "math"

// dominantType implements the 3x3 promotion matrix from spec §4.4: F64
// dominates everything, I64 dominates U64, and two of the same type
// stay that type.
func dominantType(t1, t2 ElementType) ElementType {
	if t1 == F64 || t2 == F64 {
		return F64
	}
	if t1 == I64 || t2 == I64 {
		return I64
	}
	return U64
}

// buildArith instantiates one of the three arithBinaryNode[D]
// specializations for +, -, *, /, collapsing the nine (t1, t2)
// combinations down to a switch over the single dominant type D, per
// the design note in spec §9.
func buildArith[D Number](kind symbolKind, left, right Node) Node {
	switch kind {
	case opAdd:
		return &arithBinaryNode[D]{left: left, right: right, op: addOp[D]}
	case opSub:
		return &arithBinaryNode[D]{left: left, right: right, op: subOp[D]}
	case opMul:
		return &arithBinaryNode[D]{left: left, right: right, op: mulOp[D]}
	default: // opDiv
		return &arithBinaryNode[D]{left: left, right: right, op: divOp[D]}
	}
}

func buildArithDominant(kind symbolKind, dominant ElementType, left, right Node) Node {
	switch dominant {
	case U64:
		return buildArith[uint64](kind, left, right)
	case I64:
		return buildArith[int64](kind, left, right)
	default:
		return buildArith[float64](kind, left, right)
	}
}

func buildCompare[D Number](kind symbolKind, left, right Node) Node {
	switch kind {
	case opEq:
		return &compareBinaryNode[D]{left: left, right: right, op: eqOp[D]}
	case opNe:
		return &compareBinaryNode[D]{left: left, right: right, op: neOp[D]}
	case opLt:
		return &compareBinaryNode[D]{left: left, right: right, op: ltOp[D]}
	case opLe:
		return &compareBinaryNode[D]{left: left, right: right, op: leOp[D]}
	case opGt:
		return &compareBinaryNode[D]{left: left, right: right, op: gtOp[D]}
	default: // opGe
		return &compareBinaryNode[D]{left: left, right: right, op: geOp[D]}
	}
}

func buildCompareDominant(kind symbolKind, dominant ElementType, left, right Node) Node {
	switch dominant {
	case U64:
		return buildCompare[uint64](kind, left, right)
	case I64:
		return buildCompare[int64](kind, left, right)
	default:
		return buildCompare[float64](kind, left, right)
	}
}

// buildBinaryOperator dispatches every binary operator token (spec
// §4.4, §4.3 phase 4) to its concrete node, given the two already-built
// operand nodes.
func buildBinaryOperator(kind symbolKind, left, right Node) (Node, error) {
	t1, t2 := left.ElementType(), right.ElementType()

	switch kind {
	case opAdd, opSub, opMul, opDiv:
		return buildArithDominant(kind, dominantType(t1, t2), left, right), nil

	case opMod:
		dominant := dominantType(t1, t2)
		if dominant == F64 {
			return &fixedF64BinaryNode{left: left, right: right, op: fmodOp}, nil
		}
		return buildModInt(dominant, left, right), nil

	case opEq, opNe, opLt, opLe, opGt, opGe:
		return buildCompareDominant(kind, dominantType(t1, t2), left, right), nil

	case opLogicalAnd:
		return &logicalBinaryNode{left: left, right: right, op: andOp}, nil
	case opLogicalOr:
		return &logicalBinaryNode{left: left, right: right, op: orOp}, nil

	case opBitAnd, opBitOr:
		if t1 == F64 || t2 == F64 {
			return nil, &TypeError{Msg: "bitwise operator requires integer operands, got floating point"}
		}
		return buildBitwise(kind, dominantType(t1, t2), left, right), nil

	case opPow:
		return &fixedF64BinaryNode{left: left, right: right, op: powOp}, nil

	default:
		return nil, &ParseError{Msg: "unsupported binary operator"}
	}
}

// buildBinaryFunction dispatches the binary function keywords: fmod,
// pow, and atan2 always coerce both operands to F64 (spec §4.4).
func buildBinaryFunction(kind symbolKind, a, b Node) (Node, error) {
	switch kind {
	case fnFmod:
		return &fixedF64BinaryNode{left: a, right: b, op: fmodOp}, nil
	case fnPow:
		return &fixedF64BinaryNode{left: a, right: b, op: powOp}, nil
	case fnAtan2:
		return &fixedF64BinaryNode{left: a, right: b, op: atan2Op}, nil
	default:
		return nil, &ParseError{Msg: "unsupported binary function"}
	}
}

// buildIn implements in(x, list): every element of list must already be
// a compile-time constant (spec §3.5), cast to x's element type.
func buildIn(x Node, list []Node) (Node, error) {
	values := make([]Scalar, 0, len(list))
	for _, item := range list {
		s, ok := constScalarOf(item)
		if !ok {
			return nil, &TypeError{Msg: "in(...) requires every list element to be a constant"}
		}
		values = append(values, s)
	}
	return &inNode{x: x, values: castListTo(x.ElementType(), values)}, nil
}

// buildUnaryFunction dispatches the unary function keywords (spec
// §3.3, §4.4).
func buildUnaryFunction(kind symbolKind, operand Node) (Node, error) {
	if fn, ok := unaryMathFns[kind]; ok {
		return &mathNode{operand: operand, fn: fn}, nil
	}

	switch kind {
	case fnAbs:
		return &absNode{operand: operand}, nil
	case fnIsNaN:
		return &boolUnaryNode{operand: operand, fn: math.IsNaN}, nil
	case fnIsInf:
		return &boolUnaryNode{operand: operand, fn: func(f float64) bool { return math.IsInf(f, 0) }}, nil
	case fnInt:
		return &castNode{operand: operand, out: I64}, nil
	case fnUnsigned:
		return &castNode{operand: operand, out: U64}, nil
	case fnFloat:
		return &castNode{operand: operand, out: F64}, nil
	case fnUnique:
		return &uniqueNode{operand: operand}, nil
	case fnAny:
		return &anyNode{operand: operand}, nil
	case fnAll:
		return &allNode{operand: operand}, nil
	case fnSum:
		return &sumNode{operand: operand}, nil
	default:
		return nil, &ParseError{Msg: "unsupported unary function"}
	}
}

// buildUnaryOperator dispatches "!", "~", and the leading unary sign
// the tokenizer splits off a non-literal operand (spec §4.3 phase 3;
// unary minus/plus are this implementation's necessary completion of
// §4.1 rule 2 for operands other than signed numeric literals).
func buildUnaryOperator(kind symbolKind, operand Node) (Node, error) {
	switch kind {
	case opLogicalNot:
		return &logicalNotNode{operand: operand}, nil
	case opUnaryMinus:
		return &negateNode{operand: operand}, nil
	case opUnaryPlus:
		return operand, nil
	case opBitNot:
		switch operand.ElementType() {
		case F64:
			return nil, &TypeError{Msg: "bitwise operator requires an integer operand, got floating point"}
		case U64:
			return &bitwiseNotNode[uint64]{operand: operand}, nil
		default:
			return &bitwiseNotNode[int64]{operand: operand}, nil
		}
	default:
		return nil, &ParseError{Msg: "unsupported unary operator"}
	}
}
