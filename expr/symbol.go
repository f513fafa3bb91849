package expr

// symbolVariant is the polymorphic container discriminant described in
// spec §3.3: during parsing, every element of the working symbol list is
// one of an operator, a function keyword awaiting its "(...)", a fully
// built Node, or a List of argument nodes folded by a comma.
type symbolVariant uint8

const (
	symOperator symbolVariant = iota
	symFunction
	symNode
	symList
)

// symbolKind enumerates every operator and function keyword recognized
// by the tokenizer and dispatched by the parser. It is the C3 "symbol
// catalog" from the component table.
type symbolKind int

const (
	kindNone symbolKind = iota

	// Operators.
	opAdd
	opSub
	opMul
	opDiv
	opMod
	opPow
	opEq
	opNe
	opLt
	opLe
	opGt
	opGe
	opLogicalAnd
	opLogicalOr
	opBitAnd
	opBitOr
	opLogicalNot
	opBitNot
	opUnaryMinus
	opUnaryPlus
	opComma
	opOpenParen
	opCloseParen

	// Unary functions.
	fnSin
	fnCos
	fnTan
	fnAsin
	fnAcos
	fnAtan
	fnLog
	fnLog10
	fnExp
	fnAbs
	fnSqrt
	fnCeil
	fnFloor
	fnIsNaN
	fnIsInf
	fnSinh
	fnCosh
	fnTanh
	fnInt
	fnUnsigned
	fnFloat
	fnUnique
	fnAny
	fnAll
	fnSum

	// Binary functions.
	fnFmod
	fnPow
	fnAtan2
	fnIn

	// Void functions.
	fnRand
)

// unaryFunctionKinds, binaryFunctionKinds, and voidFunctionKinds are the
// membership sets backing the is_unary_function/is_binary_function/
// is_void_function classification predicates.
var unaryFunctionKinds = map[symbolKind]bool{
	fnSin: true, fnCos: true, fnTan: true, fnAsin: true, fnAcos: true,
	fnAtan: true, fnLog: true, fnLog10: true, fnExp: true, fnAbs: true,
	fnSqrt: true, fnCeil: true, fnFloor: true, fnIsNaN: true, fnIsInf: true,
	fnSinh: true, fnCosh: true, fnTanh: true, fnInt: true, fnUnsigned: true,
	fnFloat: true, fnUnique: true, fnAny: true, fnAll: true, fnSum: true,
}

var binaryFunctionKinds = map[symbolKind]bool{
	fnFmod: true, fnPow: true, fnAtan2: true, fnIn: true,
}

var voidFunctionKinds = map[symbolKind]bool{
	fnRand: true,
}

var comparisonKinds = map[symbolKind]bool{
	opLt: true, opLe: true, opGt: true, opGe: true,
}

var equalityKinds = map[symbolKind]bool{
	opEq: true, opNe: true,
}

func (k symbolKind) isUnaryFunction() bool  { return unaryFunctionKinds[k] }
func (k symbolKind) isBinaryFunction() bool { return binaryFunctionKinds[k] }
func (k symbolKind) isVoidFunction() bool   { return voidFunctionKinds[k] }
func (k symbolKind) isFunction() bool {
	return k.isUnaryFunction() || k.isBinaryFunction() || k.isVoidFunction()
}
func (k symbolKind) isComparison() bool { return comparisonKinds[k] }
func (k symbolKind) isEquality() bool   { return equalityKinds[k] }

// symbol is the polymorphic container C5 mutates in place while
// reducing the token stream down to a single root node.
type symbol struct {
	variant symbolVariant
	kind    symbolKind
	node    Node
	list    []Node

	// column is the source column this symbol started at, kept only for
	// diagnostics.
	column int
}

func nodeSymbol(n Node, column int) *symbol {
	return &symbol{variant: symNode, node: n, column: column}
}

func operatorSymbol(kind symbolKind, column int) *symbol {
	return &symbol{variant: symOperator, kind: kind, column: column}
}

func functionSymbol(kind symbolKind, column int) *symbol {
	return &symbol{variant: symFunction, kind: kind, column: column}
}

func listSymbol(items []Node, column int) *symbol {
	return &symbol{variant: symList, list: items, column: column}
}

func (s *symbol) isNode() bool     { return s.variant == symNode }
func (s *symbol) isFunction() bool { return s.variant == symFunction }
func (s *symbol) isList() bool     { return s.variant == symList }
func (s *symbol) isOperator(k symbolKind) bool {
	return s.variant == symOperator && s.kind == k
}

// keywordFunctions maps every reserved function-name token to its kind.
// "fabs" is kept as an alternate spelling of "abs" (original_source
// recognizes both).
var keywordFunctions = map[string]symbolKind{
	"sin": fnSin, "cos": fnCos, "tan": fnTan,
	"asin": fnAsin, "acos": fnAcos, "atan": fnAtan,
	"log": fnLog, "log10": fnLog10, "exp": fnExp,
	"abs": fnAbs, "fabs": fnAbs, "sqrt": fnSqrt,
	"ceil": fnCeil, "floor": fnFloor,
	"isnan": fnIsNaN, "isinf": fnIsInf,
	"sinh": fnSinh, "cosh": fnCosh, "tanh": fnTanh,
	"int": fnInt, "unsigned": fnUnsigned, "float": fnFloat, "double": fnFloat,
	"unique": fnUnique, "any": fnAny, "all": fnAll, "sum": fnSum,
	"fmod": fnFmod, "pow": fnPow, "atan2": fnAtan2, "in": fnIn,
	"rand": fnRand,
}
