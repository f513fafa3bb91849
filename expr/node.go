package expr

// Node is the evaluator contract every element of the compiled
// expression graph satisfies (spec §3.2). size() may change between
// rows; get(i) is only defined for i < Size().
type Node interface {
	ElementType() ElementType
	Size() uint32
	Get(i uint32) Scalar
}

// LeafInfo is implemented additionally by field and alias leaf nodes,
// used by a record binder that needs to know where a value came from.
type LeafInfo interface {
	HasParent() bool
	ParentName() string
	Name() string
}

// Vector is a per-row typed column handle supplied by a RecordSource.
type Vector[T Number] interface {
	Size() uint32
	At(i uint32) T
}

type (
	// VectorU64 is a Vector[uint64] field or alias handle.
	VectorU64 = Vector[uint64]
	// VectorI64 is a Vector[int64] field or alias handle.
	VectorI64 = Vector[int64]
	// VectorF64 is a Vector[float64] field or alias handle.
	VectorF64 = Vector[float64]
)

// AliasVector additionally exposes the parent-field metadata an alias's
// head node carries.
type AliasVector[T Number] interface {
	Vector[T]
	HasParent() bool
	ParentName() string
	Name() string
}

// RecordSource is the minimum interface the parser and evaluator need
// from whatever owns the underlying columnar storage (spec §6.1).
type RecordSource interface {
	HasField(name string) bool
	FieldType(name string) (ElementType, bool)
	U64Field(name string) (VectorU64, bool)
	I64Field(name string) (VectorI64, bool)
	F64Field(name string) (VectorF64, bool)

	HasAlias(name string) bool
	AliasType(name string) (ElementType, bool)
	U64Alias(name string) (AliasVector[uint64], bool)
	I64Alias(name string) (AliasVector[int64], bool)
	F64Alias(name string) (AliasVector[float64], bool)

	CurrentEventNumber() uint64
	Read() bool
}

// fieldNode is the leaf wrapping a record source's column (spec §4.4,
// grounded on original_source/include/xcdf/utility/FieldNodeDefs.h's
// FieldNode<T>).
type fieldNode[T Number] struct {
	name string
	vec  Vector[T]
}

func newFieldNode[T Number](name string, vec Vector[T]) *fieldNode[T] {
	return &fieldNode[T]{name: name, vec: vec}
}

func (n *fieldNode[T]) ElementType() ElementType { return elementTypeOf[T]() }
func (n *fieldNode[T]) Size() uint32             { return n.vec.Size() }
func (n *fieldNode[T]) Get(i uint32) Scalar      { return scalarOf(n.vec.At(i)) }
func (n *fieldNode[T]) HasParent() bool          { return false }
func (n *fieldNode[T]) ParentName() string       { return "" }
func (n *fieldNode[T]) Name() string             { return n.name }

// aliasNode is the leaf wrapping a precompiled alias exposed by the
// record source as though it were a field.
type aliasNode[T Number] struct {
	alias AliasVector[T]
}

func newAliasNode[T Number](alias AliasVector[T]) *aliasNode[T] {
	return &aliasNode[T]{alias: alias}
}

func (n *aliasNode[T]) ElementType() ElementType { return elementTypeOf[T]() }
func (n *aliasNode[T]) Size() uint32             { return n.alias.Size() }
func (n *aliasNode[T]) Get(i uint32) Scalar      { return scalarOf(n.alias.At(i)) }
func (n *aliasNode[T]) HasParent() bool          { return n.alias.HasParent() }
func (n *aliasNode[T]) ParentName() string       { return n.alias.ParentName() }
func (n *aliasNode[T]) Name() string             { return n.alias.Name() }

// counterNode exposes the record source's monotonically increasing row
// counter as a size-1 U64 node.
type counterNode struct {
	source RecordSource
}

func (n *counterNode) ElementType() ElementType { return U64 }
func (n *counterNode) Size() uint32             { return 1 }
func (n *counterNode) Get(i uint32) Scalar {
	return Scalar{Type: U64, U: n.source.CurrentEventNumber()}
}

// constNode is a size-1 literal of fixed type, produced by numeric
// literals, true/false, and used as the payload of an in(...) list.
type constNode[T Number] struct {
	value T
}

func newConstNode[T Number](v T) *constNode[T] { return &constNode[T]{value: v} }

func (n *constNode[T]) ElementType() ElementType { return elementTypeOf[T]() }
func (n *constNode[T]) Size() uint32             { return 1 }
func (n *constNode[T]) Get(i uint32) Scalar      { return scalarOf(n.value) }

// constScalarOf extracts the single value out of a constant leaf node,
// failing if n is not one of the const node types. Used by the in(...)
// builder, which requires every list element to be compile-time
// constant (spec §3.5).
func constScalarOf(n Node) (Scalar, bool) {
	switch c := n.(type) {
	case *constNode[uint64]:
		return scalarOf(c.value), true
	case *constNode[int64]:
		return scalarOf(c.value), true
	case *constNode[float64]:
		return scalarOf(c.value), true
	default:
		return Scalar{}, false
	}
}
