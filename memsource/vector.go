package memsource

import "github.com/hayalaso/xcdf/expr"

// u64Vector, i64Vector, and f64Vector are lazy views over a
// fieldColumn's current row: Size/At index s.src.row only when
// called, so they stay valid across Read() advancing the row, exactly
// as expr's leaf nodes expect (they hold the vector, not a snapshot).
type u64Vector struct {
	col *fieldColumn
	src *Source
}

func (v u64Vector) Size() uint32      { return uint32(len(v.col.u64Rows[v.src.row])) }
func (v u64Vector) At(i uint32) uint64 { return v.col.u64Rows[v.src.row][i] }

type i64Vector struct {
	col *fieldColumn
	src *Source
}

func (v i64Vector) Size() uint32     { return uint32(len(v.col.i64Rows[v.src.row])) }
func (v i64Vector) At(i uint32) int64 { return v.col.i64Rows[v.src.row][i] }

type f64Vector struct {
	col *fieldColumn
	src *Source
}

func (v f64Vector) Size() uint32       { return uint32(len(v.col.f64Rows[v.src.row])) }
func (v f64Vector) At(i uint32) float64 { return v.col.f64Rows[v.src.row][i] }

// u64AliasVector, i64AliasVector, and f64AliasVector adapt a
// precompiled alias expression to expr.AliasVector[T]. An in-memory
// alias has no parent field of its own.
type u64AliasVector struct {
	name string
	e    *expr.Expression
}

func (v u64AliasVector) Size() uint32       { return v.e.Size() }
func (v u64AliasVector) At(i uint32) uint64 { return v.e.Get(i).AsU64() }
func (v u64AliasVector) HasParent() bool    { return false }
func (v u64AliasVector) ParentName() string { return "" }
func (v u64AliasVector) Name() string       { return v.name }

type i64AliasVector struct {
	name string
	e    *expr.Expression
}

func (v i64AliasVector) Size() uint32       { return v.e.Size() }
func (v i64AliasVector) At(i uint32) int64  { return v.e.Get(i).AsI64() }
func (v i64AliasVector) HasParent() bool    { return false }
func (v i64AliasVector) ParentName() string { return "" }
func (v i64AliasVector) Name() string       { return v.name }

type f64AliasVector struct {
	name string
	e    *expr.Expression
}

func (v f64AliasVector) Size() uint32        { return v.e.Size() }
func (v f64AliasVector) At(i uint32) float64 { return v.e.Get(i).AsF64() }
func (v f64AliasVector) HasParent() bool     { return false }
func (v f64AliasVector) ParentName() string  { return "" }
func (v f64AliasVector) Name() string        { return v.name }
