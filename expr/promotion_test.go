package expr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDominantType(t *testing.T) {
	tests := []struct {
		name string
		t1   ElementType
		t2   ElementType
		want ElementType
	}{
		{"both U64 stay U64", U64, U64, U64},
		{"I64 dominates U64", U64, I64, I64},
		{"I64 dominates U64 reversed", I64, U64, I64},
		{"F64 dominates I64", I64, F64, F64},
		{"F64 dominates U64", U64, F64, F64},
		{"F64 dominates everything reversed", F64, U64, F64},
		{"both I64 stay I64", I64, I64, I64},
		{"both F64 stay F64", F64, F64, F64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dominantType(tt.t1, tt.t2))
		})
	}
}

func TestBroadcastSizeLaw(t *testing.T) {
	tests := []struct {
		name   string
		s1, s2 uint32
		want   uint32
	}{
		{"equal sizes", 3, 3, 3},
		{"left longer", 5, 2, 5},
		{"right longer", 2, 5, 5},
		{"left empty forces zero", 0, 5, 0},
		{"right empty forces zero", 5, 0, 0},
		{"both empty", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, broadcastSize(tt.s1, tt.s2))
		})
	}
}

func TestBroadcastIndexRepeatsLastElement(t *testing.T) {
	// A size-1 operand should report index 0 for every requested i.
	assert.Equal(t, uint32(0), broadcastIndex(0, 1))
	assert.Equal(t, uint32(0), broadcastIndex(5, 1))
	// A size-3 operand should pass through until exhausted, then repeat
	// its last element.
	assert.Equal(t, uint32(0), broadcastIndex(0, 3))
	assert.Equal(t, uint32(2), broadcastIndex(2, 3))
	assert.Equal(t, uint32(2), broadcastIndex(7, 3))
}

func TestBuildBinaryOperatorArithPromotion(t *testing.T) {
	left := newConstNode[int64](7)
	right := newConstNode[float64](2.5)

	node, err := buildBinaryOperator(opAdd, left, right)
	require.NoError(t, err)
	assert.Equal(t, F64, node.ElementType())
	assert.Equal(t, 9.5, node.Get(0).F)
}

func TestBuildBinaryOperatorModRoutesFloatToFmod(t *testing.T) {
	left := newConstNode[float64](5.5)
	right := newConstNode[float64](2.0)

	node, err := buildBinaryOperator(opMod, left, right)
	require.NoError(t, err)
	assert.Equal(t, F64, node.ElementType())
	assert.Equal(t, math.Mod(5.5, 2.0), node.Get(0).F)
}

func TestBuildBinaryOperatorIntegerDivByZeroReturnsSentinelZero(t *testing.T) {
	left := newConstNode[int64](9)
	right := newConstNode[int64](0)

	node, err := buildBinaryOperator(opDiv, left, right)
	require.NoError(t, err)
	assert.Equal(t, int64(0), node.Get(0).I)
}

func TestBuildBinaryOperatorIntegerModByZeroReturnsSentinelZero(t *testing.T) {
	left := newConstNode[uint64](9)
	right := newConstNode[uint64](0)

	node, err := buildBinaryOperator(opMod, left, right)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), node.Get(0).U)
}

func TestBuildBinaryOperatorFloatDivByZeroIsIEEE(t *testing.T) {
	left := newConstNode[float64](1.0)
	right := newConstNode[float64](0.0)

	node, err := buildBinaryOperator(opDiv, left, right)
	require.NoError(t, err)
	assert.True(t, math.IsInf(node.Get(0).F, 1))
}

func TestBuildBinaryOperatorBitwiseRejectsFloat(t *testing.T) {
	left := newConstNode[float64](1.0)
	right := newConstNode[int64](2)

	_, err := buildBinaryOperator(opBitAnd, left, right)
	require.Error(t, err)
	var typeErr *TypeError
	assert.ErrorAs(t, err, &typeErr)
}

func TestBuildUnaryOperatorBitNotRejectsFloat(t *testing.T) {
	_, err := buildUnaryOperator(opBitNot, newConstNode[float64](1.0))
	require.Error(t, err)
	var typeErr *TypeError
	assert.ErrorAs(t, err, &typeErr)
}

func TestBuildInRequiresConstantList(t *testing.T) {
	x := newConstNode[int64](3)
	notConst := &counterNode{source: newTestSource()}

	_, err := buildIn(x, []Node{notConst})
	require.Error(t, err)
	var typeErr *TypeError
	assert.ErrorAs(t, err, &typeErr)
}

func TestBuildInCastsListToOperandType(t *testing.T) {
	x := newConstNode[float64](3.0)
	list := []Node{newConstNode[uint64](1), newConstNode[uint64](3), newConstNode[uint64](5)}

	node, err := buildIn(x, list)
	require.NoError(t, err)
	assert.True(t, node.Get(0).NonZero(), "3.0 should be found in (1, 3, 5)")
}

func TestReducerNodesAlwaysSizeOne(t *testing.T) {
	vec := &fieldNode[float64]{name: "v", vec: fixedF64Vec{1, 2, 3}}

	for _, kind := range []symbolKind{fnAny, fnAll, fnSum, fnUnique} {
		node, err := buildUnaryFunction(kind, vec)
		require.NoError(t, err)
		assert.Equal(t, uint32(1), node.Size(), "reducer %v must always report size 1", kind)
	}
}

type fixedF64Vec []float64

func (v fixedF64Vec) Size() uint32        { return uint32(len(v)) }
func (v fixedF64Vec) At(i uint32) float64 { return v[i] }
