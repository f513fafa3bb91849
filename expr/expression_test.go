package expr

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowSource() *testSource {
	s := newTestSource()
	s.setF64("v", [][]float64{{1.0, 4.0, 9.0}, {}, {5.0}})
	s.setI64("n", [][]int64{{3}, {0}, {-1}})
	return s
}

func TestCompileAndEvaluatePerRow(t *testing.T) {
	source := rowSource()
	e, err := Compile("sum(v) / 3.0", source)
	require.NoError(t, err)

	require.True(t, source.Read())
	assert.InDelta(t, 14.0/3.0, e.Get(0).F, 1e-9)

	require.True(t, source.Read())
	assert.Equal(t, 0.0, e.Get(0).F, "sum of an empty vector is 0")

	require.True(t, source.Read())
	assert.InDelta(t, 5.0/3.0, e.Get(0).F, 1e-9)

	assert.False(t, source.Read(), "only three rows were loaded")
}

func TestCompileRejectsEmptyExpression(t *testing.T) {
	_, err := Compile("", rowSource())
	require.Error(t, err)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestCompileRejectsEmptyWhitespaceExpression(t *testing.T) {
	_, err := Compile("   ", rowSource())
	require.Error(t, err)
}

func TestCompilePropagatesTokenizeError(t *testing.T) {
	_, err := Compile("notAField", rowSource())
	require.Error(t, err)
	var unknownErr *UnknownNameError
	assert.ErrorAs(t, err, &unknownErr)
}

func TestCompileRootElementTypeAndString(t *testing.T) {
	source := rowSource()
	e, err := Compile("n + 1", source)
	require.NoError(t, err)
	assert.Equal(t, I64, e.RootElementType())
	assert.Equal(t, "n + 1", e.String())
}

func TestCompileWithRandIsDeterministic(t *testing.T) {
	source := rowSource()
	seeded := func() randSource { return rand.New(rand.NewSource(42)) }

	e1, err := Compile("rand()", source, WithRand(seeded()))
	require.NoError(t, err)
	e2, err := Compile("rand()", source, WithRand(seeded()))
	require.NoError(t, err)

	assert.Equal(t, e1.Get(0).F, e2.Get(0).F, "same seed must produce the same draw")
}

func TestCompileSeededRandDiffersAcrossDraws(t *testing.T) {
	source := rowSource()
	e, err := Compile("rand() - rand()", source, WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	assert.NotEqual(t, 0.0, e.Get(0).F, "two independent draws from a non-degenerate seed should differ")
}

func TestEventSelectRejectsSizeZeroRoot(t *testing.T) {
	source := rowSource()
	sel, err := NewEventSelect("v", source)
	require.NoError(t, err)

	require.True(t, source.Read()) // row 0: v has 3 elements
	assert.True(t, sel.Select())

	require.True(t, source.Read()) // row 1: v is empty
	assert.False(t, sel.Select(), "a size-0 root must reject the event")
}

func TestEventSelectOnComparison(t *testing.T) {
	source := rowSource()
	sel, err := NewEventSelect("n < 0", source)
	require.NoError(t, err)

	require.True(t, source.Read())
	assert.False(t, sel.Select())
	require.True(t, source.Read())
	assert.False(t, sel.Select())
	require.True(t, source.Read())
	assert.True(t, sel.Select())
}

func TestEventSelectString(t *testing.T) {
	sel, err := NewEventSelect("n < 0", rowSource())
	require.NoError(t, err)
	assert.Equal(t, "n < 0", sel.String())
}
