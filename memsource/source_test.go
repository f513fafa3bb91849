package memsource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hayalaso/xcdf/expr"
)

const fixtureYAML = `
fields:
  - name: n
    type: i64
    rows: [3, 0, -1]
  - name: v
    type: f64
    rows: [[1.0, 4.0, 9.0], [], [5.0]]
aliases:
  - name: v_scaled
    expr: "v * 2.0"
`

func TestFromYAMLBuildsFieldsAndReplaysRows(t *testing.T) {
	src, err := FromYAML([]byte(fixtureYAML))
	require.NoError(t, err)

	require.True(t, src.HasField("n"))
	require.True(t, src.HasField("v"))
	assert.False(t, src.HasField("nope"))

	typ, ok := src.FieldType("n")
	require.True(t, ok)
	assert.Equal(t, expr.I64, typ)

	require.True(t, src.Read())
	assert.Equal(t, uint64(0), src.CurrentEventNumber())
	nVec, ok := src.I64Field("n")
	require.True(t, ok)
	assert.Equal(t, int64(3), nVec.At(0))

	require.True(t, src.Read())
	require.True(t, src.Read())
	assert.Equal(t, uint64(2), src.CurrentEventNumber())
	assert.False(t, src.Read(), "fixture only has three rows")
}

func TestFromYAMLFieldTypeMismatchReturnsFalse(t *testing.T) {
	src, err := FromYAML([]byte(fixtureYAML))
	require.NoError(t, err)

	_, ok := src.U64Field("n")
	assert.False(t, ok, "n is declared i64, not u64")
}

func TestFromYAMLAliasCompilesAgainstFields(t *testing.T) {
	src, err := FromYAML([]byte(fixtureYAML))
	require.NoError(t, err)

	require.True(t, src.HasAlias("v_scaled"))
	typ, ok := src.AliasType("v_scaled")
	require.True(t, ok)
	assert.Equal(t, expr.F64, typ)

	require.True(t, src.Read())
	alias, ok := src.F64Alias("v_scaled")
	require.True(t, ok)
	require.Equal(t, uint32(3), alias.Size())
	assert.InDelta(t, 2.0, alias.At(0), 1e-9)
	assert.InDelta(t, 8.0, alias.At(1), 1e-9)
	assert.InDelta(t, 18.0, alias.At(2), 1e-9)
}

func TestFromYAMLCanBeUsedAsRecordSourceForCompile(t *testing.T) {
	src, err := FromYAML([]byte(fixtureYAML))
	require.NoError(t, err)

	e, err := expr.Compile("sum(v) / 3.0 + n", src)
	require.NoError(t, err)

	require.True(t, src.Read())
	assert.InDelta(t, 14.0/3.0+3, e.Get(0).F, 1e-9)
}

func TestFromYAMLRejectsInconsistentRowCounts(t *testing.T) {
	_, err := FromYAML([]byte(`
fields:
  - name: n
    type: i64
    rows: [1, 2, 3]
  - name: v
    type: f64
    rows: [[1.0]]
`))
	require.Error(t, err)
}

func TestFromYAMLRejectsUnknownFieldType(t *testing.T) {
	_, err := FromYAML([]byte(`
fields:
  - name: n
    type: stringly
    rows: [1]
`))
	require.Error(t, err)
}

func TestFromYAMLRejectsBadAliasExpression(t *testing.T) {
	_, err := FromYAML([]byte(`
fields:
  - name: n
    type: i64
    rows: [1]
aliases:
  - name: broken
    expr: "n +"
`))
	require.Error(t, err)
}

func TestFromYAMLFileRejectsMissingPath(t *testing.T) {
	_, err := FromYAMLFile("/nonexistent/path/to/fixture.yaml")
	require.Error(t, err)
}
