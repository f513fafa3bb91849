// Package memsource is a minimal in-memory implementation of the
// expr.RecordSource contract (spec §6.1, §12 supplemented feature): it
// loads a fixed set of rows from a YAML fixture once, then replays
// them one at a time via Read, the way a real record-file reader
// would stream rows off disk.
package memsource

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/hayalaso/xcdf/expr"
)

type rawSchema struct {
	Fields  []rawField `yaml:"fields"`
	Aliases []rawAlias `yaml:"aliases"`
}

type rawField struct {
	Name string        `yaml:"name"`
	Type string        `yaml:"type"`
	Rows []interface{} `yaml:"rows"`
}

type rawAlias struct {
	Name string `yaml:"name"`
	Expr string `yaml:"expr"`
}

type fieldColumn struct {
	typ     expr.ElementType
	u64Rows [][]uint64
	i64Rows [][]int64
	f64Rows [][]float64
}

type aliasColumn struct {
	typ  expr.ElementType
	expr *expr.Expression
}

// Source is a replayable, in-memory RecordSource. Every field is
// stored as one vector per row, so a scalar field like n in spec §8.2
// is simply a field whose every row happens to hold one element.
type Source struct {
	fields  map[string]*fieldColumn
	aliases map[string]*aliasColumn
	numRows int
	row     int
}

// FromYAMLFile loads a Source from a YAML fixture on disk.
func FromYAMLFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("memsource: read %s: %w", path, err)
	}
	return FromYAML(data)
}

// FromYAML builds a Source from a YAML document of the form:
//
//	fields:
//	  - name: n
//	    type: u64
//	    rows: [3, 0]
//	  - name: v
//	    type: f64
//	    rows: [[1.0, 4.0, 9.0], []]
//	aliases:
//	  - name: v_scaled
//	    expr: "v * 2.0"
func FromYAML(data []byte) (*Source, error) {
	var raw rawSchema
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("memsource: parse schema: %w", err)
	}

	src := &Source{
		fields:  make(map[string]*fieldColumn),
		aliases: make(map[string]*aliasColumn),
		row:     -1,
	}

	numRows := -1
	for _, f := range raw.Fields {
		typ, err := parseElementType(f.Type)
		if err != nil {
			return nil, fmt.Errorf("memsource: field %q: %w", f.Name, err)
		}
		col, err := buildColumn(f, typ)
		if err != nil {
			return nil, err
		}
		if numRows < 0 {
			numRows = len(f.Rows)
		} else if len(f.Rows) != numRows {
			return nil, fmt.Errorf("memsource: field %q has %d rows, expected %d", f.Name, len(f.Rows), numRows)
		}
		src.fields[f.Name] = col
	}
	if numRows < 0 {
		numRows = 0
	}
	src.numRows = numRows

	for _, a := range raw.Aliases {
		e, err := expr.Compile(a.Expr, src)
		if err != nil {
			return nil, fmt.Errorf("memsource: alias %q: %w", a.Name, err)
		}
		src.aliases[a.Name] = &aliasColumn{typ: e.RootElementType(), expr: e}
	}

	return src, nil
}

func buildColumn(f rawField, typ expr.ElementType) (*fieldColumn, error) {
	col := &fieldColumn{typ: typ}
	for rowIdx, rawRow := range f.Rows {
		items := toSlice(rawRow)
		switch typ {
		case expr.U64:
			row := make([]uint64, len(items))
			for i, v := range items {
				u, err := cast.ToUint64E(v)
				if err != nil {
					return nil, fmt.Errorf("memsource: field %q row %d: %w", f.Name, rowIdx, err)
				}
				row[i] = u
			}
			col.u64Rows = append(col.u64Rows, row)
		case expr.I64:
			row := make([]int64, len(items))
			for i, v := range items {
				n, err := cast.ToInt64E(v)
				if err != nil {
					return nil, fmt.Errorf("memsource: field %q row %d: %w", f.Name, rowIdx, err)
				}
				row[i] = n
			}
			col.i64Rows = append(col.i64Rows, row)
		default:
			row := make([]float64, len(items))
			for i, v := range items {
				n, err := cast.ToFloat64E(v)
				if err != nil {
					return nil, fmt.Errorf("memsource: field %q row %d: %w", f.Name, rowIdx, err)
				}
				row[i] = n
			}
			col.f64Rows = append(col.f64Rows, row)
		}
	}
	return col, nil
}

// toSlice normalizes a YAML row into a slice: a bare scalar becomes a
// single-element slice, a YAML sequence passes through unchanged.
func toSlice(raw interface{}) []interface{} {
	if raw == nil {
		return nil
	}
	if items, ok := raw.([]interface{}); ok {
		return items
	}
	return []interface{}{raw}
}

func parseElementType(s string) (expr.ElementType, error) {
	switch strings.ToLower(s) {
	case "u64", "uint64", "unsigned":
		return expr.U64, nil
	case "i64", "int64", "int":
		return expr.I64, nil
	case "f64", "float64", "float", "double":
		return expr.F64, nil
	default:
		return 0, fmt.Errorf("unknown field type %q", s)
	}
}

// HasField implements expr.RecordSource.
func (s *Source) HasField(name string) bool {
	_, ok := s.fields[name]
	return ok
}

// FieldType implements expr.RecordSource.
func (s *Source) FieldType(name string) (expr.ElementType, bool) {
	c, ok := s.fields[name]
	if !ok {
		return 0, false
	}
	return c.typ, true
}

// U64Field implements expr.RecordSource.
func (s *Source) U64Field(name string) (expr.VectorU64, bool) {
	c, ok := s.fields[name]
	if !ok || c.typ != expr.U64 {
		return nil, false
	}
	return u64Vector{col: c, src: s}, true
}

// I64Field implements expr.RecordSource.
func (s *Source) I64Field(name string) (expr.VectorI64, bool) {
	c, ok := s.fields[name]
	if !ok || c.typ != expr.I64 {
		return nil, false
	}
	return i64Vector{col: c, src: s}, true
}

// F64Field implements expr.RecordSource.
func (s *Source) F64Field(name string) (expr.VectorF64, bool) {
	c, ok := s.fields[name]
	if !ok || c.typ != expr.F64 {
		return nil, false
	}
	return f64Vector{col: c, src: s}, true
}

// HasAlias implements expr.RecordSource.
func (s *Source) HasAlias(name string) bool {
	_, ok := s.aliases[name]
	return ok
}

// AliasType implements expr.RecordSource.
func (s *Source) AliasType(name string) (expr.ElementType, bool) {
	a, ok := s.aliases[name]
	if !ok {
		return 0, false
	}
	return a.typ, true
}

// U64Alias implements expr.RecordSource.
func (s *Source) U64Alias(name string) (expr.AliasVector[uint64], bool) {
	a, ok := s.aliases[name]
	if !ok || a.typ != expr.U64 {
		return nil, false
	}
	return u64AliasVector{name: name, e: a.expr}, true
}

// I64Alias implements expr.RecordSource.
func (s *Source) I64Alias(name string) (expr.AliasVector[int64], bool) {
	a, ok := s.aliases[name]
	if !ok || a.typ != expr.I64 {
		return nil, false
	}
	return i64AliasVector{name: name, e: a.expr}, true
}

// F64Alias implements expr.RecordSource.
func (s *Source) F64Alias(name string) (expr.AliasVector[float64], bool) {
	a, ok := s.aliases[name]
	if !ok || a.typ != expr.F64 {
		return nil, false
	}
	return f64AliasVector{name: name, e: a.expr}, true
}

// CurrentEventNumber implements expr.RecordSource: rows are numbered
// from 0 in fixture order.
func (s *Source) CurrentEventNumber() uint64 {
	if s.row < 0 {
		return 0
	}
	return uint64(s.row)
}

// Read implements expr.RecordSource, advancing to the next fixture
// row; it returns false once every row has been consumed.
func (s *Source) Read() bool {
	s.row++
	return s.row < s.numRows
}
