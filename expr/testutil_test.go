package expr

// testSource is a minimal hand-rolled RecordSource for white-box tests
// in this package, playing the role the rulego-streamsql test helpers
// play for evaluator tests: a tiny fixture the table-driven tests
// drive directly instead of going through memsource/YAML.
type testSource struct {
	row int
	u64 map[string][][]uint64
	i64 map[string][][]int64
	f64 map[string][][]float64
}

func newTestSource() *testSource {
	return &testSource{
		row: -1,
		u64: map[string][][]uint64{},
		i64: map[string][][]int64{},
		f64: map[string][][]float64{},
	}
}

func (s *testSource) setU64(name string, rows [][]uint64)  { s.u64[name] = rows }
func (s *testSource) setI64(name string, rows [][]int64)   { s.i64[name] = rows }
func (s *testSource) setF64(name string, rows [][]float64) { s.f64[name] = rows }

func (s *testSource) HasField(name string) bool {
	if _, ok := s.u64[name]; ok {
		return true
	}
	if _, ok := s.i64[name]; ok {
		return true
	}
	if _, ok := s.f64[name]; ok {
		return true
	}
	return false
}

func (s *testSource) FieldType(name string) (ElementType, bool) {
	if _, ok := s.u64[name]; ok {
		return U64, true
	}
	if _, ok := s.i64[name]; ok {
		return I64, true
	}
	if _, ok := s.f64[name]; ok {
		return F64, true
	}
	return 0, false
}

func (s *testSource) U64Field(name string) (VectorU64, bool) {
	rows, ok := s.u64[name]
	if !ok {
		return nil, false
	}
	return testVecU64{rows: rows, src: s}, true
}

func (s *testSource) I64Field(name string) (VectorI64, bool) {
	rows, ok := s.i64[name]
	if !ok {
		return nil, false
	}
	return testVecI64{rows: rows, src: s}, true
}

func (s *testSource) F64Field(name string) (VectorF64, bool) {
	rows, ok := s.f64[name]
	if !ok {
		return nil, false
	}
	return testVecF64{rows: rows, src: s}, true
}

func (s *testSource) HasAlias(string) bool                               { return false }
func (s *testSource) AliasType(string) (ElementType, bool)               { return 0, false }
func (s *testSource) U64Alias(string) (AliasVector[uint64], bool)        { return nil, false }
func (s *testSource) I64Alias(string) (AliasVector[int64], bool)         { return nil, false }
func (s *testSource) F64Alias(string) (AliasVector[float64], bool)       { return nil, false }

func (s *testSource) CurrentEventNumber() uint64 {
	if s.row < 0 {
		return 0
	}
	return uint64(s.row)
}

func (s *testSource) Read() bool {
	s.row++
	return s.row < s.numRows()
}

func (s *testSource) numRows() int {
	for _, rows := range s.u64 {
		return len(rows)
	}
	for _, rows := range s.i64 {
		return len(rows)
	}
	for _, rows := range s.f64 {
		return len(rows)
	}
	return 0
}

type testVecU64 struct {
	rows [][]uint64
	src  *testSource
}

func (v testVecU64) Size() uint32      { return uint32(len(v.rows[v.src.row])) }
func (v testVecU64) At(i uint32) uint64 { return v.rows[v.src.row][i] }

type testVecI64 struct {
	rows [][]int64
	src  *testSource
}

func (v testVecI64) Size() uint32     { return uint32(len(v.rows[v.src.row])) }
func (v testVecI64) At(i uint32) int64 { return v.rows[v.src.row][i] }

type testVecF64 struct {
	rows [][]float64
	src  *testSource
}

func (v testVecF64) Size() uint32       { return uint32(len(v.rows[v.src.row])) }
func (v testVecF64) At(i uint32) float64 { return v.rows[v.src.row][i] }
