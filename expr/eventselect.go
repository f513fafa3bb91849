package expr

// EventSelect is the thin boolean-filter shell over Expression
// described in spec §4.5: it compiles a user string once and, for
// every subsequent row, reduces the root node's first element to a
// truth value.
type EventSelect struct {
	expr *Expression
}

// NewEventSelect compiles expressionString against source and wraps
// it for repeated boolean evaluation.
func NewEventSelect(expressionString string, source RecordSource, opts ...CompileOption) (*EventSelect, error) {
	e, err := Compile(expressionString, source, opts...)
	if err != nil {
		return nil, err
	}
	return &EventSelect{expr: e}, nil
}

// Select evaluates the current row: a size-0 root rejects the event
// (false); otherwise the result is the truthiness of element 0.
func (s *EventSelect) Select() bool {
	if s.expr.Size() == 0 {
		return false
	}
	return s.expr.Get(0).NonZero()
}

// String returns the source text the selector was compiled from.
func (s *EventSelect) String() string { return s.expr.String() }
