package expr

import (
	"github.com/hayalaso/xcdf/logger"
)

// Expression is a compiled, single-rooted node graph bound to the
// RecordSource it was compiled against (spec §3.4, §6.2). It owns
// every node Compile allocated; it is re-entrant against its own
// graph but not against the bound source, and is not safe for
// concurrent use — one Expression per goroutine.
type Expression struct {
	root Node
	text string
}

// CompileOption customizes a single Compile call.
type CompileOption func(*compileConfig)

type compileConfig struct {
	rand randSource
}

// WithRand overrides the source rand() draws from during this compile,
// in place of the process-wide generator. Tests pin a seeded source so
// expressions containing rand() are reproducible (spec §9: "re-architect
// as a pluggable generator ... default to a thread-local deterministic
// seed for tests").
func WithRand(source randSource) CompileOption {
	return func(c *compileConfig) { c.rand = source }
}

// Compile implements §6.2's compile(expression_string, source): it
// tokenizes expressionString, classifying value tokens against source,
// then parses the token list down to a single root node. The returned
// Expression is immediately ready for per-row evaluation.
func Compile(expressionString string, source RecordSource, opts ...CompileOption) (*Expression, error) {
	cfg := &compileConfig{rand: globalRand}
	for _, opt := range opts {
		opt(cfg)
	}

	log := logger.Named("expr")
	log.Debug("compiling %q", expressionString)

	symbols, err := tokenize(expressionString, source)
	if err != nil {
		log.Warn("tokenize failed for %q: %v", expressionString, err)
		return nil, err
	}
	if len(symbols) == 0 {
		return nil, &ParseError{Msg: "empty expression"}
	}

	root, err := parse(symbols, expressionString, cfg.rand)
	if err != nil {
		log.Warn("parse failed for %q: %v", expressionString, err)
		return nil, err
	}
	if root == nil || !root.isNode() {
		return nil, &ParseError{Expr: expressionString, Msg: "expression did not reduce to a single value"}
	}

	return &Expression{root: root.node, text: expressionString}, nil
}

// RootElementType reports the compiled expression's declared output
// type.
func (e *Expression) RootElementType() ElementType { return e.root.ElementType() }

// Size reports the root node's element count for the current row.
func (e *Expression) Size() uint32 { return e.root.Size() }

// Get returns the i-th element of the current row's result.
func (e *Expression) Get(i uint32) Scalar { return e.root.Get(i) }

// String returns the source text the expression was compiled from.
func (e *Expression) String() string { return e.text }
