/*
Package expr implements the expression compiler and evaluator at the core
of XCDF: it tokenizes an arithmetic/logical expression string, parses it
against the schema exposed by a bound RecordSource, and builds a typed
node graph that is evaluated once per record.

Three scalar element types flow through the graph: U64 (uint64), I64
(int64), and F64 (float64). Every Node declares a fixed ElementType at
construction and produces a per-row vector of that type; binary
operators promote mismatched operand types through a 3x3 dominant-type
table (dominantType, in promotion.go).

A compiled Expression exclusively owns every node it allocated during
Compile; nodes hold read-only references into the RecordSource and are
re-evaluated from scratch on every row. Compiled expressions are not
safe for concurrent use — one Expression per goroutine.
*/
package expr
