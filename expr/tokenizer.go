package expr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hayalaso/xcdf/logger"
)

// operatorChars are the characters that always begin an operator token
// (spec §4.1). "+" and "-" are deliberately absent: their role depends
// on the preceding symbol, so they are handled separately below.
const operatorChars = ",/*%^)(=><&|!~"

func isOperatorChar(b byte) bool {
	return strings.IndexByte(operatorChars, b) >= 0
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\n' || b == '\r' || b == '\t'
}

var twoCharOps = map[string]symbolKind{
	"==": opEq, "!=": opNe, ">=": opGe, "<=": opLe,
	"&&": opLogicalAnd, "||": opLogicalOr,
}

var oneCharOps = map[byte]symbolKind{
	',': opComma, '/': opDiv, '*': opMul, '%': opMod, '^': opPow,
	')': opCloseParen, '(': opOpenParen,
	'>': opGt, '<': opLt, '&': opBitAnd, '|': opBitOr,
	'!': opLogicalNot, '~': opBitNot,
}

// tokenize implements C2 (spec §4.1): it scans the expression
// left-to-right and returns the initial symbol list C5 reduces. Value
// tokens are classified inline against source (spec §4.2), so leaves
// are already built Nodes by the time the parser sees them.
func tokenize(exprStr string, source RecordSource) ([]*symbol, error) {
	var symbols []*symbol
	i := 0
	n := len(exprStr)

	for i < n {
		c := exprStr[i]
		if isWhitespace(c) {
			i++
			continue
		}

		if c == '+' || c == '-' {
			if precededByOperand(symbols) {
				kind := opAdd
				if c == '-' {
					kind = opSub
				}
				symbols = append(symbols, operatorSymbol(kind, i))
				i++
				continue
			}
			// Not preceded by an operand: the sign is either part of a
			// signed numeric literal (default to scanValue, which
			// classifies it directly) or, when nothing numeric follows,
			// a genuine unary operator applied to whatever comes next
			// (a field, function call, or parenthesized group) — spec
			// §4.1 rule 2 only covers the binary case explicitly; this
			// is the necessary completion for "-n + 1"-style filters.
			if !looksLikeNumberStart(exprStr, i+1) {
				kind := opUnaryMinus
				if c == '+' {
					kind = opUnaryPlus
				}
				symbols = append(symbols, operatorSymbol(kind, i))
				i++
				continue
			}
		}

		if isOperatorChar(c) {
			sym, next, err := scanOperator(exprStr, i)
			if err != nil {
				return nil, err
			}
			symbols = append(symbols, sym)
			i = next
			continue
		}

		sym, next, err := scanValue(exprStr, i, source)
		if err != nil {
			return nil, err
		}
		symbols = append(symbols, sym)
		i = next
	}

	return symbols, nil
}

// precededByOperand reports whether the previous symbol is a node or a
// ")", the condition under which a leading "+"/"-" is a binary operator
// rather than part of the next value token (spec §4.1 rule 2).
func precededByOperand(symbols []*symbol) bool {
	if len(symbols) == 0 {
		return false
	}
	last := symbols[len(symbols)-1]
	return last.isNode() || last.isOperator(opCloseParen)
}

func scanOperator(s string, i int) (*symbol, int, error) {
	if i+1 < len(s) {
		if kind, ok := twoCharOps[s[i:i+2]]; ok {
			return operatorSymbol(kind, i), i + 2, nil
		}
	}
	c := s[i]
	if c == '=' {
		return nil, 0, &TokenizeError{Expr: s, Column: i, Msg: "unexpected '=', did you mean '=='?"}
	}
	kind, ok := oneCharOps[c]
	if !ok {
		return nil, 0, &TokenizeError{Expr: s, Column: i, Msg: fmt.Sprintf("unexpected character %q", c)}
	}
	return operatorSymbol(kind, i), i + 1, nil
}

// scanValue implements §4.1 rules 2-3: a greedy scan up to the next
// operator character, then a trim-and-retry loop driven by
// classification failure, shrinking the token at its rightmost
// interior "+"/"-" until classification succeeds or the token cannot
// shrink further.
func scanValue(s string, start int, source RecordSource) (*symbol, int, error) {
	i := start
	for i < len(s) && !isOperatorChar(s[i]) {
		i++
	}
	end := i
	for end > start && isWhitespace(s[end-1]) {
		end--
	}
	token := s[start:end]
	if token == "" {
		return nil, 0, &TokenizeError{Expr: s, Column: start, Msg: "empty value token"}
	}

	log := logger.Named("tokenizer")
	for {
		if sym, ok := classifyValue(token, source, start); ok {
			return sym, start + len(token), nil
		}
		cut := lastInteriorSign(token)
		if cut < 0 {
			break
		}
		log.Warn("%q did not classify, retrying as %q", token, token[:cut])
		token = token[:cut]
		// Re-trim: the character immediately before the sign we just cut
		// at is very often whitespace (e.g. "n + 1" shrinks to "n "),
		// and classification matches field/alias names exactly.
		for len(token) > 0 && isWhitespace(token[len(token)-1]) {
			token = token[:len(token)-1]
		}
	}

	// A token whose words are separated by whitespace ("n in", "n n") is
	// several adjacent values: classify its first word alone and leave
	// the rest for the next scan.
	if ws := strings.IndexAny(token, " \n\r\t"); ws > 0 {
		if sym, ok := classifyValue(token[:ws], source, start); ok {
			return sym, start + ws, nil
		}
		token = token[:ws]
	}

	if looksNumeric(token) {
		return nil, 0, &TokenizeError{Expr: s, Column: start, Msg: fmt.Sprintf("unrecognized numeric literal %q", token)}
	}
	if c := token[0]; c != '_' && !(c >= 'a' && c <= 'z') && !(c >= 'A' && c <= 'Z') {
		return nil, 0, &TokenizeError{Expr: s, Column: start, Msg: fmt.Sprintf("unexpected character %q", c)}
	}
	return nil, 0, &UnknownNameError{Name: token}
}

// lastInteriorSign finds the rightmost "+"/"-" strictly after the first
// character (a leading sign is kept; it is part of the literal, not a
// retry boundary). Returns -1 if there is none.
func lastInteriorSign(token string) int {
	for i := len(token) - 1; i > 0; i-- {
		if token[i] == '+' || token[i] == '-' {
			return i
		}
	}
	return -1
}

func looksNumeric(token string) bool {
	i := 0
	if len(token) > 0 && (token[0] == '+' || token[0] == '-') {
		i++
	}
	return i < len(token) && token[i] >= '0' && token[i] <= '9'
}

// looksLikeNumberStart reports whether position i of s begins a numeric
// literal (a digit, or a '.' immediately followed by a digit), used to
// decide whether a leading "+"/"-" belongs to a signed literal or is a
// standalone unary operator.
func looksLikeNumberStart(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	if s[i] >= '0' && s[i] <= '9' {
		return true
	}
	return s[i] == '.' && i+1 < len(s) && s[i+1] >= '0' && s[i+1] <= '9'
}

// classifyValue implements §4.2's ordered match: field, alias,
// currentEventNumber, numeric literal, function keyword, true/false.
func classifyValue(token string, source RecordSource, column int) (*symbol, bool) {
	if source != nil {
		if source.HasField(token) {
			return fieldSymbol(token, source, column), true
		}
		if source.HasAlias(token) {
			return aliasSymbol(token, source, column), true
		}
	}
	if token == "currentEventNumber" {
		return nodeSymbol(&counterNode{source: source}, column), true
	}
	if sym, ok := classifyNumericLiteral(token, column); ok {
		return sym, true
	}
	if kind, ok := keywordFunctions[token]; ok {
		return functionSymbol(kind, column), true
	}
	if token == "true" {
		return nodeSymbol(newConstNode[uint64](1), column), true
	}
	if token == "false" {
		return nodeSymbol(newConstNode[uint64](0), column), true
	}
	return nil, false
}

func fieldSymbol(name string, source RecordSource, column int) *symbol {
	t, _ := source.FieldType(name)
	switch t {
	case U64:
		vec, _ := source.U64Field(name)
		return nodeSymbol(newFieldNode[uint64](name, vec), column)
	case I64:
		vec, _ := source.I64Field(name)
		return nodeSymbol(newFieldNode[int64](name, vec), column)
	default:
		vec, _ := source.F64Field(name)
		return nodeSymbol(newFieldNode[float64](name, vec), column)
	}
}

func aliasSymbol(name string, source RecordSource, column int) *symbol {
	t, _ := source.AliasType(name)
	switch t {
	case U64:
		alias, _ := source.U64Alias(name)
		return nodeSymbol(newAliasNode[uint64](alias), column)
	case I64:
		alias, _ := source.I64Alias(name)
		return nodeSymbol(newAliasNode[int64](alias), column)
	default:
		alias, _ := source.F64Alias(name)
		return nodeSymbol(newAliasNode[float64](alias), column)
	}
}

// classifyNumericLiteral tries hex U64, decimal U64, decimal I64, then
// decimal F64, in that order, the first to consume the whole token
// winning (spec §4.2 point 4). Hex is recognized by a "0x"/"0X" prefix
// rather than the original_source's "contains 'Xx'" substring check,
// per the fix spec §9 recommends for that open question.
func classifyNumericLiteral(token string, column int) (*symbol, bool) {
	if len(token) > 2 && (token[0:2] == "0x" || token[0:2] == "0X") {
		if v, err := strconv.ParseUint(token[2:], 16, 64); err == nil {
			return nodeSymbol(newConstNode(v), column), true
		}
		return nil, false
	}
	if v, err := strconv.ParseUint(token, 10, 64); err == nil {
		return nodeSymbol(newConstNode(v), column), true
	}
	if v, err := strconv.ParseInt(token, 10, 64); err == nil {
		return nodeSymbol(newConstNode(v), column), true
	}
	if v, err := strconv.ParseFloat(token, 64); err == nil {
		return nodeSymbol(newConstNode(v), column), true
	}
	return nil, false
}
