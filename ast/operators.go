package ast

type Operator string

// Comparison
const (
	OpEqual              Operator = "="
	OpNotEqual           Operator = "<>"
	OpLessThan           Operator = "<"
	OpLessThanOrEqual    Operator = "<="
	OpGreaterThan        Operator = ">"
	OpGreaterThanOrEqual Operator = ">="
)

// Logical
const (
	OpAnd Operator = "AND"
	OpOr  Operator = "OR"
	OpNot Operator = "NOT"
)

// Pattern matching
const (
	OpLike    Operator = "LIKE"
	OpNotLike Operator = "NOT LIKE"
)

// Arithmetic
const (
	OpAdd      Operator = "+"
	OpSubtract Operator = "-"
	OpMultiply Operator = "*"
	OpDivide   Operator = "/"
	OpModulo   Operator = "%"
)

// String
const (
	OpConcat Operator = "||"
)

// OperatorPrecedence maps an operator onto the renderer's
// parenthesization ladder.
func OperatorPrecedence(op Operator) Precedence {
	switch op {
	case OpOr:
		return PrecedenceLogicalOr
	case OpAnd:
		return PrecedenceLogicalAnd
	case OpEqual, OpNotEqual, OpLessThan, OpLessThanOrEqual,
		OpGreaterThan, OpGreaterThanOrEqual, OpLike, OpNotLike:
		return PrecedenceComparison
	case OpAdd, OpSubtract, OpConcat:
		return PrecedenceAdditive
	case OpMultiply, OpDivide, OpModulo:
		return PrecedenceMultiplicative
	case OpNot:
		return PrecedenceUnary
	}
	return PrecedenceUnknown
}
