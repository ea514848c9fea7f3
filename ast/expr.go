package ast

import (
	"hash/fnv"

	"github.com/sqlgraph/sqlgraph/utils"
)

// BinaryExpr applies an operator to two operand expressions.
type BinaryExpr struct {
	Left     Expression
	Operator Operator
	Right    Expression
}

func NewBinaryExpr(left Expression, op Operator, right Expression) *BinaryExpr {
	return &BinaryExpr{Left: left, Operator: op, Right: right}
}

func (b *BinaryExpr) Type() NodeType { return NodeBinaryExpr }

func (b *BinaryExpr) Equals(other Expression, cmp Comparer) bool {
	o, ok := other.(*BinaryExpr)
	if !ok {
		return false
	}
	if o == b {
		return true
	}
	return b.Operator == o.Operator &&
		b.Left.Equals(o.Left, cmp) &&
		b.Right.Equals(o.Right, cmp) &&
		cmp(b, o)
}

func (b *BinaryExpr) Clone(ids IdentityMap, should ShouldClone) Expression {
	if should != nil && !should(b) {
		return b
	}
	if ids == nil {
		ids = make(IdentityMap)
	}
	if clone, ok := ids[b]; ok {
		return clone
	}
	clone := &BinaryExpr{Operator: b.Operator}
	ids[b] = clone
	clone.Left = b.Left.Clone(ids, should)
	clone.Right = b.Right.Clone(ids, should)
	return clone
}

func (b *BinaryExpr) Walk(opts WalkOptions, fn Rewrite) Expression {
	b.Left = b.Left.Walk(opts, fn)
	b.Right = b.Right.Walk(opts, fn)
	return fn(b)
}

func (b *BinaryExpr) Nullable() bool {
	return b.Left.Nullable() || b.Right.Nullable()
}

func (b *BinaryExpr) Precedence() Precedence {
	return OperatorPrecedence(b.Operator)
}

func (b *BinaryExpr) Fingerprint() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("bin:" + b.Operator))
	_, _ = h.Write(utils.U64ToBytes(b.Left.Fingerprint()))
	_, _ = h.Write(utils.U64ToBytes(b.Right.Fingerprint()))
	return h.Sum64()
}

func (b *BinaryExpr) String() string {
	return b.Left.String() + " " + string(b.Operator) + " " + b.Right.String()
}

// GroupedExpr parenthesizes its inner expression.
type GroupedExpr struct {
	Expr Expression
}

func NewGroupedExpr(expr Expression) *GroupedExpr {
	return &GroupedExpr{Expr: expr}
}

func (g *GroupedExpr) Type() NodeType { return NodeGroupedExpr }

func (g *GroupedExpr) Equals(other Expression, cmp Comparer) bool {
	o, ok := other.(*GroupedExpr)
	if !ok {
		return false
	}
	if o == g {
		return true
	}
	return g.Expr.Equals(o.Expr, cmp) && cmp(g, o)
}

func (g *GroupedExpr) Clone(ids IdentityMap, should ShouldClone) Expression {
	if should != nil && !should(g) {
		return g
	}
	if ids == nil {
		ids = make(IdentityMap)
	}
	if clone, ok := ids[g]; ok {
		return clone
	}
	clone := &GroupedExpr{}
	ids[g] = clone
	clone.Expr = g.Expr.Clone(ids, should)
	return clone
}

func (g *GroupedExpr) Walk(opts WalkOptions, fn Rewrite) Expression {
	g.Expr = g.Expr.Walk(opts, fn)
	return fn(g)
}

func (g *GroupedExpr) Nullable() bool { return g.Expr.Nullable() }

func (g *GroupedExpr) Precedence() Precedence { return PrecedencePrimary }

func (g *GroupedExpr) Fingerprint() uint64 {
	return utils.Mix64(utils.FingerprintString("grouped"), g.Expr.Fingerprint())
}

func (g *GroupedExpr) String() string { return "(" + g.Expr.String() + ")" }
