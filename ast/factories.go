package ast

// High-level factory helpers for assembling projection expressions.

func Fields(table string, names ...string) []*Field {
	fields := make([]*Field, len(names))
	for i, name := range names {
		fields[i] = NewField(table, name)
	}
	return fields
}

func Eq(left, right Expression) *BinaryExpr {
	return NewBinaryExpr(left, OpEqual, right)
}

func And(left, right Expression) *BinaryExpr {
	return NewBinaryExpr(left, OpAnd, right)
}

func Or(left, right Expression) *BinaryExpr {
	return NewBinaryExpr(left, OpOr, right)
}

func Concat(left, right Expression) *BinaryExpr {
	return NewBinaryExpr(left, OpConcat, right)
}

func Grouped(expr Expression) *GroupedExpr {
	return NewGroupedExpr(expr)
}

func Count(arg Expression) *Function {
	return NewFunction("COUNT", arg)
}

func Coalesce(args ...Expression) *Function {
	return NewFunction("COALESCE", args...)
}
