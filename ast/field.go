package ast

import "github.com/sqlgraph/sqlgraph/utils"

// Field is a physical column of a source table, optionally aliased.
type Field struct {
	Table      string
	Name       string
	Alias      string
	IsNullable bool
}

func NewField(table, name string) *Field {
	return &Field{Table: table, Name: name}
}

func (f *Field) Type() NodeType { return NodeField }

func (f *Field) Equals(other Expression, cmp Comparer) bool {
	o, ok := other.(*Field)
	if !ok {
		return false
	}
	if o == f {
		return true
	}
	return f.Table == o.Table && f.Name == o.Name && cmp(f, o)
}

func (f *Field) Clone(ids IdentityMap, should ShouldClone) Expression {
	if should != nil && !should(f) {
		return f
	}
	if ids == nil {
		ids = make(IdentityMap)
	}
	if clone, ok := ids[f]; ok {
		return clone
	}
	clone := &Field{Table: f.Table, Name: f.Name, Alias: f.Alias, IsNullable: f.IsNullable}
	ids[f] = clone
	return clone
}

func (f *Field) Walk(_ WalkOptions, fn Rewrite) Expression { return fn(f) }

func (f *Field) Nullable() bool { return f.IsNullable }

func (f *Field) Precedence() Precedence { return PrecedencePrimary }

func (f *Field) Fingerprint() uint64 {
	return utils.FingerprintString("field:" + f.Table + "." + f.Name)
}

func (f *Field) String() string {
	if f.Table != "" {
		return f.Table + "." + f.Name
	}
	return f.Name
}
