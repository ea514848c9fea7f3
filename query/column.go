package query

import (
	"strings"

	"github.com/sqlgraph/sqlgraph/ast"
)

// Col is the fluent entry point for building field references.
func Col(name string) *ColumnBuilder {
	return &ColumnBuilder{name: name}
}

// ColumnBuilder accumulates a field spec before materializing it.
type ColumnBuilder struct {
	table    string
	name     string
	alias    string
	nullable bool
}

func (cb *ColumnBuilder) From(table string) *ColumnBuilder {
	cb.table = table
	return cb
}

func (cb *ColumnBuilder) As(alias string) *ColumnBuilder {
	cb.alias = alias
	return cb
}

func (cb *ColumnBuilder) Nullable() *ColumnBuilder {
	cb.nullable = true
	return cb
}

func (cb *ColumnBuilder) Build() *ast.Field {
	f := ast.NewField(cb.table, cb.name)
	f.Alias = cb.alias
	f.IsNullable = cb.nullable
	return f
}

// parseColumnString parses "table.column AS alias" formats.
// Returns table, name, alias (any can be empty).
func parseColumnString(spec string) (table, name, alias string) {
	if asIdx := strings.Index(strings.ToUpper(spec), " AS "); asIdx > 0 {
		alias = strings.TrimSpace(spec[asIdx+4:])
		spec = strings.TrimSpace(spec[:asIdx])
	}

	if dotIdx := strings.Index(spec, "."); dotIdx > 0 {
		table = spec[:dotIdx]
		name = spec[dotIdx+1:]
	} else {
		name = spec
	}

	return
}
