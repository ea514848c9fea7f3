package query

import (
	"strconv"

	"github.com/sqlgraph/sqlgraph/ast"
)

// Builder assembles the projection list of one select query. It owns
// the ast.SelectQuery it grows and is the single construction pass the
// graph's mutation model assumes: don't share a Builder across
// goroutines.
type Builder struct {
	table string
	query *ast.SelectQuery
	err   error
}

// From starts a builder over the table derived from entity, following
// the snake_case plural convention: From("User") selects from "users".
func From(entity string) *Builder {
	return FromTable(TableName(entity))
}

// FromTable starts a builder over an explicit table name.
func FromTable(table string) *Builder {
	return &Builder{table: table, query: ast.NewSelectQuery()}
}

// Query exposes the underlying select query for the optimizer and
// renderer layers.
func (b *Builder) Query() *ast.SelectQuery { return b.query }

func (b *Builder) Table() string { return b.table }

// Err returns the first projection error, if any.
func (b *Builder) Err() error { return b.err }

// Select projects one field per spec. Specs accept the
// "table.column AS alias" format; the builder's table fills in when
// the spec names none.
func (b *Builder) Select(specs ...string) *Builder {
	for _, spec := range specs {
		table, name, alias := parseColumnString(spec)
		if table == "" {
			table = b.table
		}
		f := ast.NewField(table, name)
		f.Alias = alias
		b.project(f, "")
	}
	return b
}

// SelectExpr projects an arbitrary expression under an explicit alias.
// An empty alias leaves naming to resolution or the positional default.
func (b *Builder) SelectExpr(expr ast.Expression, alias string) *Builder {
	b.project(expr, alias)
	return b
}

// SelectSubquery projects another builder's query as a scalar column.
func (b *Builder) SelectSubquery(sub *Builder, alias string) *Builder {
	b.project(sub.query, alias)
	return b
}

func (b *Builder) project(expr ast.Expression, alias string) {
	if _, err := b.query.SelectAs(expr, alias); err != nil && b.err == nil {
		b.err = err
	}
}

// Union splices other's query onto this one positionally.
func (b *Builder) Union(other *Builder) *Builder {
	b.query.AddSetOperator(ast.SetOpUnion, other.query)
	return b
}

func (b *Builder) UnionAll(other *Builder) *Builder {
	b.query.AddSetOperator(ast.SetOpUnionAll, other.query)
	return b
}

// AliasOf returns the resolved alias of the i-th projection, falling
// back to the positional default when resolution reports none.
func (b *Builder) AliasOf(i int) string {
	if alias, ok := b.query.Column(i).Alias(); ok {
		return alias
	}
	return "c" + strconv.Itoa(i+1)
}
