package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlgraph/sqlgraph/ast"
)

func TestTableNaming(t *testing.T) {
	tests := []struct {
		entity string
		table  string
	}{
		{"User", "users"},
		{"BlogPost", "blog_posts"},
		{"Person", "people"},
		{"order_item", "order_items"},
	}

	for _, tt := range tests {
		t.Run(tt.entity, func(t *testing.T) {
			assert.Equal(t, tt.table, TableName(tt.entity))
		})
	}
}

func TestBuilderSelect(t *testing.T) {
	b := From("User").Select("first_name", "accounts.balance AS funds")
	require.NoError(t, b.Err())

	q := b.Query()
	require.Len(t, q.Columns(), 2)

	first := q.Column(0).Expression().(*ast.Field)
	assert.Equal(t, "users", first.Table)
	assert.Equal(t, "first_name", first.Name)

	assert.Equal(t, "first_name", b.AliasOf(0))
	assert.Equal(t, "funds", b.AliasOf(1))
	assert.Same(t, q, q.Column(0).Parent())
}

func TestBuilderPositionalAlias(t *testing.T) {
	b := FromTable("users").SelectExpr(ast.NewValue(1), "")
	require.NoError(t, b.Err())
	assert.Equal(t, "c1", b.AliasOf(0))
}

func TestBuilderSubqueryAliasInheritance(t *testing.T) {
	sub := FromTable("users").SelectExpr(ast.Count(ast.NewField("users", "id")), "total")
	require.NoError(t, sub.Err())

	outer := FromTable("stats").SelectSubquery(sub, "")
	require.NoError(t, outer.Err())

	// A single-column subquery projection inherits the inner alias.
	assert.Equal(t, "total", outer.AliasOf(0))
}

func TestBuilderUnion(t *testing.T) {
	left := FromTable("users").Select("id")
	right := FromTable("archived_users").Select("id")

	left.UnionAll(right)

	require.True(t, left.Query().HasSetOperators())
	assert.Equal(t, ast.SetOpUnionAll, left.Query().SetOperators()[0].Kind)
	assert.Same(t, right.Query(), left.Query().SetOperators()[0].Query)
}

func TestBuilderExpressionError(t *testing.T) {
	b := FromTable("users").SelectExpr(nil, "oops")
	assert.ErrorIs(t, b.Err(), ast.ErrNilExpression)
	assert.Empty(t, b.Query().Columns())
}

func TestColumnBuilder(t *testing.T) {
	f := Col("email").From("users").As("contact").Nullable().Build()

	assert.Equal(t, "users", f.Table)
	assert.Equal(t, "email", f.Name)
	assert.Equal(t, "contact", f.Alias)
	assert.True(t, f.IsNullable)
}

func TestParseColumnString(t *testing.T) {
	tests := []struct {
		spec  string
		table string
		name  string
		alias string
	}{
		{"email", "", "email", ""},
		{"users.email", "users", "email", ""},
		{"users.email AS contact", "users", "email", "contact"},
		{"email as contact", "", "email", "contact"},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			table, name, alias := parseColumnString(tt.spec)
			assert.Equal(t, tt.table, table)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.alias, alias)
		})
	}
}
