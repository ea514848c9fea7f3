package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectQueryProjection(t *testing.T) {
	q := NewSelectQuery()

	id, err := q.Select(NewField("users", "id"))
	require.NoError(t, err)
	email, err := q.SelectAs(NewField("users", "email"), "contact")
	require.NoError(t, err)

	assert.Same(t, q, id.Parent())
	assert.Same(t, q, email.Parent())
	assert.Equal(t, 0, q.IndexOf(id))
	assert.Equal(t, 1, q.IndexOf(email))
	assert.Len(t, q.Columns(), 2)

	detached := mustColumn(t, q, NewField("users", "age"), "")
	assert.Equal(t, -1, q.IndexOf(detached))

	_, err = q.Select(nil)
	assert.ErrorIs(t, err, ErrNilExpression)
}

func TestSelectQueryIdentity(t *testing.T) {
	q1, q2 := NewSelectQuery(), NewSelectQuery()

	assert.NotEqual(t, q1.ID(), q2.ID())
	assert.Equal(t, q1.Fingerprint(), q1.Fingerprint())
	assert.NotEqual(t, q1.Fingerprint(), q2.Fingerprint())

	assert.True(t, q1.Equals(q1, DefaultComparer))
	assert.False(t, q1.Equals(q2, DefaultComparer))
}

func TestSelectQuerySetOperators(t *testing.T) {
	q := NewSelectQuery()
	assert.False(t, q.HasSetOperators())

	q.AddSetOperator(SetOpUnion, NewSelectQuery())
	require.True(t, q.HasSetOperators())
	assert.Equal(t, "UNION", q.SetOperators()[0].Kind.String())
}

func TestSelectQueryNullable(t *testing.T) {
	q := NewSelectQuery()
	f := NewField("users", "id")
	_, err := q.Select(f)
	require.NoError(t, err)
	assert.False(t, q.Nullable())

	f.IsNullable = true
	assert.True(t, q.Nullable())

	_, err = q.Select(NewField("users", "email"))
	require.NoError(t, err)
	assert.True(t, q.Nullable())
}

func TestDiagnosticRendering(t *testing.T) {
	q := NewSelectQuery()
	col, err := q.SelectAs(NewField("users", "email"), "contact")
	require.NoError(t, err)
	anon, err := q.Select(NewValue(1))
	require.NoError(t, err)

	assert.Contains(t, col.String(), q.ID().String())
	assert.Contains(t, col.String(), "contact")
	assert.Contains(t, anon.String(), "c2")
	assert.Contains(t, q.String(), "contact")
}
