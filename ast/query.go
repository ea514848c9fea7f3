package ast

import (
	"crypto/rand"
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/sqlgraph/sqlgraph/utils"
)

type SetOperatorKind int

const (
	SetOpUnion SetOperatorKind = iota
	SetOpUnionAll
	SetOpExcept
	SetOpIntersect
)

func (k SetOperatorKind) String() string {
	switch k {
	case SetOpUnion:
		return "UNION"
	case SetOpUnionAll:
		return "UNION ALL"
	case SetOpExcept:
		return "EXCEPT"
	case SetOpIntersect:
		return "INTERSECT"
	}
	return "UNKNOWN"
}

// SetOperator composes another query positionally onto its owner.
type SetOperator struct {
	Kind  SetOperatorKind
	Query *SelectQuery
}

var queryEntropy = ulid.Monotonic(rand.Reader, 0)

func newQueryID() ulid.ULID {
	return ulid.MustNew(ulid.Timestamp(time.Now()), queryEntropy)
}

// SelectQuery is the projection owner the column contract consumes: a
// stable identity token, an ordered column list, and the set operators
// that splice other queries onto it positionally. Columns hold
// non-owning back-references to it; the query owns the columns.
type SelectQuery struct {
	id          ulid.ULID
	fingerprint uint64
	columns     []*Column
	operators   []*SetOperator
}

func NewSelectQuery() *SelectQuery {
	id := newQueryID()
	return &SelectQuery{
		id:          id,
		fingerprint: utils.FingerprintString("select:" + id.String()),
	}
}

// ID is the query's stable identity token, used for diagnostic
// rendering and as its hash identity.
func (q *SelectQuery) ID() ulid.ULID { return q.id }

func (q *SelectQuery) Columns() []*Column { return q.columns }

func (q *SelectQuery) Column(i int) *Column { return q.columns[i] }

// IndexOf returns the positional slot of col, or -1.
func (q *SelectQuery) IndexOf(col *Column) int {
	for i, c := range q.columns {
		if c == col {
			return i
		}
	}
	return -1
}

// Select projects expr into the select list and returns the new
// column, already bound to this query.
func (q *SelectQuery) Select(expr Expression) (*Column, error) {
	return q.SelectAs(expr, "")
}

// SelectAs projects expr under an explicit alias.
func (q *SelectQuery) SelectAs(expr Expression, alias string) (*Column, error) {
	col, err := NewColumn(q, expr, alias)
	if err != nil {
		return nil, err
	}
	q.columns = append(q.columns, col)
	return col, nil
}

// AddSetOperator splices other onto this query. A non-empty operator
// list disables expression-structural equality shortcuts for the
// columns of both operands; their slots are positional.
func (q *SelectQuery) AddSetOperator(kind SetOperatorKind, other *SelectQuery) {
	q.operators = append(q.operators, &SetOperator{Kind: kind, Query: other})
}

func (q *SelectQuery) SetOperators() []*SetOperator { return q.operators }

func (q *SelectQuery) HasSetOperators() bool { return len(q.operators) > 0 }

func (q *SelectQuery) Type() NodeType { return NodeSelect }

// Equals for queries is reference identity: two query instances are
// never value-equal, whatever their shape.
func (q *SelectQuery) Equals(other Expression, _ Comparer) bool {
	o, ok := other.(*SelectQuery)
	return ok && o == q
}

// Clone registers itself in ids before touching its columns, so a
// column cloning its parent mid-pass finds the query clone instead of
// recursing forever. Clones get a fresh identity token: they are new
// queries, not aliases of the old one.
func (q *SelectQuery) Clone(ids IdentityMap, should ShouldClone) Expression {
	if should != nil && !should(q) {
		return q
	}
	if ids == nil {
		ids = make(IdentityMap)
	}
	if clone, ok := ids[q]; ok {
		return clone
	}
	clone := NewSelectQuery()
	ids[q] = clone
	for _, col := range q.columns {
		clone.columns = append(clone.columns, col.Clone(ids, should).(*Column))
	}
	for _, op := range q.operators {
		clone.operators = append(clone.operators, &SetOperator{
			Kind:  op.Kind,
			Query: op.Query.Clone(ids, should).(*SelectQuery),
		})
	}
	return clone
}

// Walk rewrites each projection slot and set operand, then the query
// itself. A rewrite handing back a non-column for a projection slot
// (or a non-query for an operand or, via Column.Walk, a parent) is a
// producer bug and panics on the type assertion.
func (q *SelectQuery) Walk(opts WalkOptions, fn Rewrite) Expression {
	for i, col := range q.columns {
		q.columns[i] = col.Walk(opts, fn).(*Column)
	}
	for _, op := range q.operators {
		op.Query = op.Query.Walk(opts, fn).(*SelectQuery)
	}
	return fn(q)
}

// Nullable: a single-column query is as nullable as that column; any
// wider shape is treated as nullable when used as a scalar expression.
func (q *SelectQuery) Nullable() bool {
	if len(q.columns) == 1 {
		return q.columns[0].Nullable()
	}
	return true
}

func (q *SelectQuery) Precedence() Precedence { return PrecedenceUnknown }

// Fingerprint is derived from the identity token alone. Recursing into
// columns would cycle through their parent back-references; identity
// hashing is also what keeps column hashes stable while the projection
// list grows.
func (q *SelectQuery) Fingerprint() uint64 { return q.fingerprint }

func (q *SelectQuery) String() string {
	var sb strings.Builder
	sb.WriteString("q")
	sb.WriteString(q.id.String())
	sb.WriteString("(")
	for i, col := range q.columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		if alias, ok := col.Alias(); ok {
			sb.WriteString(alias)
		} else {
			sb.WriteString("c")
			sb.WriteString(strconv.Itoa(i + 1))
		}
	}
	sb.WriteString(")")
	return sb.String()
}
