package ast

import (
	"errors"
	"strconv"

	"github.com/sqlgraph/sqlgraph/utils"
)

// Wildcard is the alias marker for a project-everything column.
const Wildcard = "*"

var ErrNilExpression = errors.New("ast: column requires an expression")

// Column is one projection slot of a select query: a wrapped
// expression plus an optional explicit alias. The wrapped expression
// may itself be a Column, forming an indirection chain that layered
// sub-query generation produces.
//
// parent is a non-owning back-reference used only for equality scoping
// and alias lookup. The fingerprint and the underlying-column terminal
// are memoized and invalidated when expression or parent is reassigned
// to a different reference. Indirection chains are acyclic by
// construction; the producer owns that invariant.
type Column struct {
	parent   *SelectQuery
	expr     Expression
	rawAlias string

	underlying  *Column
	fingerprint uint64
	hashed      bool
}

// NewColumn wraps expr as a projection of parent. Parent and alias are
// optional; the expression is not.
func NewColumn(parent *SelectQuery, expr Expression, alias string) (*Column, error) {
	if expr == nil {
		return nil, ErrNilExpression
	}
	return &Column{parent: parent, expr: expr, rawAlias: alias}, nil
}

func (c *Column) Parent() *SelectQuery { return c.parent }

// SetParent rebinds the owning query. Assigning the same reference is
// a no-op; a different one invalidates the memoized fingerprint.
func (c *Column) SetParent(q *SelectQuery) {
	if q == c.parent {
		return
	}
	c.parent = q
	c.hashed = false
}

func (c *Column) Expression() Expression { return c.expr }

// SetExpression replaces the wrapped expression, which must not be
// nil. Assigning the same reference is a no-op; a different one
// invalidates the memoized fingerprint and underlying-column terminal.
func (c *Column) SetExpression(e Expression) {
	if e == c.expr {
		return
	}
	c.expr = e
	c.underlying = nil
	c.hashed = false
}

func (c *Column) RawAlias() string { return c.rawAlias }

func (c *Column) SetRawAlias(alias string) { c.rawAlias = alias }

// Alias resolves the projection's display name: the explicit raw alias
// first, then a wrapped field's alias or physical name, then a wrapped
// column's alias one hop at a time (so intermediate explicit aliases
// win over the compressed terminal), then the alias of a wrapped
// single-column subquery unless that alias is the wildcard marker.
// ok=false means the caller synthesizes a positional default. The rule
// is re-derived on every call: it depends on mutable state of nested
// nodes the column does not own.
func (c *Column) Alias() (alias string, ok bool) {
	if c.rawAlias != "" {
		return c.rawAlias, true
	}
	switch e := c.expr.(type) {
	case *Field:
		if e.Alias != "" {
			return e.Alias, true
		}
		return e.Name, true
	case *Column:
		return e.Alias()
	case *SelectQuery:
		if len(e.columns) == 1 {
			if alias, ok := e.columns[0].Alias(); ok && alias != Wildcard {
				return alias, true
			}
		}
	}
	return "", false
}

// UnderlyingColumn resolves the canonical terminal of the
// column-wraps-column chain, or nil when the wrapped expression is not
// a column. The walk stops early at any node whose terminal is already
// memoized, and on the way out every visited node gets the terminal
// stamped into its cache. The path compression is what keeps equality
// checks on deeply aliased projections O(1) amortized instead of
// O(chain length) per call.
func (c *Column) UnderlyingColumn() *Column {
	if c.underlying != nil {
		return c.underlying
	}

	var chain []*Column
	col, ok := c.expr.(*Column)
	for ok {
		if col.underlying != nil {
			chain = append(chain, col.underlying)
			break
		}
		chain = append(chain, col)
		col, ok = col.expr.(*Column)
	}

	if len(chain) == 0 {
		return nil
	}

	terminal := chain[len(chain)-1]
	c.underlying = terminal
	for _, visited := range chain[:len(chain)-1] {
		visited.underlying = terminal
	}
	return terminal
}

// Equal reports value equality: the parents must match and either the
// direct expressions compare equal or both columns compress to equal
// underlying columns. Two columns reaching one canonical expression
// through different alias wrappers therefore compare equal.
func (c *Column) Equal(other *Column) bool {
	if c == other {
		return true
	}
	if other == nil {
		return false
	}
	if c.parent != other.parent {
		return false
	}
	if c.expr.Equals(other.expr, DefaultComparer) {
		return true
	}
	cu, ou := c.UnderlyingColumn(), other.UnderlyingColumn()
	return cu != nil && ou != nil && cu.Equal(ou)
}

func (c *Column) Type() NodeType { return NodeColumn }

// Equals is the deep form used by expression-tree comparison. Identity
// short-circuits; otherwise both sides must be columns of the same
// parent instance. Under a set operation the columns are positional
// slots whose expressions may legitimately differ, so the verdict
// belongs to the comparer alone; otherwise the wrapped expressions
// must match and the comparer still holds veto power.
func (c *Column) Equals(other Expression, cmp Comparer) bool {
	o, ok := other.(*Column)
	if !ok {
		return false
	}
	if o == c {
		return true
	}
	if c.parent != o.parent {
		return false
	}
	if c.parent != nil && c.parent.HasSetOperators() {
		return cmp(c, o)
	}
	return c.expr.Equals(o.expr, cmp) && cmp(c, o)
}

// Fingerprint is memoized: parent hash (0 when detached) mixed with
// the expression hash and, when an underlying column exists, with its
// hash as well.
func (c *Column) Fingerprint() uint64 {
	if c.hashed {
		return c.fingerprint
	}
	var h uint64
	if c.parent != nil {
		h = c.parent.Fingerprint()
	}
	h = utils.MixHash(h, c.expr.Fingerprint())
	if u := c.UnderlyingColumn(); u != nil {
		h = utils.MixHash(h, u.Fingerprint())
	}
	c.fingerprint = h
	c.hashed = true
	return h
}

// Clone deep-copies the column. The parent is cloned first: doing so
// usually registers this column's clone in ids (the parent clones its
// projection list), and the lookup below then returns that clone
// instead of minting a second one.
func (c *Column) Clone(ids IdentityMap, should ShouldClone) Expression {
	if should != nil && !should(c) {
		return c
	}
	if ids == nil {
		ids = make(IdentityMap)
	}
	var parent *SelectQuery
	if c.parent != nil {
		parent = c.parent.Clone(ids, should).(*SelectQuery)
	}
	if clone, ok := ids[c]; ok {
		return clone
	}
	clone := &Column{parent: parent, expr: c.expr.Clone(ids, should), rawAlias: c.rawAlias}
	ids[c] = clone
	return clone
}

// Walk rewrites bottom-up: the wrapped expression first (unless it is
// a column and opts.SkipColumns is set), then optionally the parent
// through fn, then the column itself.
func (c *Column) Walk(opts WalkOptions, fn Rewrite) Expression {
	if _, isColumn := c.expr.(*Column); !isColumn || !opts.SkipColumns {
		c.SetExpression(c.expr.Walk(opts, fn))
	}
	if opts.ProcessParent && c.parent != nil {
		c.SetParent(fn(c.parent).(*SelectQuery))
	}
	return fn(c)
}

func (c *Column) Nullable() bool { return c.expr.Nullable() }

func (c *Column) Precedence() Precedence { return PrecedencePrimary }

// String renders a diagnostic label, not a compatibility surface.
func (c *Column) String() string {
	alias, ok := c.Alias()
	if !ok {
		alias = "c?"
		if c.parent != nil {
			if i := c.parent.IndexOf(c); i >= 0 {
				alias = "c" + strconv.Itoa(i+1)
			}
		}
	}
	if c.parent == nil {
		return alias
	}
	return "q" + c.parent.ID().String() + "." + alias
}
