package ast

type NodeType int

const (
	NodeField NodeType = iota
	NodeColumn
	NodeSelect
	NodeValue
	NodeParam
	NodeFunction
	NodeGroupedExpr
	NodeBinaryExpr
)

// Precedence classes a renderer uses to decide parenthesization.
// Higher binds tighter.
type Precedence int

const (
	PrecedenceUnknown Precedence = iota
	PrecedenceLogicalOr
	PrecedenceLogicalAnd
	PrecedenceComparison
	PrecedenceAdditive
	PrecedenceMultiplicative
	PrecedenceUnary
	PrecedencePrimary
)

// Comparer is the caller-supplied veto consulted by Equals. Even when
// a node's structural rules pass, the comparer gets the final word,
// which lets a plan cache compare parameter placeholders by instance
// while everything else compares by shape.
type Comparer func(a, b Expression) bool

// DefaultComparer approves every pair, leaving the structural rules
// fully in charge of the verdict.
func DefaultComparer(a, b Expression) bool { return true }

// ShouldClone decides whether Clone copies a node or reuses it by
// reference. A nil predicate clones everything.
type ShouldClone func(Expression) bool

// IdentityMap maps an original node to its clone for the duration of
// one clone pass. The expression graph is a DAG, and the map is what
// keeps shared sub-nodes shared in the copy. It must not outlive or be
// reused across passes. Passing nil to Clone allocates a fresh map for
// that pass; share one explicit map to keep sharing across separate
// Clone calls.
type IdentityMap map[Expression]Expression

// Rewrite transforms a node during Walk. Returning the input unchanged
// makes the walk a no-op.
type Rewrite func(Expression) Expression

// WalkOptions controls Walk traversal.
type WalkOptions struct {
	// SkipColumns leaves a column's wrapped column untouched, so
	// indirection chains survive the rewrite.
	SkipColumns bool
	// ProcessParent also pushes a column's owning query through the
	// rewrite function.
	ProcessParent bool
}

// Expression is the capability set every node in the graph implements.
// Graphs are built and mutated by a single query-construction pass at
// a time; treat a finished graph as immutable before sharing it across
// goroutines.
type Expression interface {
	Type() NodeType

	// Equals reports structural equality under the supplied comparer.
	Equals(other Expression, cmp Comparer) bool

	// Clone deep-copies the node, threading ids through the whole pass
	// so nodes reached via multiple paths are cloned exactly once.
	Clone(ids IdentityMap, should ShouldClone) Expression

	// Walk rewrites the graph bottom-up: children first, then the node
	// itself through fn.
	Walk(opts WalkOptions, fn Rewrite) Expression

	Nullable() bool
	Precedence() Precedence
	Fingerprint() uint64
	String() string
}
