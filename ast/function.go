package ast

import (
	"hash/fnv"
	"strings"

	"github.com/sqlgraph/sqlgraph/utils"
)

// Function is a function call over zero or more argument expressions.
type Function struct {
	Name string
	Args []Expression
}

func NewFunction(name string, args ...Expression) *Function {
	return &Function{Name: name, Args: args}
}

func (f *Function) Type() NodeType { return NodeFunction }

func (f *Function) Equals(other Expression, cmp Comparer) bool {
	o, ok := other.(*Function)
	if !ok {
		return false
	}
	if o == f {
		return true
	}
	if f.Name != o.Name || len(f.Args) != len(o.Args) {
		return false
	}
	for i, arg := range f.Args {
		if !arg.Equals(o.Args[i], cmp) {
			return false
		}
	}
	return cmp(f, o)
}

func (f *Function) Clone(ids IdentityMap, should ShouldClone) Expression {
	if should != nil && !should(f) {
		return f
	}
	if ids == nil {
		ids = make(IdentityMap)
	}
	if clone, ok := ids[f]; ok {
		return clone
	}
	clone := &Function{Name: f.Name, Args: make([]Expression, len(f.Args))}
	ids[f] = clone
	for i, arg := range f.Args {
		clone.Args[i] = arg.Clone(ids, should)
	}
	return clone
}

func (f *Function) Walk(opts WalkOptions, fn Rewrite) Expression {
	for i, arg := range f.Args {
		f.Args[i] = arg.Walk(opts, fn)
	}
	return fn(f)
}

func (f *Function) Nullable() bool {
	for _, arg := range f.Args {
		if arg.Nullable() {
			return true
		}
	}
	return false
}

func (f *Function) Precedence() Precedence { return PrecedencePrimary }

func (f *Function) Fingerprint() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("func:" + f.Name))
	for _, arg := range f.Args {
		_, _ = h.Write(utils.U64ToBytes(arg.Fingerprint()))
	}
	return h.Sum64()
}

func (f *Function) String() string {
	args := make([]string, len(f.Args))
	for i, arg := range f.Args {
		args[i] = arg.String()
	}
	return f.Name + "(" + strings.Join(args, ", ") + ")"
}
