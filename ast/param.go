package ast

import (
	"github.com/google/uuid"

	"github.com/sqlgraph/sqlgraph/utils"
)

// Param is a named placeholder. Its fingerprint covers the name only,
// so rebuilding the same query shape yields the same plan cache key,
// while the instance ID lets a comparer distinguish placeholders that
// merely share a name.
type Param struct {
	Name string
	id   uuid.UUID
}

func NewParam(name string) *Param {
	return &Param{Name: name, id: uuid.New()}
}

// InstanceID identifies this placeholder instance across clones of the
// same graph shape.
func (p *Param) InstanceID() uuid.UUID { return p.id }

func (p *Param) Type() NodeType { return NodeParam }

func (p *Param) Equals(other Expression, cmp Comparer) bool {
	o, ok := other.(*Param)
	if !ok {
		return false
	}
	if o == p {
		return true
	}
	return p.Name == o.Name && cmp(p, o)
}

func (p *Param) Clone(ids IdentityMap, should ShouldClone) Expression {
	if should != nil && !should(p) {
		return p
	}
	if ids == nil {
		ids = make(IdentityMap)
	}
	if clone, ok := ids[p]; ok {
		return clone
	}
	clone := &Param{Name: p.Name, id: p.id}
	ids[p] = clone
	return clone
}

func (p *Param) Walk(_ WalkOptions, fn Rewrite) Expression { return fn(p) }

func (p *Param) Nullable() bool { return true }

func (p *Param) Precedence() Precedence { return PrecedencePrimary }

func (p *Param) Fingerprint() uint64 {
	return utils.FingerprintString("param:" + p.Name)
}

func (p *Param) String() string { return ":" + p.Name }
