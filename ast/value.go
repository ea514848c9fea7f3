package ast

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/sqlgraph/sqlgraph/utils"
)

type ValueType int

const (
	ValueNull ValueType = iota
	ValueBool
	ValueInt
	ValueFloat
	ValueString
	ValueTime
)

// Value is a literal scalar in the graph.
type Value struct {
	Val       any
	ValueType ValueType
}

func NewValue(val any) *Value {
	return &Value{Val: val, ValueType: valueTypeOf(val)}
}

func valueTypeOf(val any) ValueType {
	switch val.(type) {
	case nil:
		return ValueNull
	case bool:
		return ValueBool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return ValueInt
	case float32, float64:
		return ValueFloat
	case string:
		return ValueString
	case time.Time:
		return ValueTime
	}
	return ValueString
}

func (v *Value) Type() NodeType { return NodeValue }

func (v *Value) Equals(other Expression, cmp Comparer) bool {
	o, ok := other.(*Value)
	if !ok {
		return false
	}
	if o == v {
		return true
	}
	return v.ValueType == o.ValueType && sameVal(v.Val, o.Val) && cmp(v, o)
}

// sameVal compares payloads without assuming the dynamic type is
// comparable. Times compare by instant so monotonic-clock residue
// can't make equal instants unequal.
func sameVal(a, b any) bool {
	if at, ok := a.(time.Time); ok {
		bt, ok := b.(time.Time)
		return ok && at.Equal(bt)
	}
	if a == nil || b == nil {
		return a == b
	}
	if reflect.TypeOf(a).Comparable() && reflect.TypeOf(b).Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

func (v *Value) Clone(ids IdentityMap, should ShouldClone) Expression {
	if should != nil && !should(v) {
		return v
	}
	if ids == nil {
		ids = make(IdentityMap)
	}
	if clone, ok := ids[v]; ok {
		return clone
	}
	clone := &Value{Val: v.Val, ValueType: v.ValueType}
	ids[v] = clone
	return clone
}

func (v *Value) Walk(_ WalkOptions, fn Rewrite) Expression { return fn(v) }

func (v *Value) Nullable() bool { return v.ValueType == ValueNull }

func (v *Value) Precedence() Precedence { return PrecedencePrimary }

func (v *Value) Fingerprint() uint64 {
	s := "val:" + strconv.Itoa(int(v.ValueType)) + ":" + fmt.Sprint(v.Val)
	return utils.FingerprintString(s)
}

func (v *Value) String() string { return fmt.Sprint(v.Val) }
