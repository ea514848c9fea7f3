package cache

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/sqlgraph/sqlgraph/ast"
	"github.com/sqlgraph/sqlgraph/utils"
)

// CachedPlan is the renderer-produced payload stored against an
// expression fingerprint. This package never renders SQL itself.
type CachedPlan struct {
	SQL       string
	ArgsOrder []string
}

// PlanCache is a fingerprint-keyed LRU of rendered plans. Unlike the
// expression graph it is safe for concurrent use; the LRU locks
// internally.
type PlanCache struct {
	lru *lru.Cache[uint64, *CachedPlan]
}

func NewPlanCache(size int) (*PlanCache, error) {
	c, err := lru.New[uint64, *CachedPlan](size)
	if err != nil {
		return nil, fmt.Errorf("plan cache: %w", err)
	}
	return &PlanCache{lru: c}, nil
}

func (c *PlanCache) Get(key uint64) (*CachedPlan, bool) {
	return c.lru.Get(key)
}

func (c *PlanCache) Put(key uint64, plan *CachedPlan) {
	c.lru.Add(key, plan)
}

func (c *PlanCache) Len() int { return c.lru.Len() }

// Key folds node fingerprints into one cache key. Memoized column
// fingerprints make repeated key derivation over a stable graph cheap.
func Key(exprs ...ast.Expression) uint64 {
	h := utils.FingerprintString("plan:")
	for _, e := range exprs {
		h = utils.Mix64(h, e.Fingerprint())
	}
	return h
}
