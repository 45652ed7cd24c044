package engine

import (
	"sort"

	"github.com/ashenfell/brawlarc/core"
)

// QueryBuilder finds entities present in every listed store. Results come
// back in ascending slot order, so iteration — and therefore combat and
// ability outcomes — is reproducible given identical inputs.
type QueryBuilder struct {
	stores   []QueryableStore
	executed bool
	results  []core.Entity
}

// Query starts a new entity query.
//
// Example:
//
//	entities := w.Query().
//	    With(w.Components.Transforms).
//	    With(w.Components.Healths).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		stores: make([]QueryableStore, 0, 4),
	}
}

// With adds a component store to the query filter.
// Panics if called after Execute().
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Execute runs the query. The smallest store seeds the candidate set to
// minimize Has checks; the final result is slot-sorted. Repeat calls return
// the cached result.
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = make([]core.Entity, 0)
		return qb.results
	}

	if len(qb.stores) == 1 {
		qb.results = qb.stores[0].All()
		return qb.results
	}

	sort.Slice(qb.stores, func(i, j int) bool {
		return qb.stores[i].Count() < qb.stores[j].Count()
	})

	candidates := qb.stores[0].All()

	for i := 1; i < len(qb.stores); i++ {
		store := qb.stores[i]
		filtered := candidates[:0]
		for _, e := range candidates {
			if store.Has(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered

		if len(candidates) == 0 {
			break
		}
	}

	// Seed store order may differ between runs with equal counts; re-sort
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Slot() < candidates[j].Slot()
	})

	qb.results = candidates
	return qb.results
}
