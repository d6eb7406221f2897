// Package search implements the best-first search engine behind the
// public solver facade: the f-ordered frontier, visited-set
// bookkeeping, and the untraced and traced expansion loops.
package search

import (
	"github.com/search-framework/astar/pkg/astar"
)

// Untraced runs best-first search from initial and returns the goal
// state together with the frontier-pop count. ok is false when the
// frontier is exhausted without reaching a goal; that is a normal
// outcome, not an error.
func Untraced[S astar.UntracedState[S, K], K comparable](initial S) (astar.Result[S], bool) {
	open := newOpenList[K, S]()
	closed := make(map[K]struct{})
	iterations := 0

	open.Insert(initial.Key(), initial)

	for {
		current, ok := open.ExtractMin()
		if !ok {
			return astar.Result[S]{}, false
		}
		iterations++

		if current.IsGoal() {
			return astar.Result[S]{Iterations: iterations, FinalState: current}, true
		}

		key := current.Key()
		if _, seen := closed[key]; seen {
			continue
		}
		closed[key] = struct{}{}

		for _, successor := range current.Successors() {
			k := successor.Key()
			if _, seen := closed[k]; seen {
				continue
			}
			open.Insert(k, successor)
		}
	}
}
