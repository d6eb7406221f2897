// Package solver is the public entry point to the best-first search
// engine. Callers implement the contracts in pkg/astar and pick one of
// the two entry points below; the engine runs single-threaded and to
// completion, holding no state across calls, so concurrent callers may
// run independent searches without coordination.
package solver

import (
	"github.com/search-framework/astar/internal/search"
	"github.com/search-framework/astar/pkg/astar"
)

// Solve searches from initial until a goal state is popped from the
// frontier or the frontier is exhausted. It returns the goal state and
// the number of expansion iterations performed, with ok=false as the
// explicit not-found outcome.
//
// Type parameters are the state type and its key type, e.g.
//
//	result, ok := solver.Solve[Board, BoardKey](start)
func Solve[S astar.UntracedState[S, K], K comparable](initial S) (astar.Result[S], bool) {
	return search.Untraced[S, K](initial)
}

// SolveTraced behaves like Solve and additionally reports the ordered
// sequence of changes that leads from initial to the goal state.
//
// Type parameters are the state type, its key type and its change
// type, e.g.
//
//	result, ok := solver.SolveTraced[Board, BoardKey, Move](start)
func SolveTraced[S astar.TracedState[S, K, C], K comparable, C any](initial S) (astar.TracedResult[S, C], bool) {
	return search.Traced[S, K, C](initial)
}
