package search

import (
	"slices"

	"github.com/search-framework/astar/pkg/astar"
)

// tracedNode wraps a caller state with the back-link needed for path
// reconstruction: the predecessor's key and the change that connects
// them. The initial state has no back-link (hasPrev is false).
type tracedNode[S astar.TracedState[S, K, C], K comparable, C any] struct {
	state   S
	prevKey K
	change  C
	hasPrev bool
}

func (n *tracedNode[S, K, C]) Key() K { return n.state.Key() }
func (n *tracedNode[S, K, C]) G() uint64 { return n.state.G() }
func (n *tracedNode[S, K, C]) H() uint64 { return n.state.H() }
func (n *tracedNode[S, K, C]) F() uint64 { return n.state.F() }
func (n *tracedNode[S, K, C]) IsGoal() bool { return n.state.IsGoal() }

func (n *tracedNode[S, K, C]) successors() []*tracedNode[S, K, C] {
	traced := n.state.TracedSuccessors()
	nodes := make([]*tracedNode[S, K, C], 0, len(traced))
	for _, t := range traced {
		nodes = append(nodes, &tracedNode[S, K, C]{
			state:   t.State,
			prevKey: n.state.Key(),
			change:  t.Change,
			hasPrev: true,
		})
	}
	return nodes
}

// Traced runs best-first search from initial and, on success, returns
// the goal state, the frontier-pop count, and the ordered sequence of
// changes from initial to goal. ok is false when the frontier is
// exhausted without reaching a goal.
func Traced[S astar.TracedState[S, K, C], K comparable, C any](initial S) (astar.TracedResult[S, C], bool) {
	open := newOpenList[K, *tracedNode[S, K, C]]()
	closed := make(map[K]*tracedNode[S, K, C])
	iterations := 0

	open.Insert(initial.Key(), &tracedNode[S, K, C]{state: initial})

	for {
		current, ok := open.ExtractMin()
		if !ok {
			return astar.TracedResult[S, C]{}, false
		}
		iterations++

		if current.IsGoal() {
			return astar.TracedResult[S, C]{
				Iterations: iterations,
				Path:       reconstructPath(closed, current),
				FinalState: current.state,
			}, true
		}

		key := current.Key()
		if _, seen := closed[key]; seen {
			continue
		}
		closed[key] = current

		for _, successor := range current.successors() {
			k := successor.Key()
			if _, seen := closed[k]; seen {
				continue
			}
			open.Insert(k, successor)
		}
	}
}

// reconstructPath walks the back-link chain from the goal to the
// initial state through the closed table and reverses the collected
// changes. Storing one back-link per expanded key keeps this linear in
// path length instead of copying a growing path onto every frontier
// entry.
func reconstructPath[S astar.TracedState[S, K, C], K comparable, C any](closed map[K]*tracedNode[S, K, C], goal *tracedNode[S, K, C]) []C {
	var path []C
	for node := goal; node.hasPrev; {
		path = append(path, node.change)
		prev, ok := closed[node.prevKey]
		if !ok {
			break
		}
		node = prev
	}
	slices.Reverse(path)
	return path
}
