package search

import (
	"github.com/search-framework/astar/pkg/astar"
)

// lineState walks the integer line toward goal with unit-cost ±1 moves
// and h = |goal - pos|. The key is the position itself, a plain value
// key. Implements both the untraced and traced contracts; changes are
// the signed step taken.
type lineState struct {
	pos  int
	goal int
	cost uint64
}

func (s lineState) Key() int { return s.pos }
func (s lineState) G() uint64 { return s.cost }

func (s lineState) H() uint64 {
	d := s.goal - s.pos
	if d < 0 {
		d = -d
	}
	return uint64(d)
}

func (s lineState) F() uint64 { return s.G() + s.H() }
func (s lineState) IsGoal() bool { return s.pos == s.goal }

func (s lineState) Successors() []lineState {
	return []lineState{
		{pos: s.pos + 1, goal: s.goal, cost: s.cost + 1},
		{pos: s.pos - 1, goal: s.goal, cost: s.cost + 1},
	}
}

func (s lineState) TracedSuccessors() []astar.TracedSuccessor[lineState, int] {
	return []astar.TracedSuccessor[lineState, int]{
		{State: lineState{pos: s.pos + 1, goal: s.goal, cost: s.cost + 1}, Change: +1},
		{State: lineState{pos: s.pos - 1, goal: s.goal, cost: s.cost + 1}, Change: -1},
	}
}

// testGraph is an explicit finite state graph with per-node heuristic
// values, so tests can shape f-ordering (including deliberately
// inconsistent heuristics) and observe expansion counts. String keys
// double as the shared-handle key strategy.
type testGraph struct {
	edges    map[string][]graphEdge
	h        map[string]uint64
	goal     string
	expanded map[string]int
}

type graphEdge struct {
	to     string
	cost   uint64
	change string
}

func newTestGraph(goal string, h map[string]uint64) *testGraph {
	return &testGraph{
		edges:    map[string][]graphEdge{},
		h:        h,
		goal:     goal,
		expanded: map[string]int{},
	}
}

func (g *testGraph) edge(from, to string, cost uint64) {
	g.edges[from] = append(g.edges[from], graphEdge{to: to, cost: cost, change: from + "->" + to})
}

func (g *testGraph) start(id string) graphState {
	return graphState{graph: g, id: id}
}

type graphState struct {
	graph *testGraph
	id    string
	cost  uint64
}

func (s graphState) Key() string { return s.id }
func (s graphState) G() uint64 { return s.cost }
func (s graphState) H() uint64 { return s.graph.h[s.id] }
func (s graphState) F() uint64 { return s.G() + s.H() }
func (s graphState) IsGoal() bool { return s.id == s.graph.goal }

func (s graphState) Successors() []graphState {
	s.graph.expanded[s.id]++
	out := make([]graphState, 0, len(s.graph.edges[s.id]))
	for _, e := range s.graph.edges[s.id] {
		out = append(out, graphState{graph: s.graph, id: e.to, cost: s.cost + e.cost})
	}
	return out
}

func (s graphState) TracedSuccessors() []astar.TracedSuccessor[graphState, string] {
	s.graph.expanded[s.id]++
	out := make([]astar.TracedSuccessor[graphState, string], 0, len(s.graph.edges[s.id]))
	for _, e := range s.graph.edges[s.id] {
		out = append(out, astar.TracedSuccessor[graphState, string]{
			State:  graphState{graph: s.graph, id: e.to, cost: s.cost + e.cost},
			Change: e.change,
		})
	}
	return out
}
