// Package astar defines the contracts between a search problem and the
// best-first search engine, along with the result records the engine
// produces. Problem states implement the capability interfaces below;
// the engine itself lives behind the solver package.
package astar

// State is the base capability every search state must provide. The
// engine never inspects a state beyond these five accessors.
//
// K is the state's deduplication identity: two states with equal keys
// are treated as the same node. Any comparable type works — a value
// type (array, struct) is cloned on every visited-set operation, while
// a shared handle (string, pointer) costs a pointer copy; the engine
// works identically with either.
//
// Costs are unsigned. F is the frontier ordering key; the engine does
// not compute it from G and H and does not enforce F == G+H — it only
// guarantees that lower F is explored first.
type State[K comparable] interface {
	// Key returns the value that uniquely identifies this state among
	// all states of a single search.
	Key() K
	// G returns the cost accumulated from the initial state.
	G() uint64
	// H returns the heuristic estimate of the remaining cost to a goal.
	H() uint64
	// F returns the total estimated cost used to order the frontier.
	F() uint64
	// IsGoal reports whether this state satisfies the goal condition.
	// It is evaluated when a state is popped from the frontier, not
	// when it is pushed.
	IsGoal() bool
}

// UntracedState is a State that can enumerate its successors. Each
// returned successor must carry its own updated G, H and F; the engine
// performs no cost validation. An empty slice marks a dead end.
type UntracedState[S any, K comparable] interface {
	State[K]
	// Successors returns the states reachable in one transition.
	Successors() []S
}

// TracedState is a State that enumerates its successors together with
// the change that produced each of them, so the engine can report the
// full transition sequence from the initial state to the goal.
type TracedState[S any, K comparable, C any] interface {
	State[K]
	// TracedSuccessors returns the states reachable in one transition,
	// each paired with the change describing that transition.
	TracedSuccessors() []TracedSuccessor[S, C]
}

// TracedSuccessor pairs a successor state with the change that
// produced it from its predecessor.
type TracedSuccessor[S any, C any] struct {
	State  S
	Change C
}

// Result is returned by the untraced solver when a goal is found.
type Result[S any] struct {
	// Iterations is the number of frontier pops performed, including
	// pops discarded because their key was already expanded.
	Iterations int
	// FinalState is the goal state that terminated the search.
	FinalState S
}

// TracedResult is returned by the traced solver when a goal is found.
type TracedResult[S any, C any] struct {
	Iterations int
	// Path is the ordered sequence of changes leading from the initial
	// state to FinalState. It is empty when the initial state is
	// itself a goal.
	Path       []C
	FinalState S
}
