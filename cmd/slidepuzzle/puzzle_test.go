package slidepuzzle_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/search-framework/astar/cmd/slidepuzzle"
	"github.com/search-framework/astar/pkg/astar/solver"
)

func TestSlidePuzzle(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "SlidePuzzle Suite")
}

var _ = Describe("Puzzle", func() {
	It("should start away from the goal", func() {
		start := slidepuzzle.New()
		Expect(start.IsGoal()).To(BeFalse())
		Expect(start.G()).To(Equal(uint64(0)))
		Expect(start.H()).To(BeNumerically(">", 0))
	})

	It("should offer only legal opening moves", func() {
		start := slidepuzzle.New()
		successors := start.TracedSuccessors()
		Expect(successors).ToNot(BeEmpty())
		for _, s := range successors {
			Expect(start.CanApply(s.Change)).To(BeTrue())
			Expect(s.State.G()).To(Equal(uint64(1)))
		}
	})

	It("should be solved by the traced solver with a replayable move list", func() {
		start := slidepuzzle.New()
		result, ok := solver.SolveTraced[slidepuzzle.Puzzle, slidepuzzle.Key, slidepuzzle.Move](start)
		Expect(ok).To(BeTrue())
		Expect(result.FinalState.IsGoal()).To(BeTrue())
		Expect(result.Path).ToNot(BeEmpty())

		board := start
		for _, move := range result.Path {
			Expect(board.CanApply(move)).To(BeTrue(), "move %q is illegal during replay", move.String())
			board = board.Apply(move)
		}
		Expect(board.IsGoal()).To(BeTrue())
		Expect(board.Key()).To(Equal(result.FinalState.Key()))
	})

	It("should reach the same board through the untraced solver", func() {
		traced, ok := solver.SolveTraced[slidepuzzle.Puzzle, slidepuzzle.Key, slidepuzzle.Move](slidepuzzle.New())
		Expect(ok).To(BeTrue())

		untraced, ok := solver.Solve[slidepuzzle.Puzzle, slidepuzzle.Key](slidepuzzle.New())
		Expect(ok).To(BeTrue())

		Expect(untraced.FinalState.Key()).To(Equal(traced.FinalState.Key()))
		Expect(untraced.Iterations).To(Equal(traced.Iterations))
	})
})
