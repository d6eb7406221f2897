package slidepuzzle

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/search-framework/astar/pkg/astar/solver"
)

func NewSlidePuzzleCommand() *cobra.Command {
	var untraced bool
	cmd := &cobra.Command{
		Use:   "slidepuzzle",
		Short: "Solves a sliding-block puzzle and prints the move sequence",
		RunE: func(cmd *cobra.Command, args []string) error {
			if untraced {
				return solveUntraced()
			}
			return solveTraced()
		},
	}
	cmd.Flags().BoolVar(&untraced, "untraced", false, "solve without recording the move sequence")
	return cmd
}

func solveTraced() error {
	start := New()
	fmt.Println("start:")
	fmt.Print(start)

	result, ok := solver.SolveTraced[Puzzle, Key, Move](start)
	if !ok {
		fmt.Println("no solution found")
		return nil
	}

	fmt.Printf("solved in %d moves after %d iterations\n", len(result.Path), result.Iterations)
	for i, m := range result.Path {
		fmt.Printf("%3d. %s\n", i+1, m)
	}
	fmt.Println("final:")
	fmt.Print(result.FinalState)
	return nil
}

func solveUntraced() error {
	result, ok := solver.Solve[Puzzle, Key](New())
	if !ok {
		fmt.Println("no solution found")
		return nil
	}

	fmt.Printf("solved in %d moves after %d iterations\n", result.FinalState.G(), result.Iterations)
	fmt.Println("final:")
	fmt.Print(result.FinalState)
	return nil
}
