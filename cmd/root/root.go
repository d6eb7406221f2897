package root

import (
	"github.com/spf13/cobra"

	"github.com/search-framework/astar/cmd/gridpath"

	"github.com/search-framework/astar/cmd/slidepuzzle"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "astar",
		Short: "astar is a generic best-first search engine",
		Long: `A generic best-first (A*) search engine written in Go.
The subcommands solve example puzzles by implementing the engine's
state contracts and feeding them to the traced or untraced solver.`,
	}

	// add sub-commands
	rootCmd.AddCommand(slidepuzzle.NewSlidePuzzleCommand())
	rootCmd.AddCommand(gridpath.NewGridPathCommand())

	return rootCmd
}
