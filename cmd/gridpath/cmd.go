package gridpath

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/search-framework/astar/pkg/astar/solver"
)

var defaultMaze = []string{
	"#############",
	"#S...#......#",
	"#.##.#.####.#",
	"#.#..#....#.#",
	"#.#.####.##.#",
	"#...#....#..#",
	"###...####.##",
	"#...#......G#",
	"#############",
}

func NewGridPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "gridpath [maze-file]",
		Short: "Finds a shortest route through an ASCII maze",
		Long: `Finds a shortest route through an ASCII maze ('#' walls, 'S' start,
'G' goal) and prints it. Reads the maze from the given file, or solves
a built-in maze when no file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := defaultMaze
			if len(args) == 1 {
				data, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				lines = strings.Split(strings.TrimRight(string(data), "\n"), "\n")
			}
			return solve(lines)
		},
	}
}

func solve(lines []string) error {
	maze, err := Parse(lines)
	if err != nil {
		return err
	}

	result, ok := solver.SolveTraced[Cell, string, Step](maze.Start())
	if !ok {
		fmt.Println("no route found")
		return nil
	}

	fmt.Printf("route of %d steps after %d iterations\n", len(result.Path), result.Iterations)
	fmt.Print(maze.Render(result.Path))
	return nil
}
