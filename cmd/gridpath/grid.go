package gridpath

import (
	"fmt"
	"strings"

	"github.com/search-framework/astar/pkg/astar"
)

// Maze is a rectangular ASCII maze: '#' cells are walls, 'S' marks the
// start, 'G' the goal, anything else is open floor.
type Maze struct {
	rows   []string
	startX int
	startY int
	goalX  int
	goalY  int
}

// Parse reads a maze from its text lines. Exactly one 'S' and one 'G'
// are required, and all rows must have the same width.
func Parse(lines []string) (*Maze, error) {
	m := &Maze{startX: -1, goalX: -1}
	for y, line := range lines {
		if len(m.rows) > 0 && len(line) != len(m.rows[0]) {
			return nil, fmt.Errorf("row %d has width %d, want %d", y, len(line), len(m.rows[0]))
		}
		for x, c := range line {
			switch c {
			case 'S':
				if m.startX >= 0 {
					return nil, fmt.Errorf("maze has more than one start")
				}
				m.startX, m.startY = x, y
			case 'G':
				if m.goalX >= 0 {
					return nil, fmt.Errorf("maze has more than one goal")
				}
				m.goalX, m.goalY = x, y
			}
		}
		m.rows = append(m.rows, line)
	}
	if m.startX < 0 {
		return nil, fmt.Errorf("maze has no start")
	}
	if m.goalX < 0 {
		return nil, fmt.Errorf("maze has no goal")
	}
	return m, nil
}

func (m *Maze) open(x, y int) bool {
	return y >= 0 && y < len(m.rows) && x >= 0 && x < len(m.rows[y]) && m.rows[y][x] != '#'
}

// Start returns the search state at the maze's 'S' cell.
func (m *Maze) Start() Cell {
	return Cell{maze: m, x: m.startX, y: m.startY}
}

// Render draws the maze with the route taken by the given steps marked
// with '*'.
func (m *Maze) Render(steps []Step) string {
	marked := map[[2]int]bool{}
	x, y := m.startX, m.startY
	for _, s := range steps {
		dx, dy := s.delta()
		x, y = x+dx, y+dy
		marked[[2]int{x, y}] = true
	}

	var b strings.Builder
	for y, row := range m.rows {
		for x, c := range row {
			if marked[[2]int{x, y}] && c != 'G' {
				b.WriteByte('*')
			} else {
				b.WriteRune(c)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Step is one unit move through the maze.
type Step string

const (
	North Step = "north"
	South Step = "south"
	West  Step = "west"
	East  Step = "east"
)

func (s Step) delta() (int, int) {
	switch s {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 1, 0
	}
}

// Cell is a position within a maze, carrying the cost walked so far.
// Its key is a string: a shared handle that costs a pointer copy per
// visited-set operation rather than a clone of the position data.
type Cell struct {
	maze *Maze
	x, y int
	cost uint64
}

func (c Cell) Key() string { return fmt.Sprintf("%d:%d", c.x, c.y) }
func (c Cell) G() uint64 { return c.cost }

func (c Cell) H() uint64 {
	dx := c.x - c.maze.goalX
	if dx < 0 {
		dx = -dx
	}
	dy := c.y - c.maze.goalY
	if dy < 0 {
		dy = -dy
	}
	return uint64(dx + dy)
}

func (c Cell) F() uint64 { return c.G() + c.H() }

func (c Cell) IsGoal() bool {
	return c.x == c.maze.goalX && c.y == c.maze.goalY
}

func (c Cell) TracedSuccessors() []astar.TracedSuccessor[Cell, Step] {
	var out []astar.TracedSuccessor[Cell, Step]
	for _, step := range []Step{North, South, West, East} {
		dx, dy := step.delta()
		if c.maze.open(c.x+dx, c.y+dy) {
			out = append(out, astar.TracedSuccessor[Cell, Step]{
				State:  Cell{maze: c.maze, x: c.x + dx, y: c.y + dy, cost: c.cost + 1},
				Change: step,
			})
		}
	}
	return out
}
