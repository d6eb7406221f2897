package slidepuzzle

import (
	"fmt"
	"strings"

	"github.com/search-framework/astar/pkg/astar"
)

// Puzzle is puzzle 132 from Professor Layton and the Curious Village:
// a 5x4 sliding-block board with 11 pieces. The goal is to bring the
// 2x2 piece to the target position, one cell per move.

const (
	boardWidth  = 5
	boardHeight = 4
	numPieces   = 11
	targetPiece = 1
	targetX     = 3
	targetY     = 1
	blank       = 0xFF
)

type position struct{ x, y uint8 }

type pieceSize struct{ w, h uint8 }

var pieceSizes = [numPieces]pieceSize{
	{2, 1}, {2, 2}, {2, 1}, {1, 1}, {1, 1}, {1, 1}, {1, 1}, {1, 2}, {1, 2}, {1, 1}, {1, 1},
}

type Puzzle struct {
	board     [boardWidth * boardHeight]uint8
	positions [numPieces]position
	cost      uint64
}

// New returns the puzzle in its published starting layout.
func New() Puzzle {
	return Puzzle{
		board: [boardWidth * boardHeight]uint8{
			0, 0, 3, 7, 9,
			1, 1, 4, 7, blank,
			1, 1, 5, 8, blank,
			2, 2, 6, 8, 10,
		},
		positions: [numPieces]position{
			{0, 0}, {0, 1}, {0, 3}, {2, 0}, {2, 1}, {2, 2}, {2, 3}, {3, 0}, {3, 2}, {4, 0}, {4, 3},
		},
	}
}

type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "right"
	}
}

// Move slides one piece a single cell in one direction.
type Move struct {
	Piece     uint8
	Direction Direction
}

func (m Move) String() string {
	return fmt.Sprintf("piece %d %s", m.Piece, m.Direction)
}

func cellIndex(x, y int) int { return y*boardWidth + x }

// CanApply reports whether the piece can slide one cell in the move's
// direction without leaving the board or overlapping another piece.
func (p Puzzle) CanApply(m Move) bool {
	pos := p.positions[m.Piece]
	size := pieceSizes[m.Piece]
	switch m.Direction {
	case Up:
		if pos.y == 0 {
			return false
		}
		for dx := 0; dx < int(size.w); dx++ {
			if p.board[cellIndex(int(pos.x)+dx, int(pos.y)-1)] != blank {
				return false
			}
		}
	case Down:
		if int(pos.y)+int(size.h) >= boardHeight {
			return false
		}
		for dx := 0; dx < int(size.w); dx++ {
			if p.board[cellIndex(int(pos.x)+dx, int(pos.y)+int(size.h))] != blank {
				return false
			}
		}
	case Left:
		if pos.x == 0 {
			return false
		}
		for dy := 0; dy < int(size.h); dy++ {
			if p.board[cellIndex(int(pos.x)-1, int(pos.y)+dy)] != blank {
				return false
			}
		}
	case Right:
		if int(pos.x)+int(size.w) >= boardWidth {
			return false
		}
		for dy := 0; dy < int(size.h); dy++ {
			if p.board[cellIndex(int(pos.x)+int(size.w), int(pos.y)+dy)] != blank {
				return false
			}
		}
	}
	return true
}

// Apply returns the board after sliding the piece one cell, at one
// additional unit of cost. The move must be legal.
func (p Puzzle) Apply(m Move) Puzzle {
	pos := p.positions[m.Piece]
	size := pieceSizes[m.Piece]
	for dy := 0; dy < int(size.h); dy++ {
		for dx := 0; dx < int(size.w); dx++ {
			p.board[cellIndex(int(pos.x)+dx, int(pos.y)+dy)] = blank
		}
	}
	switch m.Direction {
	case Up:
		pos.y--
	case Down:
		pos.y++
	case Left:
		pos.x--
	case Right:
		pos.x++
	}
	for dy := 0; dy < int(size.h); dy++ {
		for dx := 0; dx < int(size.w); dx++ {
			p.board[cellIndex(int(pos.x)+dx, int(pos.y)+dy)] = m.Piece
		}
	}
	p.positions[m.Piece] = pos
	p.cost++
	return p
}

// Key collapses boards that look alike: pieces of equal size sitting in
// equal positions are interchangeable, so the key records dispositions
// (position and size) in board scan order rather than piece identities.
// It is a comparable value type, cloned on every visited-set operation.
type Key struct {
	dispositions [numPieces]disposition
}

type disposition struct {
	pos  position
	size pieceSize
}

func (p Puzzle) Key() Key {
	var key Key
	var seen [numPieces]bool
	i := 0
	for cell, piece := range p.board {
		if piece == blank || seen[piece] {
			continue
		}
		seen[piece] = true
		key.dispositions[i] = disposition{
			pos:  position{uint8(cell % boardWidth), uint8(cell / boardWidth)},
			size: pieceSizes[piece],
		}
		i++
	}
	return key
}

func (p Puzzle) G() uint64 { return p.cost }

func (p Puzzle) H() uint64 {
	pos := p.positions[targetPiece]
	dx := int(pos.x) - targetX
	if dx < 0 {
		dx = -dx
	}
	dy := int(pos.y) - targetY
	if dy < 0 {
		dy = -dy
	}
	return uint64(dx + dy)
}

func (p Puzzle) F() uint64 { return p.G() + p.H() }

func (p Puzzle) IsGoal() bool {
	return p.positions[targetPiece] == position{x: targetX, y: targetY}
}

func (p Puzzle) TracedSuccessors() []astar.TracedSuccessor[Puzzle, Move] {
	var out []astar.TracedSuccessor[Puzzle, Move]
	for piece := uint8(0); piece < numPieces; piece++ {
		for _, d := range []Direction{Up, Down, Left, Right} {
			m := Move{Piece: piece, Direction: d}
			if p.CanApply(m) {
				out = append(out, astar.TracedSuccessor[Puzzle, Move]{State: p.Apply(m), Change: m})
			}
		}
	}
	return out
}

func (p Puzzle) Successors() []Puzzle {
	traced := p.TracedSuccessors()
	out := make([]Puzzle, 0, len(traced))
	for _, t := range traced {
		out = append(out, t.State)
	}
	return out
}

func (p Puzzle) String() string {
	var b strings.Builder
	for y := 0; y < boardHeight; y++ {
		for x := 0; x < boardWidth; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			cell := p.board[cellIndex(x, y)]
			if cell == blank {
				b.WriteString(" .")
			} else {
				fmt.Fprintf(&b, "%2d", cell)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
