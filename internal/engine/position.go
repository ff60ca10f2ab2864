package engine

import "fmt"

// Size is the number of files and ranks on the board.
const Size = 8

// Position is a square on the board. X is the file (0 = a), Y the row
// counted from Black's back rank (0 = rank 8, 7 = rank 1).
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Delta is a move vector.
type Delta struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
}

var (
	North     = Delta{DX: 0, DY: -1}
	South     = Delta{DX: 0, DY: 1}
	East      = Delta{DX: 1, DY: 0}
	West      = Delta{DX: -1, DY: 0}
	NorthEast = Delta{DX: 1, DY: -1}
	NorthWest = Delta{DX: -1, DY: -1}
	SouthEast = Delta{DX: 1, DY: 1}
	SouthWest = Delta{DX: -1, DY: 1}
)

var (
	orthogonals = []Delta{North, South, East, West}
	diagonals   = []Delta{NorthEast, NorthWest, SouthEast, SouthWest}
	allDirs     = []Delta{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}
	knightJumps = []Delta{
		{DX: 2, DY: 1}, {DX: 2, DY: -1}, {DX: -2, DY: 1}, {DX: -2, DY: -1},
		{DX: 1, DY: 2}, {DX: 1, DY: -2}, {DX: -1, DY: 2}, {DX: -1, DY: -2},
	}
)

func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}

// Add is unchecked: the result may be off the board.
func (p Position) Add(d Delta) Position {
	return Position{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Sub returns the delta that takes o to p.
func (p Position) Sub(o Position) Delta {
	return Delta{DX: p.X - o.X, DY: p.Y - o.Y}
}

// index is only meaningful for in-bounds positions.
func (p Position) index() int {
	return p.Y*Size + p.X
}

func positionAt(idx int) Position {
	return Position{X: idx % Size, Y: idx / Size}
}

// String renders the square in algebraic notation, e.g. (4,7) is "e1".
func (p Position) String() string {
	if !p.InBounds() {
		return fmt.Sprintf("(%d,%d)", p.X, p.Y)
	}
	return fmt.Sprintf("%c%d", 'a'+p.X, Size-p.Y)
}

// File returns the file letter of the square.
func (p Position) File() string {
	return string(rune('a' + p.X))
}

// RankDigit returns the rank number of the square as printed in notation.
func (p Position) RankDigit() string {
	return fmt.Sprintf("%d", Size-p.Y)
}

// ParsePosition parses algebraic square notation such as "e4".
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("%w: %q", ErrSquare, s)
	}
	p := Position{X: int(s[0] - 'a'), Y: Size - int(s[1]-'0')}
	if !p.InBounds() {
		return Position{}, fmt.Errorf("%w: %q", ErrSquare, s)
	}
	return p, nil
}

func (d Delta) Neg() Delta {
	return Delta{DX: -d.DX, DY: -d.DY}
}

func (d Delta) Mul(k int) Delta {
	return Delta{DX: d.DX * k, DY: d.DY * k}
}

func (d Delta) Add(o Delta) Delta {
	return Delta{DX: d.DX + o.DX, DY: d.DY + o.DY}
}
