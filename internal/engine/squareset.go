package engine

import "math/bits"

// SquareSet is a set of board squares, one bit per square.
type SquareSet uint64

func (s SquareSet) Has(pos Position) bool {
	if !pos.InBounds() {
		return false
	}
	return s&(1<<pos.index()) != 0
}

func (s SquareSet) Add(pos Position) SquareSet {
	if !pos.InBounds() {
		return s
	}
	return s | 1<<pos.index()
}

func (s SquareSet) Len() int { return bits.OnesCount64(uint64(s)) }

func (s SquareSet) Empty() bool { return s == 0 }

// Positions lists the members in board order.
func (s SquareSet) Positions() []Position {
	out := make([]Position, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		out = append(out, positionAt(bits.TrailingZeros64(rest)))
	}
	return out
}
