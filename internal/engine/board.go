package engine

import (
	"fmt"
	"iter"
)

// Board is an 8x8 grid of optional pieces. It is a value: copying a
// Board copies every square, and Set returns a new Board.
type Board struct {
	squares [Size * Size]Piece
}

// Get returns the piece on pos. Empty and off-board squares report false.
func (b *Board) Get(pos Position) (Piece, bool) {
	if !pos.InBounds() {
		return Piece{}, false
	}
	p := b.squares[pos.index()]
	return p, !p.Empty()
}

// At is Get without the flag; the zero Piece means empty.
func (b *Board) At(pos Position) Piece {
	p, _ := b.Get(pos)
	return p
}

// Set returns a copy of b with pos holding p. Passing the zero Piece
// clears the square. Off-board positions are ignored.
func (b Board) Set(pos Position, p Piece) Board {
	b.put(pos, p)
	return b
}

// Clear returns a copy of b with pos emptied.
func (b Board) Clear(pos Position) Board {
	return b.Set(pos, Piece{})
}

func (b *Board) put(pos Position, p Piece) {
	if !pos.InBounds() {
		return
	}
	b.squares[pos.index()] = p
}

// All yields every occupied square, row by row from a8 to h1.
func (b *Board) All() iter.Seq2[Position, Piece] {
	return func(yield func(Position, Piece) bool) {
		for idx, p := range b.squares {
			if p.Empty() {
				continue
			}
			if !yield(positionAt(idx), p) {
				return
			}
		}
	}
}

// Count returns how many pieces match color and rank.
func (b *Board) Count(c Color, r Rank) int {
	n := 0
	for _, p := range b.All() {
		if p.is(c, r) {
			n++
		}
	}
	return n
}

// Validate checks the structural invariant the rules depend on.
func (b *Board) Validate() error {
	for _, c := range []Color{White, Black} {
		if n := b.Count(c, King); n != 1 {
			return fmt.Errorf("%w: %s has %d", ErrKingCount, c, n)
		}
	}
	return nil
}

// king locates c's king. It panics unless c has exactly one.
func (b *Board) king(c Color) Position {
	found := -1
	for idx, p := range b.squares {
		if !p.is(c, King) {
			continue
		}
		if found >= 0 {
			panic(fmt.Sprintf("engine: %s has more than one king", c))
		}
		found = idx
	}
	if found < 0 {
		panic(fmt.Sprintf("engine: %s has no king", c))
	}
	return positionAt(found)
}

var backRank = [Size]Rank{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// StandardBoard returns the initial chess position. Piece ids are
// 1..16 for Black and 17..32 for White.
func StandardBoard() Board {
	var b Board
	id := PieceID(1)
	for _, c := range []Color{Black, White} {
		for x, r := range backRank {
			b.put(Position{X: x, Y: c.homeRow()}, Piece{Color: c, Rank: r, ID: id})
			id++
		}
		for x := 0; x < Size; x++ {
			b.put(Position{X: x, Y: c.pawnRow()}, Piece{Color: c, Rank: Pawn, ID: id})
			id++
		}
	}
	return b
}
