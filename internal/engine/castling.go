package engine

import "strings"

// CastlingRights records which king/rook pairs have never moved.
type CastlingRights uint8

const (
	WhiteKingSide CastlingRights = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
)

func castlingRight(c Color, kingSide bool) CastlingRights {
	switch {
	case c == White && kingSide:
		return WhiteKingSide
	case c == White:
		return WhiteQueenSide
	case kingSide:
		return BlackKingSide
	default:
		return BlackQueenSide
	}
}

func (r CastlingRights) Has(c Color, kingSide bool) bool {
	return r&castlingRight(c, kingSide) != 0
}

// without drops every right whose king or rook home square is touched.
// A move from a home square means that piece moved; a move onto one
// means the piece there was captured.
func (r CastlingRights) without(touched SquareSet) CastlingRights {
	for _, c := range []Color{White, Black} {
		if touched.Has(kingHome(c)) {
			r &^= castlingRight(c, true) | castlingRight(c, false)
		}
		for _, side := range castleSides {
			if touched.Has(Position{X: side.rookX, Y: c.homeRow()}) {
				r &^= castlingRight(c, side.kingSide)
			}
		}
	}
	return r
}

// inferCastling grants every right whose king and rook stand on their
// home squares.
func inferCastling(b *Board) CastlingRights {
	var r CastlingRights
	for _, c := range []Color{White, Black} {
		if !b.At(kingHome(c)).is(c, King) {
			continue
		}
		for _, side := range castleSides {
			if b.At(Position{X: side.rookX, Y: c.homeRow()}).is(c, Rook) {
				r |= castlingRight(c, side.kingSide)
			}
		}
	}
	return r
}

// String uses the FEN letters, "-" when no right is left.
func (r CastlingRights) String() string {
	var sb strings.Builder
	for _, f := range []struct {
		right  CastlingRights
		letter byte
	}{
		{WhiteKingSide, 'K'}, {WhiteQueenSide, 'Q'}, {BlackKingSide, 'k'}, {BlackQueenSide, 'q'},
	} {
		if r&f.right != 0 {
			sb.WriteByte(f.letter)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
