package engine

// Color is the side a piece belongs to.
type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// forward is the direction pawns of this color advance in.
func (c Color) forward() Delta {
	if c == White {
		return North
	}
	return South
}

// homeRow is the row this color's pieces start on.
func (c Color) homeRow() int {
	if c == White {
		return Size - 1
	}
	return 0
}

func (c Color) pawnRow() int {
	if c == White {
		return Size - 2
	}
	return 1
}

// promotionRow is the opponent's home row.
func (c Color) promotionRow() int {
	return c.Other().homeRow()
}

// Rank is a piece's type. The zero value is not a rank, which lets the
// zero Piece stand for an empty square.
type Rank uint8

const (
	NoRank Rank = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// PromotionRanks lists the ranks a pawn may promote to, in the order
// their actions are generated.
var PromotionRanks = []Rank{Queen, Rook, Bishop, Knight}

func (r Rank) String() string {
	switch r {
	case King:
		return "king"
	case Queen:
		return "queen"
	case Rook:
		return "rook"
	case Bishop:
		return "bishop"
	case Knight:
		return "knight"
	case Pawn:
		return "pawn"
	}
	return ""
}

// Letter is the SAN piece letter; pawns have none.
func (r Rank) Letter() string {
	switch r {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	}
	return ""
}

// ParseRank is the inverse of Rank.String.
func ParseRank(s string) (Rank, bool) {
	for r := King; r <= Pawn; r++ {
		if r.String() == s {
			return r, true
		}
	}
	return NoRank, false
}

// PieceID lets a presentation layer follow a piece across moves. Rules
// never look at it.
type PieceID uint16

type Piece struct {
	Color Color   `json:"color"`
	Rank  Rank    `json:"rank"`
	ID    PieceID `json:"id"`
}

// Empty reports whether p is the zero Piece, i.e. no piece.
func (p Piece) Empty() bool {
	return p.Rank == NoRank
}

// Equivalent compares color and rank only.
func (p Piece) Equivalent(o Piece) bool {
	return p.Color == o.Color && p.Rank == o.Rank
}

func (p Piece) is(c Color, r Rank) bool {
	return !p.Empty() && p.Color == c && p.Rank == r
}
