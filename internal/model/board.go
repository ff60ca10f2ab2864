package model

import "github.com/benbeisheim/chessrules-backend/internal/engine"

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

// PieceView is a piece as the client sees it. ID stays with the piece
// from move to move so the client can animate it.
type PieceView struct {
	ID       engine.PieceID  `json:"id"`
	Type     PieceType       `json:"type"`
	Color    string          `json:"color"`
	Position engine.Position `json:"position"`
}

func newPieceView(pos engine.Position, p engine.Piece) PieceView {
	return PieceView{
		ID:       p.ID,
		Type:     PieceType(p.Rank.String()),
		Color:    p.Color.String(),
		Position: pos,
	}
}

type BoardState struct {
	Board             [][]*PieceView  `json:"board"`
	BlackKingPosition engine.Position `json:"blackKingPosition"`
	WhiteKingPosition engine.Position `json:"whiteKingPosition"`
}

// newBoardState lays the board out row by row, Board[y][x].
func newBoardState(b engine.Board) *BoardState {
	state := &BoardState{Board: make([][]*PieceView, engine.Size)}
	for y := range state.Board {
		state.Board[y] = make([]*PieceView, engine.Size)
	}
	for pos, p := range b.All() {
		view := newPieceView(pos, p)
		state.Board[pos.Y][pos.X] = &view
		if p.Rank == engine.King {
			if p.Color == engine.White {
				state.WhiteKingPosition = pos
			} else {
				state.BlackKingPosition = pos
			}
		}
	}
	return state
}
