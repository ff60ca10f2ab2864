package model

import (
	"fmt"

	"github.com/benbeisheim/chessrules-backend/internal/engine"
)

// WSMove is a move as the client submits it: squares, plus the piece to
// promote to when a pawn reaches the last row.
type WSMove struct {
	From      engine.Position `json:"from"`
	To        engine.Position `json:"to"`
	Promotion PieceType       `json:"promotion"`
}

func (m WSMove) action() (engine.Action, error) {
	d := m.To.Sub(m.From)
	if m.Promotion == "" {
		return engine.MoveAction(m.From, d), nil
	}
	r, ok := engine.ParseRank(string(m.Promotion))
	if !ok {
		return engine.Action{}, fmt.Errorf("%w: unknown promotion %q", ErrIllegalMove, m.Promotion)
	}
	return engine.PromoteAction(m.From, d, r), nil
}

type CastleRookMove struct {
	From engine.Position `json:"from"`
	To   engine.Position `json:"to"`
}

// Ply is one side's half of a move as rendered in the move list.
type Ply struct {
	Piece          PieceView       `json:"piece"`
	From           engine.Position `json:"from"`
	To             engine.Position `json:"to"`
	CapturedPiece  *PieceView      `json:"capturedPiece"`
	CastleRookMove *CastleRookMove `json:"castleRookMove"`
	Promotion      PieceType       `json:"promotion"`
	Notation       string          `json:"notation"`
}

// Move pairs White's ply with Black's reply. Either may be missing: the
// last move of a game in progress, or a game that started with Black.
type Move struct {
	WhitePly *Ply `json:"whitePly"`
	BlackPly *Ply `json:"blackPly"`
}

type SimpleMove struct {
	From engine.Position `json:"from"`
	To   engine.Position `json:"to"`
}

// LegalMove is a destination the selected piece may move to. A pawn
// reaching the last row lists the ranks it may promote to.
type LegalMove struct {
	From       engine.Position `json:"from"`
	To         engine.Position `json:"to"`
	Promotions []PieceType     `json:"promotions,omitempty"`
}

func legalMoves(actions []engine.Action) []LegalMove {
	out := make([]LegalMove, 0, len(actions))
	index := map[engine.Position]int{}
	for _, a := range actions {
		to := a.To()
		i, seen := index[to]
		if !seen {
			i = len(out)
			index[to] = i
			out = append(out, LegalMove{From: a.From, To: to})
		}
		if a.Kind == engine.ActionPromote {
			out[i].Promotions = append(out[i].Promotions, PieceType(a.Promotion.String()))
		}
	}
	return out
}
