package model

import "github.com/benbeisheim/chessrules-backend/internal/engine"

type CapturedPieces struct {
	White []PieceView `json:"white"`
	Black []PieceView `json:"black"`
}

func newCapturedPieces() CapturedPieces {
	return CapturedPieces{
		White: make([]PieceView, 0),
		Black: make([]PieceView, 0),
	}
}

// history is the move list and material tally of a game, rebuilt by
// walking its chain of previous positions.
type history struct {
	moves    []Move
	captured CapturedPieces
	last     *Ply
}

type step struct {
	prev   *engine.Game
	action engine.Action
	next   *engine.Game
}

// buildHistory replays the chain of g back to its start.
func buildHistory(g *engine.Game) history {
	var steps []step
	for cur := g; ; {
		prev, a, ok := cur.Previous()
		if !ok {
			break
		}
		steps = append(steps, step{prev: prev, action: a, next: cur})
		cur = prev
	}

	h := history{moves: make([]Move, 0, (len(steps)+1)/2), captured: newCapturedPieces()}
	for i := len(steps) - 1; i >= 0; i-- {
		h.add(steps[i])
	}
	return h
}

// add records one ply. Notation is rendered once, here.
func (h *history) add(s step) {
	mover := s.prev.Turn()
	ply := newPly(s)
	if ply.CapturedPiece != nil {
		if mover == engine.White {
			h.captured.White = append(h.captured.White, *ply.CapturedPiece)
		} else {
			h.captured.Black = append(h.captured.Black, *ply.CapturedPiece)
		}
	}
	if mover == engine.White || len(h.moves) == 0 || h.moves[len(h.moves)-1].BlackPly != nil {
		h.moves = append(h.moves, Move{})
	}
	if mover == engine.White {
		h.moves[len(h.moves)-1].WhitePly = ply
	} else {
		h.moves[len(h.moves)-1].BlackPly = ply
	}
	h.last = ply
}

// snapshot copies the move list and captures so a state can be
// marshalled after the session lock is released.
func (h *history) snapshot() ([]Move, CapturedPieces) {
	moves := append(make([]Move, 0, len(h.moves)), h.moves...)
	captured := CapturedPieces{
		White: append(make([]PieceView, 0, len(h.captured.White)), h.captured.White...),
		Black: append(make([]PieceView, 0, len(h.captured.Black)), h.captured.Black...),
	}
	return moves, captured
}

func newPly(s step) *Ply {
	before, after := s.prev.Board(), s.next.Board()
	from, to := s.action.From, s.action.To()
	piece := before.At(from)

	ply := &Ply{
		Piece:    newPieceView(from, piece),
		From:     from,
		To:       to,
		Notation: notation(s.prev, s.action, s.next),
	}
	if s.action.Kind == engine.ActionPromote {
		ply.Promotion = PieceType(s.action.Promotion.String())
	}
	if piece.Rank == engine.King && (s.action.Delta.DX == 2 || s.action.Delta.DX == -2) {
		dir := engine.East
		rookX := engine.Size - 1
		if s.action.Delta.DX < 0 {
			dir, rookX = engine.West, 0
		}
		ply.CastleRookMove = &CastleRookMove{
			From: engine.Position{X: rookX, Y: from.Y},
			To:   from.Add(dir),
		}
	}
	if pos, victim, ok := vanished(before, after, piece.Color.Other()); ok {
		view := newPieceView(pos, victim)
		ply.CapturedPiece = &view
	}
	return ply
}

// vanished finds a piece of color c that is on before but, going by its
// id, nowhere on after.
func vanished(before, after engine.Board, c engine.Color) (engine.Position, engine.Piece, bool) {
	present := map[engine.PieceID]bool{}
	for _, p := range after.All() {
		present[p.ID] = true
	}
	for pos, p := range before.All() {
		if p.Color == c && !present[p.ID] {
			return pos, p, true
		}
	}
	return engine.Position{}, engine.Piece{}, false
}
