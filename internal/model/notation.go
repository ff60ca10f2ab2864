package model

import (
	"strings"

	"github.com/benbeisheim/chessrules-backend/internal/engine"
)

// notation renders the action that took prev to next in SAN.
func notation(prev *engine.Game, a engine.Action, next *engine.Game) string {
	board := prev.Board()
	piece := board.At(a.From)
	to := a.To()

	var sb strings.Builder
	switch {
	case piece.Rank == engine.King && a.Delta.DX == 2:
		sb.WriteString("O-O")
	case piece.Rank == engine.King && a.Delta.DX == -2:
		sb.WriteString("O-O-O")
	default:
		capture := isCapture(board, piece, a)
		sb.WriteString(piece.Rank.Letter())
		if piece.Rank == engine.Pawn {
			if capture {
				sb.WriteString(a.From.File())
			}
		} else {
			sb.WriteString(disambiguation(prev, piece, a))
		}
		if capture {
			sb.WriteByte('x')
		}
		sb.WriteString(to.String())
		if a.Kind == engine.ActionPromote {
			sb.WriteByte('=')
			sb.WriteString(a.Promotion.Letter())
		}
	}

	switch step := next.NextStep(); {
	case step.Kind == engine.StepCheckmate:
		sb.WriteByte('#')
	case step.InCheck:
		sb.WriteByte('+')
	}
	return sb.String()
}

// isCapture covers en passant, where the landing square is empty.
func isCapture(board engine.Board, piece engine.Piece, a engine.Action) bool {
	if _, ok := board.Get(a.To()); ok {
		return true
	}
	return piece.Rank == engine.Pawn && a.Delta.DX != 0
}

// disambiguation returns the file, rank or full square of the moving
// piece when another piece of the same kind could reach the same
// square.
func disambiguation(prev *engine.Game, piece engine.Piece, a engine.Action) string {
	board := prev.Board()
	to := a.To()
	var rivals []engine.Position
	for pos, p := range board.All() {
		if pos == a.From || !p.Equivalent(piece) {
			continue
		}
		for _, other := range prev.Actions(pos) {
			if other.To() == to {
				rivals = append(rivals, pos)
				break
			}
		}
	}
	if len(rivals) == 0 {
		return ""
	}
	sameFile, sameRank := false, false
	for _, r := range rivals {
		sameFile = sameFile || r.X == a.From.X
		sameRank = sameRank || r.Y == a.From.Y
	}
	switch {
	case !sameFile:
		return a.From.File()
	case !sameRank:
		return a.From.RankDigit()
	default:
		return a.From.String()
	}
}
