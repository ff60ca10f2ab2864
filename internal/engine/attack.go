package engine

// AttackedSquares is the union of the attacks of every piece of color
// by. It is pure geometry: turn order and pins are ignored.
func AttackedSquares(b *Board, by Color) SquareSet {
	var out SquareSet
	for idx, p := range b.squares {
		if p.Empty() || p.Color != by {
			continue
		}
		out |= rulesFor(p.Rank).attacks(b, by, positionAt(idx))
	}
	return out
}

// InCheck reports whether c's king is attacked. It panics if c does not
// have exactly one king.
func InCheck(b *Board, c Color) bool {
	return AttackedSquares(b, c.Other()).Has(b.king(c))
}

// legal keeps the candidates that do not leave c's king attacked. Each
// effect is tried on a scratch board and rolled back.
func (g *Game) legal(c Color, cands []candidate) []candidate {
	if len(cands) == 0 {
		return cands
	}
	s := borrowScratch(&g.board)
	defer releaseScratch(s)

	out := cands[:0]
	for _, cand := range cands {
		mark := s.checkpoint()
		cand.effect.applyTo(s)
		if !InCheck(&s.board, c) {
			out = append(out, cand)
		}
		s.restore(mark)
	}
	return out
}
