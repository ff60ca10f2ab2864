package engine

type pawnRules struct{}

func (pawnRules) attacks(b *Board, c Color, from Position) SquareSet {
	var out SquareSet
	fwd := c.forward()
	for _, side := range []Delta{East, West} {
		pos := from.Add(fwd.Add(side))
		if !pos.InBounds() {
			continue
		}
		if p := b.squares[pos.index()]; !p.Empty() && p.Color == c {
			continue
		}
		out = out.Add(pos)
	}
	return out
}

func (pawnRules) candidates(g *Game, c Color, from Position) []candidate {
	pawn := g.board.At(from)
	fwd := c.forward()
	var out []candidate

	one := from.Add(fwd)
	if _, occupied := g.board.Get(one); one.InBounds() && !occupied {
		out = append(out, pawnAdvance(pawn, from, one)...)
		two := one.Add(fwd)
		if _, occupied := g.board.Get(two); from.Y == c.pawnRow() && two.InBounds() && !occupied {
			out = append(out, candidate{
				action: MoveAction(from, fwd.Mul(2)),
				effect: Move(from, two),
			})
		}
	}

	for _, side := range []Delta{West, East} {
		to := from.Add(fwd.Add(side))
		if target, ok := g.board.Get(to); ok && target.Color != c {
			out = append(out, pawnAdvance(pawn, from, to)...)
		}
	}

	if ep, ok := enPassant(g, c, from); ok {
		out = append(out, ep)
	}
	return out
}

// pawnAdvance moves the pawn onto to, expanding into one promotion per
// rank when to is on the far row.
func pawnAdvance(pawn Piece, from, to Position) []candidate {
	d := to.Sub(from)
	if to.Y != pawn.Color.promotionRow() {
		return []candidate{{action: MoveAction(from, d), effect: Move(from, to)}}
	}
	out := make([]candidate, 0, len(PromotionRanks))
	for _, r := range PromotionRanks {
		promoted := Piece{Color: pawn.Color, Rank: r, ID: pawn.ID}
		out = append(out, candidate{
			action: PromoteAction(from, d, r),
			effect: Combine(Remove(from), Put(to, promoted)),
		})
	}
	return out
}

// enPassant captures an enemy pawn that double-stepped on the previous
// ply and now stands directly beside from.
func enPassant(g *Game, c Color, from Position) (candidate, bool) {
	if !g.hasDoubleStep {
		return candidate{}, false
	}
	victim := g.doubleStep
	if victim.Y != from.Y || abs(victim.X-from.X) != 1 {
		return candidate{}, false
	}
	if !g.board.At(victim).is(c.Other(), Pawn) {
		return candidate{}, false
	}
	to := victim.Add(c.forward())
	if _, occupied := g.board.Get(to); !to.InBounds() || occupied {
		return candidate{}, false
	}
	return candidate{
		action: MoveAction(from, to.Sub(from)),
		effect: Combine(Remove(victim), Move(from, to)),
	}, true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
