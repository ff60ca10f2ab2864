package engine

// attacker marks the squares a piece could capture on, ignoring whose
// turn it is and whether the capture would expose its own king.
type attacker interface {
	attacks(b *Board, c Color, from Position) SquareSet
}

// rankRules is implemented once per rank.
type rankRules interface {
	attacker
	// candidates lists pseudo-legal actions; the legality filter runs
	// afterwards.
	candidates(g *Game, c Color, from Position) []candidate
}

var rankTable = [...]rankRules{
	King:   kingRules{},
	Queen:  byAttacks{slider{dirs: allDirs, radius: Size}},
	Rook:   byAttacks{slider{dirs: orthogonals, radius: Size}},
	Bishop: byAttacks{slider{dirs: diagonals, radius: Size}},
	Knight: byAttacks{jumper{offsets: knightJumps}},
	Pawn:   pawnRules{},
}

func rulesFor(r Rank) rankRules {
	if r == NoRank || int(r) >= len(rankTable) {
		return nil
	}
	return rankTable[r]
}

// byAttacks adapts a rank whose moves are exactly its attacks: every
// attacked square becomes a move or capture onto it.
type byAttacks struct {
	attacker
}

func (r byAttacks) candidates(g *Game, c Color, from Position) []candidate {
	return movesOnto(from, r.attacks(&g.board, c, from))
}

func movesOnto(from Position, targets SquareSet) []candidate {
	out := make([]candidate, 0, targets.Len())
	for _, to := range targets.Positions() {
		out = append(out, candidate{
			action: MoveAction(from, to.Sub(from)),
			effect: Move(from, to),
		})
	}
	return out
}

// slider walks each direction up to radius squares. A ray ends before a
// friendly piece and on an enemy one.
type slider struct {
	dirs   []Delta
	radius int
}

func (s slider) attacks(b *Board, c Color, from Position) SquareSet {
	var out SquareSet
	for _, d := range s.dirs {
		pos := from
		for step := 0; step < s.radius; step++ {
			pos = pos.Add(d)
			if !pos.InBounds() {
				break
			}
			p := b.squares[pos.index()]
			if p.Empty() {
				out = out.Add(pos)
				continue
			}
			if p.Color != c {
				out = out.Add(pos)
			}
			break
		}
	}
	return out
}

// jumper tests each offset once.
type jumper struct {
	offsets []Delta
}

func (j jumper) attacks(b *Board, c Color, from Position) SquareSet {
	var out SquareSet
	for _, d := range j.offsets {
		pos := from.Add(d)
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
