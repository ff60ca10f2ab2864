package engine

var kingStep = slider{dirs: allDirs, radius: 1}

type kingRules struct{}

func (kingRules) attacks(b *Board, c Color, from Position) SquareSet {
	return kingStep.attacks(b, c, from)
}

func (k kingRules) candidates(g *Game, c Color, from Position) []candidate {
	out := movesOnto(from, k.attacks(&g.board, c, from))
	return append(out, castles(g, c, from)...)
}

// castleSide describes one castling move from the king's home square.
type castleSide struct {
	kingSide bool
	dir      Delta
	rookX    int
}

var castleSides = []castleSide{
	{kingSide: true, dir: East, rookX: Size - 1},
	{kingSide: false, dir: West, rookX: 0},
}

// kingHome is the square a king must stand on to castle.
func kingHome(c Color) Position {
	return Position{X: 4, Y: c.homeRow()}
}

// castles lists the castling moves available to the king on from. The
// king must not be in check and must not cross an attacked square;
// landing in check is left to the legality filter.
func castles(g *Game, c Color, from Position) []candidate {
	home := kingHome(c)
	if from != home || !g.board.At(home).is(c, King) {
		return nil
	}
	var (
		out      []candidate
		attacked SquareSet
		computed bool
	)
	for _, side := range castleSides {
		if !g.castling.Has(c, side.kingSide) {
			continue
		}
		rookFrom := Position{X: side.rookX, Y: home.Y}
		if !g.board.At(rookFrom).is(c, Rook) {
			continue
		}
		if !pathClear(&g.board, home, rookFrom, side.dir) {
			continue
		}
		if !computed {
			attacked = AttackedSquares(&g.board, c.Other())
			computed = true
		}
		rookTo := home.Add(side.dir)
		if attacked.Has(home) || attacked.Has(rookTo) {
			continue
		}
		kingTo := home.Add(side.dir.Mul(2))
		out = append(out, candidate{
			action: MoveAction(home, side.dir.Mul(2)),
			effect: Combine(Move(home, kingTo), Move(rookFrom, rookTo)),
		})
	}
	return out
}

// pathClear reports whether every square strictly between from and to
// along dir is empty.
func pathClear(b *Board, from, to Position, dir Delta) bool {
	for pos := from.Add(dir); pos != to; pos = pos.Add(dir) {
		if !pos.InBounds() {
			return false
		}
		if _, ok := b.Get(pos); ok {
			return false
		}
	}
	return true
}
