package engine

import "testing"

func TestEffectPrimitives(t *testing.T) {
	b := mustDiagram(t,
		"....k...",
		"........",
		"........",
		"...p....",
		"....P...",
		"........",
		"........",
		"....K...",
	)
	e4 := Position{X: 4, Y: 4}
	d5 := Position{X: 3, Y: 3}
	a1 := Position{X: 0, Y: 7}
	pawn := b.At(e4)

	t.Run("move captures", func(t *testing.T) {
		got := Move(e4, d5).Apply(b)
		if got.At(d5) != pawn {
			t.Fatalf("d5 = %+v, want %+v", got.At(d5), pawn)
		}
		if _, ok := got.Get(e4); ok {
			t.Fatal("e4 not vacated")
		}
		if b.At(e4) != pawn {
			t.Fatal("Apply modified its input")
		}
	})

	t.Run("move from empty square", func(t *testing.T) {
		if got := Move(a1, d5).Apply(b); got != b {
			t.Fatalf("board changed:\n%s", got)
		}
	})

	t.Run("move off the board", func(t *testing.T) {
		if got := Move(e4, Position{X: 4, Y: 8}).Apply(b); got != b {
			t.Fatalf("board changed:\n%s", got)
		}
		if got := Move(Position{X: -1, Y: 0}, e4).Apply(b); got != b {
			t.Fatalf("board changed:\n%s", got)
		}
	})

	t.Run("remove empty square", func(t *testing.T) {
		if got := Remove(a1).Apply(b); got != b {
			t.Fatal("removing an empty square changed the board")
		}
	})

	t.Run("put replaces", func(t *testing.T) {
		q := Piece{Color: White, Rank: Queen, ID: 99}
		got := Put(d5, q).Apply(b)
		if got.At(d5) != q {
			t.Fatalf("d5 = %+v", got.At(d5))
		}
	})

	t.Run("combine is sequential", func(t *testing.T) {
		got := Combine(Move(e4, Position{X: 4, Y: 3}), Move(Position{X: 4, Y: 3}, Position{X: 4, Y: 2})).Apply(b)
		if got.At(Position{X: 4, Y: 2}) != pawn {
			t.Fatalf("pawn did not reach e6:\n%s", got)
		}
	})

	t.Run("empty combine is identity", func(t *testing.T) {
		if got := Combine().Apply(b); got != b {
			t.Fatal("Combine() changed the board")
		}
		if got := (Effect{}).Apply(b); got != b {
			t.Fatal("zero Effect changed the board")
		}
	})

	t.Run("disjoint removes commute", func(t *testing.T) {
		ab := Combine(Remove(e4), Remove(d5)).Apply(b)
		ba := Combine(Remove(d5), Remove(e4)).Apply(b)
		if ab != ba {
			t.Fatalf("order mattered:\n%s\nvs\n%s", ab, ba)
		}
	})

	t.Run("ids pass through", func(t *testing.T) {
		got := Move(e4, Position{X: 4, Y: 3}).Apply(b)
		if got.At(Position{X: 4, Y: 3}).ID != pawn.ID {
			t.Fatal("piece id changed on move")
		}
	})
}

func TestEffectSquares(t *testing.T) {
	e := Combine(Move(Position{X: 4, Y: 7}, Position{X: 6, Y: 7}), Move(Position{X: 7, Y: 7}, Position{X: 5, Y: 7}))
	s := e.Squares()
	if s.Len() != 4 {
		t.Fatalf("Squares = %v", s.Positions())
	}
	if e.Len() != 2 {
		t.Fatalf("Len = %d", e.Len())
	}
}

func TestScratchRestore(t *testing.T) {
	b := StandardBoard()
	s := borrowScratch(&b)
	defer releaseScratch(s)

	mark := s.checkpoint()
	Combine(Move(Position{X: 4, Y: 6}, Position{X: 4, Y: 4}), Remove(Position{X: 0, Y: 0})).applyTo(s)
	if s.board == b {
		t.Fatal("effect did not touch the scratch board")
	}
	s.restore(mark)
	if s.board != b {
		t.Fatalf("restore left:\n%s", s.board)
	}
}
