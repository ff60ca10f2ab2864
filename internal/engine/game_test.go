package engine

import (
	"errors"
	"sync"
	"testing"
)

func TestNewGame(t *testing.T) {
	g := NewGame()
	if g.NextStep() != MovePiece(White, false) {
		t.Fatalf("NextStep = %v", g.NextStep())
	}
	if _, _, ok := g.Previous(); ok {
		t.Fatal("initial game has a previous game")
	}
	if g.Castling() != AllCastling {
		t.Fatalf("Castling = %v", g.Castling())
	}
}

func TestCastleKingSide(t *testing.T) {
	g := mustGame(t, White,
		"k.......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"....K..R",
	)
	king := Position{X: 4, Y: 7}
	castle := MoveAction(king, Delta{DX: 2})
	if !hasAction(g.Actions(king), castle) {
		t.Fatalf("castle missing from %v", g.Actions(king))
	}
	next := g.Apply(castle)
	if next == g {
		t.Fatal("castle rejected")
	}
	b := next.Board()
	if !b.At(Position{X: 6, Y: 7}).is(White, King) {
		t.Fatalf("king not on g1:\n%s", b)
	}
	if !b.At(Position{X: 5, Y: 7}).is(White, Rook) {
		t.Fatalf("rook not on f1:\n%s", b)
	}
	for _, x := range []int{4, 7} {
		if _, ok := b.Get(Position{X: x, Y: 7}); ok {
			t.Fatalf("square %v not vacated", Position{X: x, Y: 7})
		}
	}
	if next.Castling().Has(White, true) || next.Castling().Has(White, false) {
		t.Fatalf("white keeps castling rights %v", next.Castling())
	}
}

func TestCastleQueenSide(t *testing.T) {
	g := mustGame(t, Black,
		"r...k...",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"....K...",
	)
	next := g.Apply(MoveAction(Position{X: 4, Y: 0}, Delta{DX: -2}))
	b := next.Board()
	if !b.At(Position{X: 2, Y: 0}).is(Black, King) || !b.At(Position{X: 3, Y: 0}).is(Black, Rook) {
		t.Fatalf("queen-side castle left:\n%s", b)
	}
}

func TestCastlingRightsLostAfterRookMoves(t *testing.T) {
	g := mustGame(t, White,
		"....k...",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"R...K..R",
	)
	g = g.Apply(MoveAction(Position{X: 7, Y: 7}, North))
	g = g.Apply(MoveAction(Position{X: 4, Y: 0}, South))
	g = g.Apply(MoveAction(Position{X: 7, Y: 6}, South))
	g = g.Apply(MoveAction(Position{X: 4, Y: 1}, North))
	if g.Ply() != 4 {
		t.Fatalf("ply = %d, some move was rejected", g.Ply())
	}
	king := Position{X: 4, Y: 7}
	actions := g.Actions(king)
	if hasAction(actions, MoveAction(king, Delta{DX: 2})) {
		t.Fatal("king-side castle after the rook moved")
	}
	if !hasAction(actions, MoveAction(king, Delta{DX: -2})) {
		t.Fatal("queen-side castle lost")
	}
}

func TestEnPassant(t *testing.T) {
	g := mustGame(t, Black,
		"....k...",
		".p......",
		"........",
		"P.......",
		"........",
		"........",
		"........",
		"....K...",
	)
	white := Position{X: 0, Y: 3}
	black := Position{X: 1, Y: 1}
	capture := MoveAction(white, Delta{DX: 1, DY: -1})

	g = g.Apply(MoveAction(black, Delta{DY: 2}))
	if g.Ply() != 1 {
		t.Fatal("double step rejected")
	}
	if target, ok := g.EnPassantTarget(); !ok || target != (Position{X: 1, Y: 2}) {
		t.Fatalf("EnPassantTarget = %v, %v", target, ok)
	}
	if !hasAction(g.Actions(white), capture) {
		t.Fatalf("en passant missing from %v", g.Actions(white))
	}
	effect, ok := g.Effect(capture)
	if !ok || effect.Squares().Len() != 3 {
		t.Fatalf("en passant effect touches %v", effect.Squares().Positions())
	}

	pawn := g.board.At(white)
	taken := g.Apply(capture)
	b := taken.Board()
	if b.At(Position{X: 1, Y: 2}) != pawn {
		t.Fatalf("white pawn not on b6:\n%s", b)
	}
	if _, ok := b.Get(Position{X: 1, Y: 3}); ok {
		t.Fatalf("black pawn not removed:\n%s", b)
	}
	if _, ok := b.Get(white); ok {
		t.Fatalf("a5 not vacated:\n%s", b)
	}

	later := g.Apply(MoveAction(Position{X: 4, Y: 7}, North))
	later = later.Apply(MoveAction(Position{X: 4, Y: 0}, South))
	if later.Ply() != 3 {
		t.Fatal("interposed king moves rejected")
	}
	if hasAction(later.Actions(white), capture) {
		t.Fatal("en passant still available after an interposed move")
	}
}

func TestCheckmate(t *testing.T) {
	g := mustGame(t, Black,
		"R..k...K",
		"R.......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	if g.NextStep() != Checkmate(White) {
		t.Fatalf("NextStep = %v, want %v", g.NextStep(), Checkmate(White))
	}
	if len(g.LegalActions()) != 0 {
		t.Fatal("checkmated side has actions")
	}
}

func TestFoolsMate(t *testing.T) {
	g := NewGame()
	for _, a := range []Action{
		MoveAction(Position{X: 5, Y: 6}, North),
		MoveAction(Position{X: 4, Y: 1}, South.Mul(2)),
		MoveAction(Position{X: 6, Y: 6}, North.Mul(2)),
		MoveAction(Position{X: 3, Y: 0}, SouthEast.Mul(4)),
	} {
		next := g.Apply(a)
		if next == g {
			t.Fatalf("%v rejected at ply %d", a, g.Ply())
		}
		g = next
	}
	if g.NextStep() != Checkmate(Black) {
		t.Fatalf("NextStep = %v", g.NextStep())
	}
}

func TestStalemate(t *testing.T) {
	g := mustGame(t, Black,
		".k......",
		".P......",
		".K......",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	if g.NextStep() != Stalemate() {
		t.Fatalf("NextStep = %v, want stalemate", g.NextStep())
	}
}

func TestPromotion(t *testing.T) {
	g := mustGame(t, White,
		"..r....k",
		"...P....",
		"........",
		"........",
		"........",
		"........",
		"........",
		"....K...",
	)
	from := Position{X: 3, Y: 1}
	actions := g.Actions(from)
	if len(actions) != 8 {
		t.Fatalf("got %d actions, want 4 pushes and 4 captures: %v", len(actions), actions)
	}
	for _, a := range actions {
		if a.Kind != ActionPromote {
			t.Fatalf("plain move %v onto the last row", a)
		}
	}
	for _, r := range PromotionRanks {
		if !hasAction(actions, PromoteAction(from, North, r)) {
			t.Fatalf("missing promotion to %s", r)
		}
	}

	pawn := g.board.At(from)
	next := g.Apply(PromoteAction(from, North, Knight))
	got := next.board.At(Position{X: 3, Y: 0})
	if !got.is(White, Knight) || got.ID != pawn.ID {
		t.Fatalf("promoted piece = %+v", got)
	}
	if g.Apply(MoveAction(from, North)) != g {
		t.Fatal("plain move onto the last row accepted")
	}
}

func TestApplyRejectsIllegal(t *testing.T) {
	g := NewGame()
	for _, a := range []Action{
		MoveAction(Position{X: 4, Y: 6}, North.Mul(3)),
		MoveAction(Position{X: 4, Y: 1}, South),
		MoveAction(Position{X: 4, Y: 4}, North),
		MoveAction(Position{X: 0, Y: 7}, North),
		PromoteAction(Position{X: 4, Y: 6}, North, Queen),
	} {
		if got := g.Apply(a); got != g {
			t.Fatalf("%v accepted", a)
		}
	}
}

func TestNewGameFromBoardRejectsCapturableKing(t *testing.T) {
	rows := []string{
		"....k...",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"...KR...",
	}
	tests := []struct {
		name string
		turn Color
		err  error
	}{
		// White to move could take the black king on e8.
		{name: "white to move", turn: White, err: ErrIllegalPosition},
		{name: "black to move in check", turn: Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGameFromBoard(mustDiagram(t, rows...), tt.turn)
			if !errors.Is(err, tt.err) {
				t.Fatalf("NewGameFromBoard error = %v, want %v", err, tt.err)
			}
			if tt.err != nil {
				return
			}
			if g.NextStep() != MovePiece(Black, true) {
				t.Fatalf("NextStep = %v", g.NextStep())
			}
			for _, a := range g.LegalActions() {
				b := g.Apply(a).Board()
				if b.Count(White, King) != 1 || b.Count(Black, King) != 1 {
					t.Fatalf("%v leaves\n%s", a, b)
				}
			}
		})
	}
}

func TestHistoryChain(t *testing.T) {
	start := NewGame()
	e4 := MoveAction(Position{X: 4, Y: 6}, North.Mul(2))
	e5 := MoveAction(Position{X: 4, Y: 1}, South.Mul(2))
	g := start.Apply(e4).Apply(e5)

	prev, a, ok := g.Previous()
	if !ok || a != e5 {
		t.Fatalf("last action = %v", a)
	}
	first, a, ok := prev.Previous()
	if !ok || a != e4 || first != start {
		t.Fatal("history does not lead back to the start")
	}
	if start.Board() != StandardBoard() {
		t.Fatal("applying actions changed an earlier board")
	}
}

func TestConcurrentReads(t *testing.T) {
	g := NewGame().Apply(MoveAction(Position{X: 4, Y: 6}, North.Mul(2)))
	want := len(g.LegalActions())

	var wg sync.WaitGroup
	errs := make(chan int, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if n := len(g.LegalActions()); n != want {
				errs <- n
			}
		}()
	}
	wg.Wait()
	close(errs)
	for n := range errs {
		t.Fatalf("concurrent LegalActions = %d, want %d", n, want)
	}
}
