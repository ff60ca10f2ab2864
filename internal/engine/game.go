package engine

import "fmt"

// Game is one immutable node in a game's history: a board, the side to
// move, the verdict for the position and a link to the position it came
// from. A *Game is never modified after construction, so it may be
// shared freely between goroutines.
type Game struct {
	board    Board
	turn     Color
	next     NextStep
	previous *Game
	action   Action
	ply      int

	castling      CastlingRights
	doubleStep    Position
	hasDoubleStep bool
}

// NewGame returns the standard starting position with White to move.
func NewGame() *Game {
	return newGame(StandardBoard(), White, AllCastling)
}

// NewGameFromBoard starts a game from an arbitrary position. Castling is
// allowed for every king and rook standing on its home square, and no
// en passant capture is available on the first ply. The side not to
// move must not be in check.
func NewGameFromBoard(b Board, turn Color) (*Game, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if InCheck(&b, turn.Other()) {
		return nil, fmt.Errorf("%w: %s king is attacked", ErrIllegalPosition, turn.Other())
	}
	return newGame(b, turn, inferCastling(&b)), nil
}

func newGame(b Board, turn Color, castling CastlingRights) *Game {
	g := &Game{board: b, turn: turn, castling: castling}
	g.next = g.computeNextStep()
	return g
}

// Board returns a copy of the position.
func (g *Game) Board() Board { return g.board }

// Turn is the color to move, even in a finished game.
func (g *Game) Turn() Color { return g.turn }

func (g *Game) NextStep() NextStep { return g.next }

// Ply counts the actions applied since the game started.
func (g *Game) Ply() int { return g.ply }

func (g *Game) Castling() CastlingRights { return g.castling }

// Previous returns the game this one was reached from and the action
// that was applied to it.
func (g *Game) Previous() (*Game, Action, bool) {
	if g.previous == nil {
		return nil, Action{}, false
	}
	return g.previous, g.action, true
}

// EnPassantTarget is the square a pawn would land on when capturing en
// passant, if the last ply was a double step.
func (g *Game) EnPassantTarget() (Position, bool) {
	if !g.hasDoubleStep {
		return Position{}, false
	}
	pawn := g.board.At(g.doubleStep)
	return g.doubleStep.Add(pawn.Color.forward().Neg()), true
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return InCheck(&g.board, g.turn)
}

// Actions returns the legal actions of the piece on pos. Empty squares
// and pieces of the side not to move have none.
func (g *Game) Actions(pos Position) []Action {
	cands := g.candidatesAt(pos)
	out := make([]Action, len(cands))
	for i, c := range cands {
		out[i] = c.action
	}
	return out
}

// LegalActions returns every legal action of the side to move.
func (g *Game) LegalActions() []Action {
	var out []Action
	for pos, p := range g.board.All() {
		if p.Color == g.turn {
			out = append(out, g.Actions(pos)...)
		}
	}
	return out
}

// Effect returns the board change a legal action performs.
func (g *Game) Effect(a Action) (Effect, bool) {
	for _, c := range g.candidatesAt(a.From) {
		if c.action == a {
			return c.effect, true
		}
	}
	return Effect{}, false
}

// Apply plays a and returns the resulting game. An action that is not
// legal here returns g itself, so callers detect rejection by identity.
func (g *Game) Apply(a Action) *Game {
	for _, c := range g.candidatesAt(a.From) {
		if c.action == a {
			return g.advance(c)
		}
	}
	return g
}

func (g *Game) advance(c candidate) *Game {
	mover := g.board.At(c.action.From)
	next := &Game{
		board:    c.effect.Apply(g.board),
		turn:     g.turn.Other(),
		previous: g,
		action:   c.action,
		ply:      g.ply + 1,
		castling: g.castling.without(c.effect.Squares()),
	}
	if mover.Rank == Pawn && abs(c.action.Delta.DY) == 2 {
		next.doubleStep = c.action.To()
		next.hasDoubleStep = true
	}
	next.next = next.computeNextStep()
	return next
}

func (g *Game) candidatesAt(pos Position) []candidate {
	p, ok := g.board.Get(pos)
	if !ok || p.Color != g.turn {
		return nil
	}
	return g.legal(g.turn, rulesFor(p.Rank).candidates(g, g.turn, pos))
}

func (g *Game) computeNextStep() NextStep {
	inCheck := InCheck(&g.board, g.turn)
	for pos, p := range g.board.All() {
		if p.Color == g.turn && len(g.candidatesAt(pos)) > 0 {
			return MovePiece(g.turn, inCheck)
		}
	}
	if inCheck {
		return Checkmate(g.turn.Other())
	}
	return Stalemate()
}

func (g *Game) String() string {
	return fmt.Sprintf("%s%s, castling %s", g.board, g.next, g.castling)
}
