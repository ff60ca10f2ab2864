package engine

import "fmt"

type StepKind uint8

const (
	StepMovePiece StepKind = iota + 1
	StepCheckmate
	StepStalemate
)

// NextStep is the verdict for a position: whose move it is, or how the
// game ended. Values compare with ==.
type NextStep struct {
	Kind    StepKind
	Turn    Color
	InCheck bool
	Winner  Color
}

func MovePiece(turn Color, inCheck bool) NextStep {
	return NextStep{Kind: StepMovePiece, Turn: turn, InCheck: inCheck}
}

func Checkmate(winner Color) NextStep {
	return NextStep{Kind: StepCheckmate, Winner: winner}
}

func Stalemate() NextStep {
	return NextStep{Kind: StepStalemate}
}

// Over reports whether the game has ended.
func (s NextStep) Over() bool {
	return s.Kind == StepCheckmate || s.Kind == StepStalemate
}

func (s NextStep) String() string {
	switch s.Kind {
	case StepMovePiece:
		if s.InCheck {
			return fmt.Sprintf("%s to move, in check", s.Turn)
		}
		return fmt.Sprintf("%s to move", s.Turn)
	case StepCheckmate:
		return fmt.Sprintf("checkmate, %s wins", s.Winner)
	case StepStalemate:
		return "stalemate"
	}
	return "unknown"
}
