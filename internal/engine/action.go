package engine

import (
	"fmt"
	"strings"
)

type ActionKind uint8

const (
	ActionMove ActionKind = iota + 1
	ActionPromote
)

// Action is what a player asks for: a piece on From moving by Delta,
// optionally promoting. Extra squares a move touches (the castling
// rook, a pawn taken en passant) live only in the paired Effect.
type Action struct {
	Kind      ActionKind `json:"kind"`
	From      Position   `json:"from"`
	Delta     Delta      `json:"delta"`
	Promotion Rank       `json:"promotion,omitempty"`
}

func MoveAction(from Position, d Delta) Action {
	return Action{Kind: ActionMove, From: from, Delta: d}
}

func PromoteAction(from Position, d Delta, r Rank) Action {
	return Action{Kind: ActionPromote, From: from, Delta: d, Promotion: r}
}

// To is the square the moving piece lands on.
func (a Action) To() Position {
	return a.From.Add(a.Delta)
}

// String renders the action in coordinate notation, e.g. "e2e4" or
// "e7e8q".
func (a Action) String() string {
	if a.Kind == ActionPromote {
		return fmt.Sprintf("%s%s%s", a.From, a.To(), strings.ToLower(a.Promotion.Letter()))
	}
	return fmt.Sprintf("%s%s", a.From, a.To())
}

// candidate is an action together with the effect that performs it.
type candidate struct {
	action Action
	effect Effect
}
