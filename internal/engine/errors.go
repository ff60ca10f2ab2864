package engine

import "errors"

var (
	ErrKingCount = errors.New("board must hold exactly one king per color")
	ErrSquare    = errors.New("invalid square")
	ErrDiagram   = errors.New("invalid board diagram")

	// ErrIllegalPosition rejects a position where the side that just
	// moved is in check, i.e. its king could be captured.
	ErrIllegalPosition = errors.New("side not to move is in check")
)
