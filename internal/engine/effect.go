package engine

// Effect is a board transformation built from primitive mutations.
// Effects are total: any step that would touch an off-board square is
// skipped. The zero Effect is the identity.
type Effect struct {
	ops []op
}

type opKind uint8

const (
	opRemove opKind = iota + 1
	opPut
	opMove
)

type op struct {
	kind  opKind
	from  Position
	to    Position
	piece Piece
}

// squareWriter is the surface an Effect mutates: a Board owned by the
// caller or a scratch board inside the legality filter.
type squareWriter interface {
	At(pos Position) Piece
	put(pos Position, p Piece)
}

// Remove clears pos. Clearing an empty square does nothing.
func Remove(pos Position) Effect {
	return Effect{ops: []op{{kind: opRemove, to: pos}}}
}

// Put places p on pos, replacing whatever was there.
func Put(pos Position, p Piece) Effect {
	return Effect{ops: []op{{kind: opPut, to: pos, piece: p}}}
}

// Move lifts whatever stands on from and sets it down on to, capturing
// any occupant of to. If from is empty, or either square is off the
// board, neither square changes.
func Move(from, to Position) Effect {
	return Effect{ops: []op{{kind: opMove, from: from, to: to}}}
}

// Combine runs effects left to right.
func Combine(effects ...Effect) Effect {
	n := 0
	for _, e := range effects {
		n += len(e.ops)
	}
	if n == 0 {
		return Effect{}
	}
	ops := make([]op, 0, n)
	for _, e := range effects {
		ops = append(ops, e.ops...)
	}
	return Effect{ops: ops}
}

// Apply returns a copy of b with the effect applied; b is unchanged.
func (e Effect) Apply(b Board) Board {
	e.applyTo(&b)
	return b
}

// Squares returns every square the effect may write to.
func (e Effect) Squares() SquareSet {
	var s SquareSet
	for _, o := range e.ops {
		if o.kind == opMove {
			s = s.Add(o.from)
		}
		s = s.Add(o.to)
	}
	return s
}

// Len is the number of primitive steps.
func (e Effect) Len() int { return len(e.ops) }

func (e Effect) applyTo(w squareWriter) {
	for _, o := range e.ops {
		switch o.kind {
		case opRemove:
			w.put(o.to, Piece{})
		case opPut:
			w.put(o.to, o.piece)
		case opMove:
			if o.from == o.to || !o.from.InBounds() || !o.to.InBounds() {
				continue
			}
			p := w.At(o.from)
			if p.Empty() {
				continue
			}
			w.put(o.to, p)
			w.put(o.from, Piece{})
		}
	}
}
