package engine

import "sync"

// scratch is a privately owned board the legality filter mutates and
// rolls back. Every write is journaled; restore undoes the writes made
// since a checkpoint.
type scratch struct {
	board   Board
	journal []undo
}

type undo struct {
	idx  int
	prev Piece
}

var scratchPool = sync.Pool{
	New: func() any { return &scratch{journal: make([]undo, 0, 8)} },
}

// borrowScratch hands out an exclusive scratch loaded with b.
func borrowScratch(b *Board) *scratch {
	s := scratchPool.Get().(*scratch)
	s.board = *b
	s.journal = s.journal[:0]
	return s
}

func releaseScratch(s *scratch) {
	if s == nil {
		return
	}
	s.journal = s.journal[:0]
	scratchPool.Put(s)
}

func (s *scratch) At(pos Position) Piece {
	return s.board.At(pos)
}

func (s *scratch) put(pos Position, p Piece) {
	if !pos.InBounds() {
		return
	}
	idx := pos.index()
	s.journal = append(s.journal, undo{idx: idx, prev: s.board.squares[idx]})
	s.board.squares[idx] = p
}

func (s *scratch) checkpoint() int {
	return len(s.journal)
}

func (s *scratch) restore(mark int) {
	for i := len(s.journal) - 1; i >= mark; i-- {
		u := s.journal[i]
		s.board.squares[u.idx] = u.prev
	}
	s.journal = s.journal[:mark]
}
