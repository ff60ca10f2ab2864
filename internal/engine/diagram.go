package engine

import (
	"fmt"
	"strings"
)

var rankLetters = map[byte]Rank{
	'k': King, 'q': Queen, 'r': Rook, 'b': Bishop, 'n': Knight, 'p': Pawn,
}

// ParseDiagram builds a board from eight rows of eight characters, top
// row first (Black's side). Uppercase letters are White, lowercase
// Black, '.' is empty. Pieces get ids in reading order starting at 1.
func ParseDiagram(rows ...string) (Board, error) {
	var b Board
	if len(rows) != Size {
		return b, fmt.Errorf("%w: want %d rows, got %d", ErrDiagram, Size, len(rows))
	}
	id := PieceID(1)
	for y, row := range rows {
		if len(row) != Size {
			return b, fmt.Errorf("%w: row %d has %d squares", ErrDiagram, y, len(row))
		}
		for x := 0; x < Size; x++ {
			ch := row[x]
			if ch == '.' {
				continue
			}
			c := Black
			if ch >= 'A' && ch <= 'Z' {
				c = White
				ch += 'a' - 'A'
			}
			r, ok := rankLetters[ch]
			if !ok {
				return b, fmt.Errorf("%w: unknown piece %q at %s", ErrDiagram, row[x], Position{X: x, Y: y})
			}
			b.put(Position{X: x, Y: y}, Piece{Color: c, Rank: r, ID: id})
			id++
		}
	}
	return b, nil
}

// String renders the board in the format ParseDiagram reads, one row
// per line.
func (b Board) String() string {
	var sb strings.Builder
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			p := b.squares[Position{X: x, Y: y}.index()]
			sb.WriteByte(diagramLetter(p))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func diagramLetter(p Piece) byte {
	if p.Empty() {
		return '.'
	}
	var ch byte = 'p'
	if p.Rank != Pawn {
		ch = strings.ToLower(p.Rank.Letter())[0]
	}
	if p.Color == White {
		ch -= 'a' - 'A'
	}
	return ch
}
