package model

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/benbeisheim/chessrules-backend/internal/engine"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
)

var testTimeControl = TimeControl{Initial: 10 * time.Minute}

type fakeConn struct {
	mu       sync.Mutex
	messages []ws.Message
	closed   bool
	fail     bool
}

func (c *fakeConn) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return errors.New("broken pipe")
	}
	c.messages = append(c.messages, v.(ws.Message))
	return nil
}

func (c *fakeConn) WriteMessage(int, []byte) error { return nil }

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

// lastState decodes the most recent gameState message.
func (c *fakeConn) lastState(t *testing.T) GameState {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := len(c.messages) - 1; i >= 0; i-- {
		if c.messages[i].Type != ws.MessageTypeGameState {
			continue
		}
		var state GameState
		if err := json.Unmarshal(c.messages[i].Payload, &state); err != nil {
			t.Fatalf("decode state: %v", err)
		}
		return state
	}
	t.Fatal("no gameState message received")
	return GameState{}
}

func sq(t *testing.T, s string) engine.Position {
	t.Helper()
	pos, err := engine.ParsePosition(s)
	if err != nil {
		t.Fatal(err)
	}
	return pos
}

func mv(t *testing.T, from, to string) WSMove {
	t.Helper()
	return WSMove{From: sq(t, from), To: sq(t, to)}
}

// play applies coordinate moves to g, failing on any rejection.
func play(t *testing.T, g *engine.Game, moves ...string) *engine.Game {
	t.Helper()
	for _, m := range moves {
		from, to := sq(t, m[:2]), sq(t, m[2:4])
		a := engine.MoveAction(from, to.Sub(from))
		if len(m) == 5 {
			r, ok := engine.ParseRank(map[byte]string{'q': "queen", 'r': "rook", 'b': "bishop", 'n': "knight"}[m[4]])
			if !ok {
				t.Fatalf("bad promotion in %q", m)
			}
			a = engine.PromoteAction(from, to.Sub(from), r)
		}
		next := g.Apply(a)
		if next == g {
			t.Fatalf("%s rejected", m)
		}
		g = next
	}
	return g
}

func gameFromDiagram(t *testing.T, turn engine.Color, rows ...string) *engine.Game {
	t.Helper()
	b, err := engine.ParseDiagram(rows...)
	if err != nil {
		t.Fatal(err)
	}
	g, err := engine.NewGameFromBoard(b, turn)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func mustMessage(t *testing.T) ws.Message {
	t.Helper()
	msg, err := ws.NewMessage(ws.MessageTypeLegalMoves, []LegalMove{})
	if err != nil {
		t.Fatal(err)
	}
	return msg
}
