package controller

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/service"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
)

type fakeConn struct {
	mu       sync.Mutex
	messages []ws.Message
}

func (c *fakeConn) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, v.(ws.Message))
	return nil
}

func (c *fakeConn) WriteMessage(int, []byte) error { return nil }

func (c *fakeConn) Close() error { return nil }

func (c *fakeConn) last() ws.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.messages) == 0 {
		return ws.Message{}
	}
	return c.messages[len(c.messages)-1]
}

func message(t *testing.T, typ ws.MessageType, payload string) ws.Message {
	t.Helper()
	msg := ws.Message{Type: typ}
	if payload != "" {
		msg.Payload = json.RawMessage(payload)
	}
	return msg
}

func TestHandleMessage(t *testing.T) {
	manager := service.NewGameManager(model.TimeControl{Initial: 10 * time.Minute}, time.Second)
	gs := service.NewGameService(manager)
	wsc := NewWebSocketController(gs)

	gameID, err := gs.CreateGame()
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"alice", "bob"} {
		if _, err := gs.JoinGame(gameID, id); err != nil {
			t.Fatal(err)
		}
	}
	alice := &fakeConn{}
	if err := gs.RegisterConnection(gameID, "alice", alice); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		player  string
		msg     ws.Message
		wantErr error
		reply   ws.MessageType
	}{
		{
			name:   "select",
			player: "alice",
			msg:    message(t, ws.MessageTypeSelect, `{"x":4,"y":6}`),
			reply:  ws.MessageTypeLegalMoves,
		},
		{
			name:   "move",
			player: "alice",
			msg:    message(t, ws.MessageTypeMove, `{"from":{"x":4,"y":6},"to":{"x":4,"y":4}}`),
			reply:  ws.MessageTypeGameState,
		},
		{
			name:    "move out of turn",
			player:  "alice",
			msg:     message(t, ws.MessageTypeMove, `{"from":{"x":3,"y":6},"to":{"x":3,"y":4}}`),
			wantErr: model.ErrNotYourTurn,
		},
		{
			name:    "illegal move",
			player:  "bob",
			msg:     message(t, ws.MessageTypeMove, `{"from":{"x":4,"y":1},"to":{"x":4,"y":4}}`),
			wantErr: model.ErrIllegalMove,
		},
		{
			name:    "select without a connection",
			player:  "bob",
			msg:     message(t, ws.MessageTypeSelect, `{"x":4,"y":1}`),
			wantErr: model.ErrNotInGame,
		},
		{
			name:   "malformed move",
			player: "bob",
			msg:    message(t, ws.MessageTypeMove, `{"from":"e7"}`),
		},
		{
			name:   "malformed select",
			player: "alice",
			msg:    message(t, ws.MessageTypeSelect, `[1,2]`),
		},
		{
			name:   "unknown type",
			player: "alice",
			msg:    message(t, "castle", `{}`),
		},
		{
			name:   "resign",
			player: "bob",
			msg:    message(t, ws.MessageTypeResign, ""),
			reply:  ws.MessageTypeGameState,
		},
		{
			name:    "resign twice",
			player:  "alice",
			msg:     message(t, ws.MessageTypeResign, ""),
			wantErr: model.ErrGameOver,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := wsc.handleMessage(gameID, tt.player, tt.msg)
			switch {
			case tt.reply != "":
				if err != nil {
					t.Fatalf("handleMessage: %v", err)
				}
				if got := alice.last().Type; got != tt.reply {
					t.Fatalf("last message = %q, want %q", got, tt.reply)
				}
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
			default:
				if err == nil {
					t.Fatal("expected an error")
				}
			}
		})
	}

	if err := wsc.handleMessage("nope", "alice", message(t, ws.MessageTypeResign, "")); !errors.Is(err, service.ErrGameNotFound) {
		t.Fatalf("missing game: %v", err)
	}
}
