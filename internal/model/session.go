package model

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"

	"github.com/benbeisheim/chessrules-backend/internal/engine"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
)

// Conn is the part of a websocket connection a session writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// GameConnections holds the live connections watching one game.
type GameConnections struct {
	connections map[string]Conn // playerID -> connection
	mu          sync.Mutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]Conn),
	}
}

// TimeControl configures both clocks of a session.
type TimeControl struct {
	Initial   time.Duration
	Increment time.Duration
}

// Resolution is a result the rules engine does not decide itself.
type Resolution struct {
	Reason string
	Winner engine.Color
}

// Session is one game being played: the engine position, who plays
// which side, the clocks and the connections watching it.
type Session struct {
	ID          string
	mu          sync.Mutex
	game        *engine.Game
	players     Players
	whiteClock  *Clock
	blackClock  *Clock
	resolution  *Resolution
	history     history
	connections *GameConnections
}

type Players struct {
	White ClientPlayer `json:"white"`
	Black ClientPlayer `json:"black"`
}

// GameState is the snapshot broadcast to clients.
type GameState struct {
	Sound           string           `json:"sound"`
	Board           *BoardState      `json:"boardState"`
	ToMove          string           `json:"toMove"`
	MoveHistory     []Move           `json:"moveHistory"`
	CapturedPieces  CapturedPieces   `json:"capturedPieces"`
	IsCheck         bool             `json:"isCheck"`
	EnPassantTarget *engine.Position `json:"enPassantTarget"`
	Castling        string           `json:"castling"`
	Resolve         *string          `json:"resolve"`
	Winner          *string          `json:"winner"`
	Players         Players          `json:"players"`
	LastMove        *SimpleMove      `json:"lastMove"`
}

func NewSession(id string, tc TimeControl) *Session {
	return NewSessionFromGame(id, engine.NewGame(), tc)
}

// NewSessionFromGame starts a session from an existing position.
func NewSessionFromGame(id string, g *engine.Game, tc TimeControl) *Session {
	return &Session{
		ID:          id,
		game:        g,
		history:     buildHistory(g),
		whiteClock:  NewClock(tc.Initial, tc.Increment),
		blackClock:  NewClock(tc.Initial, tc.Increment),
		connections: NewGameConnections(),
	}
}

// AddPlayer seats the player as White, then Black. A player already
// seated gets their color back.
func (s *Session) AddPlayer(playerID string) (PlayerColor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.colorOf(playerID); ok {
		return c, nil
	}
	if s.players.White.ID == "" {
		s.players.White = ClientPlayer{ID: playerID, Color: string(PlayerColorWhite)}
		return PlayerColorWhite, nil
	}
	if s.players.Black.ID == "" {
		s.players.Black = ClientPlayer{ID: playerID, Color: string(PlayerColorBlack)}
		return PlayerColorBlack, nil
	}
	return "", ErrGameFull
}

func (s *Session) ColorOf(playerID string) (PlayerColor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.colorOf(playerID)
}

func (s *Session) colorOf(playerID string) (PlayerColor, bool) {
	switch {
	case playerID == "":
		return "", false
	case s.players.White.ID == playerID:
		return PlayerColorWhite, true
	case s.players.Black.ID == playerID:
		return PlayerColorBlack, true
	}
	return "", false
}

func (s *Session) IsPlayerInGame(playerID string) bool {
	_, ok := s.ColorOf(playerID)
	return ok
}

// CanSpectate reports whether a seat is still open.
func (s *Session) CanSpectate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canSpectate()
}

func (s *Session) canSpectate() bool {
	return s.players.White.ID == "" || s.players.Black.ID == ""
}

// Game returns the current engine position.
func (s *Session) Game() *engine.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game
}

func (s *Session) State() GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state()
}

// LegalMoves lists where the piece on from may go.
func (s *Session) LegalMoves(from engine.Position) []LegalMove {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.over() {
		return []LegalMove{}
	}
	return legalMoves(s.game.Actions(from))
}

// MakeMove plays the player's move and broadcasts the new state.
func (s *Session) MakeMove(playerID string, move WSMove) error {
	state, err := s.makeMove(playerID, move)
	// A move refused because the mover flagged still ends the game.
	if err == nil || state.Resolve != nil {
		s.broadcastState(state)
	}
	return err
}

func (s *Session) makeMove(playerID string, move WSMove) (GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	color, ok := s.colorOf(playerID)
	if !ok {
		return GameState{}, ErrNotInGame
	}
	if s.over() {
		return GameState{}, ErrGameOver
	}
	turn := s.game.Turn()
	if color.engineColor() != turn {
		return GameState{}, ErrNotYourTurn
	}

	moverClock, otherClock := s.clocks(turn)
	if moverClock.Flagged() {
		moverClock.Stop(false)
		s.resolution = &Resolution{Reason: "timeout", Winner: turn.Other()}
		return s.state(), fmt.Errorf("%w: %s ran out of time", ErrGameOver, turn)
	}

	action, err := move.action()
	if err != nil {
		return GameState{}, err
	}
	prev := s.game
	next := prev.Apply(action)
	if next == prev {
		return GameState{}, fmt.Errorf("%w: %s", ErrIllegalMove, action)
	}
	s.game = next
	s.history.add(step{prev: prev, action: action, next: next})

	moverClock.Stop(true)
	if !next.NextStep().Over() {
		otherClock.Start()
	}
	return s.state(), nil
}

// Resign ends the game in the opponent's favour.
func (s *Session) Resign(playerID string) error {
	state, err := s.resign(playerID)
	if err != nil {
		return err
	}
	s.broadcastState(state)
	return nil
}

func (s *Session) resign(playerID string) (GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	color, ok := s.colorOf(playerID)
	if !ok {
		return GameState{}, ErrNotInGame
	}
	if s.over() {
		return GameState{}, ErrGameOver
	}
	s.resolution = &Resolution{Reason: "resign", Winner: color.engineColor().Other()}
	s.whiteClock.Stop(false)
	s.blackClock.Stop(false)
	return s.state(), nil
}

func (s *Session) clocks(c engine.Color) (mover, other *Clock) {
	if c == engine.White {
		return s.whiteClock, s.blackClock
	}
	return s.blackClock, s.whiteClock
}

func (s *Session) over() bool {
	return s.resolution != nil || s.game.NextStep().Over()
}

func (s *Session) state() GameState {
	g := s.game
	h := &s.history
	step := g.NextStep()
	moves, captured := h.snapshot()

	state := GameState{
		Board:          newBoardState(g.Board()),
		ToMove:         g.Turn().String(),
		MoveHistory:    moves,
		CapturedPieces: captured,
		IsCheck:        step.InCheck || step.Kind == engine.StepCheckmate,
		Castling:       g.Castling().String(),
		Players:        s.players,
	}
	state.Players.White.TimeLeft = s.whiteClock.deciseconds()
	state.Players.Black.TimeLeft = s.blackClock.deciseconds()

	if target, ok := g.EnPassantTarget(); ok {
		state.EnPassantTarget = &target
	}
	if h.last != nil {
		state.LastMove = &SimpleMove{From: h.last.From, To: h.last.To}
		state.Sound = sound(h.last, step)
	}

	switch {
	case s.resolution != nil:
		state.Resolve = stringPtr(s.resolution.Reason)
		state.Winner = stringPtr(s.resolution.Winner.String())
	case step.Kind == engine.StepCheckmate:
		state.Resolve = stringPtr("checkmate")
		state.Winner = stringPtr(step.Winner.String())
	case step.Kind == engine.StepStalemate:
		state.Resolve = stringPtr("stalemate")
	}
	return state
}

func sound(last *Ply, step engine.NextStep) string {
	switch {
	case step.InCheck || step.Kind == engine.StepCheckmate:
		return "check"
	case last.CapturedPiece != nil:
		return "capture"
	case last.CastleRookMove != nil:
		return "castle"
	case last.Promotion != "":
		return "promote"
	}
	return "move"
}

func stringPtr(s string) *string { return &s }

func (s *Session) RegisterConnection(playerID string, conn Conn) error {
	isAuthorized, state := s.admit(playerID)

	if !isAuthorized {
		return fmt.Errorf("%w: not authorized to join this game", ErrNotInGame)
	}

	s.connections.mu.Lock()
	if _, exists := s.connections.connections[playerID]; exists {
		s.connections.mu.Unlock()
		// Keep the healthy connection and turn the newcomer away.
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "Connection already exists"),
		)
		conn.Close()
		return nil
	}
	s.connections.connections[playerID] = conn
	s.connections.mu.Unlock()
	log.Printf("game %s: registered connection for player %s", s.ID, playerID)

	s.broadcastState(state)
	return nil
}

// admit reports whether the player may watch and the state to greet
// them with.
func (s *Session) admit(playerID string) (bool, GameState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.colorOrOpen(playerID), s.state()
}

func (s *Session) colorOrOpen(playerID string) bool {
	_, ok := s.colorOf(playerID)
	return ok || s.canSpectate()
}

// UnregisterConnection forgets conn if it is still the player's current
// connection.
func (s *Session) UnregisterConnection(playerID string, conn Conn) {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()

	if current, exists := s.connections.connections[playerID]; exists && current == conn {
		delete(s.connections.connections, playerID)
		log.Printf("game %s: unregistered connection for player %s", s.ID, playerID)
	}
}

// Send writes one message to a single player's connection.
func (s *Session) Send(playerID string, msg ws.Message) error {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()

	conn, ok := s.connections.connections[playerID]
	if !ok {
		return fmt.Errorf("%w: no connection for %s", ErrNotInGame, playerID)
	}
	return conn.WriteJSON(msg)
}

// broadcastState writes state to every connection, dropping the ones
// that fail. Writes are serialized because a websocket connection does
// not allow concurrent writers.
func (s *Session) broadcastState(state GameState) {
	payload, err := json.Marshal(state)
	if err != nil {
		log.Printf("game %s: marshal state: %v", s.ID, err)
		return
	}
	msg := ws.Message{Type: ws.MessageTypeGameState, Payload: payload}

	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()
	for playerID, conn := range s.connections.connections {
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("game %s: send state to player %s: %v", s.ID, playerID, err)
			delete(s.connections.connections, playerID)
		}
	}
}
