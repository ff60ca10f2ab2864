package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/benbeisheim/chessrules-backend/internal/engine"
	"github.com/benbeisheim/chessrules-backend/internal/model"
)

// GameManager owns every live session and the matchmaking queue.
type GameManager struct {
	games            map[string]*model.Session
	queue            *model.Queue
	matchingChannels map[string]chan string
	timeControl      model.TimeControl
	interval         time.Duration
	mu               sync.RWMutex
}

func NewGameManager(tc model.TimeControl, matchmakingInterval time.Duration) *GameManager {
	return &GameManager{
		games:            make(map[string]*model.Session),
		queue:            model.NewQueue(),
		matchingChannels: make(map[string]chan string),
		timeControl:      tc,
		interval:         matchmakingInterval,
	}
}

// Run pairs queued players every interval until ctx is done.
func (gm *GameManager) Run(ctx context.Context) error {
	ticker := time.NewTicker(gm.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			gm.processMatchmaking()
		}
	}
}

func (gm *GameManager) processMatchmaking() {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	for {
		player1, player2, ok := gm.queue.NextPair()
		if !ok {
			return
		}
		gameID := uuid.New().String()
		session := model.NewSession(gameID, gm.timeControl)
		p1Color, err := session.AddPlayer(player1.ID)
		if err != nil {
			log.Printf("matchmaking: seat %s: %v", player1.ID, err)
			continue
		}
		p2Color, err := session.AddPlayer(player2.ID)
		if err != nil {
			log.Printf("matchmaking: seat %s: %v", player2.ID, err)
			continue
		}
		gm.games[gameID] = session

		sent1 := gm.notifyMatch(player1.ID, model.MatchFoundEvent{GameID: gameID, Color: p1Color})
		sent2 := gm.notifyMatch(player2.ID, model.MatchFoundEvent{GameID: gameID, Color: p2Color})
		if !sent1 || !sent2 {
			log.Printf("matchmaking: game %s: not every player was notified", gameID)
		}
	}
}

// notifyMatch delivers the event and closes the player's channel. The
// caller holds gm.mu.
func (gm *GameManager) notifyMatch(playerID string, event model.MatchFoundEvent) bool {
	ch, ok := gm.matchingChannels[playerID]
	if !ok {
		return false
	}
	delete(gm.matchingChannels, playerID)
	defer close(ch)

	select {
	case ch <- mustJSON(event):
		return true
	default:
		return false
	}
}

func (gm *GameManager) RegisterMatchmakingChannel(playerID string, ch chan string) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if existing, ok := gm.matchingChannels[playerID]; ok {
		delete(gm.matchingChannels, playerID)
		close(existing)
	}
	gm.matchingChannels[playerID] = ch
}

// UnregisterMatchmakingChannel forgets the channel without closing it;
// its creator owns it.
func (gm *GameManager) UnregisterMatchmakingChannel(playerID string) {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	delete(gm.matchingChannels, playerID)
}

func mustJSON(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(data)
}

func (gm *GameManager) CreateGame(gameID string) error {
	return gm.AddSession(model.NewSession(gameID, gm.timeControl))
}

// CreateGameFromPosition registers a game that starts from g.
func (gm *GameManager) CreateGameFromPosition(gameID string, g *engine.Game) error {
	return gm.AddSession(model.NewSessionFromGame(gameID, g, gm.timeControl))
}

func (gm *GameManager) AddSession(s *model.Session) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[s.ID]; exists {
		return fmt.Errorf("%w: %s", ErrGameExists, s.ID)
	}
	gm.games[s.ID] = s
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	session, exists := gm.games[gameID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return session, nil
}

func (gm *GameManager) JoinMatchmaking(playerID string) error {
	return gm.queue.AddPlayer(model.Player{ID: playerID})
}

// LeaveMatchmaking takes a player out of the queue.
func (gm *GameManager) LeaveMatchmaking(playerID string) {
	gm.queue.Remove(playerID)
}

func (gm *GameManager) QueueSize() int {
	return gm.queue.Size()
}
