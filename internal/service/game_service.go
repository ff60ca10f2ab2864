package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/benbeisheim/chessrules-backend/internal/engine"
	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame() (string, error) {
	gameID := uuid.New().String()
	if err := gs.gameManager.CreateGame(gameID); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}
	return gameID, nil
}

// CreateGameFromDiagram starts a game from a board diagram (see
// engine.ParseDiagram) with toMove to play.
func (gs *GameService) CreateGameFromDiagram(rows []string, toMove model.PlayerColor) (string, error) {
	board, err := engine.ParseDiagram(rows...)
	if err != nil {
		return "", err
	}
	turn := engine.White
	if toMove == model.PlayerColorBlack {
		turn = engine.Black
	}
	g, err := engine.NewGameFromBoard(board, turn)
	if err != nil {
		return "", err
	}
	gameID := uuid.New().String()
	if err := gs.gameManager.CreateGameFromPosition(gameID, g); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}
	return gameID, nil
}

func (gs *GameService) JoinGame(gameID, playerID string) (model.PlayerColor, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return "", err
	}
	return session.AddPlayer(playerID)
}

func (gs *GameService) JoinMatchmaking(playerID string) error {
	return gs.gameManager.JoinMatchmaking(playerID)
}

// LeaveMatchmaking drops the player from the queue and forgets their
// notification channel.
func (gs *GameService) LeaveMatchmaking(playerID string) {
	gs.gameManager.LeaveMatchmaking(playerID)
	gs.gameManager.UnregisterMatchmakingChannel(playerID)
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return session.State(), nil
}

func (gs *GameService) LegalMoves(gameID string, from engine.Position) ([]model.LegalMove, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	return session.LegalMoves(from), nil
}

func (gs *GameService) HandleMove(gameID, playerID string, move model.WSMove) error {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return session.MakeMove(playerID, move)
}

func (gs *GameService) Resign(gameID, playerID string) error {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return session.Resign(playerID)
}

// SendLegalMoves answers a piece selection on the player's own
// connection only.
func (gs *GameService) SendLegalMoves(gameID, playerID string, from engine.Position) error {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	msg, err := ws.NewMessage(ws.MessageTypeLegalMoves, session.LegalMoves(from))
	if err != nil {
		return err
	}
	return session.Send(playerID, msg)
}

func (gs *GameService) RegisterConnection(gameID, playerID string, conn model.Conn) error {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return session.RegisterConnection(playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID, playerID string, conn model.Conn) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return
	}
	session.UnregisterConnection(playerID, conn)
}

func (gs *GameService) RegisterMatchmakingChannel(playerID string, ch chan string) {
	gs.gameManager.RegisterMatchmakingChannel(playerID, ch)
}

func (gs *GameService) UnregisterMatchmakingChannel(playerID string) {
	gs.gameManager.UnregisterMatchmakingChannel(playerID)
}
