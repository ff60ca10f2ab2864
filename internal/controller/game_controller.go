package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/benbeisheim/chessrules-backend/internal/engine"
	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/service"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

// CreateGameRequest optionally starts the game from a custom position.
// Position uses the diagram format of engine.ParseDiagram, rank 8 first.
type CreateGameRequest struct {
	Position []string          `json:"position"`
	ToMove   model.PlayerColor `json:"toMove"`
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	var req CreateGameRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}

	var (
		gameID string
		err    error
	)
	if len(req.Position) > 0 {
		gameID, err = gc.gameService.CreateGameFromDiagram(req.Position, req.ToMove)
	} else {
		gameID, err = gc.gameService.CreateGame()
	}
	if err != nil {
		return sendError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	color, err := gc.gameService.JoinGame(gameID, playerID)
	if err != nil {
		return sendError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Game joined",
		"color":   color,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(gameState)
}

// GetLegalMoves lists the legal destinations of the piece on ?square=.
func (gc *GameController) GetLegalMoves(c *fiber.Ctx) error {
	from, err := engine.ParsePosition(c.Query("square"))
	if err != nil {
		return sendError(c, err)
	}

	moves, err := gc.gameService.LegalMoves(c.Params("gameId"), from)
	if err != nil {
		return sendError(c, err)
	}
	if moves == nil {
		moves = []model.LegalMove{}
	}
	return c.JSON(moves)
}

func (gc *GameController) JoinMatchmaking(c *fiber.Ctx) error {
	playerID := c.Locals("playerID").(string)

	if err := gc.gameService.JoinMatchmaking(playerID); err != nil {
		return sendError(c, err)
	}

	return c.JSON(fiber.Map{
		"status": "queued",
	})
}

func (gc *GameController) LeaveMatchmaking(c *fiber.Ctx) error {
	gc.gameService.LeaveMatchmaking(c.Locals("playerID").(string))
	return c.JSON(fiber.Map{
		"status": "left",
	})
}
