package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/benbeisheim/chessrules-backend/internal/engine"
	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/service"
)

// statusFor maps a service error onto the HTTP status it is reported with.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, model.ErrGameFull),
		errors.Is(err, model.ErrAlreadyQueue),
		errors.Is(err, model.ErrGameOver),
		errors.Is(err, service.ErrGameExists):
		return fiber.StatusConflict
	case errors.Is(err, engine.ErrDiagram),
		errors.Is(err, engine.ErrKingCount),
		errors.Is(err, engine.ErrIllegalPosition),
		errors.Is(err, engine.ErrSquare),
		errors.Is(err, model.ErrIllegalMove),
		errors.Is(err, model.ErrNotYourTurn),
		errors.Is(err, model.ErrNotInGame):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func sendError(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
