package model

import "github.com/benbeisheim/chessrules-backend/internal/engine"

type Player struct {
	ID string
}

type ClientPlayer struct {
	ID       string `json:"name"`
	Color    string `json:"color"`
	TimeLeft int    `json:"timeLeft"`
}

type PlayerColor string

const (
	PlayerColorWhite PlayerColor = "white"
	PlayerColorBlack PlayerColor = "black"
)

func colorOf(c engine.Color) PlayerColor {
	if c == engine.White {
		return PlayerColorWhite
	}
	return PlayerColorBlack
}

func (c PlayerColor) engineColor() engine.Color {
	if c == PlayerColorWhite {
		return engine.White
	}
	return engine.Black
}
