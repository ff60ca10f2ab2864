package ws

import (
	"encoding/json"
)

// MessageType names the kind of payload a websocket message carries.
type MessageType string

const (
	// Client to server.
	MessageTypeMove   MessageType = "move"
	MessageTypeSelect MessageType = "select"
	MessageTypeResign MessageType = "resign"

	// Server to client.
	MessageTypeGameState  MessageType = "gameState"
	MessageTypeLegalMoves MessageType = "legalMoves"
	MessageTypeError      MessageType = "error"
)

// Message is the envelope every websocket frame uses.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// NewMessage marshals payload into an envelope.
func NewMessage(t MessageType, payload interface{}) (Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: data}, nil
}

// ErrorPayload is the body of an error message.
type ErrorPayload struct {
	Error string `json:"error"`
}
