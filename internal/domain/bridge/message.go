// Package bridge defines the messages page script may send to the shell.
package bridge

import (
	"encoding/json"
	"errors"
	"fmt"
)

// HandlerName is the script message handler the bridge posts to.
const HandlerName = "kiosk"

// WorldName is the isolated script world the bridge and overlay live in.
// Page scripts in the main world cannot reach the handler.
const WorldName = "kiosk"

var (
	// ErrUnknownCommand is returned for message types the shell does not handle.
	ErrUnknownCommand = errors.New("unknown bridge command")
	// ErrMalformedMessage is returned when a message is not a JSON envelope.
	ErrMalformedMessage = errors.New("malformed bridge message")
)

// Command is a window operation requested by page script.
type Command string

const (
	CommandClose    Command = "window-close"
	CommandMinimize Command = "window-minimize"
)

// Valid reports whether c is a command the shell handles.
func (c Command) Valid() bool {
	switch c {
	case CommandClose, CommandMinimize:
		return true
	default:
		return false
	}
}

// Message is the JSON envelope posted through the bridge.
type Message struct {
	Type    Command         `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Decode parses a raw JSON message and validates its command.
func Decode(raw string) (Message, error) {
	var msg Message
	if raw == "" {
		return msg, fmt.Errorf("%w: empty", ErrMalformedMessage)
	}
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		return msg, fmt.Errorf("%w: %w", ErrMalformedMessage, err)
	}
	if msg.Type == "" {
		return msg, fmt.Errorf("%w: missing type", ErrMalformedMessage)
	}
	if !msg.Type.Valid() {
		return msg, fmt.Errorf("%w: %q", ErrUnknownCommand, msg.Type)
	}
	return msg, nil
}
