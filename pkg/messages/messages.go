package messages

import (
	"fmt"

	"github.com/wreien/beeeees/pkg/game"
)

// Message types
const (
	MessageTypeRegister     = "register"
	MessageTypeRegistration = "registration"
	MessageTypeUpdate       = "update"
	MessageTypeMoves        = "moves"
	MessageTypeWarning      = "warning"
	MessageTypeError        = "error"
	MessageTypeDone         = "done"
)

// Message is implemented by every wire message.
type Message interface {
	MessageType() string
}

// Register requests registration under the given player name. The name
// doubles as the identity for rejoining after a dropped connection.
type Register struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// NewRegister creates a registration request for the given player name.
func NewRegister(name string) *Register {
	return &Register{Type: MessageTypeRegister, Name: name}
}

func (*Register) MessageType() string { return MessageTypeRegister }

// Registration is the successful handshake reply. It carries everything
// immutable for the session: the assigned player ID and the world map.
type Registration struct {
	Type   string        `json:"type"`
	Player game.PlayerID `json:"player"`
	World  *game.World   `json:"world"`
	// TickRate is the server's expected tick interval in seconds.
	TickRate float64 `json:"tick_rate"`
}

func (*Registration) MessageType() string { return MessageTypeRegistration }

// Update carries one round's entity snapshot.
type Update struct {
	Type string        `json:"type"`
	Data game.Entities `json:"data"`
}

func (*Update) MessageType() string { return MessageTypeUpdate }

// Move is a single bee movement. An omitted direction means the bee
// should stay where it is.
type Move struct {
	Bee       game.BeeID     `json:"bee"`
	Direction game.Direction `json:"direction,omitempty"`
}

// Moves carries one round's movement commands. The server applies the
// last set received before a tick; bees without an entry do not move.
type Moves struct {
	Type  string `json:"type"`
	Moves []Move `json:"moves"`
}

// NewMoves creates a moves message from a movement mapping. The wire
// order of entries is unspecified.
func NewMoves(moves game.Moves) *Moves {
	ms := make([]Move, 0, len(moves))
	for bee, dir := range moves {
		ms = append(ms, Move{Bee: bee, Direction: dir})
	}
	return &Moves{Type: MessageTypeMoves, Moves: ms}
}

func (*Moves) MessageType() string { return MessageTypeMoves }

// Warning is a non-fatal advisory from the server. The session continues.
type Warning struct {
	Type string `json:"type"`
	Msg  string `json:"msg"`
}

func (*Warning) MessageType() string { return MessageTypeWarning }

// Error is a fatal condition reported by the server. It is the last
// message before the server closes the stream.
type Error struct {
	Type string `json:"type"`
	Msg  string `json:"msg"`
}

func (*Error) MessageType() string { return MessageTypeError }

// Done signals normal game end. It is the last message before the
// server closes the stream.
type Done struct {
	Type string `json:"type"`
}

func (*Done) MessageType() string { return MessageTypeDone }

// ErrInvalidMessage is returned when a wire line violates the protocol:
// either it is not valid JSON or its type discriminant is not part of
// the message vocabulary. It carries the raw line for diagnostics.
type ErrInvalidMessage struct {
	Reason string
	Line   string
}

func (e *ErrInvalidMessage) Error() string {
	return fmt.Sprintf("invalid message: %s: %s", e.Reason, e.Line)
}
