package client

import (
	"context"
	"fmt"
	"time"

	"github.com/wreien/beeeees/pkg/game"
	"github.com/wreien/beeeees/pkg/log"
	"github.com/wreien/beeeees/pkg/messages"
	"github.com/wreien/beeeees/pkg/network"
)

// State represents the lifecycle state of a session. Transitions only
// move forward; StateTerminated is absorbing.
type State int

const (
	StateUnregistered State = iota
	StateRegistering
	StateActive
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateUnregistered:
		return "Unregistered"
	case StateRegistering:
		return "Registering"
	case StateActive:
		return "Active"
	case StateTerminated:
		return "Terminated"
	}
	return "Unknown"
}

// Strategy decides one round's moves from the player's identity, the
// immutable world, and the current entity snapshot. It must be a pure
// function of its inputs: it is called once per round, must not keep
// state between rounds, and must not touch the network itself. Moves for
// bees the player does not own are the strategy's own mistake; the
// client sends them as-is.
type Strategy func(player game.PlayerID, world *game.World, entities *game.Entities) game.Moves

// ErrGame is a fatal condition reported by the server, carrying the
// server-supplied text. There is no retry; re-registering under the same
// name is the only recovery path.
type ErrGame struct {
	Msg string
}

func (e *ErrGame) Error() string {
	return e.Msg
}

// Client is one registered session with the game server. It owns its
// Connection exclusively; nothing is shared between sessions.
type Client struct {
	conn     *network.Connection
	id       game.PlayerID
	world    *game.World
	tickRate time.Duration
	state    State
}

// ID returns the player ID assigned by the server.
func (c *Client) ID() game.PlayerID {
	return c.id
}

// World returns the immutable game world.
func (c *Client) World() *game.World {
	return c.world
}

// TickRate returns the server's expected tick interval.
func (c *Client) TickRate() time.Duration {
	return c.tickRate
}

// State returns the session's current lifecycle state.
func (c *Client) State() State {
	return c.state
}

// Register performs the handshake over the given connection: exactly one
// register message out, exactly one reply in, no retries. On success the
// session is Active and holds the assigned player ID and world. Any
// failure leaves the session Terminated.
func Register(conn *network.Connection, name string) (*Client, error) {
	c := &Client{conn: conn, state: StateRegistering}

	b, err := messages.Encode(messages.NewRegister(name))
	if err != nil {
		c.state = StateTerminated
		return c, err
	}
	log.Debug("Sending registration for %s", name)
	if err := conn.SendLine(b); err != nil {
		c.state = StateTerminated
		return c, err
	}

	line, err := conn.ReceiveLine()
	if err != nil {
		c.state = StateTerminated
		return c, err
	}
	msg, err := messages.DecodeServer(line)
	if err != nil {
		c.state = StateTerminated
		return c, err
	}

	switch m := msg.(type) {
	case *messages.Registration:
		if m.World == nil {
			c.state = StateTerminated
			return c, &messages.ErrInvalidMessage{Reason: "registration has no world", Line: string(line)}
		}
		c.id = m.Player
		c.world = m.World
		c.tickRate = time.Duration(m.TickRate * float64(time.Second))
		c.state = StateActive
		log.Info("Registered as player %d", c.id)
		return c, nil
	case *messages.Error:
		c.state = StateTerminated
		return c, &ErrGame{Msg: m.Msg}
	case *messages.Done:
		c.state = StateTerminated
		return c, &ErrGame{Msg: "game already finished"}
	default:
		c.state = StateTerminated
		return c, &messages.ErrInvalidMessage{
			Reason: fmt.Sprintf("unexpected %s message during registration", msg.MessageType()),
			Line:   string(line),
		}
	}
}

// Run drives the update/move loop until the server ends the game or a
// fatal condition occurs. The loop is strictly lock-step: the moves for
// a round are sent before the next update is read, and there is never
// more than one outstanding read. A clean done returns nil; a server
// error returns *ErrGame; protocol violations and dropped connections
// return their respective errors. Cancelling the context closes the
// connection and returns the context's error.
func (c *Client) Run(ctx context.Context, step Strategy) error {
	if c.state != StateActive {
		return fmt.Errorf("cannot run session in state %s", c.state)
	}

	// Unblock a pending read when the context is cancelled.
	finished := make(chan struct{})
	defer close(finished)
	go func() {
		select {
		case <-ctx.Done():
			c.conn.Close()
		case <-finished:
		}
	}()

	for {
		line, err := c.conn.ReceiveLine()
		if err != nil {
			c.state = StateTerminated
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		msg, err := messages.DecodeServer(line)
		if err != nil {
			c.state = StateTerminated
			return err
		}

		switch m := msg.(type) {
		case *messages.Done:
			log.Info("Received finish signal")
			c.state = StateTerminated
			return nil
		case *messages.Warning:
			log.Warn("Server warning: %s", m.Msg)
		case *messages.Error:
			c.state = StateTerminated
			return &ErrGame{Msg: m.Msg}
		case *messages.Update:
			moves := step(c.id, c.world, &m.Data)
			b, err := messages.Encode(messages.NewMoves(moves))
			if err != nil {
				c.state = StateTerminated
				return err
			}
			log.Debug("Sending %d moves", len(moves))
			if err := c.conn.SendLine(b); err != nil {
				c.state = StateTerminated
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return err
			}
		default:
			c.state = StateTerminated
			return &messages.ErrInvalidMessage{
				Reason: fmt.Sprintf("unexpected %s message during play", msg.MessageType()),
				Line:   string(line),
			}
		}
	}
}

// Play connects to the server, registers under the given name, and runs
// the game with the given strategy. The connection is closed when the
// session ends.
func Play(ctx context.Context, name, host string, port int, step Strategy) error {
	conn, err := network.Dial(host, port)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := Register(conn, name)
	if err != nil {
		return err
	}
	return c.Run(ctx, step)
}
