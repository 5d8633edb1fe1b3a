package network

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
)

// Connection wraps a single TCP connection to the game server and frames
// messages as newline-terminated UTF-8 lines. A Connection is owned by
// exactly one session and is not safe for concurrent use.
type Connection struct {
	conn   net.Conn
	reader *bufio.Reader
}

// Dial opens a TCP connection to the given host and port.
func Dial(host string, port int) (*Connection, error) {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server at %s: %v", addr, err)
	}
	return NewConnection(conn), nil
}

// NewConnection wraps an already-established connection.
func NewConnection(conn net.Conn) *Connection {
	return &Connection{
		conn:   conn,
		reader: bufio.NewReader(conn),
	}
}

// SendLine writes the message followed by a newline terminator. The
// write either completes in full or fails; nothing is buffered across
// calls.
func (c *Connection) SendLine(msg []byte) error {
	buf := make([]byte, 0, len(msg)+1)
	buf = append(buf, msg...)
	buf = append(buf, '\n')
	if _, err := c.conn.Write(buf); err != nil {
		if isClosedConn(err) {
			return &ErrConnectionClosed{}
		}
		return fmt.Errorf("failed to write to connection: %v", err)
	}
	return nil
}

// ReceiveLine blocks until one newline-terminated line is available and
// returns it without the terminator. If the server closes the stream
// before sending a full line it returns *ErrConnectionDropped.
func (c *Connection) ReceiveLine() ([]byte, error) {
	line, err := c.reader.ReadBytes('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ErrConnectionDropped{}
		}
		if isClosedConn(err) {
			return nil, &ErrConnectionClosed{}
		}
		return nil, fmt.Errorf("failed to read from connection: %v", err)
	}
	return bytes.TrimSuffix(line, []byte("\n")), nil
}

// Close closes the underlying connection, unblocking any pending read.
func (c *Connection) Close() error {
	return c.conn.Close()
}

func isClosedConn(err error) bool {
	return errors.Is(err, net.ErrClosed) || errors.Is(err, io.ErrClosedPipe)
}
