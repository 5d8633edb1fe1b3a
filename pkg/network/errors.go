package network

// ErrConnectionDropped is returned when the server closes the stream
// before a full line arrives. This is the only disconnect signal in the
// protocol; there is no heartbeat.
type ErrConnectionDropped struct{}

func (e *ErrConnectionDropped) Error() string {
	return "connection dropped"
}

// ErrConnectionClosed is returned when the connection was closed on this
// side, typically by a cancelled session.
type ErrConnectionClosed struct{}

func (e *ErrConnectionClosed) Error() string {
	return "connection closed by client"
}
