package messages

import (
	"encoding/json"
	"fmt"
)

// Encode serializes a message as a single compact JSON object with no
// embedded newlines, ready for line framing.
func Encode(m Message) ([]byte, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s message: %v", m.MessageType(), err)
	}
	return b, nil
}

// DecodeServer decodes one wire line sent by the server. It dispatches
// on the type discriminant and returns the concrete message. Lines that
// are not valid JSON, or whose discriminant is not a server message
// kind, return *ErrInvalidMessage.
func DecodeServer(line []byte) (Message, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(line, &probe); err != nil {
		return nil, &ErrInvalidMessage{Reason: "not a JSON object", Line: string(line)}
	}

	var msg Message
	switch probe.Type {
	case MessageTypeRegistration:
		msg = &Registration{}
	case MessageTypeUpdate:
		msg = &Update{}
	case MessageTypeWarning:
		msg = &Warning{}
	case MessageTypeError:
		msg = &Error{}
	case MessageTypeDone:
		msg = &Done{}
	default:
		return nil, &ErrInvalidMessage{
			Reason: fmt.Sprintf("unknown message type %q", probe.Type),
			Line:   string(line),
		}
	}

	if err := json.Unmarshal(line, msg); err != nil {
		return nil, &ErrInvalidMessage{
			Reason: fmt.Sprintf("failed to decode %s message: %v", probe.Type, err),
			Line:   string(line),
		}
	}
	return msg, nil
}
