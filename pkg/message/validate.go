package message

import (
	"errors"
	"fmt"
)

// ErrUnknownShape is returned by Validate for messages that carry neither {name, value} nor {id, data}.
var ErrUnknownShape = errors.New("message: unrecognized key set")

// Validate accepts a translated message with a name and a value, or a raw message with an id and
// data. Everything else is rejected with ErrUnknownShape.
func Validate(m Message) error {
	switch msg := m.(type) {
	case *Translated:
		if msg == nil {
			break
		}
		if msg.Name == "" {
			return fmt.Errorf("%w: translated message without a name", ErrUnknownShape)
		}
		if !msg.Value.IsSet() {
			return fmt.Errorf("%w: translated message %q without a value", ErrUnknownShape, msg.Name)
		}
		return nil
	case *Raw:
		if msg == nil {
			break
		}
		if msg.MessageID == nil || msg.Data == nil {
			return fmt.Errorf("%w: raw message needs both id and data", ErrUnknownShape)
		}
		return nil
	}
	return ErrUnknownShape
}
