package message

import (
	"errors"
	"fmt"
)

// ErrDecode wraps every payload decoding failure.
var ErrDecode = errors.New("message: decode failed")

// Codec converts between frame payloads and messages.
type Codec interface {
	Name() string
	Decode(payload []byte) (Message, error)
	Encode(m Message) ([]byte, error)
}

const (
	CodecProtobuf = "protobuf"
	CodecCBOR     = "cbor"
)

// CodecByName returns the codec registered under name. An empty name selects protobuf.
func CodecByName(name string) (Codec, error) {
	switch name {
	case "", CodecProtobuf:
		return Protobuf{}, nil
	case CodecCBOR:
		return CBOR{}, nil
	default:
		return nil, fmt.Errorf("unknown codec %q", name)
	}
}

func decodeError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrDecode, fmt.Sprintf(format, args...))
}
