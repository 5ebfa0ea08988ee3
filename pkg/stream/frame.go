package stream

import (
	"errors"

	"google.golang.org/protobuf/encoding/protowire"
)

// Sentinel marks the start of every frame on the wire.
const Sentinel byte = 0x00

var (
	// ErrNoFrame reports that no complete frame is buffered yet. The buffer is left untouched.
	ErrNoFrame = errors.New("stream: no complete frame buffered")
	// ErrMalformedPrefix reports a length prefix that can never complete (varint overflow or a
	// declared length above the configured maximum). The offending sentinel has been discarded.
	ErrMalformedPrefix = errors.New("stream: malformed length prefix")
)

// Frame is a payload cut out of the buffer together with the number of buffered bytes it used
// (any leading garbage, the sentinel, the varint prefix and the payload itself).
type Frame struct {
	Payload  []byte
	Consumed int
}

// Noop reports whether the frame is too short to carry a record. Such frames are consumed but
// never decoded.
func (f Frame) Noop() bool {
	return len(f.Payload) <= 1
}

// AppendFrame appends payload to dst wrapped in a sentinel and varint length prefix.
func AppendFrame(dst, payload []byte) []byte {
	dst = append(dst, Sentinel)
	dst = protowire.AppendVarint(dst, uint64(len(payload)))
	return append(dst, payload...)
}
