// Package stream accumulates raw link bytes and cuts them into sentinel-delimited,
// varint length-prefixed frames.
package stream

import (
	"bytes"
	"errors"
	"io"

	"google.golang.org/protobuf/encoding/protowire"
)

// Buffer holds bytes that have been read from a link but not yet consumed as frames.
// Consumption only ever removes a prefix; bytes are never reordered.
//
// Consumed bytes are tracked with an offset into a reused backing slice, which is compacted
// lazily on Append. Payload slices returned by Next alias that backing slice and stay valid
// only until the next call to Append.
//
// A Buffer is not safe for concurrent use.
type Buffer struct {
	buf        []byte
	off        int
	maxPayload uint64
}

type Option func(b *Buffer)

// WithMaxPayload rejects prefixes declaring more than n payload bytes. Zero means unlimited.
func WithMaxPayload(n uint64) Option {
	return func(b *Buffer) {
		b.maxPayload = n
	}
}

// WithCapacity preallocates the backing slice.
func WithCapacity(n int) Option {
	return func(b *Buffer) {
		if n > 0 {
			b.buf = make([]byte, 0, n)
		}
	}
}

func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Append adds p to the tail of the buffer.
func (b *Buffer) Append(p []byte) {
	if b.off > 0 && b.off >= len(b.buf)-b.off {
		n := copy(b.buf, b.buf[b.off:])
		b.buf = b.buf[:n]
		b.off = 0
	}
	b.buf = append(b.buf, p...)
}

// Len returns the number of unconsumed bytes.
func (b *Buffer) Len() int {
	return len(b.buf) - b.off
}

// Bytes returns the unconsumed bytes. The slice aliases the buffer.
func (b *Buffer) Bytes() []byte {
	return b.buf[b.off:]
}

// Next extracts the first complete frame.
//
// It returns ErrNoFrame without touching the buffer when there is no sentinel, when the varint
// prefix runs past the end of the buffer, or when fewer payload bytes than declared are buffered.
// Otherwise everything up to and including the payload is consumed.
func (b *Buffer) Next() (Frame, error) {
	data := b.buf[b.off:]

	idx := bytes.IndexByte(data, Sentinel)
	if idx < 0 {
		return Frame{}, ErrNoFrame
	}

	length, n := protowire.ConsumeVarint(data[idx+1:])
	if n < 0 {
		if errors.Is(protowire.ParseError(n), io.ErrUnexpectedEOF) {
			return Frame{}, ErrNoFrame
		}
		b.consume(idx + 1)
		return Frame{}, ErrMalformedPrefix
	}
	if b.maxPayload > 0 && length > b.maxPayload {
		b.consume(idx + 1)
		return Frame{}, ErrMalformedPrefix
	}

	start := idx + 1 + n
	if length > uint64(len(data)-start) {
		return Frame{}, ErrNoFrame
	}
	end := start + int(length)

	frame := Frame{
		Payload:  data[start:end:end],
		Consumed: end,
	}
	b.consume(end)
	return frame, nil
}

func (b *Buffer) consume(n int) {
	b.off += n
	if b.off == len(b.buf) {
		b.buf = b.buf[:0]
		b.off = 0
	}
}
