package xclink

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go"
	"github.com/influxdata/influxdb-client-go/api"
	"github.com/rs/zerolog"

	"github.com/norasector/xclink/pkg/message"
	"github.com/norasector/xclink/pkg/stream"
	"github.com/norasector/xclink/pkg/util"
	"github.com/norasector/xclink/pkg/xclink/device"
)

// ErrCallbackPanic is returned by Source.Start when the consumer callback panics.
var ErrCallbackPanic = errors.New("consumer callback panicked")

// Callback receives every valid message. dataRemaining reports whether more bytes were already
// buffered when the message was extracted; it is a batching hint only.
//
// Callbacks run on the source's ingestion goroutine, so a slow callback stalls the source.
type Callback func(msg message.Message, dataRemaining bool)

// Source turns the byte stream of one Reader into validated messages.
type Source struct {
	name        string
	reader      device.Reader
	codec       message.Codec
	callback    Callback
	readTimeout time.Duration
	resync      bool
	maxPayload  uint64
	logger      zerolog.Logger
	writeAPI    api.WriteAPI

	buf *stream.Buffer

	bytesReceived     atomic.Uint64
	corruptedMessages atomic.Uint64
	state             atomic.Int32

	mu      sync.Mutex
	started bool
	stopped bool
	cancel  context.CancelFunc
}

type SourceOption func(s *Source) error

func WithCallback(cb Callback) SourceOption {
	return func(s *Source) error {
		s.callback = cb
		return nil
	}
}

func WithCodec(codec message.Codec) SourceOption {
	return func(s *Source) error {
		if codec == nil {
			return fmt.Errorf("nil codec")
		}
		s.codec = codec
		return nil
	}
}

// WithReadTimeout is handed to every Reader.Read call unchanged.
func WithReadTimeout(d time.Duration) SourceOption {
	return func(s *Source) error {
		if d < 0 {
			return fmt.Errorf("negative read timeout %s", d)
		}
		s.readTimeout = d
		return nil
	}
}

// WithResync keeps extracting frames from the current buffer after a payload fails to decode.
// By default extraction pauses until the next read.
func WithResync(resync bool) SourceOption {
	return func(s *Source) error {
		s.resync = resync
		return nil
	}
}

// WithMaxPayload treats length prefixes above n as corrupt instead of waiting for the payload.
func WithMaxPayload(n uint64) SourceOption {
	return func(s *Source) error {
		s.maxPayload = n
		return nil
	}
}

func WithLogger(logger zerolog.Logger) SourceOption {
	return func(s *Source) error {
		s.logger = logger
		return nil
	}
}

func WithInfluxDB(writeAPI api.WriteAPI) SourceOption {
	return func(s *Source) error {
		s.writeAPI = writeAPI
		return nil
	}
}

func NewSource(name string, reader device.Reader, opts ...SourceOption) (*Source, error) {
	if reader == nil {
		return nil, fmt.Errorf("source %s: nil reader", name)
	}
	s := &Source{
		name:     name,
		reader:   reader,
		codec:    message.Protobuf{},
		logger:   zerolog.Nop(),
		writeAPI: &util.MockWriteAPI{}, // overwritten with option
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("source %s: %w", name, err)
		}
	}
	s.logger = s.logger.With().Str("source", name).Logger()
	s.buf = stream.NewBuffer(stream.WithMaxPayload(s.maxPayload))
	return s, nil
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) State() State {
	return State(s.state.Load())
}

// Stats returns the current counters. They may trail a dispatch in flight.
func (s *Source) Stats() Stats {
	return Stats{
		Name:              s.name,
		State:             s.State(),
		BytesReceived:     s.bytesReceived.Load(),
		CorruptedMessages: s.corruptedMessages.Load(),
	}
}

// Stop asks a running Start to return. It is observed between read cycles and also cancels a
// read in progress. Stop before Start makes Start return context.Canceled at once.
func (s *Source) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	if s.cancel != nil {
		s.cancel()
	}
}

// Start runs the ingestion loop until ctx is done, Stop is called, the reader fails, or the
// callback panics. The source is stopped for good once Start returns; a reader failure is
// returned wrapped in device.ErrSourceUnavailable. The reader is not closed.
func (s *Source) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return fmt.Errorf("source %s already started", s.name)
	}
	s.started = true
	if s.stopped {
		s.mu.Unlock()
		s.state.Store(int32(StateStopped))
		return context.Canceled
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.mu.Unlock()

	defer s.cancel()
	defer s.state.Store(int32(StateStopped))

	s.logger.Info().Str("codec", s.codec.Name()).Dur("read_timeout", s.readTimeout).Msg("source running")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		data, err := s.reader.Read(ctx, s.readTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			err = device.Unavailable(err)
			s.logger.Warn().Err(err).Msg("can't read from source, stopping")
			return err
		}
		if len(data) == 0 {
			continue
		}

		s.buf.Append(data)
		cycle, err := s.drain()
		if err != nil {
			s.logger.Error().Err(err).Msg("stopping")
			return err
		}
		s.report(len(data), cycle, start)
	}
}

type cycleStats struct {
	frames     int
	noop       int
	dispatched int
	corrupted  int
}

// drain dispatches every complete frame currently buffered.
func (s *Source) drain() (cycleStats, error) {
	var cycle cycleStats
	for {
		frame, err := s.buf.Next()
		switch {
		case errors.Is(err, stream.ErrNoFrame):
			return cycle, nil
		case errors.Is(err, stream.ErrMalformedPrefix):
			s.corruptedMessages.Add(1)
			cycle.corrupted++
			s.logger.Debug().Err(err).Msg("dropping sentinel")
			continue
		case err != nil:
			return cycle, err
		}

		cycle.frames++
		if frame.Noop() {
			cycle.noop++
			continue
		}

		msg, err := s.codec.Decode(frame.Payload)
		if err != nil {
			s.corruptedMessages.Add(1)
			cycle.corrupted++
			s.logger.Warn().Err(err).Int("length", len(frame.Payload)).Msg("unable to decode payload")
			if s.resync {
				continue
			}
			return cycle, nil
		}

		if err := message.Validate(msg); err != nil {
			s.corruptedMessages.Add(1)
			cycle.corrupted++
			s.logger.Debug().Err(err).Msg("dropping message")
			continue
		}

		if err := s.dispatch(msg, len(frame.Payload)); err != nil {
			return cycle, err
		}
		cycle.dispatched++
	}
}

func (s *Source) dispatch(msg message.Message, payloadLen int) (err error) {
	s.bytesReceived.Add(uint64(payloadLen))
	if s.callback == nil {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrCallbackPanic, r)
		}
	}()
	s.callback(msg, s.buf.Len() > 0)
	return nil
}

func (s *Source) report(bytesRead int, cycle cycleStats, start time.Time) {
	go s.writeAPI.WritePoint(influxdb2.NewPoint("source.read",
		map[string]string{
			"source": s.name,
			"codec":  s.codec.Name(),
		},
		map[string]interface{}{
			"bytes_read": bytesRead,
			"frames":     cycle.frames,
			"noop":       cycle.noop,
			"dispatched": cycle.dispatched,
			"corrupted":  cycle.corrupted,
			"buffered":   s.buf.Len(),
			"duration":   time.Since(start).Microseconds(),
		}, start))
}
