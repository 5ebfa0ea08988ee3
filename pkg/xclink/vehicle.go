package xclink

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go"
	"github.com/influxdata/influxdb-client-go/api"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/norasector/xclink/pkg/message"
	"github.com/norasector/xclink/pkg/util"
	"github.com/norasector/xclink/pkg/xclink/device"
)

// Output handles dispatched envelopes.
type Output interface {
	// Start receives a context and should run in a loop, terminating upon ctx closing or on any errors.
	Start(ctx context.Context) error
	// Receive returns a channel that receives envelopes. Full channels are skipped, never waited on.
	Receive() chan<- *message.Envelope
}

// Listener is called synchronously for every envelope, from the goroutine of the source that
// produced it. Listeners must be safe for use by several sources at once.
type Listener func(env *message.Envelope)

// Vehicle runs a set of independent sources and fans their messages out to outputs.
type Vehicle struct {
	sources   []*Source
	outputs   []Output
	listeners []Listener
	writeAPI  api.WriteAPI
	logger    zerolog.Logger

	mu      sync.Mutex
	started bool
}

type VehicleOption func(v *Vehicle) error

func WithOutput(output Output) VehicleOption {
	return func(v *Vehicle) error {
		if output == nil {
			return fmt.Errorf("nil output")
		}
		v.outputs = append(v.outputs, output)
		return nil
	}
}

func WithListener(l Listener) VehicleOption {
	return func(v *Vehicle) error {
		v.listeners = append(v.listeners, l)
		return nil
	}
}

func WithVehicleLogger(logger zerolog.Logger) VehicleOption {
	return func(v *Vehicle) error {
		v.logger = logger
		return nil
	}
}

func WithVehicleInfluxDB(writeAPI api.WriteAPI) VehicleOption {
	return func(v *Vehicle) error {
		v.writeAPI = writeAPI
		return nil
	}
}

func NewVehicle(opts ...VehicleOption) (*Vehicle, error) {
	v := &Vehicle{
		writeAPI: &util.MockWriteAPI{}, // overwritten with option
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// AddSource creates a source reading from reader whose messages are published by the vehicle.
// The vehicle's logger and metrics are applied first so opts can override them. Sources must be
// added before Start.
func (v *Vehicle) AddSource(name string, reader device.Reader, opts ...SourceOption) (*Source, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.started {
		return nil, fmt.Errorf("vehicle already started")
	}
	for _, s := range v.sources {
		if s.Name() == name {
			return nil, fmt.Errorf("duplicate source name %q", name)
		}
	}

	all := []SourceOption{WithLogger(v.logger), WithInfluxDB(v.writeAPI)}
	all = append(all, opts...)
	all = append(all, WithCallback(func(msg message.Message, dataRemaining bool) {
		v.publish(&message.Envelope{
			Source:        name,
			Timestamp:     time.Now().UTC(),
			Message:       msg,
			DataRemaining: dataRemaining,
		})
	}))

	src, err := NewSource(name, reader, all...)
	if err != nil {
		return nil, err
	}
	v.sources = append(v.sources, src)
	return src, nil
}

func (v *Vehicle) Sources() []*Source {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]*Source(nil), v.sources...)
}

// Stats returns a snapshot for every source, in the order they were added.
func (v *Vehicle) Stats() []Stats {
	sources := v.Sources()
	stats := make([]Stats, 0, len(sources))
	for _, s := range sources {
		stats = append(stats, s.Stats())
	}
	return stats
}

func (v *Vehicle) publish(env *message.Envelope) {
	for _, l := range v.listeners {
		l(env)
	}
	if len(v.outputs) == 0 {
		return
	}

	skippedOutputs := 0
	duration := util.TimeOperationMicroseconds(func() {
		for _, output := range v.outputs {
			select {
			case output.Receive() <- env:
				// We will not wait on blocked channels.
			default:
				skippedOutputs++
			}
		}
	})

	go v.writeAPI.WritePoint(influxdb2.NewPoint("vehicle.output",
		map[string]string{
			"source": env.Source,
			"kind":   env.Message.Kind().String(),
		},
		map[string]interface{}{
			"outputs":         len(v.outputs),
			"skipped_outputs": skippedOutputs,
			"duration":        duration,
		}, env.Timestamp))
}

// Start runs every source and output until ctx is done or every source has stopped. A source
// whose reader fails is logged and does not affect the others; any other source or output error
// stops the vehicle.
func (v *Vehicle) Start(ctx context.Context) error {
	v.mu.Lock()
	if v.started {
		v.mu.Unlock()
		return fmt.Errorf("vehicle already started")
	}
	v.started = true
	v.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	outputs, outCtx := errgroup.WithContext(runCtx)
	for _, output := range v.outputs {
		thisOutput := output
		outputs.Go(func() error {
			return thisOutput.Start(outCtx)
		})
	}

	sources, srcCtx := errgroup.WithContext(outCtx)
	for _, src := range v.sources {
		thisSource := src
		sources.Go(func() error {
			err := thisSource.Start(srcCtx)
			if errors.Is(err, device.ErrSourceUnavailable) {
				v.logger.Warn().Str("source", thisSource.Name()).Err(err).Msg("source stopped")
				return nil
			}
			return err
		})
	}

	v.logger.Info().Int("sources", len(v.sources)).Int("outputs", len(v.outputs)).Msg("Starting")

	srcErr := sources.Wait()
	cancel()
	outErr := outputs.Wait()

	if outErr != nil && !errors.Is(outErr, context.Canceled) {
		return outErr
	}
	if srcErr != nil {
		return srcErr
	}
	return ctx.Err()
}
