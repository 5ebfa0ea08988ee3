package mock

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/norasector/xclink/pkg/message"
	"github.com/norasector/xclink/pkg/stream"
	"github.com/norasector/xclink/pkg/xclink/device"
)

const (
	speedBaseKph      = 60.0
	speedAmplitudeKph = 40.0
	speedFreqHz       = 0.05

	rpmBase      = 2000.0
	rpmAmplitude = 1200.0
	rpmFreqHz    = 0.11

	pedalAmplitude = 50.0
	pedalFreqHz    = 0.07

	rawMessageID = 0x7E8
)

var errExhausted = errors.New("mock: batch limit reached")

// Device produces a synthetic vehicle link: every tick it emits one framed batch holding a
// few translated signals and a raw diagnostic frame, encoded with codec.
type Device struct {
	codec    message.Codec
	interval time.Duration
	limit    int
	bus      int32

	ticker *time.Ticker
	start  time.Time
	seq    uint64
	sent   int
}

type Option func(*Device)

// WithLimit makes the device fail permanently after n batches.
func WithLimit(n int) Option {
	return func(d *Device) {
		d.limit = n
	}
}

func WithBus(bus int32) Option {
	return func(d *Device) {
		d.bus = bus
	}
}

func NewDevice(codec message.Codec, hz int, opts ...Option) *Device {
	if hz <= 0 {
		hz = 10
	}
	d := &Device{
		codec:    codec,
		interval: time.Second / time.Duration(hz),
		bus:      1,
		start:    time.Now(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.ticker = time.NewTicker(d.interval)
	return d
}

func (d *Device) Read(ctx context.Context, timeout time.Duration) ([]byte, error) {
	if d.limit > 0 && d.sent >= d.limit {
		return nil, device.Unavailable(errExhausted)
	}

	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-expired:
		return nil, nil
	case <-d.ticker.C:
	}

	out, err := d.batch(time.Since(d.start).Seconds())
	if err != nil {
		return nil, device.Unavailable(err)
	}
	d.sent++
	return out, nil
}

func (d *Device) batch(t float64) ([]byte, error) {
	msgs := []message.Message{
		&message.Translated{
			Name:  "vehicle_speed",
			Value: message.NumericValue(speedBaseKph + speedAmplitudeKph*math.Sin(2*math.Pi*speedFreqHz*t)),
		},
		&message.Translated{
			Name:  "engine_speed",
			Value: message.NumericValue(math.Round(rpmBase + rpmAmplitude*math.Sin(2*math.Pi*rpmFreqHz*t))),
		},
		&message.Translated{
			Name:  "accelerator_pedal_position",
			Value: message.NumericValue(math.Abs(pedalAmplitude * math.Sin(2*math.Pi*pedalFreqHz*t))),
		},
		message.NewRaw(d.bus, rawMessageID, d.seq),
	}
	if d.seq%10 == 0 {
		msgs = append(msgs, &message.Translated{
			Name:  "door_status",
			Value: message.StringValue("driver"),
			Event: message.BooleanValue(d.seq%20 == 0),
		})
	}
	d.seq++

	var out []byte
	for _, m := range msgs {
		payload, err := d.codec.Encode(m)
		if err != nil {
			return nil, err
		}
		out = stream.AppendFrame(out, payload)
	}
	return out, nil
}

func (d *Device) Close() error {
	d.ticker.Stop()
	return nil
}
