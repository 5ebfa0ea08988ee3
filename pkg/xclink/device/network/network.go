package network

import (
	"context"
	"errors"
	"net"
	"sync"
	"time"

	"github.com/norasector/xclink/pkg/xclink/device"
)

// Device reads from a vehicle interface exposed over TCP. The connection is dialed on the first
// Read; once it fails the device is unusable and is not redialed.
type Device struct {
	addr        string
	dialTimeout time.Duration
	bufSize     int

	mu     sync.Mutex
	conn   net.Conn
	closed bool
}

type Option func(*Device)

func WithDialTimeout(d time.Duration) Option {
	return func(n *Device) {
		if d > 0 {
			n.dialTimeout = d
		}
	}
}

func WithBufferSize(size int) Option {
	return func(n *Device) {
		if size > 0 {
			n.bufSize = size
		}
	}
}

func NewDevice(addr string, opts ...Option) *Device {
	d := &Device{
		addr:        addr,
		dialTimeout: 5 * time.Second,
		bufSize:     64 * 1024,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Device) connect(ctx context.Context) (net.Conn, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil, net.ErrClosed
	}
	if d.conn != nil {
		return d.conn, nil
	}

	dialer := net.Dialer{Timeout: d.dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", d.addr)
	if err != nil {
		return nil, err
	}
	d.conn = conn
	return conn, nil
}

// Read applies timeout as a socket read deadline.
func (d *Device) Read(ctx context.Context, timeout time.Duration) ([]byte, error) {
	conn, err := d.connect(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, device.Unavailable(err)
	}

	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}
	if err := conn.SetReadDeadline(deadline); err != nil {
		return nil, device.Unavailable(err)
	}

	// Unblock the read when ctx is cancelled.
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetReadDeadline(time.Unix(1, 0))
	})
	defer stop()

	buf := make([]byte, d.bufSize)
	n, err := conn.Read(buf)
	if n > 0 {
		return buf[:n], nil
	}
	if err == nil {
		return nil, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return nil, nil
	}
	return nil, device.Unavailable(err)
}

func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	if d.conn == nil {
		return nil
	}
	return d.conn.Close()
}
