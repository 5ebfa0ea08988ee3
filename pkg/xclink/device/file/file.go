package file

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/norasector/xclink/pkg/xclink/device"
)

// FileDevice replays a recorded byte trace, or reads a character device such as a serial tty,
// in chunks of at most readSize bytes. End of file is a permanent failure.
type FileDevice struct {
	readFile    io.ReadCloser
	readSize    int
	timeBetween time.Duration
	tick        *time.Ticker
}

// NewFileDevice opens file for reading. A non-zero timeBetween paces reads, which is useful to
// replay a capture at roughly its original rate.
func NewFileDevice(file string, readSize int, timeBetween time.Duration) (*FileDevice, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	return NewReaderDevice(f, readSize, timeBetween), nil
}

func NewReaderDevice(r io.ReadCloser, readSize int, timeBetween time.Duration) *FileDevice {
	if readSize <= 0 {
		readSize = 4096
	}
	d := &FileDevice{
		readFile:    r,
		readSize:    readSize,
		timeBetween: timeBetween,
	}
	if timeBetween > 0 {
		d.tick = time.NewTicker(timeBetween)
	}
	return d
}

// Read ignores timeout: a file read does not block long enough to need one.
func (f *FileDevice) Read(ctx context.Context, _ time.Duration) ([]byte, error) {
	if f.tick != nil {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-f.tick.C:
		}
	}

	buf := make([]byte, f.readSize)
	n, err := f.readFile.Read(buf)
	if n > 0 {
		return buf[:n], nil
	}
	if err != nil {
		return nil, device.Unavailable(err)
	}
	return nil, nil
}

func (f *FileDevice) Close() error {
	if f.tick != nil {
		f.tick.Stop()
	}
	return f.readFile.Close()
}
