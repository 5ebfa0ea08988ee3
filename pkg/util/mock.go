package util

import (
	"sync"

	"github.com/influxdata/influxdb-client-go/api/write"
)

// MockWriteAPI stands in for an InfluxDB write API when no database is configured. It keeps the
// points it is handed so tests can inspect them.
type MockWriteAPI struct {
	mu     sync.Mutex
	points []*write.Point
	record bool
}

// NewRecordingWriteAPI returns a MockWriteAPI that retains every point written to it.
func NewRecordingWriteAPI() *MockWriteAPI {
	return &MockWriteAPI{record: true}
}

func (m *MockWriteAPI) WriteRecord(line string) {}

func (m *MockWriteAPI) WritePoint(point *write.Point) {
	if !m.record {
		return
	}
	m.mu.Lock()
	m.points = append(m.points, point)
	m.mu.Unlock()
}

// Points returns the recorded points whose measurement is name.
func (m *MockWriteAPI) Points(name string) []*write.Point {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*write.Point
	for _, p := range m.points {
		if p.Name() == name {
			out = append(out, p)
		}
	}
	return out
}

func (m *MockWriteAPI) Flush() {}

func (m *MockWriteAPI) Close() {}

func (m *MockWriteAPI) Errors() <-chan error { return nil }
