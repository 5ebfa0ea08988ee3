package xclink

import "fmt"

// State is the lifecycle state of a Source. A source starts out running and, once stopped,
// never runs again.
type State int32

const (
	StateRunning State = iota
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Stats is a snapshot of a source's accounting counters.
type Stats struct {
	Name              string `json:"name"`
	State             State  `json:"state"`
	BytesReceived     uint64 `json:"bytes_received"`
	CorruptedMessages uint64 `json:"corrupted_messages"`
}
