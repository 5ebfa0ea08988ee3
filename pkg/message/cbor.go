package message

import (
	"encoding/binary"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// CBOR decodes records encoded as a single CBOR map using the same keys consumers see:
// {"name", "value", "event"} for translated messages and {"bus", "id", "data"} for raw ones.
// A record with a "name" key is translated. Raw data may be an unsigned integer or a byte string
// of at most eight bytes, read big-endian.
type CBOR struct{}

type cborRecord struct {
	Name  *string     `cbor:"name"`
	Value interface{} `cbor:"value"`
	Event interface{} `cbor:"event"`
	Bus   *int32      `cbor:"bus"`
	ID    *uint32     `cbor:"id"`
	Data  interface{} `cbor:"data"`
}

func (CBOR) Name() string { return CodecCBOR }

func (CBOR) Decode(payload []byte) (Message, error) {
	var rec cborRecord
	if err := cbor.Unmarshal(payload, &rec); err != nil {
		return nil, decodeError("cbor: %v", err)
	}

	if rec.Name != nil {
		value, err := valueOf(rec.Value)
		if err != nil {
			return nil, decodeError("cbor value: %v", err)
		}
		event, err := valueOf(rec.Event)
		if err != nil {
			return nil, decodeError("cbor event: %v", err)
		}
		return &Translated{Name: *rec.Name, Value: value, Event: event}, nil
	}

	msg := &Raw{Bus: rec.Bus, MessageID: rec.ID}
	switch data := rec.Data.(type) {
	case nil:
	case uint64:
		msg.Data = &data
	case []byte:
		if len(data) > 8 {
			return nil, decodeError("cbor data: %d bytes", len(data))
		}
		var word [8]byte
		copy(word[8-len(data):], data)
		v := binary.BigEndian.Uint64(word[:])
		msg.Data = &v
	default:
		return nil, decodeError("cbor data: unsupported type %T", rec.Data)
	}
	return msg, nil
}

// Encode writes only the keys that are set. Zero values are kept.
func (CBOR) Encode(m Message) ([]byte, error) {
	rec := make(map[string]interface{}, 3)
	switch msg := m.(type) {
	case *Raw:
		if msg.Bus != nil {
			rec["bus"] = *msg.Bus
		}
		if msg.MessageID != nil {
			rec["id"] = *msg.MessageID
		}
		if msg.Data != nil {
			rec["data"] = *msg.Data
		}
	case *Translated:
		rec["name"] = msg.Name
		if msg.Value.IsSet() {
			rec["value"] = msg.Value.Interface()
		}
		if msg.Event.IsSet() {
			rec["event"] = msg.Event.Interface()
		}
	default:
		return nil, fmt.Errorf("cbor: cannot encode %T", m)
	}
	return cbor.Marshal(rec)
}
