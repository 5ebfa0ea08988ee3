// Package message holds the two record shapes carried on a vehicle interface link and the
// codecs that turn frame payloads into them.
package message

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

type Kind int

const (
	KindRaw Kind = iota + 1
	KindTranslated
)

func (k Kind) String() string {
	switch k {
	case KindRaw:
		return "raw"
	case KindTranslated:
		return "translated"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Message is a decoded record: either *Raw or *Translated.
type Message interface {
	Kind() Kind
	// Fields renders the message as a flat key/value set, e.g. {name, value, event} or
	// {bus, id, data}. Absent optional fields are left out.
	Fields() map[string]interface{}
	json.Marshaler

	sealed()
}

// Raw is an undecoded bus frame.
type Raw struct {
	Bus       *int32
	MessageID *uint32
	Data      *uint64
}

// NewRaw returns a Raw with all fields set.
func NewRaw(bus int32, id uint32, data uint64) *Raw {
	return &Raw{Bus: &bus, MessageID: &id, Data: &data}
}

func (r *Raw) Kind() Kind { return KindRaw }

func (r *Raw) Fields() map[string]interface{} {
	fields := make(map[string]interface{}, 3)
	if r.Bus != nil {
		fields["bus"] = *r.Bus
	}
	if r.MessageID != nil {
		fields["id"] = *r.MessageID
	}
	if r.Data != nil {
		fields["data"] = FormatData(*r.Data)
	}
	return fields
}

func (r *Raw) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Fields())
}

func (r *Raw) sealed() {}

// FormatData renders a raw data word the way it is shown to consumers: lowercase hex, 0x prefix,
// no padding.
func FormatData(data uint64) string {
	return fmt.Sprintf("0x%x", data)
}

// Translated is a named signal with an optional value and an optional event annotation.
type Translated struct {
	Name  string
	Value Value
	Event Value
}

func (t *Translated) Kind() Kind { return KindTranslated }

func (t *Translated) Fields() map[string]interface{} {
	fields := map[string]interface{}{"name": t.Name}
	if t.Value.IsSet() {
		fields["value"] = renderValue(t.Value)
	}
	if t.Event.IsSet() {
		fields["event"] = renderValue(t.Event)
	}
	return fields
}

// renderValue keeps Fields encodable as JSON: NaN and infinities become "NaN", "+Inf" and "-Inf".
func renderValue(v Value) interface{} {
	if n, ok := v.AsNumeric(); ok && (math.IsNaN(n) || math.IsInf(n, 0)) {
		return strconv.FormatFloat(n, 'g', -1, 64)
	}
	return v.Interface()
}

func (t *Translated) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Fields())
}

func (t *Translated) sealed() {}

// Envelope is a dispatched message together with where and when it was received.
type Envelope struct {
	Source        string
	Timestamp     time.Time
	Message       Message
	DataRemaining bool
}
