package message

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers from openxcpb/openxc.proto, for hand-built payloads.
const (
	vehicleTypeField       protowire.Number = 1
	vehicleRawField        protowire.Number = 2
	vehicleTranslatedField protowire.Number = 3

	vehicleTypeRaw        uint64 = 1
	vehicleTypeTranslated uint64 = 2

	rawBusField       protowire.Number = 1
	rawMessageIDField protowire.Number = 2
	rawDataField      protowire.Number = 3

	translatedNameField           protowire.Number = 1
	translatedNumericalValueField protowire.Number = 2
	translatedStringValueField    protowire.Number = 3
	translatedBooleanValueField   protowire.Number = 4
	translatedNumericalEventField protowire.Number = 5
	translatedStringEventField    protowire.Number = 6
)

func vehicleMessage(typ uint64, field protowire.Number, inner []byte) []byte {
	b := protowire.AppendTag(nil, vehicleTypeField, protowire.VarintType)
	b = protowire.AppendVarint(b, typ)
	b = protowire.AppendTag(b, field, protowire.BytesType)
	return protowire.AppendBytes(b, inner)
}

func appendDouble(b []byte, num protowire.Number, v float64) []byte {
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, math.Float64bits(v))
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func negativeVarint(v int64) uint64 {
	return uint64(v)
}

func TestProtobufDecode(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		want    map[string]interface{}
	}{
		{
			name: "translated numeric",
			payload: vehicleMessage(vehicleTypeTranslated, vehicleTranslatedField,
				appendDouble(appendString(nil, translatedNameField, "speed"), translatedNumericalValueField, 42.0)),
			want: map[string]interface{}{"name": "speed", "value": 42.0},
		},
		{
			name: "raw",
			payload: vehicleMessage(vehicleTypeRaw, vehicleRawField,
				appendVarint(appendVarint(appendVarint(nil, rawBusField, 1), rawMessageIDField, 256), rawDataField, 0xDEADBEEF)),
			want: map[string]interface{}{"bus": int32(1), "id": uint32(256), "data": "0xdeadbeef"},
		},
		{
			name: "raw without type defaults to raw",
			payload: func() []byte {
				b := protowire.AppendTag(nil, vehicleRawField, protowire.BytesType)
				return protowire.AppendBytes(b, appendVarint(appendVarint(nil, rawMessageIDField, 0x80), rawDataField, 0))
			}(),
			want: map[string]interface{}{"id": uint32(0x80), "data": "0x0"},
		},
		{
			name: "negative bus",
			payload: vehicleMessage(vehicleTypeRaw, vehicleRawField,
				appendVarint(nil, rawBusField, negativeVarint(-2))),
			want: map[string]interface{}{"bus": int32(-2)},
		},
		{
			name: "numeric wins over string regardless of order",
			payload: vehicleMessage(vehicleTypeTranslated, vehicleTranslatedField,
				appendDouble(appendString(appendString(nil, translatedNameField, "gear"), translatedStringValueField, "third"),
					translatedNumericalValueField, 3)),
			want: map[string]interface{}{"name": "gear", "value": 3.0},
		},
		{
			name: "boolean value with string event",
			payload: vehicleMessage(vehicleTypeTranslated, vehicleTranslatedField,
				appendString(appendVarint(appendString(nil, translatedNameField, "door_status"), translatedBooleanValueField, 1),
					translatedStringEventField, "driver")),
			want: map[string]interface{}{"name": "door_status", "value": true, "event": "driver"},
		},
		{
			name: "numeric event",
			payload: vehicleMessage(vehicleTypeTranslated, vehicleTranslatedField,
				appendDouble(appendString(appendString(nil, translatedNameField, "button_event"), translatedStringValueField, "left"),
					translatedNumericalEventField, 1)),
			want: map[string]interface{}{"name": "button_event", "value": "left", "event": 1.0},
		},
		{
			name: "unknown fields are skipped",
			payload: func() []byte {
				b := appendVarint(nil, 15, 99)
				b = append(b, vehicleMessage(vehicleTypeTranslated, vehicleTranslatedField,
					appendVarint(appendString(appendDouble(nil, 12, 1.5), translatedNameField, "ignition"), translatedBooleanValueField, 0))...)
				return appendString(b, 16, "trailer")
			}(),
			want: map[string]interface{}{"name": "ignition", "value": false},
		},
		{
			name: "known field with unexpected wire type is ignored",
			payload: vehicleMessage(vehicleTypeRaw, vehicleRawField,
				appendString(appendVarint(appendVarint(nil, rawMessageIDField, 0x7E8), rawDataField, 0xAB), rawBusField, "can0")),
			want: map[string]interface{}{"id": uint32(0x7E8), "data": "0xab"},
		},
		{
			name: "translated field with unexpected wire type is ignored",
			payload: func() []byte {
				b := vehicleMessage(vehicleTypeRaw, vehicleRawField,
					appendVarint(appendVarint(nil, rawMessageIDField, 1), rawDataField, 2))
				return appendVarint(b, vehicleTranslatedField, 9)
			}(),
			want: map[string]interface{}{"id": uint32(1), "data": "0x2"},
		},
		{
			name: "unrecognized type reads as raw",
			payload: vehicleMessage(7, vehicleRawField,
				appendVarint(appendVarint(nil, rawMessageIDField, 0x100), rawDataField, 0xFF)),
			want: map[string]interface{}{"id": uint32(0x100), "data": "0xff"},
		},
		{
			name: "repeated embedded messages merge",
			payload: func() []byte {
				b := vehicleMessage(vehicleTypeRaw, vehicleRawField, appendVarint(nil, rawMessageIDField, 5))
				b = protowire.AppendTag(b, vehicleRawField, protowire.BytesType)
				return protowire.AppendBytes(b, appendVarint(nil, rawDataField, 6))
			}(),
			want: map[string]interface{}{"id": uint32(5), "data": "0x6"},
		},
		{
			name:    "translated type without a translated message",
			payload: appendVarint(nil, vehicleTypeField, vehicleTypeTranslated),
			want:    map[string]interface{}{"name": ""},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Protobuf{}.Decode(tt.payload)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if !reflect.DeepEqual(got.Fields(), tt.want) {
				t.Errorf("Decode() = %v, want %v", got.Fields(), tt.want)
			}
		})
	}
}

func TestProtobufDecodeErrors(t *testing.T) {
	translated := vehicleMessage(vehicleTypeTranslated, vehicleTranslatedField,
		appendDouble(appendString(nil, translatedNameField, "speed"), translatedNumericalValueField, 42.0))

	tests := []struct {
		name    string
		payload []byte
	}{
		{"truncated", translated[:len(translated)-3]},
		{"bad tag", []byte{0x00, 0x01}},
		{"truncated embedded message", vehicleMessage(vehicleTypeRaw, vehicleRawField, []byte{0x08})},
		{"garbage", []byte{0xFF, 0xFF, 0xFF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := (Protobuf{}).Decode(tt.payload); !errors.Is(err, ErrDecode) {
				t.Errorf("Decode() error = %v, want ErrDecode", err)
			}
		})
	}
}

func TestProtobufEncodeDecode(t *testing.T) {
	msgs := []Message{
		NewRaw(2, 0x7E8, 0x0102030405060708),
		&Translated{Name: "speed", Value: NumericValue(88.5)},
		&Translated{Name: "door_status", Value: StringValue("driver"), Event: BooleanValue(true)},
		NewRaw(-3, 0, 0),
		&Translated{Name: "brake_pedal_status", Value: BooleanValue(false), Event: NumericValue(0)},
	}
	for _, m := range msgs {
		b, err := Protobuf{}.Encode(m)
		if err != nil {
			t.Fatalf("Encode(%v) error = %v", m.Fields(), err)
		}
		got, err := Protobuf{}.Decode(b)
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		if !reflect.DeepEqual(got.Fields(), m.Fields()) {
			t.Errorf("Decode(Encode()) = %v, want %v", got.Fields(), m.Fields())
		}
	}
}
