package message

import (
	"errors"
	"math"
	"testing"
)

func TestMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
		want string
	}{
		{"translated", &Translated{Name: "speed", Value: NumericValue(42)}, `{"name":"speed","value":42}`},
		{"translated event", &Translated{Name: "door_status", Value: StringValue("driver"), Event: BooleanValue(false)},
			`{"event":false,"name":"door_status","value":"driver"}`},
		{"raw", NewRaw(1, 256, 0xDEADBEEF), `{"bus":1,"data":"0xdeadbeef","id":256}`},
		{"raw without bus", &Raw{MessageID: u32(0x10), Data: u64(0xff)}, `{"data":"0xff","id":16}`},
		{"nan value", &Translated{Name: "speed", Value: NumericValue(math.NaN())}, `{"name":"speed","value":"NaN"}`},
		{"infinite value and event", &Translated{Name: "torque", Value: NumericValue(math.Inf(1)), Event: NumericValue(math.Inf(-1))},
			`{"event":"-Inf","name":"torque","value":"+Inf"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := tt.msg.MarshalJSON()
			if err != nil {
				t.Fatalf("MarshalJSON() error = %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("MarshalJSON() = %s, want %s", b, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		msg     Message
		wantErr bool
	}{
		{"name and value", &Translated{Name: "speed", Value: NumericValue(0)}, false},
		{"boolean false is a value", &Translated{Name: "brake", Value: BooleanValue(false)}, false},
		{"name without value", &Translated{Name: "speed"}, true},
		{"event without value", &Translated{Name: "speed", Event: StringValue("x")}, true},
		{"value without name", &Translated{Value: NumericValue(1)}, true},
		{"id and data", &Raw{MessageID: u32(1), Data: u64(0)}, false},
		{"id without data", &Raw{MessageID: u32(1)}, true},
		{"data without id", &Raw{Bus: i32(1), Data: u64(1)}, true},
		{"nil translated", (*Translated)(nil), true},
		{"nil raw", (*Raw)(nil), true},
		{"nil", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.msg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnknownShape) {
				t.Errorf("Validate() error = %v, want ErrUnknownShape", err)
			}
		})
	}
}

func TestCodecByName(t *testing.T) {
	for name, want := range map[string]string{"": CodecProtobuf, "protobuf": CodecProtobuf, "cbor": CodecCBOR} {
		c, err := CodecByName(name)
		if err != nil {
			t.Fatalf("CodecByName(%q) error = %v", name, err)
		}
		if c.Name() != want {
			t.Errorf("CodecByName(%q) = %s, want %s", name, c.Name(), want)
		}
	}
	if _, err := CodecByName("json"); err == nil {
		t.Errorf("CodecByName(json) expected error")
	}
}

func i32(v int32) *int32   { return &v }
func u32(v uint32) *uint32 { return &v }
func u64(v uint64) *uint64 { return &v }
