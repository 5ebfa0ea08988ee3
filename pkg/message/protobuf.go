package message

import (
	"fmt"

	"google.golang.org/protobuf/proto"

	"github.com/norasector/xclink/pkg/message/openxcpb"
)

// Protobuf decodes the binary VehicleMessage format defined in openxcpb/openxc.proto.
//
// Any type other than TRANSLATED, including a missing or unrecognized one, is read as RAW.
// Fields that are unknown or carry an unexpected wire type are ignored.
type Protobuf struct{}

func (Protobuf) Name() string { return CodecProtobuf }

func (Protobuf) Decode(payload []byte) (Message, error) {
	var vm openxcpb.VehicleMessage
	if err := proto.Unmarshal(payload, &vm); err != nil {
		return nil, decodeError("protobuf: %v", err)
	}

	if vm.GetType() == openxcpb.VehicleMessage_TRANSLATED {
		return fromTranslatedMessage(vm.GetTranslatedMessage()), nil
	}
	return fromRawMessage(vm.GetRawMessage()), nil
}

func fromRawMessage(rm *openxcpb.RawMessage) *Raw {
	if rm == nil {
		return &Raw{}
	}
	return &Raw{Bus: rm.Bus, MessageID: rm.MessageId, Data: rm.Data}
}

func fromTranslatedMessage(tm *openxcpb.TranslatedMessage) *Translated {
	if tm == nil {
		return &Translated{}
	}
	return &Translated{
		Name:  tm.GetName(),
		Value: pickValue(tm.NumericalValue, tm.BooleanValue, tm.StringValue),
		Event: pickValue(tm.NumericalEvent, tm.BooleanEvent, tm.StringEvent),
	}
}

func pickValue(num *float64, b *bool, s *string) Value {
	switch {
	case num != nil:
		return NumericValue(*num)
	case b != nil:
		return BooleanValue(*b)
	case s != nil:
		return StringValue(*s)
	default:
		return Value{}
	}
}

func (Protobuf) Encode(m Message) ([]byte, error) {
	var vm openxcpb.VehicleMessage
	switch msg := m.(type) {
	case *Raw:
		vm.Type = openxcpb.VehicleMessage_RAW.Enum()
		vm.RawMessage = &openxcpb.RawMessage{
			Bus:       msg.Bus,
			MessageId: msg.MessageID,
			Data:      msg.Data,
		}
	case *Translated:
		tm := &openxcpb.TranslatedMessage{Name: proto.String(msg.Name)}
		tm.NumericalValue, tm.BooleanValue, tm.StringValue = splitValue(msg.Value)
		tm.NumericalEvent, tm.BooleanEvent, tm.StringEvent = splitValue(msg.Event)
		vm.Type = openxcpb.VehicleMessage_TRANSLATED.Enum()
		vm.TranslatedMessage = tm
	default:
		return nil, fmt.Errorf("protobuf: cannot encode %T", m)
	}
	return proto.Marshal(&vm)
}

func splitValue(v Value) (*float64, *bool, *string) {
	switch v.Kind() {
	case ValueNumeric:
		return proto.Float64(v.numeric), nil, nil
	case ValueBoolean:
		return nil, proto.Bool(v.boolean), nil
	case ValueString:
		return nil, nil, proto.String(v.str)
	default:
		return nil, nil, nil
	}
}
