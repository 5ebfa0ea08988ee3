package mock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/norasector/xclink/pkg/message"
	"github.com/norasector/xclink/pkg/stream"
	"github.com/norasector/xclink/pkg/xclink/device"
)

func decodeBatch(t *testing.T, codec message.Codec, batch []byte) []message.Message {
	t.Helper()
	buf := stream.NewBuffer()
	buf.Append(batch)

	var msgs []message.Message
	for {
		frame, err := buf.Next()
		if errors.Is(err, stream.ErrNoFrame) {
			break
		}
		require.NoError(t, err)
		msg, err := codec.Decode(frame.Payload)
		require.NoError(t, err)
		require.NoError(t, message.Validate(msg))
		msgs = append(msgs, msg)
	}
	require.Zero(t, buf.Len())
	return msgs
}

func TestDeviceBatches(t *testing.T) {
	for _, codec := range []message.Codec{message.Protobuf{}, message.CBOR{}} {
		t.Run(codec.Name(), func(t *testing.T) {
			dev := NewDevice(codec, 200, WithLimit(2), WithBus(3))
			defer dev.Close()

			first, err := dev.Read(context.Background(), time.Second)
			require.NoError(t, err)
			msgs := decodeBatch(t, codec, first)
			require.Len(t, msgs, 5)

			names := map[string]bool{}
			for _, m := range msgs {
				switch msg := m.(type) {
				case *message.Translated:
					names[msg.Name] = true
				case *message.Raw:
					require.Equal(t, int32(3), *msg.Bus)
					require.Equal(t, uint32(rawMessageID), *msg.MessageID)
					require.Equal(t, uint64(0), *msg.Data)
				}
			}
			require.True(t, names["vehicle_speed"])
			require.True(t, names["door_status"])

			second, err := dev.Read(context.Background(), time.Second)
			require.NoError(t, err)
			require.Len(t, decodeBatch(t, codec, second), 4)

			_, err = dev.Read(context.Background(), time.Second)
			require.ErrorIs(t, err, device.ErrSourceUnavailable)
		})
	}
}

func TestDeviceReadTimeout(t *testing.T) {
	dev := NewDevice(message.Protobuf{}, 1)
	defer dev.Close()

	chunk, err := dev.Read(context.Background(), 10*time.Millisecond)
	require.NoError(t, err)
	require.Nil(t, chunk)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dev.Read(ctx, 0)
	require.ErrorIs(t, err, context.Canceled)
}
