package output

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/norasector/xclink/pkg/message"
	"github.com/norasector/xclink/pkg/stream"
	"github.com/norasector/xclink/pkg/util"
	"github.com/norasector/xclink/pkg/xclink/config"
)

func TestRelayOutput(t *testing.T) {
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)
	defer conn.Close()
	port := conn.LocalAddr().(*net.UDPAddr).Port

	metrics := util.NewRecordingWriteAPI()
	relay := NewRelayOutput(
		[]config.OutputDestination{{Host: "127.0.0.1", Port: port}},
		message.CBOR{}, metrics, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- relay.Start(ctx) }()

	sent := &message.Translated{Name: "fuel_level", Value: message.NumericValue(71.5)}
	relay.Receive() <- &message.Envelope{Source: "vi", Timestamp: time.Now(), Message: sent}

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	datagram := make([]byte, 1500)
	n, _, err := conn.ReadFromUDP(datagram)
	require.NoError(t, err)

	buf := stream.NewBuffer()
	buf.Append(datagram[:n])
	frame, err := buf.Next()
	require.NoError(t, err)
	require.Zero(t, buf.Len())

	got, err := message.CBOR{}.Decode(frame.Payload)
	require.NoError(t, err)
	require.Equal(t, sent.Fields(), got.Fields())

	require.Eventually(t, func() bool {
		return len(metrics.Points("relay.sent_frame")) == 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	require.True(t, errors.Is(<-done, context.Canceled))
}

func TestRelayOutputUnresolvable(t *testing.T) {
	relay := NewRelayOutput(
		[]config.OutputDestination{{Host: "host.invalid", Port: 9}},
		message.Protobuf{}, util.NewRecordingWriteAPI(), zerolog.Nop())
	require.Error(t, relay.Start(context.Background()))
}
