package output

import (
	"context"
	"fmt"
	"net"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go"
	"github.com/influxdata/influxdb-client-go/api"
	"github.com/rs/zerolog"

	"github.com/norasector/xclink/pkg/message"
	"github.com/norasector/xclink/pkg/stream"
	"github.com/norasector/xclink/pkg/xclink/config"
)

// RelayOutput re-encodes every message with a codec, frames it exactly as it arrives on a
// vehicle link, and sends one frame per datagram to each destination. A receiver can feed
// datagrams straight into a stream.Buffer.
type RelayOutput struct {
	dests    []config.OutputDestination
	codec    message.Codec
	recvChan chan *message.Envelope
	metrics  api.WriteAPI
	logger   zerolog.Logger
}

func NewRelayOutput(dests []config.OutputDestination, codec message.Codec, metrics api.WriteAPI, logger zerolog.Logger) *RelayOutput {
	return &RelayOutput{
		dests:    dests,
		codec:    codec,
		recvChan: make(chan *message.Envelope, receiveBuffer),
		metrics:  metrics,
		logger:   logger,
	}
}

func (r *RelayOutput) Receive() chan<- *message.Envelope {
	return r.recvChan
}

func (r *RelayOutput) Start(ctx context.Context) error {
	destAddrs := make([]*net.UDPAddr, 0, len(r.dests))
	for _, dest := range r.dests {
		ips, err := net.LookupIP(dest.Host)
		if err != nil {
			return err
		}
		if len(ips) == 0 {
			return fmt.Errorf("no IPs returned for %s", dest.Host)
		}

		destAddr := &net.UDPAddr{IP: ips[0], Port: dest.Port}
		destAddrs = append(destAddrs, destAddr)
		r.logger.Info().IPAddr("dest_ip", destAddr.IP).Int("port", dest.Port).Msg("relay output starting")
	}

	conn, err := net.ListenUDP("udp", nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	var frame []byte
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case env := <-r.recvChan:
			payload, err := r.codec.Encode(env.Message)
			if err != nil {
				r.logger.Warn().Err(err).Msg("error encoding message")
				continue
			}
			frame = stream.AppendFrame(frame[:0], payload)

			success := true
			var bytesWritten int
			for _, destAddr := range destAddrs {
				bytesWritten, err = conn.WriteToUDP(frame, destAddr)
				if err != nil {
					r.logger.Error().Err(err).Msg("error writing")
					success = false
				}
			}

			go r.metrics.WritePoint(influxdb2.NewPoint("relay.sent_frame",
				map[string]string{
					"source": env.Source,
					"codec":  r.codec.Name(),
				},
				map[string]interface{}{
					"bytes_written":  bytesWritten,
					"payload_length": len(payload),
					"destinations":   len(destAddrs),
					"sent": func() int {
						if success {
							return 1
						}
						return 0
					}(),
					"dropped": func() int {
						if success {
							return 0
						}
						return 1
					}(),
				}, time.Now()))
		}
	}
}
