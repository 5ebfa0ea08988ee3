package output

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/norasector/xclink/pkg/message"
)

const receiveBuffer = 256

// JSONLOutput writes one JSON object per envelope:
//
//	{"ts":"…","source":"vi","name":"vehicle_speed","value":42,"data_remaining":false}
//
// An envelope that cannot be encoded is logged and skipped. Only write errors stop the output.
type JSONLOutput struct {
	w        io.Writer
	line     bytes.Buffer
	enc      *json.Encoder
	recvChan chan *message.Envelope
	logger   zerolog.Logger
}

func NewJSONLOutput(w io.Writer, logger zerolog.Logger) *JSONLOutput {
	j := &JSONLOutput{
		w:        w,
		recvChan: make(chan *message.Envelope, receiveBuffer),
		logger:   logger,
	}
	j.enc = json.NewEncoder(&j.line)
	j.enc.SetEscapeHTML(false)
	return j
}

func (j *JSONLOutput) Receive() chan<- *message.Envelope {
	return j.recvChan
}

// Start writes envelopes until ctx is done, then writes whatever is already queued.
func (j *JSONLOutput) Start(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			for {
				select {
				case env := <-j.recvChan:
					if err := j.write(env); err != nil {
						return err
					}
				default:
					return ctx.Err()
				}
			}
		case env := <-j.recvChan:
			if err := j.write(env); err != nil {
				return err
			}
		}
	}
}

func (j *JSONLOutput) write(env *message.Envelope) error {
	rec := env.Message.Fields()
	rec["ts"] = env.Timestamp.UTC().Format(time.RFC3339Nano)
	rec["source"] = env.Source
	rec["data_remaining"] = env.DataRemaining

	j.line.Reset()
	if err := j.enc.Encode(rec); err != nil {
		j.logger.Warn().Err(err).Str("source", env.Source).Str("kind", env.Message.Kind().String()).Msg("skipping message that cannot be encoded")
		return nil
	}
	_, err := j.w.Write(j.line.Bytes())
	return err
}
