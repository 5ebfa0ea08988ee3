package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/norasector/xclink/pkg/message"
	"github.com/norasector/xclink/pkg/statsserver"
	"github.com/norasector/xclink/pkg/util"
	"github.com/norasector/xclink/pkg/xclink"
	"github.com/norasector/xclink/pkg/xclink/config"
	"github.com/norasector/xclink/pkg/xclink/device"
	"github.com/norasector/xclink/pkg/xclink/device/file"
	"github.com/norasector/xclink/pkg/xclink/device/mock"
	"github.com/norasector/xclink/pkg/xclink/device/network"
	"github.com/norasector/xclink/pkg/xclink/output"
)

const fileByteReadSize = 4096

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.InfoLevel)
	configFile := flag.String("config", "xclink.yaml", "YAML config file")
	flag.Parse()

	opts, err := config.Load(*configFile)
	if err != nil {
		log.Fatal().Err(err).Str("config", *configFile).Msg("error loading config")
	}
	setupLogging(opts.Log)

	writeAPI, closeMetrics := util.NewWriteAPI(opts.InfluxDB.Host, opts.InfluxDB.Token, opts.InfluxDB.Organization, opts.InfluxDB.Bucket)
	defer closeMetrics()

	vehicleOpts := []xclink.VehicleOption{
		xclink.WithVehicleLogger(log.Logger),
		xclink.WithVehicleInfluxDB(writeAPI),
	}

	if opts.JSONL.Enabled {
		var w io.Writer = os.Stdout
		if opts.JSONL.Path != "" {
			f, err := os.OpenFile(opts.JSONL.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				log.Fatal().Err(err).Str("path", opts.JSONL.Path).Msg("failed to open jsonl output")
			}
			defer f.Close()
			w = f
		}
		vehicleOpts = append(vehicleOpts, xclink.WithOutput(output.NewJSONLOutput(w, log.Logger.With().Str("output", "jsonl").Logger())))
	}

	if len(opts.Relay.Destinations) > 0 {
		codec, err := message.CodecByName(opts.Relay.Codec)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid relay codec")
		}
		vehicleOpts = append(vehicleOpts, xclink.WithOutput(
			output.NewRelayOutput(opts.Relay.Destinations, codec, writeAPI, log.Logger.With().Str("output", "relay").Logger())))
	}

	vehicle, err := xclink.NewVehicle(vehicleOpts...)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create vehicle")
	}

	for _, src := range opts.Sources {
		reader, codec, err := newReader(src)
		if err != nil {
			log.Fatal().Str("source", src.Name).Err(err).Msg("failed to initialize source")
		}
		defer reader.Close()

		if _, err := vehicle.AddSource(src.Name, reader,
			xclink.WithCodec(codec),
			xclink.WithReadTimeout(src.ReadTimeout),
			xclink.WithMaxPayload(src.MaxPayload),
			xclink.WithResync(src.Resync),
		); err != nil {
			log.Fatal().Str("source", src.Name).Err(err).Msg("failed to add source")
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	var statsServer *statsserver.Server
	if opts.StatsServer.Port > 0 {
		statsServer = statsserver.NewServer(opts.StatsServer.Port, vehicle)
	}

	if err := run(context.Background(), sigChan, vehicle, statsServer); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("exited program")
	}
}

type runner interface {
	Start(ctx context.Context) error
}

// run returns once a signal arrives or the vehicle finishes. statsServer may be nil.
func run(ctx context.Context, sigChan <-chan os.Signal, vehicle runner, statsServer *statsserver.Server) error {
	eg, ctx := errgroup.WithContext(ctx)

	runCtx, stop := context.WithCancel(ctx)
	defer stop()

	eg.Go(func() error {
		select {
		case <-sigChan:
			log.Info().Msg("shutting down")
		case <-runCtx.Done():
		}
		stop()
		return nil
	})

	if statsServer != nil {
		eg.Go(func() error {
			return statsServer.Run(runCtx)
		})
	}

	eg.Go(func() error {
		defer stop()
		return vehicle.Start(runCtx)
	})

	return eg.Wait()
}

func newReader(src config.Source) (device.Reader, message.Codec, error) {
	codec, err := message.CodecByName(src.Codec)
	if err != nil {
		return nil, nil, err
	}

	switch src.Type {
	case config.SourceTypeFile:
		readSize := src.ReadSize
		if readSize <= 0 {
			readSize = fileByteReadSize
		}
		log.Info().Str("source", src.Name).Str("device", "file").Str("path", src.Path).Msg("initializing device...")
		reader, err := file.NewFileDevice(src.Path, readSize, src.ReadDelay)
		return reader, codec, err
	case config.SourceTypeNetwork:
		log.Info().Str("source", src.Name).Str("device", "network").Str("address", src.Address).Msg("initializing device...")
		return network.NewDevice(src.Address,
			network.WithDialTimeout(src.DialTimeout),
			network.WithBufferSize(src.ReadSize)), codec, nil
	case config.SourceTypeMock:
		log.Info().Str("source", src.Name).Str("device", "mock").Int("rate", src.MockRate).Msg("initializing device...")
		return mock.NewDevice(codec, src.MockRate, mock.WithLimit(src.MockLimit)), codec, nil
	default:
		return nil, nil, fmt.Errorf("unknown source type %q", src.Type)
	}
}

func setupLogging(cfg config.Log) {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		parsed, err := zerolog.ParseLevel(cfg.Level)
		if err != nil {
			log.Fatal().Err(err).Str("level", cfg.Level).Msg("invalid log level")
		}
		level = parsed
	}

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}
	if cfg.File != "" {
		out = zerolog.MultiLevelWriter(out, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		})
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger().Level(level)
}
