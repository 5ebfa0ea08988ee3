package main

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/norasector/xclink/pkg/statsserver"
	"github.com/norasector/xclink/pkg/xclink"
)

type finishedVehicle struct{}

func (finishedVehicle) Start(context.Context) error { return nil }

func (finishedVehicle) Stats() []xclink.Stats { return nil }

type blockingVehicle struct{}

func (blockingVehicle) Start(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func runAsync(sigChan <-chan os.Signal, vehicle runner, statsServer *statsserver.Server) <-chan error {
	done := make(chan error, 1)
	go func() { done <- run(context.Background(), sigChan, vehicle, statsServer) }()
	return done
}

func TestRunReturnsWhenVehicleFinishes(t *testing.T) {
	vehicle := finishedVehicle{}
	done := runAsync(make(chan os.Signal), vehicle, statsserver.NewServer(0, vehicle))

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after the vehicle finished")
	}
}

func TestRunReturnsOnSignal(t *testing.T) {
	sigChan := make(chan os.Signal, 1)
	done := runAsync(sigChan, blockingVehicle{}, nil)

	sigChan <- syscall.SIGTERM
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after a signal")
	}
}
