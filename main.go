package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mobile-next/mobiletouch/cli"
	"github.com/mobile-next/mobiletouch/commands"
	"github.com/mobile-next/mobiletouch/devices"
)

// interruptGrace is how long an interrupted gesture gets to lift its
// contacts before open devices are closed forcibly.
const interruptGrace = 500 * time.Millisecond

func main() {
	registry := devices.NewDeviceRegistry()
	commands.SetRegistry(registry)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan error, 1)
	go func() {
		done <- cli.Execute(ctx)
	}()

	select {
	case <-sigChan:
		cancel()
		select {
		case <-done:
		case <-time.After(interruptGrace):
		}
		registry.CleanupAll()
		os.Exit(1)
	case err := <-done:
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
