package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"tune-lab/internal"
	"tune-lab/runtime"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Launcher terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run spawns one worker process per rank on this machine and waits for the
// whole group to finish. A single failed rank fails the run: with no fault
// tolerance inside collectives, the surviving ranks would hang anyway.
func run() (int, error) {
	binPath := flag.String("worker", "./worker", "path to the worker binary")
	flag.Parse()

	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	launcher := runtime.NewLauncher(logger)
	if err := launcher.Init(ctx, *binPath, config); err != nil {
		return exitRuntime, err
	}
	defer launcher.Stop()

	logger.Info("Group running", "size", config.GroupSize, "leader", config.LeaderAddr)
	if err := launcher.Wait(); err != nil {
		return exitRuntime, err
	}
	logger.Info("All ranks finished")
	return exitOK, nil
}
