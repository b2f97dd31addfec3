package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/near/borsh-go"

	"tune-lab/collective"
	"tune-lab/contract"
	"tune-lab/distributed"
	"tune-lab/domain"
	"tune-lab/internal"
	"tune-lab/observability"
	"tune-lab/repositories"
	"tune-lab/runtime/workers"
	"tune-lab/sampler"
	"tune-lab/trial"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Worker terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the rank lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for background workers.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}
	logger := logs.GetLoggerFromString(config.LogLevel).With("rank", config.Rank)

	// 2. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Collective group formation
	stats := observability.NewCollectiveStats(logger)
	group, err := joinGroup(ctx, config, logger)
	if err != nil {
		return exitRuntime, fmt.Errorf("group formation failed: %w", err)
	}
	defer func() {
		logger.Info("Leaving group...")
		_ = group.Close()
	}()
	if config.StagedBuffers {
		group = collective.Staged(group, collective.HostStager{})
	}
	group = collective.Instrumented(group, stats)
	logger.Info("Group formed", "size", group.Size(), "device_resident", group.Capabilities().DeviceResident)

	// 4. Leader-only storage and delegate
	var delegate contract.Trial
	var localTrial *trial.Trial
	if config.Rank == collective.LeaderRank {
		db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
			WithLoggingLevel(badger.WARNING))
		if err != nil {
			return exitRuntime, fmt.Errorf("database opening failed: %w", err)
		}
		defer func() {
			// Defer ensures the database lock is released and buffers are flushed before the function returns.
			logger.Info("Closing BadgerDB...")
			_ = db.Close()
		}()

		if logger.Enabled(ctx, slog.LevelDebug) {
			endpoint := "/inspect"
			logger.Info("Debug Badger inspector available",
				"url", fmt.Sprintf("http://localhost:%d%s", config.DebugPort, endpoint))
			internal.StartDebugServer(db, config.DebugPort, endpoint, TrialMapper, func() map[string]any {
				snapshot := stats.Snapshot()
				return map[string]any{
					"Broadcasts": snapshot.Broadcasts,
					"Barriers":   snapshot.Barriers,
					"BytesOut":   snapshot.BytesOut,
				}
			})
		}

		repository := repositories.NewTrialRepository(db, logger)
		record, err := repository.Create(config.Study)
		if err != nil {
			return exitRuntime, fmt.Errorf("trial creation failed: %w", err)
		}
		pruner := trial.MedianPruner{Repository: repository, WarmupSteps: 2, Maximize: false}
		localTrial = trial.New(record, sampler.NewRandom(config.SamplerSeed), repository, pruner, logger)
		delegate = localTrial
	}

	synced, err := distributed.NewTrial(group, delegate, logger)
	if err != nil {
		return exitRuntime, err
	}

	// 5. Ambient workers under supervision
	sup := workers.NewSupervisor(logger, config.RestartInterval)
	heartbeat := workers.NewHeartbeatWorker(logger, config.Rank, config.HeartbeatInterval, stats)
	go sup.Add(heartbeat).Run(ctx)
	defer sup.Stop()

	// 6. The synchronized objective loop
	state, err := runObjective(ctx, synced, config.TrialSteps, logger)
	if err != nil {
		return exitRuntime, err
	}

	if localTrial != nil {
		if err := localTrial.Complete(state); err != nil {
			return exitRuntime, fmt.Errorf("finalizing trial: %w", err)
		}
	}
	logger.Info("Worker stopped cleanly", "state", state.String())
	return exitOK, nil
}

// joinGroup forms the collective: rank 0 listens, everyone else dials. The
// in-process transport only exists for single-rank smoke runs.
func joinGroup(ctx context.Context, config internal.Config, logger *slog.Logger) (collective.Group, error) {
	joinCtx, cancel := context.WithTimeout(ctx, config.JoinTimeout)
	defer cancel()

	if config.Transport == "local" {
		groups, err := collective.NewLocalGroup(1)
		if err != nil {
			return nil, err
		}
		return groups[0], nil
	}
	if config.Rank == collective.LeaderRank {
		return collective.NewTCPLeader(joinCtx, config.LeaderAddr, config.GroupSize, logger)
	}
	return collective.NewTCPFollower(joinCtx, config.LeaderAddr, config.Rank, config.GroupSize, logger)
}

// runObjective is a simulated training run: hyperparameters are agreed once
// up front, then every step reports a loss and checks the pruning verdict.
// All ranks compute the same loss from the same agreed parameters, which is
// exactly the property the facade exists to provide.
func runObjective(ctx context.Context, synced *distributed.Trial, steps int64, logger *slog.Logger) (domain.TrialState, error) {
	x, err := synced.SuggestFloat(ctx, "x", -10, 10)
	if err != nil {
		return domain.TrialFailed, err
	}
	y, err := synced.SuggestFloat(ctx, "y", -10, 10)
	if err != nil {
		return domain.TrialFailed, err
	}
	lr, err := synced.SuggestFloatLog(ctx, "lr", 1e-4, 1e-1)
	if err != nil {
		return domain.TrialFailed, err
	}
	optimizer, err := synced.SuggestCategorical(ctx, "optimizer", []domain.Value{
		domain.String("sgd"), domain.String("momentum"), domain.String("adam"),
	})
	if err != nil {
		return domain.TrialFailed, err
	}
	logger.Info("Hyperparameters agreed", "x", x, "y", y, "lr", lr, "optimizer", optimizer.String())

	for step := int64(1); step <= steps; step++ {
		// Plain gradient descent on (x-3)^2 + (y+1)^2.
		x -= lr * 2 * (x - 3)
		y -= lr * 2 * (y + 1)
		loss := (x-3)*(x-3) + (y+1)*(y+1)

		if err := synced.Report(ctx, loss, step); err != nil {
			return domain.TrialFailed, err
		}
		prune, err := synced.ShouldPrune(ctx)
		if err != nil {
			return domain.TrialFailed, err
		}
		if prune {
			logger.Info("Trial pruned", "step", step, "loss", loss)
			return domain.TrialPruned, nil
		}
		logger.Debug("Step reported", "step", step, "loss", loss)
	}

	params, err := synced.Params(ctx)
	if err != nil {
		return domain.TrialFailed, err
	}
	logger.Info("Trial finished", "params", paramsSummary(params))
	return domain.TrialComplete, nil
}

func paramsSummary(params map[string]domain.Value) string {
	parts := make([]string, 0, len(params))
	for name, v := range params {
		parts = append(parts, fmt.Sprintf("%s=%s", name, v.String()))
	}
	return strings.Join(parts, " ")
}

// TrialMapper decodes stored trial records for the debug inspector.
func TrialMapper(key string, val []byte) internal.InspectRow {
	row := internal.DefaultMapper(key, val)

	var record domain.TrialRecord
	if err := borsh.Deserialize(&record, val); err != nil {
		row.Detail = "Error: deserialize failed"
		return row
	}

	row.State = record.State.String()
	row.Params = paramsSummary(record.Params)
	row.Detail = fmt.Sprintf("%d reports", len(record.Intermediate))
	if started := record.StartTime(); started != nil {
		row.Detail += ", started " + started.Format(time.TimeOnly)
	}
	return row
}
