package e2e

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/suite"

	"tune-lab/domain"
	"tune-lab/internal"
	"tune-lab/repositories"
	"tune-lab/runtime"
)

type testDistributedTrialSuite struct {
	BaseSuite
}

func TestDistributedTrialSuite(t *testing.T) {
	suite.Run(t, &testDistributedTrialSuite{})
}

// TestFullGroupRun launches a real multi-process group against a throwaway
// database and verifies the leader persisted one finished trial with the
// parameters every rank agreed on.
func (s *testDistributedTrialSuite) TestFullGroupRun() {
	if s.Config.WorkerBin == "" {
		s.T().Skip("E2E_WORKER_BIN not set; build the worker binary and point at it to run this scenario")
	}

	dbPath := s.T().TempDir()
	study := "e2e-quadratic"

	config := internal.Config{
		GroupSize:         s.Config.GroupSize,
		LeaderAddr:        s.Config.LeaderAddr,
		Transport:         "tcp",
		JoinTimeout:       30 * time.Second,
		HeartbeatInterval: 5 * time.Second,
		BadgerFilepath:    dbPath,
		Study:             study,
		TrialSteps:        5,
		LogLevel:          "INFO",
		DebugPort:         0,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	s.Step("Launch the full group")
	s.T().Setenv("BADGER_FILEPATH", dbPath)
	s.T().Setenv("STUDY_NAME", study)
	s.T().Setenv("TRIAL_STEPS", "5")
	s.T().Setenv("LOG_LEVEL", "INFO")
	launcher := runtime.NewLauncher(slog.Default())
	s.Require().NoError(launcher.Init(ctx, s.Config.WorkerBin, config))
	defer launcher.Stop()

	s.Step("Wait for every rank to exit")
	s.Require().NoError(launcher.Wait())

	s.Step("Verify the persisted trial")
	opts := badger.DefaultOptions(dbPath).
		WithReadOnly(true).
		WithLoggingLevel(badger.ERROR)
	db, err := badger.Open(opts)
	s.Require().NoError(err)
	defer db.Close()

	repository := repositories.NewTrialRepository(db, slog.Default())
	records, err := repository.List(study)
	s.Require().NoError(err)
	s.Require().Len(records, 1, "one group run persists exactly one trial")

	record := records[0]
	s.Require().Contains(
		[]domain.TrialState{domain.TrialComplete, domain.TrialPruned},
		record.State,
	)
	s.Require().Contains(record.Params, "x")
	s.Require().Contains(record.Params, "y")
	s.Require().Contains(record.Params, "lr")
	s.Require().Contains(record.Params, "optimizer")
	s.Require().NotEmpty(record.Intermediate, "steps were reported before finishing")
}
