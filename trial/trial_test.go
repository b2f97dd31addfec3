package trial

import (
	"context"
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"tune-lab/domain"
	"tune-lab/repositories"
	"tune-lab/sampler"
)

func newTestTrial(t *testing.T, pruner Pruner) (*Trial, repositories.TrialRepository) {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repository := repositories.NewTrialRepository(db, slog.Default())
	record, err := repository.Create("mnist")
	require.NoError(t, err)
	return New(record, sampler.NewRandom(42), repository, pruner, slog.Default()), repository
}

func Test_Suggest_IsIdempotentPerName(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	tr, _ := newTestTrial(t, nil)

	first, err := tr.SuggestFloat(ctx, "lr", -5, 5)
	req.NoError(err)
	second, err := tr.SuggestFloat(ctx, "lr", -5, 5)
	req.NoError(err)
	req.Equal(first, second, "re-suggesting a name must return the recorded value")
}

func Test_Suggest_PersistsParamAndDistribution(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	tr, repository := newTestTrial(t, nil)

	v, err := tr.SuggestInt(ctx, "layers", 1, 8, 1, false)
	req.NoError(err)

	stored, err := repository.Get("mnist", 0)
	req.NoError(err)
	req.Equal(domain.Int(v), stored.Params["layers"])

	dist := stored.Distributions["layers"]
	req.Equal(domain.DistInt, dist.Kind)
	req.EqualValues(1, dist.IntLow)
	req.EqualValues(8, dist.IntHigh)
	req.True(dist.Contains(stored.Params["layers"]))
}

func Test_Report_And_Attrs_Persist(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	tr, repository := newTestTrial(t, nil)

	req.NoError(tr.Report(ctx, 0.81, 1))
	req.NoError(tr.Report(ctx, 0.88, 2))
	req.NoError(tr.SetUserAttr(ctx, "b", domain.Int(1)))
	req.NoError(tr.SetSystemAttr(ctx, "host", domain.String("node-3")))

	stored, err := repository.Get("mnist", 0)
	req.NoError(err)
	req.Equal(map[int64]float64{1: 0.81, 2: 0.88}, stored.Intermediate)
	req.Equal(domain.Int(1), stored.UserAttrs["b"])
	req.Equal(domain.String("node-3"), stored.SystemAttrs["host"])
}

func Test_Readbacks_ReturnCopies(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	tr, _ := newTestTrial(t, nil)

	_, err := tr.SuggestFloat(ctx, "lr", 0, 1)
	req.NoError(err)

	params, err := tr.Params(ctx)
	req.NoError(err)
	params["lr"] = domain.Float(99)

	again, err := tr.Params(ctx)
	req.NoError(err)
	req.NotEqual(domain.Float(99), again["lr"], "callers must not share internal state")
}

func Test_ThresholdPruner(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	tr, _ := newTestTrial(t, ThresholdPruner{Lower: lo.ToPtr(0.5)})

	prune, err := tr.ShouldPrune(ctx)
	req.NoError(err)
	req.False(prune, "nothing reported yet")

	req.NoError(tr.Report(ctx, 0.7, 1))
	prune, err = tr.ShouldPrune(ctx)
	req.NoError(err)
	req.False(prune)

	req.NoError(tr.Report(ctx, 0.2, 2))
	prune, err = tr.ShouldPrune(ctx)
	req.NoError(err)
	req.True(prune)
}

func Test_MedianPruner_AgainstPeers(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()
	repository := repositories.NewTrialRepository(db, slog.Default())

	// Two finished peers that reached accuracy 0.80 and 0.90 at step 5.
	for _, acc := range []float64{0.80, 0.90} {
		record, err := repository.Create("mnist")
		req.NoError(err)
		record.Intermediate[5] = acc
		record.State = domain.TrialComplete
		req.NoError(repository.Save(record))
	}

	record, err := repository.Create("mnist")
	req.NoError(err)
	pruner := MedianPruner{Repository: repository, WarmupSteps: 2, Maximize: true}
	tr := New(record, sampler.NewRandom(1), repository, pruner, slog.Default())

	req.NoError(tr.Report(ctx, 0.5, 1))
	prune, err := tr.ShouldPrune(ctx)
	req.NoError(err)
	req.False(prune, "still warming up")

	req.NoError(tr.Report(ctx, 0.6, 5))
	prune, err = tr.ShouldPrune(ctx)
	req.NoError(err)
	req.True(prune, "0.6 is below the peer median at step 5")

	req.NoError(tr.Report(ctx, 0.95, 5))
	prune, err = tr.ShouldPrune(ctx)
	req.NoError(err)
	req.False(prune, "0.95 beats the peer median")
}
