package enumerate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/occupancy/enumerate"
	"github.com/katalvlaran/occupancy/ladder"
	"github.com/katalvlaran/occupancy/normalize"
)

// TestMain fails the package if any worker goroutine outlives its Enumerate call.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestParallel_MatchesSequential(t *testing.T) {
	inputs := []struct {
		n int
		e float64
	}{
		{20, 106},
		{3, 5.5},
		{9, ladder.GroundEnergy(9).Float() + 4},
		{12, ladder.GroundEnergy(12).Float() + 5},
		{0, 3},
	}
	for _, in := range inputs {
		r := mustReduce(t, in.n, in.e)
		seq, err := enumerate.Enumerate(r)
		require.NoError(t, err)

		for _, workers := range []int{2, 3, 8} {
			par, err := enumerate.Enumerate(r, enumerate.WithWorkers(workers))
			require.NoError(t, err)
			if diff := cmp.Diff(seq.Configurations, par.Configurations); diff != "" {
				t.Fatalf("N=%d E=%v workers=%d (-seq +par):\n%s", in.n, in.e, workers, diff)
			}
			assert.Equal(t, seq.Count, par.Count)
		}
	}
}

func TestParallel_UnprunedMatches(t *testing.T) {
	r := mustReduce(t, 9, ladder.GroundEnergy(9).Float()+3)
	seq, err := enumerate.Enumerate(r, enumerate.WithPruning(false))
	require.NoError(t, err)
	par, err := enumerate.Enumerate(r, enumerate.WithPruning(false), enumerate.WithWorkers(3))
	require.NoError(t, err)
	assert.Equal(t, seq.Configurations, par.Configurations)
}

func TestParallel_HookOrderAndCountOnly(t *testing.T) {
	r := mustReduce(t, 20, 106)
	seq, err := enumerate.Enumerate(r)
	require.NoError(t, err)

	var streamed []ladder.Configuration
	res, err := enumerate.Enumerate(r,
		enumerate.WithWorkers(3),
		enumerate.WithCountOnly(),
		enumerate.WithOnConfiguration(func(c ladder.Configuration) error {
			streamed = append(streamed, c)

			return nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, 24, res.Count)
	assert.Nil(t, res.Configurations)
	assert.Equal(t, seq.Configurations, streamed)
}

func TestParallel_StepBudgetStopsAllWorkers(t *testing.T) {
	r := mustReduce(t, 20, 106)
	_, err := enumerate.Enumerate(r,
		enumerate.WithPruning(false),
		enumerate.WithWorkers(3),
		enumerate.WithStepBudget(5000),
	)
	assert.True(t, errors.Is(err, enumerate.ErrStepBudget) || errors.Is(err, context.Canceled),
		"unexpected error: %v", err)
}

func TestParallel_TinyProblems(t *testing.T) {
	// N=2, E=1 takes the ground-state shortcut; N=2, E=3 splits a
	// three-level search.
	for _, e := range []float64{1, 3} {
		r, err := normalize.Reduce(2, e)
		require.NoError(t, err)
		seq, err := enumerate.Enumerate(r)
		require.NoError(t, err)
		par, err := enumerate.Enumerate(r, enumerate.WithWorkers(3))
		require.NoError(t, err)
		assert.Equal(t, seq.Configurations, par.Configurations)
	}
}
