package parallel

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/golattice/pkg/lattice"
)

// TestWorkerPool tests basic task execution and shutdown behavior.
func TestWorkerPool(t *testing.T) {
	t.Run("executes submitted tasks", func(t *testing.T) {
		pool := NewWorkerPool(2)
		defer pool.Shutdown()

		done := make(chan struct{})
		err := pool.Submit(context.Background(), func() { close(done) })
		require.NoError(t, err)
		<-done
	})

	t.Run("rejects tasks after shutdown", func(t *testing.T) {
		pool := NewWorkerPool(1)
		pool.Shutdown()

		err := pool.Submit(context.Background(), func() {})
		require.ErrorIs(t, err, ErrPoolShutdown)
	})

	t.Run("shutdown is idempotent", func(t *testing.T) {
		pool := NewWorkerPool(1)
		pool.Shutdown()
		pool.Shutdown()
	})
}

// TestEvaluateAll tests parallel batch interpretation against clones.
func TestEvaluateAll(t *testing.T) {
	newBase := func(t *testing.T) *lattice.Env {
		t.Helper()
		env := lattice.NewEnv()
		d := env.NewDomain()
		r := env.Interpret(lattice.Exists("x", lattice.SortBool, d))
		require.True(t, r.IsOk())
		return env
	}

	t.Run("results come back in input order", func(t *testing.T) {
		base := newBase(t)
		batch := []*lattice.Formula{
			lattice.Occurrence("x"),
			lattice.Occurrence("missing"),
			lattice.Exists("y", lattice.SortBool, 0),
			lattice.Exists("x", lattice.SortInt, 0),
		}

		results, err := EvaluateAll(context.Background(), zerolog.Nop(), base, batch, 3)
		require.NoError(t, err)
		require.Len(t, results, len(batch))

		require.True(t, results[0].IsOk())
		require.Equal(t, lattice.NewAVar(0, 0), results[0].Value())

		require.False(t, results[1].IsOk())
		require.Equal(t, lattice.UndeclaredVariable, results[1].Error().Code)

		// Every evaluation sees the same base state: y lands in the slot
		// right after x in its own clone.
		require.True(t, results[2].IsOk())
		require.Equal(t, lattice.NewAVar(0, 1), results[2].Value())

		require.False(t, results[3].IsOk())
		require.Equal(t, lattice.SortMismatch, results[3].Error().Code)
	})

	t.Run("the base environment is never mutated", func(t *testing.T) {
		base := newBase(t)
		batch := []*lattice.Formula{
			lattice.Exists("a", lattice.SortBool, 0),
			lattice.Exists("b", lattice.SortBool, 0),
			lattice.Exists("c", lattice.SortBool, 0),
		}

		_, err := EvaluateAll(context.Background(), zerolog.Nop(), base, batch, 2)
		require.NoError(t, err)
		require.Equal(t, 1, base.NumVars())
		require.Equal(t, 1, base.NumVarsIn(0))
	})

	t.Run("cancelled context stops submission", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		base := newBase(t)
		// A batch larger than the pool's buffered queue forces Submit to
		// block and observe the cancelled context.
		batch := make([]*lattice.Formula, 64)
		for i := range batch {
			batch[i] = lattice.Occurrence("x")
		}

		_, err := EvaluateAll(ctx, zerolog.Nop(), base, batch, 1)
		if err != nil {
			require.ErrorIs(t, err, context.Canceled)
		}
	})

	t.Run("empty batch", func(t *testing.T) {
		results, err := EvaluateAll(context.Background(), zerolog.Nop(), newBase(t), nil, 0)
		require.NoError(t, err)
		require.Empty(t, results)
	})
}
