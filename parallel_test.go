package kdtree

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKNearestBatch_MatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	pts := randomVec3s(rng, 800, 10)
	queries := randomVec3s(rng, 97, 12)

	for _, workers := range []int{1, 2, 4, 16} {
		cfg := DefaultConfig()
		cfg.Workers = workers
		tree := MustNew(pts, cfg)

		got, err := tree.KNearestBatch(context.Background(), queries, 6)
		require.NoError(t, err)
		require.Len(t, got, len(queries))
		for i, q := range queries {
			assert.Equal(t, tree.KNearest(q, 6), got[i], "workers=%d query %d", workers, i)
		}
	}
}

func TestWithinBatch_MatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	pts := randomVec3s(rng, 800, 10)
	queries := randomVec3s(rng, 50, 10)

	for _, workers := range []int{1, 3} {
		cfg := DefaultConfig()
		cfg.Workers = workers
		tree := MustNew(pts, cfg)

		got, err := tree.WithinBatch(context.Background(), queries, 1.5)
		require.NoError(t, err)
		for i, q := range queries {
			assert.ElementsMatch(t, tree.Within(q, 1.5), got[i], "workers=%d query %d", workers, i)
		}
	}
}

func TestBatch_Empty(t *testing.T) {
	tree := MustNew([]Vec2[float64]{{1, 1}}, DefaultConfig())

	got, err := tree.KNearestBatch(context.Background(), nil, 3)
	require.NoError(t, err)
	assert.Empty(t, got)

	var empty *Tree[Vec2[float64]]
	res, err := empty.WithinBatch(context.Background(), []Vec2[float64]{{0, 0}, {1, 1}}, 2)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Empty(t, res[0])
	assert.Empty(t, res[1])
}

func TestBatch_Cancelled(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pts := randomVec3s(rng, 100, 1)
	queries := randomVec3s(rng, 20, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		cfg := DefaultConfig()
		cfg.Workers = workers
		tree := MustNew(pts, cfg)

		out, err := tree.KNearestBatch(ctx, queries, 2)
		assert.ErrorIs(t, err, context.Canceled, "workers=%d", workers)
		assert.Nil(t, out)

		out, err = tree.WithinBatch(ctx, queries, 0.5)
		assert.ErrorIs(t, err, context.Canceled, "workers=%d", workers)
		assert.Nil(t, out)
	}
}
