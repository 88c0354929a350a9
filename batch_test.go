package geoquad

import (
	"context"
	"errors"
	"testing"

	"github.com/hupe1980/geoquad/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBatch_MatchesSequential(t *testing.T) {
	g := MustNew(WithBatchConcurrency(4))
	coords := testutil.NewRNG(99).Coordinates(10_000)

	codes, err := g.CreateBatch(context.Background(), coords)
	require.NoError(t, err)
	require.Len(t, codes, len(coords))

	for i, c := range coords {
		want, err := g.Create(c.Lat, c.Lng)
		require.NoError(t, err)
		require.Equal(t, want, codes[i], "coordinate %d", i)
	}
}

func TestCreateBatch_Empty(t *testing.T) {
	codes, err := Default().CreateBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, codes)
}

func TestCreateBatch_InvalidCoordinate(t *testing.T) {
	coords := testutil.NewRNG(1).Coordinates(9000)
	coords[5000] = Coordinate{Lat: 91, Lng: 0}

	codes, err := Default().CreateBatch(context.Background(), coords)
	assert.Nil(t, codes)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDomain)
	assert.Contains(t, err.Error(), "coordinate 5000")

	var de *DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "latitude", de.Axis)
}

func TestCreateBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	codes, err := Default().CreateBatch(ctx, testutil.NewRNG(2).Coordinates(100))
	assert.Nil(t, codes)
	assert.ErrorIs(t, err, context.Canceled)
}

func BenchmarkCreateBatch(b *testing.B) {
	coords := testutil.NewRNG(3).Coordinates(100_000)
	g := Default()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.CreateBatch(context.Background(), coords)
	}
}
