package geoquad

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// batchChunkSize is the number of coordinates one worker encodes per task.
const batchChunkSize = 4096

// CreateBatch encodes coords concurrently. codes[i] is the code of coords[i].
//
// The first invalid coordinate aborts the batch; the returned error wraps
// its *DomainError and names its index. Cancelling ctx aborts the batch with
// ctx.Err().
func (g *Grid) CreateBatch(ctx context.Context, coords []Coordinate) ([]Code, error) {
	start := time.Now()
	codes, err := g.createBatch(ctx, coords)
	g.metrics.RecordBatchCreate(len(coords), time.Since(start), err)
	g.logger.LogBatchCreate(ctx, len(coords), err)
	return codes, err
}

func (g *Grid) createBatch(ctx context.Context, coords []Coordinate) ([]Code, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	codes := make([]Code, len(coords))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.batchConcurrency)

	for lo := 0; lo < len(coords); lo += batchChunkSize {
		if egCtx.Err() != nil {
			break
		}
		hi := min(lo+batchChunkSize, len(coords))
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				c, err := g.create(coords[i].Lat, coords[i].Lng)
				if err != nil {
					return fmt.Errorf("coordinate %d: %w", i, err)
				}
				codes[i] = c
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return codes, nil
}
