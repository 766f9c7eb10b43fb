package engine

import (
	"context"
	"errors"
	"time"

	"github.com/italianiroberto75-cyber/FRIGO/internal/common"
)

// BatchItem is one line of a bulk add.
type BatchItem struct {
	Name     string
	IsFrozen bool
}

// BatchSummary contains statistics about a bulk add.
type BatchSummary struct {
	Added          []AddResult
	Skipped        []string
	FallbackCount  int
	ProcessingTime time.Duration
}

// ProgressFunc is called after each processed item.
type ProgressFunc func(done, total int)

// AddBatch adds items one after another so that at most one classifier
// request is in flight. Empty names are skipped. A canceled context stops
// the batch and returns what was added so far.
func (e *Engine) AddBatch(ctx context.Context, items []BatchItem, progress ProgressFunc) (*BatchSummary, error) {
	start := time.Now()
	summary := &BatchSummary{}

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			summary.ProcessingTime = time.Since(start)
			return summary, err
		}

		result, err := e.Add(ctx, item.Name, item.IsFrozen)
		switch {
		case errors.Is(err, common.ErrEmptyName):
			summary.Skipped = append(summary.Skipped, item.Name)
		case err != nil:
			summary.ProcessingTime = time.Since(start)
			return summary, err
		default:
			summary.Added = append(summary.Added, result)
			if result.UsedFallback {
				summary.FallbackCount++
			}
		}

		if progress != nil {
			progress(i+1, len(items))
		}
	}

	summary.ProcessingTime = time.Since(start)
	e.logger.Debug("batch add finished",
		"added", len(summary.Added),
		"skipped", len(summary.Skipped),
		"fallbacks", summary.FallbackCount,
		"duration", summary.ProcessingTime)

	return summary, nil
}
