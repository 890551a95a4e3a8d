// Package resources loads the dataset and model bundle once at startup and
// hands them to the rendering layer.
package resources

import (
	"context"
	"log"
	"time"

	"econdash/internal/config"
	"econdash/internal/dataset"
	"econdash/internal/forecast"

	"golang.org/x/sync/errgroup"
)

// Resources is everything the page renders from. A failed load leaves an
// empty table or a nil bundle plus the error that explains it.
type Resources struct {
	Data     *dataset.Table
	DataErr  error
	Model    *forecast.Bundle
	ModelErr error
	LoadedAt time.Time
}

// ModelLoaded reports whether a usable bundle is available
func (r *Resources) ModelLoaded() bool {
	return r != nil && r.Model != nil
}

// Load reads the dataset and the model bundle concurrently. Load failures
// never fail the call; only a cancelled context does.
func Load(ctx context.Context, cfg config.DataConfig) (*Resources, error) {
	start := time.Now()
	res := &Resources{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res.Data, res.DataErr = dataset.LoadOrEmpty(gctx, cfg.CSVFile)
		return ctx.Err()
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		res.Model, res.ModelErr = forecast.LoadBundleOrNil(cfg.ModelFile)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res.LoadedAt = time.Now()
	log.Printf("[Resources] Loaded in %s (rows=%d, model=%t)", time.Since(start).Round(time.Millisecond), res.Data.Len(), res.ModelLoaded())
	return res, nil
}
