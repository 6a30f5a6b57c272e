// Package evaluate fans independent kernel calls out over a worker pool.
// Every call is pure, so workers share nothing and write to index-addressed
// slots; the output is deterministic regardless of scheduling.
package evaluate

import (
	"context"

	"golang.org/x/sync/errgroup"

	"micromag/internal/kernel"
)

// Curve evaluates the powder-averaged 1D intensity at every q of the grid.
func Curve(ctx context.Context, p kernel.Params, qs []float64, workers int) ([]float64, error) {
	out := make([]float64, len(qs))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, q := range qs {
		g.Go(func() error {
			out[i] = kernel.Iq(q, p)
			return nil
		})
	}
	err := g.Wait()
	return out, err
}

// Map evaluates the 2D intensity on the detector grid; rows iterate qy,
// columns qx.
func Map(ctx context.Context, p kernel.Params, qxs, qys []float64, workers int) ([][]float64, error) {
	out := make([][]float64, len(qys))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for iy, qy := range qys {
		out[iy] = make([]float64, len(qxs))
		g.Go(func() error {
			for ix, qx := range qxs {
				out[iy][ix] = kernel.Iqxy(qx, qy, p)
			}
			return nil
		})
	}
	err := g.Wait()
	return out, err
}
