package enumerate

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/occupancy/ladder"
	"github.com/katalvlaran/occupancy/normalize"
)

// branches is the alphabet size, i.e. the fan-out of the first position.
const branches = ladder.Capacity + 1

// Enumerate returns every configuration of p in lexicographic order.
//
// Steps:
//  1. Apply and validate options.
//  2. Ground-state problems return p.Ground without searching.
//  3. Problems with more than MaxLevels residual levels are rejected with
//     a *SearchSpaceError before any allocation proportional to L.
//  4. Search sequentially, or split the first position across workers.
//
// On cancellation, time limit, step budget or hook error the partial Result
// found so far is returned together with the error. An empty result set is
// not an error.
func Enumerate(p normalize.Reduced, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if err := o.Ctx.Err(); err != nil {
		return nil, err
	}

	if p.IsGroundState() {
		return groundOnly(p, o)
	}
	if o.MaxLevels > 0 && p.ResidualLevels > o.MaxLevels {
		return nil, &SearchSpaceError{Levels: p.ResidualLevels, Limit: o.MaxLevels}
	}

	if o.Workers > 1 && p.ResidualLevels > 0 {
		return enumerateParallel(p, o)
	}

	e := newEngine(p, o.Prune, !o.CountOnly, o.OnConfiguration, newBudget(o.Ctx, o))
	e.run(p.ResidualSum, p.ResidualEnergy)

	return &Result{
		Configurations: e.out,
		Count:          e.count,
		Nodes:          e.nodes,
		Pruned:         e.pruned,
	}, e.err
}

// groundOnly reports the ground state as the unique configuration.
func groundOnly(p normalize.Reduced, o Options) (*Result, error) {
	c := append(ladder.Configuration{}, p.Ground...)
	res := &Result{Count: 1}
	if !o.CountOnly {
		res.Configurations = []ladder.Configuration{c}
	}
	if o.OnConfiguration != nil {
		if err := o.OnConfiguration(c.Clone()); err != nil {
			return res, fmt.Errorf("enumerate: configuration hook: %w", err)
		}
	}

	return res, nil
}

// enumerateParallel runs the first-position branches on up to o.Workers
// goroutines. Branch outputs are concatenated in branch order, which is the
// lexicographic order, and the hook is replayed on the merged list.
func enumerateParallel(p normalize.Reduced, o Options) (*Result, error) {
	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(min(o.Workers, branches))

	var (
		b      = newBudget(ctx, o)
		keep   = !o.CountOnly || o.OnConfiguration != nil
		parts  [branches]*engine
		branch int
	)
	for branch = 0; branch < branches; branch++ {
		v := branch
		e := newEngine(p, o.Prune, keep, nil, b)
		parts[v] = e
		eg.Go(func() error {
			e.runBranch(v, p.ResidualSum, p.ResidualEnergy)

			return e.err
		})
	}
	err := eg.Wait()

	res := &Result{}
	for _, e := range parts {
		res.Count += e.count
		res.Nodes += e.nodes
		res.Pruned += e.pruned
		if keep {
			res.Configurations = append(res.Configurations, e.out...)
		}
	}
	if err != nil {
		return res, err
	}

	if o.OnConfiguration != nil {
		for _, c := range res.Configurations {
			if herr := o.OnConfiguration(c.Clone()); herr != nil {
				err = fmt.Errorf("enumerate: configuration hook: %w", herr)

				break
			}
		}
	}
	if o.CountOnly {
		res.Configurations = nil
	}

	return res, err
}

// Count is a convenience wrapper returning only the number of configurations.
func Count(ctx context.Context, p normalize.Reduced, opts ...Option) (int, error) {
	all := make([]Option, 0, len(opts)+2)
	all = append(all, opts...)
	all = append(all, WithContext(ctx), WithCountOnly())
	res, err := Enumerate(p, all...)
	if res == nil {
		return 0, err
	}

	return res.Count, err
}
