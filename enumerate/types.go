// Package enumerate defines options, results and errors for the
// configuration search.
package enumerate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/occupancy/ladder"
)

// DefaultMaxLevels bounds the residual level count when no explicit bound is given.
const DefaultMaxLevels = 24

var (
	// ErrSearchSpaceTooLarge is matched by every *SearchSpaceError.
	ErrSearchSpaceTooLarge = errors.New("enumerate: search space too large")

	// ErrBadOption indicates an invalid option value (negative bound, budget or worker count).
	ErrBadOption = errors.New("enumerate: invalid option")

	// ErrTimeLimit indicates the soft time budget was exceeded before the search finished.
	ErrTimeLimit = errors.New("enumerate: time limit exceeded")

	// ErrStepBudget indicates the node budget ran out before the search finished.
	ErrStepBudget = errors.New("enumerate: step budget exhausted")
)

// SearchSpaceError reports a residual level count above the caller's bound.
type SearchSpaceError struct {
	Levels int // residual level count L of the rejected problem
	Limit  int // bound that was in force
}

// Error implements error.
func (e *SearchSpaceError) Error() string {
	return fmt.Sprintf("%v: %d residual levels (3^%d candidates), limit %d",
		ErrSearchSpaceTooLarge, e.Levels, e.Levels, e.Limit)
}

// Unwrap lets errors.Is match ErrSearchSpaceTooLarge.
func (e *SearchSpaceError) Unwrap() error { return ErrSearchSpaceTooLarge }

// Option configures optional behavior of Enumerate.
type Option func(*Options)

// Options holds the search policy.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// MaxLevels rejects problems with more residual levels. 0 disables the check.
	MaxLevels int

	// Prune enables branch-and-bound cuts. The result set does not depend on it.
	Prune bool

	// Workers > 1 splits the first position across goroutines.
	// Values above 3 behave like 3.
	Workers int

	// TimeLimit is a soft wall-clock budget; 0 means unlimited.
	TimeLimit time.Duration

	// StepBudget caps visited search nodes; 0 means unlimited.
	StepBudget int64

	// CountOnly skips materialising configurations; Result.Count is still exact.
	CountOnly bool

	// OnConfiguration, if non-nil, receives every configuration in output
	// order. The slice is owned by the callee. Returning an error aborts.
	OnConfiguration func(c ladder.Configuration) error
}

// DefaultOptions returns Options with:
//   - Background context
//   - MaxLevels = DefaultMaxLevels
//   - pruning on, one worker
//   - no time or step budget
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxLevels: DefaultMaxLevels,
		Prune:     true,
		Workers:   1,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxLevels sets the residual level bound (0 = unbounded).
func WithMaxLevels(limit int) Option {
	return func(o *Options) { o.MaxLevels = limit }
}

// WithPruning toggles branch-and-bound cuts.
func WithPruning(on bool) Option {
	return func(o *Options) { o.Prune = on }
}

// WithWorkers sets the number of goroutines for the first-position split.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithTimeLimit sets a soft wall-clock budget.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// WithStepBudget caps the number of visited nodes.
func WithStepBudget(n int64) Option {
	return func(o *Options) { o.StepBudget = n }
}

// WithCountOnly counts configurations without storing them.
func WithCountOnly() Option {
	return func(o *Options) { o.CountOnly = true }
}

// WithOnConfiguration installs a streaming hook.
func WithOnConfiguration(fn func(c ladder.Configuration) error) Option {
	return func(o *Options) { o.OnConfiguration = fn }
}

// validate rejects negative knobs.
func (o Options) validate() error {
	if o.MaxLevels < 0 || o.Workers < 0 || o.TimeLimit < 0 || o.StepBudget < 0 {
		return ErrBadOption
	}

	return nil
}

// Result is the outcome of a search.
type Result struct {
	// Configurations in lexicographic order; nil in count-only mode.
	Configurations []ladder.Configuration

	// Count is the number of configurations found.
	Count int

	// Nodes is the number of search nodes visited (0 for the ground-state shortcut).
	Nodes int64

	// Pruned is the number of subtrees cut by the bound.
	Pruned int64
}
