// Package enumerate — depth-first search engine.
//
// The engine walks tails over {0,1,2} with deterministic branching
// (ascending values, position 0 slowest) and an admissible feasibility test:
//
//  1. Capacity: r particles left need 0 ≤ r ≤ 2·k for k levels left.
//  2. Energy window: with q = r/2 pairs and r%2 singles, the least energy is
//     q pairs on the k lowest remaining levels plus the single just above,
//     the most is q pairs on the highest plus the single just below.
//     Both come from prefix sums in O(1).
//
// A tail is cut when either test fails. Every cut subtree provably holds no
// solution, so pruned and unpruned runs return the same list.
//
// Budget checks (context, deadline, step budget) are sparse: every 4096
// nodes per engine.
package enumerate

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/occupancy/ladder"
	"github.com/katalvlaran/occupancy/normalize"
)

// checkEvery is the sparse budget-check interval; must be a power of two.
const checkEvery = 4096

// budget is shared by all engines of one Enumerate call.
type budget struct {
	ctx context.Context

	limit int64
	steps atomic.Int64

	useDeadline bool
	deadline    time.Time
}

func newBudget(ctx context.Context, o Options) *budget {
	b := &budget{ctx: ctx, limit: o.StepBudget}
	if o.TimeLimit > 0 {
		b.useDeadline = true
		b.deadline = time.Now().Add(o.TimeLimit)
	}

	return b
}

// check accounts delta visited nodes and reports the first exhausted budget.
func (b *budget) check(delta int64) error {
	if err := b.ctx.Err(); err != nil {
		return err
	}
	if b.limit > 0 && b.steps.Add(delta) > b.limit {
		return ErrStepBudget
	}
	if b.useDeadline && time.Now().After(b.deadline) {
		return ErrTimeLimit
	}

	return nil
}

// engine holds the state of one depth-first walk.
type engine struct {
	// Problem data
	n      int                // residual level count
	w      []ladder.HalfUnits // w[k]: energy of residual level k
	pre    []ladder.HalfUnits // pre[k] = Σ w[:k]
	frozen int

	// Policy
	prune bool
	keep  bool
	emit  func(ladder.Configuration) error
	b     *budget

	// Walk state
	tail []int

	// Output and diagnostics
	out    []ladder.Configuration
	count  int
	nodes  int64
	pruned int64
	err    error
}

// newEngine prepares an engine for p. emit may be nil.
func newEngine(p normalize.Reduced, prune, keep bool, emit func(ladder.Configuration) error, b *budget) *engine {
	e := &engine{
		n:      p.ResidualLevels,
		w:      p.Energies(),
		frozen: p.Frozen,
		prune:  prune,
		keep:   keep,
		emit:   emit,
		b:      b,
		tail:   make([]int, p.ResidualLevels),
	}
	e.pre = make([]ladder.HalfUnits, e.n+1)
	for k := 0; k < e.n; k++ {
		e.pre[k+1] = e.pre[k] + e.w[k]
	}

	return e
}

// feasible reports whether r particles with energy t can still be placed on
// residual levels pos..n-1.
func (e *engine) feasible(pos, r int, t ladder.HalfUnits) bool {
	k := e.n - pos
	if r < 0 || r > ladder.Capacity*k || t < 0 {
		return false
	}
	q, odd := r/2, r%2

	lo := 2 * (e.pre[pos+q] - e.pre[pos])
	hi := 2 * (e.pre[e.n] - e.pre[e.n-q])
	if odd == 1 {
		lo += e.w[pos+q]
		hi += e.w[e.n-q-1]
	}

	return lo <= t && t <= hi
}

// step counts a node and runs the sparse budget check.
func (e *engine) step() bool {
	e.nodes++
	if e.nodes&(checkEvery-1) != 0 {
		return true
	}
	if err := e.b.check(checkEvery); err != nil {
		e.err = err

		return false
	}

	return true
}

// accept records the current tail as a solution.
func (e *engine) accept() {
	e.count++
	if !e.keep && e.emit == nil {
		return
	}
	c := make(ladder.Configuration, e.frozen+e.n)
	for i := 0; i < e.frozen; i++ {
		c[i] = ladder.Full
	}
	copy(c[e.frozen:], e.tail)

	if e.emit != nil {
		hc := c
		if e.keep {
			hc = c.Clone()
		}
		if err := e.emit(hc); err != nil {
			e.err = fmt.Errorf("enumerate: configuration hook: %w", err)

			return
		}
	}
	if e.keep {
		e.out = append(e.out, c)
	}
}

// dfs extends the tail at position pos with r particles and t half units left.
func (e *engine) dfs(pos, r int, t ladder.HalfUnits) {
	if e.err != nil || !e.step() {
		return
	}
	if pos == e.n {
		if r == 0 && t == 0 {
			e.accept()
		}

		return
	}
	if e.prune && !e.feasible(pos, r, t) {
		e.pruned++

		return
	}

	var v int
	for v = ladder.Empty; v <= ladder.Capacity; v++ {
		e.tail[pos] = v
		e.dfs(pos+1, r-v, t-ladder.HalfUnits(v)*e.w[pos])
		if e.err != nil {
			return
		}
	}
}

// run searches the whole tree from the root.
func (e *engine) run(sum int, energy ladder.HalfUnits) {
	e.dfs(0, sum, energy)
}

// runBranch searches only the subtree with the first position fixed to v.
// The caller guarantees n ≥ 1.
func (e *engine) runBranch(v, sum int, energy ladder.HalfUnits) {
	e.tail[0] = v
	e.dfs(1, sum-v, energy-ladder.HalfUnits(v)*e.w[0])
}
