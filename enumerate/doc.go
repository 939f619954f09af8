// Package enumerate lists every occupancy configuration that satisfies a
// normalize.Reduced problem.
//
// What:
//
//	Enumerate walks all length-L tails over {0,1,2} depth-first, position 0
//	varying slowest and values ascending, and keeps the tails whose sum is
//	ResidualSum and whose energy-weighted sum is ResidualEnergy. Each kept
//	tail is prefixed with the frozen Full levels. Output order is therefore
//	lexicographic, and identical across runs, worker counts and pruning
//	policies.
//
// Key features:
//   - Branch-and-bound (WithPruning, on by default): a partial tail is cut
//     when the particles left cannot fit, or the energy left lies outside the
//     [min, max] energy those particles can reach on the remaining levels.
//   - Parallel split (WithWorkers): the three first-position branches run
//     on separate goroutines and are concatenated in branch order.
//   - Cancellation via context.Context, a soft time limit and a step budget,
//     all checked every 4096 search nodes.
//   - Streaming hook (WithOnConfiguration) and count-only mode.
//   - A caller bound on L (WithMaxLevels) rejects 3^L blow-ups up front.
//
// Complexity:
//
//   - Unpruned: O(3^L · L) time.
//   - Pruned: O(1) per visited node (prefix sums built once in O(L)), far
//     fewer nodes in practice.
//   - Memory: O(L) for the walk plus the output.
//
// Errors:
//
//   - ErrSearchSpaceTooLarge   L exceeds the configured bound (*SearchSpaceError)
//   - ErrBadOption             negative option values
//   - ErrTimeLimit             soft time budget exceeded
//   - ErrStepBudget            node budget exhausted
//   - context errors           the supplied context was cancelled
//   - hook errors              returned by OnConfiguration, wrapped
package enumerate
