// Package occupancy enumerates how N indistinguishable particles can occupy
// an equally spaced ladder of energy levels (energies 0.5, 1.5, 2.5, …, two
// particles per level) with a prescribed total energy E.
//
// 🚀 What is inside?
//
//	A small, deterministic pipeline:
//		• ladder/    — level energies in exact half units, configurations, ground state
//		• normalize/ — validate (N, E), freeze the levels that can never empty,
//		               reduce to a residual search problem
//		• enumerate/ — exhaustive depth-first search over {0,1,2}^L with optional
//		               branch-and-bound, worker split, budgets and streaming
//		• report/    — text, JSON and YAML output
//		• config/    — YAML configuration for the CLI
//		• cmd/occupancy — the command-line front end
//
// ✨ Guarantees
//
//   - Exact: every total is an integer count of half units; no float equality.
//   - Complete: the output is exactly the set of valid configurations.
//   - Deterministic: lexicographic order, identical for any worker count or
//     pruning policy.
//
// Quick example (N=5, E=7.5):
//
//	level:   0   1   2   3
//	         2   1   2   0
//	         2   2   0   1
//
// Both place five particles with energy 2·0.5 + 1·1.5 + 2·2.5 = 7.5 and
// 2·0.5 + 2·1.5 + 1·3.5 = 7.5 respectively.
//
//	go install github.com/katalvlaran/occupancy/cmd/occupancy@latest
package occupancy
