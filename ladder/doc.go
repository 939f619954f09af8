// Package ladder models the half-integer energy ladder that particles occupy.
//
// What:
//
//   - Level i has energy i + 0.5 and room for two indistinguishable particles.
//   - Energies are carried as HalfUnits (twice the energy), so level i is
//     worth 2i+1 and every sum stays an exact integer.
//   - Configuration is an occupancy list indexed by level, each entry in
//     {Empty, Single, Full}.
//   - GroundState(n) fills the lowest levels first.
//
// Why:
//
//	Equality on totals must be exact. Summing float64 half-integers is exact
//	only up to a point; doubled integers are exact everywhere we care about.
//
// Complexity:
//
//   - GroundState, Particles, Energy, Verify: O(L) for L levels.
//   - Energy sums over contiguous levels: O(1) via SpanHalf.
//
// Errors:
//
//   - ErrBadOccupancy     an entry is outside {0,1,2}
//   - ErrParticleCount    sum of occupancies differs from N
//   - ErrEnergyMismatch   weighted sum differs from E
package ladder
