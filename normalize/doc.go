// Package normalize turns raw inputs (particle count N, total energy E) into
// a reduced search problem for package enumerate.
//
// What:
//
//   - Validates N and E: non-negative, finite, parity consistent (E integer
//     for even N, E with fractional part .5 for odd N), and E not below the
//     ground-state energy of N particles. N and the resulting configuration
//     length are capped (ladder.MaxParticles, ladder.MaxLength) before
//     anything is allocated.
//   - Derives the excess energy above the ground state and from it:
//     MaxLevel, the number of levels any configuration can touch, and
//     Frozen, the count of lowest levels that stay Full in every
//     configuration with total energy E.
//   - Splits the problem: the frozen prefix is fixed, and only the
//     ResidualLevels above it are searched, against ResidualSum particles
//     and ResidualEnergy half units.
//
// Why the prefix is frozen:
//
//	Promoting a particle out of level i costs at least the distance from i
//	to the first level with a vacancy in the ground state. Levels below
//	(ground length − excess), one lower again for odd N since the top ground
//	level is already half empty, cannot afford it. This relies on a uniform
//	ladder; a non-uniform spacing would need the bound re-derived.
//
// Complexity: O(MaxLevel) time and memory.
//
// Errors (all returned as *InputError, all matching ErrInvalidInput):
//
//   - ErrNegativeInput      N < 0 or E < 0
//   - ErrNonFinite          E is NaN or ±Inf
//   - ErrParityMismatch     2E not an integer, or parity of 2E differs from N
//   - ErrBelowGroundState   E below the ground-state energy
//   - ErrTooManyParticles   N above ladder.MaxParticles
//   - ErrTooManyLevels      MaxLevel would exceed ladder.MaxLength
package normalize
