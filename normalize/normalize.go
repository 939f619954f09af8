package normalize

import (
	"math"

	"github.com/katalvlaran/occupancy/ladder"
)

// Reduce validates (n, e) and derives the reduced search problem.
// e is the total energy in natural units (level i is worth i + 0.5).
//
// Errors: *InputError wrapping ErrNegativeInput, ErrNonFinite,
// ErrParityMismatch, ErrBelowGroundState, ErrTooManyParticles or
// ErrTooManyLevels.
func Reduce(n int, e float64) (Reduced, error) {
	if math.IsNaN(e) {
		return Reduced{}, inputError(ErrNonFinite, n, e)
	}
	if n < 0 || e < 0 {
		return Reduced{}, inputError(ErrNegativeInput, n, e)
	}
	h, ok := ladder.FromFloat(e)
	if !ok {
		if math.IsInf(e, 0) {
			return Reduced{}, inputError(ErrNonFinite, n, e)
		}

		return Reduced{}, inputError(ErrParityMismatch, n, e)
	}

	return ReduceHalf(n, h)
}

// ReduceHalf is Reduce with the energy already expressed in half units.
//
// Algorithm:
//  1. Ground state: n/2 Full levels, plus a Single level for odd n.
//  2. Reject e below the ground-state energy; excess = (e − ground)/2.
//  3. MaxLevel = len(ground) + excess, at most ladder.MaxLength.
//  4. Frozen = len(ground) − excess, minus one more for odd n, clamped to ≥ 0.
//  5. Residual targets are what remains after removing Frozen Full levels.
//
// Complexity: O(n) for the ground state; everything else is O(1).
func ReduceHalf(n int, e ladder.HalfUnits) (Reduced, error) {
	if n < 0 || e < 0 {
		return Reduced{}, inputError(ErrNegativeInput, n, e.Float())
	}
	if n > ladder.MaxParticles {
		return Reduced{}, inputError(ErrTooManyParticles, n, e.Float())
	}
	// Full pairs contribute whole energies, a lone particle adds a half.
	if int(e%2) != n%2 {
		return Reduced{}, inputError(ErrParityMismatch, n, e.Float())
	}
	g := ladder.GroundEnergy(n)
	if e < g {
		return Reduced{}, inputError(ErrBelowGroundState, n, e.Float())
	}

	base := (n + 1) / 2
	if (e-g)/2 > ladder.HalfUnits(ladder.MaxLength-base) {
		return Reduced{}, inputError(ErrTooManyLevels, n, e.Float())
	}
	excess := int((e - g) / 2)
	ground := ladder.GroundState(n)

	frozen := base - excess
	if n%2 == 1 {
		frozen--
	}
	if frozen < 0 {
		frozen = 0
	}
	maxLevel := base + excess

	return Reduced{
		Particles:      n,
		Energy:         e,
		Ground:         ground,
		GroundEnergy:   g,
		MaxLevel:       maxLevel,
		Frozen:         frozen,
		ResidualLevels: maxLevel - frozen,
		ResidualSum:    n - ladder.Full*frozen,
		ResidualEnergy: e - ladder.Full*ladder.SpanHalf(0, frozen),
	}, nil
}

// inputError builds an *InputError, filling the ground-state energy when n is in range.
func inputError(kind error, n int, e float64) *InputError {
	ie := &InputError{Kind: kind, Particles: n, Energy: e}
	if n >= 0 && n <= ladder.MaxParticles {
		ie.GroundEnergy = ladder.GroundEnergy(n).Float()
	}

	return ie
}
