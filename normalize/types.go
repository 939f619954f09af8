package normalize

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/occupancy/ladder"
)

var (
	// ErrInvalidInput is matched by every *InputError.
	ErrInvalidInput = errors.New("normalize: invalid input")

	// ErrNegativeInput indicates N < 0 or E < 0.
	ErrNegativeInput = errors.New("normalize: negative particle count or energy")

	// ErrNonFinite indicates E is NaN or infinite.
	ErrNonFinite = errors.New("normalize: energy is not finite")

	// ErrParityMismatch indicates E is not an integer for even N, or does not
	// end in .5 for odd N.
	ErrParityMismatch = errors.New("normalize: energy parity does not match particle count")

	// ErrBelowGroundState indicates E is lower than the ground-state energy of N particles.
	ErrBelowGroundState = errors.New("normalize: energy below ground state")

	// ErrTooManyParticles indicates N > ladder.MaxParticles.
	ErrTooManyParticles = errors.New("normalize: particle count too large")

	// ErrTooManyLevels indicates configurations would span more than
	// ladder.MaxLength levels.
	ErrTooManyLevels = errors.New("normalize: configuration length too large")
)

// InputError reports rejected inputs together with the values needed to
// diagnose them. Callers should re-prompt; retrying with the same inputs
// cannot succeed.
type InputError struct {
	// Kind is one of the package sentinels (ErrNegativeInput, ErrNonFinite,
	// ErrParityMismatch, ErrBelowGroundState, ErrTooManyParticles,
	// ErrTooManyLevels).
	Kind error

	// Particles and Energy are the offending inputs as supplied.
	Particles int
	Energy    float64

	// GroundEnergy is the ground-state energy of Particles (0 when N is
	// negative or above ladder.MaxParticles).
	GroundEnergy float64
}

// Error implements error.
func (e *InputError) Error() string {
	return fmt.Sprintf("%v (N=%d, E=%g, ground-state E=%g)", e.Kind, e.Particles, e.Energy, e.GroundEnergy)
}

// Unwrap exposes both ErrInvalidInput and the specific Kind to errors.Is.
func (e *InputError) Unwrap() []error { return []error{ErrInvalidInput, e.Kind} }

// Reduced is the search problem left after the frozen prefix is removed.
//
// Invariants:
//   - ResidualLevels == MaxLevel − Frozen
//   - ResidualSum == Particles − ladder.Full·Frozen
//   - ResidualEnergy == Energy − ladder.Full·Σ LevelHalf(i), i < Frozen
type Reduced struct {
	// Particles is N.
	Particles int

	// Energy is the target E in half units.
	Energy ladder.HalfUnits

	// Ground is the ground-state configuration for N.
	Ground ladder.Configuration

	// GroundEnergy is the energy of Ground in half units.
	GroundEnergy ladder.HalfUnits

	// MaxLevel is the number of levels every configuration spans.
	MaxLevel int

	// Frozen is the length of the prefix fixed at ladder.Full.
	Frozen int

	// ResidualLevels, ResidualSum and ResidualEnergy describe the tail search.
	ResidualLevels int
	ResidualSum    int
	ResidualEnergy ladder.HalfUnits
}

// IsGroundState reports whether E equals the ground-state energy, in which
// case Ground is the only configuration.
func (r Reduced) IsGroundState() bool { return r.Energy == r.GroundEnergy }

// Excess returns E minus the ground-state energy, in whole energy units.
func (r Reduced) Excess() int { return int((r.Energy - r.GroundEnergy) / 2) }

// SearchSpace returns the exponent L of the 3^L candidate tails.
func (r Reduced) SearchSpace() int { return r.ResidualLevels }

// Energies returns the half-unit energies of the residual levels in
// ascending order: Energies()[k] == ladder.LevelHalf(Frozen+k).
// It allocates ResidualLevels entries; check SearchSpace first on untrusted input.
func (r Reduced) Energies() []ladder.HalfUnits {
	out := make([]ladder.HalfUnits, r.ResidualLevels)
	for k := range out {
		out[k] = ladder.LevelHalf(r.Frozen + k)
	}

	return out
}

// Prefix returns the frozen prefix: Frozen levels at ladder.Full.
func (r Reduced) Prefix() ladder.Configuration { return ladder.Filled(r.Frozen) }

// Complete prepends the frozen prefix to tail, yielding a full configuration.
func (r Reduced) Complete(tail []int) ladder.Configuration {
	out := make(ladder.Configuration, r.Frozen+len(tail))
	for i := 0; i < r.Frozen; i++ {
		out[i] = ladder.Full
	}
	copy(out[r.Frozen:], tail)

	return out
}
