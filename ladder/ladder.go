package ladder

import "fmt"

// GroundState returns the minimum-energy configuration for n particles:
// n/2 Full levels followed by one Single level when n is odd.
// n ≤ 0 yields an empty (non-nil) configuration.
//
// Complexity: O(n).
func GroundState(n int) Configuration {
	if n <= 0 {
		return Configuration{}
	}
	pairs := n / 2
	out := make(Configuration, pairs, pairs+n%2)
	for i := range out {
		out[i] = Full
	}
	if n%2 == 1 {
		out = append(out, Single)
	}

	return out
}

// GroundEnergy returns the energy of GroundState(n) in half units without
// materialising it. The result is exact for n ≤ MaxParticles; larger n is
// the caller's to reject.
func GroundEnergy(n int) HalfUnits {
	if n <= 0 {
		return 0
	}
	pairs := n / 2
	e := 2 * SpanHalf(0, pairs)
	if n%2 == 1 {
		e += LevelHalf(pairs)
	}

	return e
}

// Filled returns a configuration of length k with every level Full.
func Filled(k int) Configuration {
	if k < 0 {
		k = 0
	}
	out := make(Configuration, k)
	for i := range out {
		out[i] = Full
	}

	return out
}

// Verify checks that every entry of c lies in {0,1,2}, that c holds exactly
// n particles and that its energy equals e.
// The returned error wraps one of ErrBadOccupancy, ErrParticleCount, ErrEnergyMismatch.
func Verify(c Configuration, n int, e HalfUnits) error {
	for i, v := range c {
		if v < Empty || v > Capacity {
			return fmt.Errorf("level %d holds %d: %w", i, v, ErrBadOccupancy)
		}
	}
	if got := c.Particles(); got != n {
		return fmt.Errorf("got %d particles, want %d: %w", got, n, ErrParticleCount)
	}
	if got := c.Energy(); got != e {
		return fmt.Errorf("got energy %s, want %s: %w", got, e, ErrEnergyMismatch)
	}

	return nil
}
