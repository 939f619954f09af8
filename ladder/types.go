package ladder

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Occupancy values. A level never holds more than Capacity particles.
const (
	Empty  = 0 // Empty: no particle on the level.
	Single = 1 // Single: one unpaired particle.
	Full   = 2 // Full: a spin pair, the level is closed.

	// Capacity is the maximum occupancy of any level.
	Capacity = Full
)

// Size limits. Below MaxParticles every ground-state energy fits int64
// exactly (it grows as N²/2 half units); MaxLength caps the number of
// levels a configuration may span.
const (
	MaxParticles = 1 << 20
	MaxLength    = 1 << 21
)

var (
	// ErrBadOccupancy indicates a configuration entry outside {0,1,2}.
	ErrBadOccupancy = errors.New("ladder: occupancy out of range")

	// ErrParticleCount indicates the occupancies do not sum to the expected N.
	ErrParticleCount = errors.New("ladder: particle count mismatch")

	// ErrEnergyMismatch indicates the energy-weighted sum differs from the expected E.
	ErrEnergyMismatch = errors.New("ladder: energy mismatch")
)

// HalfUnits is an energy expressed in units of one half, i.e. 2·E.
// Level i is worth 2i+1 half units.
type HalfUnits int64

// Float returns the energy as a float64 (h/2). Exact for |h| < 2^53.
func (h HalfUnits) Float() float64 { return float64(h) / 2 }

// String renders the energy in its natural form: "3" or "3.5".
func (h HalfUnits) String() string {
	if h%2 == 0 {
		return strconv.FormatInt(int64(h/2), 10)
	}
	if h < 0 {
		return "-" + HalfUnits(-h).String()
	}

	return strconv.FormatInt(int64(h/2), 10) + ".5"
}

// IsHalfInteger reports whether h encodes an energy with fractional part .5.
func (h HalfUnits) IsHalfInteger() bool { return h%2 != 0 }

// FromFloat converts e to half units. ok is false when e is not finite or
// 2e is not an integer representable in int64.
func FromFloat(e float64) (h HalfUnits, ok bool) {
	if math.IsNaN(e) || math.IsInf(e, 0) {
		return 0, false
	}
	d := e * 2
	if d != math.Trunc(d) || math.Abs(d) > 1<<62 {
		return 0, false
	}

	return HalfUnits(d), true
}

// LevelEnergy returns the energy of level i as a float64 (i + 0.5).
func LevelEnergy(i int) float64 { return float64(i) + 0.5 }

// LevelHalf returns the energy of level i in half units (2i+1).
func LevelHalf(i int) HalfUnits { return HalfUnits(2*i + 1) }

// SpanHalf returns Σ LevelHalf(j) for j in [from, from+count).
// The sum of 2j+1 over count consecutive levels is count·(2·from+count).
func SpanHalf(from, count int) HalfUnits {
	if count <= 0 {
		return 0
	}

	return HalfUnits(count) * HalfUnits(2*from+count)
}

// Configuration lists occupancies by level, starting at level 0.
type Configuration []int

// Particles returns Σ c[i].
func (c Configuration) Particles() int {
	var (
		s int
		v int
	)
	for _, v = range c {
		s += v
	}

	return s
}

// Energy returns Σ c[i]·(2i+1) in half units.
func (c Configuration) Energy() HalfUnits {
	var (
		s HalfUnits
		i int
	)
	for i = range c {
		s += HalfUnits(c[i]) * LevelHalf(i)
	}

	return s
}

// Clone returns an independent copy of c.
func (c Configuration) Clone() Configuration {
	if c == nil {
		return nil
	}
	out := make(Configuration, len(c))
	copy(out, c)

	return out
}

// String renders the occupancies separated by single spaces, e.g. "2 2 1 0".
func (c Configuration) String() string {
	var b strings.Builder
	b.Grow(2 * len(c))
	for i, v := range c {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}
