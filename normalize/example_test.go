package normalize_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/occupancy/normalize"
)

// ExampleReduce derives the reduced problem for 20 particles at E = 106.
//
// The ground state fills levels 0..9 (E = 100), leaving 6 units of excess:
// levels may reach index 15, and levels 0..3 can never lose a particle.
func ExampleReduce() {
	r, err := normalize.Reduce(20, 106)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("ground=%s excess=%d\n", r.GroundEnergy, r.Excess())
	fmt.Printf("levels=%d frozen=%d residual=%d\n", r.MaxLevel, r.Frozen, r.ResidualLevels)
	fmt.Printf("targets: sum=%d energy=%s\n", r.ResidualSum, r.ResidualEnergy)
	// Output:
	// ground=100 excess=6
	// levels=16 frozen=4 residual=12
	// targets: sum=12 energy=90
}

// ExampleReduce_invalid shows the two common rejections.
func ExampleReduce_invalid() {
	_, err := normalize.Reduce(3, 5)
	fmt.Println(errors.Is(err, normalize.ErrParityMismatch))

	_, err = normalize.Reduce(4, 2)
	fmt.Println(errors.Is(err, normalize.ErrBelowGroundState))
	fmt.Println(err)
	// Output:
	// true
	// true
	// normalize: energy below ground state (N=4, E=2, ground-state E=4)
}
