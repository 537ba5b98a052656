// SPDX-License-Identifier: MIT

package lotka_test

import (
	"fmt"

	"github.com/katalvlaran/mathmodels/lotka"
)

// ExampleSimulate runs three Euler steps of a predator starving without prey.
func ExampleSimulate() {
	tr, err := lotka.Simulate(lotka.Params{
		Prey0: 3, Predator0: 5,
		Gamma:    1,
		Duration: 0.35, Step: 0.1,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i := 0; i < tr.Len(); i++ {
		fmt.Printf("t=%.1f prey=%.2f predator=%.2f\n", tr.Time[i], tr.Prey[i], tr.Predator[i])
	}
	// Output:
	// t=0.0 prey=3.00 predator=5.00
	// t=0.1 prey=3.00 predator=4.50
	// t=0.2 prey=3.00 predator=4.05
}

// ExampleEquilibrium prints the coexistence point (γ/δ, α/β).
func ExampleEquilibrium() {
	x, y, _ := lotka.Equilibrium(lotka.Params{Alpha: 2, Beta: 0.5, Delta: 0.25, Gamma: 1})
	fmt.Println(x, y)
	// Output:
	// 4 4
}
