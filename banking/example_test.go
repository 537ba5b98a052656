// SPDX-License-Identifier: MIT

package banking_test

import (
	"fmt"

	"github.com/katalvlaran/mathmodels/banking"
)

// ExampleReserve_CumulativeDeposits follows a 500 deposit through 400 banks
// keeping 5% in reserve.
func ExampleReserve_CumulativeDeposits() {
	r, err := banking.NewReserve(500, 400, 0.05)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	d := r.CumulativeDeposits()
	fmt.Printf("after bank 0: %.2f\n", d[0])
	fmt.Printf("after bank 1: %.2f\n", d[1])
	fmt.Printf("after bank 400: %.2f\n", d[len(d)-1])
	fmt.Printf("multiplier: %g, limit: %g\n", r.Multiplier(), r.TotalDepositsLimit())
	// Output:
	// after bank 0: 500.00
	// after bank 1: 975.00
	// after bank 400: 10000.00
	// multiplier: 20, limit: 10000
}
