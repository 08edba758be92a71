package interp_test

import (
	"fmt"
	"math"

	"github.com/zetaline/zetaline/interp"
)

// ExampleBandLimited reconstructs a sine wave between its samples: 32
// points over one period recover the peak value at π/2 exactly, because
// the signal is band-limited well below the sampling rate.
func ExampleBandLimited() {
	const n = 32
	delta := 2 * math.Pi / n
	data := make([]complex128, n)
	for i := range data {
		data[i] = complex(math.Sin(float64(i)*delta), 0)
	}

	bl, err := interp.NewBandLimited(data, delta, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%.2f\n", real(bl.At(math.Pi/2)))
	// Output:
	// 1.00
}

// ExampleNextPow2 shows the grid-size rounding used by the evaluation
// engine.
func ExampleNextPow2() {
	fmt.Println(interp.NextPow2(100), interp.NextPow2(128), interp.NextPow2(129))
	// Output:
	// 128 128 256
}
