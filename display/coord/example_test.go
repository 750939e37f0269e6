package coord_test

import (
	"fmt"

	"github.com/cwbudde/spectrum-display/display/coord"
)

func ExampleFrequencyToX() {
	x := coord.FrequencyToX(1000, coord.Width)
	fmt.Printf("%.2f %.0f\n", x, coord.XToFrequency(x, coord.Width))
	// Output:
	// 144.98 1000
}

func ExampleDBToY() {
	fmt.Println(coord.DBToY(0), coord.DBToY(-48), coord.DBToY(-96))
	// Output:
	// 0 87.5 175
}
