package window_test

import (
	"fmt"

	"github.com/cwbudde/spectrice/dsp/window"
)

func ExampleHalf() {
	w, err := window.Half(window.TypeHann, 8, 4)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.4f %.4f %.4f %.4f\n", w[0], w[1], w[2], w[3])
	// Output:
	// 0.0155 0.1260 0.2822 0.3927
}

func ExampleMirror() {
	half, err := window.Half(window.TypeSine, 8, 2)
	if err != nil {
		panic(err)
	}
	full := window.Mirror(half)
	fmt.Println(len(full))
	// Output:
	// 8
}
