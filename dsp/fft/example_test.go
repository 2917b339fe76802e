package fft_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/spectrice/dsp/fft"
)

func ExamplePlan_ForwardCentered() {
	const n = 32

	p, err := fft.NewPlan(n)
	if err != nil {
		panic(err)
	}

	buf := make([]float64, n)
	freq := 2.5 / float64(n) // bin-centered at k=2
	for i := range buf {
		buf[i] = math.Cos(2 * math.Pi * freq * float64(i))
	}

	if err := p.ForwardCentered(buf); err != nil {
		panic(err)
	}

	peak, peakMag := 0, 0.0
	for k := 0; k < n/2; k++ {
		mag := math.Hypot(buf[2*k], buf[2*k+1])
		if mag > peakMag {
			peak, peakMag = k, mag
		}
	}

	fmt.Println(peak)
	// Output:
	// 2
}
