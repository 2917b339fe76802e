package riffwav_test

import (
	"bytes"
	"fmt"

	"github.com/cwbudde/spectrice/internal/riffwav"
)

func ExampleWrite() {
	f := &riffwav.File{
		SampleRate:  8000,
		NumChannels: 1,
		Format:      riffwav.FormatPCM16,
		Samples:     []float64{0, 0.5, -0.5},
	}

	var buf bytes.Buffer
	if err := riffwav.Write(&buf, f); err != nil {
		fmt.Println("Write:", err)
		return
	}

	decoded, err := riffwav.Read(&buf)
	if err != nil {
		fmt.Println("Read:", err)
		return
	}

	fmt.Println(decoded.SampleRate, decoded.NumChannels, decoded.NumFrames())
	// Output:
	// 8000 1 3
}
