package spectrice_test

import (
	"fmt"

	"github.com/cwbudde/spectrice/dsp/window"
	"github.com/cwbudde/spectrice/spectrice"
)

func ExampleNew() {
	cfg := spectrice.Config{
		NChan:        1,
		BlockSize:    32,
		NHops:        8,
		Window:       window.TypeHann,
		FreezeStart:  32,
		FreezePoint:  64,
		FreezeFactor: 1,
		FreezeAmp:    true,
	}

	s, err := spectrice.New(cfg, nil, nil)
	if err != nil {
		fmt.Println("New:", err)
		return
	}
	defer s.Close()

	frame := make([]float64, cfg.BlockSize)
	out := make([]float64, cfg.BlockSize)
	for i := range frame {
		frame[i] = 0.5
	}

	if err := s.Process(out, frame); err != nil {
		fmt.Println("Process:", err)
		return
	}

	fmt.Println(s.BlockIdx())
	// Output:
	// 1
}
