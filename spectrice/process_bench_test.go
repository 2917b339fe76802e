package spectrice_test

import (
	"strconv"
	"testing"

	"github.com/cwbudde/spectrice/dsp/window"
	"github.com/cwbudde/spectrice/spectrice"
)

func BenchmarkProcess(b *testing.B) {
	sizes := []int{64, 256, 1024, 4096}
	for _, n := range sizes {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			cfg := spectrice.Config{
				NChan:        2,
				BlockSize:    n,
				NHops:        8,
				Window:       window.TypeHann,
				FreezeStart:  n,
				FreezePoint:  2 * n,
				FreezeFactor: 1,
				FreezeAmp:    true,
				FreezePhase:  true,
			}

			s, err := spectrice.New(cfg, nil, nil)
			if err != nil {
				b.Fatal(err)
			}
			defer s.Close()

			frame := make([]float64, cfg.BlockSize*cfg.NChan)
			out := make([]float64, cfg.BlockSize*cfg.NChan)

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := s.Process(out, frame); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
