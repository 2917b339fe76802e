package spectrice

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/spectrice/dsp/core"
)

// Process runs one block of NHops cooperative hops across every channel
// (spec.md §4.3). in must hold BlockSize*NChan interleaved samples. out
// is either nil (discard, used for priming) or a BlockSize*NChan buffer
// that receives the reconstructed output; a one-block algorithmic delay
// is built into the overlap-add, so out's i-th call corresponds to the
// (i-1)-th call's input up to hop-granularity boundaries.
//
// Process never returns an error for a State that New returned
// successfully; the error return exists only to report misuse (wrong
// buffer lengths, or calling Process after Close).
func (s *State) Process(out, in []float64) error {
	if s == nil || s.closed {
		return ErrAlreadyClosed
	}

	n := s.cfg.BlockSize
	nChan := s.cfg.NChan
	frameLen := n * nChan

	if len(in) != frameLen {
		return errInputLength(frameLen, len(in))
	}
	if out != nil && len(out) != frameLen {
		return errOutputLength(frameLen, len(out))
	}

	hopSize := s.cfg.HopSize()

	for c := 0; c < nChan; c++ {
		for h := 0; h < s.cfg.NHops; h++ {
			if err := s.runHop(c, h, hopSize, out, in); err != nil {
				return err
			}
		}
	}

	s.blockIdx++

	return nil
}

// runHop implements one iteration of spec.md §4.3's per-channel,
// per-hop loop: windowed assembly, forward centered FFT, mix-ratio
// computation, per-bin amplitude/phase freezing, inverse centered FFT,
// windowed accumulation, and the output/shift step.
func (s *State) runHop(c, h, hopSize int, out, in []float64) error {
	n := s.cfg.BlockSize
	half := n / 2
	nChan := s.cfg.NChan

	// 1. Windowed assembly: BfDFT[n] = W[n] * Lfwd[c][n], symmetric.
	vecmath.MulBlock(s.bfDFT, s.winFull, s.fwdLap[c])

	// 2. Forward centered FFT.
	if err := s.plan.ForwardCentered(s.bfDFT); err != nil {
		return err
	}

	// 3. Mix-ratio computation (single scalar per hop).
	idx := (float64(s.blockIdx) + float64(h)/float64(s.cfg.NHops)) * float64(n)
	m := s.mixRatio(idx)

	// 4. Per-bin amplitude/phase freezing.
	for k := 0; k < half; k++ {
		re, im := s.bfDFT[2*k], s.bfDFT[2*k+1]
		abs := math.Hypot(re, im)
		arg := math.Atan2(im, re) / (2 * math.Pi)

		if s.cfg.FreezeAmp {
			abs = m*s.mag[c][k] + (1-m)*abs
			if !s.haveSnapshot {
				s.mag[c][k] = abs
			}
		}

		if s.cfg.FreezePhase {
			hops := float64(s.cfg.NHops)
			bin := float64(k)

			dArg := arg - s.prevArg[c][k]
			s.prevArg[c][k] = arg

			dArg += bin / hops
			dArg = wrapUnit(dArg)

			s.argStep[c][k] = m*s.argStep[c][k] + (1-m)*dArg
			dArg = s.argStep[c][k] - bin/hops

			s.argAccum[c][k] = fracPart(s.argAccum[c][k] + dArg)
			arg = s.argAccum[c][k]
		}

		s.bfDFT[2*k] = abs * math.Cos(2*math.Pi*arg)
		s.bfDFT[2*k+1] = abs * math.Sin(2*math.Pi*arg)
	}

	// 5. Inverse centered FFT.
	if err := s.plan.InverseCentered(s.bfDFT); err != nil {
		return err
	}

	// 6. Windowed accumulation: Linv[c][n] += W[n] * BfDFT[n] * N/2. The
	// FFT pair round-trips exactly, while the normalized window's squares
	// sum to 2/N across the overlapping hops, so N/2 restores unity gain.
	vecmath.MulBlock(s.accumTemp, s.winFull, s.bfDFT)
	vecmath.ScaleBlockInPlace(s.accumTemp, float64(half))
	vecmath.AddBlockInPlace(s.invLap[c], s.accumTemp)

	// 7. Output and shift.
	if out != nil {
		for k := 0; k < hopSize; k++ {
			out[(h*hopSize+k)*nChan+c] = s.invLap[c][k]
		}
	}

	copy(s.fwdLap[c], s.fwdLap[c][hopSize:])
	copy(s.invLap[c], s.invLap[c][hopSize:])
	for k := n - hopSize; k < n; k++ {
		s.invLap[c][k] = 0
	}

	for k := 0; k < hopSize; k++ {
		s.fwdLap[c][n-hopSize+k] = in[(h*hopSize+k)*nChan+c]
	}

	return nil
}

// mixRatio computes the crossfade-controlled freeze mix for a sample
// position idx, in post-priming coordinates (spec.md §4.3 step 3).
func (s *State) mixRatio(idx float64) float64 {
	beg := float64(s.cfg.FreezeStart)
	end := float64(s.cfg.FreezePoint)

	var r float64
	if idx >= end {
		r = 1
	} else {
		r = (idx - beg) / (end - beg)
	}

	return core.Clamp(r*s.cfg.FreezeFactor, 0, 1)
}

// wrapUnit wraps x into [0, 1) by subtracting its truncated integer part
// and correcting negative results (spec.md §4.3: "dArg -= trunc(dArg);
// if negative, dArg += 1").
func wrapUnit(x float64) float64 {
	x -= math.Trunc(x)
	if x < 0 {
		x++
	}
	return x
}

// fracPart returns x's fractional part (x - trunc(x)), which may be
// negative; this is the bare "fractional_part" used for ArgAccum, as
// distinct from wrapUnit's fully normalized [0, 1) wrap.
func fracPart(x float64) float64 {
	return x - math.Trunc(x)
}
