package spectrice

import (
	"math"

	"github.com/cwbudde/spectrice/dsp/fft"
	"github.com/cwbudde/spectrice/dsp/window"
	"github.com/cwbudde/spectrice/internal/alignedmem"
)

// State owns every buffer a freeze operation needs: the analysis window,
// the forward/inverse overlap laps, the running or snapshotted magnitude
// table, the optional phase-step memory, and the block index. Each lap,
// magnitude table, phase buffer and FFT scratch buffer is its own 64-byte
// aligned allocation from internal/alignedmem; State is not safe for
// concurrent use.
type State struct {
	cfg Config

	plan    *fft.Plan
	winHalf []float64 // length blockSize/2
	winFull []float64 // length blockSize, mirrored

	fwdLap [][]float64 // [chan][blockSize]
	invLap [][]float64 // [chan][blockSize]
	mag    [][]float64 // [chan][blockSize/2]

	haveSnapshot bool

	// Phase-step memory, allocated only when cfg.FreezePhase is set.
	prevArg  [][]float64 // [chan][blockSize/2]
	argAccum [][]float64 // [chan][blockSize/2]
	argStep  [][]float64 // [chan][blockSize/2]

	bfDFT     []float64 // length blockSize, transient FFT workspace
	accumTemp []float64 // length blockSize, windowed-accumulate scratch

	blockIdx int
	closed   bool
}

// New validates cfg, allocates a State, and prepares it for Process.
// priming and snapshot are each either nil or BlockSize*NChan interleaved
// samples (spec.md §6's Init contract). If priming is non-nil, New runs
// one Process call with a nil output to warm the forward lap, which
// advances the block index to 1 (spec.md §4.4, §9).
//
// New returns an error (the idiomatic rendering of the original Init's
// boolean failure return, spec.md §7) and a nil *State on failure;
// Close is always safe to call afterwards regardless.
func New(cfg Config, priming, snapshot []float64) (*State, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.FreezePhase && snapshot != nil {
		return nil, ErrFreezePhaseWithSnapshot
	}

	n := cfg.BlockSize
	half := n / 2
	frameLen := n * cfg.NChan

	if priming != nil && len(priming) != frameLen {
		return nil, errPrimingLength(frameLen, len(priming))
	}
	if snapshot != nil && len(snapshot) != frameLen {
		return nil, errSnapshotLength(frameLen, len(snapshot))
	}

	winHalf, err := window.Half(cfg.Window, n, cfg.NHops)
	if err != nil {
		return nil, err
	}

	s := &State{
		cfg:     cfg,
		winHalf: winHalf,
		winFull: window.Mirror(winHalf),
	}

	s.plan, err = fft.NewPlan(n)
	if err != nil {
		return nil, err
	}

	s.fwdLap = make([][]float64, cfg.NChan)
	s.invLap = make([][]float64, cfg.NChan)
	s.mag = make([][]float64, cfg.NChan)
	for c := 0; c < cfg.NChan; c++ {
		s.fwdLap[c] = alignedmem.Float64s(n)
		s.invLap[c] = alignedmem.Float64s(n)
		s.mag[c] = alignedmem.Float64s(half)
	}

	if cfg.FreezePhase {
		s.prevArg = make([][]float64, cfg.NChan)
		s.argAccum = make([][]float64, cfg.NChan)
		s.argStep = make([][]float64, cfg.NChan)
		for c := 0; c < cfg.NChan; c++ {
			s.prevArg[c] = alignedmem.Float64s(half)
			s.argAccum[c] = alignedmem.Float64s(half)
			s.argStep[c] = alignedmem.Float64s(half)
		}
	}

	s.bfDFT = alignedmem.Float64s(n)
	s.accumTemp = alignedmem.Float64s(n)

	if snapshot != nil {
		if err := s.captureSnapshot(snapshot); err != nil {
			return nil, err
		}
		s.haveSnapshot = true
	}

	if priming != nil {
		if err := s.Process(nil, priming); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Close releases State's resources. Close is idempotent: calling it more
// than once, or on a State that New failed to fully construct, is a
// no-op (spec.md §4.5, §7, testable property 8).
func (s *State) Close() {
	if s == nil || s.closed {
		return
	}
	s.closed = true
	s.fwdLap, s.invLap, s.mag = nil, nil, nil
	s.prevArg, s.argAccum, s.argStep = nil, nil, nil
	s.bfDFT, s.accumTemp = nil, nil
}

// Config returns a copy of the configuration State was built with.
func (s *State) Config() Config { return s.cfg }

// BlockIdx returns the number of whole blocks processed so far
// (including the one warming priming block, if any).
func (s *State) BlockIdx() int { return s.blockIdx }

// captureSnapshot windows and centered-FFTs the snapshot block for each
// channel and stores its magnitude as the immutable freeze target
// (spec.md §4.4).
func (s *State) captureSnapshot(snapshot []float64) error {
	n := s.cfg.BlockSize
	half := n / 2
	nChan := s.cfg.NChan

	for c := 0; c < nChan; c++ {
		for k := 0; k < n; k++ {
			s.bfDFT[k] = s.winFull[k] * snapshot[k*nChan+c]
		}
		if err := s.plan.ForwardCentered(s.bfDFT); err != nil {
			return err
		}
		for k := 0; k < half; k++ {
			re, im := s.bfDFT[2*k], s.bfDFT[2*k+1]
			s.mag[c][k] = math.Hypot(re, im)
		}
	}
	return nil
}
