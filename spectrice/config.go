// Package spectrice implements the spectral-freeze core: a windowed
// overlap-add STFT pipeline that progressively replaces the magnitude
// (and optionally the phase-advance) spectrum of a signal with
// captured/averaged values, producing a stationary, loopable tail while
// leaving the signal untouched up to the crossfade region.
//
// The package presents one type, State, with three operations: New
// (the C original's Init, returning an error instead of a bool),
// Process, and Close (Destroy). See DESIGN.md for the grounding of each
// piece against the original C source and the algo-dsp teacher repo.
package spectrice

import (
	"github.com/cwbudde/spectrice/dsp/window"
)

const (
	// MinChannels and MaxChannels bound Config.NChan (spec.md §3).
	MinChannels = 1
	MaxChannels = 255

	// MinBlockSize and MaxBlockSize bound Config.BlockSize. The floor is
	// raised from spec.md §3's nominal 8 to 16 to match the centered FFT
	// kernel's own minimum (spec.md §4.1); see DESIGN.md.
	MinBlockSize = 16
	MaxBlockSize = 65536
)

// Config holds the immutable-after-New parameters of a freeze operation
// (spec.md §3's "Configuration" entity).
type Config struct {
	// NChan is the number of interleaved channels in every Process call.
	NChan int

	// BlockSize is the STFT frame length N. Must be a power of two in
	// [MinBlockSize, MaxBlockSize].
	BlockSize int

	// NHops is the number of analysis hops per block (H). Must be a
	// power of two in [2, BlockSize], and must meet the chosen window's
	// minimum (window.MinHops).
	NHops int

	// Window selects the analysis/synthesis window shape.
	Window window.Type

	// FreezeStart and FreezePoint delimit the crossfade region, in
	// post-priming sample coordinates (spec.md §3's coordinate frame).
	// FreezeStart must be <= FreezePoint, and both must be >= BlockSize.
	FreezeStart int
	FreezePoint int

	// FreezeFactor gates the freeze mix in [0, 1]; 0 disables freezing
	// entirely, 1 freezes fully once Idx reaches FreezePoint.
	FreezeFactor float64

	// FreezeAmp enables amplitude freezing (mixing towards the captured
	// or running target magnitude).
	FreezeAmp bool

	// FreezePhase enables phase-step freezing. Mutually exclusive with
	// supplying a Snapshot to New.
	FreezePhase bool
}

// HopSize returns BlockSize / NHops, the number of samples advanced (and
// emitted) per hop.
func (c Config) HopSize() int {
	return c.BlockSize / c.NHops
}

func (c Config) validate() error {
	if c.NChan < MinChannels || c.NChan > MaxChannels {
		return errChannelRange(c.NChan)
	}
	if c.BlockSize < MinBlockSize || c.BlockSize > MaxBlockSize || !isPowerOfTwo(c.BlockSize) {
		return errBlockSizeRange(c.BlockSize)
	}
	if c.NHops < 2 || c.NHops > c.BlockSize || !isPowerOfTwo(c.NHops) {
		return errHopsRange(c.NHops)
	}
	if c.NHops < window.MinHops(c.Window) {
		return errWindowHops(c.Window, c.NHops)
	}
	if c.FreezeStart > c.FreezePoint {
		return errFreezeOrder(c.FreezeStart, c.FreezePoint)
	}
	if c.FreezeStart < c.BlockSize || c.FreezePoint < c.BlockSize {
		return errFreezeTooEarly(c.BlockSize)
	}
	if c.FreezeFactor < 0 || c.FreezeFactor > 1 {
		return errFreezeFactorRange(c.FreezeFactor)
	}
	return nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
