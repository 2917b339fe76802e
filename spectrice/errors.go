package spectrice

import (
	"errors"
	"fmt"

	"github.com/cwbudde/spectrice/dsp/window"
)

// ErrFreezePhaseWithSnapshot is returned by New when FreezePhase is set
// together with a non-nil snapshot (spec.md §3, §7, testable property 7).
var ErrFreezePhaseWithSnapshot = errors.New("spectrice: FreezePhase is incompatible with a snapshot")

// ErrAlreadyClosed is returned by Process when the state has already
// been closed.
var ErrAlreadyClosed = errors.New("spectrice: state has already been closed")

func errChannelRange(n int) error {
	return fmt.Errorf("spectrice: NChan must be in [%d, %d]: %d", MinChannels, MaxChannels, n)
}

func errBlockSizeRange(n int) error {
	return fmt.Errorf("spectrice: BlockSize must be a power of two in [%d, %d]: %d", MinBlockSize, MaxBlockSize, n)
}

func errHopsRange(h int) error {
	return fmt.Errorf("spectrice: NHops must be a power of two in [2, BlockSize]: %d", h)
}

func errWindowHops(t window.Type, h int) error {
	return fmt.Errorf("spectrice: %s window requires NHops >= %d: got %d", t, window.MinHops(t), h)
}

func errFreezeOrder(start, point int) error {
	return fmt.Errorf("spectrice: FreezeStart must be <= FreezePoint: %d > %d", start, point)
}

func errFreezeTooEarly(blockSize int) error {
	return fmt.Errorf("spectrice: FreezeStart and FreezePoint must be >= BlockSize (%d)", blockSize)
}

func errFreezeFactorRange(f float64) error {
	return fmt.Errorf("spectrice: FreezeFactor must be in [0, 1]: %f", f)
}

func errInputLength(want, got int) error {
	return fmt.Errorf("spectrice: input must have %d interleaved samples: got %d", want, got)
}

func errOutputLength(want, got int) error {
	return fmt.Errorf("spectrice: output must have %d interleaved samples: got %d", want, got)
}

func errSnapshotLength(want, got int) error {
	return fmt.Errorf("spectrice: snapshot must have %d interleaved samples: got %d", want, got)
}

func errPrimingLength(want, got int) error {
	return fmt.Errorf("spectrice: priming input must have %d interleaved samples: got %d", want, got)
}
