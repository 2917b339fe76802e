// Package window builds the analysis/synthesis window used by the hop
// processor: a half window W[0, N/2) that is applied symmetrically
// (W[N-1-n] implicitly equals W[n]) and normalized so that the sum of its
// squares times the hop count equals one, which is what makes overlap-add
// reconstruction unity-gain in the pass-through case.
package window

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// Type identifies one of the five window shapes the freeze core accepts.
type Type int

const (
	TypeSine Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeNuttall
)

// String returns the CLI-facing spelling of a window type.
func (t Type) String() string {
	switch t {
	case TypeSine:
		return "sine"
	case TypeHann:
		return "hann"
	case TypeHamming:
		return "hamming"
	case TypeBlackman:
		return "blackman"
	case TypeNuttall:
		return "nuttall"
	default:
		return "unknown"
	}
}

// ParseType maps a CLI window name to a Type.
func ParseType(name string) (Type, error) {
	switch name {
	case "sine":
		return TypeSine, nil
	case "hann":
		return TypeHann, nil
	case "hamming":
		return TypeHamming, nil
	case "blackman":
		return TypeBlackman, nil
	case "nuttall":
		return TypeNuttall, nil
	default:
		return 0, errUnknownWindow(name)
	}
}

// cosine-term coefficients for the multi-term windows, keyed by harmonic
// index: coeffs[0] is the DC term, coeffs[k] multiplies cos(k*theta).
var (
	hannCoeffs     = []float64{0.5, -0.5}
	hammingCoeffs  = []float64{25.0 / 46.0, -21.0 / 46.0}
	blackmanCoeffs = []float64{0.42, -0.50, 0.08}
	nuttallCoeffs  = []float64{0.3635819, -0.4891775, 0.1365995, -0.0106411}
)

// MinHops returns the minimum nHops a window type tolerates (spec.md §3).
func MinHops(t Type) int {
	switch t {
	case TypeSine:
		return 2
	case TypeHann, TypeHamming:
		return 3
	case TypeBlackman:
		return 5
	case TypeNuttall:
		return 7
	default:
		return 0
	}
}

// Half computes the half window W[0, blockSize/2) for t, normalized so
// that Sum(W[n]^2) * nHops == 1. blockSize must be even; nHops must meet
// MinHops(t) or Half fails with errInsufficientHops.
func Half(t Type, blockSize, nHops int) ([]float64, error) {
	if blockSize <= 0 || blockSize%2 != 0 {
		return nil, errInvalidBlockSize(blockSize)
	}
	if nHops < MinHops(t) {
		return nil, errInsufficientHops(t, nHops)
	}

	half := blockSize / 2
	w := make([]float64, half)
	sumSquares := 0.0

	for n := 0; n < half; n++ {
		theta := (float64(n) + 0.5) * math.Pi / float64(blockSize)

		var v float64
		switch t {
		case TypeSine:
			v = math.Sin(theta)
		case TypeHann:
			v = cosineSeries(hannCoeffs, theta)
		case TypeHamming:
			v = cosineSeries(hammingCoeffs, theta)
		case TypeBlackman:
			v = cosineSeries(blackmanCoeffs, theta)
		case TypeNuttall:
			v = cosineSeries(nuttallCoeffs, theta)
		default:
			return nil, errUnknownWindow(t.String())
		}

		w[n] = v
		sumSquares += v * v
	}

	norm := math.Sqrt(1.0 / (sumSquares * float64(nHops)))
	vecmath.ScaleBlockInPlace(w, norm)

	return w, nil
}

// Mirror expands a half window (length N/2) into the full symmetric
// window of length N used by the hop processor's bulk windowed-multiply
// and windowed-accumulate steps: Full[n] = Half[n] for n < N/2 and
// Full[n] = Half[N-1-n] for n >= N/2.
func Mirror(half []float64) []float64 {
	n := len(half) * 2
	full := make([]float64, n)
	copy(full, half)
	for i, v := range half {
		full[n-1-i] = v
	}
	return full
}

// cosineSeries evaluates Sum(coeffs[k] * cos(k*2*theta)) — the 2*theta
// doubling matches the argument convention in spec.md §4.2 (2π/N, 4π/N,
// 6π/N for successive harmonics of a base angle of π/N).
func cosineSeries(coeffs []float64, theta float64) float64 {
	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*2*theta)
	}
	return sum
}
