// Package alignedmem allocates individually 64-byte-aligned float64
// slices, the independent-buffers reading of the spectral-freeze core's
// SIMD-alignment requirement (spec.md §3, §5, §9 permits either one
// packed allocation or multiple independently aligned buffers). Each
// lap, magnitude table, and phase buffer the core owns is allocated
// through Float64s.
package alignedmem

import "unsafe"

// Alignment is the byte alignment guaranteed by Float64s, matching the
// 64-byte SIMD alignment the original C core requests.
const Alignment = 64

// Float64s returns a []float64 of length n whose backing array starts at
// a 64-byte aligned address. The returned slice aliases no other caller's
// memory; growing it beyond cap will relocate it (and lose the
// alignment guarantee), so callers must not append to it.
func Float64s(n int) []float64 {
	if n <= 0 {
		return nil
	}

	const elemSize = 8 // unsafe.Sizeof(float64(0))
	pad := Alignment/elemSize - 1

	raw := make([]float64, n+pad)
	addr := uintptr(unsafe.Pointer(&raw[0]))
	offset := (Alignment - int(addr%Alignment)) % Alignment / elemSize

	return raw[offset : offset+n : offset+n]
}
